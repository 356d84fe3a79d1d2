/*
 * geometric.go, part of BioSimSpace.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 2 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package bss

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Centroid returns the geometric center of the coordinate set m (an Nx3
// matrix) as a 3-element vector.
func Centroid(m *mat.Dense) ([]float64, error) {
	r, c := m.Dims()
	if r == 0 || c != 3 {
		return nil, NewError("Centroid: ill-formed coordinate matrix")
	}
	cen := make([]float64, 3)
	for i := 0; i < r; i++ {
		for j := 0; j < 3; j++ {
			cen[j] += m.At(i, j)
		}
	}
	for j := 0; j < 3; j++ {
		cen[j] /= float64(r)
	}
	return cen, nil
}

// centered returns a copy of m with its centroid subtracted, plus the
// centroid itself.
func centered(m *mat.Dense) (*mat.Dense, []float64, error) {
	cen, err := Centroid(m)
	if err != nil {
		return nil, nil, errDecorate(err, "centered")
	}
	r, _ := m.Dims()
	out := mat.NewDense(r, 3, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < 3; j++ {
			out.Set(i, j, m.At(i, j)-cen[j])
		}
	}
	return out, cen, nil
}

// RMSD returns the root mean square deviation between the coordinate sets
// test and templa, which must have the same dimensions. No alignment is
// performed.
func RMSD(test, templa *mat.Dense) (float64, error) {
	tsr, tsc := test.Dims()
	tmr, tmc := templa.Dims()
	if tsr != tmr || tsc != 3 || tmc != 3 || tsr == 0 {
		return 0, NewError("RMSD: ill-formed matrices")
	}
	var sum float64
	for i := 0; i < tsr; i++ {
		for j := 0; j < 3; j++ {
			d := test.At(i, j) - templa.At(i, j)
			sum += d * d
		}
	}
	return math.Sqrt(sum / float64(tsr)), nil
}

// RotatorTranslatorToSuper superimposes the coordinate set test on templa.
// It returns the transformed copy of test, the 3x3 rotation matrix, and the
// two translation row vectors of the transform. To superimpose a larger set
// sharing the same rigid relation, add the first translation, rotate, then
// add the second translation (see Superimpose).
func RotatorTranslatorToSuper(test, templa *mat.Dense) (*mat.Dense, *mat.Dense, []float64, []float64, error) {
	tsr, tsc := test.Dims()
	tmr, tmc := templa.Dims()
	if tsr != tmr || tsc != 3 || tmc != 3 || tsr == 0 {
		return nil, nil, nil, nil, NewError("RotatorTranslatorToSuper: ill-formed matrices")
	}
	ctest, centest, err := centered(test)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	ctempla, centempla, err := centered(templa)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	var h mat.Dense
	h.Mul(ctest.T(), ctempla)
	var svd mat.SVD
	if ok := svd.Factorize(&h, mat.SVDFull); !ok {
		return nil, nil, nil, nil, NewError("RotatorTranslatorToSuper: SVD failed")
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	var vut mat.Dense
	vut.Mul(&v, u.T())
	d := 1.0
	if mat.Det(&vut) < 0 {
		d = -1.0
	}
	//The sign flip on the last column of V keeps the result a proper
	//rotation rather than a reflection.
	corr := mat.NewDiagDense(3, []float64{1, 1, d})
	var rot, tmp mat.Dense
	tmp.Mul(&v, corr)
	rot.Mul(&tmp, u.T())

	trans1 := []float64{-centest[0], -centest[1], -centest[2]}
	trans2 := centempla

	transformed := mat.NewDense(tsr, 3, nil)
	transformed.Mul(ctest, rot.T())
	for i := 0; i < tsr; i++ {
		for j := 0; j < 3; j++ {
			transformed.Set(i, j, transformed.At(i, j)+trans2[j])
		}
	}
	return transformed, &rot, trans1, trans2, nil
}

// Superimpose applies the rigid transform given by rot, trans1 and trans2
// (as returned by RotatorTranslatorToSuper) to every row of coords,
// returning a new matrix.
func Superimpose(coords *mat.Dense, rot *mat.Dense, trans1, trans2 []float64) *mat.Dense {
	r, _ := coords.Dims()
	shifted := mat.NewDense(r, 3, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < 3; j++ {
			shifted.Set(i, j, coords.At(i, j)+trans1[j])
		}
	}
	out := mat.NewDense(r, 3, nil)
	out.Mul(shifted, rot.T())
	for i := 0; i < r; i++ {
		for j := 0; j < 3; j++ {
			out.Set(i, j, out.At(i, j)+trans2[j])
		}
	}
	return out
}

// SomeCoords returns the rows of m with the given indexes, in order, as a
// new matrix. Panics on out-of-range indexes.
func SomeCoords(m *mat.Dense, indexes []int) *mat.Dense {
	out := mat.NewDense(len(indexes), 3, nil)
	for i, idx := range indexes {
		for j := 0; j < 3; j++ {
			out.Set(i, j, m.At(idx, j))
		}
	}
	return out
}

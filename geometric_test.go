/*
 * geometric_test.go, part of BioSimSpace.
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
	"testing"

	"gonum.org/v1/gonum/mat"
)

// rotateZ returns the coordinates rotated by the given angle around z and
// then translated.
func rotateZ(coords *mat.Dense, angle float64, trans []float64) *mat.Dense {
	r, _ := coords.Dims()
	out := mat.NewDense(r, 3, nil)
	s, c := math.Sin(angle), math.Cos(angle)
	for i := 0; i < r; i++ {
		x, y, z := coords.At(i, 0), coords.At(i, 1), coords.At(i, 2)
		out.Set(i, 0, c*x-s*y+trans[0])
		out.Set(i, 1, s*x+c*y+trans[1])
		out.Set(i, 2, z+trans[2])
	}
	return out
}

func TestSuperposition(Te *testing.T) {
	sys, err := PDBRead("test/lig1.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	templa := sys.First().Coords
	test := rotateZ(templa, math.Pi/3, []float64{5, -2, 1})
	before, err := RMSD(test, templa)
	if err != nil {
		Te.Fatal(err)
	}
	if before < 1 {
		Te.Fatalf("the transformed set should start far away, RMSD %f", before)
	}
	super, rot, t1, t2, err := RotatorTranslatorToSuper(test, templa)
	if err != nil {
		Te.Fatal(err)
	}
	after, err := RMSD(super, templa)
	if err != nil {
		Te.Fatal(err)
	}
	if after > 1e-6 {
		Te.Errorf("superposition left RMSD %g", after)
	}
	//the returned transform must reproduce the superposed set
	redone := Superimpose(test, rot, t1, t2)
	d, err := RMSD(redone, super)
	if err != nil {
		Te.Fatal(err)
	}
	if d > 1e-6 {
		Te.Errorf("Superimpose disagrees with the direct result by %g", d)
	}
	//rotation matrices are orthogonal with determinant +1
	if math.Abs(mat.Det(rot)-1) > 1e-6 {
		Te.Errorf("rotation determinant %f", mat.Det(rot))
	}
}

func TestCentroid(Te *testing.T) {
	coords := mat.NewDense(2, 3, []float64{0, 0, 0, 2, 4, 6})
	cen, err := Centroid(coords)
	if err != nil {
		Te.Fatal(err)
	}
	want := []float64{1, 2, 3}
	for i := range want {
		if math.Abs(cen[i]-want[i]) > 1e-12 {
			Te.Errorf("centroid component %d: got %f, want %f", i, cen[i], want[i])
		}
	}
}

func TestSomeCoords(Te *testing.T) {
	coords := mat.NewDense(3, 3, []float64{0, 0, 0, 1, 1, 1, 2, 2, 2})
	sub := SomeCoords(coords, []int{2, 0})
	r, _ := sub.Dims()
	if r != 2 {
		Te.Fatalf("expected 2 rows, got %d", r)
	}
	if sub.At(0, 0) != 2 || sub.At(1, 0) != 0 {
		Te.Error("SomeCoords did not keep the requested order")
	}
}

/*
 * bonds.go, part of BioSimSpace.
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
	"fmt"
	"math"
)

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

// Bond is a bond between two atoms of a molecule.
type Bond struct {
	Index int
	At1   *Atom
	At2   *Atom
	Dist  float64
	Order float64 //order 0 means undetermined
}

// Cross returns the atom of the bond that is not origin. Panics if origin
// does not belong to the bond, as that has to be a programming error.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin.Index() == B.At1.Index() {
		return B.At2
	}
	if origin.Index() == B.At2.Index() {
		return B.At1
	}
	panic("bss: trying to cross a bond: the origin atom given is not present in the bond")
}

// AssignBonds perceives the bonds of a molecule from the distances between
// its atoms and their covalent radii. Atoms closer than the sum of radii
// plus a tolerance are bonded; atoms unphysically close trigger an error.
// Any previous bond information in the molecule is discarded.
func AssignBonds(mol *Molecule) error {
	if mol == nil || mol.Coords == nil {
		return NewError("AssignBonds: nil molecule or coordinates")
	}
	mol.Bonds = nil
	for _, at := range mol.Atoms {
		at.Bonds = nil
	}
	mol.FillIndexes()
	for i := 0; i < mol.Len(); i++ {
		ri, ok := symbolCovrad[mol.Atom(i).Symbol]
		if !ok {
			continue //no radius, no bonds; dummies land here
		}
		ci := mol.Coord(i)
		for j := i + 1; j < mol.Len(); j++ {
			rj, ok := symbolCovrad[mol.Atom(j).Symbol]
			if !ok {
				continue
			}
			cj := mol.Coord(j)
			d := math.Sqrt(sqdist(ci, cj))
			if d < tooclose {
				return NewError(fmt.Sprintf("AssignBonds: atoms %d and %d are unphysically close (%4.2f A)", i, j, d))
			}
			if d <= ri+rj+bondtol {
				b := mol.AddBond(i, j, 0)
				b.Dist = d
			}
		}
	}
	return nil
}

func sqdist(a, b []float64) float64 {
	var s float64
	for k := 0; k < 3; k++ {
		d := a[k] - b[k]
		s += d * d
	}
	return s
}

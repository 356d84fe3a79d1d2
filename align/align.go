/*
 * align.go, part of BioSimSpace.
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

package align

import (
	bss "github.com/yuanlongping/BioSimSpace"
)

// RMSDAlign aligns mol0 onto mol1 using the mapping from mol0 atom indexes
// to mol1 atom indexes. The optimal translation and rotation are found by a
// root mean squared displacement fit on the mapped atoms (not merely the
// difference of centroids) and applied to the whole of mol0. A new molecule
// is returned; mol0 is not modified.
func RMSDAlign(mol0, mol1 *bss.Molecule, m *Mapping) (*bss.Molecule, error) {
	if m.Len() == 0 {
		return nil, bss.NewError("RMSDAlign: empty mapping")
	}
	idx0 := make([]int, 0, m.Len())
	idx1 := make([]int, 0, m.Len())
	for i := 0; i < m.Len(); i++ {
		a, b := m.Pair(i)
		if a < 0 || a >= mol0.Len() || b < 0 || b >= mol1.Len() {
			return nil, bss.NewError("RMSDAlign: mapping index out of range")
		}
		idx0 = append(idx0, a)
		idx1 = append(idx1, b)
	}
	c0 := bss.SomeCoords(mol0.Coords, idx0)
	c1 := bss.SomeCoords(mol1.Coords, idx1)
	_, rot, t1, t2, err := bss.RotatorTranslatorToSuper(c0, c1)
	if err != nil {
		return nil, err
	}
	aligned := mol0.Copy()
	aligned.Coords = bss.Superimpose(mol0.Coords, rot, t1, t2)
	return aligned, nil
}

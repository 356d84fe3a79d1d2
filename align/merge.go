/*
 * merge.go, part of BioSimSpace.
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
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	bss "github.com/yuanlongping/BioSimSpace"
)

//DummyType is the atom type of a non-interacting end-state atom.
const DummyType = "du"

// EndState describes one atom at one end state of a perturbation.
type EndState struct {
	Name    string
	Type    string
	Charge  float64
	Sigma   float64
	Epsilon float64
	Dummy   bool
}

// dummyState returns the non-interacting end state for an atom named name.
func dummyState(name string) EndState {
	return EndState{Name: name, Type: DummyType, Dummy: true}
}

// stateOf captures the end state of atom i of mol.
func stateOf(mol *bss.Molecule, i int) EndState {
	at := mol.Atom(i)
	return EndState{
		Name:    at.Name,
		Type:    at.AmberType,
		Charge:  at.Charge,
		Sigma:   at.Sigma,
		Epsilon: at.Epsilon,
	}
}

// MergedAtom is one atom of a merged molecule, with its two end states.
type MergedAtom struct {
	State0 EndState
	State1 EndState
}

// Merged is a perturbable molecule built from two ligands and a mapping
// between them. The embedded molecule is the lambda=0 view: coordinates of
// ligand A plus the aligned coordinates of the ligand-B-only atoms, with
// the latter typed as dummies (element X).
type Merged struct {
	*bss.Molecule
	Name      string
	Perturbed []*MergedAtom //parallel to the embedded molecule's atoms
}

// Merge merges mol0 and mol1 into a single perturbable molecule, using the
// mapping from mol0 atom indexes to mol1 atom indexes. Atoms of mol0 keep
// their order and are followed by the unmapped atoms of mol1, which are
// dummies at lambda=0. mol1 is expected to have been aligned onto mol0
// beforehand (see RMSDAlign).
func Merge(mol0, mol1 *bss.Molecule, m *Mapping) (*Merged, error) {
	if m.Len() == 0 {
		return nil, bss.NewError("Merge: empty mapping")
	}
	for i := 0; i < m.Len(); i++ {
		a, b := m.Pair(i)
		if a < 0 || a >= mol0.Len() || b < 0 || b >= mol1.Len() {
			return nil, bss.NewError("Merge: mapping index out of range")
		}
	}
	natoms := mol0.Len() + mol1.Len() - m.Len()
	atoms := make([]*bss.Atom, 0, natoms)
	perturbed := make([]*MergedAtom, 0, natoms)
	coords := mat.NewDense(natoms, 3, nil)
	used := make(map[string]bool)
	uniq := func(name string) string {
		if !used[name] {
			used[name] = true
			return name
		}
		for i := 2; ; i++ {
			try := fmt.Sprintf("%s%d", name, i)
			if !used[try] {
				used[try] = true
				return try
			}
		}
	}

	for i := 0; i < mol0.Len(); i++ {
		src := mol0.Atom(i)
		at := src.Copy()
		at.Name = uniq(src.Name)
		at.ID = len(atoms) + 1
		at.Molname = "LIG"
		at.Molid = 1
		at.Het = true
		ma := &MergedAtom{State0: stateOf(mol0, i)}
		if b, ok := m.Get(i); ok {
			ma.State1 = stateOf(mol1, b)
		} else {
			ma.State1 = dummyState(src.Name)
		}
		ma.State0.Name = at.Name
		ma.State1.Name = at.Name
		c := mol0.Coord(i)
		coords.SetRow(len(atoms), c)
		atoms = append(atoms, at)
		perturbed = append(perturbed, ma)
	}
	//atoms present only in the final state: dummies at lambda=0
	for j := 0; j < mol1.Len(); j++ {
		if m.HasValue(j) {
			continue
		}
		src := mol1.Atom(j)
		at := src.Copy()
		at.Name = uniq(src.Name)
		at.ID = len(atoms) + 1
		at.Molname = "LIG"
		at.Molid = 1
		at.Het = true
		at.Symbol = "X"
		at.Charge = 0
		ma := &MergedAtom{State0: dummyState(at.Name), State1: stateOf(mol1, j)}
		ma.State0.Name = at.Name
		ma.State1.Name = at.Name
		coords.SetRow(len(atoms), mol1.Coord(j))
		atoms = append(atoms, at)
		perturbed = append(perturbed, ma)
	}
	mol, err := bss.NewMolecule(atoms, coords)
	if err != nil {
		return nil, err
	}
	var q float64
	for _, ma := range perturbed {
		q += ma.State0.Charge
	}
	mol.SetCharge(int(math.Round(q)))
	//rebuild the merged connectivity: bonds of A, plus B bonds that touch
	//a B-only atom
	b2merged := make(map[int]int)
	for i := 0; i < m.Len(); i++ {
		a, b := m.Pair(i)
		b2merged[b] = a
	}
	next := mol0.Len()
	for j := 0; j < mol1.Len(); j++ {
		if _, ok := b2merged[j]; !ok {
			b2merged[j] = next
			next++
		}
	}
	for _, b := range mol0.Bonds {
		mol.AddBond(b.At1.Index(), b.At2.Index(), b.Order)
	}
	for _, b := range mol1.Bonds {
		i1, i2 := b2merged[b.At1.Index()], b2merged[b.At2.Index()]
		if i1 < mol0.Len() && i2 < mol0.Len() {
			continue //already present via ligand A
		}
		mol.AddBond(i1, i2, b.Order)
	}
	return &Merged{Molecule: mol, Name: "LIG", Perturbed: perturbed}, nil
}

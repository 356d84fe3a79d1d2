/*
 * chem.go, part of BioSimSpace.
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

//Package bss provides molecule and system structures, facilities for reading
//and writing the files exchanged with molecular-dynamics packages, and the
//numeric helpers needed to prepare free-energy perturbation inputs.
package bss

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

/*Note: several functions here panic instead of returning errors. They are
"fundamental" functions: if something goes wrong in them, the program is
most likely wrong and should crash. All panics relate to calling a method
on a nil object or to out-of-bounds indexes.*/

// Atom contains the per-atom information except for the coordinates, which
// live in a matrix owned by the Molecule.
type Atom struct {
	Name      string
	index     int //position in the Molecule, filled by FillIndexes
	ID        int //serial number from the input file
	Symbol    string
	AmberType string //empty until the molecule is parameterised
	Molname   string
	Molid     int
	Chain     string
	Charge    float64 //partial charge, in electron units
	Mass      float64
	Sigma     float64 //Lennard-Jones sigma, in A; zero until parameterised
	Epsilon   float64 //Lennard-Jones epsilon, in kcal/mol
	Occupancy float64
	Bfactor   float64
	Het       bool
	Bonds     []*Bond
}

// Index returns the position of the atom in its molecule.
func (A *Atom) Index() int {
	return A.index
}

// Copy returns a copy of the atom. Bonds are not copied, as they reference
// other atoms; Molecule.Copy rebuilds them on the new molecule.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("bss: attempted to copy a nil Atom")
	}
	newat := new(Atom)
	*newat = *A
	newat.Bonds = nil
	return newat
}

// Molecule contains the atoms, bonds and one set of cartesian coordinates
// (an Nx3 matrix, in A) for a molecule, plus its net charge.
type Molecule struct {
	Atoms  []*Atom
	Coords *mat.Dense
	Bonds  []*Bond
	charge int
}

// NewMolecule builds a molecule from atoms and coordinates. It returns an
// error if either is nil or if the number of coordinate rows does not match
// the number of atoms.
func NewMolecule(ats []*Atom, coords *mat.Dense) (*Molecule, error) {
	if ats == nil {
		return nil, NewError("NewMolecule: nil atom slice")
	}
	if coords == nil {
		return nil, NewError("NewMolecule: nil coordinates")
	}
	r, c := coords.Dims()
	if r != len(ats) || c != 3 {
		return nil, NewError(fmt.Sprintf("NewMolecule: %d atoms but %dx%d coordinates", len(ats), r, c))
	}
	mol := &Molecule{Atoms: ats, Coords: coords}
	mol.FillIndexes()
	return mol, nil
}

// Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

// Atom returns the atom at position i. Panics if out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i < 0 || i >= M.Len() {
		panic(fmt.Sprintf("bss: requested Atom %d out of bounds (%d atoms)", i, M.Len()))
	}
	return M.Atoms[i]
}

// Coord returns the cartesian coordinates of atom i as a 3-element slice.
// Panics if out of range.
func (M *Molecule) Coord(i int) []float64 {
	if i < 0 || i >= M.Len() {
		panic(fmt.Sprintf("bss: requested coordinate %d out of bounds (%d atoms)", i, M.Len()))
	}
	return []float64{M.Coords.At(i, 0), M.Coords.At(i, 1), M.Coords.At(i, 2)}
}

// Charge returns the net charge of the molecule.
func (M *Molecule) Charge() int {
	return M.charge
}

// SetCharge sets the net charge of the molecule.
func (M *Molecule) SetCharge(i int) {
	M.charge = i
}

// FillIndexes sets the index of each atom to its current position in the
// molecule.
func (M *Molecule) FillIndexes() {
	for i, at := range M.Atoms {
		at.index = i
	}
}

// Copy returns a deep copy of the molecule, bonds included.
func (M *Molecule) Copy() *Molecule {
	mol := new(Molecule)
	mol.Atoms = make([]*Atom, M.Len())
	for i, at := range M.Atoms {
		mol.Atoms[i] = at.Copy()
	}
	mol.Coords = mat.DenseCopyOf(M.Coords)
	mol.charge = M.charge
	mol.FillIndexes()
	for _, b := range M.Bonds {
		mol.addBond(mol.Atoms[b.At1.Index()], mol.Atoms[b.At2.Index()], b.Order)
	}
	return mol
}

// addBond creates a bond between a1 and a2 and registers it on the molecule
// and both atoms.
func (M *Molecule) addBond(a1, a2 *Atom, order float64) *Bond {
	b := &Bond{Index: len(M.Bonds), At1: a1, At2: a2, Order: order}
	M.Bonds = append(M.Bonds, b)
	a1.Bonds = append(a1.Bonds, b)
	a2.Bonds = append(a2.Bonds, b)
	return b
}

// AddBond creates a bond between the atoms at positions i and j.
// Panics if either index is out of range.
func (M *Molecule) AddBond(i, j int, order float64) *Bond {
	return M.addBond(M.Atom(i), M.Atom(j), order)
}

// Masses returns a slice with the mass of each atom, or an error if any
// mass is missing.
func (M *Molecule) Masses() ([]float64, error) {
	masses := make([]float64, M.Len())
	for i, at := range M.Atoms {
		if at.Mass == 0 && at.Symbol != "X" {
			return nil, NewError(fmt.Sprintf("Masses: atom %d (%s) has no mass", i, at.Name))
		}
		masses[i] = at.Mass
	}
	return masses, nil
}

// Translate displaces all coordinates of the molecule by the 3-element
// vector v.
func (M *Molecule) Translate(v []float64) {
	if len(v) != 3 {
		panic("bss: Translate needs a 3-element vector")
	}
	r, _ := M.Coords.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < 3; j++ {
			M.Coords.Set(i, j, M.Coords.At(i, j)+v[j])
		}
	}
}

// System is an ordered collection of molecules, as produced by reading a
// structure file. The order is the one in which the molecules appeared in
// the file.
type System struct {
	mols []*Molecule
}

// NewSystem returns a system holding the given molecules.
func NewSystem(mols ...*Molecule) *System {
	return &System{mols: mols}
}

// NMolecules returns the number of molecules in the system.
func (S *System) NMolecules() int {
	return len(S.mols)
}

// NAtoms returns the total number of atoms in the system.
func (S *System) NAtoms() int {
	n := 0
	for _, m := range S.mols {
		n += m.Len()
	}
	return n
}

// Charge returns the net charge of the system.
func (S *System) Charge() int {
	q := 0
	for _, m := range S.mols {
		q += m.Charge()
	}
	return q
}

// Molecules returns the molecules of the system, in file order.
func (S *System) Molecules() []*Molecule {
	return S.mols
}

// Molecule returns the molecule at position i. Panics if out of range.
func (S *System) Molecule(i int) *Molecule {
	if i < 0 || i >= len(S.mols) {
		panic(fmt.Sprintf("bss: requested Molecule %d out of bounds (%d molecules)", i, len(S.mols)))
	}
	return S.mols[i]
}

// First returns the first molecule of the system, i.e. the first entry in
// whatever order the file loader produced. Panics on an empty system.
func (S *System) First() *Molecule {
	return S.Molecule(0)
}

// AddMolecules appends molecules to the system.
func (S *System) AddMolecules(mols ...*Molecule) {
	S.mols = append(S.mols, mols...)
}

// RemoveMolecules removes the given molecules (compared by identity) from
// the system. Molecules not present are ignored.
func (S *System) RemoveMolecules(mols ...*Molecule) {
	for _, target := range mols {
		for i, m := range S.mols {
			if m == target {
				S.mols = append(S.mols[:i], S.mols[i+1:]...)
				break
			}
		}
	}
}

// Translate displaces all molecules of the system by the 3-element vector v.
func (S *System) Translate(v []float64) {
	for _, m := range S.mols {
		m.Translate(v)
	}
}

/*
 * bss_test.go, part of BioSimSpace.
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
	"testing"
)

func TestPDBIO(Te *testing.T) {
	sys, err := PDBRead("test/lig1.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	if sys.NMolecules() != 1 {
		Te.Fatalf("expected 1 molecule, got %d", sys.NMolecules())
	}
	mol := sys.First()
	if mol.Len() != 3 {
		Te.Fatalf("expected 3 atoms, got %d", mol.Len())
	}
	names := []string{"C1", "C2", "C3"}
	for i, want := range names {
		at := mol.Atom(i)
		if at.Name != want || at.Symbol != "C" {
			Te.Errorf("atom %d: got %s/%s, want %s/C", i, at.Name, at.Symbol, want)
		}
	}
	fmt.Println("PDB read!")
	err = PDBWrite("test/lig1IO.pdb", sys)
	if err != nil {
		Te.Fatal(err)
	}
	sys2, err := PDBRead("test/lig1IO.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	mol2 := sys2.First()
	for i := 0; i < mol.Len(); i++ {
		a, b := mol.Coord(i), mol2.Coord(i)
		for j := 0; j < 3; j++ {
			if math.Abs(a[j]-b[j]) > 1e-3 {
				Te.Errorf("atom %d coordinate %d changed on rewrite: %f vs %f", i, j, a[j], b[j])
			}
		}
	}
}

func TestXYZIO(Te *testing.T) {
	sys, err := PDBRead("test/lig1.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	mol := sys.First()
	if err := XYZWrite("test/lig1IO.xyz", mol); err != nil {
		Te.Fatal(err)
	}
	sys2, err := XYZRead("test/lig1IO.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	mol2 := sys2.First()
	if mol2.Len() != mol.Len() {
		Te.Fatalf("expected %d atoms, got %d", mol.Len(), mol2.Len())
	}
	if mol2.Atom(0).Symbol != "C" {
		Te.Errorf("expected C, got %s", mol2.Atom(0).Symbol)
	}
}

func TestRst7IO(Te *testing.T) {
	coords, err := Rst7Read("test/lig1.rst7")
	if err != nil {
		Te.Fatal(err)
	}
	r, c := coords.Dims()
	if r != 3 || c != 3 {
		Te.Fatalf("expected 3x3 coordinates, got %dx%d", r, c)
	}
	if math.Abs(coords.At(1, 0)-1.54) > 1e-6 {
		Te.Errorf("expected 1.54, got %f", coords.At(1, 0))
	}
	if err := Rst7Write("test/lig1IO.rst7", "LIG", coords); err != nil {
		Te.Fatal(err)
	}
	coords2, err := Rst7Read("test/lig1IO.rst7")
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(coords.At(i, j)-coords2.At(i, j)) > 1e-6 {
				Te.Errorf("coordinate %d,%d changed on rewrite", i, j)
			}
		}
	}
}

func TestPrm7Read(Te *testing.T) {
	top, err := Prm7Read("test/lig1.prm7")
	if err != nil {
		Te.Fatal(err)
	}
	if top.NAtoms != 3 {
		Te.Fatalf("expected 3 atoms, got %d", top.NAtoms)
	}
	if top.Names[0] != "C1" || top.Types[0] != "c3" {
		Te.Errorf("got %s/%s, want C1/c3", top.Names[0], top.Types[0])
	}
	//charges come divided by the Amber conversion factor
	if math.Abs(top.Charges[0]+0.1) > 1e-4 {
		Te.Errorf("expected charge -0.1, got %f", top.Charges[0])
	}
	if len(top.Bonds) != 2 {
		Te.Fatalf("expected 2 bonds, got %d", len(top.Bonds))
	}
	if top.Bonds[0] != [2]int{0, 1} || top.Bonds[1] != [2]int{1, 2} {
		Te.Errorf("wrong bonds: %v", top.Bonds)
	}
	if math.Abs(top.Sigma[0]-3.4) > 1e-3 || math.Abs(top.Epsilon[0]-0.1) > 1e-3 {
		Te.Errorf("expected sigma 3.4 and epsilon 0.1, got %f and %f", top.Sigma[0], top.Epsilon[0])
	}
}

func TestReadMolecules(Te *testing.T) {
	//a topology/coordinates pair, in either order
	sys, err := ReadMolecules("test/lig1.rst7", "test/lig1.prm7")
	if err != nil {
		Te.Fatal(err)
	}
	if sys.NMolecules() != 1 || sys.NAtoms() != 3 {
		Te.Fatalf("expected 1 molecule with 3 atoms, got %d with %d", sys.NMolecules(), sys.NAtoms())
	}
	mol := sys.First()
	at := mol.Atom(0)
	if at.Molname != "LIG" || at.AmberType != "c3" {
		Te.Errorf("got %s/%s, want LIG/c3", at.Molname, at.AmberType)
	}
	if len(mol.Bonds) != 2 {
		Te.Errorf("expected 2 bonds, got %d", len(mol.Bonds))
	}
	if math.Abs(mol.Coord(2)[1]-1.33) > 1e-6 {
		Te.Errorf("expected 1.33, got %f", mol.Coord(2)[1])
	}
}

func TestAssignBonds(Te *testing.T) {
	sys, err := PDBRead("test/lig2.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	mol := sys.First()
	if err := AssignBonds(mol); err != nil {
		Te.Fatal(err)
	}
	//propanol heavy atoms: C1-C2, C2-C3, C3-O1
	if len(mol.Bonds) != 3 {
		Te.Fatalf("expected 3 bonds, got %d", len(mol.Bonds))
	}
	last := mol.Bonds[len(mol.Bonds)-1]
	pair := [2]string{last.At1.Symbol, last.At2.Symbol}
	if pair != [2]string{"C", "O"} && pair != [2]string{"O", "C"} {
		Te.Errorf("expected a C-O bond, got %s-%s", last.At1.Symbol, last.At2.Symbol)
	}
}

func TestSymbolFromName(Te *testing.T) {
	cases := map[string]string{
		"C1":   "C",
		"1HB2": "H",
		"CL":   "Cl",
		"OXT":  "O",
		"N":    "N",
	}
	for name, want := range cases {
		got, err := SymbolFromName(name)
		if err != nil {
			Te.Errorf("%s: %v", name, err)
			continue
		}
		if got != want {
			Te.Errorf("%s: got %s, want %s", name, got, want)
		}
	}
	if _, err := SymbolFromName("123"); err == nil {
		Te.Error("expected an error for a nameless atom")
	}
}

func TestUnits(Te *testing.T) {
	if (2 * Picosecond).Femtoseconds() != 2000 {
		Te.Errorf("2 ps should be 2000 fs, got %f", (2 * Picosecond).Femtoseconds())
	}
	if Nanometer.Angstroms() != 10 {
		Te.Errorf("1 nm should be 10 A, got %f", Nanometer.Angstroms())
	}
}

func TestSystemOps(Te *testing.T) {
	sys, err := PDBRead("test/lig1.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	mol := sys.First()
	other := mol.Copy()
	sys.AddMolecules(other)
	if sys.NMolecules() != 2 {
		Te.Fatalf("expected 2 molecules, got %d", sys.NMolecules())
	}
	sys.RemoveMolecules(mol)
	if sys.NMolecules() != 1 || sys.First() != other {
		Te.Error("RemoveMolecules did not remove by identity")
	}
}

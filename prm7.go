/*
 * prm7.go, part of BioSimSpace.
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

//Reading of Amber7 topology (prm7/parm7) files. Only the sections needed
//to rebuild parameterised molecules are parsed: atom names and types,
//charges, masses, residues, bonds and Lennard-Jones parameters. Writing
//prm7 files is left to the external tools that own the format.

package bss

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Amber stores charges multiplied by this factor.
const amberChargeFactor = 18.2223

// Prm7 holds the parsed subset of an Amber topology.
type Prm7 struct {
	NAtoms           int
	Names            []string
	Types            []string
	Charges          []float64 //in electron units
	Masses           []float64
	ResLabels        []string
	ResPointers      []int //1-based first atom of each residue
	Bonds            [][2]int
	Sigma            []float64 //per atom, in A
	Epsilon          []float64 //per atom, in kcal/mol
	AtomsPerMolecule []int
}

// prm7Section is one %FLAG block of the file, with its data lines joined.
type prm7Section struct {
	format string
	lines  []string
}

func prm7Sections(prmname string) (map[string]*prm7Section, error) {
	f, err := os.Open(prmname)
	if err != nil {
		return nil, errDecorate(err, "prm7Sections")
	}
	defer f.Close()
	sections := make(map[string]*prm7Section)
	var curr *prm7Section
	scan := bufio.NewScanner(f)
	for scan.Scan() {
		line := scan.Text()
		switch {
		case strings.HasPrefix(line, "%VERSION"):
			continue
		case strings.HasPrefix(line, "%FLAG"):
			name := strings.TrimSpace(strings.TrimPrefix(line, "%FLAG"))
			curr = new(prm7Section)
			sections[name] = curr
		case strings.HasPrefix(line, "%FORMAT"):
			if curr != nil {
				curr.format = strings.TrimSpace(line)
			}
		case strings.HasPrefix(line, "%"):
			continue //COMMENT and friends
		default:
			if curr != nil {
				curr.lines = append(curr.lines, line)
			}
		}
	}
	if err := scan.Err(); err != nil {
		return nil, errDecorate(err, "prm7Sections")
	}
	return sections, nil
}

// fixedFields splits the data lines of a section into fixed-width fields,
// as strings with their padding removed. Amber string sections (20a4) can
// contain names with no separating blanks, so Fields is not usable. A final
// field left short by stripped trailing blanks is still returned.
func (s *prm7Section) fixedFields(width int) []string {
	var out []string
	for _, line := range s.lines {
		for i := 0; i < len(line); i += width {
			end := i + width
			if end > len(line) {
				end = len(line)
			}
			out = append(out, strings.TrimSpace(line[i:end]))
		}
	}
	return out
}

func (s *prm7Section) floats() ([]float64, error) {
	var out []float64
	for _, line := range s.lines {
		for _, f := range strings.Fields(line) {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, errDecorate(err, "prm7 floats")
			}
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *prm7Section) ints() ([]int, error) {
	var out []int
	for _, line := range s.lines {
		for _, f := range strings.Fields(line) {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, errDecorate(err, "prm7 ints")
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// Prm7Read reads an Amber topology file.
func Prm7Read(prmname string) (*Prm7, error) {
	sections, err := prm7Sections(prmname)
	if err != nil {
		return nil, err
	}
	pointers, ok := sections["POINTERS"]
	if !ok {
		return nil, NewError(fmt.Sprintf("Prm7Read: %s has no POINTERS section", prmname))
	}
	pvals, err := pointers.ints()
	if err != nil || len(pvals) < 12 {
		return nil, NewError(fmt.Sprintf("Prm7Read: malformed POINTERS section in %s", prmname))
	}
	top := new(Prm7)
	top.NAtoms = pvals[0]
	ntypes := pvals[1]

	if s, ok := sections["ATOM_NAME"]; ok {
		top.Names = s.fixedFields(4)
	}
	if s, ok := sections["AMBER_ATOM_TYPE"]; ok {
		top.Types = s.fixedFields(4)
	}
	if len(top.Names) < top.NAtoms || len(top.Types) < top.NAtoms {
		return nil, NewError(fmt.Sprintf("Prm7Read: %s carries fewer names/types than atoms", prmname))
	}
	top.Names = top.Names[:top.NAtoms]
	top.Types = top.Types[:top.NAtoms]

	if s, ok := sections["CHARGE"]; ok {
		top.Charges, err = s.floats()
		if err != nil {
			return nil, errDecorate(err, "Prm7Read")
		}
		for i := range top.Charges {
			top.Charges[i] /= amberChargeFactor
		}
	}
	if s, ok := sections["MASS"]; ok {
		top.Masses, err = s.floats()
		if err != nil {
			return nil, errDecorate(err, "Prm7Read")
		}
	}
	if s, ok := sections["RESIDUE_LABEL"]; ok {
		top.ResLabels = s.fixedFields(4)
	}
	if s, ok := sections["RESIDUE_POINTER"]; ok {
		top.ResPointers, err = s.ints()
		if err != nil {
			return nil, errDecorate(err, "Prm7Read")
		}
	}
	if s, ok := sections["ATOMS_PER_MOLECULE"]; ok {
		top.AtomsPerMolecule, err = s.ints()
		if err != nil {
			return nil, errDecorate(err, "Prm7Read")
		}
	}
	for _, name := range []string{"BONDS_INC_HYDROGEN", "BONDS_WITHOUT_HYDROGEN"} {
		s, ok := sections[name]
		if !ok {
			continue
		}
		vals, err := s.ints()
		if err != nil {
			return nil, errDecorate(err, "Prm7Read")
		}
		//triplets of (3*i, 3*j, parameter index)
		for i := 0; i+2 < len(vals); i += 3 {
			top.Bonds = append(top.Bonds, [2]int{vals[i] / 3, vals[i+1] / 3})
		}
	}
	if err := top.fillLJ(sections, ntypes); err != nil {
		return nil, err
	}
	return top, nil
}

// fillLJ recovers per-atom sigma/epsilon from the Amber A/B coefficient
// tables.
func (P *Prm7) fillLJ(sections map[string]*prm7Section, ntypes int) error {
	typeIdxS, ok1 := sections["ATOM_TYPE_INDEX"]
	nbIdxS, ok2 := sections["NONBONDED_PARM_INDEX"]
	acoefS, ok3 := sections["LENNARD_JONES_ACOEF"]
	bcoefS, ok4 := sections["LENNARD_JONES_BCOEF"]
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil //no LJ information; leave Sigma/Epsilon nil
	}
	typeIdx, err := typeIdxS.ints()
	if err != nil {
		return errDecorate(err, "fillLJ")
	}
	nbIdx, err := nbIdxS.ints()
	if err != nil {
		return errDecorate(err, "fillLJ")
	}
	acoef, err := acoefS.floats()
	if err != nil {
		return errDecorate(err, "fillLJ")
	}
	bcoef, err := bcoefS.floats()
	if err != nil {
		return errDecorate(err, "fillLJ")
	}
	P.Sigma = make([]float64, P.NAtoms)
	P.Epsilon = make([]float64, P.NAtoms)
	for i := 0; i < P.NAtoms && i < len(typeIdx); i++ {
		t := typeIdx[i] //1-based
		pos := ntypes*(t-1) + (t - 1)
		if pos < 0 || pos >= len(nbIdx) {
			continue
		}
		idx := nbIdx[pos] - 1
		if idx < 0 || idx >= len(acoef) || idx >= len(bcoef) {
			continue
		}
		a, b := acoef[idx], bcoef[idx]
		if a <= 0 || b <= 0 {
			continue
		}
		P.Sigma[i] = math.Pow(a/b, 1.0/6.0)
		P.Epsilon[i] = b * b / (4 * a)
	}
	return nil
}

// ToSystem combines the topology with a coordinate set into a system. If
// the topology declares ATOMS_PER_MOLECULE the atoms are split accordingly,
// otherwise a single molecule is produced.
func (P *Prm7) ToSystem(coords *mat.Dense) (*System, error) {
	r, c := coords.Dims()
	if r != P.NAtoms || c != 3 {
		return nil, NewError(fmt.Sprintf("ToSystem: %d atoms in topology but %dx%d coordinates", P.NAtoms, r, c))
	}
	atoms := make([]*Atom, P.NAtoms)
	resno := 0
	for i := 0; i < P.NAtoms; i++ {
		//advance residue when the next residue pointer is passed
		for resno+1 < len(P.ResPointers) && i+1 >= P.ResPointers[resno+1] {
			resno++
		}
		at := new(Atom)
		at.Name = P.Names[i]
		at.ID = i + 1
		at.AmberType = P.Types[i]
		if i < len(P.Charges) {
			at.Charge = P.Charges[i]
		}
		if i < len(P.Masses) {
			at.Mass = P.Masses[i]
		}
		if resno < len(P.ResLabels) {
			at.Molname = P.ResLabels[resno]
		}
		at.Molid = resno + 1
		if i < len(P.Sigma) {
			at.Sigma = P.Sigma[i]
			at.Epsilon = P.Epsilon[i]
		}
		if s, err := SymbolFromName(at.Name); err == nil {
			at.Symbol = s
		} else {
			at.Symbol = "X"
		}
		atoms[i] = at
	}
	sizes := P.AtomsPerMolecule
	if len(sizes) == 0 {
		sizes = []int{P.NAtoms}
	}
	sys := NewSystem()
	start := 0
	for _, n := range sizes {
		if start+n > P.NAtoms {
			return nil, NewError("ToSystem: ATOMS_PER_MOLECULE exceeds the atom count")
		}
		sub := mat.NewDense(n, 3, nil)
		sub.Copy(coords.Slice(start, start+n, 0, 3))
		mol, err := NewMolecule(atoms[start:start+n], sub)
		if err != nil {
			return nil, errDecorate(err, "ToSystem")
		}
		var q float64
		for _, at := range mol.Atoms {
			q += at.Charge
		}
		mol.SetCharge(int(math.Round(q)))
		for _, b := range P.Bonds {
			if b[0] >= start && b[0] < start+n && b[1] >= start && b[1] < start+n {
				mol.AddBond(b[0]-start, b[1]-start, 0)
			}
		}
		sys.AddMolecules(mol)
		start += n
	}
	return sys, nil
}

// ReadMolecules loads a molecular system from files. A single path must be
// a PDB or XYZ file; a topology/coordinates pair must be a prm7 file plus
// an rst7 file, in either order. This mirrors the file-set inputs of the
// workflow gateway.
func ReadMolecules(files ...string) (*System, error) {
	switch len(files) {
	case 1:
		name := strings.ToLower(files[0])
		if strings.HasSuffix(name, ".xyz") {
			return XYZRead(files[0])
		}
		return PDBRead(files[0])
	case 2:
		prm, rst := files[0], files[1]
		if strings.HasSuffix(strings.ToLower(prm), ".rst7") || strings.HasSuffix(strings.ToLower(rst), ".prm7") {
			prm, rst = rst, prm
		}
		top, err := Prm7Read(prm)
		if err != nil {
			return nil, errDecorate(err, "ReadMolecules")
		}
		coords, err := Rst7Read(rst)
		if err != nil {
			return nil, errDecorate(err, "ReadMolecules")
		}
		sys, err := top.ToSystem(coords)
		if err != nil {
			return nil, errDecorate(err, "ReadMolecules")
		}
		return sys, nil
	default:
		return nil, NewError(fmt.Sprintf("ReadMolecules: want one structure file or a topology/coordinates pair, got %d files", len(files)))
	}
}

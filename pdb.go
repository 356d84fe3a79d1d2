/*
 * pdb.go, part of BioSimSpace.
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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// parsePDBLine reads one ATOM/HETATM line and returns the atom and its
// coordinates.
func parsePDBLine(line string) (*Atom, []float64, error) {
	if len(line) < 54 {
		return nil, nil, NewError(fmt.Sprintf("parsePDBLine: line too short: %q", line))
	}
	at := new(Atom)
	at.Het = strings.HasPrefix(line, "HETATM")
	var err error
	at.ID, err = strconv.Atoi(strings.TrimSpace(line[6:11]))
	if err != nil {
		return nil, nil, errDecorate(err, "parsePDBLine: serial")
	}
	at.Name = strings.TrimSpace(line[12:16])
	at.Molname = strings.TrimSpace(line[17:20])
	at.Chain = strings.TrimSpace(line[21:22])
	at.Molid, err = strconv.Atoi(strings.TrimSpace(line[22:26]))
	if err != nil {
		return nil, nil, errDecorate(err, "parsePDBLine: resSeq")
	}
	coords := make([]float64, 3)
	for i, span := range [][2]int{{30, 38}, {38, 46}, {46, 54}} {
		coords[i], err = strconv.ParseFloat(strings.TrimSpace(line[span[0]:span[1]]), 64)
		if err != nil {
			return nil, nil, errDecorate(err, "parsePDBLine: coordinates")
		}
	}
	if len(line) >= 60 {
		at.Occupancy, _ = strconv.ParseFloat(strings.TrimSpace(line[54:60]), 64)
	}
	if len(line) >= 66 {
		at.Bfactor, _ = strconv.ParseFloat(strings.TrimSpace(line[60:66]), 64)
	}
	if len(line) >= 78 {
		at.Symbol = strings.TrimSpace(line[76:78])
		if at.Symbol != "" {
			at.Symbol = strings.ToUpper(at.Symbol[:1]) + strings.ToLower(at.Symbol[1:])
		}
	}
	if at.Symbol == "" {
		at.Symbol, err = SymbolFromName(at.Name)
		if err != nil {
			return nil, nil, errDecorate(err, "parsePDBLine")
		}
	}
	at.Mass, _ = MassFromSymbol(at.Symbol) //a zero mass is tolerable at this stage
	return at, coords, nil
}

// PDBRead reads a PDB file and returns a system with one molecule per
// TER-delimited record block, in file order. Only the first MODEL of a
// multi-model file is read.
func PDBRead(pdbname string) (*System, error) {
	f, err := os.Open(pdbname)
	if err != nil {
		return nil, errDecorate(err, "PDBRead")
	}
	defer f.Close()
	sys := NewSystem()
	var atoms []*Atom
	var coords []float64
	flush := func() error {
		if len(atoms) == 0 {
			return nil
		}
		mol, err := NewMolecule(atoms, mat.NewDense(len(atoms), 3, coords))
		if err != nil {
			return errDecorate(err, "PDBRead")
		}
		sys.AddMolecules(mol)
		atoms = nil
		coords = nil
		return nil
	}
	scan := bufio.NewScanner(f)
	for scan.Scan() {
		line := scan.Text()
		switch {
		case strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM"):
			at, c, err := parsePDBLine(line)
			if err != nil {
				return nil, err
			}
			atoms = append(atoms, at)
			coords = append(coords, c...)
		case strings.HasPrefix(line, "TER"):
			if err := flush(); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "ENDMDL"):
			if err := flush(); err != nil {
				return nil, err
			}
			if err := scan.Err(); err != nil {
				return nil, errDecorate(err, "PDBRead")
			}
			if sys.NMolecules() == 0 {
				return nil, NewError("PDBRead: no atoms before ENDMDL")
			}
			return sys, nil
		}
	}
	if err := scan.Err(); err != nil {
		return nil, errDecorate(err, "PDBRead")
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if sys.NMolecules() == 0 {
		return nil, NewError(fmt.Sprintf("PDBRead: no atoms found in %s", pdbname))
	}
	return sys, nil
}

// writePDBAtom writes one ATOM/HETATM line for the atom at position i of
// mol.
func writePDBAtom(out *bufio.Writer, mol *Molecule, i int) error {
	at := mol.Atom(i)
	first := "ATOM"
	if at.Het {
		first = "HETATM"
	}
	c := mol.Coord(i)
	chain := at.Chain
	if chain == "" {
		chain = " "
	}
	name := at.Name
	var err error
	//4-char atom names start one column earlier.
	if len(name) < 4 {
		_, err = fmt.Fprintf(out, "%-6s%5d  %-3s %-3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s\n",
			first, at.ID, name, at.Molname, chain, at.Molid, c[0], c[1], c[2], at.Occupancy, at.Bfactor, at.Symbol)
	} else if len(name) == 4 {
		_, err = fmt.Fprintf(out, "%-6s%5d %4s %-3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s\n",
			first, at.ID, name, at.Molname, chain, at.Molid, c[0], c[1], c[2], at.Occupancy, at.Bfactor, at.Symbol)
	} else {
		err = NewError(fmt.Sprintf("writePDBAtom: atom name %q too long for a PDB line", name))
	}
	return err
}

// PDBWrite writes the molecules of sys as a PDB file, one TER record after
// each molecule.
func PDBWrite(pdbname string, sys *System) error {
	out, err := os.Create(pdbname)
	if err != nil {
		return errDecorate(err, "PDBWrite")
	}
	defer out.Close()
	buf := bufio.NewWriter(out)
	fmt.Fprint(buf, "REMARK WRITTEN WITH BIOSIMSPACE\n")
	for _, mol := range sys.Molecules() {
		for i := 0; i < mol.Len(); i++ {
			if err := writePDBAtom(buf, mol, i); err != nil {
				return err
			}
		}
		fmt.Fprint(buf, "TER\n")
	}
	fmt.Fprint(buf, "END\n")
	if err := buf.Flush(); err != nil {
		return errDecorate(err, "PDBWrite")
	}
	return nil
}

// PDBWriteMol writes a single molecule as a PDB file.
func PDBWriteMol(pdbname string, mol *Molecule) error {
	return PDBWrite(pdbname, NewSystem(mol))
}

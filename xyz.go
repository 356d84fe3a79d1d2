/*
 * xyz.go, part of BioSimSpace.
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

// XYZRead reads an XYZ file and returns a system with a single molecule.
func XYZRead(xyzname string) (*System, error) {
	f, err := os.Open(xyzname)
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	defer f.Close()
	scan := bufio.NewScanner(f)
	if !scan.Scan() {
		return nil, NewError(fmt.Sprintf("XYZRead: empty file %s", xyzname))
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(scan.Text()))
	if err != nil {
		return nil, errDecorate(err, "XYZRead: atom count")
	}
	scan.Scan() //comment line
	atoms := make([]*Atom, 0, natoms)
	coords := make([]float64, 0, natoms*3)
	for i := 0; i < natoms; i++ {
		if !scan.Scan() {
			return nil, NewError(fmt.Sprintf("XYZRead: %s declares %d atoms but has %d", xyzname, natoms, i))
		}
		fields := strings.Fields(scan.Text())
		if len(fields) < 4 {
			return nil, NewError(fmt.Sprintf("XYZRead: malformed line %d in %s", i+3, xyzname))
		}
		at := new(Atom)
		at.Symbol = fields[0]
		at.Name = fmt.Sprintf("%s%d", fields[0], i+1)
		at.ID = i + 1
		at.Molname = "LIG"
		at.Molid = 1
		at.Mass, _ = MassFromSymbol(at.Symbol)
		for j := 1; j < 4; j++ {
			v, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, errDecorate(err, "XYZRead: coordinates")
			}
			coords = append(coords, v)
		}
		atoms = append(atoms, at)
	}
	mol, err := NewMolecule(atoms, mat.NewDense(natoms, 3, coords))
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	return NewSystem(mol), nil
}

// XYZWrite writes a molecule as an XYZ file.
func XYZWrite(xyzname string, mol *Molecule) error {
	out, err := os.Create(xyzname)
	if err != nil {
		return errDecorate(err, "XYZWrite")
	}
	defer out.Close()
	buf := bufio.NewWriter(out)
	fmt.Fprintf(buf, "%d\n\n", mol.Len())
	for i := 0; i < mol.Len(); i++ {
		c := mol.Coord(i)
		fmt.Fprintf(buf, "%-2s  %12.6f %12.6f %12.6f\n", mol.Atom(i).Symbol, c[0], c[1], c[2])
	}
	if err := buf.Flush(); err != nil {
		return errDecorate(err, "XYZWrite")
	}
	return nil
}

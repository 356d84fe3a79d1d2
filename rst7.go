/*
 * rst7.go, part of BioSimSpace.
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

//Reading and writing of Amber7 ASCII restart files (rst7). These carry one
//set of coordinates, in A, in fixed 12-character fields, six per line.

package bss

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Rst7Read reads an Amber restart file and returns its coordinates as an
// Nx3 matrix. Velocities and box information, if present, are ignored.
func Rst7Read(rstname string) (*mat.Dense, error) {
	f, err := os.Open(rstname)
	if err != nil {
		return nil, errDecorate(err, "Rst7Read")
	}
	defer f.Close()
	scan := bufio.NewScanner(f)
	if !scan.Scan() {
		return nil, NewError(fmt.Sprintf("Rst7Read: empty file %s", rstname))
	}
	//the first line is the title
	if !scan.Scan() {
		return nil, NewError(fmt.Sprintf("Rst7Read: truncated file %s", rstname))
	}
	fields := strings.Fields(scan.Text())
	if len(fields) == 0 {
		return nil, NewError(fmt.Sprintf("Rst7Read: missing atom count in %s", rstname))
	}
	natoms, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, errDecorate(err, "Rst7Read: atom count")
	}
	coords := make([]float64, 0, natoms*3)
	for scan.Scan() && len(coords) < natoms*3 {
		line := scan.Text()
		//fixed 12-char fields: adjacent values can touch, so no Fields here
		for i := 0; i+12 <= len(line) && len(coords) < natoms*3; i += 12 {
			field := strings.TrimSpace(line[i : i+12])
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errDecorate(err, "Rst7Read: coordinates")
			}
			coords = append(coords, v)
		}
	}
	if len(coords) < natoms*3 {
		return nil, NewError(fmt.Sprintf("Rst7Read: %s declares %d atoms but carries %d coordinates", rstname, natoms, len(coords)))
	}
	return mat.NewDense(natoms, 3, coords), nil
}

// Rst7Write writes the coordinate set coords as an Amber restart file with
// the given title.
func Rst7Write(rstname, title string, coords *mat.Dense) error {
	r, c := coords.Dims()
	if c != 3 {
		return NewError("Rst7Write: ill-formed coordinate matrix")
	}
	out, err := os.Create(rstname)
	if err != nil {
		return errDecorate(err, "Rst7Write")
	}
	defer out.Close()
	buf := bufio.NewWriter(out)
	fmt.Fprintf(buf, "%s\n%5d\n", title, r)
	written := 0
	for i := 0; i < r; i++ {
		for j := 0; j < 3; j++ {
			fmt.Fprintf(buf, "%12.7f", coords.At(i, j))
			written++
			if written%6 == 0 {
				fmt.Fprint(buf, "\n")
			}
		}
	}
	if written%6 != 0 {
		fmt.Fprint(buf, "\n")
	}
	if err := buf.Flush(); err != nil {
		return errDecorate(err, "Rst7Write")
	}
	return nil
}

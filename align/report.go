/*
 * report.go, part of BioSimSpace.
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
	"io"
	"os"

	bss "github.com/yuanlongping/BioSimSpace"
)

// FprintMapping writes a human readable report of the atoms used in a
// mapping to w: one "<nameA> --> <nameB>" line per entry, in the mapping's
// own order. An empty mapping writes nothing.
func FprintMapping(w io.Writer, ligA, ligB *bss.Molecule, m *Mapping) error {
	for i := 0; i < m.Len(); i++ {
		a, b := m.Pair(i)
		if a < 0 || a >= ligA.Len() || b < 0 || b >= ligB.Len() {
			return bss.NewError("FprintMapping: mapping index out of range")
		}
		if _, err := fmt.Fprintf(w, "%s --> %s\n", ligA.Atom(a).Name, ligB.Atom(b).Name); err != nil {
			return err
		}
	}
	return nil
}

// WriteMappingReport writes the mapping report to a new file with the given
// name. The file is closed whatever happens after its creation; an empty
// mapping leaves an empty file.
func WriteMappingReport(filename string, ligA, ligB *bss.Molecule, m *Mapping) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	err = FprintMapping(out, ligA, ligB, m)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

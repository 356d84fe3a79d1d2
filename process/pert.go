/*
 * pert.go, part of BioSimSpace.
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

package process

import (
	"fmt"
	"io"
	"os"

	"github.com/yuanlongping/BioSimSpace/align"
)

// FprintPert writes the perturbation description of a merged molecule to w,
// one atom block per atom, with the types, Lennard-Jones parameters and
// charges of both end states.
func FprintPert(w io.Writer, merged *align.Merged) error {
	if merged == nil || len(merged.Perturbed) == 0 {
		return Error{ErrCantInput, "SOMD", "", "nothing to perturb", []string{"FprintPert"}, true}
	}
	var err error
	p := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}
	p("version 1\n")
	p("molecule %s\n", merged.Name)
	for _, ma := range merged.Perturbed {
		p("    atom\n")
		p("        name           %s\n", ma.State0.Name)
		p("        initial_type   %s\n", ma.State0.Type)
		p("        final_type     %s\n", ma.State1.Type)
		p("        initial_LJ     %.5f %.5f\n", ma.State0.Sigma, ma.State0.Epsilon)
		p("        final_LJ       %.5f %.5f\n", ma.State1.Sigma, ma.State1.Epsilon)
		p("        initial_charge %.5f\n", ma.State0.Charge)
		p("        final_charge   %.5f\n", ma.State1.Charge)
		p("    endatom\n")
	}
	p("endmolecule\n")
	return err
}

// WritePert writes the perturbation description of a merged molecule to
// the file filename.
func WritePert(filename string, merged *align.Merged) error {
	out, err := os.Create(filename)
	if err != nil {
		return Error{ErrCantInput, "SOMD", "", err.Error(), []string{"WritePert"}, true}
	}
	err = FprintPert(out, merged)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

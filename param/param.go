/*
 * param.go, part of BioSimSpace.
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

//Package param parameterises molecules by driving the AmberTools
//executables. You need a working AmberTools installation to actually run
//the handles; building their inputs works without one.
package param

import (
	"fmt"
	"sort"
	"strings"

	bss "github.com/yuanlongping/BioSimSpace"
)

// Parameteriser drives an external program chain that turns a molecule
// into a force-field-ready topology/coordinates file pair.
type Parameteriser interface {

	//SetName sets the root name used for all input and output files.
	SetName(name string)

	//SetWorkDir sets the directory where the files are placed.
	SetWorkDir(dir string)

	//BuildInput writes the input files for the external programs.
	BuildInput(mol *bss.Molecule) error

	//Run runs the external program chain, waiting for it to finish or
	//not depending on wait.
	Run(wait bool) error

	//Results returns the paths of the topology and coordinates files
	//produced, or an error if they are missing.
	Results() (string, string, error)
}

var forcefields = map[string]func() Parameteriser{
	"gaff":    func() Parameteriser { return NewAmberHandle("gaff") },
	"gaff2":   func() Parameteriser { return NewAmberHandle("gaff2") },
	"ff99SB":  func() Parameteriser { return NewAmberHandle("ff99SB") },
	"ff14SB":  func() Parameteriser { return NewAmberHandle("ff14SB") },
	"ff19SB":  func() Parameteriser { return NewAmberHandle("ff19SB") },
}

// ForceFields returns the names of the supported force fields, sorted.
func ForceFields() []string {
	names := make([]string, 0, len(forcefields))
	for name := range forcefields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns a parameteriser for the named force field.
func New(forcefield string) (Parameteriser, error) {
	mk, ok := forcefields[forcefield]
	if !ok {
		return nil, Error{ErrNoForceField, forcefield, "", fmt.Sprintf("supported force fields are %s", strings.Join(ForceFields(), ", ")), []string{"New"}, true}
	}
	return mk(), nil
}

//Errors

const (
	ErrNoForceField = "param: Force field not supported"
	ErrCantInput    = "param: Can't build the input files"
	ErrNotRunning   = "param: External program not running or not correctly ended"
	ErrNoOutput     = "param: Expected output files missing"
)

// Error is the error type for the parameterisation handles.
type Error struct {
	message    string
	forcefield string
	inputname  string
	extra      string
	deco       []string
	critical   bool
}

func (err Error) Error() string {
	s := fmt.Sprintf("%s. Force field: %s", err.message, err.forcefield)
	if err.inputname != "" {
		s += fmt.Sprintf(", input name: %s", err.inputname)
	}
	if err.extra != "" {
		s += ". " + err.extra
	}
	return s
}

// Decorate adds dec to the decoration trace, unless dec is empty, and
// returns the current trace.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical reports whether the error should abort the workflow.
func (err Error) Critical() bool {
	return err.critical
}

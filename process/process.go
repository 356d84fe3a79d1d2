/*
 * process.go, part of BioSimSpace.
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

//Package process runs molecular-dynamics packages on a prepared system.
//Each supported package gets a handle that writes its input files, starts
//the executable and collects the output archive.
package process

import (
	"fmt"
	"sort"

	"github.com/yuanlongping/BioSimSpace/align"
	"github.com/yuanlongping/BioSimSpace/protocol"

	bss "github.com/yuanlongping/BioSimSpace"
)

// Process is the interface of a simulation-package handle.
type Process interface {

	//SetName sets the root name for input and output files.
	SetName(name string)

	//WorkDir returns the directory the process runs in.
	WorkDir() string

	//BuildInput writes the package-specific input files.
	BuildInput() error

	//Run starts the executable, waiting for it or not depending on wait.
	Run(wait bool) error

	//Output returns the files extracted from the output archive of a
	//finished run.
	Output() ([]string, error)
}

var packages = map[string]func(*bss.System, *align.Merged, *protocol.FreeEnergy) Process{
	"SOMD": func(sys *bss.System, merged *align.Merged, p *protocol.FreeEnergy) Process {
		return NewSomd(sys, merged, p)
	},
}

// Packages returns the names of the supported molecular-dynamics packages,
// sorted.
func Packages() []string {
	names := make([]string, 0, len(packages))
	for name := range packages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create returns a process handle for the named package.
func Create(name string, sys *bss.System, merged *align.Merged, p *protocol.FreeEnergy) (Process, error) {
	mk, ok := packages[name]
	if !ok {
		return nil, Error{ErrNoPackage, name, "", fmt.Sprintf("supported packages are %v", Packages()), []string{"Create"}, true}
	}
	return mk(sys, merged, p), nil
}

//Errors

const (
	ErrNoPackage  = "process: Simulation package not supported"
	ErrCantInput  = "process: Can't build the input files"
	ErrNotRunning = "process: Executable not running or not correctly ended"
	ErrNoOutput   = "process: Output archive missing"
)

// Error is the error type for the process handles.
type Error struct {
	message   string
	pkg       string
	inputname string
	extra     string
	deco      []string
	critical  bool
}

func (err Error) Error() string {
	s := fmt.Sprintf("%s. Package: %s", err.message, err.pkg)
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

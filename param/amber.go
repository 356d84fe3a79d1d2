/*
 * amber.go, part of BioSimSpace.
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

//You need the AmberTools suite to run this handle. Please cite the
//AmberTools references if you use it.

package param

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	bss "github.com/yuanlongping/BioSimSpace"
)

// AmberHandle parameterises a molecule with an Amber force field. For the
// small-molecule force fields (gaff, gaff2) it chains antechamber and
// parmchk2 before tleap; for the protein force fields it runs tleap alone
// on the PDB input.
type AmberHandle struct {
	forcefield   string
	antechamber  string
	parmchk2     string
	tleap        string
	name         string
	workdir      string
	chargeMethod string
	netCharge    int
	commands     []string
}

// NewAmberHandle returns a handle for the given Amber force field, with
// defaults set.
func NewAmberHandle(forcefield string) *AmberHandle {
	h := new(AmberHandle)
	h.forcefield = forcefield
	h.SetDefaults()
	return h
}

// SetDefaults resets the handle to its default commands and options. The
// AmberTools executables are taken from $AMBERHOME/bin when AMBERHOME is
// set, and from the PATH otherwise.
func (O *AmberHandle) SetDefaults() {
	bin := func(prog string) string {
		if home := os.Getenv("AMBERHOME"); home != "" {
			return filepath.Join(home, "bin", prog)
		}
		return prog
	}
	O.antechamber = bin("antechamber")
	O.parmchk2 = bin("parmchk2")
	O.tleap = bin("tleap")
	O.name = "bss"
	O.workdir = "."
	O.chargeMethod = "bcc"
}

// SetName sets the root name used for all input and output files.
func (O *AmberHandle) SetName(name string) {
	O.name = name
}

// SetWorkDir sets the directory where the files are placed.
func (O *AmberHandle) SetWorkDir(dir string) {
	O.workdir = dir
}

// SetChargeMethod sets the antechamber charge method (bcc by default).
func (O *AmberHandle) SetChargeMethod(method string) {
	O.chargeMethod = method
}

// ligand reports whether the force field goes through the antechamber
// chain rather than a plain tleap load.
func (O *AmberHandle) ligand() bool {
	return strings.HasPrefix(O.forcefield, "gaff")
}

func (O *AmberHandle) path(suffix string) string {
	return filepath.Join(O.workdir, O.name+suffix)
}

// BuildInput writes the PDB input, the tleap script and, for the ligand
// force fields, prepares the antechamber and parmchk2 command lines.
func (O *AmberHandle) BuildInput(mol *bss.Molecule) error {
	if mol == nil {
		return Error{ErrCantInput, O.forcefield, O.name, "nil molecule", []string{"BuildInput"}, true}
	}
	if err := os.MkdirAll(O.workdir, 0o755); err != nil {
		return Error{ErrCantInput, O.forcefield, O.name, err.Error(), []string{"BuildInput"}, true}
	}
	if err := bss.PDBWriteMol(O.path(".pdb"), mol); err != nil {
		return Error{ErrCantInput, O.forcefield, O.name, err.Error(), []string{"BuildInput"}, true}
	}
	O.netCharge = mol.Charge()
	leap, err := os.Create(O.path(".leap.in"))
	if err != nil {
		return Error{ErrCantInput, O.forcefield, O.name, err.Error(), []string{"BuildInput"}, true}
	}
	defer leap.Close()
	O.commands = nil
	if O.ligand() {
		fmt.Fprintf(leap, "source leaprc.%s\n", O.forcefield)
		fmt.Fprintf(leap, "loadamberparams %s.frcmod\n", O.name)
		fmt.Fprintf(leap, "mol = loadmol2 %s.mol2\n", O.name)
		O.commands = append(O.commands,
			fmt.Sprintf("%s -i %s.pdb -fi pdb -o %s.mol2 -fo mol2 -c %s -nc %d -at %s",
				O.antechamber, O.name, O.name, O.chargeMethod, O.netCharge, O.forcefield),
			fmt.Sprintf("%s -i %s.mol2 -f mol2 -o %s.frcmod -s %d",
				O.parmchk2, O.name, O.name, O.parmchkFF()),
		)
	} else {
		fmt.Fprintf(leap, "source leaprc.protein.%s\n", O.forcefield)
		fmt.Fprintf(leap, "mol = loadpdb %s.pdb\n", O.name)
	}
	fmt.Fprintf(leap, "saveamberparm mol %s.prm7 %s.rst7\n", O.name, O.name)
	fmt.Fprint(leap, "quit\n")
	O.commands = append(O.commands, fmt.Sprintf("%s -f %s.leap.in", O.tleap, O.name))
	return nil
}

// parmchk2 numbers the gaff variants.
func (O *AmberHandle) parmchkFF() int {
	if O.forcefield == "gaff2" {
		return 2
	}
	return 1
}

// Run runs the external program chain in the work directory. It waits for
// the result or not depending on wait; not waiting only works on
// unix-compatible systems, as it uses sh and nohup.
func (O *AmberHandle) Run(wait bool) error {
	if len(O.commands) == 0 {
		return Error{ErrNotRunning, O.forcefield, O.name, "BuildInput was not called", []string{"Run"}, true}
	}
	com := fmt.Sprintf("cd %s && %s > %s.out 2>&1", O.workdir, strings.Join(O.commands, " && "), O.name)
	var err error
	if wait {
		log.Printf("param: %s", com)
		err = exec.Command("sh", "-c", com).Run()
	} else {
		err = exec.Command("sh", "-c", "nohup "+com).Start()
	}
	if err != nil {
		return Error{ErrNotRunning, O.forcefield, O.name, err.Error(), []string{"exec.Run", "Run"}, true}
	}
	return nil
}

// Results returns the topology and coordinates files produced by the run,
// or an error if either is missing.
func (O *AmberHandle) Results() (string, string, error) {
	prm7 := O.path(".prm7")
	rst7 := O.path(".rst7")
	for _, f := range []string{prm7, rst7} {
		if _, err := os.Stat(f); err != nil {
			return "", "", Error{ErrNoOutput, O.forcefield, O.name, fmt.Sprintf("missing %s", f), []string{"Results"}, true}
		}
	}
	return prm7, rst7, nil
}

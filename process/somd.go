/*
 * somd.go, part of BioSimSpace.
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

//You need the somd-freenrg executable (part of the Sire/SOMD
//distribution) to run this handle. Building its inputs works without it.

package process

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zip"

	"github.com/yuanlongping/BioSimSpace/align"
	"github.com/yuanlongping/BioSimSpace/protocol"

	bss "github.com/yuanlongping/BioSimSpace"
)

// Somd is a process handle for the SOMD free-energy engine. It writes the
// configuration, perturbation, coordinates and topology files into its own
// work directory, runs somd-freenrg, and extracts the output archive the
// run leaves behind.
type Somd struct {
	command  string
	platform string
	name     string
	workdir  string
	topfile  string
	system   *bss.System
	merged   *align.Merged
	protocol *protocol.FreeEnergy
	built    bool
	ran      bool
}

// NewSomd returns a SOMD handle for the given system, merged molecule and
// protocol, with defaults set.
func NewSomd(sys *bss.System, merged *align.Merged, p *protocol.FreeEnergy) *Somd {
	O := new(Somd)
	O.system = sys
	O.merged = merged
	O.protocol = p
	O.SetDefaults()
	return O
}

// SetDefaults resets the handle to its default command and options. Each
// handle gets its own work directory, so concurrent runs do not trample
// each other's files.
func (O *Somd) SetDefaults() {
	O.command = "somd-freenrg"
	O.platform = "CPU"
	O.name = "somd"
	O.workdir = fmt.Sprintf("somd-%s", uuid.NewString()[:8])
}

// SetName sets the root name for input and output files.
func (O *Somd) SetName(name string) {
	O.name = name
}

// SetWorkDir overrides the work directory.
func (O *Somd) SetWorkDir(dir string) {
	O.workdir = dir
}

// SetPlatform sets the compute platform passed to somd-freenrg (CPU,
// CUDA or OpenCL).
func (O *Somd) SetPlatform(platform string) {
	O.platform = platform
}

// SetTopology sets the Amber topology file copied into the work directory
// for the run. SOMD reads the perturbation on top of this topology.
func (O *Somd) SetTopology(prm7 string) {
	O.topfile = prm7
}

// WorkDir returns the directory the process runs in.
func (O *Somd) WorkDir() string {
	return O.workdir
}

func (O *Somd) path(suffix string) string {
	return filepath.Join(O.workdir, O.name+suffix)
}

// BuildInput creates the work directory and writes the configuration file,
// the perturbation file, the lambda=0 coordinates and the topology.
func (O *Somd) BuildInput() error {
	if O.merged == nil || O.protocol == nil {
		return Error{ErrCantInput, "SOMD", O.name, "nil merged molecule or protocol", []string{"BuildInput"}, true}
	}
	if err := O.protocol.Validate(); err != nil {
		return errDecorate(err, "BuildInput")
	}
	if O.topfile == "" {
		return Error{ErrCantInput, "SOMD", O.name, "no topology set (SetTopology)", []string{"BuildInput"}, true}
	}
	if err := os.MkdirAll(O.workdir, 0o755); err != nil {
		return Error{ErrCantInput, "SOMD", O.name, err.Error(), []string{"BuildInput"}, true}
	}
	if err := O.writeCfg(); err != nil {
		return err
	}
	if err := WritePert(O.path(".pert"), O.merged); err != nil {
		return errDecorate(err, "BuildInput")
	}
	if err := bss.PDBWriteMol(O.path(".pdb"), O.merged.Molecule); err != nil {
		return errDecorate(err, "BuildInput")
	}
	if err := bss.Rst7Write(O.path(".rst7"), O.merged.Name, O.merged.Coords); err != nil {
		return errDecorate(err, "BuildInput")
	}
	if err := copyFile(O.topfile, O.path(".prm7")); err != nil {
		return Error{ErrCantInput, "SOMD", O.name, err.Error(), []string{"BuildInput"}, true}
	}
	O.built = true
	return nil
}

func (O *Somd) writeCfg() error {
	cfg, err := os.Create(O.path(".cfg"))
	if err != nil {
		return Error{ErrCantInput, "SOMD", O.name, err.Error(), []string{"writeCfg"}, true}
	}
	defer cfg.Close()
	lams := make([]string, len(O.protocol.LamVals))
	for i, l := range O.protocol.LamVals {
		lams[i] = fmt.Sprintf("%.4f", l)
	}
	fmt.Fprintf(cfg, "morphfile = %s.pert\n", O.name)
	fmt.Fprintf(cfg, "topfile = %s.prm7\n", O.name)
	fmt.Fprintf(cfg, "crdfile = %s.rst7\n", O.name)
	fmt.Fprint(cfg, "perturbed residue number = 1\n")
	fmt.Fprintf(cfg, "nmoves = %d\n", O.protocol.NSteps())
	fmt.Fprint(cfg, "ncycles = 1\n")
	fmt.Fprintf(cfg, "timestep = %.2f femtosecond\n", O.protocol.Timestep.Femtoseconds())
	fmt.Fprintf(cfg, "temperature = %.2f kelvin\n", O.protocol.Temperature)
	fmt.Fprint(cfg, "constraint = hbonds-notperturbed\n")
	fmt.Fprint(cfg, "energy frequency = 250\n")
	fmt.Fprintf(cfg, "lambda array = %s\n", strings.Join(lams, ", "))
	fmt.Fprintf(cfg, "lambda_val = %.4f\n", O.protocol.LamVals[0])
	return nil
}

// Run runs somd-freenrg in the work directory. It waits for the result or
// not depending on wait; not waiting only works on unix-compatible
// systems, as it uses sh and nohup.
func (O *Somd) Run(wait bool) error {
	if !O.built {
		return Error{ErrNotRunning, "SOMD", O.name, "BuildInput was not called", []string{"Run"}, true}
	}
	com := fmt.Sprintf("cd %s && %s -C %s.cfg -p %s > %s.out 2> %s.err",
		O.workdir, O.command, O.name, O.platform, O.name, O.name)
	var err error
	if wait {
		log.Printf("process: %s", com)
		err = exec.Command("sh", "-c", com).Run()
	} else {
		err = exec.Command("sh", "-c", "nohup "+com).Start()
	}
	if err != nil {
		return Error{ErrNotRunning, "SOMD", O.name, err.Error(), []string{"exec.Run", "Run"}, true}
	}
	O.ran = wait
	return nil
}

// Output extracts the archive a finished run leaves in the work directory
// and returns the paths of the extracted files. A zero exit status alone
// is not trusted: the archive itself has to be there.
func (O *Somd) Output() ([]string, error) {
	if !O.ran {
		return nil, Error{ErrNotRunning, "SOMD", O.name, "no finished run", []string{"Output"}, true}
	}
	zipname := O.path(".zip")
	if _, err := os.Stat(zipname); err != nil {
		return nil, Error{ErrNoOutput, "SOMD", O.name, fmt.Sprintf("missing %s", zipname), []string{"Output"}, true}
	}
	files, err := Unzip(zipname, O.workdir)
	if err != nil {
		return nil, errDecorate(err, "Output")
	}
	sort.Strings(files)
	return files, nil
}

// Unzip extracts the archive zipname into the directory dir and returns
// the paths of the extracted files. Entries trying to escape dir are an
// error.
func Unzip(zipname, dir string) ([]string, error) {
	r, err := zip.OpenReader(zipname)
	if err != nil {
		return nil, Error{ErrNoOutput, "SOMD", "", err.Error(), []string{"Unzip"}, true}
	}
	defer r.Close()
	var files []string
	for _, f := range r.File {
		dest := filepath.Join(dir, f.Name)
		if !strings.HasPrefix(dest, filepath.Clean(dir)+string(os.PathSeparator)) {
			return nil, Error{ErrNoOutput, "SOMD", "", fmt.Sprintf("archive entry escapes %s: %s", dir, f.Name), []string{"Unzip"}, true}
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(dest, 0o755); err != nil {
				return nil, Error{ErrNoOutput, "SOMD", "", err.Error(), []string{"Unzip"}, true}
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return nil, Error{ErrNoOutput, "SOMD", "", err.Error(), []string{"Unzip"}, true}
		}
		if err := extractOne(f, dest); err != nil {
			return nil, err
		}
		files = append(files, dest)
	}
	return files, nil
}

func extractOne(f *zip.File, dest string) error {
	in, err := f.Open()
	if err != nil {
		return Error{ErrNoOutput, "SOMD", "", err.Error(), []string{"extractOne"}, true}
	}
	defer in.Close()
	out, err := os.Create(dest)
	if err != nil {
		return Error{ErrNoOutput, "SOMD", "", err.Error(), []string{"extractOne"}, true}
	}
	_, err = io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return Error{ErrNoOutput, "SOMD", "", err.Error(), []string{"extractOne"}, true}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	_, err = io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

// errDecorate mirrors the root package's helper for the local error type.
func errDecorate(err error, caller string) error {
	if e, ok := err.(bss.Error); ok {
		e.Decorate(caller)
		return e
	}
	return Error{err.Error(), "SOMD", "", "", []string{caller}, true}
}

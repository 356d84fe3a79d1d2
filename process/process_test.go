/*
 * process_test.go, part of BioSimSpace.
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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"

	"github.com/yuanlongping/BioSimSpace/align"
	"github.com/yuanlongping/BioSimSpace/protocol"

	bss "github.com/yuanlongping/BioSimSpace"
)

// testMerged builds a merged molecule from the propane/propanol test pair.
func testMerged(Te *testing.T) (*bss.System, *align.Merged) {
	sys1, err := bss.PDBRead(filepath.Join("..", "test", "lig1.pdb"))
	if err != nil {
		Te.Fatal(err)
	}
	sys2, err := bss.PDBRead(filepath.Join("..", "test", "lig2.pdb"))
	if err != nil {
		Te.Fatal(err)
	}
	lig1, lig2 := sys1.First(), sys2.First()
	mappings, err := align.MatchAtoms(lig1, lig2, nil)
	if err != nil {
		Te.Fatal(err)
	}
	m := mappings[0]
	lig2, err = align.RMSDAlign(lig2, lig1, m.Inverted())
	if err != nil {
		Te.Fatal(err)
	}
	merged, err := align.Merge(lig1, lig2, m)
	if err != nil {
		Te.Fatal(err)
	}
	sys1.RemoveMolecules(lig1)
	sys1.AddMolecules(merged.Molecule)
	return sys1, merged
}

func TestPackages(Te *testing.T) {
	if got := Packages(); len(got) != 1 || got[0] != "SOMD" {
		Te.Errorf("unexpected package list: %v", got)
	}
	if _, err := Create("GROMACS", nil, nil, nil); err == nil {
		Te.Error("expected an error for an unsupported package")
	}
}

func TestWritePert(Te *testing.T) {
	_, merged := testMerged(Te)
	pert := filepath.Join(Te.TempDir(), "somd.pert")
	if err := WritePert(pert, merged); err != nil {
		Te.Fatal(err)
	}
	b, err := os.ReadFile(pert)
	if err != nil {
		Te.Fatal(err)
	}
	text := string(b)
	if !strings.HasPrefix(text, "version 1\nmolecule LIG\n") {
		Te.Errorf("wrong pert header:\n%s", text)
	}
	if !strings.HasSuffix(text, "endmolecule\n") {
		Te.Error("pert file does not end the molecule block")
	}
	if got := strings.Count(text, "    atom\n"); got != merged.Len() {
		Te.Errorf("expected %d atom blocks, got %d", merged.Len(), got)
	}
	//the B-only oxygen is a dummy at the initial state
	if !strings.Contains(text, "initial_type   du") {
		Te.Error("no initial-state dummy in the pert file")
	}
	if strings.Contains(text, "final_type     du") {
		Te.Error("an unexpected final-state dummy appeared")
	}
}

func TestSomdBuildInput(Te *testing.T) {
	sys, merged := testMerged(Te)
	p, err := protocol.NewFreeEnergy(2*bss.Femtosecond, 3)
	if err != nil {
		Te.Fatal(err)
	}
	proc, err := Create("SOMD", sys, merged, p)
	if err != nil {
		Te.Fatal(err)
	}
	somd := proc.(*Somd)
	somd.SetWorkDir(Te.TempDir())
	//no topology set yet
	if err := somd.BuildInput(); err == nil {
		Te.Error("expected an error with no topology")
	}
	somd.SetTopology(filepath.Join("..", "test", "lig1.prm7"))
	if err := somd.BuildInput(); err != nil {
		Te.Fatal(err)
	}
	for _, suffix := range []string{".cfg", ".pert", ".pdb", ".rst7", ".prm7"} {
		if _, err := os.Stat(filepath.Join(somd.WorkDir(), "somd"+suffix)); err != nil {
			Te.Errorf("BuildInput did not write somd%s", suffix)
		}
	}
	b, err := os.ReadFile(filepath.Join(somd.WorkDir(), "somd.cfg"))
	if err != nil {
		Te.Fatal(err)
	}
	cfg := string(b)
	for _, want := range []string{
		"morphfile = somd.pert",
		"topfile = somd.prm7",
		"crdfile = somd.rst7",
		"lambda array = 0.0000, 0.5000, 1.0000",
		"lambda_val = 0.0000",
		"timestep = 2.00 femtosecond",
		"temperature = 300.00 kelvin",
	} {
		if !strings.Contains(cfg, want) {
			Te.Errorf("cfg misses %q:\n%s", want, cfg)
		}
	}
	//without a finished run there is no output to collect
	if _, err := somd.Output(); err == nil {
		Te.Error("expected an error with no finished run")
	}
}

func TestSomdDefaults(Te *testing.T) {
	a := NewSomd(nil, nil, nil)
	b := NewSomd(nil, nil, nil)
	if a.WorkDir() == b.WorkDir() {
		Te.Error("two handles share a work directory")
	}
	if !strings.HasPrefix(a.WorkDir(), "somd-") {
		Te.Errorf("unexpected work directory name %s", a.WorkDir())
	}
}

func TestUnzip(Te *testing.T) {
	dir := Te.TempDir()
	zipname := filepath.Join(dir, "somd.zip")
	f, err := os.Create(zipname)
	if err != nil {
		Te.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for name, body := range map[string]string{"somd.pert": "version 1\n", "somd.prm7": "%VERSION\n"} {
		w, err := zw.Create(name)
		if err != nil {
			Te.Fatal(err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			Te.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		Te.Fatal(err)
	}
	if err := f.Close(); err != nil {
		Te.Fatal(err)
	}
	out := filepath.Join(dir, "out")
	if err := os.MkdirAll(out, 0o755); err != nil {
		Te.Fatal(err)
	}
	files, err := Unzip(zipname, out)
	if err != nil {
		Te.Fatal(err)
	}
	if len(files) != 2 {
		Te.Fatalf("expected 2 files, got %d", len(files))
	}
	b, err := os.ReadFile(filepath.Join(out, "somd.pert"))
	if err != nil {
		Te.Fatal(err)
	}
	if string(b) != "version 1\n" {
		Te.Errorf("extracted content changed: %q", string(b))
	}
}

/*
 * node_test.go, part of BioSimSpace.
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

package gateway

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// tempFile creates an empty file for file-input tests.
func tempFile(Te *testing.T, name string) string {
	path := filepath.Join(Te.TempDir(), name)
	if err := os.WriteFile(path, []byte("x\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	return path
}

func testNode() *Node {
	node := New("A test node.")
	node.AddInput("input1", FileSetReq("A topology and coordinates file"))
	node.AddInput("output", StringReq("The root name of the output"))
	opt := StringReq("An optional knob")
	opt.Default = "gaff"
	node.AddInput("forcefield", opt)
	node.AddOutput("nodeoutput", FileSetReq("The produced files"))
	return node
}

func TestNodeInputs(Te *testing.T) {
	node := testNode()
	f := tempFile(Te, "lig.pdb")
	if err := node.SetInput("input1", f); err != nil {
		Te.Fatal(err)
	}
	if err := node.SetInput("output", "out"); err != nil {
		Te.Fatal(err)
	}
	//unknown and missing-file inputs are rejected
	if err := node.SetInput("nope", "x"); err == nil {
		Te.Error("expected an error for an undeclared input")
	}
	if err := node.SetInput("input1", "no/such/file.pdb"); err == nil {
		Te.Error("expected an error for a missing file")
	}
	got, err := node.GetInput("output")
	if err != nil || got != "out" {
		Te.Errorf("GetInput: got %q, %v", got, err)
	}
	//defaults apply when unset
	ff, err := node.GetInput("forcefield")
	if err != nil || ff != "gaff" {
		Te.Errorf("default not applied: got %q, %v", ff, err)
	}
	files, err := node.GetInputFiles("input1")
	if err != nil || len(files) != 1 || files[0] != f {
		Te.Errorf("GetInputFiles: got %v, %v", files, err)
	}
}

func TestNodeValidate(Te *testing.T) {
	node := testNode()
	if err := node.Validate(); err == nil {
		Te.Error("expected a validation error with unset required inputs")
	}
	f := tempFile(Te, "lig.pdb")
	if err := node.SetInput("input1", f); err != nil {
		Te.Fatal(err)
	}
	if err := node.SetInput("output", "out"); err != nil {
		Te.Fatal(err)
	}
	if err := node.Validate(); err == nil {
		Te.Error("expected a validation error with no output produced")
	}
	out := tempFile(Te, "out.prm7")
	if err := node.SetOutput("nodeoutput", out); err != nil {
		Te.Fatal(err)
	}
	if err := node.Validate(); err != nil {
		Te.Error(err)
	}
	//a recorded output that does not exist fails validation
	if err := node.SetOutput("nodeoutput", "gone.prm7"); err != nil {
		Te.Fatal(err)
	}
	if err := node.Validate(); err == nil {
		Te.Error("expected a validation error for a missing output file")
	}
}

func TestShowControls(Te *testing.T) {
	node := testNode()
	s := node.ShowControls()
	for _, want := range []string{"input1", "fileset", "forcefield", "default: gaff", "nodeoutput"} {
		if !strings.Contains(s, want) {
			Te.Errorf("controls miss %q:\n%s", want, s)
		}
	}
}

func TestManifest(Te *testing.T) {
	node := testNode()
	f := tempFile(Te, "lig.pdb")
	manifest := filepath.Join(Te.TempDir(), "inputs.yaml")
	body := "input1:\n  - " + f + "\noutput: out\n"
	if err := os.WriteFile(manifest, []byte(body), 0o644); err != nil {
		Te.Fatal(err)
	}
	if err := node.LoadManifest(manifest); err != nil {
		Te.Fatal(err)
	}
	got, err := node.GetInput("output")
	if err != nil || got != "out" {
		Te.Errorf("manifest did not set output: %q, %v", got, err)
	}
	files, err := node.GetInputFiles("input1")
	if err != nil || len(files) != 1 || files[0] != f {
		Te.Errorf("manifest did not set input1: %v, %v", files, err)
	}
	//round trip
	saved := filepath.Join(Te.TempDir(), "saved.yaml")
	if err := node.SaveManifest(saved); err != nil {
		Te.Fatal(err)
	}
	node2 := testNode()
	if err := node2.LoadManifest(saved); err != nil {
		Te.Fatal(err)
	}
	got, err = node2.GetInput("output")
	if err != nil || got != "out" {
		Te.Errorf("saved manifest did not restore output: %q, %v", got, err)
	}
	//typos in a manifest are errors, not silent defaults
	bad := filepath.Join(Te.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("outptu: out\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	if err := node.LoadManifest(bad); err == nil {
		Te.Error("expected an error for an unknown manifest key")
	}
}

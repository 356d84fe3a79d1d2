/*
 * preparefep.go, part of BioSimSpace.
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

//Package nodes implements the ready-made workflow nodes: self-describing
//procedures that read their inputs through a gateway node, do the work,
//and record the files they produced.
package nodes

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuanlongping/BioSimSpace/align"
	"github.com/yuanlongping/BioSimSpace/gateway"
	"github.com/yuanlongping/BioSimSpace/process"
	"github.com/yuanlongping/BioSimSpace/protocol"

	bss "github.com/yuanlongping/BioSimSpace"
)

// PrepareFEP returns the node that generates input files for a SOMD
// relative free-energy calculation: it maps the first molecule of each
// input onto the other, aligns and merges them, and writes the
// perturbation files.
func PrepareFEP() *gateway.Node {
	node := gateway.New("A node to generate input files for a SOMD relative free energy calculation.")
	node.AddAuthor("Julien Michel", "julien.michel@ed.ac.uk", "University of Edinburgh")
	node.SetLicense("GPLv3")
	node.AddInput("input1", gateway.FileSetReq("A topology and coordinates file"))
	node.AddInput("input2", gateway.FileSetReq("A topology and coordinates file"))
	node.AddInput("output", gateway.StringReq("The root name for the files describing the perturbation input1->input2."))
	node.AddOutput("nodeoutput", gateway.FileSetReq("SOMD input files for a perturbation of input1->input2."))
	return node
}

// topologyOf returns the Amber topology among a set of input files, if
// any.
func topologyOf(files []string) string {
	for _, f := range files {
		switch strings.ToLower(filepath.Ext(f)) {
		case ".prm7", ".parm7", ".top":
			return f
		}
	}
	return ""
}

// RunPrepareFEP runs the PrepareFEP node. The prematch argument may hold
// atom pairs (indexes into the first molecule of input1 and input2) that
// the mapping search must keep; nil means no constraint.
func RunPrepareFEP(node *gateway.Node, prematch *align.Mapping) error {
	files1, err := node.GetInputFiles("input1")
	if err != nil {
		return errDecorate(err, "RunPrepareFEP")
	}
	files2, err := node.GetInputFiles("input2")
	if err != nil {
		return errDecorate(err, "RunPrepareFEP")
	}
	root, err := node.GetInput("output")
	if err != nil {
		return errDecorate(err, "RunPrepareFEP")
	}
	sys1, err := bss.ReadMolecules(files1...)
	if err != nil {
		return errDecorate(err, "RunPrepareFEP")
	}
	sys2, err := bss.ReadMolecules(files2...)
	if err != nil {
		return errDecorate(err, "RunPrepareFEP")
	}
	if sys1.NMolecules() == 0 || sys2.NMolecules() == 0 {
		return bss.NewError("RunPrepareFEP: empty input system")
	}
	//the molecules to perturb are the first of each system
	lig1 := sys1.First()
	lig2 := sys2.First()
	opts := align.DefaultOptions()
	opts.Prematch = prematch
	log.Printf("nodes: matching %d against %d atoms", lig1.Len(), lig2.Len())
	mappings, err := align.MatchAtoms(lig1, lig2, opts)
	if err != nil {
		return errDecorate(err, "RunPrepareFEP")
	}
	//mappings come sorted from best to worst, we keep the top one
	mapping := mappings[0]
	log.Printf("nodes: best mapping covers %d atoms", mapping.Len())
	lig2, err = align.RMSDAlign(lig2, lig1, mapping.Inverted())
	if err != nil {
		return errDecorate(err, "RunPrepareFEP")
	}
	merged, err := align.Merge(lig1, lig2, mapping)
	if err != nil {
		return errDecorate(err, "RunPrepareFEP")
	}
	sys1.RemoveMolecules(lig1)
	sys1.AddMolecules(merged.Molecule)
	if err := align.WriteMappingReport("somd.mapping", lig1, lig2, mapping); err != nil {
		return errDecorate(err, "RunPrepareFEP")
	}
	if err := bss.PDBWriteMol("merged_at_lam0.pdb", merged.Molecule); err != nil {
		return errDecorate(err, "RunPrepareFEP")
	}
	proto, err := protocol.NewFreeEnergy(2*bss.Femtosecond, 3)
	if err != nil {
		return errDecorate(err, "RunPrepareFEP")
	}
	proc, err := process.Create("SOMD", sys1, merged, proto)
	if err != nil {
		return errDecorate(err, "RunPrepareFEP")
	}
	somd, ok := proc.(*process.Somd)
	if !ok {
		return bss.NewError("RunPrepareFEP: expected a SOMD handle")
	}
	somd.SetWorkDir(".")
	top := topologyOf(files1)
	if top == "" {
		return bss.NewError("RunPrepareFEP: input1 has no Amber topology, SOMD needs one")
	}
	somd.SetTopology(top)
	if err := somd.BuildInput(); err != nil {
		return errDecorate(err, "RunPrepareFEP")
	}
	if err := somd.Run(true); err != nil {
		return errDecorate(err, "RunPrepareFEP")
	}
	if _, err := somd.Output(); err != nil {
		return errDecorate(err, "RunPrepareFEP")
	}
	outputs := []string{
		fmt.Sprintf("%s.mergeat0.pdb", root),
		fmt.Sprintf("%s.pert", root),
		fmt.Sprintf("%s.prm7", root),
		fmt.Sprintf("%s.rst7", root),
		fmt.Sprintf("%s.mapping", root),
	}
	renames := [][2]string{
		{"merged_at_lam0.pdb", outputs[0]},
		{"somd.pert", outputs[1]},
		{"somd.prm7", outputs[2]},
		{"somd.rst7", outputs[3]},
		{"somd.mapping", outputs[4]},
	}
	for _, r := range renames {
		if err := os.Rename(r[0], r[1]); err != nil {
			return bss.NewError(fmt.Sprintf("RunPrepareFEP: %v", err))
		}
	}
	for _, f := range []string{"somd.zip", "somd.cfg", "somd.err", "somd.out", "somd.pdb"} {
		os.Remove(f) //best effort, the run may not have produced all of them
	}
	if err := node.SetOutput("nodeoutput", outputs...); err != nil {
		return errDecorate(err, "RunPrepareFEP")
	}
	return node.Validate()
}

// errDecorate mirrors the root package's helper.
func errDecorate(err error, caller string) error {
	if e, ok := err.(bss.Error); ok {
		e.Decorate(caller)
		return e
	}
	return bss.NewError(fmt.Sprintf("%s: %v", caller, err))
}

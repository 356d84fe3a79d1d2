/*
 * parameterise.go, part of BioSimSpace.
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

package nodes

import (
	"log"
	"strings"

	"github.com/yuanlongping/BioSimSpace/gateway"
	"github.com/yuanlongping/BioSimSpace/param"

	bss "github.com/yuanlongping/BioSimSpace"
)

// Parameterise returns the node that assigns force-field parameters to a
// molecule, producing an Amber topology/coordinates pair.
func Parameterise() *gateway.Node {
	node := gateway.New("A node to parameterise a molecule, producing an Amber topology and coordinates pair.")
	node.AddInput("input", gateway.FileReq("A file holding the molecule to parameterise (PDB or XYZ)"))
	ff := gateway.StringReq("The force field to use: " + strings.Join(param.ForceFields(), ", "))
	ff.Default = "gaff"
	node.AddInput("forcefield", ff)
	node.AddInput("output", gateway.StringReq("The root name for the topology and coordinates files."))
	node.AddOutput("nodeoutput", gateway.FileSetReq("The parameterised molecule as a topology and coordinates pair."))
	return node
}

// RunParameterise runs the Parameterise node, waiting for the external
// programs to finish.
func RunParameterise(node *gateway.Node) error {
	input, err := node.GetInput("input")
	if err != nil {
		return errDecorate(err, "RunParameterise")
	}
	ff, err := node.GetInput("forcefield")
	if err != nil {
		return errDecorate(err, "RunParameterise")
	}
	root, err := node.GetInput("output")
	if err != nil {
		return errDecorate(err, "RunParameterise")
	}
	sys, err := bss.ReadMolecules(input)
	if err != nil {
		return errDecorate(err, "RunParameterise")
	}
	if sys.NMolecules() == 0 {
		return bss.NewError("RunParameterise: empty input system")
	}
	mol := sys.First()
	handle, err := param.New(ff)
	if err != nil {
		return errDecorate(err, "RunParameterise")
	}
	handle.SetName(root)
	log.Printf("nodes: parameterising %s with %s", input, ff)
	if err := handle.BuildInput(mol); err != nil {
		return errDecorate(err, "RunParameterise")
	}
	if err := handle.Run(true); err != nil {
		return errDecorate(err, "RunParameterise")
	}
	prm7, rst7, err := handle.Results()
	if err != nil {
		return errDecorate(err, "RunParameterise")
	}
	if err := node.SetOutput("nodeoutput", prm7, rst7); err != nil {
		return errDecorate(err, "RunParameterise")
	}
	return node.Validate()
}

/*
 * graph.go, part of BioSimSpace.
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
	"gonum.org/v1/gonum/graph/simple"

	bss "github.com/yuanlongping/BioSimSpace"
)

// bondGraph builds an undirected graph over the atoms of a molecule, one
// node per atom (with the atom index as node ID) and one edge per bond. If
// the molecule carries no bond information, bonds are perceived from the
// coordinates first.
func bondGraph(mol *bss.Molecule) (*simple.UndirectedGraph, error) {
	if len(mol.Bonds) == 0 {
		if err := bss.AssignBonds(mol); err != nil {
			return nil, err
		}
	}
	mol.FillIndexes()
	g := simple.NewUndirectedGraph()
	for i := 0; i < mol.Len(); i++ {
		g.AddNode(simple.Node(i))
	}
	for _, b := range mol.Bonds {
		if b.At1.Index() == b.At2.Index() {
			continue
		}
		g.SetEdge(simple.Edge{F: simple.Node(b.At1.Index()), T: simple.Node(b.At2.Index())})
	}
	return g, nil
}

// neighbors returns the IDs of the nodes adjacent to id, as ints.
func neighbors(g *simple.UndirectedGraph, id int) []int {
	var out []int
	it := g.From(int64(id))
	for it.Next() {
		out = append(out, int(it.Node().ID()))
	}
	return out
}

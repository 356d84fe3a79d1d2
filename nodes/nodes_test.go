/*
 * nodes_test.go, part of BioSimSpace.
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
	"strings"
	"testing"
)

func TestPrepareFEPDeclaration(Te *testing.T) {
	node := PrepareFEP()
	s := node.ShowControls()
	for _, want := range []string{"input1", "input2", "output", "nodeoutput"} {
		if !strings.Contains(s, want) {
			Te.Errorf("controls miss %q:\n%s", want, s)
		}
	}
	if len(node.Authors()) == 0 || node.License() != "GPLv3" {
		Te.Error("node metadata missing")
	}
	//running with unset inputs must fail cleanly
	if err := RunPrepareFEP(node, nil); err == nil {
		Te.Error("expected an error with unset inputs")
	}
}

func TestParameteriseDeclaration(Te *testing.T) {
	node := Parameterise()
	//the force-field input defaults to gaff
	ff, err := node.GetInput("forcefield")
	if err != nil || ff != "gaff" {
		Te.Errorf("got %q, %v", ff, err)
	}
	if err := RunParameterise(node); err == nil {
		Te.Error("expected an error with unset inputs")
	}
}

func TestTopologyOf(Te *testing.T) {
	if got := topologyOf([]string{"a.rst7", "a.prm7"}); got != "a.prm7" {
		Te.Errorf("got %q", got)
	}
	if got := topologyOf([]string{"a.pdb"}); got != "" {
		Te.Errorf("expected no topology, got %q", got)
	}
}

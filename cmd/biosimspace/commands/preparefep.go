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

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yuanlongping/BioSimSpace/align"
	"github.com/yuanlongping/BioSimSpace/nodes"
)

func prepareFEPCmd() *cobra.Command {
	var input1, input2 []string
	var output, manifest, saveManifest string
	var prematch []int
	var show bool
	cmd := &cobra.Command{
		Use:   "preparefep",
		Short: "Generate SOMD input files for a relative free-energy perturbation between two ligands",
		RunE: func(cmd *cobra.Command, args []string) error {
			node := nodes.PrepareFEP()
			if show {
				fmt.Print(node.ShowControls())
				return nil
			}
			if manifest != "" {
				if err := node.LoadManifest(manifest); err != nil {
					return err
				}
			}
			if len(input1) > 0 {
				if err := node.SetInput("input1", input1...); err != nil {
					return err
				}
			}
			if len(input2) > 0 {
				if err := node.SetInput("input2", input2...); err != nil {
					return err
				}
			}
			if output != "" {
				if err := node.SetInput("output", output); err != nil {
					return err
				}
			}
			if saveManifest != "" {
				if err := node.SaveManifest(saveManifest); err != nil {
					return err
				}
			}
			var pre *align.Mapping
			if len(prematch) > 0 {
				if len(prematch)%2 != 0 {
					return fmt.Errorf("preparefep: --prematch takes pairs of indexes, got %d values", len(prematch))
				}
				pre = align.NewMapping()
				for i := 0; i < len(prematch); i += 2 {
					pre.Push(prematch[i], prematch[i+1])
				}
			}
			return nodes.RunPrepareFEP(node, pre)
		},
	}
	cmd.Flags().StringSliceVar(&input1, "input1", nil, "topology and coordinates files of the first ligand")
	cmd.Flags().StringSliceVar(&input2, "input2", nil, "topology and coordinates files of the second ligand")
	cmd.Flags().StringVarP(&output, "output", "o", "", "root name for the perturbation files")
	cmd.Flags().StringVar(&manifest, "manifest", "", "YAML manifest with the node inputs")
	cmd.Flags().StringVar(&saveManifest, "save-manifest", "", "write the node inputs to a YAML manifest before running")
	cmd.Flags().IntSliceVar(&prematch, "prematch", nil, "atom-index pairs the mapping search must keep (a1,b1,a2,b2,...)")
	cmd.Flags().BoolVar(&show, "show-controls", false, "describe the node inputs and outputs and exit")
	return cmd
}

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

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yuanlongping/BioSimSpace/nodes"
)

func parameteriseCmd() *cobra.Command {
	var input, forcefield, output, manifest string
	var show bool
	cmd := &cobra.Command{
		Use:   "parameterise",
		Short: "Assign force-field parameters to a molecule, producing an Amber topology and coordinates pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			node := nodes.Parameterise()
			if show {
				fmt.Print(node.ShowControls())
				return nil
			}
			if manifest != "" {
				if err := node.LoadManifest(manifest); err != nil {
					return err
				}
			}
			if input != "" {
				if err := node.SetInput("input", input); err != nil {
					return err
				}
			}
			if forcefield != "" {
				if err := node.SetInput("forcefield", forcefield); err != nil {
					return err
				}
			}
			if output != "" {
				if err := node.SetInput("output", output); err != nil {
					return err
				}
			}
			return nodes.RunParameterise(node)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "file holding the molecule to parameterise")
	cmd.Flags().StringVarP(&forcefield, "forcefield", "f", "", "force field to use (default gaff)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "root name for the topology and coordinates files")
	cmd.Flags().StringVar(&manifest, "manifest", "", "YAML manifest with the node inputs")
	cmd.Flags().BoolVar(&show, "show-controls", false, "describe the node inputs and outputs and exit")
	return cmd
}

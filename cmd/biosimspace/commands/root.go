/*
 * root.go, part of BioSimSpace.
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

//Package commands implements the biosimspace command-line tool.
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yuanlongping/BioSimSpace/param"
	"github.com/yuanlongping/BioSimSpace/process"
)

func Execute() error {
	root := &cobra.Command{
		Use:           "biosimspace",
		Short:         "Prepare molecular simulation inputs: parameterisation and free-energy perturbation setup",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(prepareFEPCmd(), parameteriseCmd(), plotCmd(), enginesCmd())
	return root.Execute()
}

func enginesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "engines",
		Short: "List the supported simulation packages and force fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Simulation packages: %s\n", strings.Join(process.Packages(), ", "))
			fmt.Printf("Force fields:        %s\n", strings.Join(param.ForceFields(), ", "))
			return nil
		},
	}
}

/*
 * plot.go, part of BioSimSpace.
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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yuanlongping/BioSimSpace/notebook"
)

func plotCmd() *cobra.Command {
	var output, title, xlabel, ylabel string
	var logx, logy bool
	cmd := &cobra.Command{
		Use:   "plot datafile",
		Short: "Plot a one- or two-column data file to a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := readSeries(args[0])
			if err != nil {
				return err
			}
			opt := &notebook.PlotOptions{
				Title:  title,
				XLabel: xlabel,
				YLabel: ylabel,
				LogX:   logx,
				LogY:   logy,
			}
			return notebook.Plot(x, y, output, opt)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "plot", "root name of the PNG file written")
	cmd.Flags().StringVar(&title, "title", "", "plot title")
	cmd.Flags().StringVar(&xlabel, "xlabel", "", "x axis label")
	cmd.Flags().StringVar(&ylabel, "ylabel", "", "y axis label")
	cmd.Flags().BoolVar(&logx, "logx", false, "logarithmic x axis")
	cmd.Flags().BoolVar(&logy, "logy", false, "logarithmic y axis")
	return cmd
}

// readSeries reads a whitespace-separated data file: one column is a y
// series, two columns are x and y. Blank lines and lines starting with #
// are skipped.
func readSeries(filename string) (x, y []float64, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		vals := make([]float64, len(fields))
		for i, field := range fields {
			vals[i], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%s:%d: %v", filename, line, err)
			}
		}
		switch len(vals) {
		case 1:
			y = append(y, vals[0])
		case 2:
			x = append(x, vals[0])
			y = append(y, vals[1])
		default:
			return nil, nil, fmt.Errorf("%s:%d: expected 1 or 2 columns, got %d", filename, line, len(vals))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if len(x) > 0 && len(x) != len(y) {
		return nil, nil, fmt.Errorf("%s: mixed 1- and 2-column lines", filename)
	}
	if len(x) == 0 {
		x = nil
	}
	return x, y, nil
}

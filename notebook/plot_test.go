/*
 * plot_test.go, part of BioSimSpace.
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

package notebook

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPlot(Te *testing.T) {
	y := []float64{1, 4, 9, 16, 25}
	name := filepath.Join(Te.TempDir(), "series")
	opt := &PlotOptions{Title: "squares", XLabel: "n", YLabel: "n^2"}
	if err := Plot(nil, y, name, opt); err != nil {
		Te.Fatal(err)
	}
	info, err := os.Stat(name + ".png")
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Error("an empty PNG was written")
	}
}

func TestPlotTruncates(Te *testing.T) {
	x := []float64{1, 2}
	y := []float64{1, 2, 3}
	name := filepath.Join(Te.TempDir(), "trunc")
	if err := Plot(x, y, name, nil); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		Te.Error("no plot written for mismatched series")
	}
}

func TestPlotNoData(Te *testing.T) {
	if err := Plot(nil, nil, "nothing", nil); err == nil {
		Te.Error("expected an error with no y data")
	}
}

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

//Package notebook holds the small conveniences used when driving the
//workflows interactively, for now a simple x/y plotter.
package notebook

import (
	"fmt"
	"image/color"
	"log"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	bss "github.com/yuanlongping/BioSimSpace"
)

// PlotOptions controls the Plot function. The zero value gives a plain
// linear plot with no labels.
type PlotOptions struct {
	Title  string
	XLabel string
	YLabel string
	LogX   bool
	LogY   bool
}

// Plot writes a simple x/y line-and-markers plot to the PNG file plotname
// (the extension is added). y is required; if x is nil the array index is
// used. When the lengths differ the longer series is truncated, with a
// warning in the log.
func Plot(x, y []float64, plotname string, opt *PlotOptions) error {
	if len(y) == 0 {
		return bss.NewError("Plot: no y data")
	}
	if opt == nil {
		opt = &PlotOptions{}
	}
	if x == nil {
		x = make([]float64, len(y))
		for i := range x {
			x[i] = float64(i)
		}
	}
	if len(x) != len(y) {
		log.Printf("notebook: mismatch in series sizes: len(x) = %d, len(y) = %d", len(x), len(y))
		if len(x) < len(y) {
			y = y[:len(x)]
		} else {
			x = x[:len(y)]
		}
	}
	p := plot.New()
	p.Title.Text = opt.Title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = opt.XLabel
	p.Y.Label.Text = opt.YLabel
	if opt.LogX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{}
	}
	if opt.LogY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{}
	}
	p.Add(plotter.NewGrid())
	pts := make(plotter.XYs, len(y))
	for i := range y {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return bss.NewError(fmt.Sprintf("Plot: %v", err))
	}
	blue := color.RGBA{B: 255, A: 255}
	line.Color = blue
	points.Color = blue
	p.Add(line, points)
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(8*vg.Inch, 6*vg.Inch, filename); err != nil {
		return bss.NewError(fmt.Sprintf("Plot: %v", err))
	}
	return nil
}

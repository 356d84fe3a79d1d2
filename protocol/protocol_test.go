/*
 * protocol_test.go, part of BioSimSpace.
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

package protocol

import (
	"math"
	"testing"

	bss "github.com/yuanlongping/BioSimSpace"
)

func TestNewFreeEnergy(Te *testing.T) {
	p, err := NewFreeEnergy(2*bss.Femtosecond, 3)
	if err != nil {
		Te.Fatal(err)
	}
	want := []float64{0, 0.5, 1}
	if len(p.LamVals) != len(want) {
		Te.Fatalf("expected %d lambda windows, got %d", len(want), len(p.LamVals))
	}
	for i := range want {
		if math.Abs(p.LamVals[i]-want[i]) > 1e-12 {
			Te.Errorf("lambda %d: got %f, want %f", i, p.LamVals[i], want[i])
		}
	}
	if p.Timestep != 2*bss.Femtosecond || p.Temperature != 300 {
		Te.Errorf("wrong defaults: %v, %f", p.Timestep, p.Temperature)
	}
	if p.NSteps() != 1 {
		Te.Errorf("a 2 fs runtime at a 2 fs timestep is one step, got %d", p.NSteps())
	}
	if _, err := NewFreeEnergy(2*bss.Picosecond, 1); err == nil {
		Te.Error("expected an error for a single lambda window")
	}
}

func TestFreeEnergyValidate(Te *testing.T) {
	p, err := NewFreeEnergy(4*bss.Picosecond, 5)
	if err != nil {
		Te.Fatal(err)
	}
	if p.NSteps() != 2000 {
		Te.Errorf("4 ps at 2 fs should be 2000 steps, got %d", p.NSteps())
	}
	p.LamVals = []float64{0, 0.5, 0.5, 1}
	if err := p.Validate(); err == nil {
		Te.Error("expected an error for non-increasing lambdas")
	}
	p.LamVals = []float64{0, 1.5}
	if err := p.Validate(); err == nil {
		Te.Error("expected an error for a lambda outside [0,1]")
	}
	p.LamVals = []float64{0, 1}
	p.Timestep = 0
	if err := p.Validate(); err == nil {
		Te.Error("expected an error for a zero timestep")
	}
}

func TestNewMinimisation(Te *testing.T) {
	if _, err := NewMinimisation(0); err == nil {
		Te.Error("expected an error for zero steps")
	}
	m, err := NewMinimisation(500)
	if err != nil || m.Steps != 500 {
		Te.Errorf("got %v, %v", m, err)
	}
}

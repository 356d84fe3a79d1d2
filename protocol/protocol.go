/*
 * protocol.go, part of BioSimSpace.
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

//Package protocol defines the simulation protocols that the process
//handles translate into package-specific input files.
package protocol

import (
	"fmt"

	bss "github.com/yuanlongping/BioSimSpace"
)

// FreeEnergy is the protocol for a free-energy perturbation leg: a set of
// lambda windows, each simulated for Runtime with the given timestep.
type FreeEnergy struct {
	Runtime     bss.Time
	Timestep    bss.Time
	Temperature float64 //in kelvin
	LamVals     []float64
}

// NewFreeEnergy returns a free-energy protocol with runtime runtime and
// numLam equally spaced lambda windows from 0 to 1.
func NewFreeEnergy(runtime bss.Time, numLam int) (*FreeEnergy, error) {
	if numLam < 2 {
		return nil, bss.NewError(fmt.Sprintf("NewFreeEnergy: at least 2 lambda windows needed, got %d", numLam))
	}
	lams := make([]float64, numLam)
	for i := range lams {
		lams[i] = float64(i) / float64(numLam-1)
	}
	p := &FreeEnergy{
		Runtime:     runtime,
		Timestep:    2 * bss.Femtosecond,
		Temperature: 300.0,
		LamVals:     lams,
	}
	return p, p.Validate()
}

// Validate checks the protocol for nonsensical values.
func (P *FreeEnergy) Validate() error {
	if P.Runtime <= 0 {
		return bss.NewError("FreeEnergy: runtime must be positive")
	}
	if P.Timestep <= 0 || P.Timestep > P.Runtime {
		return bss.NewError("FreeEnergy: timestep must be positive and no longer than the runtime")
	}
	if P.Temperature <= 0 {
		return bss.NewError("FreeEnergy: temperature must be positive")
	}
	if len(P.LamVals) < 2 {
		return bss.NewError("FreeEnergy: at least 2 lambda windows needed")
	}
	prev := -1.0
	for _, l := range P.LamVals {
		if l < 0 || l > 1 {
			return bss.NewError(fmt.Sprintf("FreeEnergy: lambda value %5.3f outside [0,1]", l))
		}
		if l <= prev {
			return bss.NewError("FreeEnergy: lambda values must be strictly increasing")
		}
		prev = l
	}
	return nil
}

// NSteps returns the number of integration steps per lambda window.
func (P *FreeEnergy) NSteps() int {
	return int(P.Runtime.Femtoseconds() / P.Timestep.Femtoseconds())
}

// Minimisation is an energy-minimisation protocol.
type Minimisation struct {
	Steps int
}

// NewMinimisation returns a minimisation protocol with the given maximum
// number of steps.
func NewMinimisation(steps int) (*Minimisation, error) {
	if steps <= 0 {
		return nil, bss.NewError("NewMinimisation: steps must be positive")
	}
	return &Minimisation{Steps: steps}, nil
}

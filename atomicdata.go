/*
 * atomicdata.go, part of BioSimSpace.
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

package bss

import (
	"fmt"
	"strings"
)

// symbolMass contains the masses, in Da, for the elements handled by the
// library. Only the elements commonly found in ligands and protein systems
// are included.
var symbolMass = map[string]float64{
	"H":  1.008,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"Na": 22.990,
	"Mg": 24.305,
	"P":  30.974,
	"S":  32.06,
	"Cl": 35.45,
	"K":  39.098,
	"Ca": 40.078,
	"Fe": 55.845,
	"Zn": 65.38,
	"Br": 79.904,
	"I":  126.904,
	"X":  0.0, //dummy atom
}

// symbolCovrad contains covalent radii, in A, used for bond perception.
// Values from DOI:10.1039/b801115j.
var symbolCovrad = map[string]float64{
	"H":  0.31,
	"C":  0.76,
	"N":  0.71,
	"O":  0.66,
	"F":  0.57,
	"Na": 1.66,
	"Mg": 1.41,
	"P":  1.07,
	"S":  1.05,
	"Cl": 1.02,
	"K":  2.03,
	"Ca": 1.76,
	"Fe": 1.32,
	"Zn": 1.22,
	"Br": 1.20,
	"I":  1.39,
}

// twoLetterSymbols contains the 2-letter element symbols that can plausibly
// start a PDB atom name in a ligand or protein system.
var twoLetterSymbols = []string{"Cl", "Br", "Na", "Mg", "Ca", "Fe", "Zn"}

// SymbolFromName guesses the element symbol of an atom from its PDB name.
// PDB names start with the element symbol, possibly preceded by a digit
// (as in "1HB1"). Two-letter symbols are tried before one-letter ones.
func SymbolFromName(name string) (string, error) {
	name = strings.TrimLeft(strings.TrimSpace(name), "0123456789")
	if name == "" {
		return "", NewError("SymbolFromName: empty atom name")
	}
	if len(name) >= 2 {
		test := strings.ToUpper(name[:1]) + strings.ToLower(name[1:2])
		for _, v := range twoLetterSymbols {
			if test == v {
				return v, nil
			}
		}
	}
	symbol := strings.ToUpper(name[:1])
	if _, ok := symbolMass[symbol]; !ok {
		return "", NewError(fmt.Sprintf("SymbolFromName: can't guess an element for atom name %s", name))
	}
	return symbol, nil
}

// MassFromSymbol returns the mass, in Da, for the element with the given
// symbol, or 0 and an error if the element is not in the internal table.
func MassFromSymbol(symbol string) (float64, error) {
	m, ok := symbolMass[symbol]
	if !ok {
		return 0, NewError(fmt.Sprintf("MassFromSymbol: no mass for element %s", symbol))
	}
	return m, nil
}

/*
 * units.go, part of BioSimSpace.
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

import "fmt"

// Length is a length value. The underlying float64 is in angstrom, so unit
// constants can be combined with plain multiplication: 2.5*Nanometer.
type Length float64

// Length units.
const (
	Picometer  Length = 0.01
	Angstrom   Length = 1
	Nanometer  Length = 10
	Micrometer Length = 1e4
	Millimeter Length = 1e7
	Centimeter Length = 1e8
	Meter      Length = 1e10
)

// Angstroms returns the value of the length in angstrom.
func (l Length) Angstroms() float64 {
	return float64(l)
}

// Nanometers returns the value of the length in nanometers.
func (l Length) Nanometers() float64 {
	return float64(l) / float64(Nanometer)
}

func (l Length) String() string {
	return fmt.Sprintf("%.4f angstrom", float64(l))
}

// Time is a time value, in femtoseconds.
type Time float64

// Time units.
const (
	Femtosecond Time = 1
	Picosecond  Time = 1e3
	Nanosecond  Time = 1e6
	Microsecond Time = 1e9
)

// Femtoseconds returns the value of the time in femtoseconds.
func (t Time) Femtoseconds() float64 {
	return float64(t)
}

// Picoseconds returns the value of the time in picoseconds.
func (t Time) Picoseconds() float64 {
	return float64(t) / float64(Picosecond)
}

// Nanoseconds returns the value of the time in nanoseconds.
func (t Time) Nanoseconds() float64 {
	return float64(t) / float64(Nanosecond)
}

func (t Time) String() string {
	return fmt.Sprintf("%.4f femtosecond", float64(t))
}

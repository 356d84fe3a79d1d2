/*
 * mapping.go, part of BioSimSpace.
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

//Package align finds atom mappings between pairs of ligands, aligns one
//ligand onto another using a mapping, and merges the pair into a single
//perturbable molecule for a relative free-energy calculation.
package align

import (
	"fmt"
	"sort"
	"strings"
)

// Mapping is an association between atom indexes of two molecules. Entries
// keep their insertion order, which is also the order in which reports
// iterate them.
type Mapping struct {
	pairs [][2]int
	score float64
}

// NewMapping returns an empty mapping. Pairs can be given to pre-populate
// it, in order.
func NewMapping(pairs ...[2]int) *Mapping {
	return &Mapping{pairs: pairs}
}

// Len returns the number of entries.
func (M *Mapping) Len() int {
	if M == nil {
		return 0
	}
	return len(M.pairs)
}

// Pair returns the i-th entry. Panics if out of range.
func (M *Mapping) Pair(i int) (int, int) {
	return M.pairs[i][0], M.pairs[i][1]
}

// Push appends an entry.
func (M *Mapping) Push(a, b int) {
	M.pairs = append(M.pairs, [2]int{a, b})
}

// pop removes the last entry. Used by the backtracking search.
func (M *Mapping) pop() {
	M.pairs = M.pairs[:len(M.pairs)-1]
}

// Get returns the value mapped to key a, if present.
func (M *Mapping) Get(a int) (int, bool) {
	for _, p := range M.pairs {
		if p[0] == a {
			return p[1], true
		}
	}
	return 0, false
}

// HasKey reports whether a appears as a key.
func (M *Mapping) HasKey(a int) bool {
	_, ok := M.Get(a)
	return ok
}

// HasValue reports whether b appears as a value.
func (M *Mapping) HasValue(b int) bool {
	for _, p := range M.pairs {
		if p[1] == b {
			return true
		}
	}
	return false
}

// Keys returns the keys, in insertion order.
func (M *Mapping) Keys() []int {
	keys := make([]int, 0, M.Len())
	for _, p := range M.pairs {
		keys = append(keys, p[0])
	}
	return keys
}

// Inverted returns a new mapping with keys and values swapped, preserving
// the entry order.
func (M *Mapping) Inverted() *Mapping {
	inv := NewMapping()
	for _, p := range M.pairs {
		inv.Push(p[1], p[0])
	}
	inv.score = M.score
	return inv
}

// Copy returns a copy of the mapping.
func (M *Mapping) Copy() *Mapping {
	c := &Mapping{pairs: make([][2]int, len(M.pairs)), score: M.score}
	copy(c.pairs, M.pairs)
	return c
}

// Score returns the RMSD score assigned by the matching search. Lower is
// better.
func (M *Mapping) Score() float64 {
	return M.score
}

// canonical returns an order-independent identity for the entry set, used
// to discard duplicate candidates during the search.
func (M *Mapping) canonical() string {
	strs := make([]string, 0, M.Len())
	for _, p := range M.pairs {
		strs = append(strs, fmt.Sprintf("%d:%d", p[0], p[1]))
	}
	sort.Strings(strs)
	return strings.Join(strs, ",")
}

// String returns a compact representation, mostly for logs.
func (M *Mapping) String() string {
	strs := make([]string, 0, M.Len())
	for _, p := range M.pairs {
		strs = append(strs, fmt.Sprintf("%d-->%d", p[0], p[1]))
	}
	return fmt.Sprintf("{%s rmsd: %4.2f}", strings.Join(strs, " "), M.score)
}

/*
 * match.go, part of BioSimSpace.
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

package align

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/graph/simple"

	bss "github.com/yuanlongping/BioSimSpace"
)

// Options contains the options for the MatchAtoms search.
type Options struct {
	Matches  int      //maximum number of mappings to return
	Prematch *Mapping //pairs that must be part of every mapping
	MaxSteps int      //cap on search nodes, to bound pathological cases
}

// DefaultOptions returns reasonable options for small-ligand pairs.
func DefaultOptions() *Options {
	r := new(Options)
	r.Matches = 10
	r.Prematch = nil
	r.MaxSteps = 2000000
	return r
}

// matcher holds the state of one maximum-common-substructure search.
type matcher struct {
	molA, molB *bss.Molecule
	gA, gB     *simple.UndirectedGraph
	steps      int
	maxSteps   int
	best       int
	found      map[string]*Mapping
}

// compatible reports whether atoms a of molA and b of molB can correspond:
// same element, neither a dummy.
func (mt *matcher) compatible(a, b int) bool {
	sa := mt.molA.Atom(a).Symbol
	sb := mt.molB.Atom(b).Symbol
	return sa == sb && sa != "X"
}

// consistent reports whether adding the pair (a, b) preserves the bond
// structure against every pair already in m.
func (mt *matcher) consistent(m *Mapping, a, b int) bool {
	for i := 0; i < m.Len(); i++ {
		pa, pb := m.Pair(i)
		if mt.gA.HasEdgeBetween(int64(a), int64(pa)) != mt.gB.HasEdgeBetween(int64(b), int64(pb)) {
			return false
		}
	}
	return true
}

// next picks the A-side atom to branch on: the smallest unmapped,
// non-excluded atom adjacent to the mapped set, or any unmapped atom when
// the mapping is still empty. Returns -1 when no atom remains.
func (mt *matcher) next(m *Mapping, excluded []bool) int {
	for a := 0; a < mt.molA.Len(); a++ {
		if excluded[a] || m.HasKey(a) {
			continue
		}
		if m.Len() == 0 {
			return a
		}
		adjacent := false
		for _, n := range neighbors(mt.gA, a) {
			if m.HasKey(n) {
				adjacent = true
				break
			}
		}
		if adjacent {
			return a
		}
	}
	return -1
}

// remaining counts the unmapped, non-excluded A atoms, an upper bound on
// how much the mapping can still grow.
func (mt *matcher) remaining(m *Mapping, excluded []bool) int {
	n := 0
	for a := 0; a < mt.molA.Len(); a++ {
		if !excluded[a] && !m.HasKey(a) {
			n++
		}
	}
	return n
}

func (mt *matcher) record(m *Mapping) {
	if m.Len() == 0 {
		return
	}
	if m.Len() > mt.best {
		mt.best = m.Len()
	}
	key := m.canonical()
	if _, ok := mt.found[key]; !ok {
		mt.found[key] = m.Copy()
	}
}

// extend is the backtracking search. For the chosen frontier atom it tries
// every consistent partner, plus the branch in which the atom is left out
// of the common substructure.
func (mt *matcher) extend(m *Mapping, excluded []bool) {
	mt.steps++
	if mt.steps > mt.maxSteps {
		return
	}
	//bound: even mapping everything left we can't reach the current best
	if m.Len()+mt.remaining(m, excluded) < mt.best {
		return
	}
	a := mt.next(m, excluded)
	if a < 0 {
		mt.record(m)
		return
	}
	for b := 0; b < mt.molB.Len(); b++ {
		if m.HasValue(b) || !mt.compatible(a, b) || !mt.consistent(m, a, b) {
			continue
		}
		//connectivity on the B side mirrors the A side by consistency
		m.Push(a, b)
		mt.extend(m, excluded)
		m.pop()
	}
	excluded[a] = true
	mt.extend(m, excluded)
	excluded[a] = false
}

// score superimposes the mapped atoms of molA on those of molB and stores
// the resulting RMSD in the mapping.
func (mt *matcher) score(m *Mapping) {
	idxA := make([]int, 0, m.Len())
	idxB := make([]int, 0, m.Len())
	for i := 0; i < m.Len(); i++ {
		a, b := m.Pair(i)
		idxA = append(idxA, a)
		idxB = append(idxB, b)
	}
	ca := bss.SomeCoords(mt.molA.Coords, idxA)
	cb := bss.SomeCoords(mt.molB.Coords, idxB)
	transformed, _, _, _, err := bss.RotatorTranslatorToSuper(cb, ca)
	if err != nil {
		m.score = math.Inf(1)
		return
	}
	rmsd, err := bss.RMSD(transformed, ca)
	if err != nil {
		m.score = math.Inf(1)
		return
	}
	m.score = rmsd
}

// MatchAtoms searches for the maximum common substructure between molA and
// molB and returns up to opts.Matches mappings from molA atom indexes to
// molB atom indexes, scored by RMSD after superposition of the mapped atoms
// and sorted from best to worst. A prematch in the options pins pairs that
// every returned mapping must contain. A nil opts uses DefaultOptions.
func MatchAtoms(molA, molB *bss.Molecule, opts *Options) ([]*Mapping, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if molA == nil || molB == nil {
		return nil, bss.NewError("MatchAtoms: nil molecule")
	}
	gA, err := bondGraph(molA)
	if err != nil {
		return nil, err
	}
	gB, err := bondGraph(molB)
	if err != nil {
		return nil, err
	}
	mt := &matcher{
		molA: molA, molB: molB,
		gA: gA, gB: gB,
		maxSteps: opts.MaxSteps,
		found:    make(map[string]*Mapping),
	}
	seed := NewMapping()
	if opts.Prematch != nil {
		for i := 0; i < opts.Prematch.Len(); i++ {
			a, b := opts.Prematch.Pair(i)
			if a < 0 || a >= molA.Len() || b < 0 || b >= molB.Len() {
				return nil, bss.NewError("MatchAtoms: prematch index out of range")
			}
			if !mt.compatible(a, b) {
				return nil, bss.NewError("MatchAtoms: prematch pairs atoms of different elements")
			}
			if !mt.consistent(seed, a, b) {
				return nil, bss.NewError("MatchAtoms: prematch is not bond-consistent")
			}
			seed.Push(a, b)
		}
	}
	excluded := make([]bool, molA.Len())
	mt.extend(seed, excluded)
	//map iteration order is not fixed, so collect by sorted key and break
	//score ties on it too: a given pair always yields the same mappings in
	//the same order.
	keys := make([]string, 0, len(mt.found))
	for key, m := range mt.found {
		if m.Len() == mt.best { //only maximum common substructures
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	results := make([]*Mapping, 0, len(keys))
	for _, key := range keys {
		m := mt.found[key]
		mt.score(m)
		results = append(results, m)
	}
	if len(results) == 0 {
		return nil, bss.NewError("MatchAtoms: no mapping found between the molecules")
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score < results[j].score
		}
		return results[i].canonical() < results[j].canonical()
	})
	if len(results) > opts.Matches {
		results = results[:opts.Matches]
	}
	return results, nil
}

/*
 * fragment.go, part of gomof.
 *
 * Copyright 2024 The goMOF developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package frag

import (
	mof "github.com/gomatsci/gomof"
	"github.com/gomatsci/gomof/cgraph"
	"gonum.org/v1/gonum/mat"
)

// CappingRecord describes one placeholder atom inserted where a bond was
// cut: the local index of the placeholder in the fragment, the global atom
// it replaces, and the local index of the atom it stays bonded to. Until
// bond-length correction the placeholder occupies the exact position of the
// replaced atom.
type CappingRecord struct {
	Placeholder int
	Replaced    int
	Anchor      int
}

// fragment is one SBU or linker being assembled: a fresh local atom table
// with a bidirectional local/global index mapping, owned exclusively by the
// assembly step that created it. Capping placeholders are always appended
// after every real atom, so their local indices form the tail of the list;
// in the atoms slice a placeholder carries the global index of the atom it
// replaces, which makes the induced adjacency come out right without any
// special casing.
type fragment struct {
	s       *mof.Structure
	cart    *mat.Dense //global cartesian coordinates, shared, read-only
	atoms   []int      //local order -> global index
	local   map[int]int
	symbols []string
	caps    []CappingRecord
}

func newFragment(s *mof.Structure, cart *mat.Dense) *fragment {
	return &fragment{s: s, cart: cart, local: make(map[int]int)}
}

func (f *fragment) len() int {
	return len(f.atoms)
}

func (f *fragment) has(global int) bool {
	_, ok := f.local[global]
	return ok
}

// add copies the global atom into the local table, if not already present,
// and returns its local index.
func (f *fragment) add(global int) int {
	if l, ok := f.local[global]; ok {
		return l
	}
	l := len(f.atoms)
	f.atoms = append(f.atoms, global)
	f.symbols = append(f.symbols, f.s.Symbol(global))
	f.local[global] = l
	return l
}

// pendingCap is a cut bond waiting to become a placeholder once all real
// atoms are in.
type pendingCap struct {
	replaced     int //global atom beyond the boundary
	anchorGlobal int //global atom on this side of the cut
}

// seal turns the pending cuts into capping placeholders at the tail of the
// atom list. A cut whose replaced atom ended up inside the fragment after
// all (pulled in by a ring or a branch) is not a cut anymore and is dropped.
func (f *fragment) seal(pending []pendingCap) {
	for _, p := range pending {
		if f.has(p.replaced) {
			continue
		}
		l := len(f.atoms)
		f.atoms = append(f.atoms, p.replaced)
		f.symbols = append(f.symbols, "X")
		f.local[p.replaced] = l
		f.caps = append(f.caps, CappingRecord{Placeholder: l, Replaced: p.replaced, Anchor: f.local[p.anchorGlobal]})
	}
}

// capLocals returns the local indices of the placeholders, in order.
func (f *fragment) capLocals() []int {
	r := make([]int, len(f.caps))
	for i, c := range f.caps {
		r[i] = c.Placeholder
	}
	return r
}

// isCap reports whether local index l is a placeholder.
func (f *fragment) isCap(l int) bool {
	return l >= len(f.atoms)-len(f.caps)
}

// adjacency returns the fragment's induced adjacency matrix. Placeholders
// inherit the bonds of the atoms they replace.
func (f *fragment) adjacency() *mat.Dense {
	return cgraph.Induced(f.s.Adjacency(), f.atoms)
}

// noCapAdjacency returns the adjacency induced over the real atoms only.
func (f *fragment) noCapAdjacency() *mat.Dense {
	return cgraph.Induced(f.s.Adjacency(), f.atoms[:len(f.atoms)-len(f.caps)])
}

// coords returns a fresh matrix with the (wrapped) cartesian coordinates of
// every local atom; a placeholder starts at the position of the atom it
// replaces.
func (f *fragment) coords() *mat.Dense {
	return rows(f.cart, f.atoms)
}

// correctCaps moves each placeholder along its cut bond so that it sits at
// factor times the original bond vector from its anchor. coords is the
// fragment coordinate matrix, modified in place.
func (f *fragment) correctCaps(coords *mat.Dense, factor float64) {
	for _, c := range f.caps {
		for k := 0; k < 3; k++ {
			anchor := coords.At(c.Anchor, k)
			coords.Set(c.Placeholder, k, anchor+factor*(coords.At(c.Placeholder, k)-anchor))
		}
	}
}

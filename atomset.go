/*
 * atomset.go, part of gomof.
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

package mof

import "sort"

// AtomSet is a set of global atom indices. The zero value is not usable;
// build one with NewAtomSet.
type AtomSet map[int]struct{}

// NewAtomSet returns a set containing the given atom indices.
func NewAtomSet(atoms ...int) AtomSet {
	s := make(AtomSet, len(atoms))
	for _, a := range atoms {
		s[a] = struct{}{}
	}
	return s
}

// Add inserts the given atoms into the set.
func (s AtomSet) Add(atoms ...int) {
	for _, a := range atoms {
		s[a] = struct{}{}
	}
}

// Has reports whether atom is in the set.
func (s AtomSet) Has(atom int) bool {
	_, ok := s[atom]
	return ok
}

// Del removes atom from the set, if present.
func (s AtomSet) Del(atom int) {
	delete(s, atom)
}

// Len returns the number of atoms in the set.
func (s AtomSet) Len() int {
	return len(s)
}

// Update inserts every member of other into the set.
func (s AtomSet) Update(other AtomSet) {
	for a := range other {
		s[a] = struct{}{}
	}
}

// Copy returns an independent copy of the set.
func (s AtomSet) Copy() AtomSet {
	c := make(AtomSet, len(s))
	for a := range s {
		c[a] = struct{}{}
	}
	return c
}

// Minus returns a new set with the members of s that are not in other.
func (s AtomSet) Minus(other AtomSet) AtomSet {
	c := make(AtomSet)
	for a := range s {
		if !other.Has(a) {
			c[a] = struct{}{}
		}
	}
	return c
}

// Intersects reports whether s and other share at least one member.
func (s AtomSet) Intersects(other AtomSet) bool {
	small, big := s, other
	if len(big) < len(small) {
		small, big = big, small
	}
	for a := range small {
		if big.Has(a) {
			return true
		}
	}
	return false
}

// Slice returns the members of the set sorted in ascending order. Every
// consumer that needs a stable atom ordering goes through here.
func (s AtomSet) Slice() []int {
	r := make([]int, 0, len(s))
	for a := range s {
		r = append(r, a)
	}
	sort.Ints(r)
	return r
}

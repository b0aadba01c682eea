/*
 * seed.go, part of gomof.
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
	"sort"
	"strings"

	mof "github.com/gomatsci/gomof"
)

// InitialSBU seeds the decomposition with the metal-centered atom sets.
//
// The remove set holds the atoms with no organic role: the metals, every
// atom whose bonded neighbors are all metals or hydrogens (bridging oxo and
// hydroxo groups inside metal clusters, interstitial OH as in the UiO
// node), and the hydrogens attached to any of those. The SBU set is the
// remove set plus the full first coordination shell of every metal,
// whatever the element.
//
// For each metal a line with its coordination number and the multiset of
// bonded element symbols is appended to the per-structure log for
// downstream audit.
func InitialSBU(s *mof.Structure, lb *logbook) (remove, sbu mof.AtomSet) {
	metals := s.Metals()
	sbu = metals.Copy()
	remove = metals.Copy()
	for _, m := range metals.Slice() {
		bonded := s.BondedAtoms(m)
		sbu.Add(bonded...)
		symbols := make([]string, len(bonded))
		for i, b := range bonded {
			symbols[i] = s.Symbol(b)
		}
		sort.Strings(symbols)
		lb.log("atom %d with type of %s found to have %d coordinates with atom types of %s\n",
			m, s.Symbol(m), len(bonded), strings.Join(symbols, ","))
	}
	//atoms whose every neighbor is a metal or a hydrogen have no organic
	//role, however far from a metal they sit in the SBU shell
	for _, a := range sbu.Slice() {
		allInorganic := true
		for _, b := range s.BondedAtoms(a) {
			if !s.IsMetal(b) && s.Symbol(b) != "H" {
				allInorganic = false
				break
			}
		}
		if allInorganic {
			remove.Add(a)
		}
	}
	//hydrogens on anything already in the remove set go with it
	for _, a := range remove.Slice() {
		for _, b := range s.BondedAtoms(a) {
			if s.Symbol(b) == "H" {
				remove.Add(b)
			}
		}
	}
	return remove, sbu
}

/*
 * shell.go, part of gomof.
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

// growShell adds the full first coordination shell (every atom bonded to a
// current member) to the set, in place.
func growShell(set mof.AtomSet, s *mof.Structure) {
	for _, a := range set.Slice() {
		set.Add(s.BondedAtoms(a)...)
	}
}

// includeExtraShells absorbs bonded-neighbor shells into each SBU component
// and returns the regrown components with their induced subgraphs. At least
// one shell is absorbed; growth repeats while any component still has fewer
// than minViable atoms and is still growing. This is the fallback for short
// linkers, where the SBU boundary cannot be placed by path arguments alone.
func includeExtraShells(comps [][]int, s *mof.Structure, minViable int) ([][]int, []*mat.Dense) {
	adj := s.Adjacency()
	grown := make([]mof.AtomSet, len(comps))
	for i, c := range comps {
		grown[i] = mof.NewAtomSet(c...)
	}
	prevTotal := -1
	for {
		smallest := int(^uint(0) >> 1)
		total := 0
		for _, g := range grown {
			growShell(g, s)
			if g.Len() < smallest {
				smallest = g.Len()
			}
			total += g.Len()
		}
		if smallest >= minViable || total == prevTotal {
			break
		}
		prevTotal = total
	}
	out := make([][]int, len(grown))
	subs := make([]*mat.Dense, len(grown))
	for i, g := range grown {
		out[i] = g.Slice()
		subs[i] = cgraph.Induced(adj, out[i])
	}
	return out, subs
}

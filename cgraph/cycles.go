/*
 * cycles.go, part of gomof.
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

package cgraph

import (
	"sort"

	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/mat"
)

// CycleBasis returns a fundamental cycle basis of the graph described by the
// adjacency matrix. Each cycle is a sorted set of atom indices with no
// repetition. Chemical rings always appear as (unions of) basis cycles, which
// is what ring-integrity preservation needs.
func CycleBasis(adj *mat.Dense) [][]int {
	g := FromAdjacency(adj)
	raw := topo.UndirectedCyclesIn(g)
	cycles := make([][]int, 0, len(raw))
	for _, cyc := range raw {
		seen := make(map[int]bool, len(cyc))
		atoms := make([]int, 0, len(cyc))
		for _, nd := range cyc {
			id := int(nd.ID())
			if !seen[id] {
				seen[id] = true
				atoms = append(atoms, id)
			}
		}
		sort.Ints(atoms)
		cycles = append(cycles, atoms)
	}
	return cycles
}

// Components returns the connected components of the graph described by the
// adjacency matrix, each sorted ascending, ordered by smallest member.
func Components(adj *mat.Dense) [][]int {
	g := FromAdjacency(adj)
	raw := topo.ConnectedComponents(g)
	comps := make([][]int, 0, len(raw))
	for _, c := range raw {
		atoms := make([]int, len(c))
		for i, nd := range c {
			atoms[i] = int(nd.ID())
		}
		sort.Ints(atoms)
		comps = append(comps, atoms)
	}
	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })
	return comps
}

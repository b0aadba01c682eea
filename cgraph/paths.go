/*
 * paths.go, part of gomof.
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

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/mat"
)

// PathLengths returns the shortest and the longest of the shortest-path
// distances (in bonds) between every pair of the given anchor atoms, within
// the graph described by the adjacency matrix. Unreachable pairs are
// skipped. With fewer than two anchors both results are zero.
func PathLengths(adj *mat.Dense, anchors []int) (min, max int) {
	if len(anchors) < 2 {
		return 0, 0
	}
	g := FromAdjacency(adj)
	min = int(^uint(0) >> 1)
	found := false
	for i, a := range anchors {
		shortest := path.DijkstraFrom(g.Node(int64(a)), g)
		for _, b := range anchors[i+1:] {
			nodes, w := shortest.To(int64(b))
			if nodes == nil {
				continue
			}
			found = true
			l := int(w)
			if l < min {
				min = l
			}
			if l > max {
				max = l
			}
		}
	}
	if !found {
		return 0, 0
	}
	return min, max
}

// MainChain identifies the atoms lying on the anchor-to-anchor paths of a
// fragment: the union of the shortest paths between every anchor pair, grown
// by any ring that shares atoms with (but is not already contained in) the
// path set, repeated to a fixed point. This is the "organic main path" that
// fragment assembly must never absorb as a branch. It also returns the
// number of atoms on the shortest and on the longest of the pairwise paths.
// With a single anchor the whole fragment is the main chain and both counts
// are 1.
func MainChain(adj *mat.Dense, anchors []int) (main []int, shortest, longest int) {
	n, _ := adj.Dims()
	if len(anchors) < 2 {
		main = make([]int, n)
		for i := range main {
			main[i] = i
		}
		return main, 1, 1
	}
	g := FromAdjacency(adj)
	inPaths := make(map[int]bool)
	shortest = int(^uint(0) >> 1)
	for i, a := range anchors {
		sp := path.DijkstraFrom(g.Node(int64(a)), g)
		for _, b := range anchors[i+1:] {
			nodes, _ := sp.To(int64(b))
			if nodes == nil {
				continue
			}
			if len(nodes) < shortest {
				shortest = len(nodes)
			}
			if len(nodes) > longest {
				longest = len(nodes)
			}
			for _, nd := range nodes {
				inPaths[int(nd.ID())] = true
			}
		}
	}
	if longest == 0 { //no anchor pair was connected
		shortest = 0
	}
	//fold in any ring that overlaps the paths without being contained in
	//them, so a boundary never bisects a ring on the main chain
	cycles := CycleBasis(adj)
	used := make([]bool, len(cycles))
	for changed := true; changed; {
		changed = false
		for ci, cycle := range cycles {
			if used[ci] {
				continue
			}
			overlap, subset := false, true
			for _, a := range cycle {
				if inPaths[a] {
					overlap = true
				} else {
					subset = false
				}
			}
			if overlap && !subset {
				for _, a := range cycle {
					inPaths[a] = true
				}
				used[ci] = true
				changed = true
			}
		}
	}
	main = make([]int, 0, len(inPaths))
	for a := range inPaths {
		main = append(main, a)
	}
	sort.Ints(main)
	return main, shortest, longest
}

/*
 * cgraph_test.go, part of gomof.
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
	"testing"

	mof "github.com/gomatsci/gomof"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// adjFromEdges builds an n-atom adjacency matrix from an edge list.
func adjFromEdges(n int, edges [][2]int) *mat.Dense {
	adj := mat.NewDense(n, n, nil)
	for _, e := range edges {
		adj.Set(e[0], e[1], 1)
		adj.Set(e[1], e[0], 1)
	}
	return adj
}

func TestClosedSubgraphs(t *testing.T) {
	//a path 0-1-2-3-4-5 with atom 2 as barrier splits the seed side in two
	adj := adjFromEdges(6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}})
	seed := mof.NewAtomSet(0, 1, 3, 4, 5)
	barrier := mof.NewAtomSet(2)
	comps, subs := ClosedSubgraphs(seed, barrier, adj)
	require.Len(t, comps, 2)
	assert.Equal(t, []int{0, 1}, comps[0])
	assert.Equal(t, []int{3, 4, 5}, comps[1])
	//the induced subgraph uses local indices in component order
	r, c := subs[1].Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)
	assert.Equal(t, 1.0, subs[1].At(0, 1)) //3-4
	assert.Equal(t, 1.0, subs[1].At(1, 2)) //4-5
	assert.Equal(t, 0.0, subs[1].At(0, 2))
}

func TestClosedSubgraphsDeterministicOrder(t *testing.T) {
	adj := adjFromEdges(4, [][2]int{{0, 1}, {2, 3}})
	seed := mof.NewAtomSet(3, 2, 1, 0)
	comps, _ := ClosedSubgraphs(seed, mof.NewAtomSet(), adj)
	require.Len(t, comps, 2)
	assert.Equal(t, []int{0, 1}, comps[0])
	assert.Equal(t, []int{2, 3}, comps[1])
}

func TestPathLengths(t *testing.T) {
	//linear chain 0-1-2-3
	adj := adjFromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	min, max := PathLengths(adj, []int{0, 3})
	assert.Equal(t, 3, min)
	assert.Equal(t, 3, max)
	min, max = PathLengths(adj, []int{0, 2, 3})
	assert.Equal(t, 1, min) //2 to 3
	assert.Equal(t, 3, max) //0 to 3
	min, max = PathLengths(adj, []int{0})
	assert.Zero(t, min)
	assert.Zero(t, max)
	//unreachable anchors are skipped
	adj = adjFromEdges(4, [][2]int{{0, 1}})
	min, max = PathLengths(adj, []int{0, 3})
	assert.Zero(t, min)
	assert.Zero(t, max)
}

func TestMainChainLinear(t *testing.T) {
	adj := adjFromEdges(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	main, shortest, longest := MainChain(adj, []int{0, 4})
	assert.Equal(t, []int{0, 1, 2, 3, 4}, main)
	assert.Equal(t, 5, shortest) //node count, not edges
	assert.Equal(t, 5, longest)
}

func TestMainChainFoldsRings(t *testing.T) {
	//anchors 0 and 7 joined through a hexagon 1-2-3-4-5-6: the shortest
	//path uses one side of the ring, but the whole ring belongs to the
	//main chain
	adj := adjFromEdges(8, [][2]int{
		{0, 1},
		{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 1},
		{4, 7},
	})
	main, shortest, longest := MainChain(adj, []int{0, 7})
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, main)
	assert.Equal(t, 6, shortest)
	assert.Equal(t, 6, longest)
}

func TestMainChainSingleAnchor(t *testing.T) {
	adj := adjFromEdges(3, [][2]int{{0, 1}, {1, 2}})
	main, shortest, longest := MainChain(adj, []int{1})
	assert.Equal(t, []int{0, 1, 2}, main)
	assert.Equal(t, 1, shortest)
	assert.Equal(t, 1, longest)
}

func TestCycleBasis(t *testing.T) {
	//a triangle hanging off a tail
	adj := adjFromEdges(5, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}})
	cycles := CycleBasis(adj)
	require.Len(t, cycles, 1)
	assert.Equal(t, []int{0, 1, 2}, cycles[0])
	//trees have no cycles
	adj = adjFromEdges(4, [][2]int{{0, 1}, {1, 2}, {1, 3}})
	assert.Empty(t, CycleBasis(adj))
}

func TestComponents(t *testing.T) {
	adj := adjFromEdges(5, [][2]int{{3, 4}, {0, 2}})
	comps := Components(adj)
	require.Len(t, comps, 3)
	assert.Equal(t, []int{0, 2}, comps[0])
	assert.Equal(t, []int{1}, comps[1])
	assert.Equal(t, []int{3, 4}, comps[2])
}

func TestInduced(t *testing.T) {
	adj := adjFromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	sub := Induced(adj, []int{3, 1, 2})
	//local order follows the atoms slice: 3->0, 1->1, 2->2
	assert.Equal(t, 0.0, sub.At(0, 1)) //3-1 not bonded
	assert.Equal(t, 1.0, sub.At(0, 2)) //3-2 bonded
	assert.Equal(t, 1.0, sub.At(1, 2)) //1-2 bonded
}

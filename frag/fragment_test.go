/*
 * fragment_test.go, part of gomof.
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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFragmentCappingSymmetry(t *testing.T) {
	//a three-carbon chain cut after the second atom
	s := testStructure(t, 20, []string{"C", "C", "C"},
		[][3]float64{{5, 5, 5}, {6.5, 5, 5}, {8, 5, 5}},
		[][2]int{{0, 1}, {1, 2}})
	cart := s.CartCoords()
	f := newFragment(s, cart)
	f.add(0)
	f.add(1)
	f.seal([]pendingCap{{replaced: 2, anchorGlobal: 1}})

	require.Equal(t, 3, f.len())
	require.Len(t, f.caps, 1)
	assert.Equal(t, []string{"C", "C", "X"}, f.symbols)
	assert.Equal(t, []int{2}, f.capLocals())
	assert.True(t, f.isCap(2))
	assert.False(t, f.isCap(1))

	//before correction the placeholder sits exactly on the replaced atom
	coords := f.coords()
	for k := 0; k < 3; k++ {
		assert.Equal(t, cart.At(2, k), coords.At(2, k))
	}
	//the placeholder inherits the replaced atom's bond to the anchor
	adj := f.adjacency()
	assert.Equal(t, 1.0, adj.At(1, 2))
	assert.Equal(t, 0.0, adj.At(0, 2))

	f.correctCaps(coords, 0.75)
	dx := coords.At(2, 0) - coords.At(1, 0)
	dy := coords.At(2, 1) - coords.At(1, 1)
	dz := coords.At(2, 2) - coords.At(1, 2)
	got := math.Sqrt(dx*dx + dy*dy + dz*dz)
	assert.InDelta(t, 0.75*1.5, got, 1e-9)
}

func TestFragmentSealDropsAbsorbedCuts(t *testing.T) {
	s := testStructure(t, 20, []string{"C", "C", "C"},
		[][3]float64{{5, 5, 5}, {6.5, 5, 5}, {8, 5, 5}},
		[][2]int{{0, 1}, {1, 2}})
	f := newFragment(s, s.CartCoords())
	f.add(0)
	f.add(1)
	f.add(2) //the would-be cut atom ends up inside after all
	f.seal([]pendingCap{{replaced: 2, anchorGlobal: 1}})
	assert.Empty(t, f.caps)
	assert.Equal(t, 3, f.len())
}

func TestFragmentAddIsIdempotent(t *testing.T) {
	s := testStructure(t, 20, []string{"C", "C"},
		[][3]float64{{5, 5, 5}, {6.5, 5, 5}}, [][2]int{{0, 1}})
	f := newFragment(s, s.CartCoords())
	l1 := f.add(1)
	l2 := f.add(1)
	assert.Equal(t, l1, l2)
	assert.Equal(t, 1, f.len())
}

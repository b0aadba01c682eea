/*
 * connect.go, part of gomof.
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

package pbc

import (
	"math"

	mof "github.com/gomatsci/gomof"
	"gonum.org/v1/gonum/mat"
)

// Offset is an integer lattice translation, in numbers of cells along each
// cell vector. Offsets are kept as integers so that equality and uniqueness
// checks are exact.
type Offset [3]int

// imageWalk walks the bond graph from the given start atoms and assigns each
// reached atom the lattice offset that places it in the same periodic image
// as the atom it was reached from. Start atoms sit at offset zero. Atoms not
// reachable from any start atom are left at offset zero with reached=false.
//
// Every bond is checked, not only the spanning-tree ones: a bond whose two
// ends were already placed in disagreeing images sets wraps. Such a bond
// appears when the fragment winds through the boundary back onto itself, or
// when walk fronts from two start atoms meet exactly at the crossing bond;
// in both cases the per-atom offsets alone would hide the crossing.
func imageWalk(frac *mat.Dense, adj *mat.Dense, start []int) (offsets []Offset, reached []bool, wraps bool) {
	n, _ := frac.Dims()
	offsets = make([]Offset, n)
	reached = make([]bool, n)
	queue := make([]int, 0, n)
	for _, s := range start {
		if !reached[s] {
			reached[s] = true
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := 0; v < n; v++ {
			if adj.At(u, v) == 0 {
				continue
			}
			//place v in the image closest to where u was placed
			var off Offset
			for k := 0; k < 3; k++ {
				pu := frac.At(u, k) + float64(offsets[u][k])
				off[k] = int(math.Round(pu - frac.At(v, k)))
			}
			if reached[v] {
				if off != offsets[v] {
					wraps = true
				}
				continue
			}
			offsets[v] = off
			reached[v] = true
			queue = append(queue, v)
		}
	}
	return offsets, reached, wraps
}

// ImageOffsets walks the bond graph of the given atoms (cartesian
// coordinates, one per row, with their induced adjacency matrix) starting
// from the local indices in start, and returns the lattice image offset each
// atom ends up in when the walk keeps every bond within one image, together
// with the number of distinct images the fragment spans. A fragment spanning
// a single image closes on itself inside one cell; more than one means it
// crosses a periodic boundary. A bond whose two ends disagree about their
// image counts as one extra image, since the crossing it carries is not
// visible in any per-atom offset.
func ImageOffsets(cell, cart, adj *mat.Dense, start []int) ([]Offset, int, error) {
	frac, err := mof.CartToFrac(cell, cart)
	if err != nil {
		return nil, 0, errDecorate(err, "ImageOffsets")
	}
	offsets, _, wraps := imageWalk(frac, adj, start)
	images := UniqueOffsets(offsets)
	if wraps {
		images++
	}
	return offsets, images, nil
}

// UniqueOffsets returns the number of distinct offsets in the slice.
func UniqueOffsets(offsets []Offset) int {
	seen := make(map[Offset]struct{}, len(offsets))
	for _, o := range offsets {
		seen[o] = struct{}{}
	}
	return len(seen)
}

// ConnectedCoords rebuilds cartesian coordinates for a set of atoms so that
// every bonded pair sits in the same periodic image: the bond graph is
// walked from the first atom of each connected component, unwrapping each
// bond across the boundary it crosses. The input cartesian coordinates may
// be wrapped into the cell arbitrarily; the output ones form geometrically
// contiguous molecules.
func ConnectedCoords(cell, cart, adj *mat.Dense) (*mat.Dense, error) {
	frac, err := mof.CartToFrac(cell, cart)
	if err != nil {
		return nil, errDecorate(err, "ConnectedCoords")
	}
	n, _ := cart.Dims()
	offsets := make([]Offset, n)
	placed := make([]bool, n)
	for i := 0; i < n; i++ {
		if placed[i] {
			continue
		}
		offs, reached, _ := imageWalk(frac, adj, []int{i})
		for v := 0; v < n; v++ {
			if reached[v] && !placed[v] {
				offsets[v] = offs[v]
				placed[v] = true
			}
		}
	}
	unwrapped := mat.NewDense(n, 3, nil)
	for i := 0; i < n; i++ {
		for k := 0; k < 3; k++ {
			unwrapped.Set(i, k, frac.At(i, k)+float64(offsets[i][k]))
		}
	}
	return mof.FracToCart(cell, unwrapped), nil
}

func errDecorate(err error, where string) error {
	err2, ok := err.(mof.Error)
	if !ok {
		return err
	}
	err2.Decorate(where)
	return err2
}

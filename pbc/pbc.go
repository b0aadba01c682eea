/*
 * pbc.go, part of gomof.
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

/*Package pbc implements the periodic-boundary machinery the decomposition
consumes: minimum-image distance matrices, bond perception over periodic
images, reconstruction of connected cartesian coordinates, and the lattice
image-offset walk used to tell ligands from linkers in small cells.*/
package pbc

import (
	"fmt"
	"math"

	mof "github.com/gomatsci/gomof"
	"gonum.org/v1/gonum/mat"
)

//bond criterion constants, from DOI:10.1186/1758-2946-3-33, as used for
//non-periodic bond perception elsewhere.
const (
	tooclose = 0.63 //below this distance two atoms overlap
	bondtol  = 0.45
)

// OverlapError reports that two atoms sit implausibly close to each other,
// which means the input structure is malformed and must not be decomposed.
type OverlapError struct {
	*mof.CError
	I, J int
	Dist float64
}

// IsOverlap reports whether err is an OverlapError.
func IsOverlap(err error) bool {
	_, ok := err.(*OverlapError)
	return ok
}

// DistanceMatrix computes the minimum-image distance between every pair of
// atoms: the smallest distance between atom i and any of the 27 periodic
// images of atom j given by shifts of -1, 0 or +1 cells along each vector.
// cart holds cartesian coordinates, one atom per row.
func DistanceMatrix(cell, cart *mat.Dense) *mat.Dense {
	n, _ := cart.Dims()
	//the 27 image shift vectors, in cartesian terms
	shifts := make([][3]float64, 0, 27)
	for a := -1; a <= 1; a++ {
		for b := -1; b <= 1; b++ {
			for c := -1; c <= 1; c++ {
				var s [3]float64
				for k := 0; k < 3; k++ {
					s[k] = float64(a)*cell.At(0, k) + float64(b)*cell.At(1, k) + float64(c)*cell.At(2, k)
				}
				shifts = append(shifts, s)
			}
		}
	}
	dist := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			min := math.Inf(1)
			for _, s := range shifts {
				dx := cart.At(i, 0) - cart.At(j, 0) - s[0]
				dy := cart.At(i, 1) - cart.At(j, 1) - s[1]
				dz := cart.At(i, 2) - cart.At(j, 2) - s[2]
				d := math.Sqrt(dx*dx + dy*dy + dz*dz)
				if d < min {
					min = d
				}
			}
			dist.Set(i, j, min)
			dist.Set(j, i, min)
		}
	}
	return dist
}

// AdjacencyMatrix perceives bonds from a minimum-image distance matrix using
// the covalent-radius criterion: atoms i and j are bonded when their distance
// is below the sum of their covalent radii plus a tolerance. It returns an
// OverlapError if any pair sits closer than the overlap limit, since such a
// structure cannot be meaningfully decomposed.
func AdjacencyMatrix(dist *mat.Dense, elements []string) (*mat.Dense, error) {
	n := len(elements)
	adj := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		cov1, ok := mof.CovalentRadius(elements[i])
		if !ok {
			return nil, mof.NewError("AdjacencyMatrix", fmt.Sprintf("couldn't find the covalent radius for %s %d", elements[i], i))
		}
		for j := i + 1; j < n; j++ {
			cov2, ok := mof.CovalentRadius(elements[j])
			if !ok {
				return nil, mof.NewError("AdjacencyMatrix", fmt.Sprintf("couldn't find the covalent radius for %s %d", elements[j], j))
			}
			d := dist.At(i, j)
			if d < tooclose {
				return nil, &OverlapError{
					CError: mof.NewError("AdjacencyMatrix", fmt.Sprintf("atomic overlap: atoms %d and %d are %.2f A apart", i, j, d)),
					I:      i, J: j, Dist: d,
				}
			}
			if d < cov1+cov2+bondtol {
				adj.Set(i, j, 1)
				adj.Set(j, i, 1)
			}
		}
	}
	return adj, nil
}

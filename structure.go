/*
 * structure.go, part of gomof.
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

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Structure is one periodic crystal structure: an ordered list of atoms
// (element symbol plus fractional coordinate), the 3x3 cell-vector matrix,
// and a symmetric 0/1 bond adjacency matrix over atom indices. A bond may
// connect an atom to a periodic image of its partner; the adjacency matrix
// does not distinguish the two cases.
//
// A Structure is read-only for the whole lifetime of a decomposition run.
// Atom indices into it are stable for that lifetime.
type Structure struct {
	elements []string
	frac     *mat.Dense //fractional coordinates, one atom per row
	cell     *mat.Dense //3x3, one cell vector per row
	adj      *mat.Dense //NxN, 1.0 = bond
}

// NewStructure builds a Structure from element symbols, fractional
// coordinates (one atom per row), the cell-vector matrix and the adjacency
// matrix. The adjacency matrix must be symmetric with a zero diagonal; this
// is checked here, once, so the decomposition stages don't have to.
func NewStructure(elements []string, frac, cell, adj *mat.Dense) (*Structure, error) {
	n := len(elements)
	fr, fc := frac.Dims()
	if fr != n || fc != 3 {
		return nil, NewError("NewStructure", fmt.Sprintf("coordinate matrix is %dx%d, want %dx3", fr, fc, n))
	}
	cr, cc := cell.Dims()
	if cr != 3 || cc != 3 {
		return nil, NewError("NewStructure", fmt.Sprintf("cell matrix is %dx%d, want 3x3", cr, cc))
	}
	ar, ac := adj.Dims()
	if ar != n || ac != n {
		return nil, NewError("NewStructure", fmt.Sprintf("adjacency matrix is %dx%d, want %dx%d", ar, ac, n, n))
	}
	for i := 0; i < n; i++ {
		if adj.At(i, i) != 0 {
			return nil, NewError("NewStructure", fmt.Sprintf("adjacency matrix has a nonzero diagonal at atom %d", i))
		}
		for j := i + 1; j < n; j++ {
			if adj.At(i, j) != adj.At(j, i) {
				return nil, NewError("NewStructure", fmt.Sprintf("adjacency matrix is not symmetric at (%d,%d)", i, j))
			}
		}
	}
	return &Structure{elements: elements, frac: frac, cell: cell, adj: adj}, nil
}

// Len returns the number of atoms in the structure.
func (S *Structure) Len() int {
	return len(S.elements)
}

// Symbol returns the element symbol of atom i. Panics if out of range, as
// an out-of-range index here is always a programming error.
func (S *Structure) Symbol(i int) string {
	return S.elements[i]
}

// Symbols returns the element symbols of all atoms, in order. The returned
// slice is shared; don't modify it.
func (S *Structure) Symbols() []string {
	return S.elements
}

// IsMetal reports whether atom i is a metal.
func (S *Structure) IsMetal(i int) bool {
	return symbolMetal[S.elements[i]]
}

// Metals returns the set of metal atoms in the structure.
func (S *Structure) Metals() AtomSet {
	m := NewAtomSet()
	for i, sym := range S.elements {
		if symbolMetal[sym] {
			m.Add(i)
		}
	}
	return m
}

// AllAtoms returns the set of every atom index in the structure.
func (S *Structure) AllAtoms() AtomSet {
	s := make(AtomSet, len(S.elements))
	for i := range S.elements {
		s.Add(i)
	}
	return s
}

// Cell returns the 3x3 cell-vector matrix. Shared, read-only.
func (S *Structure) Cell() *mat.Dense {
	return S.cell
}

// FracCoords returns the fractional coordinate matrix. Shared, read-only.
func (S *Structure) FracCoords() *mat.Dense {
	return S.frac
}

// Adjacency returns the global adjacency matrix. Shared, read-only.
func (S *Structure) Adjacency() *mat.Dense {
	return S.adj
}

// CartCoords returns a freshly allocated matrix with the cartesian
// coordinates of all atoms.
func (S *Structure) CartCoords() *mat.Dense {
	return FracToCart(S.cell, S.frac)
}

// Bonded reports whether atoms i and j share a bond.
func (S *Structure) Bonded(i, j int) bool {
	return S.adj.At(i, j) != 0
}

// BondedAtoms returns the atoms bonded to atom i, in ascending index order.
func (S *Structure) BondedAtoms(i int) []int {
	var r []int
	n := S.Len()
	for j := 0; j < n; j++ {
		if S.adj.At(i, j) != 0 {
			r = append(r, j)
		}
	}
	return r
}

/*
 * cell.go, part of gomof.
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
	"math"

	"gonum.org/v1/gonum/mat"
)

const deg2rad = math.Pi / 180.0

// CellFromParameters builds the 3x3 cell-vector matrix from the six cell
// parameters: lengths a, b, c in Angstroms and angles alpha, beta, gamma in
// degrees. Each row of the returned matrix is one cell vector, with the a
// vector along x and the b vector in the xy plane (the usual crystallographic
// convention).
func CellFromParameters(a, b, c, alpha, beta, gamma float64) *mat.Dense {
	ca := math.Cos(alpha * deg2rad)
	cb := math.Cos(beta * deg2rad)
	cg := math.Cos(gamma * deg2rad)
	sg := math.Sin(gamma * deg2rad)
	cy := (ca - cb*cg) / sg
	cz := math.Sqrt(1.0 - cb*cb - cy*cy)
	return mat.NewDense(3, 3, []float64{
		a, 0, 0,
		b * cg, b * sg, 0,
		c * cb, c * cy, c * cz,
	})
}

// FracToCart converts fractional coordinates (one atom per row) to cartesian
// coordinates given the cell-vector matrix.
func FracToCart(cell *mat.Dense, frac *mat.Dense) *mat.Dense {
	n, _ := frac.Dims()
	cart := mat.NewDense(n, 3, nil)
	cart.Mul(frac, cell)
	return cart
}

// CartToFrac converts cartesian coordinates (one atom per row) to fractional
// coordinates given the cell-vector matrix. It fails if the cell matrix is
// singular.
func CartToFrac(cell *mat.Dense, cart *mat.Dense) (*mat.Dense, error) {
	var inv mat.Dense
	if err := inv.Inverse(cell); err != nil {
		return nil, NewError("CartToFrac", "singular cell matrix: "+err.Error())
	}
	n, _ := cart.Dims()
	frac := mat.NewDense(n, 3, nil)
	frac.Mul(cart, &inv)
	return frac, nil
}

/*
 * gomof_test.go, part of gomof.
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
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestCellFromParameters(Te *testing.T) {
	cell := CellFromParameters(10, 12, 14, 90, 90, 90)
	want := []float64{10, 0, 0, 0, 12, 0, 0, 0, 14}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(cell.At(i, j)-want[i*3+j]) > 1e-9 {
				Te.Errorf("orthorhombic cell entry (%d,%d) = %f, want %f", i, j, cell.At(i, j), want[i*3+j])
			}
		}
	}
	//a triclinic cell must still reproduce the vector lengths
	cell = CellFromParameters(8, 9, 10, 80, 95, 112)
	for i, l := range []float64{8, 9, 10} {
		got := math.Sqrt(cell.At(i, 0)*cell.At(i, 0) + cell.At(i, 1)*cell.At(i, 1) + cell.At(i, 2)*cell.At(i, 2))
		if math.Abs(got-l) > 1e-9 {
			Te.Errorf("triclinic vector %d has length %f, want %f", i, got, l)
		}
	}
}

func TestFracCartRoundTrip(Te *testing.T) {
	cell := CellFromParameters(8, 9, 10, 80, 95, 112)
	frac := mat.NewDense(3, 3, []float64{
		0.1, 0.2, 0.3,
		0.9, 0.05, 0.5,
		0.33, 0.66, 0.99,
	})
	cart := FracToCart(cell, frac)
	back, err := CartToFrac(cell, cart)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			if math.Abs(back.At(i, k)-frac.At(i, k)) > 1e-9 {
				Te.Errorf("roundtrip coordinate (%d,%d) = %f, want %f", i, k, back.At(i, k), frac.At(i, k))
			}
		}
	}
}

func TestCartToFracSingular(Te *testing.T) {
	cell := mat.NewDense(3, 3, nil) //all-zero, hence singular
	cart := mat.NewDense(1, 3, []float64{1, 2, 3})
	if _, err := CartToFrac(cell, cart); err == nil {
		Te.Error("expected an error for a singular cell matrix")
	}
}

func TestAtomSet(Te *testing.T) {
	s := NewAtomSet(3, 1, 2)
	s.Add(1) //re-adding must be a no-op
	if s.Len() != 3 {
		Te.Errorf("set has %d members, want 3", s.Len())
	}
	if got := s.Slice(); got[0] != 1 || got[1] != 2 || got[2] != 3 {
		Te.Errorf("Slice() = %v, want ascending [1 2 3]", got)
	}
	o := NewAtomSet(2, 5)
	d := s.Minus(o)
	if d.Has(2) || !d.Has(1) || !d.Has(3) || d.Len() != 2 {
		Te.Errorf("difference = %v", d.Slice())
	}
	if !s.Intersects(o) {
		Te.Error("sets sharing atom 2 reported disjoint")
	}
	c := s.Copy()
	c.Del(1)
	if !s.Has(1) {
		Te.Error("deleting from a copy changed the original")
	}
}

func TestStructureValidation(Te *testing.T) {
	cell := CellFromParameters(10, 10, 10, 90, 90, 90)
	frac := mat.NewDense(2, 3, []float64{0.1, 0.1, 0.1, 0.2, 0.1, 0.1})
	asym := mat.NewDense(2, 2, []float64{0, 1, 0, 0})
	if _, err := NewStructure([]string{"Zn", "O"}, frac, cell, asym); err == nil {
		Te.Error("asymmetric adjacency matrix accepted")
	}
	adj := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
	s, err := NewStructure([]string{"Zn", "O"}, frac, cell, adj)
	if err != nil {
		Te.Fatal(err)
	}
	if !s.IsMetal(0) || s.IsMetal(1) {
		Te.Error("metal perception is wrong for Zn/O")
	}
	if b := s.BondedAtoms(0); len(b) != 1 || b[0] != 1 {
		Te.Errorf("BondedAtoms(0) = %v, want [1]", b)
	}
}

func TestXYZAndGraphRoundTrip(Te *testing.T) {
	dir := Te.TempDir()
	cell := CellFromParameters(10, 10, 10, 90, 90, 90)
	elements := []string{"Zn", "O", "C", "X"}
	cart := mat.NewDense(4, 3, []float64{
		1, 1, 1,
		2.5, 1, 1,
		4, 1, 1,
		5.5, 1, 1,
	})
	adj := mat.NewDense(4, 4, []float64{
		0, 1, 0, 0,
		1, 0, 1, 0,
		0, 1, 0, 1,
		0, 0, 1, 0,
	})
	for _, name := range []string{"t.xyz", "t.xyz.gz", "t.xyz.zst"} {
		full := filepath.Join(dir, name)
		if err := WriteXYZAndGraph(full, elements, cell, cart, adj, []int{3}); err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		el2, cart2, cell2, adj2, caps, err := ReadXYZAndGraph(full)
		if err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		if len(el2) != 4 || el2[0] != "Zn" || el2[3] != "X" {
			Te.Errorf("%s: elements read back as %v", name, el2)
		}
		if cell2 == nil || math.Abs(cell2.At(0, 0)-10) > 1e-6 {
			Te.Errorf("%s: cell did not survive the comment line", name)
		}
		if len(caps) != 1 || caps[0] != 3 {
			Te.Errorf("%s: capping annotation read back as %v", name, caps)
		}
		for i := 0; i < 4; i++ {
			if math.Abs(cart2.At(i, 0)-cart.At(i, 0)) > 1e-5 {
				Te.Errorf("%s: coordinate of atom %d off: %f", name, i, cart2.At(i, 0))
			}
			for j := 0; j < 4; j++ {
				if adj2.At(i, j) != adj.At(i, j) {
					Te.Errorf("%s: adjacency (%d,%d) did not survive", name, i, j)
				}
			}
		}
	}
}

func TestCovalentRadii(Te *testing.T) {
	r, ok := CovalentRadius("C")
	if !ok || r <= 0 {
		Te.Error("no covalent radius for carbon")
	}
	if _, ok := CovalentRadius("Qq"); ok {
		Te.Error("made up a radius for a nonexistent element")
	}
	if !IsMetalSymbol("Zr") || IsMetalSymbol("N") {
		Te.Error("metal table is wrong for Zr/N")
	}
	if _, ok := CovalentRadius("X"); !ok {
		Te.Error("the capping placeholder needs a radius for reconstruction")
	}
}

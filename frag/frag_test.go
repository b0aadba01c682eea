/*
 * frag_test.go, part of gomof.
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
	"os"
	"path/filepath"
	"strings"
	"testing"

	mof "github.com/gomatsci/gomof"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// testStructure builds a Structure from cartesian positions inside a cubic
// cell of the given edge, with bonds given as an explicit edge list.
func testStructure(t *testing.T, edge float64, symbols []string, pos [][3]float64, bonds [][2]int) *mof.Structure {
	t.Helper()
	n := len(symbols)
	require.Equal(t, n, len(pos))
	cell := mof.CellFromParameters(edge, edge, edge, 90, 90, 90)
	cart := mat.NewDense(n, 3, nil)
	for i, p := range pos {
		cart.SetRow(i, []float64{p[0], p[1], p[2]})
	}
	frac, err := mof.CartToFrac(cell, cart)
	require.NoError(t, err)
	adj := mat.NewDense(n, n, nil)
	for _, b := range bonds {
		adj.Set(b[0], b[1], 1)
		adj.Set(b[1], b[0], 1)
	}
	s, err := mof.NewStructure(symbols, frac, cell, adj)
	require.NoError(t, err)
	return s
}

// dicarboxylateMOF is two single-metal SBUs bridged by one linear
// O-C-C-C-C-C-O linker, long enough that both SBU fragments and the linker
// middle survive assembly.
func dicarboxylateMOF(t *testing.T) *mof.Structure {
	symbols := []string{"Zn", "Zn", "O", "C", "C", "C", "C", "C", "O"}
	pos := [][3]float64{
		{2.0, 15, 15},
		{15.0, 15, 15},
		{4.0, 15, 15},
		{5.5, 15, 15},
		{7.0, 15, 15},
		{8.5, 15, 15},
		{10.0, 15, 15},
		{11.5, 15, 15},
		{13.0, 15, 15},
	}
	bonds := [][2]int{{0, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7}, {7, 8}, {8, 1}}
	return testStructure(t, 30, symbols, pos, bonds)
}

func listFiles(t *testing.T, dir, substr string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	var r []string
	for _, e := range entries {
		if strings.Contains(e.Name(), substr) && strings.HasSuffix(e.Name(), ".xyz") {
			r = append(r, e.Name())
		}
	}
	return r
}

func TestRunBridgingLinkers(t *testing.T) {
	s := dicarboxylateMOF(t)
	base := t.TempDir()
	code, err := Run(s, "dicarb", base, nil)
	require.NoError(t, err)
	assert.Equal(t, CodeOK, code)

	sbus := listFiles(t, filepath.Join(base, "sbus"), "_sbu_")
	assert.Len(t, sbus, 2)
	linkers := listFiles(t, filepath.Join(base, "linkers"), "_linker_")
	assert.Len(t, linkers, 1)
	//the whole-cell reference dump
	_, err = os.Stat(filepath.Join(base, "xyz", "dicarb.xyz"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(base, "logs", "dicarb.log"))
	assert.NoError(t, err)
}

func TestRunLinkerCapping(t *testing.T) {
	s := dicarboxylateMOF(t)
	base := t.TempDir()
	code, err := Run(s, "dicarb", base, nil)
	require.NoError(t, err)
	require.Equal(t, CodeOK, code)

	elements, cart, _, adj, caps, err := mof.ReadXYZAndGraph(filepath.Join(base, "linkers", "dicarb_linker_0.xyz"))
	require.NoError(t, err)
	//middle carbon, two context carbons, two placeholders at the tail
	require.Equal(t, []string{"C", "C", "C", "X", "X"}, elements)
	assert.Equal(t, []int{3, 4}, caps)
	//each placeholder keeps the bond of the atom it replaced
	assert.Equal(t, 1.0, adj.At(1, 3)) //X for the carbon beyond context atom 1
	assert.Equal(t, 1.0, adj.At(2, 4))
	//capping bonds are shortened to 0.75 of the original 1.5 A bond
	d := math.Abs(cart.At(3, 0) - cart.At(1, 0))
	assert.InDelta(t, 0.75*1.5, d, 1e-6)
}

func TestRunDegenerateLinkers(t *testing.T) {
	//metal-O-C-O-metal: anchor-to-anchor path of 2 bonds
	symbols := []string{"Zn", "Zn", "O", "C", "O"}
	pos := [][3]float64{
		{4, 10, 10}, {12, 10, 10}, {6, 10, 10}, {8, 10, 10}, {10, 10, 10},
	}
	bonds := [][2]int{{0, 2}, {2, 3}, {3, 4}, {4, 1}}
	s := testStructure(t, 20, symbols, pos, bonds)
	base := t.TempDir()
	code, err := Run(s, "degen", base, nil)
	require.NoError(t, err)
	assert.Equal(t, CodeDegenerate, code)
	//aborts before any fragment is written
	assert.Empty(t, listFiles(t, filepath.Join(base, "sbus"), ".xyz"))
	assert.Empty(t, listFiles(t, filepath.Join(base, "linkers"), ".xyz"))
	_, err = os.Stat(filepath.Join(base, "linkers", "short.txt"))
	assert.NoError(t, err)
}

func TestRunShortLinkerRegime(t *testing.T) {
	//a three-anchor linker with uneven anchor paths (2 and 3 bonds):
	//min_max is 3 but max_min is 2, so the cell cannot be cut cleanly
	symbols := []string{"Zn", "Zn", "O", "C", "O", "C", "O"}
	pos := [][3]float64{
		{3, 10, 10},
		{11, 10, 10},
		{5, 10, 10},
		{7, 10, 10},
		{9, 10, 10},
		{7, 12, 10},
		{9, 12, 10},
	}
	bonds := [][2]int{{0, 2}, {2, 3}, {3, 4}, {4, 1}, {3, 5}, {5, 6}, {6, 1}}
	s := testStructure(t, 20, symbols, pos, bonds)
	base := t.TempDir()
	code, err := Run(s, "short", base, nil)
	require.NoError(t, err)
	assert.Equal(t, CodeShortLinker, code)
	assert.Empty(t, listFiles(t, filepath.Join(base, "sbus"), ".xyz"))
	assert.Empty(t, listFiles(t, filepath.Join(base, "linkers"), ".xyz"))
}

func TestRunRodSBU(t *testing.T) {
	//a Zn-O-Zn-O chain closing on itself through the periodic boundary,
	//decorated with one chelating O-C-C-C-O loop so classification
	//reaches assembly
	symbols := []string{"Zn", "O", "Zn", "O", "O", "C", "C", "C", "O"}
	pos := [][3]float64{
		{1.0, 5, 5},
		{3.5, 5, 5},
		{6.0, 5, 5},
		{8.5, 5, 5},
		{1.0, 6.5, 5},
		{1.8, 7.6, 5},
		{3.2, 7.6, 5},
		{4.0, 6.5, 5},
		{3.0, 5.4, 5},
	}
	bonds := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, //the rod, wrapping at 3-0
		{0, 4}, {4, 5}, {5, 6}, {6, 7}, {7, 8}, {8, 0},
	}
	s := testStructure(t, 10, symbols, pos, bonds)
	base := t.TempDir()
	code, err := Run(s, "rod", base, nil)
	require.NoError(t, err)
	assert.Equal(t, CodeRod, code)
	rods := listFiles(t, filepath.Join(base, "sbus"), "sbu1Drod")
	assert.Len(t, rods, 1)
}

func TestRunRingIntegrity(t *testing.T) {
	//a para-connected benzene linker: shell growth pulls single ring
	//carbons into both SBUs, which must then absorb the whole ring
	symbols := []string{"Zn", "O", "C", "C", "C", "C", "C", "C", "O", "Zn"}
	pos := [][3]float64{
		{2.0, 15, 15},
		{4.0, 15, 15},
		{6.1, 15, 15},
		{6.8, 16.2, 15},
		{8.2, 16.2, 15},
		{8.9, 15, 15},
		{8.2, 13.8, 15},
		{6.8, 13.8, 15},
		{10.3, 15, 15},
		{12.3, 15, 15},
	}
	bonds := [][2]int{
		{0, 1}, {1, 2},
		{2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7}, {7, 2},
		{5, 8}, {8, 9},
	}
	s := testStructure(t, 30, symbols, pos, bonds)
	base := t.TempDir()
	code, err := Run(s, "ring", base, nil)
	require.NoError(t, err)
	assert.Equal(t, CodeOK, code)

	sbus := listFiles(t, filepath.Join(base, "sbus"), "_sbu_")
	require.Len(t, sbus, 2)
	for _, name := range sbus {
		elements, _, _, _, _, err := mof.ReadXYZAndGraph(filepath.Join(base, "sbus", name))
		require.NoError(t, err)
		carbons := 0
		for _, sym := range elements {
			if sym == "C" {
				carbons++
			}
		}
		//all six ring atoms or none: a bisected ring would show up as
		//some other carbon count
		assert.Equal(t, 6, carbons, "fragment %s bisected the ring", name)
	}
	//both SBUs consumed the whole linker, nothing left to write
	assert.Empty(t, listFiles(t, filepath.Join(base, "linkers"), "_linker_"))
}

func TestRunPreconditions(t *testing.T) {
	base := t.TempDir()
	//no metal at all
	s := testStructure(t, 20, []string{"C", "C"},
		[][3]float64{{5, 5, 5}, {6.5, 5, 5}}, [][2]int{{0, 1}})
	code, err := Run(s, "nometal", base, nil)
	require.NoError(t, err)
	assert.Equal(t, CodeSkip, code)

	//a floating solvent molecule next to a metal cluster
	s = testStructure(t, 20, []string{"Zn", "O", "C", "O"},
		[][3]float64{{5, 5, 5}, {6.8, 5, 5}, {12, 12, 12}, {13.3, 12, 12}},
		[][2]int{{0, 1}, {2, 3}})
	code, err = Run(s, "solvent", base, nil)
	require.NoError(t, err)
	assert.Equal(t, CodeSkip, code)

	//too many atoms for the configured limit
	opts := DefaultOptions()
	opts.MaxAtoms(3)
	s = dicarboxylateMOF(t)
	code, err = Run(s, "toolarge", base, opts)
	require.NoError(t, err)
	assert.Equal(t, CodeSkip, code)

	data, err := os.ReadFile(filepath.Join(base, "FailedStructures.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "no metal found")
	assert.Contains(t, string(data), "solvent molecules")
	assert.Contains(t, string(data), "large primitive cell")
}

func TestRunWriteFailureCode(t *testing.T) {
	//a directory squatting on the first fragment file name makes the write
	//fail mid-assembly; the error must come back paired with CodeSkip
	s := dicarboxylateMOF(t)
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "sbus", "dicarb_sbu_0.xyz"), 0755))
	code, err := Run(s, "dicarb", base, nil)
	require.Error(t, err)
	assert.Equal(t, CodeSkip, code)
}

func TestRunFromCoordsOverlap(t *testing.T) {
	base := t.TempDir()
	cell := mof.CellFromParameters(20, 20, 20, 90, 90, 90)
	cart := mat.NewDense(2, 3, []float64{5, 5, 5, 5.2, 5, 5})
	frac, err := mof.CartToFrac(cell, cart)
	require.NoError(t, err)
	code, err := RunFromCoords([]string{"Zn", "O"}, cell, frac, "overlap", base, nil)
	require.NoError(t, err)
	assert.Equal(t, CodeSkip, code)
	data, err := os.ReadFile(filepath.Join(base, "FailedStructures.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "atomic overlap")
}

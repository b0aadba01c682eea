/*
 * breakdown.go, part of gomof.
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
	"fmt"
	"math"
	"path/filepath"

	mof "github.com/gomatsci/gomof"
	"github.com/gomatsci/gomof/cgraph"
	"github.com/gomatsci/gomof/pbc"
	"gonum.org/v1/gonum/mat"
)

// breakdown assembles and writes the final SBU and linker fragments. Each
// SBU fragment starts from its seed atoms and grows by whole rings (a
// boundary must never bisect a ring), by pendant branches off the organic
// main paths, and by every bonded hydrogen; bonds reaching back onto a main
// path are cut and capped with "X" placeholders. Linker fragments are what
// remains of each organic component after the SBUs took their share, plus
// one shell of SBU-side context, capped the same way.
//
// It returns CodeShortLinker without assembling anything when the longest
// anchor-to-anchor path over all linkers is two atoms or fewer, and CodeRod
// as soon as one assembled SBU turns out to repeat through the periodic
// boundary without closing.
func breakdown(s *mof.Structure, sbuComps [][]int, cls *classification, lb *logbook, opts *Options) (Code, error) {
	adj := s.Adjacency()
	cart := s.CartCoords()

	//organic main paths: anchor-to-anchor paths of every connection
	//component, rings folded in
	mainPaths := mof.NewAtomSet()
	currentLongest := 0
	for j, conn := range cls.connections {
		var anchorLocals []int
		for jj, val := range conn {
			if cls.anchors.Has(val) {
				anchorLocals = append(anchorLocals, jj)
			}
		}
		main, _, longest := cgraph.MainChain(cls.connectionSubs[j], anchorLocals)
		if longest > currentLongest {
			currentLongest = longest
		}
		for _, l := range main {
			mainPaths.Add(conn[l])
		}
	}
	if currentLongest <= 2 {
		return CodeShortLinker, nil
	}

	//all rings that don't involve a metal, cached once per run
	var cycles [][]int
	var cycleSets []mof.AtomSet
	flatCycles := mof.NewAtomSet()
	for _, cyc := range cgraph.CycleBasis(adj) {
		hasMetal := false
		for _, a := range cyc {
			if s.IsMetal(a) {
				hasMetal = true
				break
			}
		}
		if hasMetal {
			continue
		}
		cycles = append(cycles, cyc)
		cycleSets = append(cycleSets, mof.NewAtomSet(cyc...))
		flatCycles.Add(cyc...)
	}

	allSBU := mof.NewAtomSet()
	for i, comp := range sbuComps {
		f := newFragment(s, cart)
		var bondedToCycle [][]int
		cycleSeen := make([]bool, len(cycles))
		for _, val := range comp {
			f.add(val)
			//a seed atom inside a ring pulls in the whole ring plus a
			//record of the ring's outside neighbors
			for ci := range cycles {
				if !cycleSets[ci].Has(val) || cycleSeen[ci] {
					continue
				}
				cycleSeen[ci] = true
				var outside []int
				for _, cv := range cycles[ci] {
					f.add(cv)
					for _, b := range s.BondedAtoms(cv) {
						if !cycleSets[ci].Has(b) {
							outside = append(outside, b)
						}
					}
				}
				bondedToCycle = append(bondedToCycle, outside)
			}
			//pendant branches: fixed-point worklist instead of recursion,
			//large fragments would blow the stack otherwise
			queue := []int{val}
			for len(queue) > 0 {
				a := queue[0]
				queue = queue[1:]
				for _, b := range s.BondedAtoms(a) {
					if mainPaths.Has(b) || f.has(b) {
						continue
					}
					f.add(b)
					queue = append(queue, b)
				}
			}
		}
		//branches grown from different rings can double-count shared
		//atoms; merge anything two ring-neighbor sets have in common
		if len(bondedToCycle) > 1 {
			cleaned := make([]mof.AtomSet, len(bondedToCycle))
			for k, outside := range bondedToCycle {
				cleaned[k] = mof.NewAtomSet()
				for _, a := range outside {
					if !flatCycles.Has(a) {
						cleaned[k].Add(a)
					}
				}
			}
			for a := 0; a < len(cleaned); a++ {
				for b := a + 1; b < len(cleaned); b++ {
					for _, atom := range cleaned[a].Slice() {
						if cleaned[b].Has(atom) {
							f.add(atom)
						}
					}
				}
			}
			common := mof.NewAtomSet(bondedToCycle[0]...)
			for _, outside := range bondedToCycle[1:] {
				common = commonAtoms(common, outside)
			}
			for _, atom := range common.Slice() {
				f.add(atom)
			}
		}
		//hydrogens ride along unconditionally; any other neighbor on a
		//main path becomes a cut point
		var pending []pendingCap
		checked := mof.NewAtomSet()
		snapshot := append([]int(nil), f.atoms...)
		for _, a := range snapshot {
			for _, b := range s.BondedAtoms(a) {
				if s.Symbol(b) == "H" && !f.has(b) {
					f.add(b)
					continue
				}
				if mainPaths.Has(b) && !f.has(b) && !checked.Has(b) {
					pending = append(pending, pendingCap{replaced: b, anchorGlobal: a})
					checked.Add(b)
				}
			}
		}
		f.seal(pending)

		fragAdj := f.adjacency()
		conn, err := pbc.ConnectedCoords(s.Cell(), f.coords(), fragAdj)
		if err != nil {
			return CodeSkip, errDecorate(err, "breakdown")
		}
		rod := isRod(conn, fragAdj, opts.rodThreshold)
		f.correctCaps(conn, opts.capFactor)
		base := fmt.Sprintf("%s_sbu_%d.xyz", lb.name, i)
		if rod {
			base = fmt.Sprintf("%s_sbu1Drod_%d.xyz", lb.name, i)
		}
		fname := filepath.Join(lb.sbuPath(), opts.fileName(base))
		if err := mof.WriteXYZAndGraph(fname, f.symbols, s.Cell(), conn, fragAdj, f.capLocals()); err != nil {
			return CodeSkip, errDecorate(err, "breakdown")
		}
		allSBU.Add(f.atoms...)
		if rod {
			//downstream tooling cannot consume an infinite 1D motif;
			//there is no point assembling the rest
			lb.log("SBU %d is periodic in nature (1D rod), stopping here\n", i)
			return CodeRod, nil
		}
	}

	for j, conn := range cls.connections {
		f := newFragment(s, cart)
		var pending []pendingCap
		checked := mof.NewAtomSet()
		for _, val := range conn {
			if allSBU.Has(val) {
				continue
			}
			f.add(val)
			for _, b := range s.BondedAtoms(val) {
				if !allSBU.Has(b) || f.has(b) {
					continue
				}
				//SBU-side neighbor kept as context for the cut
				f.add(b)
				for _, sub := range s.BondedAtoms(b) {
					if allSBU.Has(sub) && !f.has(sub) && !checked.Has(sub) {
						pending = append(pending, pendingCap{replaced: sub, anchorGlobal: b})
						checked.Add(sub)
					}
				}
			}
		}
		f.seal(pending)
		if f.len() == 0 {
			continue
		}
		if f.len()-len(f.caps) < opts.minLinkerAtoms {
			continue //too small to be chemically meaningful
		}
		if len(cgraph.Components(f.noCapAdjacency())) > 1 {
			continue //the SBUs consumed it down to disconnected scraps
		}
		fragAdj := f.adjacency()
		connCoords, err := pbc.ConnectedCoords(s.Cell(), f.coords(), fragAdj)
		if err != nil {
			return CodeSkip, errDecorate(err, "breakdown")
		}
		f.correctCaps(connCoords, opts.capFactor)
		fname := filepath.Join(lb.linkerPath(), opts.fileName(fmt.Sprintf("%s_linker_%d.xyz", lb.name, j)))
		if err := mof.WriteXYZAndGraph(fname, f.symbols, s.Cell(), connCoords, fragAdj, f.capLocals()); err != nil {
			return CodeSkip, errDecorate(err, "breakdown")
		}
	}
	return CodeOK, nil
}

// commonAtoms returns the members of set that also appear in list.
func commonAtoms(set mof.AtomSet, list []int) mof.AtomSet {
	r := mof.NewAtomSet()
	for _, a := range list {
		if set.Has(a) {
			r.Add(a)
		}
	}
	return r
}

// isRod reports whether any bonded pair in the reconstructed coordinates is
// further apart than the threshold, meaning the fragment runs through the
// periodic boundary without ever closing.
func isRod(coords, adj *mat.Dense, threshold float64) bool {
	n, _ := adj.Dims()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if adj.At(i, j) == 0 {
				continue
			}
			dx := coords.At(i, 0) - coords.At(j, 0)
			dy := coords.At(i, 1) - coords.At(j, 1)
			dz := coords.At(i, 2) - coords.At(j, 2)
			if math.Sqrt(dx*dx+dy*dy+dz*dz) > threshold {
				return true
			}
		}
	}
	return false
}

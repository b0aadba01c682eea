/*
 * classify.go, part of gomof.
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

	mof "github.com/gomatsci/gomof"
	"github.com/gomatsci/gomof/cgraph"
	"github.com/gomatsci/gomof/pbc"
	"gonum.org/v1/gonum/mat"
)

// classification is the outcome of the linker/ligand partition of one
// structure. connections keeps every organic component found before any
// folding, in the order the extractor returned them; linkers keeps only the
// components that bridge SBUs. maxMin and minMax are the running maximum of
// the per-linker shortest anchor path and the running minimum of the
// per-linker longest anchor path; both are order-independent aggregates.
type classification struct {
	anchors        mof.AtomSet //atoms on organic fragments bonded directly to a metal
	connections    [][]int
	connectionSubs []*mat.Dense
	linkers        [][]int
	linkerSubs     []*mat.Dense
	maxMin, minMax int
	long           bool
	minLens        []int //shortest anchor path per kept linker, for diagnostics
}

// rows returns a copy of the given rows of m, in order.
func rows(m *mat.Dense, idx []int) *mat.Dense {
	r := mat.NewDense(len(idx), 3, nil)
	for i, gi := range idx {
		for k := 0; k < 3; k++ {
			r.Set(i, k, m.At(gi, k))
		}
	}
	return r
}

// classifyLinkers partitions the organic side of the structure into bridging
// linkers and terminal ligands. Ligands are folded back into the remove and
// sbu sets, which are mutated here; every folded or ambiguous case leaves a
// verbatim record in the audit files.
//
// A fragment with fewer than two anchors is a ligand. A fragment anchored to
// two or more distinct SBU components is a linker, unambiguously. A fragment
// with several anchors all touching the same SBU component only happens when
// the unit cell is small enough for a fragment to appear to close on itself;
// the tie is broken by walking periodic-image offsets on both sides: if both
// the organic fragment and the anchors-plus-SBU side resolve to a single
// image, nothing crosses the boundary and the fragment is a ligand.
func classifyLinkers(s *mof.Structure, remove, sbu mof.AtomSet, lb *logbook) (*classification, error) {
	adj := s.Adjacency()
	cart := s.CartCoords()
	metals := s.Metals()
	all := s.AllAtoms()
	linkerAtoms := all.Minus(remove)

	comps, subs := cgraph.ClosedSubgraphs(linkerAtoms, remove, adj)

	cls := &classification{
		anchors:        mof.NewAtomSet(),
		connections:    comps,
		connectionSubs: subs,
		maxMin:         0,
		minMax:         100, //above any anchor path a classifiable cell produces
	}
	for _, comp := range comps {
		for _, a := range comp {
			for _, b := range s.BondedAtoms(a) {
				if metals.Has(b) {
					cls.anchors.Add(a)
					break
				}
			}
		}
	}

	//the initial SBU components, frozen before any ligand is folded in
	sbuComps, _ := cgraph.ClosedSubgraphs(remove.Copy(), linkerAtoms.Copy(), adj)
	sbuIndex := make(map[int]int)
	for k, sc := range sbuComps {
		for _, a := range sc {
			sbuIndex[a] = k
		}
	}

	for ii, comp := range comps {
		var anchorLocals []int
		anchorGlobals := mof.NewAtomSet()
		sbuAnchors := mof.NewAtomSet()
		sbuConnect := mof.NewAtomSet() //component ids, reusing the set type
		for iii, atom := range comp {
			touched := false
			for _, b := range s.BondedAtoms(atom) {
				if k, ok := sbuIndex[b]; ok {
					touched = true
					sbuAnchors.Add(b)
					sbuConnect.Add(k)
				}
			}
			if touched {
				anchorLocals = append(anchorLocals, iii)
				anchorGlobals.Add(atom)
			}
		}
		minLen, maxLen := cgraph.PathLengths(subs[ii], anchorLocals)

		if len(anchorLocals) < 2 { //terminal, non-bridging: a ligand
			lb.log("found ligand\n")
			remove.Add(comp...)
			sbu.Add(comp...)
			lb.audit("ligand.txt", "%s%d, Anchors list: %v, SBU connectlist: %v\n",
				lb.name, ii, sbuAnchors.Slice(), sbuConnect.Slice())
			continue
		}
		if sbuConnect.Len() >= 2 { //bridges two SBUs: certainly a linker
			cls.keep(comp, subs[ii], minLen, maxLen)
			continue
		}
		//ambiguous: several anchors, one SBU. Count periodic-image crossings.
		_, organicImages, err := pbc.ImageOffsets(s.Cell(), rows(cart, comp), subs[ii], anchorLocals)
		if err != nil {
			return nil, errDecorate(err, "classifyLinkers")
		}
		sbuTemp := anchorGlobals.Slice()
		for _, a := range sbuComps[sbuConnect.Slice()[0]] {
			if !anchorGlobals.Has(a) {
				sbuTemp = append(sbuTemp, a)
			}
		}
		starts := make([]int, anchorGlobals.Len())
		for i := range starts {
			starts[i] = i
		}
		_, sbuImages, err := pbc.ImageOffsets(s.Cell(), rows(cart, sbuTemp), cgraph.Induced(adj, sbuTemp), starts)
		if err != nil {
			return nil, errDecorate(err, "classifyLinkers")
		}
		if organicImages == 1 && sbuImages == 1 {
			//both sides live in a single image: the fragment closes on
			//itself within one cell, so it is a ligand
			remove.Add(comp...)
			sbu.Add(comp...)
			lb.audit("ambiguous.txt", "%s, Anchors list: %v, SBU connectlist: %v set to be ligand\n",
				lb.name, sbuAnchors.Slice(), sbuConnect.Slice())
			lb.audit("ligand.txt", "%s%d, Anchors list: %v, SBU connectlist: %v\n",
				lb.name, ii, sbuAnchors.Slice(), sbuConnect.Slice())
		} else {
			cls.keep(comp, subs[ii], minLen, maxLen)
			lb.audit("ambiguous.txt", "%s, Anchors list: %v, SBU connectlist: %v set to be linker\n",
				lb.name, sbuAnchors.Slice(), sbuConnect.Slice())
		}
	}

	tmpstr := fmt.Sprintf("%s, (min_max_linker_length,max_min_linker_length): %d , %d\n",
		lb.name, cls.minMax, cls.maxMin)
	lb.log("%s", tmpstr)
	if cls.minMax < 3 {
		lb.audit("short_ligands.txt", "%s", tmpstr)
	}
	if cls.minMax > 2 {
		//an N-C-C-N style ligand set is still uniform enough to cut
		if cls.maxMin == cls.minMax || cls.minMax > 3 {
			cls.long = true
		}
	}
	return cls, nil
}

// keep records a fragment as a linker and folds its path lengths into the
// order-independent aggregates.
func (cls *classification) keep(comp []int, sub *mat.Dense, minLen, maxLen int) {
	cls.linkers = append(cls.linkers, comp)
	cls.linkerSubs = append(cls.linkerSubs, sub)
	cls.minLens = append(cls.minLens, minLen)
	if minLen > cls.maxMin {
		cls.maxMin = minLen
	}
	if maxLen < cls.minMax {
		cls.minMax = maxLen
	}
}

func errDecorate(err error, where string) error {
	err2, ok := err.(mof.Error)
	if !ok {
		return err
	}
	err2.Decorate(where)
	return err2
}

/*
 * run.go, part of gomof.
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
	"errors"
	"path/filepath"

	mof "github.com/gomatsci/gomof"
	"github.com/gomatsci/gomof/cgraph"
	"github.com/gomatsci/gomof/fragplot"
	"github.com/gomatsci/gomof/pbc"
	"gonum.org/v1/gonum/mat"
)

// Run decomposes the periodic structure s into SBU and linker fragments,
// writing everything under base (linkers/, sbus/, xyz/, logs/ plus the
// shared audit files). name labels the structure in file names and logs.
// A nil opts means DefaultOptions.
//
// Inconclusive decompositions are reported through the Code, not through
// the error: CodeSkip for structures that fail the preconditions (too
// large, no metal, floating solvent), CodeShortLinker and CodeDegenerate
// for cells whose linkers are too short to place a boundary, CodeRod for
// 1D rod SBUs. The error is reserved for real failures, I/O and singular
// cells; whenever the error is non-nil the Code is CodeSkip.
func Run(s *mof.Structure, name, base string, opts *Options) (Code, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	lb, err := newLogbook(base, name)
	if err != nil {
		return CodeSkip, err
	}
	return run(s, lb, opts)
}

// RunFromCoords builds the bond graph from scratch (minimum-image distances,
// covalent-radius criterion) and then runs the decomposition. elements,
// cell and frac are the unit cell contents as a CIF reader would hand them
// over; structures with overlapping atoms are skipped, not failed.
func RunFromCoords(elements []string, cell, frac *mat.Dense, name, base string, opts *Options) (Code, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	lb, err := newLogbook(base, name)
	if err != nil {
		return CodeSkip, err
	}
	//the distance matrix is quadratic in size, so the size gate comes first
	if len(elements) > opts.maxAtoms {
		lb.failed("Failed to featurize %s: large primitive cell\n", name)
		return CodeSkip, nil
	}
	cart := mof.FracToCart(cell, frac)
	dist := pbc.DistanceMatrix(cell, cart)
	adj, err := pbc.AdjacencyMatrix(dist, elements)
	if err != nil {
		var ov *pbc.OverlapError
		if errors.As(err, &ov) {
			lb.failed("Failed to featurize %s: atomic overlap\n", name)
			return CodeSkip, nil
		}
		return CodeSkip, errDecorate(err, "RunFromCoords")
	}
	s, err := mof.NewStructure(elements, frac, cell, adj)
	if err != nil {
		return CodeSkip, errDecorate(err, "RunFromCoords")
	}
	return run(s, lb, opts)
}

func run(s *mof.Structure, lb *logbook, opts *Options) (Code, error) {
	if s.Len() > opts.maxAtoms {
		lb.failed("Failed to featurize %s: large primitive cell\n", lb.name)
		return CodeSkip, nil
	}
	adj := s.Adjacency()

	//whole-cell reference dump, written before anything can still go wrong
	wholeCell := filepath.Join(lb.xyzPath(), opts.fileName(lb.name+".xyz"))
	if err := mof.WriteXYZAndGraph(wholeCell, s.Symbols(), s.Cell(), s.CartCoords(), adj, nil); err != nil {
		return CodeSkip, errDecorate(err, "run")
	}

	metals := s.Metals()
	if metals.Len() == 0 {
		lb.failed("Failed to featurize %s: no metal found\n", lb.name)
		return CodeSkip, nil
	}
	//every connected component must carry a metal; a metal-free component
	//is floating solvent and poisons the partition
	comps := cgraph.Components(adj)
	for _, comp := range comps {
		hasMetal := false
		for _, a := range comp {
			if s.IsMetal(a) {
				hasMetal = true
				break
			}
		}
		if !hasMetal {
			lb.failed("Failed to featurize %s: solvent molecules\n", lb.name)
			return CodeSkip, nil
		}
	}
	if len(comps) > 1 {
		lb.log("%s found to be an interpenetrated structure\n", lb.name)
	}

	remove, sbu := InitialSBU(s, lb)
	cls, err := classifyLinkers(s, remove, sbu, lb)
	if err != nil {
		return CodeSkip, errDecorate(err, "run")
	}

	if uneven(cls.linkers) {
		lb.audit("uneven.txt", "%s\n", lb.name)
	}
	if opts.histogram && len(cls.minLens) > 0 {
		//best effort, a failed plot never sinks the run
		histName := filepath.Join(lb.logPath(), lb.name+"_linker_lengths.png")
		if err := fragplot.LinkerLengths(cls.minLens, histName); err != nil {
			lb.log("could not write linker length histogram: %v\n", err)
		}
	}

	all := s.AllAtoms()
	if cls.minMax > 2 {
		if cls.long {
			lb.log("\nStructure has LONG LINKER\n\n")
			//absorb the bridging motifs (carboxylate carbons and kin)
			//before the boundary freezes
			growShell(sbu, s)
			sbuComps, _ := cgraph.ClosedSubgraphs(sbu.Copy(), all.Minus(sbu), adj)
			return breakdown(s, sbuComps, cls, lb, opts)
		}
		lb.log("\nStructure has SHORT LINKER\n\n")
		sbuComps, _ := cgraph.ClosedSubgraphs(sbu.Copy(), all.Minus(sbu), adj)
		includeExtraShells(sbuComps, s, opts.minSBUAtoms)
		return CodeShortLinker, nil
	}
	lb.audit("short.txt", "Structure %s has extremely short linkers, check the outputs\n", lb.name)
	lb.log("Structure has extremely short linkers\n")
	sbuComps, _ := cgraph.ClosedSubgraphs(remove.Copy(), all.Minus(remove), adj)
	grown, _ := includeExtraShells(sbuComps, s, opts.minSBUAtoms)
	includeExtraShells(grown, s, opts.minSBUAtoms)
	return CodeDegenerate, nil
}

// uneven reports whether the kept linkers differ in atom count, which
// usually means the classifier split what should be one linker species.
func uneven(linkers [][]int) bool {
	if len(linkers) < 2 {
		return false
	}
	first := len(linkers[0])
	for _, l := range linkers[1:] {
		if len(l) != first {
			return true
		}
	}
	return false
}

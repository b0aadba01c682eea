/*
 * options.go, part of gomof.
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

// Options contains the tunable knobs of a decomposition run. The defaults
// reproduce the established behavior; the thresholds have no documented
// derivation beyond working well in practice, which is why they are options
// rather than constants.
type Options struct {
	rodThreshold   float64 //bonded-pair distance above which an SBU is a 1D rod
	capFactor      float64 //fraction of the cut bond length kept for a capping atom
	maxAtoms       int     //structures above this size are skipped
	minLinkerAtoms int     //linker fragments below this many real atoms are dropped
	minSBUAtoms    int     //shell growth continues until every SBU has this many atoms
	compress       string  //"", "gz" or "zst": compression of emitted files
	histogram      bool    //write a linker-length histogram next to the log
}

// DefaultOptions returns the options every production sweep uses: rod
// detection at 4 A, capping bonds shortened to 0.75 of the original bond,
// structures over 2000 atoms skipped, linker fragments under 3 real atoms
// dropped, no compression.
func DefaultOptions() *Options {
	r := new(Options)
	r.rodThreshold = 4.0
	r.capFactor = 0.75
	r.maxAtoms = 2000
	r.minLinkerAtoms = 3
	r.minSBUAtoms = 3
	r.compress = ""
	return r
}

// RodThreshold returns the 1D-rod detection distance, in Angstroms, and sets
// it to a new value, if given.
func (O *Options) RodThreshold(d ...float64) float64 {
	if len(d) > 0 && d[0] > 0 {
		O.rodThreshold = d[0]
	}
	return O.rodThreshold
}

// CapFactor returns the fraction of the original bond vector kept when a
// capping placeholder replaces a cut-off atom, and sets it to a new value,
// if given.
func (O *Options) CapFactor(f ...float64) float64 {
	if len(f) > 0 && f[0] > 0 {
		O.capFactor = f[0]
	}
	return O.capFactor
}

// MaxAtoms returns the size limit above which structures are skipped, and
// sets it to a new value, if given.
func (O *Options) MaxAtoms(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.maxAtoms = n[0]
	}
	return O.maxAtoms
}

// MinLinkerAtoms returns the smallest number of non-placeholder atoms a
// linker fragment may have and still be written, and sets it to a new value,
// if given.
func (O *Options) MinLinkerAtoms(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.minLinkerAtoms = n[0]
	}
	return O.minLinkerAtoms
}

// MinSBUAtoms returns the smallest SBU fragment size the shell grower will
// accept before it stops absorbing shells, and sets it to a new value, if
// given.
func (O *Options) MinSBUAtoms(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.minSBUAtoms = n[0]
	}
	return O.minSBUAtoms
}

// Compress returns the compression extension applied to emitted fragment
// files ("", "gz" or "zst"), and sets it to a new value, if given.
func (O *Options) Compress(ext ...string) string {
	if len(ext) > 0 {
		O.compress = ext[0]
	}
	return O.compress
}

// Histogram returns whether a linker-length histogram PNG is written to the
// log directory after classification, and sets it, if given.
func (O *Options) Histogram(h ...bool) bool {
	if len(h) > 0 {
		O.histogram = h[0]
	}
	return O.histogram
}

// fileName applies the configured compression extension to a fragment file
// name.
func (O *Options) fileName(base string) string {
	if O.compress == "" {
		return base
	}
	return base + "." + O.compress
}

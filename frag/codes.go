/*
 * codes.go, part of gomof.
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

// Code is the outcome of a decomposition run. Codes other than CodeOK are
// deliberate early-exit signals, not errors: they let a caller sweeping many
// structures skip the inconclusive ones without interrupting the batch.
type Code int

const (
	//CodeOK means the structure was fully decomposed and all fragments
	//written.
	CodeOK Code = 0
	//CodeSkip means a structural precondition failed (no metal, atomic
	//overlap, too many atoms, floating solvent) before decomposition
	//started. Details go to FailedStructures.log.
	CodeSkip Code = 1
	//CodeShortLinker means the linkers are too short to cut cleanly;
	//assembly was not attempted.
	CodeShortLinker Code = 2
	//CodeDegenerate means the linkers are extremely short (two bonds or
	//fewer between anchors); assembly was not attempted.
	CodeDegenerate Code = 3
	//CodeRod means an assembled SBU repeats through the periodic boundary
	//without closing (a 1D rod), which downstream tooling cannot consume.
	CodeRod Code = 4
)

func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeSkip:
		return "skipped"
	case CodeShortLinker:
		return "short linker"
	case CodeDegenerate:
		return "degenerate linker"
	case CodeRod:
		return "1D-rod SBU"
	}
	return "unknown"
}

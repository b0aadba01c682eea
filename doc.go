/*
 * doc.go, part of gomof.
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

/*Package mof provides the basic types for working with periodic, covalently
bonded crystal structures: the Structure type (element symbols, fractional
coordinates, cell vectors and a bond adjacency matrix), atom sets over global
atom indices, element data tables, and readers/writers for the XYZ+graph file
pair used by the decomposition pipeline.

The actual decomposition of a framework material into metal-containing
secondary building units (SBUs) and organic linkers lives in the frag
subpackage. Periodic-boundary machinery (minimum-image distances, bond
perception, connected-coordinate reconstruction) is in pbc, and the bridge
between adjacency matrices and gonum graphs is in cgraph.

goMOF uses gonum (gonum.org/v1/gonum) for all matrix and graph work. Each row
of a coordinate matrix is one atom, in Angstroms for cartesian matrices.*/
package mof

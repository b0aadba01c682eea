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

/*Package frag decomposes a periodic framework structure into its
metal-containing secondary building units (SBUs) and the organic linkers
bridging them.

The pipeline runs in stages, each fully consuming its input: the seeder
collects the metal-centered atom set, the classifier partitions the organic
fragments into bridging linkers and terminal ligands (folding the latter back
into the SBU side, with a periodic-image walk breaking the ties a small cell
creates), the shell grower decides how far the SBU side extends, and the
assembler emits capped, chemically contiguous fragments as XYZ+graph file
pairs.

A run over one structure is single threaded and owns all its state; separate
structures may be decomposed concurrently by separate runs as long as they
use different structure names. Inconclusive decompositions are reported as
return codes rather than errors: a framework with very short linkers is
skipped, not guessed at.*/
package frag

/*
 * logger.go, part of gomof.
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
	"os"
	"path/filepath"
)

// logbook owns the output tree of one decomposition run and the append-only
// diagnostic files written into it. The per-structure log is exclusive to
// this run; the global audit files (ambiguous.txt, ligand.txt, short.txt,
// short_ligands.txt, uneven.txt, FailedStructures.log) are shared across
// structures and only ever appended to. The design assumes at most one
// concurrent run per structure name.
type logbook struct {
	base string //output root
	name string //structure name
}

// newLogbook creates the output directory tree (linkers/, sbus/, xyz/,
// logs/) under base for a structure called name.
func newLogbook(base, name string) (*logbook, error) {
	for _, d := range []string{"linkers", "sbus", "xyz", "logs"} {
		if err := os.MkdirAll(filepath.Join(base, d), 0755); err != nil {
			return nil, err
		}
	}
	return &logbook{base: base, name: name}, nil
}

func (l *logbook) linkerPath() string { return filepath.Join(l.base, "linkers") }
func (l *logbook) sbuPath() string    { return filepath.Join(l.base, "sbus") }
func (l *logbook) xyzPath() string    { return filepath.Join(l.base, "xyz") }
func (l *logbook) logPath() string    { return filepath.Join(l.base, "logs") }

// appendLine appends a line to the named file, creating it if needed.
// Diagnostics are a side channel; a failed append never interrupts the run.
func appendLine(path, line string) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()
	f.WriteString(line)
}

// log appends a formatted line to the per-structure log.
func (l *logbook) log(format string, args ...interface{}) {
	appendLine(filepath.Join(l.logPath(), l.name+".log"), fmt.Sprintf(format, args...))
}

// audit appends a formatted line to one of the global audit files kept next
// to the linker fragments (ambiguous.txt, ligand.txt, short.txt, ...).
func (l *logbook) audit(file, format string, args ...interface{}) {
	appendLine(filepath.Join(l.linkerPath(), file), fmt.Sprintf(format, args...))
}

// failed appends a formatted line to the global FailedStructures.log at the
// output root.
func (l *logbook) failed(format string, args ...interface{}) {
	appendLine(filepath.Join(l.base, "FailedStructures.log"), fmt.Sprintf(format, args...))
}

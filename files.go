/*
 * files.go, part of gomof.
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
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

// outFile is a possibly-compressed output file. Close flushes the
// compressor, if any, before closing the underlying file.
type outFile struct {
	f *os.File
	h io.WriteCloser
}

func (o *outFile) Write(p []byte) (int, error) {
	return o.h.Write(p)
}

func (o *outFile) Close() error {
	if o.h != o.f {
		if err := o.h.Close(); err != nil {
			o.f.Close()
			return err
		}
	}
	return o.f.Close()
}

// createOut creates the named file for writing, wrapping it in a compressor
// chosen from the file extension: ".gz" (deflate) or ".zst" (zstandard). Any
// other extension gets a plain file.
func createOut(name string) (*outFile, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(name, ".gz"):
		return &outFile{f: f, h: gzip.NewWriter(f)}, nil
	case strings.HasSuffix(name, ".zst"):
		h, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, errDecorate(err, "createOut")
		}
		return &outFile{f: f, h: h}, nil
	}
	return &outFile{f: f, h: f}, nil
}

// openIn opens the named file for reading, applying the decompressor
// matching the extension, as in createOut.
func openIn(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(name, ".gz"):
		h, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return h, nil
	case strings.HasSuffix(name, ".zst"):
		h, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return io.NopCloser(h.IOReadCloser()), nil
	}
	return f, nil
}

// WriteXYZAndGraph writes an XYZ file for the given atoms plus a companion
// ".net" file holding the adjacency matrix. The XYZ comment line carries the
// nine components of the cell-vector matrix, row by row; cell may be nil for
// a non-periodic fragment, in which case the comment line is left empty.
// capping lists the local indices that are placeholder atoms; when non-empty
// they are recorded on a trailing annotation line of the form "X: i j k".
// If name ends in ".gz" or ".zst" (before the implied ".xyz"), both files
// are compressed.
func WriteXYZAndGraph(name string, elements []string, cell, cart, adj *mat.Dense, capping []int) error {
	out, err := createOut(name)
	if err != nil {
		return errDecorate(err, "WriteXYZAndGraph")
	}
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%d\n", len(elements))
	if cell != nil {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				fmt.Fprintf(w, " %.8f", cell.At(i, j))
			}
		}
	}
	fmt.Fprint(w, "\n")
	for i, sym := range elements {
		fmt.Fprintf(w, "%-2s  %12.6f %12.6f %12.6f\n", sym, cart.At(i, 0), cart.At(i, 1), cart.At(i, 2))
	}
	if len(capping) > 0 {
		strs := make([]string, len(capping))
		for i, v := range capping {
			strs[i] = strconv.Itoa(v)
		}
		fmt.Fprintf(w, "X: %s\n", strings.Join(strs, " "))
	}
	if err := w.Flush(); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return writeGraph(graphName(name), adj)
}

// graphName maps an xyz file name to its companion graph file name, keeping
// any compression extension at the end.
func graphName(name string) string {
	for _, ext := range []string{".gz", ".zst"} {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext) + ".net" + ext
		}
	}
	return name + ".net"
}

func writeGraph(name string, adj *mat.Dense) error {
	out, err := createOut(name)
	if err != nil {
		return errDecorate(err, "writeGraph")
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	n, _ := adj.Dims()
	fmt.Fprintf(w, "%d\n", n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%d", int(adj.At(i, j)))
		}
		fmt.Fprint(w, "\n")
	}
	return w.Flush()
}

// ReadXYZ reads an XYZ file as written by WriteXYZAndGraph: element symbols,
// cartesian coordinates, the cell from the comment line (nil when the
// comment line does not hold nine numbers), and the trailing capping
// annotation, if present, as local indices.
func ReadXYZ(name string) (elements []string, cart, cell *mat.Dense, capping []int, err error) {
	in, err := openIn(name)
	if err != nil {
		return nil, nil, nil, nil, errDecorate(err, "ReadXYZ")
	}
	defer in.Close()
	sc := bufio.NewScanner(in)
	if !sc.Scan() {
		return nil, nil, nil, nil, NewError("ReadXYZ", "empty XYZ file "+name)
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return nil, nil, nil, nil, NewError("ReadXYZ", "ill-formed XYZ file "+name)
	}
	if !sc.Scan() {
		return nil, nil, nil, nil, NewError("ReadXYZ", "truncated XYZ file "+name)
	}
	if fields := strings.Fields(sc.Text()); len(fields) == 9 {
		cdata := make([]float64, 9)
		for i, f := range fields {
			cdata[i], err = strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, nil, nil, nil, NewError("ReadXYZ", "bad cell on comment line of "+name)
			}
		}
		cell = mat.NewDense(3, 3, cdata)
	}
	elements = make([]string, natoms)
	coords := make([]float64, natoms*3)
	for i := 0; i < natoms; i++ {
		if !sc.Scan() {
			return nil, nil, nil, nil, NewError("ReadXYZ", fmt.Sprintf("truncated XYZ file %s at atom %d", name, i))
		}
		fields := strings.Fields(sc.Text())
		if len(fields) < 4 {
			return nil, nil, nil, nil, NewError("ReadXYZ", fmt.Sprintf("line for atom %d in %s ill-formed", i, name))
		}
		elements[i] = fields[0]
		for k := 0; k < 3; k++ {
			coords[i*3+k], err = strconv.ParseFloat(fields[k+1], 64)
			if err != nil {
				return nil, nil, nil, nil, NewError("ReadXYZ", fmt.Sprintf("bad coordinate for atom %d in %s", i, name))
			}
		}
	}
	if sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) > 1 && fields[0] == "X:" {
			for _, f := range fields[1:] {
				v, err := strconv.Atoi(f)
				if err != nil {
					return nil, nil, nil, nil, NewError("ReadXYZ", "bad capping annotation in "+name)
				}
				capping = append(capping, v)
			}
		}
	}
	cart = mat.NewDense(natoms, 3, coords)
	return elements, cart, cell, capping, nil
}

// ReadXYZAndGraph reads a structure written by WriteXYZAndGraph: the XYZ
// part as in ReadXYZ plus the adjacency matrix from the companion ".net"
// file.
func ReadXYZAndGraph(name string) (elements []string, cart, cell, adj *mat.Dense, capping []int, err error) {
	elements, cart, cell, capping, err = ReadXYZ(name)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	adj, err = readGraph(graphName(name), len(elements))
	if err != nil {
		return nil, nil, nil, nil, nil, errDecorate(err, "ReadXYZAndGraph")
	}
	return elements, cart, cell, adj, capping, nil
}

func readGraph(name string, natoms int) (*mat.Dense, error) {
	in, err := openIn(name)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 1024), 1024*1024)
	if !sc.Scan() {
		return nil, NewError("readGraph", "empty graph file "+name)
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || n != natoms {
		return nil, NewError("readGraph", fmt.Sprintf("graph file %s does not match its XYZ file", name))
	}
	adj := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			return nil, NewError("readGraph", fmt.Sprintf("truncated graph file %s at row %d", name, i))
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != n {
			return nil, NewError("readGraph", fmt.Sprintf("row %d of %s has %d entries, want %d", i, name, len(fields), n))
		}
		for j, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, NewError("readGraph", fmt.Sprintf("bad entry at (%d,%d) of %s", i, j, name))
			}
			adj.Set(i, j, float64(v))
		}
	}
	return adj, nil
}

/*
 * fragplot.go, part of gomof.
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

// Package fragplot produces diagnostic plots for decomposition runs.
package fragplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// LinkerLengths writes a histogram of anchor-to-anchor linker lengths (in
// bonds) to a PNG file. A quick look at the histogram tells whether a batch
// of structures is dominated by short linkers before reading any audit file.
// The extension must be included in plotname.
func LinkerLengths(lengths []int, plotname string) error {
	if len(lengths) == 0 {
		return fmt.Errorf("fragplot: no linker lengths to plot")
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = "Linker lengths"
	p.X.Label.Text = "Shortest anchor path (bonds)"
	p.Y.Label.Text = "Linkers"
	v := make(plotter.Values, len(lengths))
	maxLen := 0
	for i, l := range lengths {
		v[i] = float64(l)
		if l > maxLen {
			maxLen = l
		}
	}
	//one bin per bond count keeps integer lengths readable
	h, err := plotter.NewHist(v, maxLen+1)
	if err != nil {
		return err
	}
	p.Add(h)
	if err := p.Save(5*vg.Inch, 5*vg.Inch, plotname); err != nil {
		return err
	}
	return nil
}

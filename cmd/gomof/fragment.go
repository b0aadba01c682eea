/*
 * fragment.go, part of gomof.
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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/mat"

	mof "github.com/gomatsci/gomof"
	"github.com/gomatsci/gomof/frag"
)

var fragmentCmd = &cobra.Command{
	Use:   "fragment <structure.xyz> [more structures...]",
	Short: "Split framework unit cells into SBU and linker fragments",
	Long: `Fragment reads periodic structures from XYZ files with the cell vectors
on the comment line and, unless --rebuild-bonds is given, the bond graph
from the companion ".net" file. Each structure is decomposed into metal
SBUs and organic linkers under the output directory; structures the
decomposition cannot resolve are recorded in the audit files and the run
moves on to the next input.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := viper.GetString("out")
		opts := frag.DefaultOptions()
		opts.RodThreshold(viper.GetFloat64("rod-threshold"))
		opts.CapFactor(viper.GetFloat64("cap-factor"))
		opts.MaxAtoms(viper.GetInt("max-atoms"))
		opts.MinLinkerAtoms(viper.GetInt("min-linker-atoms"))
		opts.Compress(viper.GetString("compress"))
		opts.Histogram(viper.GetBool("histogram"))
		rebuild := viper.GetBool("rebuild-bonds")

		failures := 0
		for _, arg := range args {
			code, err := fragmentOne(arg, out, opts, rebuild)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", arg, err)
				failures++
				continue
			}
			fmt.Fprintf(os.Stderr, "%s: %s\n", arg, code)
		}
		if failures > 0 {
			return fmt.Errorf("%d of %d structures failed", failures, len(args))
		}
		return nil
	},
}

func fragmentOne(path, out string, opts *frag.Options, rebuild bool) (frag.Code, error) {
	var elements []string
	var cart, cell, adj *mat.Dense
	var err error
	if rebuild {
		//without a companion graph file only the XYZ part is needed
		elements, cart, cell, _, err = mof.ReadXYZ(path)
	} else {
		elements, cart, cell, adj, _, err = mof.ReadXYZAndGraph(path)
	}
	if err != nil {
		return frag.CodeSkip, err
	}
	if cell == nil {
		return frag.CodeSkip, fmt.Errorf("no cell vectors on the comment line of %s", path)
	}
	frac, err := mof.CartToFrac(cell, cart)
	if err != nil {
		return frag.CodeSkip, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if rebuild {
		return frag.RunFromCoords(elements, cell, frac, name, out, opts)
	}
	s, err := mof.NewStructure(elements, frac, cell, adj)
	if err != nil {
		return frag.CodeSkip, err
	}
	return frag.Run(s, name, out, opts)
}

func init() {
	fragmentCmd.Flags().String("out", "fragments", "output directory for linkers/, sbus/, xyz/ and logs/")
	fragmentCmd.Flags().Float64("rod-threshold", 4.0, "bonded-pair distance (Angstrom) above which an SBU counts as a 1D rod")
	fragmentCmd.Flags().Float64("cap-factor", 0.75, "fraction of the cut bond length kept for capping atoms")
	fragmentCmd.Flags().Int("max-atoms", 2000, "skip structures with more atoms than this")
	fragmentCmd.Flags().Int("min-linker-atoms", 3, "drop linker fragments with fewer real atoms than this")
	fragmentCmd.Flags().String("compress", "", "compress emitted fragment files (\"gz\" or \"zst\")")
	fragmentCmd.Flags().Bool("histogram", false, "write a linker-length histogram PNG next to each log")
	fragmentCmd.Flags().Bool("rebuild-bonds", false, "ignore any .net file and rebuild the bond graph from covalent radii")
	cobra.CheckErr(viper.BindPFlags(fragmentCmd.Flags()))

	rootCmd.AddCommand(fragmentCmd)
}

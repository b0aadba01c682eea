/*
 * atomicdata.go, part of gomof.
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

//A map for assigning covalent radii to elements.
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J).
//Organic elements plus the metals commonly found in framework
//materials are present. High-spin values for Fe, Co and Mn.
var symbolCovrad = map[string]float64{
	"H":  0.31,
	"B":  0.84,
	"C":  0.76, //the sp3 radius
	"N":  0.71,
	"O":  0.66,
	"F":  0.57,
	"Si": 1.11,
	"P":  1.07,
	"S":  1.05,
	"Cl": 1.02,
	"Se": 1.2,
	"Br": 1.2,
	"I":  1.39,
	"Li": 1.28,
	"Be": 0.96,
	"Na": 1.66,
	"Mg": 1.41,
	"Al": 1.21,
	"K":  2.03,
	"Ca": 1.76,
	"Sc": 1.7,
	"Ti": 1.6,
	"V":  1.53,
	"Cr": 1.39,
	"Mn": 1.61, //hs
	"Fe": 1.52, //hs
	"Co": 1.5,  //hs
	"Ni": 1.24,
	"Cu": 1.32,
	"Zn": 1.22,
	"Ga": 1.22,
	"Y":  1.9,
	"Zr": 1.75,
	"Nb": 1.64,
	"Mo": 1.54,
	"Ru": 1.46,
	"Rh": 1.42,
	"Pd": 1.39,
	"Ag": 1.45,
	"Cd": 1.44,
	"In": 1.42,
	"Sn": 1.39,
	"Ba": 2.15,
	"La": 2.07,
	"Ce": 2.04,
	"Gd": 1.96,
	"Hf": 1.75,
	"W":  1.62,
	"Re": 1.51,
	"Ir": 1.41,
	"Pt": 1.36,
	"Au": 1.36,
	"Hg": 1.32,
	"Pb": 1.46,
	"Bi": 1.48,
	"U":  1.96,
	"X":  0.31, //capping placeholder, treated like H
}

//The elements treated as metals when seeding the SBU. This is the
//broad definition (alkali and alkaline earth metals included), as a
//terminal Na or Ca is as much a part of the inorganic node as a Zn.
var symbolMetal = map[string]bool{
	"Li": true, "Be": true, "Na": true, "Mg": true, "Al": true,
	"K": true, "Ca": true, "Sc": true, "Ti": true, "V": true,
	"Cr": true, "Mn": true, "Fe": true, "Co": true, "Ni": true,
	"Cu": true, "Zn": true, "Ga": true, "Rb": true, "Sr": true,
	"Y": true, "Zr": true, "Nb": true, "Mo": true, "Tc": true,
	"Ru": true, "Rh": true, "Pd": true, "Ag": true, "Cd": true,
	"In": true, "Sn": true, "Cs": true, "Ba": true, "La": true,
	"Ce": true, "Pr": true, "Nd": true, "Sm": true, "Eu": true,
	"Gd": true, "Tb": true, "Dy": true, "Ho": true, "Er": true,
	"Tm": true, "Yb": true, "Lu": true, "Hf": true, "Ta": true,
	"W": true, "Re": true, "Os": true, "Ir": true, "Pt": true,
	"Au": true, "Hg": true, "Tl": true, "Pb": true, "Bi": true,
	"Th": true, "U": true, "Np": true, "Pu": true,
}

// IsMetalSymbol reports whether the element symbol corresponds to a metal,
// in the broad sense used for SBU seeding.
func IsMetalSymbol(symbol string) bool {
	return symbolMetal[symbol]
}

// CovalentRadius returns the covalent radius for the element symbol, in
// Angstroms, and whether the symbol is known at all.
func CovalentRadius(symbol string) (float64, bool) {
	r, ok := symbolCovrad[symbol]
	return r, ok
}

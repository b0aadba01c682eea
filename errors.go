/*
 * errors.go, part of gomof.
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

import "strings"

// Error is the interface for errors in goMOF and its subpackages. The
// Decorate method allows adding information to the error as it is passed up
// the call stack, without changing its type or wrapping it in something else.
// Each element of the decoration slice should be the name of a function in
// the calling stack, optionally followed by extra information, as in
// "FunctionName: extra info". Decorate called with the empty string returns
// the current decoration without adding to it.
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError (Concrete Error) is the concrete type implementing the Error
// interface for this package and its subpackages.
type CError struct {
	msg  string
	deco []string
}

// NewError builds a CError with the given message, already decorated with
// the name of the function creating it.
func NewError(where, msg string) *CError {
	err := new(CError)
	err.msg = msg
	err.Decorate(where)
	return err
}

func (err *CError) Error() string {
	if len(err.deco) == 0 {
		return err.msg
	}
	return strings.Join(err.deco, "/") + ": " + err.msg
}

// Decorate adds the string dec to the decoration slice of the error, and
// returns the resulting slice. An empty string only retrieves the slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate decorates err if it implements the Error interface and returns
// it unchanged otherwise.
func errDecorate(err error, where string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(where)
	return err2
}

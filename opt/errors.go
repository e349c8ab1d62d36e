// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"github.com/cpmech/gosl/io"
)

// ErrorKind classifies solver failures
type ErrorKind int

const (
	MaximumStepsReached ErrorKind = iota
	NotMinimum
	SingularMatrix
	LineSearch
	Generic
)

var kindNames = []string{"maximum steps reached", "not a minimum", "singular matrix", "line search failed", "generic"}

// String returns the name of the error kind
func (o ErrorKind) String() string {
	if o < 0 || int(o) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[o]
}

// Error holds a solver failure
type Error struct {
	Kind   ErrorKind // kind of failure
	Solver string    // name of solver
	Msg    string    // details
	Err    error     // upstream error (from the user functions), if any
}

// Error implements the error interface
func (o *Error) Error() string {
	if o.Err != nil {
		return io.Sf("%s: %v", o.Solver, o.Err)
	}
	if o.Msg == "" {
		return io.Sf("%s: %v", o.Solver, o.Kind)
	}
	return io.Sf("%s: %v: %s", o.Solver, o.Kind, o.Msg)
}

// Unwrap returns the upstream error
func (o *Error) Unwrap() error { return o.Err }

func newErr(solver string, kind ErrorKind, msg string, args ...interface{}) *Error {
	return &Error{Kind: kind, Solver: solver, Msg: io.Sf(msg, args...)}
}

// upstream wraps an error coming from the user functions
func upstream(solver string, err error) *Error {
	return &Error{Kind: Generic, Solver: solver, Err: err}
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/io"
	"github.com/gofem/mech/ten"
)

// ErrorKind classifies constitutive failures
type ErrorKind int

const (
	InvalidJacobian ErrorKind = iota // det(F) ≤ 0
	Custom                           // model specific failure; e.g. maximum extensibility
	Upstream                         // failure of a solver or integrator used by a derived operation
)

// Error holds a constitutive failure
type Error struct {
	Kind  ErrorKind // kind of failure
	J     float64   // det(F) [InvalidJacobian]
	F     ten.T2    // deformation gradient [InvalidJacobian, Custom]
	Msg   string    // message
	Model string    // model name, if known
	Err   error     // cause [Upstream]
}

// Error implements the error interface
func (o *Error) Error() string {
	var l string
	switch o.Kind {
	case InvalidJacobian:
		l = io.Sf("invalid Jacobian J = %g for F = %v", o.J, o.F)
	case Custom:
		l = io.Sf("%s (F = %v)", o.Msg, o.F)
	default:
		l = o.Msg
		if o.Err != nil {
			if l != "" {
				l += ": "
			}
			l += o.Err.Error()
		}
	}
	if o.Model != "" {
		l = o.Model + ": " + l
	}
	return l
}

// Unwrap returns the cause
func (o *Error) Unwrap() error { return o.Err }

// jacobian returns det(F) or an InvalidJacobian error
func jacobian(F ten.T2) (float64, error) {
	J := F.Det()
	if !(J > 0) {
		return J, &Error{Kind: InvalidJacobian, J: J, F: F}
	}
	return J, nil
}

// custom returns a model specific error
func custom(model string, F ten.T2, msg string, args ...interface{}) *Error {
	return &Error{Kind: Custom, F: F, Model: model, Msg: io.Sf(msg, args...)}
}

// upstream wraps a solver failure
func upstream(err error, msg string, args ...interface{}) *Error {
	return &Error{Kind: Upstream, Msg: io.Sf(msg, args...), Err: err}
}

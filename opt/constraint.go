// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"github.com/cpmech/gosl/chk"
)

// ConstraintKind defines the type of constraint
type ConstraintKind int

const (
	Unconstrained ConstraintKind = iota
	FixedIndices
	LinearEquality
)

// Constraint defines how the unknowns are restricted
//  FixedIndices:   x[i] = x0[i] for i in Indices
//  LinearEquality: A x = B
type Constraint struct {
	Kind    ConstraintKind
	Indices []int
	A       [][]float64
	B       []float64
}

// None returns an empty constraint
func None() Constraint {
	return Constraint{Kind: Unconstrained}
}

// Fixed keeps the given components at their initial values
func Fixed(indices ...int) Constraint {
	return Constraint{Kind: FixedIndices, Indices: indices}
}

// Linear imposes A x = b
func Linear(A [][]float64, b []float64) Constraint {
	return Constraint{Kind: LinearEquality, A: A, B: b}
}

// check verifies the dimensions against the number of unknowns
func (o Constraint) check(n int) error {
	switch o.Kind {
	case FixedIndices:
		for _, i := range o.Indices {
			if i < 0 || i >= n {
				return chk.Err("fixed index %d is out of range [0,%d)", i, n)
			}
		}
	case LinearEquality:
		if len(o.A) != len(o.B) {
			return chk.Err("constraint matrix has %d rows but rhs has %d", len(o.A), len(o.B))
		}
		for i, row := range o.A {
			if len(row) != n {
				return chk.Err("constraint row %d has %d columns; %d expected", i, len(row), n)
			}
		}
	}
	return nil
}

// free returns the indices not fixed by the constraint
func (o Constraint) free(n int) (idx []int) {
	fixed := make([]bool, n)
	if o.Kind == FixedIndices {
		for _, i := range o.Indices {
			fixed[i] = true
		}
	}
	for i := 0; i < n; i++ {
		if !fixed[i] {
			idx = append(idx, i)
		}
	}
	return
}

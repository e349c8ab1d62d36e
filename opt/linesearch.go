// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"github.com/cpmech/gosl/chk"
)

// Armijo implements a backtracking line search with the sufficient decrease condition
//   f(x + α d) ≤ f(x) + Control α ∇f⋅d
type Armijo struct {
	Control float64 // sufficient decrease factor
	CutBack float64 // reduction factor of α
	NmaxIt  int     // maximum number of reductions
}

// NewArmijo returns a line search with default settings
func NewArmijo() *Armijo {
	return &Armijo{Control: 0.5, CutBack: 0.5, NmaxIt: 10}
}

// Step returns α for the direction d starting at x with gradient g
//  Note: trial points where f fails are treated as insufficient decrease
func (o *Armijo) Step(f Obj, x, g, d []float64) (float64, error) {
	f0, err := f(x)
	if err != nil {
		return 0, err
	}
	slope := dot(g, d)
	if slope > 0 {
		return 0, chk.Err("direction is not a descent direction (slope = %g)", slope)
	}
	α := 1.0
	xt := make([]float64, len(x))
	for it := 0; it < o.NmaxIt; it++ {
		for i := range x {
			xt[i] = x[i] + α*d[i]
		}
		ft, err := f(xt)
		if err == nil && ft <= f0+o.Control*α*slope {
			return α, nil
		}
		α *= o.CutBack
	}
	return 0, chk.Err("sufficient decrease not found after %d reductions", o.NmaxIt)
}

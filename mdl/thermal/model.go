// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package thermal implements models for heat conduction in solids
package thermal

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/gofem/mech/ten"
)

// Vec holds the components of a vector; e.g. ∇T
type Vec [3]float64

// Model defines the interface for conduction models
type Model interface {
	Init(prms dbf.Params) error      // initialises model
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
}

// Conduction defines heat conduction models
//
//   q = -k(T) ∇T     ψ = ½ ∇T ⋅ k(T) ∇T
type Conduction interface {
	Model
	Conductivity(T float64) ten.T2               // k(T)
	Potential(T float64, gradT Vec) float64      // ψ
	HeatFlux(T float64, gradT Vec) Vec           // q = -∂ψ/∂∇T
	HeatFluxTangent(T float64, gradT Vec) ten.T2 // ∂q/∂∇T
}

// New returns new conduction model
func New(name string) (model Conduction, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'thermal' database", name)
	}
	return allocator(), nil
}

// Names returns the names of all registered models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available models
var allocators = map[string]func() Conduction{}

// potential returns ½ g⋅k g
func potential(k ten.T2, g Vec) (res float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res += 0.5 * g[i] * k[i][j] * g[j]
		}
	}
	return
}

// flux returns -k g
func flux(k ten.T2, g Vec) (q Vec) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			q[i] -= k[i][j] * g[j]
		}
	}
	return
}

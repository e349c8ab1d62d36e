// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hybrid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/gofem/mech/mdl/solid"
)

// Capability classifies solid models for composition
type Capability int

const (
	None Capability = iota
	ElasticCap
	HyperelasticCap
	ViscoelasticCap
	ElasticHyperviscousCap
	HyperviscoelasticCap
)

var capNames = []string{"none", "elastic", "hyperelastic", "viscoelastic", "elastic-hyperviscous", "hyperviscoelastic"}

// String returns the name of the capability
func (o Capability) String() string {
	if o < 0 || int(o) >= len(capNames) {
		return "unknown"
	}
	return capNames[o]
}

// viscous tells whether the capability depends on the rate of deformation
func (o Capability) viscous() bool {
	return o >= ViscoelasticCap
}

// CapabilityOf returns the richest capability of m
//  Note: rate-dependent capabilities take precedence over rate-independent ones
func CapabilityOf(m solid.Model) Capability {
	switch m.(type) {
	case solid.Hyperviscoelastic:
		return HyperviscoelasticCap
	case solid.ElasticHyperviscous:
		return ElasticHyperviscousCap
	case solid.Viscoelastic:
		return ViscoelasticCap
	case solid.Hyperelastic:
		return HyperelasticCap
	case solid.Elastic:
		return ElasticCap
	}
	return None
}

// Compose returns a + b with the richest capability shared by both models
//
//   elastic + hyperelastic                    → Elastic
//   hyperelastic + hyperelastic               → Hyperelastic
//   viscoelastic + elastic-hyperviscous       → Viscoelastic
//   elastic-hyperviscous ×2                   → ElasticHyperviscous
//   hyperviscoelastic ×2                      → Hyperviscoelastic
//
//  Models of different families (rate-dependent and rate-independent) cannot be composed
func Compose(a, b solid.Model) (solid.Model, error) {
	ca, cb := CapabilityOf(a), CapabilityOf(b)
	if ca == None || cb == None {
		return nil, chk.Err("hybrid: cannot compose %v with %v: both models must be elastic or viscoelastic", ca, cb)
	}
	if ca.viscous() != cb.viscous() {
		return nil, chk.Err("hybrid: cannot compose %v with %v: capabilities differ", ca, cb)
	}
	c := ca
	if cb < c {
		c = cb
	}
	switch c {
	case HyperviscoelasticCap:
		return NewHyperviscoelastic(a.(solid.Hyperviscoelastic), b.(solid.Hyperviscoelastic)), nil
	case ElasticHyperviscousCap:
		return NewElasticHyperviscous(a.(solid.ElasticHyperviscous), b.(solid.ElasticHyperviscous)), nil
	case ViscoelasticCap:
		return NewViscoelastic(a.(solid.Viscoelastic), b.(solid.Viscoelastic)), nil
	case HyperelasticCap:
		return NewHyperelastic(a.(solid.Hyperelastic), b.(solid.Hyperelastic)), nil
	}
	return NewElastic(a.(solid.Elastic), b.(solid.Elastic)), nil
}

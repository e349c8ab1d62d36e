// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// moduli holds the bulk and shear moduli of leaf models
type moduli struct {
	K float64 // bulk modulus
	G float64 // shear modulus
}

// BulkModulus returns K
func (o moduli) BulkModulus() float64 { return o.K }

// ShearModulus returns G
func (o moduli) ShearModulus() float64 { return o.G }

// set sets K or G and reports whether the parameter was recognised
func (o *moduli) set(p *dbf.P) bool {
	switch p.N {
	case "K":
		o.K = p.V
	case "G":
		o.G = p.V
	default:
		return false
	}
	return true
}

// check checks the moduli after reading parameters
func (o moduli) check(model string) error {
	if o.K < 0 || o.G < 0 {
		return chk.Err("%s: moduli must be non-negative. K=%g, G=%g\n", model, o.K, o.G)
	}
	return nil
}

// viscosities holds the bulk and shear viscosities of leaf models
type viscosities struct {
	Kv float64 // bulk viscosity κ
	Gv float64 // shear viscosity η
}

// BulkViscosity returns κ
func (o viscosities) BulkViscosity() float64 { return o.Kv }

// ShearViscosity returns η
func (o viscosities) ShearViscosity() float64 { return o.Gv }

func (o *viscosities) set(p *dbf.P) bool {
	switch p.N {
	case "Kv":
		o.Kv = p.V
	case "Gv":
		o.Gv = p.V
	default:
		return false
	}
	return true
}

func (o viscosities) check(model string) error {
	if o.Kv < 0 || o.Gv < 0 {
		return chk.Err("%s: viscosities must be non-negative. Kv=%g, Gv=%g\n", model, o.Kv, o.Gv)
	}
	return nil
}

// examplePrms returns the example moduli shared by leaf models
func examplePrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "K", V: 13},
		&dbf.P{N: "G", V: 3},
	}
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/gofem/mech/ten"
)

// Fourier implements Fourier's law with constant (possibly orthotropic) conductivity
//
//   q = -k ∇T      k = diag(kx, ky, kz)
//
//  Either 'k' (isotropic) or 'kx', 'ky' and 'kz' must be given
type Fourier struct {
	Kcte ten.T2 // conductivity tensor
}

// add model to factory
func init() {
	allocators["fourier"] = func() Conduction { return new(Fourier) }
}

// Init initialises model
func (o *Fourier) Init(prms dbf.Params) (err error) {
	o.Kcte, err = readConductivity("fourier", prms, nil)
	return
}

// GetPrms gets (an example) of parameters
func (o Fourier) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "k", V: 45},
	}
}

// Conductivity returns k
func (o Fourier) Conductivity(T float64) ten.T2 { return o.Kcte }

// Potential returns ½ ∇T⋅k∇T
func (o Fourier) Potential(T float64, gradT Vec) float64 { return potential(o.Kcte, gradT) }

// HeatFlux returns -k ∇T
func (o Fourier) HeatFlux(T float64, gradT Vec) Vec { return flux(o.Kcte, gradT) }

// HeatFluxTangent returns -k
func (o Fourier) HeatFluxTangent(T float64, gradT Vec) ten.T2 { return o.Kcte.Scale(-1) }

// readConductivity reads 'k' or 'kx', 'ky' and 'kz'; other parameters are passed to extra
func readConductivity(model string, prms dbf.Params, extra func(p *dbf.P) bool) (k ten.T2, err error) {
	var iso, found [3]bool
	var kk [3]float64
	for _, p := range prms {
		switch p.N {
		case "k":
			kk = [3]float64{p.V, p.V, p.V}
			iso = [3]bool{true, true, true}
		case "kx":
			kk[0], found[0] = p.V, true
		case "ky":
			kk[1], found[1] = p.V, true
		case "kz":
			kk[2], found[2] = p.V, true
		default:
			if extra == nil || !extra(p) {
				return k, chk.Err("%s: parameter named %q is incorrect\n", model, p.N)
			}
		}
	}
	if !(iso[0] || found[0] && found[1] && found[2]) {
		return k, chk.Err("%s: either 'k' (isotropic) or ['kx', 'ky', 'kz'] must be given in database of material parameters", model)
	}
	if kk[0] < 0 || kk[1] < 0 || kk[2] < 0 {
		return k, chk.Err("%s: conductivities must be non-negative. k = %v\n", model, kk)
	}
	return ten.Diag(kk[0], kk[1], kk[2]), nil
}

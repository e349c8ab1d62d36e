// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used to verify constitutive models
package ana

import "math"

// YoungModulus returns E = 9 K G / (3 K + G)
func YoungModulus(K, G float64) float64 {
	return 9.0 * K * G / (3.0*K + G)
}

// PoissonRatio returns ν = (3 K - 2 G) / (2 (3 K + G))
func PoissonRatio(K, G float64) float64 {
	return (3.0*K - 2.0*G) / (2.0 * (3.0*K + G))
}

// SmallStrainUniaxial returns the lateral strain and the axial stress of a linear elastic bar
// under uniaxial stress with axial strain ε
//
//   εl = -ν ε     σ = E ε
func SmallStrainUniaxial(K, G, ε float64) (εl, σ float64) {
	return -PoissonRatio(K, G) * ε, YoungModulus(K, G) * ε
}

// KelvinVoigt implements the small-strain Kelvin-Voigt solid
//
//   σ = λ tr(ε) I + 2 G ε + λv tr(ε̇) I + 2 η ε̇
//
//  with λ = K - 2G/3 and λv = κ - 2η/3
type KelvinVoigt struct {
	K, G    float64 // elastic moduli
	Kv, Eta float64 // bulk viscosity κ and shear viscosity η
}

// Uniaxial returns the lateral strain and the axial stress at time t of a bar stretched with
// constant axial strain rate r from the undeformed state; the lateral stresses vanish:
//
//   A ε̇l + B εl = -(λ r t + λv r)     A = 2 (κ + η/3)     B = 2 (K + G/3)
//
//   εl(t) = c1 t + c0 (1 - exp(-B t / A))
func (o KelvinVoigt) Uniaxial(r, t float64) (εl, σ float64) {
	λ, λv := o.K-2.0*o.G/3.0, o.Kv-2.0*o.Eta/3.0
	A, B := 2.0*(o.Kv+o.Eta/3.0), 2.0*(o.K+o.G/3.0)
	c1 := -λ * r / B
	c0 := (-λv*r - A*c1) / B
	ε := r * t
	var dεl float64
	if A > 0 {
		εl = c1*t + c0*(1.0-math.Exp(-B*t/A))
		dεl = c1 + c0*B/A*math.Exp(-B*t/A)
	} else {
		εl, dεl = c1*t+c0, c1
	}
	σ = λ*(ε+2.0*εl) + 2.0*o.G*ε + λv*(r+2.0*dεl) + 2.0*o.Eta*r
	return
}

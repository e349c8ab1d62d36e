// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/gofem/mech/mdl/solid"
	"github.com/gofem/mech/ode"
	"github.com/gofem/mech/opt"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_smallstrain01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("smallstrain01")

	K, G := 13.0, 3.0
	E, ν := YoungModulus(K, G), PoissonRatio(K, G)
	io.Pforan("E = %v  ν = %v\n", E, ν)
	chk.Float64(tst, "K(E,ν)", 1e-14, E/(3.0*(1.0-2.0*ν)), K)
	chk.Float64(tst, "G(E,ν)", 1e-14, E/(2.0*(1.0+ν)), G)
	chk.Float64(tst, "ν(G=0)", 1e-15, PoissonRatio(1, 0), 0.5)

	εl, σ := SmallStrainUniaxial(K, G, 1e-3)
	chk.Float64(tst, "εl", 1e-17, εl, -ν*1e-3)
	chk.Float64(tst, "σ", 1e-17, σ, E*1e-3)

	// no viscosity
	kv := KelvinVoigt{K: K, G: G}
	εl, σ = kv.Uniaxial(1e-3, 2)
	chk.Float64(tst, "εl(kv)", 1e-17, εl, -ν*2e-3)
	chk.Float64(tst, "σ(kv)", 1e-16, σ, E*2e-3)
}

func Test_kelvinvoigt01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kelvinvoigt01")

	// lateral stress vanishes; checked with numerical derivatives of εl
	o := KelvinVoigt{K: 13, G: 3, Kv: 0.5, Eta: 0.2}
	r := 1e-3
	λ, λv := o.K-2.0*o.G/3.0, o.Kv-2.0*o.Eta/3.0
	for _, t := range []float64{0, 0.01, 0.1, 1} {
		εl, _ := o.Uniaxial(r, t)
		h := 1e-6
		εp, _ := o.Uniaxial(r, t+h)
		var dεl float64
		if t < h {
			dεl = (εp - εl) / h
		} else {
			εm, _ := o.Uniaxial(r, t-h)
			dεl = (εp - εm) / (2 * h)
		}
		σl := λ*(r*t+2*εl) + 2*o.G*εl + λv*(r+2*dεl) + 2*o.Eta*dεl
		io.Pforan("t = %5.2f  εl = %13.6e  σl = %13.6e\n", t, εl, σl)
		chk.Float64(tst, io.Sf("σl(%g)", t), 1e-8, σl, 0)
	}

	// long-time limit: elastic response plus viscous overstress
	εl, σ := o.Uniaxial(r, 100)
	ν := PoissonRatio(o.K, o.G)
	io.Pforan("ν = %v  εl/ε = %v\n", ν, εl/(r*100))
	chk.Float64(tst, "εl/ε(∞)", 1e-3, εl/(r*100), -ν)
	if σ <= YoungModulus(o.K, o.G)*r*100 {
		tst.Errorf("viscous overstress must be positive\n")
	}
}

func Test_kelvinvoigt02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kelvinvoigt02")

	// small-strain limit of the large-deformation model
	m, err := solid.New("almansi-hamel-hv")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	prms := dbf.Params{
		&dbf.P{N: "K", V: 13},
		&dbf.P{N: "G", V: 3},
		&dbf.P{N: "Kv", V: 0.5},
		&dbf.P{N: "Gv", V: 0.2},
	}
	if err = m.Init(prms); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	v := m.(solid.Viscoelastic)
	r := 1e-4
	load := solid.UniaxialRate(func(t float64) float64 { return r }, utl.LinSpace(0, 1, 6))
	hist, err := solid.RateRoot(v, load, ode.NewDormandPrince(), opt.NewNewtonRaphson())
	if err != nil {
		tst.Errorf("RateRoot failed: %v\n", err)
		return
	}
	o := KelvinVoigt{K: 13, G: 3, Kv: 0.5, Eta: 0.2}
	for i, t := range hist.Times {
		if t == 0 {
			continue
		}
		εl, σ := o.Uniaxial(r, t)
		σn, err := v.ViscoCauchyStress(hist.F[i], hist.Fdot[i])
		if err != nil {
			tst.Errorf("ViscoCauchyStress failed: %v\n", err)
			return
		}
		io.Pforan("t = %4.2f  εl = %13.6e (%13.6e)  σ = %13.6e (%13.6e)\n", t, hist.F[i][1][1]-1, εl, σn[0][0], σ)
		if math.Abs(hist.F[i][1][1]-1-εl) > 1e-3*math.Abs(εl) {
			tst.Errorf("t = %g: lateral strain %g differs from small-strain solution %g\n", t, hist.F[i][1][1]-1, εl)
		}
		if math.Abs(σn[0][0]-σ) > 1e-3*math.Abs(σ) {
			tst.Errorf("t = %g: axial stress %g differs from small-strain solution %g\n", t, σn[0][0], σ)
		}
	}
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/gofem/mech/ten"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_fourier01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fourier01")

	m, err := New("fourier")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = m.Init([]*dbf.P{&dbf.P{N: "k", V: 2}})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	g := Vec{1, -2, 0.5}
	q := m.HeatFlux(300, g)
	chk.Array(tst, "q", 1e-15, q[:], []float64{-2, 4, -1})
	chk.Float64(tst, "ψ", 1e-15, m.Potential(300, g), 0.5*2*(1+4+0.25))
	chk.Deep2(tst, "∂q/∂∇T", 1e-15, m.HeatFluxTangent(300, g).Slice(), ten.Diag(-2, -2, -2).Slice())

	// q = -∂ψ/∂∇T
	h := 1e-6
	for i := 0; i < 3; i++ {
		gp, gm := g, g
		gp[i] += h
		gm[i] -= h
		num := -(m.Potential(300, gp) - m.Potential(300, gm)) / (2 * h)
		chk.AnaNum(tst, io.Sf("q%d", i), 1e-8, q[i], num, chk.Verbose)
	}
}

func Test_fourier02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fourier02")

	// orthotropic
	m := new(Fourier)
	err := m.Init([]*dbf.P{&dbf.P{N: "kx", V: 1}, &dbf.P{N: "ky", V: 2}, &dbf.P{N: "kz", V: 3}})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	q := m.HeatFlux(0, Vec{1, 1, 1})
	chk.Array(tst, "q", 1e-15, q[:], []float64{-1, -2, -3})

	// errors
	for _, prms := range []dbf.Params{
		{&dbf.P{N: "kx", V: 1}},
		{&dbf.P{N: "k", V: -1}},
		{&dbf.P{N: "k", V: 1}, &dbf.P{N: "c", V: 1}},
	} {
		if err = m.Init(prms); err == nil {
			tst.Errorf("Init should have failed\n")
		}
	}
	if _, err = New("fick"); err == nil {
		tst.Errorf("New should have failed\n")
	}
}

func Test_poly01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("poly01")

	m := new(Poly)
	err := m.Init(m.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	T := 350.0
	chk.Float64(tst, "kval", 1e-14, m.Kval(T), 1-0.35+0.1225)
	h := 1e-3
	num := (m.Kval(T+h) - m.Kval(T-h)) / (2 * h)
	chk.AnaNum(tst, "dk/dT", 1e-10, m.DkDT(T), num, chk.Verbose)
	k := m.Conductivity(T)
	chk.Float64(tst, "k11", 1e-12, k[0][0], 45*m.Kval(T))
	q := m.HeatFlux(T, Vec{0, 0, 1})
	chk.Float64(tst, "q3", 1e-12, q[2], -45*m.Kval(T))
	chk.Deep2(tst, "∂q/∂∇T", 1e-15, m.HeatFluxTangent(T, Vec{}).Slice(), k.Scale(-1).Slice())
	chk.Int(tst, "number of models", len(Names()), 2)
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hybrid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gofem/mech/mdl/solid"
	"github.com/gofem/mech/opt"
	"github.com/gofem/mech/ten"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

var (
	tstF = ten.T2{
		{1.1, 0.1, 0.05},
		{-0.05, 0.95, 0.1},
		{0.02, -0.08, 1.05},
	}
	tstFdot = ten.T2{
		{0.3, -0.1, 0.2},
		{0.05, -0.2, 0.1},
		{-0.15, 0.07, 0.12},
	}
)

// model returns an initialised model with example parameters
func model(tst *testing.T, name string) solid.Model {
	m, err := solid.New(name)
	if err != nil {
		tst.Fatalf("New failed: %v\n", err)
	}
	if err = m.Init(m.GetPrms(true)); err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	return m
}

func Test_hybrid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hybrid01")

	// hyperelastic + hyperelastic
	a := model(tst, "neo-hookean").(solid.Hyperelastic)
	b := model(tst, "mooney-rivlin").(solid.Hyperelastic)
	h := NewHyperelastic(a, b)

	σ, err := h.CauchyStress(tstF)
	if err != nil {
		tst.Errorf("CauchyStress failed: %v\n", err)
		return
	}
	σa, _ := a.CauchyStress(tstF)
	σb, _ := b.CauchyStress(tstF)
	chk.Deep2(tst, "σ = σa + σb", 1e-15, σ.Slice(), σa.Add(σb).Slice())

	T, _ := h.CauchyTangent(tstF)
	Ta, _ := a.CauchyTangent(tstF)
	Tb, _ := b.CauchyTangent(tstF)
	chk.Deep2(tst, "T = Ta + Tb", 1e-15, T.Flat(), Ta.Add(Tb).Flat())

	W, _ := h.FreeEnergy(tstF)
	Wa, _ := a.FreeEnergy(tstF)
	Wb, _ := b.FreeEnergy(tstF)
	chk.Float64(tst, "a = aa + ab", 1e-15, W, Wa+Wb)

	// derived quantities are sums too
	P, _ := solid.FirstPK(h, tstF)
	Pa, _ := solid.FirstPK(a, tstF)
	Pb, _ := solid.FirstPK(b, tstF)
	chk.Deep2(tst, "P = Pa + Pb", 1e-14, P.Slice(), Pa.Add(Pb).Slice())

	// tangents and energy against finite differences
	solid.CheckElastic(tst, h, tstF, 1e-6, chk.Verbose)
	solid.CheckHyperelastic(tst, h, tstF, 1e-6, chk.Verbose)

	// load solving with the composite
	r, err := solid.Root(h, solid.UniaxialStress(0.8), opt.NewNewtonRaphson())
	if err != nil {
		tst.Errorf("Root failed: %v\n", err)
		return
	}
	m, err := solid.Minimize(h, solid.UniaxialStress(0.8), opt.NewNewtonRaphson())
	if err != nil {
		tst.Errorf("Minimize failed: %v\n", err)
		return
	}
	chk.Deep2(tst, "F (root) = F (minimize)", 1e-10, r.F.Slice(), m.F.Slice())
}

func Test_hybrid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hybrid02")

	// nested: (neo-hookean + svk) + almansi-hamel
	a := model(tst, "neo-hookean")
	b := model(tst, "svk")
	c := model(tst, "almansi-hamel")
	ab, err := Compose(a, b)
	if err != nil {
		tst.Errorf("Compose failed: %v\n", err)
		return
	}
	if _, ok := ab.(*Hyperelastic); !ok {
		tst.Errorf("neo-hookean + svk should be hyperelastic\n")
	}
	abc, err := Compose(ab, c)
	if err != nil {
		tst.Errorf("Compose failed: %v\n", err)
		return
	}
	if _, ok := abc.(solid.Hyperelastic); ok {
		tst.Errorf("hyperelastic + almansi-hamel should not be hyperelastic\n")
	}
	σ, _ := abc.(solid.Elastic).CauchyStress(tstF)
	var sum ten.T2
	for _, m := range []solid.Model{a, b, c} {
		s, _ := m.(solid.Elastic).CauchyStress(tstF)
		sum = sum.Add(s)
	}
	chk.Deep2(tst, "σ = σa + σb + σc", 1e-14, σ.Slice(), sum.Slice())
	solid.CheckElastic(tst, abc.(solid.Elastic), tstF, 1e-6, chk.Verbose)

	// hybrids have no moduli
	if _, ok := abc.(solid.Solid); ok {
		tst.Errorf("hybrids should not have moduli\n")
	}
}

func Test_hybrid03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hybrid03")

	// elastic-hyperviscous + elastic-hyperviscous
	a := model(tst, "almansi-hamel-hv")
	b := model(tst, "svk-hv")
	ab, err := Compose(a, b)
	if err != nil {
		tst.Errorf("Compose failed: %v\n", err)
		return
	}
	h, ok := ab.(*ElasticHyperviscous)
	if !ok {
		tst.Errorf("composite should be elastic-hyperviscous\n")
		return
	}
	σ, _ := h.ViscoCauchyStress(tstF, tstFdot)
	σa, _ := a.(solid.Viscoelastic).ViscoCauchyStress(tstF, tstFdot)
	σb, _ := b.(solid.Viscoelastic).ViscoCauchyStress(tstF, tstFdot)
	chk.Deep2(tst, "σ = σa + σb", 1e-15, σ.Slice(), σa.Add(σb).Slice())
	φ, _ := h.ViscousDissipation(tstF, tstFdot)
	φa, _ := a.(solid.ElasticHyperviscous).ViscousDissipation(tstF, tstFdot)
	φb, _ := b.(solid.ElasticHyperviscous).ViscousDissipation(tstF, tstFdot)
	chk.Float64(tst, "φ = φa + φb", 1e-15, φ, φa+φb)
	solid.CheckViscoelastic(tst, h, tstF, tstFdot, 1e-6, chk.Verbose)
	solid.CheckHyperviscous(tst, h, tstF, tstFdot, 1e-6, chk.Verbose)

	// viscoelastic + elastic-hyperviscous
	c := model(tst, "neo-hookean-kv")
	abc, err := Compose(ab, c)
	if err != nil {
		tst.Errorf("Compose failed: %v\n", err)
		return
	}
	v, ok := abc.(*Viscoelastic)
	if !ok {
		tst.Errorf("composite should be viscoelastic\n")
		return
	}
	V, _ := v.ViscoCauchyRateTangent(tstF, tstFdot)
	Vab, _ := h.ViscoCauchyRateTangent(tstF, tstFdot)
	Vc, _ := c.(solid.Viscoelastic).ViscoCauchyRateTangent(tstF, tstFdot)
	chk.Deep2(tst, "V = Vab + Vc", 1e-15, V.Flat(), Vab.Add(Vc).Flat())
}

func Test_hybrid04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hybrid04")

	// capabilities that cannot be composed
	pairs := [][]string{
		{"neo-hookean", "almansi-hamel-hv"},
		{"svk-hv", "gent"},
		{"thermo-svk", "svk"},
	}
	for _, p := range pairs {
		_, err := Compose(model(tst, p[0]), model(tst, p[1]))
		if err == nil {
			tst.Errorf("%s + %s should have failed\n", p[0], p[1])
			continue
		}
		io.Pforan("%v\n", err)
	}

	// capability names
	chk.String(tst, CapabilityOf(model(tst, "gent")).String(), "hyperelastic")
	chk.String(tst, CapabilityOf(model(tst, "thermo-svk")).String(), "none")
}

func Test_hybrid05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hybrid05")

	h := NewElastic(model(tst, "neo-hookean").(solid.Elastic), model(tst, "svk").(solid.Elastic))
	for _, fcn := range []func(){
		func() { h.Init(nil) },
		func() { h.GetPrms(true) },
	} {
		func() {
			defer func() {
				if err := recover(); err == nil {
					tst.Errorf("hybrid should have panicked\n")
				} else {
					io.Pforan("recovered: %v\n", err)
				}
			}()
			fcn()
		}()
	}
}

var (
	_ solid.Hyperviscoelastic = (*solid.SvkHv)(nil)
	_ solid.Hyperviscoelastic = (*Hyperviscoelastic)(nil)
	_ solid.Model             = (*Hyperviscoelastic)(nil)
)

func Test_hybrid06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hybrid06")

	// hyperviscoelastic + hyperviscoelastic keeps the free energy
	a := model(tst, "svk-hv")
	b := model(tst, "svk-hv")
	chk.String(tst, CapabilityOf(a).String(), "hyperviscoelastic")
	ab, err := Compose(a, b)
	if err != nil {
		tst.Errorf("Compose failed: %v\n", err)
		return
	}
	h, ok := ab.(*Hyperviscoelastic)
	if !ok {
		tst.Errorf("composite should be hyperviscoelastic\n")
		return
	}
	ψ, err := h.FreeEnergy(tstF)
	if err != nil {
		tst.Errorf("FreeEnergy failed: %v\n", err)
		return
	}
	ψa, _ := a.(solid.Hyperviscoelastic).FreeEnergy(tstF)
	chk.Float64(tst, "a = aa + ab", 1e-15, ψ, 2*ψa)
	σ, _ := h.ViscoCauchyStress(tstF, tstFdot)
	σa, _ := a.(solid.Viscoelastic).ViscoCauchyStress(tstF, tstFdot)
	chk.Deep2(tst, "σ = σa + σb", 1e-15, σ.Slice(), σa.Scale(2).Slice())
	φ, _ := h.ViscousDissipation(tstF, tstFdot)
	φa, _ := a.(solid.ElasticHyperviscous).ViscousDissipation(tstF, tstFdot)
	chk.Float64(tst, "φ = φa + φb", 1e-15, φ, 2*φa)
	solid.CheckViscoelastic(tst, h, tstF, tstFdot, 1e-6, chk.Verbose)
	solid.CheckHyperviscous(tst, h, tstF, tstFdot, 1e-6, chk.Verbose)

	// mixing with elastic-hyperviscous drops the free energy
	c := model(tst, "almansi-hamel-hv")
	ac, err := Compose(a, c)
	if err != nil {
		tst.Errorf("Compose failed: %v\n", err)
		return
	}
	if _, ok := ac.(*ElasticHyperviscous); !ok {
		tst.Errorf("composite should be elastic-hyperviscous\n")
	}

	// nested
	abc, err := Compose(ab, a)
	if err != nil {
		tst.Errorf("Compose failed: %v\n", err)
		return
	}
	if _, ok := abc.(*Hyperviscoelastic); !ok {
		tst.Errorf("nested composite should be hyperviscoelastic\n")
	}
}

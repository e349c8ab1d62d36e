// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/gofem/mech/ten"
)

// allocate returns an initialised model from the factory
func allocate(tst *testing.T, name string) Model {
	m, err := New(name)
	if err != nil {
		tst.Fatalf("New failed: %v\n", err)
	}
	if err = m.Init(m.GetPrms(true)); err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	if h, ok := m.(*Hyperviscous); ok {
		h.Elastic = &NeoHookean{moduli{K: 13, G: 3}}
	}
	return m
}

func Test_models01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("models01")

	names := Names()
	correct := []string{
		"almansi-hamel", "almansi-hamel-hv", "gent", "hyperviscous", "mooney-rivlin",
		"neo-hookean", "neo-hookean-kv", "svk", "svk-hv", "thermo-almansi-hamel", "thermo-svk",
	}
	chk.Int(tst, "number of models", len(names), len(correct))
	for i := 0; i < len(names) && i < len(correct); i++ {
		if names[i] != correct[i] {
			tst.Errorf("model %d: %q != %q\n", i, names[i], correct[i])
		}
	}

	// unknown model
	if _, err := New("linear-elastic"); err == nil {
		tst.Errorf("New should have failed\n")
		return
	}

	// wrong parameter
	for _, name := range names {
		m, _ := New(name)
		err := m.Init([]*dbf.P{&dbf.P{N: "nu", V: 0.3}})
		if err == nil {
			tst.Errorf("%s: Init should have failed\n", name)
		}
		io.Pforan("%s: %v\n", name, err)
	}

	// negative moduli
	m, _ := New("neo-hookean")
	if err := m.Init([]*dbf.P{&dbf.P{N: "K", V: -1}, &dbf.P{N: "G", V: 3}}); err == nil {
		tst.Errorf("Init with negative K should have failed\n")
	}

	// moduli
	nh := allocate(tst, "neo-hookean").(Solid)
	chk.Float64(tst, "K", 1e-15, nh.BulkModulus(), 13)
	chk.Float64(tst, "G", 1e-15, nh.ShearModulus(), 3)
	hv := allocate(tst, "almansi-hamel-hv").(Viscous)
	chk.Float64(tst, "Kv", 1e-15, hv.BulkViscosity(), 0.5)
	chk.Float64(tst, "Gv", 1e-15, hv.ShearViscosity(), 0.2)
}

func Test_models02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("models02")

	// rest state, symmetry and objectivity of elastic models
	Q := ten.Rotation(0, 0.3).Dot(ten.Rotation(2, -1.1))
	for _, name := range Names() {
		m := allocate(tst, name)
		e, ok := m.(Elastic)
		if !ok {
			if t, ok := m.(Thermoelastic); ok {
				e = AtTemperature(t, t.ReferenceTemperature())
			} else {
				continue
			}
		}
		io.Pforan("%s\n", name)
		σ0, err := e.CauchyStress(ten.I2())
		if err != nil {
			tst.Errorf("%s: CauchyStress failed: %v\n", name, err)
			return
		}
		chk.Deep2(tst, name+": σ(I)", 1e-15, σ0.Slice(), ten.T2{}.Slice())
		σ, _ := e.CauchyStress(tstF)
		chk.Deep2(tst, name+": σ = σᵀ", 1e-14, σ.Slice(), σ.Transpose().Slice())
		S, _ := SecondPK(e, tstF)
		chk.Deep2(tst, name+": S = Sᵀ", 1e-13, S.Slice(), S.Transpose().Slice())
		σQ, _ := e.CauchyStress(Q.Dot(tstF))
		chk.Deep2(tst, name+": σ(QF) = Qσ(F)Qᵀ", 1e-13, σQ.Slice(), Q.Dot(σ).Dot(Q.Transpose()).Slice())
		if h, ok := e.(Hyperelastic); ok {
			a0, _ := h.FreeEnergy(ten.I2())
			chk.Float64(tst, name+": a(I)", 1e-15, a0, 0)
			aQ, _ := h.FreeEnergy(Q.Dot(tstF))
			a, _ := h.FreeEnergy(tstF)
			chk.Float64(tst, name+": a(QF) = a(F)", 1e-13, aQ, a)
		}
	}
}

func Test_models03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("models03")

	// analytical tangents against finite differences
	for _, name := range []string{"almansi-hamel", "neo-hookean", "svk", "mooney-rivlin", "gent", "hyperviscous"} {
		io.Pforan("\n%s\n", name)
		e := allocate(tst, name).(Elastic)
		CheckElastic(tst, e, tstF, 1e-6, chk.Verbose)
		CheckElastic(tst, e, ten.I2(), 1e-6, chk.Verbose)
	}

	// thermoelastic at a temperature different from the reference one
	for _, name := range []string{"thermo-almansi-hamel", "thermo-svk"} {
		io.Pforan("\n%s\n", name)
		t := allocate(tst, name).(Thermoelastic)
		CheckElastic(tst, AtTemperature(t, t.ReferenceTemperature()+150), tstF, 1e-6, chk.Verbose)
	}
}

func Test_models04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("models04")

	// hyperelasticity: P = ∂a/∂F and major symmetry of ∂P/∂F
	for _, name := range []string{"neo-hookean", "svk", "mooney-rivlin", "gent", "svk-hv"} {
		io.Pforan("\n%s\n", name)
		h := allocate(tst, name).(Hyperelastic)
		CheckHyperelastic(tst, h, tstF, 1e-6, chk.Verbose)
		C, err := FirstPKTangent(h, tstF)
		if err != nil {
			tst.Errorf("%s: FirstPKTangent failed: %v\n", name, err)
			return
		}
		chk.Deep2(tst, name+": C major symmetry", 1e-12, C.Flat(), C.MajorTranspose().Flat())
	}

	// thermohyperelastic
	t := allocate(tst, "thermo-svk").(Thermohyperelastic)
	h, ok := AtTemperature(t, 400).(Hyperelastic)
	if !ok {
		tst.Errorf("thermo-svk at fixed temperature should be hyperelastic\n")
		return
	}
	CheckHyperelastic(tst, h, tstF, 1e-6, chk.Verbose)

	// almansi-hamel is not hyperelastic
	if _, ok := allocate(tst, "almansi-hamel").(Hyperelastic); ok {
		tst.Errorf("almansi-hamel should not be hyperelastic\n")
	}
	if _, ok := AtTemperature(allocate(tst, "thermo-almansi-hamel").(Thermoelastic), 300).(Hyperelastic); ok {
		tst.Errorf("thermo-almansi-hamel at fixed temperature should not be hyperelastic\n")
	}
}

func Test_models05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("models05")

	// viscous tangents and dissipation
	for _, name := range []string{"almansi-hamel-hv", "svk-hv", "neo-hookean-kv", "hyperviscous"} {
		io.Pforan("\n%s\n", name)
		v := allocate(tst, name).(Viscoelastic)
		CheckViscoelastic(tst, v, tstF, tstFdot, 1e-6, chk.Verbose)

		// rest state
		σ0, _ := v.ViscoCauchyStress(ten.I2(), ten.T2{})
		chk.Deep2(tst, name+": σ(I,0)", 1e-15, σ0.Slice(), ten.T2{}.Slice())

		// objectivity
		Q := ten.Rotation(1, 0.7)
		σ, _ := v.ViscoCauchyStress(tstF, tstFdot)
		σQ, _ := v.ViscoCauchyStress(Q.Dot(tstF), Q.Dot(tstFdot))
		chk.Deep2(tst, name+": σ(QF,QḞ) = Qσ(F,Ḟ)Qᵀ", 1e-13, σQ.Slice(), Q.Dot(σ).Dot(Q.Transpose()).Slice())

		// elastic part at zero rate
		if e, ok := v.(Elastic); ok {
			σe, _ := e.CauchyStress(tstF)
			σv, _ := v.ViscoCauchyStress(tstF, ten.T2{})
			chk.Deep2(tst, name+": σ(F,0) = σ(F)", 1e-15, σv.Slice(), σe.Slice())
		}

		U, _ := ViscoFirstPKRateTangent(v, tstF, tstFdot)
		asym := U.Sub(U.MajorTranspose()).NormInf()
		io.Pforan("asymmetry of U = %g\n", asym)
		h, hyperviscous := v.(ElasticHyperviscous)
		if !hyperviscous {
			if asym < 1e-4 {
				tst.Errorf("%s: U should not be major-symmetric\n", name)
			}
			continue
		}
		if asym > 1e-12 {
			tst.Errorf("%s: U should be major-symmetric. asymmetry = %g\n", name, asym)
		}
		CheckHyperviscous(tst, h, tstF, tstFdot, 1e-6, chk.Verbose)
		φ0, _ := h.ViscousDissipation(tstF, ten.T2{})
		φ, _ := h.ViscousDissipation(tstF, tstFdot)
		chk.Float64(tst, name+": φ(F,0)", 1e-15, φ0, 0)
		if φ <= 0 {
			tst.Errorf("%s: dissipation should be positive. φ = %g\n", name, φ)
		}
	}
}

func Test_models06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("models06")

	// thermal consistency at the reference temperature
	pairs := map[string]string{
		"thermo-almansi-hamel": "almansi-hamel",
		"thermo-svk":           "svk",
	}
	for thermo, iso := range pairs {
		t := allocate(tst, thermo).(Thermoelastic)
		e := allocate(tst, iso).(Elastic)
		T0 := t.ReferenceTemperature()
		σt, _ := t.ThermoCauchyStress(tstF, T0)
		σe, _ := e.CauchyStress(tstF)
		chk.Deep2(tst, thermo+": σ(F,T₀)", 0, σt.Slice(), σe.Slice())
		Tt, _ := t.ThermoCauchyTangent(tstF, T0)
		Te, _ := e.CauchyTangent(tstF)
		chk.Deep2(tst, thermo+": T(F,T₀)", 0, Tt.Flat(), Te.Flat())
		Pt, _ := ThermoFirstPK(t, tstF, T0)
		Pe, _ := FirstPK(e, tstF)
		chk.Deep2(tst, thermo+": P(F,T₀)", 0, Pt.Slice(), Pe.Slice())

		// free thermal expansion: σ(I, T) = -3αK ΔT I
		ΔT := 50.0
		σ, _ := t.ThermoCauchyStress(ten.I2(), T0+ΔT)
		v := -3 * t.ExpansionCoefficient() * t.BulkModulus() * ΔT
		chk.Deep2(tst, thermo+": σ(I,T)", 1e-15, σ.Slice(), ten.Diag(v, v, v).Slice())
	}

	// free energy
	t := allocate(tst, "thermo-svk").(Thermohyperelastic)
	e := allocate(tst, "svk").(Hyperelastic)
	at, _ := t.ThermoFreeEnergy(tstF, t.ReferenceTemperature())
	ae, _ := e.FreeEnergy(tstF)
	chk.Float64(tst, "a(F,T₀)", 0, at, ae)
}

func Test_models07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("models07")

	// gent: maximum extensibility
	m := allocate(tst, "gent").(*Gent)
	λ := 8.0
	F := ten.Diag(λ, 1/math.Sqrt(λ), 1/math.Sqrt(λ))
	_, err := m.CauchyStress(F)
	var e *Error
	if !errors.As(err, &e) {
		tst.Errorf("CauchyStress should have failed with locked chains\n")
		return
	}
	io.Pforan("err = %v\n", err)
	if e.Kind != Custom {
		tst.Errorf("kind should be Custom. got %v\n", e.Kind)
	}
	if _, err = m.FreeEnergy(F); err == nil {
		tst.Errorf("FreeEnergy should have failed\n")
	}

	// invalid Jacobian in all models
	bad := ten.Diag(1, -1, 1)
	for _, name := range Names() {
		mdl := allocate(tst, name)
		var err error
		switch o := mdl.(type) {
		case Elastic:
			_, err = o.CauchyStress(bad)
		case Thermoelastic:
			_, err = o.ThermoCauchyStress(bad, 300)
		case Viscoelastic:
			_, err = o.ViscoCauchyStress(bad, ten.T2{})
		}
		if !errors.As(err, &e) || e.Kind != InvalidJacobian {
			tst.Errorf("%s: InvalidJacobian expected. got %v\n", name, err)
		}
	}

	// hyperviscous without elastic part
	h := new(Hyperviscous)
	if _, err = h.ViscoCauchyStress(tstF, tstFdot); err == nil {
		tst.Errorf("hyperviscous without elastic part should have failed\n")
	}
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gofem/mech/opt"
	"github.com/gofem/mech/ten"
)

func Test_load01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("load01")

	// uniaxial compression of a Neo-Hookean solid
	m := &NeoHookean{moduli{K: 13, G: 3}}
	res, err := Root(m, UniaxialStress(0.77), opt.NewNewtonRaphson())
	if err != nil {
		tst.Errorf("Root failed: %v\n", err)
		return
	}
	F, σ := res.F, res.Cauchy
	io.Pforan("F = %v\nσ = %v\nnit = %d\n", F, σ, res.Stat.Nit)
	chk.Float64(tst, "F11", 1e-15, F[0][0], 0.77)
	chk.Float64(tst, "F22 = F33", 1e-15, F[1][1], F[2][2])
	if F[1][1] <= 1 {
		tst.Errorf("F22 should be greater than one. F22 = %g\n", F[1][1])
	}
	if σ[0][0] >= 0 {
		tst.Errorf("σ11 should be negative. σ11 = %g\n", σ[0][0])
	}
	chk.Float64(tst, "σ22", 1e-10, σ[1][1], 0)
	chk.Float64(tst, "σ33", 1e-10, σ[2][2], 0)

	// minimisation gives the same state
	sol, err := Minimize(m, UniaxialStress(0.77), opt.NewNewtonRaphson())
	if err != nil {
		tst.Errorf("Minimize failed: %v\n", err)
		return
	}
	chk.Deep2(tst, "F (minimize)", 1e-10, sol.F.Slice(), F.Slice())
	chk.Deep2(tst, "σ (minimize)", 1e-9, sol.Cauchy.Slice(), σ.Slice())

	// gradient descent
	sol, err = Minimize(m, UniaxialStress(0.77), opt.NewGradientDescent())
	if err != nil {
		tst.Errorf("Minimize with gradient descent failed: %v\n", err)
		return
	}
	chk.Deep2(tst, "F (descent)", 1e-9, sol.F.Slice(), F.Slice())

	// root finding with gradient descent
	sol, err = Root(m, UniaxialStress(0.77), opt.NewGradientDescent())
	if err != nil {
		tst.Errorf("Root with gradient descent failed: %v\n", err)
		return
	}
	chk.Deep2(tst, "F (root, descent)", 1e-9, sol.F.Slice(), F.Slice())
	chk.Float64(tst, "σ22 (root, descent)", 1e-9, sol.Cauchy[1][1], 0)
}

func Test_load02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("load02")

	// no stretch: exact rest state
	m := &NeoHookean{moduli{K: 13, G: 3}}
	res, err := Root(m, UniaxialStress(1.0), opt.NewNewtonRaphson())
	if err != nil {
		tst.Errorf("Root failed: %v\n", err)
		return
	}
	chk.Deep2(tst, "F", 0, res.F.Slice(), ten.I2().Slice())
	chk.Deep2(tst, "σ", 0, res.Cauchy.Slice(), ten.T2{}.Slice())
	chk.Int(tst, "nit", res.Stat.Nit, 0)

	// biaxial extension
	res, err = Root(m, BiaxialStress(1.3, 1.2), opt.NewNewtonRaphson())
	if err != nil {
		tst.Errorf("Root failed: %v\n", err)
		return
	}
	σ := res.Cauchy
	io.Pforan("F = %v\nσ = %v\n", res.F, σ)
	if !(σ[0][0] > σ[1][1] && σ[1][1] > 0) {
		tst.Errorf("σ11 > σ22 > 0 failed. σ11 = %g, σ22 = %g\n", σ[0][0], σ[1][1])
	}
	chk.Float64(tst, "σ33", 1e-10, σ[2][2], 0)
	if res.F[2][2] >= 1 {
		tst.Errorf("F33 should be less than one. F33 = %g\n", res.F[2][2])
	}
	sol, err := Minimize(m, BiaxialStress(1.3, 1.2), opt.NewNewtonRaphson())
	if err != nil {
		tst.Errorf("Minimize failed: %v\n", err)
		return
	}
	chk.Float64(tst, "F33 (minimize)", 1e-10, sol.F[2][2], res.F[2][2])
	sol, err = Root(m, BiaxialStress(1.3, 1.2), opt.NewGradientDescent())
	if err != nil {
		tst.Errorf("Root with gradient descent failed: %v\n", err)
		return
	}
	chk.Float64(tst, "F33 (root, descent)", 1e-9, sol.F[2][2], res.F[2][2])
}

func Test_load03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("load03")

	// other models
	for _, name := range []string{"almansi-hamel", "svk", "mooney-rivlin", "gent", "neo-hookean-kv"} {
		m := allocate(tst, name).(Elastic)
		for _, load := range []Load{UniaxialStress(0.9), UniaxialStress(1.2), BiaxialStress(1.1, 0.95)} {
			res, err := Root(m, load, opt.NewNewtonRaphson())
			if err != nil {
				tst.Errorf("%s: Root failed: %v\n", name, err)
				return
			}
			io.Pforan("%-15s %-18v F33 = %8.5f  σ11 = %9.5f\n", name, load, res.F[2][2], res.Cauchy[0][0])
			chk.Float64(tst, name+": σ33", 1e-10, res.Cauchy[2][2], 0)
			if load.Kind == Uniaxial {
				chk.Float64(tst, name+": σ22", 1e-10, res.Cauchy[1][1], 0)
				if (load.F11-1)*res.Cauchy[0][0] <= 0 {
					tst.Errorf("%s: σ11 has the wrong sign\n", name)
				}
			}
		}
	}

	// small strains: Poisson's ratio
	m := &NeoHookean{moduli{K: 13, G: 3}}
	ε := 1e-6
	res, _ := Root(m, UniaxialStress(1+ε), opt.NewNewtonRaphson())
	ν := (3*m.K - 2*m.G) / (2 * (3*m.K + m.G))
	chk.Float64(tst, "ν", 1e-5, -(res.F[1][1]-1)/ε, ν)
}

func Test_load04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("load04")

	m := &NeoHookean{moduli{K: 13, G: 3}}

	// non-positive stretch
	var e *Error
	for _, load := range []Load{UniaxialStress(0), UniaxialStress(-0.5), BiaxialStress(1.1, 0)} {
		_, err := Root(m, load, opt.NewNewtonRaphson())
		if !errors.As(err, &e) || e.Kind != InvalidJacobian {
			tst.Errorf("%v: InvalidJacobian expected. got %v\n", load, err)
		}
		_, err = Minimize(m, load, opt.NewNewtonRaphson())
		if !errors.As(err, &e) || e.Kind != InvalidJacobian {
			tst.Errorf("%v: InvalidJacobian expected. got %v\n", load, err)
		}
	}

	// solver failure is reported as upstream with the model error as cause
	g := allocate(tst, "gent").(*Gent)
	_, err := Root(g, UniaxialStress(9), opt.NewNewtonRaphson())
	if !errors.As(err, &e) {
		tst.Errorf("Root should have failed\n")
		return
	}
	io.Pforan("err = %v\n", err)
	if e.Kind != Upstream {
		tst.Errorf("kind should be Upstream. got %v\n", e.Kind)
	}
	var inner *Error
	if !errors.As(e.Err, &inner) || inner.Kind != Custom {
		tst.Errorf("cause should be Custom. got %v\n", e.Err)
	}

	// not enough iterations
	_, err = Root(m, UniaxialStress(0.5), &opt.NewtonRaphson{Atol: 1e-12, NmaxIt: 1})
	if !errors.As(err, &e) || e.Kind != Upstream {
		tst.Errorf("Upstream expected. got %v\n", err)
	}
	var oe *opt.Error
	if !errors.As(err, &oe) || oe.Kind != opt.MaximumStepsReached {
		tst.Errorf("MaximumStepsReached expected. got %v\n", err)
	}
}

func Test_load05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("load05")

	// driver with tangent checks
	var drv Driver
	err := drv.Init(&MooneyRivlin{moduli{K: 13, G: 3}, 1}, nil)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	drv.TstD = tst
	loads := StretchPath(Uniaxial, 1.0, 0.7, 0, 4)
	loads = append(loads, StretchPath(Biaxial, 1.0, 1.3, 1.1, 4)...)
	err = drv.Run(loads)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	chk.Int(tst, "number of results", len(drv.Res), 8)
	for i := 1; i < 4; i++ {
		if drv.Res[i].F[1][1] <= drv.Res[i-1].F[1][1] {
			tst.Errorf("F22 should increase under compression\n")
		}
	}
	chk.Float64(tst, "F11 (last)", 1e-14, drv.Res[7].F[0][0], 1.3)
	chk.Float64(tst, "F22 (last)", 1e-15, drv.Res[7].F[1][1], 1.1)

	// failure
	drv.Silent = true
	drv.TstD = nil
	if err = drv.Run([]Load{UniaxialStress(-1)}); err == nil {
		tst.Errorf("Run should have failed\n")
	}
}

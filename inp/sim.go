// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from material (.mat) and simulation (.sim) files
package inp

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/gofem/mech/mdl/solid"
	"github.com/gofem/mech/ode"
	"github.com/gofem/mech/opt"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc" yaml:"desc" toml:"desc"`                            // description of simulation
	Matfile string `json:"matfile" yaml:"matfile" toml:"matfile" validate:"required"` // materials file path; relative to the simulation file
	Mat     string `json:"mat" yaml:"mat" toml:"mat" validate:"required"`             // name of material
	DirOut  string `json:"dirout" yaml:"dirout" toml:"dirout"`                      // directory for output; e.g. /tmp/mech
	Key     string `json:"key" yaml:"key" toml:"key"`                               // key for output files; default is the material name
}

// LoadData holds the definition of the load path
type LoadData struct {
	Kind   string  `json:"kind" yaml:"kind" toml:"kind" validate:"required,oneof=uniaxial biaxial"` // kind of load
	Rate   bool    `json:"rate" yaml:"rate" toml:"rate"`                                           // rate-dependent run
	Min    bool    `json:"min" yaml:"min" toml:"min"`                                              // use the minimum principle instead of root finding
	F11    float64 `json:"f11" yaml:"f11" toml:"f11" validate:"gte=0"`                             // final stretch along x [static]
	F22    float64 `json:"f22" yaml:"f22" toml:"f22" validate:"gte=0"`                             // stretch along y [static biaxial]
	Nincs  int     `json:"nincs" yaml:"nincs" toml:"nincs" validate:"gte=0"`                       // number of increments [static]
	Rate11 string  `json:"rate11" yaml:"rate11" toml:"rate11"`                                     // function name of Ḟ11(t) [rate]
	Rate22 string  `json:"rate22" yaml:"rate22" toml:"rate22"`                                     // function name of Ḟ22(t) [rate biaxial]
	Tf     float64 `json:"tf" yaml:"tf" toml:"tf" validate:"gte=0"`                                // final time [rate]
	Nout   int     `json:"nout" yaml:"nout" toml:"nout" validate:"gte=0"`                          // number of output times [rate]
}

// SolverData holds nonlinear solver and time integration data
//  Note: zero tolerances and limits select the defaults of the solver or integrator
type SolverData struct {

	// nonlinear solver
	Type       string  `json:"type" yaml:"type" toml:"type" validate:"omitempty,oneof=newton descent"` // nonlinear solver type
	NmaxIt     int     `json:"nmaxit" yaml:"nmaxit" toml:"nmaxit" validate:"gte=0"`                   // number of max iterations
	Atol       float64 `json:"atol" yaml:"atol" toml:"atol" validate:"gte=0"`                         // absolute tolerance
	Step0      float64 `json:"step0" yaml:"step0" toml:"step0" validate:"gte=0"`                      // initial step of gradient descent
	LineSearch bool    `json:"linesearch" yaml:"linesearch" toml:"linesearch"`                        // use backtracking line search
	LsControl  float64 `json:"lscontrol" yaml:"lscontrol" toml:"lscontrol" validate:"gte=0,lt=1"`     // line search: sufficient decrease factor
	LsCutBack  float64 `json:"lscutback" yaml:"lscutback" toml:"lscutback" validate:"gte=0,lt=1"`     // line search: reduction factor
	LsNmaxIt   int     `json:"lsnmaxit" yaml:"lsnmaxit" toml:"lsnmaxit" validate:"gte=0"`             // line search: max number of reductions
	ShowR      bool    `json:"showr" yaml:"showr" toml:"showr"`                                       // show residual

	// time integration
	Ode     string  `json:"ode" yaml:"ode" toml:"ode" validate:"omitempty,oneof=ode23 ode45 ode78 ode89 ode1be"` // integrator kind
	OdeAtol float64 `json:"odeatol" yaml:"odeatol" toml:"odeatol" validate:"gte=0"`                             // absolute tolerance
	OdeRtol float64 `json:"odertol" yaml:"odertol" toml:"odertol" validate:"gte=0"`                             // relative tolerance
	Mfac    float64 `json:"mfac" yaml:"mfac" toml:"mfac" validate:"gte=0"`                                      // multiplier factor
	Mmin    float64 `json:"mmin" yaml:"mmin" toml:"mmin" validate:"gte=0"`                                      // min multiplier
	Mmax    float64 `json:"mmax" yaml:"mmax" toml:"mmax" validate:"gte=0"`                                      // max multiplier
	DtMin   float64 `json:"dtmin" yaml:"dtmin" toml:"dtmin" validate:"gte=0"`                                   // minimum step size
	NmaxSS  int     `json:"nmaxss" yaml:"nmaxss" toml:"nmaxss" validate:"gte=0"`                                // max number of substeps
	Nsub    int     `json:"nsub" yaml:"nsub" toml:"nsub" validate:"gte=0"`                                      // backward Euler: substeps per output interval
}

// Sim holds all simulation data
type Sim struct {

	// input
	Data   Data       `json:"data" yaml:"data" toml:"data"`       // global simulation data
	Load   LoadData   `json:"load" yaml:"load" toml:"load"`       // load path
	Solver SolverData `json:"solver" yaml:"solver" toml:"solver"` // solver data

	// derived
	Dir    string    `json:"-" yaml:"-" toml:"-"` // directory of the simulation file
	MatDb  *MatDb    `json:"-" yaml:"-" toml:"-"` // materials database
	Mat    *Material `json:"-" yaml:"-" toml:"-"` // the material
	DirOut string    `json:"-" yaml:"-" toml:"-"` // output directory
	Key    string    `json:"-" yaml:"-" toml:"-"` // key for output files
}

// ReadSim reads all simulation data from a .sim (JSON), .json, .yaml (.yml) or .toml file
func ReadSim(dir, fn string) (o *Sim, err error) {

	// read and decode
	b, err := readFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}
	o = new(Sim)
	o.Solver.SetDefault()
	if err = decode(b, filepath.Ext(fn), o); err != nil {
		return nil, err
	}
	if err = validate.Struct(o); err != nil {
		return nil, chk.Err("invalid simulation file %q:\n%v", fn, err)
	}
	o.Solver.PostProcess()
	o.Dir = dir

	// materials
	matdir, matfn := filepath.Split(o.Data.Matfile)
	if !filepath.IsAbs(matdir) {
		matdir = filepath.Join(dir, matdir)
	}
	if o.MatDb, err = ReadMat(matdir, matfn); err != nil {
		return nil, err
	}
	if o.Mat = o.MatDb.Get(o.Data.Mat); o.Mat == nil {
		return nil, chk.Err("cannot find material named %q in %q", o.Data.Mat, o.Data.Matfile)
	}

	// output
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/mech"
	}
	o.Key = o.Data.Key
	if o.Key == "" {
		o.Key = o.Data.Mat
	}
	return
}

// LoadKind returns the kind of load
func (o *LoadData) LoadKind() solid.LoadKind {
	if o.Kind == "biaxial" {
		return solid.Biaxial
	}
	return solid.Uniaxial
}

// Loads returns the static load path from F11 = 1 to F11 = f11 in nincs increments
func (o *LoadData) Loads() []solid.Load {
	n := o.Nincs
	if n < 1 {
		n = 1
	}
	F11 := o.F11
	if F11 == 0 {
		F11 = 1
	}
	F22 := o.F22
	if F22 == 0 {
		F22 = 1
	}
	return solid.StretchPath(o.LoadKind(), 1, F11, F22, n+1)[1:]
}

// RateLoad returns the rate load with functions from funcs and Nout+1 output times in [0, Tf]
func (o *LoadData) RateLoad(funcs FuncsData) (load solid.RateLoad, err error) {
	if o.Tf <= 0 {
		return load, chk.Err("final time of rate load must be positive. Tf = %g is invalid", o.Tf)
	}
	nout := o.Nout
	if nout < 1 {
		nout = 1
	}
	times := utl.LinSpace(0, o.Tf, nout+1)
	r11, err := funcs.Rate(o.Rate11)
	if err != nil {
		return
	}
	if o.LoadKind() == solid.Uniaxial {
		return solid.UniaxialRate(r11, times), nil
	}
	r22, err := funcs.Rate(o.Rate22)
	if err != nil {
		return
	}
	return solid.BiaxialRate(r11, r22, times), nil
}

// extra settings //////////////////////////////////////////////////////////////////////////////////

// SetDefault set defaults values
func (o *SolverData) SetDefault() {
	o.Type = "newton"
	o.Ode = "ode45"
	o.Nsub = 1
}

// PostProcess performs a post-processing of the just read data
func (o *SolverData) PostProcess() {
	if o.Type == "" {
		o.Type = "newton"
	}
	if o.Ode == "" {
		o.Ode = "ode45"
	}
	if o.Nsub < 1 {
		o.Nsub = 1
	}
}

// GetSolver returns a nonlinear solver configured with these data
func (o *SolverData) GetSolver() (opt.Solver, error) {
	var ls *opt.Armijo
	if o.LineSearch {
		ls = opt.NewArmijo()
		setpos(&ls.Control, o.LsControl)
		setpos(&ls.CutBack, o.LsCutBack)
		setposInt(&ls.NmaxIt, o.LsNmaxIt)
	}
	switch o.Type {
	case "newton", "":
		s := opt.NewNewtonRaphson()
		setpos(&s.Atol, o.Atol)
		setposInt(&s.NmaxIt, o.NmaxIt)
		s.LineSearch, s.Verbose = ls, o.ShowR
		return s, nil
	case "descent":
		s := opt.NewGradientDescent()
		setpos(&s.Atol, o.Atol)
		setposInt(&s.NmaxIt, o.NmaxIt)
		setpos(&s.Step0, o.Step0)
		s.LineSearch, s.Verbose = ls, o.ShowR
		return s, nil
	}
	return nil, chk.Err("solver %q is not available; options are \"newton\" and \"descent\"", o.Type)
}

// GetIntegrator returns a time integrator configured with these data
//  solver is used by implicit integrators
func (o *SolverData) GetIntegrator(solver opt.RootFinder) (ode.Integrator, error) {
	integ, err := ode.New(o.Ode)
	if err != nil {
		return nil, err
	}
	switch s := integ.(type) {
	case *ode.Explicit:
		setpos(&s.Atol, o.OdeAtol)
		setpos(&s.Rtol, o.OdeRtol)
		setpos(&s.Mfac, o.Mfac)
		setpos(&s.Mmin, o.Mmin)
		setpos(&s.Mmax, o.Mmax)
		setpos(&s.DtMin, o.DtMin)
		setposInt(&s.NmaxSS, o.NmaxSS)
		s.Verbose = o.ShowR
	case *ode.BackwardEuler:
		if solver != nil {
			s.Solver = solver
		}
		s.Nsub = o.Nsub
	}
	return integ, nil
}

// setpos sets *dest = v if v > 0
func setpos(dest *float64, v float64) {
	if v > 0 {
		*dest = v
	}
}

// setposInt sets *dest = v if v > 0
func setposInt(dest *int, v int) {
	if v > 0 {
		*dest = v
	}
}

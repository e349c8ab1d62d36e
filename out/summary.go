// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/gofem/mech/ode"
	"github.com/gofem/mech/opt"
)

// Summary records a run
type Summary struct {
	RunId      string    `json:"runid"`                // run identifier
	Desc       string    `json:"desc,omitempty"`       // description of simulation
	Material   string    `json:"material"`             // name of material
	Load       string    `json:"load"`                 // description of load
	Solver     string    `json:"solver"`               // nonlinear solver
	Integrator string    `json:"integrator,omitempty"` // time integrator [rate]
	OutTimes   []float64 `json:"outtimes,omitempty"`   // output times [rate]
	Nsteps     int       `json:"nsteps"`               // number of equilibrium states or output times
	SolverStat opt.Stat  `json:"solverstat"`           // statistics of the last nonlinear solve
	OdeStat    *ode.Stat `json:"odestat,omitempty"`    // statistics of the integrator [rate]
	Files      []string  `json:"files,omitempty"`      // files written
	Dirout     string    `json:"-"`                    // directory where results are stored
	Fnkey      string    `json:"-"`                    // filename key of simulation
}

// Save writes the summary to Dirout/Fnkey.sum (JSON) and returns the file path
func (o *Summary) Save() (string, error) {
	if o.Dirout == "" || o.Fnkey == "" {
		return "", chk.Err("output directory and filename key must be set")
	}
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return "", err
	}
	return writeFile(o.Dirout, o.Fnkey+".sum", string(b)+"\n")
}

// ReadSummary reads a summary written by Save
func ReadSummary(dirout, fnkey string) (o *Summary, err error) {
	b, err := readFile(filepath.Join(dirout, fnkey+".sum"))
	if err != nil {
		return nil, err
	}
	o = &Summary{Dirout: dirout, Fnkey: fnkey}
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot decode summary:\n%v", err)
	}
	return
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/gofem/mech/inp"
	"github.com/gofem/mech/mdl/solid"
	"github.com/gofem/mech/out"
	"github.com/gofem/mech/ten"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newRateCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rate",
		Short:   "Integrate the response of a rate-dependent material in time",
		Example: `  mech rate --sim rate.yaml`,
		Args:    cobra.NoArgs,
		RunE:    func(cmd *cobra.Command, args []string) error { return o.rate(cmd) },
	}
	cmd.Flags().String("sim", "", "simulation file (json, yaml or toml)")
	return cmd
}

func (o *options) rate(cmd *cobra.Command) (err error) {

	// input
	path := o.v.GetString("sim")
	if path == "" {
		return chk.Err("simulation file must be given with --sim")
	}
	dir, fn := filepath.Split(path)
	sim, err := inp.ReadSim(dir, fn)
	if err != nil {
		return
	}
	if !sim.Load.Rate {
		return chk.Err("load in %q is not rate-dependent; use root or minimize instead", path)
	}
	if d := o.v.GetString("dirout"); d != "" {
		sim.DirOut = d
	}
	load, err := sim.Load.RateLoad(sim.MatDb.Functions)
	if err != nil {
		return
	}
	solver, err := sim.Solver.GetSolver()
	if err != nil {
		return
	}
	integ, err := sim.Solver.GetIntegrator(solver)
	if err != nil {
		return
	}
	m, err := sim.Mat.Viscoelastic()
	if err != nil {
		return
	}
	o.logger.Info("rate run", "material", sim.Mat.Name, "load", load, "integrator", sim.Solver.Ode, "solver", sim.Solver.Type)

	// integrate
	var hist *solid.History
	if sim.Load.Min {
		h, err := sim.Mat.ElasticHyperviscous()
		if err != nil {
			return err
		}
		hist, err = solid.RateMinimize(h, load, integ, solver)
		if err != nil {
			return err
		}
	} else {
		hist, err = solid.RateRoot(m, load, integ, solver)
		if err != nil {
			return
		}
	}
	σ := make([]ten.T2, len(hist.Times))
	for i := range hist.Times {
		if σ[i], err = m.ViscoCauchyStress(hist.F[i], hist.Fdot[i]); err != nil {
			return
		}
	}
	o.logger.Debug("integrator", "stat", hist.Stat)

	// output
	tab, err := out.HistoryTable(hist, σ)
	if err != nil {
		return
	}
	if _, err = cmd.OutOrStdout().Write([]byte(tab.String())); err != nil {
		return
	}
	stat := hist.Stat
	sum := &out.Summary{
		RunId:      uuid.NewString(),
		Desc:       sim.Data.Desc,
		Material:   sim.Mat.Name,
		Load:       load.String(),
		Solver:     sim.Solver.Type,
		Integrator: sim.Solver.Ode,
		OutTimes:   hist.Times,
		Nsteps:     len(hist.Times),
		SolverStat: solver.Stats(),
		OdeStat:    &stat,
		Dirout:     sim.DirOut,
		Fnkey:      sim.Key,
	}
	fntab, err := tab.Write(sim.DirOut, sim.Key)
	if err != nil {
		return
	}
	sum.Files = append(sum.Files, fntab)
	fnsum, err := sum.Save()
	if err != nil {
		return
	}
	o.logger.Info("results written", "run", sum.RunId, "table", sum.Files[0], "summary", fnsum)
	return
}

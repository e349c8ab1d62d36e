// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/cpmech/gosl/chk"
	"github.com/gofem/mech/inp"
	"github.com/gofem/mech/mdl/solid"
	"github.com/gofem/mech/out"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newRootSolveCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "root",
		Short: "Solve for equilibrium states by zeroing the free stresses",
		Example: `  mech root --mat mats.json --name rubber --uniaxial 0.77
  mech root --mat mats.json --name rubber --biaxial 1.3,1.2 --nincs 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error { return o.static(cmd, false) },
	}
	addStaticFlags(cmd)
	return cmd
}

func newMinimizeCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minimize",
		Short: "Solve for equilibrium states by minimising the free energy (hyperelastic materials)",
		Example: `  mech minimize --mat mats.json --name rubber --uniaxial 0.77 --solver descent`,
		Args:    cobra.NoArgs,
		RunE:    func(cmd *cobra.Command, args []string) error { return o.static(cmd, true) },
	}
	addStaticFlags(cmd)
	return cmd
}

func addStaticFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64("uniaxial", 0, "final stretch F11 under uniaxial stress")
	f.Float64Slice("biaxial", nil, "final stretch F11 and fixed stretch F22 under biaxial stress; e.g. 1.3,1.2")
	f.Int("nincs", 1, "number of increments from the undeformed state")
	f.String("solver", "newton", "nonlinear solver: newton or descent")
	f.Float64("atol", 0, "absolute tolerance of the nonlinear solver; zero selects the default")
	f.Int("nmaxit", 0, "max number of iterations; zero selects the default")
	f.Bool("linesearch", false, "use backtracking line search")
}

// loadData returns the load path given by the flags
func (o *options) loadData(cmd *cobra.Command) (ld inp.LoadData, err error) {
	bi, err := cmd.Flags().GetFloat64Slice("biaxial")
	if err != nil {
		return
	}
	uni := o.v.GetFloat64("uniaxial")
	ld.Nincs = o.v.GetInt("nincs")
	switch {
	case len(bi) > 0 && uni > 0:
		err = chk.Err("--uniaxial and --biaxial cannot be given together")
	case len(bi) > 0:
		if len(bi) != 2 {
			return ld, chk.Err("--biaxial requires two stretches; e.g. 1.3,1.2")
		}
		ld.Kind, ld.F11, ld.F22 = "biaxial", bi[0], bi[1]
	case uni > 0:
		ld.Kind, ld.F11 = "uniaxial", uni
	default:
		err = chk.Err("a positive stretch must be given with --uniaxial or --biaxial")
	}
	return
}

// solverData returns the solver settings given by the flags
func (o *options) solverData() *inp.SolverData {
	s := new(inp.SolverData)
	s.SetDefault()
	s.Type = o.v.GetString("solver")
	s.Atol = o.v.GetFloat64("atol")
	s.NmaxIt = o.v.GetInt("nmaxit")
	s.LineSearch = o.v.GetBool("linesearch")
	s.PostProcess()
	return s
}

// static runs root or minimize along a path of stretches
func (o *options) static(cmd *cobra.Command, minimize bool) (err error) {

	// input
	mat, err := o.material()
	if err != nil {
		return
	}
	ld, err := o.loadData(cmd)
	if err != nil {
		return
	}
	sd := o.solverData()
	solver, err := sd.GetSolver()
	if err != nil {
		return
	}

	// solve
	var res []*solid.Equilibrium
	var last solid.Load
	for i, load := range ld.Loads() {
		var r *solid.Equilibrium
		if minimize {
			h, err := mat.Hyperelastic()
			if err != nil {
				return err
			}
			r, err = solid.Minimize(h, load, solver)
			if err != nil {
				return err
			}
		} else {
			e, err := mat.Elastic()
			if err != nil {
				return err
			}
			r, err = solid.Root(e, load, solver)
			if err != nil {
				return err
			}
		}
		o.logger.Info("equilibrium", "inc", i+1, "load", load, "nit", r.Stat.Nit)
		res = append(res, r)
		last = load
	}

	// output
	tab := out.EquilibriumTable(res)
	if _, err = cmd.OutOrStdout().Write([]byte(tab.String())); err != nil {
		return
	}
	if dirout := o.v.GetString("dirout"); dirout != "" {
		key := mat.Name
		sum := &out.Summary{
			RunId:      uuid.NewString(),
			Material:   mat.Name,
			Load:       last.String(),
			Solver:     sd.Type,
			Nsteps:     len(res),
			SolverStat: res[len(res)-1].Stat,
			Dirout:     dirout,
			Fnkey:      key,
		}
		fntab, err := tab.Write(dirout, key)
		if err != nil {
			return err
		}
		sum.Files = append(sum.Files, fntab)
		fn, err := sum.Save()
		if err != nil {
			return err
		}
		o.logger.Info("results written", "table", sum.Files[0], "summary", fn)
	}
	return
}

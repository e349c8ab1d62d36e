// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gofem/mech/mdl/solid"
	"github.com/gofem/mech/srv"
	"github.com/gofem/mech/ten"
	"github.com/spf13/cobra"
)

func newStressCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Print the Cauchy and Piola-Kirchhoff stresses for a deformation gradient",
		Example: `  mech stress --mat mats.json --name rubber --F 1.2,0.1,0,0,0.9,0,0,0,1
  mech stress --mat mats.json --name damper --F 1,0,0,0,1,0,0,0,1 --Fdot 0.1,0,0,0,0,0,0,0,0
  mech stress --mat mats.json --name hot --T 393.15`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error { return o.stress(cmd) },
	}
	f := cmd.Flags()
	f.Float64Slice("F", ten.I2().Flat(), "deformation gradient; 9 components, row by row")
	f.Float64Slice("Fdot", nil, "rate of the deformation gradient; 9 components, row by row")
	f.Float64("T", 0, "temperature [thermoelastic materials]")
	return cmd
}

func (o *options) stress(cmd *cobra.Command) (err error) {

	// input
	mat, err := o.material()
	if err != nil {
		return
	}
	var m solid.Model
	switch {
	case mat.Pair != nil:
		m = mat.Pair
	case mat.Solid != nil:
		m = mat.Solid
	default:
		return chk.Err("material %q is not a solid", mat.Name)
	}
	F, err := tensorFlag(cmd, "F")
	if err != nil {
		return
	}
	var Fdot *ten.T2
	if cmd.Flags().Changed("Fdot") {
		v, err := tensorFlag(cmd, "Fdot")
		if err != nil {
			return err
		}
		Fdot = &v
	}
	var T *float64
	if cmd.Flags().Changed("T") {
		t := o.v.GetFloat64("T")
		T = &t
	}

	// stresses
	res, err := srv.Stress(m, F, Fdot, T)
	if err != nil {
		return
	}
	var buf bytes.Buffer
	io.Ff(&buf, "J = %g\n", res.J)
	writeT2(&buf, "σ", res.Cauchy)
	writeT2(&buf, "P", res.P)
	writeT2(&buf, "S", res.S)
	if res.Energy != nil {
		io.Ff(&buf, "a = %g\n", *res.Energy)
	}
	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return
}

// tensorFlag returns the second order tensor given by 9 components
func tensorFlag(cmd *cobra.Command, name string) (a ten.T2, err error) {
	v, err := cmd.Flags().GetFloat64Slice(name)
	if err != nil {
		return
	}
	if len(v) != 9 {
		return a, chk.Err("--%s requires 9 components; %d given", name, len(v))
	}
	return ten.FromFlat(v), nil
}

// writeT2 writes the components of a row by row
func writeT2(buf *bytes.Buffer, name string, a ten.T2) {
	for i := 0; i < 3; i++ {
		lbl := "  "
		if i == 1 {
			lbl = name + " ="
		}
		io.Ff(buf, "%4s [%14.6e %14.6e %14.6e ]\n", lbl, a[i][0], a[i][1], a[i][2])
	}
}

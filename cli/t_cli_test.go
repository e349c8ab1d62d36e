// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/gofem/mech/out"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const matfile = "../inp/data/mats.json"

// run executes the mech command with args and returns stdout and stderr
func run(args ...string) (stdout, stderr string, err error) {
	var o, e bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&o)
	cmd.SetErr(&e)
	err = cmd.Execute()
	return o.String(), e.String(), err
}

func Test_cli01(tst *testing.T) {

	chk.PrintTitle("cli01")

	stdout, _, err := run("version")
	require.NoError(tst, err)
	assert.True(tst, strings.HasPrefix(stdout, "mech version "+Version))

	// stress at identity
	stdout, _, err = run("stress", "--mat", matfile, "--name", "rubber")
	require.NoError(tst, err)
	assert.Contains(tst, stdout, "J = 1\n")
	assert.Contains(tst, stdout, "σ =")
	assert.Contains(tst, stdout, "a =")

	// stress with rate
	stdout, _, err = run("stress", "--mat", matfile, "--name", "damper", "--F", "1.1,0,0,0,1,0,0,0,1", "--Fdot", "0.1,0,0,0,0,0,0,0,0")
	require.NoError(tst, err)
	assert.Contains(tst, stdout, "J = 1.1\n")
	assert.NotContains(tst, stdout, "a =")

	// thermoelastic
	stdout, _, err = run("stress", "--mat", matfile, "--name", "steel", "--T", "400")
	require.NoError(tst, err)
	assert.Contains(tst, stdout, "a =")
	stdout, _, err = run("stress", "--mat", matfile, "--name", "hot", "--T", "400")
	require.NoError(tst, err)
	assert.Contains(tst, stdout, "P =")

	// failures
	_, _, err = run("stress", "--mat", matfile)
	assert.Error(tst, err)
	_, _, err = run("stress", "--mat", matfile, "--name", "nothing")
	assert.Error(tst, err)
	_, _, err = run("stress", "--mat", matfile, "--name", "rubber", "--F", "1,0,0")
	assert.Error(tst, err)
	_, _, err = run("stress", "--mat", matfile, "--name", "rubber", "--T", "300")
	assert.Error(tst, err)
	_, _, err = run("stress", "--mat", matfile, "--name", "cond")
	assert.Error(tst, err)
	_, _, err = run("stress", "--mat", "../inp/data/nonexistent.json", "--name", "rubber")
	assert.Error(tst, err)
	_, _, err = run("version", "--log-level", "loud")
	assert.Error(tst, err)
}

func Test_cli02(tst *testing.T) {

	chk.PrintTitle("cli02")

	// root
	dirout := tst.TempDir()
	stdout, stderr, err := run("root", "--mat", matfile, "--name", "rubber", "--uniaxial", "1.3", "--nincs", "3", "--dirout", dirout)
	require.NoError(tst, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(tst, lines, 4)
	assert.Contains(tst, lines[0], "F11")
	assert.Contains(tst, lines[0], "nit")
	assert.Contains(tst, stderr, "equilibrium")
	sum, err := out.ReadSummary(dirout, "rubber")
	require.NoError(tst, err)
	assert.Equal(tst, "rubber", sum.Material)
	assert.Equal(tst, 3, sum.Nsteps)
	require.Len(tst, sum.Files, 1)
	assert.FileExists(tst, filepath.Join(dirout, "rubber.res"))

	// minimize
	stdout, _, err = run("minimize", "--mat", matfile, "--name", "rubber", "--biaxial", "1.2,1.1")
	require.NoError(tst, err)
	assert.Len(tst, strings.Split(strings.TrimSpace(stdout), "\n"), 2)

	// failures
	_, _, err = run("root", "--mat", matfile, "--name", "rubber")
	assert.Error(tst, err)
	_, _, err = run("root", "--mat", matfile, "--name", "rubber", "--uniaxial", "1.3", "--biaxial", "1.2,1.1")
	assert.Error(tst, err)
	_, _, err = run("root", "--mat", matfile, "--name", "rubber", "--biaxial", "1.2")
	assert.Error(tst, err)
	_, _, err = run("root", "--mat", matfile, "--name", "rubber", "--uniaxial", "1.3", "--solver", "bisection")
	assert.Error(tst, err)
	_, _, err = run("minimize", "--mat", matfile, "--name", "cond", "--uniaxial", "1.3")
	assert.Error(tst, err)
}

func Test_cli03(tst *testing.T) {

	chk.PrintTitle("cli03")

	// material name from environment
	tst.Setenv(EnvPrefix+"_NAME", "rubber")
	tst.Setenv(EnvPrefix+"_LOG_LEVEL", "debug")
	_, stderr, err := run("stress", "--mat", matfile)
	require.NoError(tst, err)
	assert.Contains(tst, stderr, "material")

	// flags take precedence
	_, _, err = run("stress", "--mat", matfile, "--name", "nothing")
	assert.Error(tst, err)
}

func Test_cli04(tst *testing.T) {

	chk.PrintTitle("cli04")

	dirout := tst.TempDir()
	stdout, _, err := run("rate", "--sim", "../inp/data/rate.yaml", "--dirout", dirout)
	require.NoError(tst, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(tst, lines, 7)
	assert.Contains(tst, lines[0], "dF11")
	assert.Contains(tst, lines[0], "sx")

	sum, err := out.ReadSummary(dirout, "rate")
	require.NoError(tst, err)
	assert.Equal(tst, "damper", sum.Material)
	assert.Equal(tst, "ode1be", sum.Integrator)
	require.Len(tst, sum.OutTimes, 6)
	chk.Float64(tst, "tf", 1e-15, sum.OutTimes[5], 1)
	require.NotNil(tst, sum.OdeStat)

	// failures
	_, _, err = run("rate")
	assert.Error(tst, err)
	_, _, err = run("rate", "--sim", "../inp/data/uniaxial.sim")
	assert.Error(tst, err)
	_, _, err = run("rate", "--sim", "../inp/data/bad.sim")
	assert.Error(tst, err)
	_, _, err = run("rate", "--sim", "../inp/data/nonexistent.yaml")
	assert.Error(tst, err)
}

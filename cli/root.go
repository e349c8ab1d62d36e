// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cli implements the mech command line tool
package cli

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/cpmech/gosl/chk"
	"github.com/gofem/mech/inp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version of the mech tool
var Version = "1.0.0"

// EnvPrefix is the prefix of environment variables overriding flags; e.g. GOFEM_MECH_LOG_LEVEL
const EnvPrefix = "GOFEM_MECH"

// options holds the settings shared by all commands
type options struct {
	v      *viper.Viper // flags, environment and config file
	logger *log.Logger  // logger writing to stderr
}

// NewRootCmd returns the mech command with all subcommands
func NewRootCmd() *cobra.Command {
	o := &options{v: viper.New()}
	cmd := &cobra.Command{
		Use:   "mech",
		Short: "Constitutive models for solids at large deformations",
		Long: `mech evaluates stresses of constitutive models for solids, solves for
equilibrium states under uniaxial and biaxial stress and integrates
rate-dependent responses in time.`,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return o.init(cmd) },
	}
	pf := cmd.PersistentFlags()
	pf.String("config", "", "config file with default flag values (json, yaml or toml)")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("mat", "", "materials file (json, yaml or toml)")
	pf.String("name", "", "name of material in materials file")
	pf.String("dirout", "", "directory for output files; nothing is written if empty")
	cmd.AddCommand(
		newRootSolveCmd(o),
		newMinimizeCmd(o),
		newRateCmd(o),
		newStressCmd(o),
		newServeCmd(o),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the mech command
func Execute() error {
	return NewRootCmd().Execute()
}

// init merges flags, environment and config file and sets the logger
func (o *options) init(cmd *cobra.Command) error {
	o.v.SetEnvPrefix(EnvPrefix)
	o.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	o.v.AutomaticEnv()
	if err := o.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if fn := o.v.GetString("config"); fn != "" {
		o.v.SetConfigFile(fn)
		if err := o.v.ReadInConfig(); err != nil {
			return chk.Err("cannot read config file %q:\n%v", fn, err)
		}
	}
	level, err := log.ParseLevel(o.v.GetString("log-level"))
	if err != nil {
		return chk.Err("invalid log level %q", o.v.GetString("log-level"))
	}
	o.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "mech", Level: level})
	return nil
}

// material reads the materials file and returns the named material
func (o *options) material() (*inp.Material, error) {
	path, name := o.v.GetString("mat"), o.v.GetString("name")
	if path == "" || name == "" {
		return nil, chk.Err("materials file and material name must be given with --mat and --name")
	}
	dir, fn := filepath.Split(path)
	mdb, err := inp.ReadMat(dir, fn)
	if err != nil {
		return nil, err
	}
	mat := mdb.Get(name)
	if mat == nil {
		return nil, chk.Err("cannot find material named %q in %q", name, path)
	}
	o.logger.Debug("material", "name", mat.Name, "type", mat.Type, "model", mat.Model)
	return mat, nil
}

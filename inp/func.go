// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/gofem/mech/mdl/solid"
)

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name" yaml:"name" toml:"name" validate:"required"` // name of function. ex: zero, rate, myfunction1, etc.
	Type string     `json:"type" yaml:"type" toml:"type" validate:"required"` // type of function. ex: cte, rmp
	Prms dbf.Params `json:"prms" yaml:"prms" toml:"prms"`                     // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name
//  Note: "zero" and "none" return the constant zero function
func (o FuncsData) Get(name string) (fcn dbf.T, err error) {
	if name == "zero" || name == "none" {
		return newFunc("cte", dbf.Params{&dbf.P{N: "c", V: 0}})
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err = newFunc(f.Type, f.Prms)
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q\n", name)
	return
}

// Rate returns the function named name as a prescribed rate Ḟ(t)
func (o FuncsData) Rate(name string) (solid.RateFunc, error) {
	f, err := o.Get(name)
	if err != nil {
		return nil, err
	}
	return func(t float64) float64 { return f.F(t, nil) }, nil
}

// newFunc allocates a function from the gosl database
//  Note: dbf.New panics on unknown types and invalid parameters
func newFunc(typ string, prms dbf.Params) (fcn dbf.T, err error) {
	defer func() {
		if r := recover(); r != nil {
			fcn, err = nil, chk.Err("cannot allocate function of type %q:\n%v", typ, r)
		}
	}()
	return dbf.New(typ, prms), nil
}

// String prints one function
func (o FuncData) String() string {
	l := io.Sf("    {\"name\":%q, \"type\":%q, \"prms\":[", o.Name, o.Type)
	for i, p := range o.Prms {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("{\"n\":%q, \"v\":%g}", p.N, p.V)
	}
	return l + "]}"
}

// String prints functions
func (o FuncsData) String() string {
	if len(o) == 0 {
		return "  \"functions\" : []"
	}
	l := "  \"functions\" : [\n"
	for i, f := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", f)
	}
	l += "\n  ]"
	return l
}

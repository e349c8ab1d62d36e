// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output of equilibrium paths and time histories
package out

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gofem/mech/mdl/solid"
	"github.com/gofem/mech/ten"
)

// Table holds results arranged in columns
type Table struct {
	Keys []string    // column keys; e.g. "t", "F11", "sx"
	Rows [][]float64 // [nrows][ncols] values
}

// keys of tensor components
var (
	keysF    = []string{"F11", "F22", "F33", "F12", "F23", "F13"}
	keysFdot = []string{"dF11", "dF22", "dF33", "dF12", "dF23", "dF13"}
	keysSig  = []string{"sx", "sy", "sz", "sxy", "syz", "szx"}
)

// components returns the diagonal and upper off-diagonal components of a
func components(a ten.T2) []float64 {
	return []float64{a[0][0], a[1][1], a[2][2], a[0][1], a[1][2], a[0][2]}
}

// EquilibriumTable returns a table with one row per equilibrium state
//  columns: F, σ, nit
func EquilibriumTable(res []*solid.Equilibrium) *Table {
	o := &Table{Keys: append(append(append([]string{}, keysF...), keysSig...), "nit")}
	for _, r := range res {
		row := append(components(r.F), components(r.Cauchy)...)
		o.Rows = append(o.Rows, append(row, float64(r.Stat.Nit)))
	}
	return o
}

// HistoryTable returns a table with one row per output time
//  columns: t, F, Ḟ and σ if given; len(σ) must be zero or equal to len(h.Times)
func HistoryTable(h *solid.History, σ []ten.T2) (*Table, error) {
	if len(σ) > 0 && len(σ) != len(h.Times) {
		return nil, chk.Err("number of stresses (%d) must be equal to number of times (%d)", len(σ), len(h.Times))
	}
	o := &Table{Keys: append(append([]string{"t"}, keysF...), keysFdot...)}
	if len(σ) > 0 {
		o.Keys = append(o.Keys, keysSig...)
	}
	for i, t := range h.Times {
		row := append([]float64{t}, components(h.F[i])...)
		row = append(row, components(h.Fdot[i])...)
		if len(σ) > 0 {
			row = append(row, components(σ[i])...)
		}
		o.Rows = append(o.Rows, row)
	}
	return o, nil
}

// Column returns the values in the column with the given key
func (o *Table) Column(key string) ([]float64, error) {
	for j, k := range o.Keys {
		if k == key {
			res := make([]float64, len(o.Rows))
			for i, row := range o.Rows {
				res[i] = row[j]
			}
			return res, nil
		}
	}
	return nil, chk.Err("cannot find column %q in table", key)
}

// String returns the table as whitespace-separated text with a header line
func (o *Table) String() string {
	var buf bytes.Buffer
	for _, k := range o.Keys {
		io.Ff(&buf, "%23s", k)
	}
	io.Ff(&buf, "\n")
	for _, row := range o.Rows {
		for _, v := range row {
			io.Ff(&buf, "%23.15e", v)
		}
		io.Ff(&buf, "\n")
	}
	return buf.String()
}

// Write writes the table to dirout/fnkey.res and returns the file path
func (o *Table) Write(dirout, fnkey string) (string, error) {
	return writeFile(dirout, fnkey+".res", o.String())
}

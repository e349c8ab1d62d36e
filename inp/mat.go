// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/go-playground/validator/v10"
	"github.com/gofem/mech/mdl/hybrid"
	"github.com/gofem/mech/mdl/multiphys"
	"github.com/gofem/mech/mdl/solid"
	"github.com/gofem/mech/mdl/thermal"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name" yaml:"name" toml:"name" validate:"required"`                                        // name of material
	Type  string     `json:"type" yaml:"type" toml:"type" validate:"required,oneof=solid thermal hybrid multiphys"` // type of material
	Model string     `json:"model" yaml:"model" toml:"model"`                                                       // name of model; e.g. "neo-hookean", "fourier"
	Extra string     `json:"extra" yaml:"extra" toml:"extra"`                                                       // names of component materials
	Prms  dbf.Params `json:"prms" yaml:"prms" toml:"prms"`                                                          // model parameters

	// derived
	Solid   solid.Model             `json:"-" yaml:"-" toml:"-"` // solid model [solid, hybrid]
	Thermal thermal.Conduction      `json:"-" yaml:"-" toml:"-"` // conduction model [thermal]
	Pair    *multiphys.SolidThermal `json:"-" yaml:"-" toml:"-"` // solid-thermal pair [multiphys]
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Functions FuncsData `json:"functions" yaml:"functions" toml:"functions" validate:"dive"`          // all functions
	Materials MatsData  `json:"materials" yaml:"materials" toml:"materials" validate:"required,dive"` // all materials

	// derived
	Solids    map[string]*Material `json:"-" yaml:"-" toml:"-"` // subset with materials/models: solids and hybrids
	Thermals  map[string]*Material `json:"-" yaml:"-" toml:"-"` // subset with materials/models: conduction
	Multiphys map[string]*Material `json:"-" yaml:"-" toml:"-"` // subset with materials/models: solid-thermal pairs
}

// ReadMat reads all materials data from a .json, .yaml (.yml) or .toml file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {
	b, err := readFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}
	return ParseMat(b, filepath.Ext(fn))
}

// ParseMat decodes and initialises a database of materials
//  format: ".json", ".yaml", ".yml" or ".toml"; leading dot is optional
func ParseMat(b []byte, format string) (mdb *MatDb, err error) {

	// decode
	mdb = new(MatDb)
	if err = decode(b, format, mdb); err != nil {
		return nil, err
	}
	if err = validate.Struct(mdb); err != nil {
		return nil, chk.Err("invalid database of materials:\n%v", err)
	}

	// functions
	for _, f := range mdb.Functions {
		if _, err = mdb.Functions.Get(f.Name); err != nil {
			return nil, err
		}
	}

	// subsets
	mdb.Solids = make(map[string]*Material)
	mdb.Thermals = make(map[string]*Material)
	mdb.Multiphys = make(map[string]*Material)
	seen := make(map[string]bool)
	for _, m := range mdb.Materials {
		if seen[m.Name] {
			return nil, chk.Err("material named %q is duplicated", m.Name)
		}
		seen[m.Name] = true
		switch m.Type {
		case "solid":
			err = m.allocSolid()
		case "thermal":
			err = m.allocThermal()
		}
		if err != nil {
			return nil, err
		}
	}

	// elastic parts of hyperviscous models
	for _, m := range mdb.Materials {
		if m.Type != "solid" {
			continue
		}
		if hv, ok := m.Solid.(*solid.Hyperviscous); ok {
			e, err := mdb.component(m, m.Extra)
			if err != nil {
				return nil, err
			}
			if hv.Elastic, err = e.Elastic(); err != nil {
				return nil, chk.Err("material %q: %v", m.Name, err)
			}
		}
	}

	// composites; in the order they are given
	for _, m := range mdb.Materials {
		switch m.Type {
		case "solid":
			mdb.Solids[m.Name] = m
		case "thermal":
			mdb.Thermals[m.Name] = m
		case "hybrid":
			if err = mdb.allocHybrid(m); err != nil {
				return nil, err
			}
			mdb.Solids[m.Name] = m
		case "multiphys":
			if err = mdb.allocMultiphys(m); err != nil {
				return nil, err
			}
			mdb.Multiphys[m.Name] = m
		}
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// Elastic returns the solid model as Elastic
func (o *Material) Elastic() (solid.Elastic, error) {
	if m, ok := o.Solid.(solid.Elastic); ok {
		return m, nil
	}
	return nil, o.incapable("elastic")
}

// Hyperelastic returns the solid model as Hyperelastic
func (o *Material) Hyperelastic() (solid.Hyperelastic, error) {
	if m, ok := o.Solid.(solid.Hyperelastic); ok {
		return m, nil
	}
	return nil, o.incapable("hyperelastic")
}

// Viscoelastic returns the solid model as Viscoelastic
func (o *Material) Viscoelastic() (solid.Viscoelastic, error) {
	if m, ok := o.Solid.(solid.Viscoelastic); ok {
		return m, nil
	}
	return nil, o.incapable("viscoelastic")
}

// ElasticHyperviscous returns the solid model as ElasticHyperviscous
func (o *Material) ElasticHyperviscous() (solid.ElasticHyperviscous, error) {
	if m, ok := o.Solid.(solid.ElasticHyperviscous); ok {
		return m, nil
	}
	return nil, o.incapable("elastic-hyperviscous")
}

// Thermoelastic returns the solid model as Thermoelastic
func (o *Material) Thermoelastic() (solid.Thermoelastic, error) {
	if o.Pair != nil {
		return o.Pair.Thermoelastic, nil
	}
	if m, ok := o.Solid.(solid.Thermoelastic); ok {
		return m, nil
	}
	return nil, o.incapable("thermoelastic")
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// validate validates decoded input
var validate = validator.New()

// readFile reads the file at path
//  Note: io.ReadFile panics if the file cannot be read
func readFile(path string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, chk.Err("cannot read file %q:\n%v", path, r)
		}
	}()
	return io.ReadFile(path), nil
}

// decode decodes b according to format
func decode(b []byte, format string, v interface{}) error {
	var err error
	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case "json", "mat", "sim":
		err = json.Unmarshal(b, v)
	case "yaml", "yml":
		err = yaml.Unmarshal(b, v)
	case "toml":
		err = toml.Unmarshal(b, v)
	default:
		return chk.Err("format %q is not available; options are \"json\", \"yaml\" and \"toml\"", format)
	}
	if err != nil {
		return chk.Err("cannot decode %s data:\n%v", format, err)
	}
	return nil
}

func (o *Material) allocSolid() (err error) {
	o.Solid, err = solid.New(o.Model)
	if err != nil {
		return
	}
	if err = o.Solid.Init(o.Prms); err != nil {
		return chk.Err("material %q: %v", o.Name, err)
	}
	return
}

func (o *Material) allocThermal() (err error) {
	o.Thermal, err = thermal.New(o.Model)
	if err != nil {
		return
	}
	if err = o.Thermal.Init(o.Prms); err != nil {
		return chk.Err("material %q: %v", o.Name, err)
	}
	return
}

// components returns the two component materials listed in m.Extra
func (o *MatDb) components(m *Material) (a, b *Material, err error) {
	names := strings.Fields(m.Extra)
	if len(names) != 2 {
		return nil, nil, chk.Err("%s material %q must list two components in 'extra'; got %q", m.Type, m.Name, m.Extra)
	}
	if a, err = o.component(m, names[0]); err != nil {
		return
	}
	b, err = o.component(m, names[1])
	return
}

// component returns a component of m that has been allocated already
func (o *MatDb) component(m *Material, name string) (*Material, error) {
	c := o.Get(strings.TrimSpace(name))
	if c == nil || c == m {
		return nil, chk.Err("material %q: cannot find component named %q", m.Name, name)
	}
	if c.Solid == nil && c.Thermal == nil {
		return nil, chk.Err("material %q: component %q must be given before", m.Name, name)
	}
	return c, nil
}

func (o *MatDb) allocHybrid(m *Material) (err error) {
	a, b, err := o.components(m)
	if err != nil {
		return
	}
	if m.Solid, err = hybrid.Compose(a.Solid, b.Solid); err != nil {
		return chk.Err("material %q: %v", m.Name, err)
	}
	return
}

func (o *MatDb) allocMultiphys(m *Material) (err error) {
	a, b, err := o.components(m)
	if err != nil {
		return
	}
	s, ok := a.Solid.(solid.Thermoelastic)
	if !ok {
		return chk.Err("material %q: first component %q must be a thermoelastic solid", m.Name, a.Name)
	}
	if b.Thermal == nil {
		return chk.Err("material %q: second component %q must be a thermal material", m.Name, b.Name)
	}
	m.Pair = multiphys.NewSolidThermal(s, b.Thermal)
	return
}

func (o *Material) incapable(capability string) error {
	return chk.Err("material %q (%s %q) is not %s", o.Name, o.Type, o.Model, capability)
}

// String prints one material
func (o *Material) String() string {
	l := io.Sf("    {\n      \"name\"  : %q,\n      \"type\"  : %q,\n      \"model\" : %q,\n      \"extra\" : %q,\n      \"prms\"  : [", o.Name, o.Type, o.Model, o.Extra)
	for i, p := range o.Prms {
		if i > 0 {
			l += ","
		}
		l += io.Sf("\n        {\"n\":%q, \"v\":%g}", p.N, p.V)
	}
	return l + "\n      ]\n    }"
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

// String outputs all materials
func (o MatDb) String() string {
	return io.Sf("{\n%v,\n%v\n}", o.Functions, o.Materials)
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/klplate/mdl/solid"

	"github.com/cpmech/gosl/chk"
)

// Material holds material data
type Material struct {
	Name   string             `yaml:"name"`   // name of material
	Model  string             `yaml:"model"`  // name of model; e.g. "lin-elast", "aniso-pstress"
	Prms   map[string]float64 `yaml:"prms"`   // all model parameters for this material
	RhoFcn string             `yaml:"rhofcn"` // [optional] name of function giving the density @ x (lin-elast only)
}

// Mats holds materials
type MatsData []*Material

// Get returns material by name
func (o MatsData) Get(name string) (mat *Material, err error) {
	for _, m := range o {
		if m.Name == name {
			return m, nil
		}
	}
	return nil, chk.Err("cannot find material named %q", name)
}

// linElastDefaults holds the defaults of isotropic materials
var linElastDefaults = map[string]float64{"E": 1000, "nu": 0.3, "rho": 1}

// Solid allocates and initialises the material model. funcs holds the functions
// referenced by RhoFcn; density functions are evaluated at t = 0
func (o *Material) Solid(funcs FuncsData) (mdl solid.Model, err error) {
	mdl, err = solid.New(o.Model)
	if err != nil {
		return nil, chk.Err("material %q: %v", o.Name, err)
	}
	prms := make(map[string]float64)
	if o.Model == "lin-elast" {
		for k, v := range linElastDefaults {
			prms[k] = v
		}
	}
	for k, v := range o.Prms {
		prms[k] = v
	}
	err = mdl.Init(ToParams(prms))
	if err != nil {
		return nil, chk.Err("material %q: cannot initialise model:\n%v", o.Name, err)
	}
	if o.RhoFcn == "" {
		return
	}
	le, ok := mdl.(*solid.LinElast)
	if !ok {
		return nil, chk.Err("material %q: model %q does not take a density function", o.Name, o.Model)
	}
	le.RhoFcn, err = funcs.Get(o.RhoFcn)
	if err != nil {
		return nil, chk.Err("material %q: %v", o.Name, err)
	}
	return
}

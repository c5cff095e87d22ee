// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// FuncData holds function definition
type FuncData struct {
	Name string             `yaml:"name"` // name of function. ex: load, myfunction1, etc.
	Type string             `yaml:"type"` // type of function. ex: cte, rmp
	Prms map[string]float64 `yaml:"prms"` // parameters
}

// Funcs holds functions
type FuncsData []*FuncData

// Get returns function by name. "zero" and "none" give nil (no function)
func (o FuncsData) Get(name string) (fcn dbf.T, err error) {
	if name == "" || name == "zero" || name == "none" {
		return
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err = dbf.New(f.Type, ToParams(f.Prms))
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q\n", name)
	return
}

// ToParams converts a map of parameters to a parameter list sorted by name
func ToParams(prms map[string]float64) (res dbf.Params) {
	keys := make([]string, 0, len(prms))
	for k := range prms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		res = append(res, &dbf.P{N: k, V: prms[k]})
	}
	return
}

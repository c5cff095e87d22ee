// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// LinElast implements an isotropic linear elastic model under plane-stress conditions
type LinElast struct {
	E      float64 // Young's modulus
	Nu     float64 // Poisson's coefficient
	Rho    float64 // density
	RhoFcn dbf.T   // [optional] density as a function of position (evaluated at t = 0); replaces Rho
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(LinElast) }
}

// NewLinElast returns a new model with given parameters
func NewLinElast(E, ν, ρ float64) (o *LinElast, err error) {
	o = new(LinElast)
	err = o.Init(dbf.Params{
		&dbf.P{N: "E", V: E},
		&dbf.P{N: "nu", V: ν},
		&dbf.P{N: "rho", V: ρ},
	})
	return
}

// Init initialises model
func (o *LinElast) Init(prms dbf.Params) (err error) {
	o.E, o.Nu, o.Rho = 1000.0, 0.3, 0.0
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "rho":
			o.Rho = p.V
		default:
			return chk.Err("lin-elast: parameter named %q is invalid", p.N)
		}
	}
	if o.E <= 0 {
		return chk.Err("lin-elast: Young's modulus must be positive. E = %g is invalid", o.E)
	}
	if o.Nu <= -1 || o.Nu >= 0.5 {
		return chk.Err("lin-elast: Poisson's coefficient must be in (-1, 0.5). nu = %g is invalid", o.Nu)
	}
	if o.Rho < 0 {
		return chk.Err("lin-elast: density must be non-negative. rho = %g is invalid", o.Rho)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o LinElast) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 1000},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "rho", V: 1},
	}
}

// GetRho returns density
func (o *LinElast) GetRho(x []float64) float64 {
	if o.RhoFcn != nil {
		return o.RhoFcn.F(0, x)
	}
	return o.Rho
}

// CalcD computes the constitutive tensor
//
//                  E    ┌ 1  ν     0    ┐
//   2D:  D  =   ─────── │ ν  1     0    │      1D:  D = E
//                1 - ν² └ 0  0  (1-ν)/2 ┘
//
func (o *LinElast) CalcD(D [][]float64, x []float64) (err error) {
	n, err := checkD(D, "lin-elast")
	if err != nil {
		return
	}
	if n == 1 {
		D[0][0] = o.E
		return
	}
	c := o.E / (1.0 - o.Nu*o.Nu)
	D[0][0], D[0][1], D[0][2] = c, c*o.Nu, 0
	D[1][0], D[1][1], D[1][2] = c*o.Nu, c, 0
	D[2][0], D[2][1], D[2][2] = 0, 0, c*(1.0-o.Nu)/2.0
	return
}

// CalcDinv computes the inverse of the constitutive tensor (compliance)
//
//                1  ┌  1  -ν     0    ┐
//   2D:  D⁻¹ =  ─── │ -ν   1     0    │      1D:  D⁻¹ = 1/E
//                E  └  0   0  2(1+ν)  ┘
//
func (o *LinElast) CalcDinv(Dinv [][]float64, x []float64) (err error) {
	n, err := checkD(Dinv, "lin-elast")
	if err != nil {
		return
	}
	c := 1.0 / o.E
	if n == 1 {
		Dinv[0][0] = c
		return
	}
	Dinv[0][0], Dinv[0][1], Dinv[0][2] = c, -c*o.Nu, 0
	Dinv[1][0], Dinv[1][1], Dinv[1][2] = -c*o.Nu, c, 0
	Dinv[2][0], Dinv[2][1], Dinv[2][2] = 0, 0, 2.0*c*(1.0+o.Nu)
	return
}

// String returns a summary of parameters
func (o *LinElast) String() string {
	return io.Sf("LinElast: E = %g, nu = %g, rho = %g", o.E, o.Nu, o.Rho)
}

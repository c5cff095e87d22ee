// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// AnisoPstress implements a general (anisotropic) linear elastic model under plane-stress
// conditions given by the components of the symmetric constitutive tensor
//
//         ┌ D11  D12  D13 ┐
//   D  =  │ D12  D22  D23 │      1D: D = D11
//         └ D13  D23  D33 ┘
//
type AnisoPstress struct {
	D   [3][3]float64 // constitutive tensor
	Rho float64       // density
}

// add model to factory
func init() {
	allocators["aniso-pstress"] = func() Model { return new(AnisoPstress) }
}

// Init initialises model
func (o *AnisoPstress) Init(prms dbf.Params) (err error) {
	o.D = [3][3]float64{}
	o.Rho = 0
	for _, p := range prms {
		switch p.N {
		case "D11":
			o.D[0][0] = p.V
		case "D12":
			o.D[0][1], o.D[1][0] = p.V, p.V
		case "D13":
			o.D[0][2], o.D[2][0] = p.V, p.V
		case "D22":
			o.D[1][1] = p.V
		case "D23":
			o.D[1][2], o.D[2][1] = p.V, p.V
		case "D33":
			o.D[2][2] = p.V
		case "rho":
			o.Rho = p.V
		default:
			return chk.Err("aniso-pstress: parameter named %q is invalid", p.N)
		}
	}
	if o.Rho < 0 {
		return chk.Err("aniso-pstress: density must be non-negative. rho = %g is invalid", o.Rho)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o AnisoPstress) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "D11", V: 1100},
		&dbf.P{N: "D12", V: 330},
		&dbf.P{N: "D13", V: 0},
		&dbf.P{N: "D22", V: 800},
		&dbf.P{N: "D23", V: 0},
		&dbf.P{N: "D33", V: 350},
		&dbf.P{N: "rho", V: 1},
	}
}

// GetRho returns density
func (o *AnisoPstress) GetRho(x []float64) float64 {
	return o.Rho
}

// CalcD computes the constitutive tensor
func (o *AnisoPstress) CalcD(D [][]float64, x []float64) (err error) {
	n, err := checkD(D, "aniso-pstress")
	if err != nil {
		return
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			D[i][j] = o.D[i][j]
		}
	}
	return
}

// CalcDinv computes the inverse of the constitutive tensor.
// It fails if the tensor is singular
func (o *AnisoPstress) CalcDinv(Dinv [][]float64, x []float64) (err error) {
	n, err := checkD(Dinv, "aniso-pstress")
	if err != nil {
		return
	}
	if n == 1 {
		if math.Abs(o.D[0][0]) < MINDET {
			return chk.Err("aniso-pstress: cannot invert D11 = %g", o.D[0][0])
		}
		Dinv[0][0] = 1.0 / o.D[0][0]
		return
	}
	a := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a.Set(i, j, o.D[i][j])
		}
	}
	if math.Abs(mat.Det(a)) < MINDET {
		return chk.Err("aniso-pstress: constitutive tensor is singular. det(D) = %g", mat.Det(a))
	}
	var ai mat.Dense
	if e := ai.Inverse(a); e != nil {
		return chk.Err("aniso-pstress: cannot invert constitutive tensor:\n%v", e)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			Dinv[i][j] = ai.At(i, j)
		}
	}
	return
}

// String returns a summary of parameters
func (o *AnisoPstress) String() string {
	return io.Sf("AnisoPstress: D = %v, rho = %g", o.D, o.Rho)
}

// MINDET is the minimum absolute determinant allowed when inverting constitutive tensors
const MINDET = 1.0e-14

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements constitutive models for plane-stress solids used by plate elements
package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for plane-stress solid models.
// The size of D selects the reduction: len(D)==1 for 1D (beam-like strips) and
// len(D)==3 for 2D with components ordered as {xx, yy, xy}.
type Model interface {
	Init(prms dbf.Params) error                   // initialises model
	GetPrms() dbf.Params                          // gets (an example) of parameters
	GetRho(x []float64) float64                   // returns density @ x
	CalcD(D [][]float64, x []float64) error       // computes plane-stress constitutive tensor D @ x
	CalcDinv(Dinv [][]float64, x []float64) error // computes inverse of D @ x
	String() string                               // summary of parameters
}

// New returns new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'solid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}

// checkD checks the size of D
func checkD(D [][]float64, model string) (n int, err error) {
	n = len(D)
	if n != 1 && n != 3 {
		return n, chk.Err("%s: constitutive tensor must be 1x1 or 3x3. %d rows is invalid", model, n)
	}
	for i := 0; i < n; i++ {
		if len(D[i]) != n {
			return n, chk.Err("%s: constitutive tensor must be square. row %d has %d columns", model, i, len(D[i]))
		}
	}
	return
}

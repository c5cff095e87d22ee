// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/klplate/shp"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// EssentialBcs holds the constrained (zero) deflections. With open knot vectors the
// boundary control points interpolate the edges; thus
//
//   simply:   w = 0                 ⇒  first and last rows of control points fixed
//   clamped:  w = 0  and  ∂w/∂n = 0  ⇒  first two and last two rows fixed
//   free:     nothing is fixed
//
// Constrained equations are eliminated: the system is reduced to the free equations
type EssentialBcs struct {
	Key   string // boundary condition type
	Eqs   []int  // fixed equations (sorted)
	Free  []int  // free equations (sorted); reduced index => global equation
	fixed map[int]bool
}

// Set sets the fixed equations of a patch
func (o *EssentialBcs) Set(key string, p *shp.Patch) (err error) {
	o.Key = key
	o.fixed = make(map[int]bool)
	nrows := 0
	switch key {
	case "simply":
		nrows = 1
	case "clamped":
		nrows = 2
	case "free":
	default:
		return chk.Err("boundary condition %q is not available", key)
	}
	for n := 0; n < p.Nnod(); n++ {
		ij := p.NodeIJ(n)
		for d, b := range p.Bases {
			ncp := b.Ncp()
			if ij[d] < nrows || ij[d] >= ncp-nrows {
				o.fixed[n] = true
			}
		}
	}
	o.Eqs, o.Free = nil, nil
	for n := 0; n < p.Nnod(); n++ {
		if o.fixed[n] {
			o.Eqs = append(o.Eqs, n)
		} else {
			o.Free = append(o.Free, n)
		}
	}
	sort.Ints(o.Eqs)
	if len(o.Free) == 0 {
		return chk.Err("all %d equations are constrained by %q conditions; use more elements", p.Nnod(), key)
	}
	return
}

// IsFixed tells whether equation eq is constrained
func (o *EssentialBcs) IsFixed(eq int) bool {
	return o.fixed[eq]
}

// Reduce returns the submatrix of free equations
func (o *EssentialBcs) Reduce(A *mat.SymDense) *mat.SymDense {
	n := len(o.Free)
	R := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			R.SetSym(i, j, A.At(o.Free[i], o.Free[j]))
		}
	}
	return R
}

// ReduceVec returns the free components of v
func (o *EssentialBcs) ReduceVec(v []float64) *mat.VecDense {
	r := mat.NewVecDense(len(o.Free), nil)
	for i, eq := range o.Free {
		r.SetVec(i, v[eq])
	}
	return r
}

// Expand returns the full vector with zero fixed components
func (o *EssentialBcs) Expand(r mat.Vector, ny int) (v []float64) {
	v = make([]float64, ny)
	for i, eq := range o.Free {
		v[eq] = r.AtVec(i)
	}
	return
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/klplate/ele"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Deflection computes w^h @ x
func (o *Domain) Deflection(x []float64) (w float64, err error) {
	y := o.Deflections()
	if y == nil {
		return 0, chk.Err("cannot compute deflection: there is no solution")
	}
	e, fe, err := o.sample(x)
	if err != nil {
		return
	}
	for a, I := range o.Patch.Mnpc(e) {
		w += fe.N[a] * y[I]
	}
	return
}

// Moments computes the stress resultants @ x (in the local system, if any) using a
// copy of the plate integrand in recovery mode
func (o *Domain) Moments(x []float64) (m []float64, err error) {
	y := o.Deflections()
	if y == nil {
		return nil, chk.Err("cannot compute stress resultants: there is no solution")
	}
	e, fe, err := o.sample(x)
	if err != nil {
		return
	}
	p := o.Plate.Clone()
	p.SetMode(ele.Recovery)
	p.Primsol.Set(y)
	return p.EvalSol(fe, x, o.Patch.Mnpc(e))
}

// Station holds results @ one point
type Station struct {
	X []float64 // coordinates
	W float64   // deflection
	M []float64 // stress resultants
}

// Stations computes results @ npts equally spaced points from xa to xb
func (o *Domain) Stations(xa, xb []float64, npts int) (res []*Station, err error) {
	if npts < 2 || len(xa) != len(xb) {
		return nil, chk.Err("stations need at least 2 points and end points of equal dimension")
	}
	ndim := len(xa)
	coords := make([][]float64, ndim)
	for i := 0; i < ndim; i++ {
		coords[i] = utl.LinSpace(xa[i], xb[i], npts)
	}
	res = make([]*Station, npts)
	for k := 0; k < npts; k++ {
		s := &Station{X: make([]float64, ndim)}
		for i := 0; i < ndim; i++ {
			s.X[i] = coords[i][k]
		}
		if s.W, err = o.Deflection(s.X); err != nil {
			return
		}
		if s.M, err = o.Moments(s.X); err != nil {
			return
		}
		res[k] = s
	}
	return
}

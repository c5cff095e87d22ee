// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
)

// IntPoint holds the coordinates and weight (including |J|) of one integration point
type IntPoint struct {
	X []float64 // physical coordinates
	W float64   // weight times determinant of Jacobian
}

// GaussLegendre returns n Gauss-Legendre locations (ascending) and weights over [min, max]
func GaussLegendre(n int, min, max float64) (x, w []float64) {
	x = make([]float64, n)
	wq := make([]float64, n)
	quad.Legendre{}.FixedLocations(x, wq, min, max)
	inds := make([]int, n)
	floats.Argsort(x, inds)
	w = make([]float64, n)
	for i, k := range inds {
		w[i] = wq[k]
	}
	return
}

// IntPoints returns the n^ndim Gauss points of element e. The x-index runs fastest
func (o *Patch) IntPoints(e, n int) (ips []IntPoint) {
	lims := o.Bounds(e)
	xs, wx := GaussLegendre(n, lims[0], lims[1])
	if o.Ndim == 1 {
		ips = make([]IntPoint, n)
		for q := 0; q < n; q++ {
			ips[q] = IntPoint{X: []float64{xs[q]}, W: wx[q]}
		}
		return
	}
	ys, wy := GaussLegendre(n, lims[2], lims[3])
	ips = make([]IntPoint, 0, n*n)
	for qy := 0; qy < n; qy++ {
		for qx := 0; qx < n; qx++ {
			ips = append(ips, IntPoint{X: []float64{xs[qx], ys[qy]}, W: wx[qx] * wy[qy]})
		}
	}
	return
}

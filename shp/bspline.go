// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements spline basis functions providing second derivatives for plate elements
package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Basis1d implements univariate B-spline basis functions over an open knot vector
//
//   U = {0,...,0, u_1,...,u_{nel-1}, L,...,L}   (p+1 repeated end knots)
//
// With a single element the functions are the Bernstein polynomials of degree p
type Basis1d struct {
	P     int       // degree
	Nel   int       // number of elements (non-zero knot spans)
	Knots []float64 // knot vector
}

// NewUniform returns a basis of degree p with nel equal spans over [0, length]
func NewUniform(p, nel int, length float64) (o *Basis1d, err error) {
	if p < 1 {
		return nil, chk.Err("degree of B-spline must be at least 1. p = %d is invalid", p)
	}
	if nel < 1 {
		return nil, chk.Err("number of elements must be at least 1. nel = %d is invalid", nel)
	}
	if length <= 0 {
		return nil, chk.Err("length must be positive. L = %g is invalid", length)
	}
	o = &Basis1d{P: p, Nel: nel}
	o.Knots = make([]float64, nel+2*p+1)
	for i := 0; i < nel; i++ {
		o.Knots[p+i] = float64(i) * length / float64(nel)
	}
	for i := p + nel; i < len(o.Knots); i++ {
		o.Knots[i] = length
	}
	return
}

// Ncp returns the number of control points (basis functions)
func (o *Basis1d) Ncp() int {
	return o.Nel + o.P
}

// Span returns the knot span index of element e
func (o *Basis1d) Span(e int) int {
	return o.P + e
}

// Bounds returns the limits of element e
func (o *Basis1d) Bounds(e int) (umin, umax float64) {
	return o.Knots[o.P+e], o.Knots[o.P+e+1]
}

// Element returns the element containing u; the last element includes the end knot
func (o *Basis1d) Element(u float64) int {
	return o.FindSpan(u) - o.P
}

// FindSpan returns the knot span index of u (NURBS book, algorithm A2.1)
func (o *Basis1d) FindSpan(u float64) int {
	n := o.Ncp() - 1
	if u >= o.Knots[n+1] {
		return n
	}
	if u <= o.Knots[o.P] {
		return o.P
	}
	low, high := o.P, n+1
	mid := (low + high) / 2
	for u < o.Knots[mid] || u >= o.Knots[mid+1] {
		if u < o.Knots[mid] {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}
	return mid
}

// Greville returns the Greville abscissae: the "nodes" of control points
func (o *Basis1d) Greville() (g []float64) {
	g = make([]float64, o.Ncp())
	for i := range g {
		for k := 1; k <= o.P; k++ {
			g[i] += o.Knots[i+k]
		}
		g[i] /= float64(o.P)
	}
	return
}

// Ders computes the non-zero basis functions and their derivatives up to order n
// (NURBS book, algorithm A2.3)
//  Input:
//   span -- knot span index
//   u    -- coordinate
//   n    -- highest derivative order
//  Output:
//   ders -- [n+1][p+1] ders[k][j] is the k-th derivative of N_{span-p+j}; orders > p are zero
func (o *Basis1d) Ders(span int, u float64, n int) (ders [][]float64) {
	p := o.P
	U := o.Knots
	ders = utl.Alloc(n+1, p+1)
	nd := n
	if nd > p {
		nd = p
	}

	// basis functions and knot differences
	ndu := utl.Alloc(p+1, p+1)
	left := make([]float64, p+1)
	right := make([]float64, p+1)
	ndu[0][0] = 1
	for j := 1; j <= p; j++ {
		left[j] = u - U[span+1-j]
		right[j] = U[span+j] - u
		saved := 0.0
		for r := 0; r < j; r++ {
			ndu[j][r] = right[r+1] + left[j-r]
			temp := ndu[r][j-1] / ndu[j][r]
			ndu[r][j] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		ndu[j][j] = saved
	}
	for j := 0; j <= p; j++ {
		ders[0][j] = ndu[j][p]
	}

	// derivatives
	a := utl.Alloc(2, p+1)
	for r := 0; r <= p; r++ {
		s1, s2 := 0, 1
		a[0][0] = 1
		for k := 1; k <= nd; k++ {
			d := 0.0
			rk, pk := r-k, p-k
			if r >= k {
				a[s2][0] = a[s1][0] / ndu[pk+1][rk]
				d = a[s2][0] * ndu[rk][pk]
			}
			j1, j2 := 1, k-1
			if rk < -1 {
				j1 = -rk
			}
			if r-1 > pk {
				j2 = p - r
			}
			for j := j1; j <= j2; j++ {
				a[s2][j] = (a[s1][j] - a[s1][j-1]) / ndu[pk+1][rk+j]
				d += a[s2][j] * ndu[rk+j][pk]
			}
			if r <= pk {
				a[s2][k] = -a[s1][k-1] / ndu[pk+1][r]
				d += a[s2][k] * ndu[r][pk]
			}
			ders[k][r] = d
			s1, s2 = s2, s1
		}
	}

	// multiply by the correct factors
	fac := float64(p)
	for k := 1; k <= nd; k++ {
		for j := 0; j <= p; j++ {
			ders[k][j] *= fac
		}
		fac *= float64(p - k)
	}
	return
}

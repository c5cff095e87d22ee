// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"github.com/cpmech/klplate/ele"

	"github.com/cpmech/gosl/chk"
)

// Patch implements a tensor-product spline patch over a rectangle (or a line)
// with the identity geometry map; i.e. the parametric and physical coordinates coincide
//
//   local node a = ay (p+1) + ax   ⇒   global node (ey+ay) ncpx + (ex+ax)
//   element    e = ey nelx + ex
//
type Patch struct {
	Ndim  int        // space dimension: 1 or 2
	Bases []*Basis1d // [ndim] univariate bases
}

// NewPatch returns a patch of degree p with nel[i] elements over size[i] along each direction
func NewPatch(p int, nel []int, size []float64) (o *Patch, err error) {
	ndim := len(nel)
	if ndim < 1 || ndim > 2 || len(size) != ndim {
		return nil, chk.Err("patch needs 1 or 2 directions with sizes. len(nel) = %d, len(size) = %d", len(nel), len(size))
	}
	o = &Patch{Ndim: ndim, Bases: make([]*Basis1d, ndim)}
	for i := 0; i < ndim; i++ {
		o.Bases[i], err = NewUniform(p, nel[i], size[i])
		if err != nil {
			return nil, err
		}
	}
	return
}

// Degree returns the polynomial degree
func (o *Patch) Degree() int { return o.Bases[0].P }

// Nel returns the number of elements
func (o *Patch) Nel() (n int) {
	n = 1
	for _, b := range o.Bases {
		n *= b.Nel
	}
	return
}

// Nnod returns the number of nodes (control points)
func (o *Patch) Nnod() (n int) {
	n = 1
	for _, b := range o.Bases {
		n *= b.Ncp()
	}
	return
}

// Nen returns the number of nodes per element
func (o *Patch) Nen() (n int) {
	n = 1
	for _, b := range o.Bases {
		n *= b.P + 1
	}
	return
}

// NodeIndex returns the node number of control point with indices ijk
func (o *Patch) NodeIndex(ijk ...int) int {
	if o.Ndim == 1 {
		return ijk[0]
	}
	return ijk[1]*o.Bases[0].Ncp() + ijk[0]
}

// NodeIJ returns the control point indices of node n
func (o *Patch) NodeIJ(n int) (ij []int) {
	if o.Ndim == 1 {
		return []int{n}
	}
	ncpx := o.Bases[0].Ncp()
	return []int{n % ncpx, n / ncpx}
}

// elemIJ returns the per-direction indices of element e
func (o *Patch) elemIJ(e int) (ij []int) {
	if o.Ndim == 1 {
		return []int{e}
	}
	nelx := o.Bases[0].Nel
	return []int{e % nelx, e / nelx}
}

// Mnpc returns the nodes of element e
func (o *Patch) Mnpc(e int) (mnpc []int) {
	ij := o.elemIJ(e)
	p := o.Degree()
	if o.Ndim == 1 {
		mnpc = make([]int, p+1)
		for a := 0; a <= p; a++ {
			mnpc[a] = ij[0] + a
		}
		return
	}
	ncpx := o.Bases[0].Ncp()
	mnpc = make([]int, 0, (p+1)*(p+1))
	for ay := 0; ay <= p; ay++ {
		for ax := 0; ax <= p; ax++ {
			mnpc = append(mnpc, (ij[1]+ay)*ncpx+ij[0]+ax)
		}
	}
	return
}

// Bounds returns the limits of element e: xmin, xmax [, ymin, ymax]
func (o *Patch) Bounds(e int) (lims []float64) {
	for i, k := range o.elemIJ(e) {
		umin, umax := o.Bases[i].Bounds(k)
		lims = append(lims, umin, umax)
	}
	return
}

// Locate returns the element containing x. Points outside the patch are
// assigned to the nearest boundary element
func (o *Patch) Locate(x []float64) (e int) {
	ij := make([]int, o.Ndim)
	for i, b := range o.Bases {
		ij[i] = b.Element(x[i])
	}
	if o.Ndim == 1 {
		return ij[0]
	}
	return ij[1]*o.Bases[0].Nel + ij[0]
}

// Greville returns the coordinates of node n (Greville abscissae)
func (o *Patch) Greville(n int) (x []float64) {
	ij := o.NodeIJ(n)
	x = make([]float64, o.Ndim)
	for i, b := range o.Bases {
		x[i] = b.Greville()[ij[i]]
	}
	return
}

// CalcAt computes N and D2NdX2 of element e @ x. fe must have been allocated with
// ele.NewSample(o.Nen(), o.Ndim); Iip and DetJxW are not modified
func (o *Patch) CalcAt(fe *ele.Sample, e int, x []float64) (err error) {
	nen, n1, n2 := fe.Dims()
	if nen != o.Nen() || n1 != o.Ndim || n2 != o.Ndim || len(fe.N) != nen {
		return ele.Errf(ele.DimensionMismatch, "Patch.CalcAt", "sample has %d nodes and %dx%d derivatives; patch requires %d and %dx%d", nen, n1, n2, o.Nen(), o.Ndim, o.Ndim)
	}
	if len(x) < o.Ndim {
		return ele.Errf(ele.DimensionMismatch, "Patch.CalcAt", "point has %d coordinates; %d are required", len(x), o.Ndim)
	}
	ij := o.elemIJ(e)
	bx := o.Bases[0]
	dx := bx.Ders(bx.Span(ij[0]), x[0], 2)
	if o.Ndim == 1 {
		for a := 0; a < nen; a++ {
			fe.N[a] = dx[0][a]
			fe.D2NdX2[a][0][0] = dx[2][a]
		}
		return
	}
	by := o.Bases[1]
	dy := by.Ders(by.Span(ij[1]), x[1], 2)
	p := o.Degree()
	for ay := 0; ay <= p; ay++ {
		for ax := 0; ax <= p; ax++ {
			a := ay*(p+1) + ax
			fe.N[a] = dx[0][ax] * dy[0][ay]
			fe.D2NdX2[a][0][0] = dx[2][ax] * dy[0][ay]
			fe.D2NdX2[a][1][1] = dx[0][ax] * dy[2][ay]
			fe.D2NdX2[a][0][1] = dx[1][ax] * dy[1][ay]
			fe.D2NdX2[a][1][0] = fe.D2NdX2[a][0][1]
		}
	}
	return
}

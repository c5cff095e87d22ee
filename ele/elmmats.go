// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/utl"

// ElmMats is the local integral of one element: element matrices and vectors
type ElmMats struct {
	A       [][][]float64 // [nA][nen][nen] element matrices; e.g. stiffness, mass
	B       [][]float64   // [nB][nen] element vectors; e.g. load
	RhsOnly bool          // only right-hand-side vectors are assembled
	WithLHS bool          // left-hand-side matrices are assembled
}

// NewElmMats returns an empty local integral assembling both sides
func NewElmMats() *ElmMats {
	return &ElmMats{WithLHS: true}
}

// Resize sets the number of matrices and vectors. Call Redim afterwards
func (o *ElmMats) Resize(nA, nB int) {
	o.A = make([][][]float64, nA)
	o.B = make([][]float64, nB)
}

// Redim allocates all matrices and vectors for nen nodes (with zeros)
func (o *ElmMats) Redim(nen int) {
	for i := range o.A {
		o.A[i] = utl.Alloc(nen, nen)
	}
	for i := range o.B {
		o.B[i] = make([]float64, nen)
	}
}

// Nmats returns the number of matrices
func (o *ElmMats) Nmats() int { return len(o.A) }

// Nvecs returns the number of vectors
func (o *ElmMats) Nvecs() int { return len(o.B) }

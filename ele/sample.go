// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/utl"

// Sample holds the basis function data of one element at one integration point.
// It is filled by the basis provider and read by integrands.
type Sample struct {
	Iip    int           // running (global) index of integration point
	N      []float64     // [nen] basis function values
	D2NdX2 [][][]float64 // [nen][ndim][ndim] second derivatives of basis functions
	DetJxW float64       // Jacobian determinant times integration weight
}

// NewSample allocates a sample for nen nodes in ndim dimensions
func NewSample(nen, ndim int) *Sample {
	return &Sample{
		N:      make([]float64, nen),
		D2NdX2: utl.Deep3alloc(nen, ndim, ndim),
	}
}

// Dims returns the dimensions of the second derivatives array
func (o *Sample) Dims() (nen, n1, n2 int) {
	return Dims3(o.D2NdX2)
}

// Dims3 returns the dimensions of a rank-3 array; zero-length leading dimensions give zeros
func Dims3(a [][][]float64) (n0, n1, n2 int) {
	n0 = len(a)
	if n0 == 0 {
		return
	}
	n1 = len(a[0])
	if n1 == 0 {
		return
	}
	n2 = len(a[0][0])
	return
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plate

import (
	"github.com/cpmech/klplate/ele"

	"github.com/cpmech/gosl/utl"
)

// Bmatrix computes the curvature-displacement matrix from second derivatives of basis functions
//
//         ┌   ∂²/∂x²   ┐
//   B  =  │   ∂²/∂y²   │ [N]       1D:  B = ∂²/∂x² [N]
//         └ 2 ∂²/∂x∂y  ┘
//
//  Input:
//   d2NdX2 -- [nen][ndim][ndim] second derivatives
//  Output:
//   B -- [nstrc][nen]
func (o *Plate) Bmatrix(d2NdX2 [][][]float64) (B [][]float64, err error) {
	nen, n1, n2 := ele.Dims3(d2NdX2)
	if n1 != o.Ndim || n2 != o.Ndim {
		return nil, ele.Errf(ele.DimensionMismatch, "Plate.Bmatrix", "invalid dimension on d2NdX2, %dx%dx%d", nen, n1, n2)
	}
	B = utl.Alloc(o.Nstrc(), nen)
	for i := 0; i < nen; i++ {
		if len(d2NdX2[i]) != o.Ndim {
			return nil, ele.Errf(ele.DimensionMismatch, "Plate.Bmatrix", "d2NdX2 of node %d is not %dx%d", i, o.Ndim, o.Ndim)
		}
		for k := 0; k < o.Ndim; k++ {
			if len(d2NdX2[i][k]) != o.Ndim {
				return nil, ele.Errf(ele.DimensionMismatch, "Plate.Bmatrix", "row %d of d2NdX2 of node %d has %d columns; %d are required", k, i, len(d2NdX2[i][k]), o.Ndim)
			}
		}
		B[0][i] = d2NdX2[i][0][0]
		if o.Ndim == 2 {
			B[1][i] = d2NdX2[i][1][1]
			B[2][i] = d2NdX2[i][0][1] * 2.0
		}
	}
	return
}

// Curvature computes κ = B eV
func Curvature(B [][]float64, eV []float64) (κ []float64) {
	κ = make([]float64, len(B))
	for i := range B {
		for j, v := range eV {
			κ[i] += B[i][j] * v
		}
	}
	return
}

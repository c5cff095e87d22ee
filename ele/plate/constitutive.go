// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plate

import (
	"github.com/cpmech/klplate/ele"

	"github.com/cpmech/gosl/utl"
)

// Cmatrix computes the bending constitutive matrix @ x
//
//   forward:  C = t³/12 D        inverse:  C = 12/t³ D⁻¹
//
// where D is the plane-stress tensor of the material model
func (o *Plate) Cmatrix(x []float64, inverse bool) (C [][]float64, err error) {
	if o.Mdl == nil {
		return nil, ele.Errf(ele.MissingData, "Plate.Cmatrix", "no material model")
	}
	n := o.Nstrc()
	C = utl.Alloc(n, n)
	if inverse {
		err = o.Mdl.CalcDinv(C, x)
	} else {
		err = o.Mdl.CalcD(C, x)
	}
	if err != nil {
		return nil, ele.Wrap(err, ele.MaterialEvaluationFailure, "Plate.Cmatrix", "material evaluation failed @ x = %v", x)
	}
	factor := o.Thickness * o.Thickness * o.Thickness / 12.0
	if inverse {
		factor = 1.0 / factor
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			C[i][j] *= factor
		}
	}
	return
}

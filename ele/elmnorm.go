// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// ElmNorm accumulates norm quantities of one element over its integration points
type ElmNorm struct {
	Vals []float64   // accumulated slots (fixed positions)
	Vec  [][]float64 // element primary solution vectors; Vec[0] holds nodal deflections
	Psol [][]float64 // projected secondary solutions; each [nen*ncmp] with components of node a at a*ncmp+j
}

// NewElmNorm allocates an accumulator with nslots zeroed slots
func NewElmNorm(nslots int) *ElmNorm {
	return &ElmNorm{Vals: make([]float64, nslots)}
}

// Reset zeroes all slots
func (o *ElmNorm) Reset() {
	for i := range o.Vals {
		o.Vals[i] = 0
	}
}

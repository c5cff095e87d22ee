// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Solution holds primary solution vectors @ nodes (e.g. the deflections of the last solve)
type Solution struct {
	T    float64     // current time
	Vecs [][]float64 // solution vectors
}

// Resize sets the number of solution vectors; existing vectors are kept
func (o *Solution) Resize(n int) {
	if n <= len(o.Vecs) {
		o.Vecs = o.Vecs[:n]
		return
	}
	o.Vecs = append(o.Vecs, make([][]float64, n-len(o.Vecs))...)
}

// Clear removes all vectors
func (o *Solution) Clear() {
	o.Vecs = nil
}

// Empty tells whether there is no (non-empty) first solution vector
func (o *Solution) Empty() bool {
	return len(o.Vecs) == 0 || len(o.Vecs[0]) == 0
}

// Set sets the first solution vector
func (o *Solution) Set(y []float64) {
	if len(o.Vecs) == 0 {
		o.Vecs = make([][]float64, 1)
	}
	o.Vecs[0] = y
}

// Gather extracts element values from the first solution vector.
//  Input:
//   mnpc  -- element nodes (0-based global node numbers)
//   nndof -- number of dofs per node
//  Output:
//   eV   -- [len(mnpc)*nndof] element values
//   nbad -- number of node numbers out of range (their values are left zero)
func (o *Solution) Gather(mnpc []int, nndof int) (eV []float64, nbad int) {
	eV = make([]float64, len(mnpc)*nndof)
	if len(o.Vecs) == 0 {
		return eV, len(mnpc)
	}
	y := o.Vecs[0]
	for a, n := range mnpc {
		if n < 0 || (n+1)*nndof > len(y) {
			nbad++
			continue
		}
		for k := 0; k < nndof; k++ {
			eV[a*nndof+k] = y[n*nndof+k]
		}
	}
	return
}

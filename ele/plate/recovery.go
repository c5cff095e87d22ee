// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plate

import (
	"github.com/cpmech/klplate/ele"

	"github.com/cpmech/gosl/io"
)

// EvalSol computes the stress resultants @ x using the element displacements gathered
// from the stored primary solution through the element nodes mnpc
func (o *Plate) EvalSol(fe *ele.Sample, x []float64, mnpc []int) (s []float64, err error) {
	if o.Primsol.Empty() {
		return nil, ele.Errf(ele.MissingData, "Plate.EvalSol", "no primary solution")
	}
	eV, nbad := o.Primsol.Gather(mnpc, 1)
	if nbad > 0 {
		return nil, ele.Errf(ele.MissingData, "Plate.EvalSol", "detected %d node numbers out of range", nbad)
	}
	return o.EvalSolVec(eV, fe.D2NdX2, x, true)
}

// EvalSolVec computes the stress resultants m = -C B eV @ x.
//  Input:
//   eV      -- [nen] element deflections
//   d2NdX2  -- [nen][ndim][ndim] second derivatives of basis functions
//   toLocal -- transform to the local coordinate system (if any)
//  Output:
//   s -- [nstrc] {m_xx, m_yy, m_xy} (or {m_xx} in 1D)
func (o *Plate) EvalSolVec(eV []float64, d2NdX2 [][][]float64, x []float64, toLocal bool) (s []float64, err error) {
	if len(eV) == 0 {
		return nil, ele.Errf(ele.MissingData, "Plate.EvalSol", "no displacement vector")
	}
	if len(eV) != len(d2NdX2) {
		nen, n1, n2 := ele.Dims3(d2NdX2)
		return nil, ele.Errf(ele.DimensionMismatch, "Plate.EvalSol", "invalid displacement vector. size(eV) = %d, size(d2NdX2) = %d,%d", len(eV), nen, n1*n2)
	}
	B, err := o.Bmatrix(d2NdX2)
	if err != nil {
		return
	}
	C, err := o.Cmatrix(x, false)
	if err != nil {
		return
	}
	κ := Curvature(B, eV)
	s = make([]float64, len(κ))
	for i := range C {
		for j := range κ {
			s[i] -= C[i][j] * κ[j]
		}
	}
	if toLocal && o.LocSys != nil {
		transform(s, o.LocSys.Tmat(x))
	}
	return
}

// NoFields returns the number of primary (fld < 2) or secondary fields
func (o *Plate) NoFields(fld int) int {
	if fld < 2 {
		return 1
	}
	return o.Nstrc()
}

// Field1Name returns the name of the primary field
func (o *Plate) Field1Name(i int, prefix string) string {
	if prefix == "" {
		return "w"
	}
	return prefix + " w"
}

// Field2Name returns the name of secondary field i
func (o *Plate) Field2Name(i int, prefix string) (name string, err error) {
	if i < 0 || i >= o.Nstrc() {
		return "", ele.Errf(ele.MissingData, "Plate.Field2Name", "secondary field index %d is out of range [0, %d)", i, o.Nstrc())
	}
	name = field2names[i]
	if prefix != "" {
		name = io.Sf("%s %s", prefix, name)
	}
	return
}

// field2names holds the names of the stress resultants
var field2names = []string{"m_xx", "m_yy", "m_xy"}

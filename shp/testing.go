// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/klplate/ele"

	"github.com/cpmech/gosl/io"
)

// CheckPartition checks that basis functions of element e sum up to 1.0 @ x and
// that their second derivatives sum up to zero
func CheckPartition(tst *testing.T, o *Patch, e int, x []float64, tol float64, verbose bool) {
	fe := ele.NewSample(o.Nen(), o.Ndim)
	if err := o.CalcAt(fe, e, x); err != nil {
		tst.Errorf("CalcAt failed: %v\n", err)
		return
	}
	sumN := 0.0
	sumD := make([]float64, o.Ndim*o.Ndim)
	for a := range fe.N {
		sumN += fe.N[a]
		for i := 0; i < o.Ndim; i++ {
			for j := 0; j < o.Ndim; j++ {
				sumD[i*o.Ndim+j] += fe.D2NdX2[a][i][j]
			}
		}
	}
	if verbose {
		io.Pf("e = %d x = %v : ΣN = %v ΣD2N = %v\n", e, x, sumN, sumD)
	}
	errS := math.Abs(sumN - 1.0)
	for _, v := range sumD {
		errS += math.Abs(v)
	}
	if errS > tol {
		tst.Errorf("partition of unity failed @ x = %v with err = %g\n", x, errS)
	}
}

// CheckD2NdX2 compares second derivatives of element e @ x with central differences
func CheckD2NdX2(tst *testing.T, o *Patch, e int, x []float64, h, tol float64, verbose bool) {
	nen := o.Nen()
	fe := ele.NewSample(nen, o.Ndim)
	tmp := ele.NewSample(nen, o.Ndim)
	if err := o.CalcAt(fe, e, x); err != nil {
		tst.Errorf("CalcAt failed: %v\n", err)
		return
	}
	N := func(dx []float64) []float64 {
		y := make([]float64, o.Ndim)
		for i := range y {
			y[i] = x[i] + dx[i]
		}
		o.CalcAt(tmp, e, y)
		return append([]float64(nil), tmp.N...)
	}
	shift := func(i int, s float64) []float64 {
		dx := make([]float64, o.Ndim)
		dx[i] = s
		return dx
	}
	maxErr := 0.0
	for i := 0; i < o.Ndim; i++ {
		Np, Nm := N(shift(i, h)), N(shift(i, -h))
		for a := 0; a < nen; a++ {
			num := (Np[a] - 2.0*fe.N[a] + Nm[a]) / (h * h)
			maxErr = math.Max(maxErr, math.Abs(num-fe.D2NdX2[a][i][i]))
		}
	}
	if o.Ndim == 2 {
		Npp, Npm := N([]float64{h, h}), N([]float64{h, -h})
		Nmp, Nmm := N([]float64{-h, h}), N([]float64{-h, -h})
		for a := 0; a < nen; a++ {
			num := (Npp[a] - Npm[a] - Nmp[a] + Nmm[a]) / (4.0 * h * h)
			maxErr = math.Max(maxErr, math.Abs(num-fe.D2NdX2[a][0][1]))
		}
	}
	if verbose {
		io.Pforan("e = %d x = %v : max error of D2NdX2 = %g\n", e, x, maxErr)
	}
	if maxErr > tol {
		tst.Errorf("second derivatives failed @ x = %v with err = %g\n", x, maxErr)
	}
}

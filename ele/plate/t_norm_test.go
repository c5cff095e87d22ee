// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plate

import (
	"math"
	"testing"

	"github.com/cpmech/klplate/ele"
	"github.com/cpmech/klplate/mdl/solid"
	"github.com/cpmech/klplate/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// constMoments is an exact solution with constant stress resultants
type constMoments []float64

func (o constMoments) Moments(x []float64) []float64 { return o }

// integrateNorm runs the norm integrand over the Gauss points of element e
func integrateNorm(tst *testing.T, n *Norm, en *ele.ElmNorm, pch *shp.Patch, e, ngauss int) {
	fe := ele.NewSample(pch.Nen(), pch.Ndim)
	for _, ip := range pch.IntPoints(e, ngauss) {
		pch.CalcAt(fe, e, ip.X)
		fe.DetJxW = ip.W
		if err := n.EvalInt(en, fe, ip.X); err != nil {
			tst.Fatalf("EvalInt failed: %v\n", err)
		}
	}
	if err := n.FinalizeElement(en); err != nil {
		tst.Fatalf("FinalizeElement failed: %v\n", err)
	}
}

func Test_norm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("norm01. slots and names")

	o := newTestPlate(tst, 0, 0)
	n := o.NewNorm(nil, 2)
	chk.Int(tst, "groups", n.NoFields(0), 3)
	chk.Int(tst, "group 1", n.NoFields(1), 2)
	chk.Int(tst, "group 2", n.NoFields(2), 4)
	chk.Int(tst, "slots", len(n.NewElmNorm().Vals), 10)

	n = o.NewNorm(constMoments{1, 0, 0}, 2)
	chk.Int(tst, "group 1 (anasol)", n.NoFields(1), 4)
	chk.Int(tst, "group 2 (anasol)", n.NoFields(2), 6)
	chk.Int(tst, "slots (anasol)", n.Nslots(), 16)

	chk.String(tst, n.Name(1, 1, ""), "a(w^h,w^h)^0.5")
	chk.String(tst, n.Name(1, 4, ""), "a(e,e)^0.5, e=w-w^h")
	chk.String(tst, n.Name(2, 6, "plate"), "plate effectivity index")
	chk.String(tst, n.Name(1, 5, ""), "norm_1.5")

	// boundary terms go to the external energy
	gNorm := [][]float64{{1, 2, 3, 4}}
	n.AddBoundaryTerms(gNorm, 0.5)
	chk.Array(tst, "gNorm", 1e-17, gNorm[0], []float64{1, 2.5, 3, 4})
	n.AddBoundaryTerms(nil, 0.5)

	// too few slots
	en := ele.NewElmNorm(3)
	en.Vec = [][]float64{eVxx}
	err := n.EvalInt(en, ele.NewSample(9, 2), []float64{0, 0})
	if !ele.IsKind(err, ele.DimensionMismatch) {
		tst.Errorf("EvalInt with few slots should fail with DimensionMismatch. err = %v\n", err)
	}
	err = n.EvalBou(en, ele.NewSample(9, 2), []float64{0, 0}, []float64{1, 0})
	if !ele.IsKind(err, ele.UnsupportedOperation) {
		tst.Errorf("EvalBou should fail with UnsupportedOperation. err = %v\n", err)
	}
}

func Test_norm02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("norm02. energy norms and effectivity")

	o := newTestPlate(tst, 0, 1)
	pch, _ := shp.NewPatch(2, []int{1, 1}, []float64{1, 1})
	c := c11()

	// exact: w = x²; finite element: w^h = x²/2
	m := constMoments{-2 * c, -0.6 * c, 0}
	eV := make([]float64, 9)
	for i, v := range eVxx {
		eV[i] = v / 2
	}

	// recovered field equals the exact one
	psol := make([]float64, 27)
	for a := 0; a < 9; a++ {
		copy(psol[a*3:], m)
	}

	n := o.NewNorm(m, 2)
	en := n.NewElmNorm()
	en.Vec = [][]float64{eV}
	en.Psol = [][]float64{psol, nil}
	integrateNorm(tst, n, en, pch, 0, 3)
	io.Pforan("vals = %v\n", en.Vals)

	mm := 4*c*c + 0.36*c*c
	chk.Float64(tst, "a(w^h,w^h)", 1e-14, en.Vals[0], c)
	chk.Float64(tst, "(p,w^h)", 1e-14, en.Vals[1], 1.0/6.0)
	chk.Float64(tst, "a(w,w)", 1e-14, en.Vals[2], 4*c)
	chk.Float64(tst, "a(e,e)", 1e-14, en.Vals[3], c)
	chk.Float64(tst, "a(w^r,w^r)", 1e-14, en.Vals[4], 4*c)
	chk.Float64(tst, "a(w^r-w^h)", 1e-14, en.Vals[5], c)
	chk.Float64(tst, "(w^r,w^r)", 1e-14, en.Vals[6], mm)
	chk.Float64(tst, "(w^r-w^h)", 1e-14, en.Vals[7], mm/4)
	chk.Float64(tst, "a(w-w^r)", 1e-14, en.Vals[8], 0)
	chk.Float64(tst, "effectivity", 1e-12, en.Vals[9], 1)

	// the empty projection keeps its slots
	chk.Array(tst, "second block", 1e-17, en.Vals[10:16], make([]float64, 6))
}

func Test_norm03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("norm03. zero true and recovered errors")

	o := newTestPlate(tst, 0, 0)
	pch, _ := shp.NewPatch(2, []int{1, 1}, []float64{1, 1})
	c := c11()

	// w = w^h = x² and the recovered field equals the finite element resultants
	mh := constMoments{-2 * c, -0.6 * c, 0}
	psol := make([]float64, 27)
	for a := 0; a < 9; a++ {
		copy(psol[a*3:], mh)
	}
	n := o.NewNorm(mh, 1)
	en := n.NewElmNorm()
	en.Vec = [][]float64{eVxx}
	en.Psol = [][]float64{psol}
	integrateNorm(tst, n, en, pch, 0, 2)
	io.Pforan("vals = %v\n", en.Vals)
	chk.Float64(tst, "a(w^h,w^h)", 1e-14, en.Vals[0], 4*c)
	chk.Float64(tst, "(p,w^h)", 1e-17, en.Vals[1], 0)
	chk.Float64(tst, "a(w,w)", 1e-14, en.Vals[2], 4*c)
	chk.Float64(tst, "a(e,e)", 1e-14, en.Vals[3], 0)
	chk.Float64(tst, "a(w^r,w^r)", 1e-14, en.Vals[4], 4*c)
	chk.Float64(tst, "a(w^r-w^h)", 1e-14, en.Vals[5], 0)
	chk.Float64(tst, "(w^r-w^h)", 1e-14, en.Vals[7], 0)
	chk.Float64(tst, "a(w-w^r)", 1e-14, en.Vals[8], 0)
	if !math.IsNaN(en.Vals[9]) {
		tst.Errorf("effectivity with zero true error should be NaN. index = %v\n", en.Vals[9])
	}

	// wrong projected vector
	en.Reset()
	en.Psol = [][]float64{{1, 2, 3}}
	fe := ele.NewSample(9, 2)
	pch.CalcAt(fe, 0, []float64{0.5, 0.5})
	err := n.EvalInt(en, fe, []float64{0.5, 0.5})
	if !ele.IsKind(err, ele.DimensionMismatch) {
		tst.Errorf("EvalInt with bad projection should fail with DimensionMismatch. err = %v\n", err)
	}
}

func Test_norm04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("norm04. effectivity index")

	chk.Float64(tst, "index", 1e-15, EffectivityIndex(4, 1, 0), 2)
	chk.Float64(tst, "index with a(w,w)", 1e-15, EffectivityIndex(4, 1, 4), 2)
	for _, v := range [][]float64{
		{1, 0, 0},     // zero true error
		{1, -1e-3, 1}, // negative true error
		{-1, 1, 1},    // negative recovered error
		{1, 1e-31, 1}, // round-off true error
	} {
		if !math.IsNaN(EffectivityIndex(v[0], v[1], v[2])) {
			tst.Errorf("effectivity with aer=%g, aee=%g, aww=%g should be NaN\n", v[0], v[1], v[2])
		}
	}
}

func Test_norm05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("norm05. analytical solution with wrong number of components")

	o, err := New(1)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	mdl, _ := solid.NewLinElast(1000, 0.3, 0)
	o.SetMaterial(mdl)
	line, _ := shp.NewPatch(2, []int{1}, []float64{1})
	fe := ele.NewSample(3, 1)
	line.CalcAt(fe, 0, []float64{0.5})
	fe.DetJxW = 1

	n := o.NewNorm(constMoments{1, 2, 3}, 0)
	en := n.NewElmNorm()
	en.Vec = [][]float64{{0, 0, 1}}
	err = n.EvalInt(en, fe, []float64{0.5})
	if !ele.IsKind(err, ele.DimensionMismatch) {
		tst.Errorf("EvalInt with 3 exact resultants in 1D should fail with DimensionMismatch. err = %v\n", err)
	}

	// matching number of components
	n = o.NewNorm(constMoments{1}, 0)
	en = n.NewElmNorm()
	en.Vec = [][]float64{{0, 0, 1}}
	if err = n.EvalInt(en, fe, []float64{0.5}); err != nil {
		tst.Errorf("EvalInt failed: %v\n", err)
	}
}

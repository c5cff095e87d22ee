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
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// newTestPlate returns a 2D plate with E=1000, ν=0.3, ρ=rho, t=0.1 and constant pressure p
func newTestPlate(tst *testing.T, rho, p float64) *Plate {
	o, err := New(2)
	if err != nil {
		tst.Fatalf("New failed: %v\n", err)
	}
	mdl, err := solid.NewLinElast(1000, 0.3, rho)
	if err != nil {
		tst.Fatalf("NewLinElast failed: %v\n", err)
	}
	o.SetMaterial(mdl)
	if p != 0 {
		f, err := dbf.New("cte", dbf.Params{&dbf.P{N: "c", V: p}})
		if err != nil {
			tst.Fatalf("dbf.New failed: %v\n", err)
		}
		o.SetPressure(f)
	}
	return o
}

// integrate runs EvalInt over all Gauss points of element e
func integrate(tst *testing.T, o *Plate, elm *ele.ElmMats, pch *shp.Patch, e, ngauss int) {
	fe := ele.NewSample(pch.Nen(), pch.Ndim)
	for q, ip := range pch.IntPoints(e, ngauss) {
		if err := pch.CalcAt(fe, e, ip.X); err != nil {
			tst.Fatalf("CalcAt failed: %v\n", err)
		}
		fe.Iip = e*ngauss*ngauss + q
		fe.DetJxW = ip.W
		if err := o.EvalInt(elm, fe, ip.X); err != nil {
			tst.Fatalf("EvalInt failed: %v\n", err)
		}
	}
}

// c11 returns the bending stiffness D11 of the test plate
func c11() float64 {
	return 1000.0 / (1.0 - 0.09) * 0.001 / 12.0
}

// x² and xy on one biquadratic Bézier element over [0,1]²; the x-index runs fastest
var (
	eVxx = []float64{0, 0, 1, 0, 0, 1, 0, 0, 1}
	eVxy = []float64{0, 0, 0, 0, 0.25, 0.5, 0, 0.5, 1}
)

func Test_plate01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plate01. modes and local integrals")

	_, err := New(3)
	if !ele.IsKind(err, ele.DimensionMismatch) {
		tst.Errorf("New(3) should fail with DimensionMismatch. err = %v\n", err)
		return
	}

	o := newTestPlate(tst, 0, 0)
	if o.Mode() != ele.Static {
		tst.Errorf("default mode should be STATIC\n")
		return
	}
	if err = o.SetThickness(0); err == nil {
		tst.Errorf("zero thickness should fail\n")
		return
	}

	check := func(mode ele.SolutionMode, neumann bool, nA, nB int, caps ele.Caps) {
		o.SetMode(mode)
		elm := o.NewLocalIntegral(9, neumann)
		io.Pforan("%-10v neumann=%-5v nA=%d nB=%d rhsOnly=%v\n", mode, neumann, elm.Nmats(), elm.Nvecs(), elm.RhsOnly)
		chk.Int(tst, io.Sf("%v: nA", mode), elm.Nmats(), nA)
		chk.Int(tst, io.Sf("%v: nB", mode), elm.Nvecs(), nB)
		if o.Caps() != caps {
			tst.Errorf("%v: caps %+v != %+v\n", mode, o.Caps(), caps)
		}
		for _, A := range elm.A {
			chk.Int(tst, "nrows", len(A), 9)
		}
		for _, B := range elm.B {
			chk.Int(tst, "len(B)", len(B), 9)
		}
	}
	check(ele.Static, false, 1, 1, ele.Caps{Stiffness: true, Load: true})
	check(ele.Static, true, 0, 1, ele.Caps{Stiffness: true, Load: true})
	check(ele.Vibration, false, 2, 0, ele.Caps{Stiffness: true, Mass: true})
	check(ele.StiffOnly, false, 1, 0, ele.Caps{Stiffness: true})
	check(ele.RhsOnly, false, 1, 1, ele.Caps{Load: true})
	check(ele.RhsOnly, true, 0, 1, ele.Caps{Load: true})
	check(ele.Recovery, false, 0, 0, ele.Caps{})

	// recovery keeps exactly one solution vector
	chk.Int(tst, "len(primsol)", len(o.Primsol.Vecs), 1)
	o.SetMode(ele.Recovery)
	chk.Int(tst, "len(primsol) again", len(o.Primsol.Vecs), 1)
	o.SetMode(ele.Static)
	chk.Int(tst, "len(primsol) static", len(o.Primsol.Vecs), 0)

	// pure-load request marks the local integral
	elm := o.NewLocalIntegral(9, true)
	if !elm.RhsOnly || elm.WithLHS {
		tst.Errorf("neumann integral should be RHS only\n")
	}

	// registry
	itg, err := ele.New("kirchhoff-love", 1)
	if err != nil {
		tst.Errorf("ele.New failed: %v\n", err)
		return
	}
	chk.Int(tst, "1D nstrc", itg.(*Plate).Nstrc(), 1)
}

func Test_plate02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plate02. curvature operator")

	o := newTestPlate(tst, 0, 0)
	pch, _ := shp.NewPatch(2, []int{1, 1}, []float64{1, 1})
	fe := ele.NewSample(9, 2)
	for _, x := range [][]float64{{0.2, 0.3}, {0.9, 0.5}} {
		pch.CalcAt(fe, 0, x)
		B, err := o.Bmatrix(fe.D2NdX2)
		if err != nil {
			tst.Errorf("Bmatrix failed: %v\n", err)
			return
		}
		chk.Array(tst, "κ(x²)", 1e-13, Curvature(B, eVxx), []float64{2, 0, 0})
		chk.Array(tst, "κ(xy)", 1e-13, Curvature(B, eVxy), []float64{0, 0, 2})
		chk.Array(tst, "κ(1)", 1e-13, Curvature(B, ones(9)), []float64{0, 0, 0})
	}

	// wrong dimensions
	_, err := o.Bmatrix(utl.Deep3alloc(9, 1, 1))
	if !ele.IsKind(err, ele.DimensionMismatch) {
		tst.Errorf("Bmatrix should fail with DimensionMismatch. err = %v\n", err)
		return
	}
	io.Pforan("err = %v\n", err)

	// ragged: second node has a short first row
	_, err = o.Bmatrix([][][]float64{{{1, 0}, {0, 1}}, {{1}, {0, 1}}})
	if !ele.IsKind(err, ele.DimensionMismatch) {
		tst.Errorf("Bmatrix with ragged d2NdX2 should fail with DimensionMismatch. err = %v\n", err)
		return
	}

	// ragged: second node has a single row
	_, err = o.Bmatrix([][][]float64{{{1, 0}, {0, 1}}, {{1, 0}}})
	if !ele.IsKind(err, ele.DimensionMismatch) {
		tst.Errorf("Bmatrix with missing row should fail with DimensionMismatch. err = %v\n", err)
	}
}

func Test_plate03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plate03. constitutive evaluator")

	o := newTestPlate(tst, 0, 0)
	x := []float64{0.5, 0.5}
	C, err := o.Cmatrix(x, false)
	if err != nil {
		tst.Errorf("Cmatrix failed: %v\n", err)
		return
	}
	Cinv, err := o.Cmatrix(x, true)
	if err != nil {
		tst.Errorf("Cmatrix(inverse) failed: %v\n", err)
		return
	}
	chk.Float64(tst, "C11", 1e-15, C[0][0], c11())
	chk.Float64(tst, "C12", 1e-15, C[0][1], 0.3*c11())
	chk.Float64(tst, "C33", 1e-15, C[2][2], 0.35*c11())
	res := utl.Alloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				res[i][j] += C[i][k] * Cinv[k][j]
			}
		}
	}
	chk.Deep2(tst, "C Cinv", 1e-12, res, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})

	// positive energy
	for _, m := range [][]float64{{1, 0, 0}, {-1, 2, 0.5}, {0, 0, -3}} {
		if energyProduct(Cinv, m) <= 0 {
			tst.Errorf("energy of m = %v should be positive\n", m)
		}
	}

	// thickness scaling
	o.SetThickness(0.2)
	C2, _ := o.Cmatrix(x, false)
	chk.Float64(tst, "C11(2t)", 1e-14, C2[0][0], 8.0*c11())

	// missing material
	o.SetMaterial(nil)
	_, err = o.Cmatrix(x, false)
	if !ele.IsKind(err, ele.MissingData) {
		tst.Errorf("Cmatrix without material should fail with MissingData. err = %v\n", err)
	}
	if o.PrintLog() != "KirchhoffLovePlate: thickness = 0.2, gravity = 0\nmaterial: unset\n" {
		tst.Errorf("PrintLog is incorrect:\n%s", o.PrintLog())
	}

	// singular material
	aniso, _ := solid.New("aniso-pstress")
	aniso.Init(dbf.Params{&dbf.P{N: "D11", V: 1}, &dbf.P{N: "D12", V: 1}, &dbf.P{N: "D22", V: 1}, &dbf.P{N: "D33", V: 1}})
	o.SetMaterial(aniso)
	_, err = o.Cmatrix(x, true)
	if !ele.IsKind(err, ele.MaterialEvaluationFailure) {
		tst.Errorf("singular material should fail with MaterialEvaluationFailure. err = %v\n", err)
	}
	io.Pforan("err = %v\n", err)
}

func Test_plate04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plate04. element kernel")

	o := newTestPlate(tst, 0, 1)
	pch, _ := shp.NewPatch(2, []int{1, 1}, []float64{1, 1})
	o.InitIntegration(9)
	elm := o.NewLocalIntegral(9, false)
	integrate(tst, o, elm, pch, 0, 3)
	K, F := elm.A[0], elm.B[0]

	// symmetry
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			chk.Float64(tst, "K symmetry", 1e-15, K[i][j], K[j][i])
		}
	}

	// rigid motions: w = 1, w = x, w = y
	w1 := ones(9)
	wx := []float64{0, 0.5, 1, 0, 0.5, 1, 0, 0.5, 1}
	wy := []float64{0, 0, 0, 0.5, 0.5, 0.5, 1, 1, 1}
	for _, v := range [][]float64{w1, wx, wy} {
		chk.Array(tst, "K v", 1e-14, matvec(K, v), make([]float64, 9))
	}

	// bending energy of w = x²: ∫ κ C κ = 4 C11
	chk.Float64(tst, "eVᵀ K eV", 1e-14, dot(eVxx, matvec(K, eVxx)), 4.0*c11())

	// total load = p × area
	chk.Float64(tst, "ΣF", 1e-14, sumv(F), 1.0)
	chk.Int(tst, "nsamples", len(o.PresSamples()), 9)
	s, ok := o.Sample(4)
	if !ok {
		tst.Errorf("sample 4 should be recorded\n")
		return
	}
	chk.Array(tst, "sample X", 1e-15, s.X[:], []float64{0.5, 0.5, 0})
	chk.Array(tst, "sample V", 1e-15, s.V[:], []float64{0, 0, 1})

	// vibration without density: zero mass
	o.SetMode(ele.Vibration)
	elm = o.NewLocalIntegral(9, false)
	integrate(tst, o, elm, pch, 0, 3)
	chk.Deep2(tst, "M", 1e-17, elm.A[1], utl.Alloc(9, 9))

	// vibration with density: Σ M = ρ t area
	o = newTestPlate(tst, 2, 0)
	o.SetMode(ele.Vibration)
	elm = o.NewLocalIntegral(9, false)
	integrate(tst, o, elm, pch, 0, 3)
	total := 0.0
	for _, row := range elm.A[1] {
		total += sumv(row)
	}
	chk.Float64(tst, "ΣM", 1e-15, total, 0.2)

	// boundary integrals are not available
	err := o.EvalBou(elm, ele.NewSample(9, 2), []float64{0, 0}, []float64{1, 0})
	if !ele.IsKind(err, ele.UnsupportedOperation) {
		tst.Errorf("EvalBou should fail with UnsupportedOperation. err = %v\n", err)
	}
}

func Test_plate05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plate05. gravity and zero pressure")

	// zero pressure: nothing is added and nothing is recorded
	o := newTestPlate(tst, 0, 0)
	if o.HaveLoads() {
		tst.Errorf("plate without pressure should not have loads\n")
		return
	}
	pch, _ := shp.NewPatch(2, []int{1, 1}, []float64{1, 1})
	o.InitIntegration(9)
	elm := o.NewLocalIntegral(9, false)
	integrate(tst, o, elm, pch, 0, 3)
	chk.Array(tst, "F", 1e-17, elm.B[0], make([]float64, 9))
	if o.PresSamples() != nil {
		tst.Errorf("no sample should be recorded\n")
	}

	// self-weight: p = ρ g t
	o = newTestPlate(tst, 2, 0)
	o.SetGravity(10)
	if !o.HaveLoads() {
		tst.Errorf("plate with gravity should have loads\n")
		return
	}
	p, _ := o.Pressure([]float64{0.1, 0.1})
	chk.Float64(tst, "p", 1e-15, p, 2.0)
	elm = o.NewLocalIntegral(9, false)
	integrate(tst, o, elm, pch, 0, 3)
	chk.Float64(tst, "ΣF", 1e-14, sumv(elm.B[0]), 2.0)
}

func Test_plate06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plate06. stress recovery")

	o := newTestPlate(tst, 0, 0)
	pch, _ := shp.NewPatch(2, []int{1, 1}, []float64{1, 1})
	fe := ele.NewSample(9, 2)
	x := []float64{0.3, 0.6}
	pch.CalcAt(fe, 0, x)
	mnpc := pch.Mnpc(0)

	// no primary solution
	_, err := o.EvalSol(fe, x, mnpc)
	if !ele.IsKind(err, ele.MissingData) {
		tst.Errorf("EvalSol without solution should fail with MissingData. err = %v\n", err)
		return
	}

	// w = x²: m = -C (2, 0, 0)
	o.SetMode(ele.Recovery)
	o.Primsol.Set(eVxx)
	m, err := o.EvalSol(fe, x, mnpc)
	if err != nil {
		tst.Errorf("EvalSol failed: %v\n", err)
		return
	}
	chk.Array(tst, "m", 1e-13, m, []float64{-2 * c11(), -0.6 * c11(), 0})

	// rotated local system
	o.SetLocalSystem(RotatedSystem{Alpha: math.Pi / 2})
	m, _ = o.EvalSol(fe, x, mnpc)
	chk.Array(tst, "m'", 1e-13, m, []float64{-0.6 * c11(), -2 * c11(), 0})
	o.SetLocalSystem(nil)

	// bad node numbers
	_, err = o.EvalSol(fe, x, []int{0, 1, 2, 3, 4, 5, 6, 7, 9})
	if !ele.IsKind(err, ele.MissingData) {
		tst.Errorf("EvalSol with bad node should fail with MissingData. err = %v\n", err)
	}

	// wrong vector length
	_, err = o.EvalSolVec([]float64{1, 2}, fe.D2NdX2, x, false)
	if !ele.IsKind(err, ele.DimensionMismatch) {
		tst.Errorf("EvalSolVec should fail with DimensionMismatch. err = %v\n", err)
	}

	// field names
	chk.Int(tst, "nfields(1)", o.NoFields(1), 1)
	chk.Int(tst, "nfields(2)", o.NoFields(2), 3)
	chk.String(tst, o.Field1Name(0, ""), "w")
	name, _ := o.Field2Name(2, "plate")
	chk.String(tst, name, "plate m_xy")
	_, err = o.Field2Name(3, "")
	if !ele.IsKind(err, ele.MissingData) {
		tst.Errorf("Field2Name(3) should fail with MissingData. err = %v\n", err)
	}
}

func Test_plate07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plate07. clones and pressure samples")

	o := newTestPlate(tst, 0, 3)
	pch, _ := shp.NewPatch(2, []int{2, 1}, []float64{2, 1})
	o.InitIntegration(pch.Nel() * 4)

	// each worker integrates one element
	workers := []*Plate{o.Clone(), o.Clone()}
	for e, w := range workers {
		elm := w.NewLocalIntegral(9, false)
		integrate(tst, w, elm, pch, e, 2)
		chk.Int(tst, "worker samples", len(w.PresSamples()), 4)
	}
	if o.PresSamples() != nil {
		tst.Errorf("original should not be touched by clones\n")
		return
	}
	o.MergeSamples(workers...)
	samples := o.PresSamples()
	chk.Int(tst, "merged samples", len(samples), 8)
	for i, s := range samples {
		chk.Float64(tst, io.Sf("p%d", i), 1e-15, s.V[2], 3)
		if i < 4 && s.X[0] > 1 {
			tst.Errorf("samples must be ordered by integration point\n")
		}
	}
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

func matvec(A [][]float64, v []float64) (res []float64) {
	res = make([]float64, len(A))
	for i := range A {
		res[i] = dot(A[i], v)
	}
	return
}

func sumv(v []float64) (res float64) {
	for _, x := range v {
		res += x
	}
	return
}

func ones(n int) (res []float64) {
	res = make([]float64, n)
	for i := range res {
		res[i] = 1
	}
	return
}

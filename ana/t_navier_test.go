// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_navier01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("navier01. uniform load on square plate")

	var sol NavierPlate
	err := sol.Init(dbf.Params{
		&dbf.P{N: "a", V: 1},
		&dbf.P{N: "b", V: 1},
		&dbf.P{N: "t", V: 0.1},
		&dbf.P{N: "E", V: 1000},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "pz", V: 1},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Int(tst, "type", sol.Type, UniformLoad)
	chk.Float64(tst, "D", 1e-15, sol.D, 1000*0.001/(12*0.91))

	// Timoshenko's table: w = 0.00406 q a⁴/D, m_xx = m_yy = 0.0479 q a² @ centre
	xc := []float64{0.5, 0.5}
	wc := sol.Deflection(xc)
	m := sol.Moments(xc)
	io.Pforan("wc = %v  m = %v\n", wc, m)
	chk.Float64(tst, "wc D", 1e-8, wc*sol.D, 0.00406235)
	chk.Float64(tst, "mxx", 1e-4, m[0], 0.0479)
	chk.Float64(tst, "myy", 1e-14, m[1], m[0])
	chk.Float64(tst, "mxy", 1e-14, m[2], 0)

	// simply supported edges
	chk.Float64(tst, "w @ edge", 1e-15, sol.Deflection([]float64{0, 0.3}), 0)
	chk.Float64(tst, "mxx @ edge", 1e-12, sol.Moments([]float64{1, 0.3})[0], 0)

	// twisting moment @ corner is negative with m = -Cκ
	mc := sol.Moments([]float64{0, 0})
	if mc[2] >= 0 {
		tst.Errorf("corner twisting moment should be negative. mxy = %v\n", mc[2])
	}
	chk.Float64(tst, "total load", 1e-15, sol.TotalLoad(), 1)
}

func Test_navier02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("navier02. patch and point loads")

	prms := dbf.Params{
		&dbf.P{N: "a", V: 2},
		&dbf.P{N: "b", V: 1},
		&dbf.P{N: "t", V: 0.1},
		&dbf.P{N: "E", V: 1000},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "pz", V: 2},
		&dbf.P{N: "nterms", V: 41},
	}

	// a patch covering the whole plate equals the uniform load
	var uni, pat NavierPlate
	uni.Init(prms)
	err := pat.Init(append(prms,
		&dbf.P{N: "xi", V: 1}, &dbf.P{N: "eta", V: 0.5},
		&dbf.P{N: "c", V: 2}, &dbf.P{N: "d", V: 1},
	))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Int(tst, "type", pat.Type, PatchLoad)
	for _, x := range [][]float64{{0.3, 0.2}, {1, 0.5}, {1.7, 0.9}} {
		chk.Float64(tst, "w", 1e-15, pat.Deflection(x), uni.Deflection(x))
		chk.Array(tst, "m", 1e-12, pat.Moments(x), uni.Moments(x))
	}

	// point load: symmetric about the load centre
	var pnt NavierPlate
	err = pnt.Init(append(prms, &dbf.P{N: "xi", V: 1}, &dbf.P{N: "eta", V: 0.5}))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Int(tst, "type", pnt.Type, PointLoad)
	chk.Float64(tst, "w symmetry", 1e-12, pnt.Deflection([]float64{0.6, 0.3}), pnt.Deflection([]float64{1.4, 0.7}))
	chk.Float64(tst, "total load", 1e-15, pnt.TotalLoad(), 2)
}

func Test_navier03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("navier03. invalid parameters")

	var sol NavierPlate
	for i, prms := range []dbf.Params{
		{&dbf.P{N: "a", V: -1}},
		{&dbf.P{N: "xi", V: 0.5}},
		{&dbf.P{N: "xi", V: 0.5}, &dbf.P{N: "eta", V: 2}},
		{&dbf.P{N: "c", V: 0.5}, &dbf.P{N: "d", V: 0.5}},
		{&dbf.P{N: "nterms", V: 0}},
		{&dbf.P{N: "unknown", V: 0}},
	} {
		if err := sol.Init(prms); err == nil {
			tst.Errorf("case %d should fail\n", i)
		}
	}
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output of plate results: tables, profiles and pressure samples
package out

import (
	"bytes"
	"math"
	"strings"

	"github.com/cpmech/klplate/ele/plate"
	"github.com/cpmech/klplate/fem"

	"github.com/cpmech/gosl/io"
)

// NormTable returns the global norms as text; one block per group
func NormTable(n *fem.Norms) string {
	if n == nil {
		return ""
	}
	var buf bytes.Buffer
	width := 0
	for _, names := range n.Names {
		for _, name := range names {
			width = max(width, len(name))
		}
	}
	for i, names := range n.Names {
		if i == 0 {
			io.Ff(&buf, "Energy norms:\n")
		} else {
			io.Ff(&buf, "Projection %d:\n", i)
		}
		for j, name := range names {
			io.Ff(&buf, "  %-*s : %s\n", width, name, fmtNumber(n.Vals[i][j]))
		}
	}
	return buf.String()
}

// StationsTable returns results along a line as text
func StationsTable(stations []*fem.Station) string {
	if len(stations) == 0 {
		return ""
	}
	var buf bytes.Buffer
	ndim := len(stations[0].X)
	nm := len(stations[0].M)
	cols := []string{"x", "y"}[:ndim]
	cols = append(cols, "w")
	cols = append(cols, []string{"m_xx", "m_yy", "m_xy"}[:nm]...)
	for _, c := range cols {
		io.Ff(&buf, "%14s", c)
	}
	io.Ff(&buf, "\n")
	for _, s := range stations {
		for _, x := range s.X {
			io.Ff(&buf, "%14.6g", x)
		}
		io.Ff(&buf, "%14.6e", s.W)
		for _, m := range s.M {
			io.Ff(&buf, "%14.6e", m)
		}
		io.Ff(&buf, "\n")
	}
	return buf.String()
}

// FrequencyTable returns the angular eigenfrequencies and frequencies (ω/2π) as text
func FrequencyTable(ω []float64) string {
	var buf bytes.Buffer
	io.Ff(&buf, "%6s%16s%16s\n", "mode", "omega", "f")
	for i, w := range ω {
		io.Ff(&buf, "%6d%16.8e%16.8e\n", i+1, w, w/(2.0*math.Pi))
	}
	return buf.String()
}

// WritePressure writes the pressure samples to dirout/fnkey-pressure.csv
func WritePressure(dirout, fnkey string, samples []plate.PresSample) {
	lines := make([]string, 0, len(samples)+1)
	lines = append(lines, "x,y,z,px,py,pz")
	for _, s := range samples {
		lines = append(lines, io.Sf("%g,%g,%g,%g,%g,%g", s.X[0], s.X[1], s.X[2], s.V[0], s.V[1], s.V[2]))
	}
	io.WriteFileSD(dirout, fnkey+"-pressure.csv", strings.Join(lines, "\n")+"\n")
}

// fmtNumber formats norm values; NaN is shown as "n/a"
func fmtNumber(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return io.Sf("%.8e", v)
}

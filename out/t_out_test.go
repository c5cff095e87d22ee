// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/klplate/ele/plate"
	"github.com/cpmech/klplate/fem"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. tables")

	n := &fem.Norms{
		Names: [][]string{{"a(w^h,w^h)^0.5", "(p,w^h)^0.5"}, {"a(w^r,w^r)^0.5", "effectivity index"}},
		Vals:  [][]float64{{2, 3}, {4, math.NaN()}},
	}
	txt := NormTable(n)
	io.Pf("%s", txt)
	assert.Contains(tst, txt, "Energy norms:")
	assert.Contains(tst, txt, "Projection 1:")
	assert.Contains(tst, txt, "a(w^h,w^h)^0.5    : 2.00000000e+00")
	assert.Contains(tst, txt, "effectivity index : n/a")
	assert.Equal(tst, "", NormTable(nil))

	stations := []*fem.Station{
		{X: []float64{0, 0.5}, W: 0, M: []float64{0, 1, 2}},
		{X: []float64{0.5, 0.5}, W: 1, M: []float64{3, 4, 5}},
	}
	txt = StationsTable(stations)
	lines := strings.Split(strings.TrimSpace(txt), "\n")
	require.Len(tst, lines, 3)
	assert.Equal(tst, []string{"x", "y", "w", "m_xx", "m_yy", "m_xy"}, strings.Fields(lines[0]))

	txt = FrequencyTable([]float64{2 * math.Pi})
	assert.Contains(tst, txt, "1.00000000e+00")
}

func Test_out02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out02. pressure samples and plots")

	dir := tst.TempDir()
	WritePressure(dir, "plate", []plate.PresSample{
		{X: [3]float64{0.5, 0.25, 0}, V: [3]float64{0, 0, 2}, Recorded: true},
	})
	b, err := os.ReadFile(filepath.Join(dir, "plate-pressure.csv"))
	require.NoError(tst, err)
	assert.Equal(tst, "x,y,z,px,py,pz\n0.5,0.25,0,0,0,2\n", string(b))

	stations := make([]*fem.Station, 5)
	for i := range stations {
		x := float64(i) / 4
		stations[i] = &fem.Station{X: []float64{x}, W: x * (1 - x), M: []float64{1 - x}}
	}
	plt := PlotDeflection(stations, "deflection")
	io.Pf("%s\n", plt)
	assert.Contains(tst, plt, "deflection")
	assert.Contains(tst, PlotMoments(stations, "moments"), "moments")
	assert.Equal(tst, "", PlotDeflection(stations[:1], "none"))
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/klplate/fem"

	"github.com/guptarohit/asciigraph"
)

// plot sizes
var (
	PlotHeight = 12
	PlotWidth  = 72
)

// PlotDeflection returns a terminal plot of the deflection along stations
func PlotDeflection(stations []*fem.Station, caption string) string {
	if len(stations) < 2 {
		return ""
	}
	w := make([]float64, len(stations))
	for i, s := range stations {
		w[i] = s.W
	}
	return asciigraph.Plot(w,
		asciigraph.Height(PlotHeight),
		asciigraph.Width(PlotWidth),
		asciigraph.Caption(caption),
	)
}

// PlotMoments returns a terminal plot of all stress resultants along stations
func PlotMoments(stations []*fem.Station, caption string) string {
	if len(stations) < 2 {
		return ""
	}
	nm := len(stations[0].M)
	series := make([][]float64, nm)
	for j := 0; j < nm; j++ {
		series[j] = make([]float64, len(stations))
		for i, s := range stations {
			series[j][i] = s.M[j]
		}
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(PlotHeight),
		asciigraph.Width(PlotWidth),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red, asciigraph.Green),
	)
}

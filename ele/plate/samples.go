// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plate

// PresSample holds the pressure recorded @ one integration point
type PresSample struct {
	X        [3]float64 // position
	V        [3]float64 // load vector: {0, 0, p}
	Recorded bool       // a nonzero pressure was recorded
}

// InitIntegration allocates the pressure buffer for nGp integration points (global count).
// Previous samples are discarded
func (o *Plate) InitIntegration(nGp int) {
	o.presVal = make([]PresSample, nGp)
}

// setSample records p @ x; indices outside the buffer are ignored
func (o *Plate) setSample(iip int, x []float64, p float64) {
	if iip < 0 || iip >= len(o.presVal) {
		return
	}
	s := &o.presVal[iip]
	s.X = [3]float64{}
	copy(s.X[:], x)
	s.V = [3]float64{0, 0, p}
	s.Recorded = true
}

// PresSamples returns the recorded pressure samples; nil if none was recorded
func (o *Plate) PresSamples() (res []PresSample) {
	for _, s := range o.presVal {
		if s.Recorded {
			res = append(res, s)
		}
	}
	return
}

// Sample returns the sample @ global integration point iip
func (o *Plate) Sample(iip int) (s PresSample, ok bool) {
	if iip < 0 || iip >= len(o.presVal) {
		return
	}
	return o.presVal[iip], o.presVal[iip].Recorded
}

// MergeSamples copies the recorded samples of workers (clones) into this plate's buffer.
// Workers are merged in the given order and by index, so the result does not depend on scheduling
func (o *Plate) MergeSamples(workers ...*Plate) {
	for _, w := range workers {
		if len(w.presVal) > len(o.presVal) {
			o.presVal = append(o.presVal, make([]PresSample, len(w.presVal)-len(o.presVal))...)
		}
		for i, s := range w.presVal {
			if s.Recorded {
				o.presVal[i] = s
			}
		}
	}
}

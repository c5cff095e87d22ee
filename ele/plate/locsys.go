// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plate

import "math"

// LocalSystem defines local coordinate systems for stress resultants
type LocalSystem interface {
	Tmat(x []float64) [][]float64 // [ndim][ndim] rotation matrix (rows are local axes) @ x
}

// RotatedSystem is a local system rotated by a constant angle α about z
type RotatedSystem struct {
	Alpha float64 // angle (radians) from global x to local x
}

// Tmat returns the rotation matrix
func (o RotatedSystem) Tmat(x []float64) [][]float64 {
	c, s := math.Cos(o.Alpha), math.Sin(o.Alpha)
	return [][]float64{
		{c, s},
		{-s, c},
	}
}

// transform applies the congruence transformation m := T m Tᵀ to the
// symmetric tensor m stored as {xx, yy, xy} (or {xx} in 1D)
func transform(m []float64, T [][]float64) {
	if len(m) == 1 {
		m[0] *= T[0][0] * T[0][0]
		return
	}
	M := [2][2]float64{{m[0], m[2]}, {m[2], m[1]}}
	var R [2][2]float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				for l := 0; l < 2; l++ {
					R[i][j] += T[i][k] * M[k][l] * T[j][l]
				}
			}
		}
	}
	m[0], m[1], m[2] = R[0][0], R[1][1], R[0][1]
}

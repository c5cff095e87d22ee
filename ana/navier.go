// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Navier load types
const (
	UniformLoad = iota // pz over the whole plate
	PointLoad          // force pz @ (xi, eta)
	PatchLoad          // pz over the c × d rectangle centred @ (xi, eta)
)

// NavierPlate computes the Navier (double sine series) solution of a simply supported
// rectangular Kirchhoff-Love plate
//
//      y ^
//      b +-----------------+           D = E t³ / (12 (1 - ν²))
//        |    +---+        |
//        |    | c×d (xi,eta)          w = Σ Σ W_mn sin(αx) sin(βy)
//        |    +---+        |           α = mπ/a, β = nπ/b
//        +-----------------+--> x      W_mn = q_mn / (D (α² + β²)²)
//        0                 a
//
// Stress resultants follow m = -C κ with κ = {w,xx, w,yy, 2 w,xy}
type NavierPlate struct {

	// input
	A   float64 // length along x
	B   float64 // length along y
	T   float64 // thickness
	E   float64 // Young's modulus
	Nu  float64 // Poisson's coefficient
	Pz  float64 // load intensity (force for point loads)
	Xi  float64 // x-coordinate of load centre
	Eta float64 // y-coordinate of load centre
	C   float64 // patch size along x
	Dy  float64 // patch size along y
	Nt  int     // number of terms of the series in each direction

	// derived
	Type int         // load type
	D    float64     // flexural rigidity
	wmn  [][]float64 // [Nt][Nt] coefficients W_mn
}

// Init initialises this structure. Parameters:
//  a b t E nu pz [xi eta [c d]] [nterms]
// Giving xi and eta selects a point load; giving also c and d selects a patch load
func (o *NavierPlate) Init(prms dbf.Params) (err error) {

	// default values
	o.A, o.B, o.T = 1, 1, 0.1
	o.E, o.Nu, o.Pz = 10000, 0.3, 1
	o.Nt = 100

	// parameters
	var hasXi, hasEta, hasC, hasD bool
	for _, p := range prms {
		switch p.N {
		case "a":
			o.A = p.V
		case "b":
			o.B = p.V
		case "t":
			o.T = p.V
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "pz":
			o.Pz = p.V
		case "xi":
			o.Xi, hasXi = p.V, true
		case "eta":
			o.Eta, hasEta = p.V, true
		case "c":
			o.C, hasC = p.V, true
		case "d":
			o.Dy, hasD = p.V, true
		case "nterms":
			o.Nt = int(p.V)
		default:
			return chk.Err("navier-plate: parameter named %q is invalid", p.N)
		}
	}

	// check
	if o.A <= 0 || o.B <= 0 || o.T <= 0 || o.E <= 0 {
		return chk.Err("navier-plate: a, b, t and E must be positive. a=%g b=%g t=%g E=%g", o.A, o.B, o.T, o.E)
	}
	if o.Nt < 1 {
		return chk.Err("navier-plate: number of terms must be positive. nterms = %d is invalid", o.Nt)
	}
	if hasXi != hasEta || hasC != hasD || (hasC && !hasXi) {
		return chk.Err("navier-plate: load centre needs both xi and eta; patch needs both c and d")
	}
	o.Type = UniformLoad
	if hasXi {
		o.Type = PointLoad
		if o.Xi < 0 || o.Xi > o.A || o.Eta < 0 || o.Eta > o.B {
			return chk.Err("navier-plate: load centre (%g,%g) is outside the plate", o.Xi, o.Eta)
		}
	}
	if hasC {
		o.Type = PatchLoad
	}

	// coefficients
	o.D = o.E * o.T * o.T * o.T / (12.0 * (1.0 - o.Nu*o.Nu))
	o.wmn = make([][]float64, o.Nt)
	π4 := math.Pow(math.Pi, 4)
	for i := 0; i < o.Nt; i++ {
		o.wmn[i] = make([]float64, o.Nt)
		m := float64(i + 1)
		for j := 0; j < o.Nt; j++ {
			n := float64(j + 1)
			s := m*m/(o.A*o.A) + n*n/(o.B*o.B)
			o.wmn[i][j] = o.qmn(m, n) / (π4 * o.D * s * s)
		}
	}
	return
}

// qmn returns the load coefficient of term (m, n)
func (o *NavierPlate) qmn(m, n float64) float64 {
	α, β := m*math.Pi/o.A, n*math.Pi/o.B
	switch o.Type {
	case PointLoad:
		return 4.0 * o.Pz / (o.A * o.B) * math.Sin(α*o.Xi) * math.Sin(β*o.Eta)
	case PatchLoad:
		return 16.0 * o.Pz / (math.Pi * math.Pi * m * n) * math.Sin(α*o.Xi) * math.Sin(β*o.Eta) *
			math.Sin(α*o.C/2.0) * math.Sin(β*o.Dy/2.0)
	}
	if int(m)%2 == 0 || int(n)%2 == 0 {
		return 0
	}
	return 16.0 * o.Pz / (math.Pi * math.Pi * m * n)
}

// Deflection computes w @ x
func (o *NavierPlate) Deflection(x []float64) (w float64) {
	for i := 0; i < o.Nt; i++ {
		sx := math.Sin(float64(i+1) * math.Pi * x[0] / o.A)
		for j := 0; j < o.Nt; j++ {
			w += o.wmn[i][j] * sx * math.Sin(float64(j+1)*math.Pi*x[1]/o.B)
		}
	}
	return
}

// Moments computes the stress resultants {m_xx, m_yy, m_xy} @ x
func (o *NavierPlate) Moments(x []float64) (m []float64) {
	m = make([]float64, 3)
	for i := 0; i < o.Nt; i++ {
		α := float64(i+1) * math.Pi / o.A
		sx, cx := math.Sin(α*x[0]), math.Cos(α*x[0])
		for j := 0; j < o.Nt; j++ {
			W := o.wmn[i][j]
			if W == 0 {
				continue
			}
			β := float64(j+1) * math.Pi / o.B
			sy, cy := math.Sin(β*x[1]), math.Cos(β*x[1])
			m[0] += o.D * (α*α + o.Nu*β*β) * W * sx * sy
			m[1] += o.D * (β*β + o.Nu*α*α) * W * sx * sy
			m[2] -= o.D * (1.0 - o.Nu) * α * β * W * cx * cy
		}
	}
	return
}

// TotalLoad returns the resultant of the applied load
func (o *NavierPlate) TotalLoad() float64 {
	switch o.Type {
	case PointLoad:
		return o.Pz
	case PatchLoad:
		return o.Pz * o.C * o.Dy
	}
	return o.Pz * o.A * o.B
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plate

import (
	"math"

	"github.com/cpmech/klplate/ele"

	"github.com/cpmech/gosl/io"
)

// StressSol defines analytical solutions providing exact stress resultants
type StressSol interface {
	Moments(x []float64) []float64 // {m_xx, m_yy, m_xy} @ x
}

// Norm computes energy and L2 norms of plate solutions and recovery-based error estimates.
//
//  group 1 (base):   a(w^h,w^h), (p,w^h) [, a(w,w), a(e,e) e=w-w^h]           (analytical solution)
//  group 1+k:        a(w^r,w^r), a(e,e) e=w^r-w^h, (w^r,w^r), (e,e) e=w^r-w^h
//                    [, a(e,e) e=w-w^r, effectivity index]                      (analytical solution)
//
// where w^r is the k-th projected (recovered) solution and a(⋅,⋅) the energy product m⋅C⁻¹m
type Norm struct {
	Plate  *Plate    // the plate integrand (not owned)
	Anasol StressSol // [optional] analytical solution
	Nproj  int       // number of projected solutions; i.e. number of groups after the first
	nrcmp  int       // number of stress resultant components
}

// NewNorm returns a norm integrand for this plate. anasol may be nil
func (o *Plate) NewNorm(anasol StressSol, nproj int) *Norm {
	return &Norm{Plate: o, Anasol: anasol, Nproj: nproj, nrcmp: o.NoFields(2)}
}

// Nslots returns the total number of slots of one element
func (o *Norm) Nslots() int {
	return o.NoFields(1) + o.Nproj*o.NoFields(2)
}

// NewElmNorm allocates an element accumulator with all slots
func (o *Norm) NewElmNorm() *ele.ElmNorm {
	return ele.NewElmNorm(o.Nslots())
}

// EvalInt adds the contributions of one integration point.
// en.Vec[0] must hold the element deflections and en.Psol the projected resultants (may be empty)
func (o *Norm) EvalInt(en *ele.ElmNorm, fe *ele.Sample, x []float64) (err error) {

	// check
	if len(en.Vals) < o.Nslots() {
		return ele.Errf(ele.DimensionMismatch, "Norm.EvalInt", "element norm has %d slots but %d are required", len(en.Vals), o.Nslots())
	}
	if len(en.Vec) == 0 {
		return ele.Errf(ele.MissingData, "Norm.EvalInt", "no element displacement vector")
	}

	// inverse constitutive matrix and finite element resultants
	Cinv, err := o.Plate.Cmatrix(x, true)
	if err != nil {
		return
	}
	mh, err := o.Plate.EvalSolVec(en.Vec[0], fe.D2NdX2, x, false)
	if err != nil {
		return
	}
	w := fe.DetJxW

	// energy norm a(w^h,w^h)
	ip := 0
	en.Vals[ip] += energyProduct(Cinv, mh) * w
	ip++

	// external energy (p,w^h)
	if o.Plate.HaveLoads() {
		p, err := o.Plate.Pressure(x)
		if err != nil {
			return err
		}
		en.Vals[ip] += p * dot(en.Vec[0], fe.N) * w
	}
	ip++

	// analytical solution
	var m []float64
	if o.Anasol != nil {
		m = o.Anasol.Moments(x)
		if len(m) != o.nrcmp {
			return ele.Errf(ele.DimensionMismatch, "Norm.EvalInt", "analytical solution has %d stress resultants but %d are required", len(m), o.nrcmp)
		}
		en.Vals[ip] += energyProduct(Cinv, m) * w
		ip++
		en.Vals[ip] += energyProduct(Cinv, sub(m, mh)) * w
		ip++
	}

	// projected solutions
	nblk := o.NoFields(2)
	for k := 0; k < o.Nproj; k++ {
		if k >= len(en.Psol) || len(en.Psol[k]) == 0 {
			ip += nblk
			continue
		}
		psol := en.Psol[k]
		if len(psol) != o.nrcmp*len(fe.N) {
			return ele.Errf(ele.DimensionMismatch, "Norm.EvalInt", "projected solution %d has %d values but %d are required", k, len(psol), o.nrcmp*len(fe.N))
		}
		mr := make([]float64, o.nrcmp)
		for j := 0; j < o.nrcmp; j++ {
			for a, Na := range fe.N {
				mr[j] += psol[a*o.nrcmp+j] * Na
			}
		}
		e := sub(mr, mh)
		en.Vals[ip] += energyProduct(Cinv, mr) * w // a(w^r,w^r)
		ip++
		en.Vals[ip] += energyProduct(Cinv, e) * w // a(e,e), e = w^r - w^h
		ip++
		en.Vals[ip] += dot(mr, mr) * w // (w^r,w^r)
		ip++
		en.Vals[ip] += dot(e, e) * w // (e,e), e = w^r - w^h
		ip++
		if o.Anasol != nil {
			en.Vals[ip] += energyProduct(Cinv, sub(m, mr)) * w // a(e,e), e = w - w^r
			ip++
			ip++ // effectivity index; see FinalizeElement
		}
	}
	return
}

// EvalBou is not available
func (o *Norm) EvalBou(en *ele.ElmNorm, fe *ele.Sample, x, normal []float64) (err error) {
	return ele.Errf(ele.UnsupportedOperation, "Norm.EvalBou", "boundary integrals are not available; use AddBoundaryTerms")
}

// FinalizeElement computes the local effectivity indices sqrt(a(e^r,e^r)/a(e,e)) with
// e^r = w^r - w^h and e = w - w^h. If a(e,e) vanishes relative to a(w,w) the index is NaN
func (o *Norm) FinalizeElement(en *ele.ElmNorm) (err error) {
	if o.Anasol == nil {
		return
	}
	n0, nblk := o.NoFields(1), o.NoFields(2)
	if len(en.Vals) < o.Nslots() {
		return ele.Errf(ele.DimensionMismatch, "Norm.FinalizeElement", "element norm has %d slots but %d are required", len(en.Vals), o.Nslots())
	}
	aww, aee := en.Vals[2], en.Vals[3]
	for k := 0; k < o.Nproj; k++ {
		ip := n0 + k*nblk + 5
		en.Vals[ip] = EffectivityIndex(en.Vals[ip-4], aee, aww)
	}
	return
}

// EffectivityTol is the smallest a(e,e)/a(w,w) giving an effectivity index; below it the
// true error is round-off. The ratio of squared energies 1e-24 means a relative error of 1e-12
var EffectivityTol = 1e-24

// EffectivityIndex returns sqrt(aer/aee). The index is NaN if aee is not positive, aer is
// negative or aee ≤ EffectivityTol aww, where aww = a(w,w) is the exact energy
func EffectivityIndex(aer, aee, aww float64) float64 {
	if aee <= 0 || aer < 0 || aee <= EffectivityTol*math.Abs(aww) {
		return math.NaN()
	}
	return math.Sqrt(aer / aee)
}

// AddBoundaryTerms adds energy (computed by boundary integration elsewhere) to the
// external energy slot of the global norms
func (o *Norm) AddBoundaryTerms(gNorm [][]float64, energy float64) {
	if len(gNorm) > 0 && len(gNorm[0]) > 1 {
		gNorm[0][1] += energy
	}
}

// NoFields returns the number of slots in group; group < 1 returns the number of groups
func (o *Norm) NoFields(group int) int {
	switch {
	case group < 1:
		return 1 + o.Nproj
	case group == 1:
		if o.Anasol != nil {
			return 4
		}
		return 2
	}
	if o.Anasol != nil {
		return 6
	}
	return 4
}

// Name returns the name of slot j (1-based) of group i (1-based)
func (o *Norm) Name(i, j int, prefix string) string {
	var name string
	switch {
	case i == 0 || j < 1 || j > 6 || (i == 1 && j > 4):
		name = io.Sf("norm_%d.%d", i, j)
	case i == 1:
		name = normNames1[j-1]
	default:
		name = normNamesK[j-1]
	}
	if prefix == "" {
		return name
	}
	return prefix + " " + name
}

// names of norms
var (
	normNames1 = []string{
		"a(w^h,w^h)^0.5",
		"(p,w^h)^0.5",
		"a(w,w)^0.5",
		"a(e,e)^0.5, e=w-w^h",
	}
	normNamesK = []string{
		"a(w^r,w^r)^0.5",
		"a(e,e)^0.5, e=w^r-w^h",
		"(w^r,w^r)^0.5",
		"(e,e)^0.5, e=w^r-w^h",
		"a(e,e)^0.5, e=w-w^r",
		"effectivity index",
	}
)

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

func dot(a, b []float64) (res float64) {
	for i := range a {
		res += a[i] * b[i]
	}
	return
}

func sub(a, b []float64) (res []float64) {
	res = make([]float64, len(a))
	for i := range a {
		res[i] = a[i] - b[i]
	}
	return
}

// energyProduct computes m ⋅ C m
func energyProduct(C [][]float64, m []float64) (res float64) {
	for i := range C {
		for j := range m {
			res += m[i] * C[i][j] * m[j]
		}
	}
	return
}

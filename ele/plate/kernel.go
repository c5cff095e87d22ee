// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plate

import (
	"github.com/cpmech/klplate/ele"
)

// EvalInt adds the contributions of one integration point to the local integral.
// Only the slots allocated by NewLocalIntegral for the current mode are computed
func (o *Plate) EvalInt(elm *ele.ElmMats, fe *ele.Sample, x []float64) (err error) {

	// stiffness matrix: EK += Bᵀ C B |J| w
	if o.eK > 0 && o.eK <= len(elm.A) {
		B, err := o.Bmatrix(fe.D2NdX2)
		if err != nil {
			return err
		}
		C, err := o.Cmatrix(x, false)
		if err != nil {
			return err
		}
		nstrc, nen := len(B), len(fe.D2NdX2)
		CB := make([][]float64, nstrc) // CB = C B |J| w
		for i := 0; i < nstrc; i++ {
			CB[i] = make([]float64, nen)
			for j := 0; j < nen; j++ {
				for k := 0; k < nstrc; k++ {
					CB[i][j] += C[i][k] * B[k][j]
				}
				CB[i][j] *= fe.DetJxW
			}
		}
		EK := elm.A[o.eK-1]
		for i := 0; i < nen; i++ {
			for j := i; j < nen; j++ {
				v := 0.0
				for k := 0; k < nstrc; k++ {
					v += B[k][i] * CB[k][j]
				}
				EK[i][j] += v
				if j != i {
					EK[j][i] += v
				}
			}
		}
	}

	// mass matrix
	if o.eM > 0 && o.eM <= len(elm.A) {
		err = o.addMass(elm.A[o.eM-1], fe.N, x, fe.DetJxW)
		if err != nil {
			return
		}
	}

	// load vector due to gravity and pressure
	if o.eS > 0 && o.eS <= len(elm.B) {
		err = o.addBodyForce(elm.B[o.eS-1], fe.N, fe.Iip, x, fe.DetJxW)
	}
	return
}

// EvalBou is not available: pressures must be given as body (domain) loads
func (o *Plate) EvalBou(elm *ele.ElmMats, fe *ele.Sample, x, normal []float64) (err error) {
	return ele.Errf(ele.UnsupportedOperation, "Plate.EvalBou", "boundary integrals are not available; use pressure as body load")
}

// Pressure computes the transverse load @ x: ρ g t + p(x)
func (o *Plate) Pressure(x []float64) (p float64, err error) {
	if o.Mdl == nil {
		return 0, ele.Errf(ele.MissingData, "Plate.Pressure", "no material model")
	}
	p = o.Mdl.GetRho(x) * o.Gravity * o.Thickness
	if o.Pres != nil {
		p += o.Pres.F(o.T, x)
	}
	return
}

// HaveLoads tells whether there are loads: a pressure field is set or
// gravity acts on a material with density (checked @ origin)
func (o *Plate) HaveLoads() bool {
	if o.Pres != nil {
		return true
	}
	if o.Gravity != 0 && o.Mdl != nil {
		return o.Mdl.GetRho(make([]float64, o.Ndim)) != 0
	}
	return false
}

// addMass adds (ρ t |J| w) N⊗N to EM; nothing is done when ρ t == 0
func (o *Plate) addMass(EM [][]float64, N, x []float64, detJxW float64) (err error) {
	if o.Mdl == nil {
		return ele.Errf(ele.MissingData, "Plate.EvalInt", "no material model")
	}
	ρt := o.Mdl.GetRho(x) * o.Thickness
	if ρt == 0 {
		return
	}
	c := ρt * detJxW
	for i := range N {
		for j := range N {
			EM[i][j] += c * N[i] * N[j]
		}
	}
	return
}

// addBodyForce adds (p |J| w) N to ES and records p for visualisation; nothing is done when p == 0
func (o *Plate) addBodyForce(ES, N []float64, iip int, x []float64, detJxW float64) (err error) {
	p, err := o.Pressure(x)
	if err != nil || p == 0 {
		return
	}
	for i := range N {
		ES[i] += p * detJxW * N[i]
	}
	o.setSample(iip, x, p)
	return
}

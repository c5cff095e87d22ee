// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/klplate/ele"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// Project computes the L2 projection of the stress resultants onto the spline space
//
//   Σ_b (∫ N_a N_b) m_bj = ∫ N_a m^h_j     (global axes)
//
// The result is stored in dom.Psol with the components of node n at n*nstrc+j
func (o *Domain) Project() (err error) {

	// check
	eV := o.Deflections()
	if eV == nil {
		return chk.Err("cannot project stress resultants: there is no solution")
	}

	// local matrices and right-hand sides
	nel, nen := o.Patch.Nel(), o.Patch.Nen()
	nstrc := o.Plate.Nstrc()
	workers := o.clones()
	Ms := make([][][]float64, nel)
	Rs := make([][][]float64, nel)
	err = runElements(nel, len(workers), func(w, e int) (err error) {
		Ms[e], Rs[e] = utl.Alloc(nen, nen), utl.Alloc(nen, nstrc)
		mnpc := o.Patch.Mnpc(e)
		ue, nbad := o.Sol.Gather(mnpc, 1)
		if nbad > 0 {
			return chk.Err("element %d: %d nodes are out of range of the solution vector (size %d)", e, nbad, len(eV))
		}
		fe := ele.NewSample(nen, o.Patch.Ndim)
		for _, ip := range o.Patch.IntPoints(e, o.Sim.Mesh.Ngauss) {
			if err = o.Patch.CalcAt(fe, e, ip.X); err != nil {
				return
			}
			m, err := workers[w].EvalSolVec(ue, fe.D2NdX2, ip.X, false)
			if err != nil {
				return err
			}
			for a := 0; a < nen; a++ {
				for b := 0; b < nen; b++ {
					Ms[e][a][b] += fe.N[a] * fe.N[b] * ip.W
				}
				for j := 0; j < nstrc; j++ {
					Rs[e][a][j] += fe.N[a] * m[j] * ip.W
				}
			}
		}
		return
	})
	if err != nil {
		return
	}

	// assemble
	M := mat.NewSymDense(o.Ny, nil)
	R := mat.NewDense(o.Ny, nstrc, nil)
	for e := 0; e < nel; e++ {
		mnpc := o.Patch.Mnpc(e)
		addToSym(M, Ms[e], mnpc)
		for a, I := range mnpc {
			for j := 0; j < nstrc; j++ {
				R.Set(I, j, R.At(I, j)+Rs[e][a][j])
			}
		}
	}

	// solve
	var ch mat.Cholesky
	if ok := ch.Factorize(M); !ok {
		return chk.Err("projection matrix is not positive definite")
	}
	var X mat.Dense
	if err = ch.SolveTo(&X, R); err != nil {
		return chk.Err("cannot solve projection system:\n%v", err)
	}
	o.Psol = make([]float64, o.Ny*nstrc)
	for n := 0; n < o.Ny; n++ {
		for j := 0; j < nstrc; j++ {
			o.Psol[n*nstrc+j] = X.At(n, j)
		}
	}
	if o.ShowMsg {
		io.Pf("> Stress resultants projected onto %d nodes\n", o.Ny)
	}
	return
}

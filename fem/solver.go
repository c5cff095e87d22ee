// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/klplate/ele"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// Solver implements the actual solver
type Solver interface {
	Run(dom *Domain) (err error)
}

// allocators holds all available solvers
var allocators = make(map[string]func(nfreq int) Solver)

func init() {
	allocators["static"] = func(nfreq int) Solver { return new(Static) }
	allocators["vibration"] = func(nfreq int) Solver { return &Vibration{Nfreq: nfreq} }
}

// Static solves K w = f with the constrained equations eliminated
type Static struct{}

// Run assembles and solves the static problem; the solution is stored in dom.Sol
func (o *Static) Run(dom *Domain) (err error) {
	if err = dom.Assemble(ele.Static); err != nil {
		return
	}
	if err = dom.AddPointLoads(); err != nil {
		return
	}
	K := dom.EssenBcs.Reduce(dom.Kb)
	f := dom.EssenBcs.ReduceVec(dom.Fb)
	var ch mat.Cholesky
	if ok := ch.Factorize(K); !ok {
		return chk.Err("stiffness matrix is not positive definite; check the boundary conditions %q", dom.EssenBcs.Key)
	}
	var w mat.VecDense
	if err = ch.SolveVecTo(&w, f); err != nil {
		return chk.Err("cannot solve linear system:\n%v", err)
	}
	dom.Sol.Set(dom.EssenBcs.Expand(&w, dom.Ny))
	if dom.ShowMsg {
		io.Pf("> Static: %d equations solved (condition number ≈ %.3e)\n", K.SymmetricDim(), ch.Cond())
	}
	return
}

// Vibration solves the generalised eigenproblem K φ = ω² M φ
type Vibration struct {
	Nfreq int // number of frequencies to keep; 0 means all
}

// Run assembles K and M and computes the lowest angular frequencies; stored in dom.Omega.
// The first eigenvector is stored in dom.Sol
func (o *Vibration) Run(dom *Domain) (err error) {
	if err = dom.Assemble(ele.Vibration); err != nil {
		return
	}
	K := dom.EssenBcs.Reduce(dom.Kb)
	M := dom.EssenBcs.Reduce(dom.Mb)
	n := K.SymmetricDim()

	// M = L Lᵀ  ⇒  A = L⁻¹ K L⁻ᵀ
	var ch mat.Cholesky
	if ok := ch.Factorize(M); !ok {
		return chk.Err("mass matrix is not positive definite; density must be positive")
	}
	var L, Linv mat.TriDense
	ch.LTo(&L)
	if err = Linv.InverseTri(&L); err != nil {
		return chk.Err("cannot invert Cholesky factor of mass matrix:\n%v", err)
	}
	var tmp, B mat.Dense
	tmp.Mul(&Linv, K)
	B.Mul(&tmp, Linv.T())
	A := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			A.SetSym(i, j, (B.At(i, j)+B.At(j, i))/2.0)
		}
	}

	// eigenvalues in ascending order
	var es mat.EigenSym
	if ok := es.Factorize(A, true); !ok {
		return chk.Err("eigenvalue decomposition failed")
	}
	λ := es.Values(nil)
	nf := len(λ)
	if o.Nfreq > 0 && o.Nfreq < nf {
		nf = o.Nfreq
	}
	dom.Omega = make([]float64, nf)
	for i := 0; i < nf; i++ {
		dom.Omega[i] = math.Sqrt(math.Max(λ[i], 0))
	}

	// first mode: φ = L⁻ᵀ ψ
	var ψ mat.Dense
	es.VectorsTo(&ψ)
	var φ mat.VecDense
	φ.MulVec(Linv.T(), ψ.ColView(0))
	dom.Sol.Set(dom.EssenBcs.Expand(&φ, dom.Ny))
	if dom.ShowMsg {
		io.Pf("> Vibration: %d equations; lowest ω = %g\n", n, dom.Omega[0])
	}
	return
}

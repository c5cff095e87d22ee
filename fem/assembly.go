// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sync"

	"github.com/cpmech/klplate/ele"
	"github.com/cpmech/klplate/ele/plate"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Assemble computes the global matrices and vectors of mode. Elements are evaluated
// concurrently, each worker with its own copy of the plate integrand; the local integrals
// are then added sequentially in element order
func (o *Domain) Assemble(mode ele.SolutionMode) (err error) {

	// prepare integrand
	nel := o.Patch.Nel()
	o.Plate.SetMode(mode)
	o.Plate.InitIntegration(nel * o.Ngp)
	workers := o.clones()

	// local integrals
	elms := make([]*ele.ElmMats, nel)
	nen := o.Patch.Nen()
	err = runElements(nel, len(workers), func(w, e int) error {
		elms[e] = workers[w].NewLocalIntegral(nen, false)
		return o.integrate(workers[w], elms[e], e)
	})
	if err != nil {
		return
	}
	o.Plate.MergeSamples(workers...)

	// global structures
	caps := o.Plate.Caps()
	o.Kb, o.Mb, o.Fb = nil, nil, nil
	if caps.Stiffness {
		o.Kb = mat.NewSymDense(o.Ny, nil)
	}
	if caps.Mass {
		o.Mb = mat.NewSymDense(o.Ny, nil)
	}
	if caps.Load {
		o.Fb = make([]float64, o.Ny)
	}

	// add local integrals; matrices: stiffness then mass; vectors: load
	for e, elm := range elms {
		mnpc := o.Patch.Mnpc(e)
		k := 0
		if caps.Stiffness {
			addToSym(o.Kb, elm.A[k], mnpc)
			k++
		}
		if caps.Mass {
			addToSym(o.Mb, elm.A[k], mnpc)
		}
		if caps.Load {
			for a, I := range mnpc {
				o.Fb[I] += elm.B[0][a]
			}
		}
	}
	return
}

// AddPointLoads adds the consistent nodal forces N(x) P of all point loads to Fb
func (o *Domain) AddPointLoads() (err error) {
	if o.Fb == nil {
		return chk.Err("load vector must be assembled before adding point loads")
	}
	for _, pl := range o.Ploads {
		e, fe, err := o.sample(pl.X)
		if err != nil {
			return err
		}
		for a, I := range o.Patch.Mnpc(e) {
			o.Fb[I] += fe.N[a] * pl.P
		}
	}
	return
}

// integrate runs the integrand over all integration points of element e
func (o *Domain) integrate(p *plate.Plate, elm *ele.ElmMats, e int) (err error) {
	fe := ele.NewSample(o.Patch.Nen(), o.Patch.Ndim)
	for q, ip := range o.Patch.IntPoints(e, o.Sim.Mesh.Ngauss) {
		if err = o.Patch.CalcAt(fe, e, ip.X); err != nil {
			return
		}
		fe.Iip = e*o.Ngp + q
		fe.DetJxW = ip.W
		if err = p.EvalInt(elm, fe, ip.X); err != nil {
			return chk.Err("element %d, integration point %d:\n%v", e, q, err)
		}
	}
	return
}

// clones returns one copy of the plate integrand per worker
func (o *Domain) clones() (workers []*plate.Plate) {
	workers = make([]*plate.Plate, o.Nwork)
	for i := range workers {
		workers[i] = o.Plate.Clone()
	}
	return
}

// runElements calls fcn(w, e) for all elements with nw concurrent workers; worker w handles
// a contiguous block of elements. The first error in element order is returned
func runElements(nel, nw int, fcn func(w, e int) error) error {
	if nw > nel {
		nw = nel
	}
	if nw < 1 {
		nw = 1
	}
	errs := make([]error, nel)
	chunk := (nel + nw - 1) / nw
	var wg sync.WaitGroup
	for w := 0; w < nw; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for e := w * chunk; e < min((w+1)*chunk, nel); e++ {
				errs[e] = fcn(w, e)
				if errs[e] != nil {
					return
				}
			}
		}(w)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// addToSym adds the local matrix A to the upper triangle of K
func addToSym(K *mat.SymDense, A [][]float64, mnpc []int) {
	for a, I := range mnpc {
		for b, J := range mnpc {
			if I <= J {
				K.SetSym(I, J, K.At(I, J)+A[a][b])
			}
		}
	}
}

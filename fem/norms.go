// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/klplate/ele"
	"github.com/cpmech/klplate/ele/plate"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Norms holds the global norms, organised in groups as the plate norm integrand
type Norms struct {
	Names [][]string  // [ngroups][nslots] names
	Sums  [][]float64 // [ngroups][nslots] squared norms summed over elements (indices: global value)
	Vals  [][]float64 // [ngroups][nslots] reported values: square roots of Sums and effectivity indices
}

// Value returns the reported value of slot j (1-based) of group i (1-based)
func (o *Norms) Value(i, j int) float64 {
	return o.Vals[i-1][j-1]
}

// ComputeNorms integrates the norms over all elements with concurrent workers; each worker owns
// a copy of the plate integrand and its norm integrand. The external energy includes the work
// of point loads. Results are stored in dom.Norms
func (o *Domain) ComputeNorms() (res *Norms, err error) {

	// check
	if o.Deflections() == nil {
		return nil, chk.Err("cannot compute norms: there is no solution")
	}
	nproj := 0
	if len(o.Psol) > 0 {
		nproj = 1
	}

	// norm integrands
	workers := o.clones()
	norms := make([]*plate.Norm, len(workers))
	for i, w := range workers {
		norms[i] = o.newNorm(w, nproj)
	}
	norm := norms[0]

	// element norms
	nel, nen := o.Patch.Nel(), o.Patch.Nen()
	nstrc := o.Plate.Nstrc()
	psol := ele.Solution{Vecs: [][]float64{o.Psol}}
	ens := make([]*ele.ElmNorm, nel)
	err = runElements(nel, len(workers), func(w, e int) (err error) {
		mnpc := o.Patch.Mnpc(e)
		en := norms[w].NewElmNorm()
		ue, nbad := o.Sol.Gather(mnpc, 1)
		if nbad > 0 {
			return chk.Err("element %d: %d nodes are out of range of the solution vector (size %d)", e, nbad, len(o.Deflections()))
		}
		en.Vec = [][]float64{ue}
		if nproj > 0 {
			pe, nbad := psol.Gather(mnpc, nstrc)
			if nbad > 0 {
				return chk.Err("element %d: %d nodes are out of range of the projected solution (size %d)", e, nbad, len(o.Psol))
			}
			en.Psol = [][]float64{pe}
		}
		fe := ele.NewSample(nen, o.Patch.Ndim)
		for _, ip := range o.Patch.IntPoints(e, o.Sim.Mesh.Ngauss) {
			if err = o.Patch.CalcAt(fe, e, ip.X); err != nil {
				return
			}
			fe.DetJxW = ip.W
			if err = norms[w].EvalInt(en, fe, ip.X); err != nil {
				return chk.Err("element %d:\n%v", e, err)
			}
		}
		ens[e] = en
		return norms[w].FinalizeElement(en)
	})
	if err != nil {
		return
	}

	// sum in element order
	ngroups := norm.NoFields(0)
	res = &Norms{
		Names: make([][]string, ngroups),
		Sums:  make([][]float64, ngroups),
		Vals:  make([][]float64, ngroups),
	}
	for i := 0; i < ngroups; i++ {
		res.Sums[i] = make([]float64, norm.NoFields(i+1))
	}
	for _, en := range ens {
		k := 0
		for i := range res.Sums {
			for j := range res.Sums[i] {
				res.Sums[i][j] += en.Vals[k]
				k++
			}
		}
	}

	// work of point loads
	energy := 0.0
	for _, pl := range o.Ploads {
		w, err := o.Deflection(pl.X)
		if err != nil {
			return nil, err
		}
		energy += pl.P * w
	}
	norm.AddBoundaryTerms(res.Sums, energy)

	// reported values
	withAnasol := o.Anasol != nil
	for i := range res.Sums {
		res.Names[i] = make([]string, len(res.Sums[i]))
		res.Vals[i] = make([]float64, len(res.Sums[i]))
		for j, v := range res.Sums[i] {
			res.Names[i][j] = norm.Name(i+1, j+1, "")
			if i > 0 && withAnasol && j == 5 {
				res.Sums[i][j] = plate.EffectivityIndex(res.Sums[i][1], res.Sums[0][3], res.Sums[0][2])
				res.Vals[i][j] = res.Sums[i][j]
				continue
			}
			res.Vals[i][j] = math.Sqrt(math.Abs(v))
		}
	}
	o.Norms = res

	// message
	if o.ShowMsg {
		io.Pf("> Norms: energy norm = %g, external energy = %g\n", res.Vals[0][0], res.Sums[0][1])
	}
	return
}

// newNorm returns the norm integrand of p
func (o *Domain) newNorm(p *plate.Plate, nproj int) *plate.Norm {
	if o.Anasol == nil {
		return p.NewNorm(nil, nproj)
	}
	return p.NewNorm(o.Anasol, nproj)
}

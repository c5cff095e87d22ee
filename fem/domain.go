// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/klplate/ana"
	"github.com/cpmech/klplate/ele"
	"github.com/cpmech/klplate/ele/plate"
	"github.com/cpmech/klplate/inp"
	"github.com/cpmech/klplate/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// Domain holds the spline patch, the plate integrand and the solution at nodes (control points).
// There is one transverse deflection dof per node; thus equation numbers equal node numbers
type Domain struct {

	// init: auxiliary variables
	Sim      *inp.Simulation  // input data
	ShowMsg  bool             // show messages
	Nwork    int              // number of concurrent workers in element loops
	Patch    *shp.Patch       // spline patch
	Plate    *plate.Plate     // plate integrand
	Anasol   *ana.NavierPlate // [optional] analytical solution
	Ploads   []*inp.PointLoad // point loads
	Ngp      int              // number of integration points per element
	Ny       int              // total number of dofs
	EssenBcs EssentialBcs     // constrained equations

	// solution
	Sol   ele.Solution  // deflections @ nodes; Sol.Vecs[0]
	Psol  []float64     // [Ny*nstrc] projected stress resultants @ nodes; empty if not computed
	Kb    *mat.SymDense // stiffness matrix
	Mb    *mat.SymDense // mass matrix (vibration)
	Fb    []float64     // load vector
	Omega []float64     // angular eigenfrequencies in ascending order (vibration)
	Norms *Norms        // global norms; nil if not computed
}

// NewDomain allocates the domain described by sim
func NewDomain(sim *inp.Simulation, verbose bool) (o *Domain, err error) {

	// new domain
	o = &Domain{Sim: sim, ShowMsg: verbose, Nwork: sim.Solver.Workers, Ploads: sim.PointLoads}
	if o.Nwork < 1 {
		o.Nwork = 1
	}

	// patch
	m := sim.Mesh
	o.Patch, err = shp.NewPatch(m.Degree, m.Nel, m.Size)
	if err != nil {
		return nil, err
	}
	o.Ngp = int(math.Pow(float64(m.Ngauss), float64(sim.Ndim)))
	o.Ny = o.Patch.Nnod()

	// material and functions
	matdata, err := sim.Materials.Get(sim.Plate.Material)
	if err != nil {
		return
	}
	mdl, err := matdata.Solid(sim.Functions)
	if err != nil {
		return
	}
	pres, err := sim.Functions.Get(sim.Plate.Pressure)
	if err != nil {
		return
	}

	// integrand
	itg, err := ele.New("kirchhoff-love", sim.Ndim)
	if err != nil {
		return
	}
	o.Plate = itg.(*plate.Plate)
	o.Plate.SetMaterial(mdl)
	o.Plate.SetGravity(sim.Plate.Gravity)
	if pres != nil {
		o.Plate.SetPressure(pres)
	}
	if err = o.Plate.SetThickness(sim.Plate.Thickness); err != nil {
		return
	}
	if sim.Plate.Alpha != 0 {
		o.Plate.SetLocalSystem(plate.RotatedSystem{Alpha: sim.Plate.Alpha * math.Pi / 180.0})
	}

	// analytical solution
	o.Anasol, err = sim.NavierPlate()
	if err != nil {
		return
	}

	// boundary conditions
	err = o.EssenBcs.Set(sim.Mesh.Bc, o.Patch)
	if err != nil {
		return
	}

	// message
	if o.ShowMsg {
		io.Pf("> Domain: %d elements, %d nodes, %d fixed dofs, degree %d\n", o.Patch.Nel(), o.Ny, len(o.EssenBcs.Eqs), m.Degree)
		io.Pf("%s", o.Plate.PrintLog())
	}
	return
}

// Deflections returns the current solution vector
func (o *Domain) Deflections() []float64 {
	if o.Sol.Empty() {
		return nil
	}
	return o.Sol.Vecs[0]
}

// sample computes the basis functions of the element containing x
func (o *Domain) sample(x []float64) (e int, fe *ele.Sample, err error) {
	if len(x) != o.Patch.Ndim {
		return 0, nil, chk.Err("point must have %d coordinates. x = %v is invalid", o.Patch.Ndim, x)
	}
	e = o.Patch.Locate(x)
	fe = ele.NewSample(o.Patch.Nen(), o.Patch.Ndim)
	err = o.Patch.CalcAt(fe, e, x)
	return
}

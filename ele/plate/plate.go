// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package plate implements the Kirchhoff-Love thin plate integrand (bending only)
package plate

import (
	"bytes"

	"github.com/cpmech/klplate/ele"
	"github.com/cpmech/klplate/mdl/solid"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Plate implements the integrand of linear Kirchhoff-Love thin plates
//
//        z ^   p(x,y)
//          |   ↓↓↓↓↓↓↓↓↓↓↓↓↓↓↓↓↓
//          |  ===================  thickness t      unknown: w (transverse deflection)
//          +------------------------> x, y
//
//   curvature:  κ = {w,xx  w,yy  2w,xy}
//   resultant:  m = -D κ   with  D = t³/12 C(plane-stress)
//
type Plate struct {

	// basic data
	Ndim      int     // space dimension: 1 (strip) or 2 (plate)
	Thickness float64 // plate thickness
	Gravity   float64 // gravitation constant
	T         float64 // time used to evaluate pressure functions

	// collaborators. Mdl and Pres are not owned: they must outlive the analysis
	Mdl    solid.Model // material model; nil means unset
	Pres   dbf.T       // [optional] transverse pressure field
	LocSys LocalSystem // [optional] local coordinate system for stress resultants

	// primary solution used in stress recovery
	Primsol ele.Solution

	// mode and slots in local integrals; 0 means not computed
	mode ele.SolutionMode
	eK   int // stiffness matrix slot (1-based)
	eM   int // mass matrix slot (1-based)
	eS   int // load vector slot (1-based)

	// pressure @ integration points for visualisation; indexed by global ip id
	presVal []PresSample
}

// register integrand
func init() {
	ele.SetAllocator("kirchhoff-love", func(ndim int) (ele.Integrand, error) {
		return New(ndim)
	})
}

// New returns a new plate integrand with default thickness 0.1 and zero gravity
func New(ndim int) (o *Plate, err error) {
	if ndim != 1 && ndim != 2 {
		return nil, ele.Errf(ele.DimensionMismatch, "plate.New", "space dimension must be 1 or 2. ndim = %d is invalid", ndim)
	}
	o = &Plate{Ndim: ndim, Thickness: 0.1}
	o.SetMode(ele.Static)
	return
}

// Nstrc returns the number of curvature (and stress resultant) components
func (o *Plate) Nstrc() int {
	return o.Ndim * (o.Ndim + 1) / 2
}

// SetMaterial sets the material model; nil unsets it
func (o *Plate) SetMaterial(mdl solid.Model) { o.Mdl = mdl }

// SetPressure sets the pressure field; nil removes it
func (o *Plate) SetPressure(f dbf.T) { o.Pres = f }

// SetGravity sets the gravitation constant
func (o *Plate) SetGravity(g float64) { o.Gravity = g }

// SetLocalSystem sets the local coordinate system; the plate takes ownership of it
func (o *Plate) SetLocalSystem(ls LocalSystem) { o.LocSys = ls }

// SetThickness sets the plate thickness
func (o *Plate) SetThickness(t float64) (err error) {
	if t <= 0 {
		return chk.Err("plate thickness must be positive. t = %g is invalid", t)
	}
	o.Thickness = t
	return
}

// Mode returns the current solution mode
func (o *Plate) Mode() ele.SolutionMode { return o.mode }

// SetMode sets the solution mode; all slot indices are reset.
// In Recovery mode the primary solution holds exactly one vector
func (o *Plate) SetMode(mode ele.SolutionMode) {
	o.mode = mode
	o.eK, o.eM, o.eS = 0, 0, 0
	if mode == ele.Recovery {
		o.Primsol.Resize(1)
	} else {
		o.Primsol.Clear()
	}
	switch mode {
	case ele.Static:
		o.eK, o.eS = 1, 1
	case ele.Vibration:
		o.eK, o.eM = 1, 2
	case ele.StiffOnly:
		o.eK = 1
	case ele.RhsOnly:
		o.eS = 1
	}
}

// Caps returns which contributions are computed in the current mode
func (o *Plate) Caps() ele.Caps {
	return ele.Caps{Stiffness: o.eK > 0, Mass: o.eM > 0, Load: o.eS > 0}
}

// NewLocalIntegral allocates the local integral of an element with nen nodes.
// neumann flags a pure-load (boundary) request: no matrices are allocated then
func (o *Plate) NewLocalIntegral(nen int, neumann bool) *ele.ElmMats {
	nA := 1
	if neumann {
		nA = 0
	}
	elm := ele.NewElmMats()
	switch o.mode {
	case ele.Static:
		elm.RhsOnly = neumann
		elm.WithLHS = !neumann
		elm.Resize(nA, 1)
	case ele.Vibration:
		elm.Resize(2, 0)
	case ele.StiffOnly:
		elm.Resize(1, 0)
	case ele.RhsOnly:
		elm.Resize(nA, 1)
		elm.RhsOnly = true
		elm.WithLHS = false
	case ele.Recovery:
		elm.RhsOnly = true
		elm.WithLHS = false
	}
	elm.Redim(nen)
	return elm
}

// PrintLog returns a summary of the plate properties
func (o *Plate) PrintLog() string {
	var buf bytes.Buffer
	io.Ff(&buf, "KirchhoffLovePlate: thickness = %g, gravity = %g\n", o.Thickness, o.Gravity)
	if o.Mdl == nil {
		io.Ff(&buf, "material: unset\n")
	} else {
		io.Ff(&buf, "%v\n", o.Mdl)
	}
	if o.Pres != nil {
		io.Ff(&buf, "pressure: %T\n", o.Pres)
	}
	return buf.String()
}

// Clone returns a copy that shares material and pressure field but owns its own
// pressure samples and primary solution list. Give one clone to each concurrent worker
func (o *Plate) Clone() *Plate {
	c := *o
	c.Primsol.Vecs = append([][]float64(nil), o.Primsol.Vecs...)
	c.presVal = make([]PresSample, len(o.presVal))
	return &c
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements a reference driver for the plate integrand: single spline patch,
// dense solvers, stress recovery and error norms
package fem

import (
	"time"

	"github.com/cpmech/klplate/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Main holds all data for a simulation using the finite element method
type Main struct {
	Sim     *inp.Simulation // simulation data
	Dom     *Domain         // domain
	Solver  Solver          // finite element method solver; e.g. static, vibration
	ShowMsg bool            // show messages
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.yaml) filename including full path
//   verbose     -- show messages
func NewMain(simfilepath string, verbose bool) (o *Main, err error) {
	sim, err := inp.ReadSim(simfilepath)
	if err != nil {
		return
	}
	return NewMainSim(sim, verbose)
}

// NewMainSim returns a new Main structure with simulation data already read
func NewMainSim(sim *inp.Simulation, verbose bool) (o *Main, err error) {

	// new Main object
	o = &Main{Sim: sim, ShowMsg: verbose}
	if o.ShowMsg {
		io.Pf("> Simulation %q: %s\n", sim.Key, sim.Data.Desc)
	}

	// domain
	o.Dom, err = NewDomain(sim, verbose)
	if err != nil {
		return nil, err
	}

	// allocate solver
	if alloc, ok := allocators[sim.Solver.Mode]; ok {
		o.Solver = alloc(sim.Solver.Nfreq)
	} else {
		return nil, chk.Err("cannot find solver type named %q", sim.Solver.Mode)
	}
	return
}

// Run runs FE simulation. In static mode the stress resultants are projected (if requested)
// and the norms are computed
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// message
	if o.ShowMsg {
		io.Pf("> Running FE solver\n")
	}

	// solve
	err = o.Solver.Run(o.Dom)
	if err != nil {
		return
	}
	if o.Sim.Solver.Mode != "static" {
		return
	}

	// recovery
	if o.Sim.Solver.Project {
		err = o.Dom.Project()
		if err != nil {
			return
		}
	}
	_, err = o.Dom.ComputeNorms()
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit prints final message with cpu time
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}
	return prevErr
}

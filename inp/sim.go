// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.yaml) problem file
package inp

import (
	"path/filepath"

	"github.com/cpmech/klplate/ana"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Data holds global data for simulations
type Data struct {
	Desc   string `yaml:"desc"`   // description of simulation
	DirOut string `yaml:"dirout"` // directory for output; e.g. /tmp/klplate
}

// PlateData holds the plate properties
type PlateData struct {
	Material  string  `yaml:"material"`  // name of material
	Thickness float64 `yaml:"thickness"` // plate thickness
	Gravity   float64 `yaml:"gravity"`   // gravitation constant
	Pressure  string  `yaml:"pressure"`  // name of pressure function; empty means none
	Alpha     float64 `yaml:"alpha"`     // angle (degrees) of the local system for stress resultants
}

// PointLoad holds a concentrated transverse force
type PointLoad struct {
	X []float64 `yaml:"x"` // position
	P float64   `yaml:"p"` // force
}

// AnaSolData holds the analytical solution definition
type AnaSolData struct {
	Type string             `yaml:"type"` // "navierplate"
	Prms map[string]float64 `yaml:"prms"` // parameters: a b t E nu pz [xi eta [c d]] [nterms]
}

// MeshData holds the spline patch data
type MeshData struct {
	Degree int       `yaml:"degree"` // polynomial degree (≥ 2)
	Nel    []int     `yaml:"nel"`    // number of elements along each direction
	Size   []float64 `yaml:"size"`   // patch size along each direction
	Bc     string    `yaml:"bc"`     // boundary conditions: "simply", "clamped" or "free"
	Ngauss int       `yaml:"ngauss"` // number of Gauss points along each direction; 0 means degree+1
}

// SolverData holds solver data
type SolverData struct {
	Mode    string `yaml:"mode"`    // "static" or "vibration"
	Project bool   `yaml:"project"` // compute L2 projection of stress resultants and recovery-based estimates
	Workers int    `yaml:"workers"` // number of concurrent workers for element loops
	Nfreq   int    `yaml:"nfreq"`   // number of eigenfrequencies to report in vibration mode
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data       Data         `yaml:"data"`       // global simulation data
	Functions  FuncsData    `yaml:"functions"`  // all functions
	Materials  MatsData     `yaml:"materials"`  // all materials
	Plate      PlateData    `yaml:"plate"`      // plate properties
	PointLoads []*PointLoad `yaml:"pointloads"` // concentrated forces
	AnaSol     *AnaSolData  `yaml:"anasol"`     // [optional] analytical solution
	Mesh       MeshData     `yaml:"mesh"`       // spline patch
	Solver     SolverData   `yaml:"solver"`     // solver data

	// derived
	Key  string `yaml:"-"` // simulation key; e.g. plate01.yaml => plate01
	Ndim int    `yaml:"-"` // space dimension
}

// Default returns the default simulation: a simply supported unit square plate under unit pressure
func Default() *Simulation {
	return &Simulation{
		Data: Data{Desc: "simply supported square plate", DirOut: "/tmp/klplate"},
		Functions: FuncsData{
			{Name: "load", Type: "cte", Prms: map[string]float64{"c": 1}},
		},
		Materials: MatsData{
			{Name: "plate", Model: "lin-elast", Prms: map[string]float64{"E": 1000, "nu": 0.3, "rho": 1}},
		},
		Plate: PlateData{Material: "plate", Thickness: 0.1, Pressure: "load"},
		AnaSol: &AnaSolData{Type: "navierplate", Prms: map[string]float64{
			"a": 1, "b": 1, "t": 0.1, "E": 1000, "nu": 0.3, "pz": 1,
		}},
		Mesh:   MeshData{Degree: 2, Nel: []int{8, 8}, Size: []float64{1, 1}, Bc: "simply"},
		Solver: SolverData{Mode: "static", Project: true, Workers: 1, Nfreq: 5},
	}
}

// Parse decodes YAML data over the defaults and validates the result.
// Lists given in data (functions, materials, ...) replace the default lists;
// the analytical solution is not inherited from the defaults
func Parse(data []byte) (o *Simulation, err error) {
	o = Default()
	o.AnaSol = nil
	err = yaml.Unmarshal(data, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal problem data:\n%v", err)
	}
	err = o.Validate()
	if err != nil {
		return nil, err
	}
	return
}

// ReadSim reads all simulation data from a .yaml file
func ReadSim(simfilepath string) (o *Simulation, err error) {
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q", simfilepath)
	}
	o, err = Parse(b)
	if err != nil {
		return nil, chk.Err("ReadSim: file %q is invalid:\n%v", simfilepath, err)
	}
	o.Key = io.FnKey(filepath.Base(simfilepath))
	if o.Data.DirOut == "" {
		o.Data.DirOut = "/tmp/klplate/" + o.Key
	}
	return
}

// Marshal encodes the simulation data as YAML
func (o *Simulation) Marshal() ([]byte, error) {
	return yaml.Marshal(o)
}

// Validate checks the simulation data and sets derived values
func (o *Simulation) Validate() (err error) {

	// mesh
	m := &o.Mesh
	o.Ndim = len(m.Nel)
	if o.Ndim < 1 || o.Ndim > 2 || len(m.Size) != o.Ndim {
		return chk.Err("mesh must have 1 or 2 directions with sizes. nel = %v, size = %v", m.Nel, m.Size)
	}
	if m.Degree < 2 {
		return chk.Err("polynomial degree must be at least 2 for C¹ continuity. degree = %d is invalid", m.Degree)
	}
	for i := 0; i < o.Ndim; i++ {
		if m.Nel[i] < 1 || m.Size[i] <= 0 {
			return chk.Err("number of elements and sizes must be positive. nel = %v, size = %v", m.Nel, m.Size)
		}
	}
	if m.Ngauss == 0 {
		m.Ngauss = m.Degree + 1
	}
	if m.Ngauss < 1 {
		return chk.Err("number of Gauss points must be positive. ngauss = %d is invalid", m.Ngauss)
	}
	switch m.Bc {
	case "simply", "clamped", "free":
	default:
		return chk.Err("boundary condition %q is invalid; use simply, clamped or free", m.Bc)
	}

	// plate
	if o.Plate.Thickness <= 0 {
		return chk.Err("plate thickness must be positive. thickness = %g is invalid", o.Plate.Thickness)
	}
	mat, err := o.Materials.Get(o.Plate.Material)
	if err != nil {
		return
	}
	if _, err = mat.Solid(o.Functions); err != nil {
		return
	}
	if _, err = o.Functions.Get(o.Plate.Pressure); err != nil {
		return
	}

	// point loads
	for i, p := range o.PointLoads {
		if len(p.X) != o.Ndim {
			return chk.Err("point load %d must have %d coordinates. x = %v is invalid", i, o.Ndim, p.X)
		}
		for j, x := range p.X {
			if x < 0 || x > m.Size[j] {
				return chk.Err("point load %d is outside the patch. x = %v", i, p.X)
			}
		}
	}

	// analytical solution
	if o.AnaSol != nil {
		if o.Ndim != 2 {
			return chk.Err("analytical solutions are available in 2D only")
		}
		if _, err = o.NavierPlate(); err != nil {
			return
		}
	}

	// solver
	switch o.Solver.Mode {
	case "static", "vibration":
	default:
		return chk.Err("solver mode %q is invalid; use static or vibration", o.Solver.Mode)
	}
	if o.Solver.Workers < 1 {
		o.Solver.Workers = 1
	}
	return
}

// NavierPlate returns the analytical solution; nil if none is given
func (o *Simulation) NavierPlate() (sol *ana.NavierPlate, err error) {
	if o.AnaSol == nil {
		return
	}
	if o.AnaSol.Type != "navierplate" {
		return nil, chk.Err("analytical solution %q is not available", o.AnaSol.Type)
	}
	sol = new(ana.NavierPlate)
	err = sol.Init(ToParams(o.AnaSol.Prms))
	if err != nil {
		return nil, err
	}
	return
}

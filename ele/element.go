// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements element-level integrands and their local integrals
package ele

// Integrand defines what all element integrands must implement.
// A driver calls EvalInt once per integration point of each element; the integrand
// only adds to the local integral and never assembles global quantities.
type Integrand interface {

	// solution mode and local integrals
	SetMode(mode SolutionMode)                       // sets mode and resets slot indices
	Mode() SolutionMode                              // returns current mode
	Caps() Caps                                      // which contributions are computed in current mode
	NewLocalIntegral(nen int, neumann bool) *ElmMats // allocates a local integral for nen nodes
	InitIntegration(nGp int)                         // prepares integration of nGp points (global count)

	// called for each integration point
	EvalInt(elm *ElmMats, fe *Sample, x []float64) (err error)            // volume (domain) terms
	EvalBou(elm *ElmMats, fe *Sample, x, normal []float64) (err error)    // boundary (Neumann) terms
	EvalSol(fe *Sample, x []float64, mnpc []int) (s []float64, err error) // secondary solution @ point
}

// Caps tells which element contributions an integrand computes in its current mode
type Caps struct {
	Stiffness bool // computes stiffness matrix
	Mass      bool // computes mass matrix
	Load      bool // computes load vector
}

// NormIntegrand defines integrands that compute element norms (error estimates)
type NormIntegrand interface {
	NewElmNorm() *ElmNorm                                             // allocates an element norm accumulator
	EvalInt(en *ElmNorm, fe *Sample, x []float64) (err error)         // adds contributions of one integration point
	EvalBou(en *ElmNorm, fe *Sample, x, normal []float64) (err error) // boundary contributions
	FinalizeElement(en *ElmNorm) (err error)                          // computes element quantities after the ip loop
	AddBoundaryTerms(gNorm [][]float64, energy float64)               // adds boundary energy computed elsewhere
	NoFields(group int) int                                           // number of norm slots in group; group<1 => number of groups
	Name(group, j int, prefix string) string                          // name of slot j (1-based) in group (1-based)
}

// HasFields defines integrands that describe their primary and secondary fields
type HasFields interface {
	NoFields(fld int) int                            // fld<2: number of primary fields per node; otherwise number of secondary
	Field1Name(i int, prefix string) string          // name of primary field
	Field2Name(i int, prefix string) (string, error) // name of secondary field i
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// SolutionMode selects which element contributions are allocated and computed
type SolutionMode int

// solution modes
const (
	Static    SolutionMode = iota // stiffness and load
	Vibration                     // stiffness and mass
	StiffOnly                     // stiffness only
	RhsOnly                       // load only
	Recovery                      // secondary solution recovery; no matrices
)

// String returns the name of the mode
func (o SolutionMode) String() string {
	switch o {
	case Static:
		return "STATIC"
	case Vibration:
		return "VIBRATION"
	case StiffOnly:
		return "STIFF_ONLY"
	case RhsOnly:
		return "RHS_ONLY"
	case Recovery:
		return "RECOVERY"
	}
	return "UNKNOWN"
}

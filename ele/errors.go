// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"errors"

	"github.com/cpmech/gosl/io"
)

// Kind classifies element errors
type Kind int

// error kinds
const (
	DimensionMismatch         Kind = iota + 1 // malformed arrays or vectors with wrong length
	MissingData                               // no material, no solution, index out of range
	UnsupportedOperation                      // operation not available for this integrand
	MaterialEvaluationFailure                 // constitutive model failed
)

// String returns the name of the kind
func (o Kind) String() string {
	switch o {
	case DimensionMismatch:
		return "DimensionMismatch"
	case MissingData:
		return "MissingData"
	case UnsupportedOperation:
		return "UnsupportedOperation"
	case MaterialEvaluationFailure:
		return "MaterialEvaluationFailure"
	}
	return "Unknown"
}

// Error holds an element error with its kind and the name of the failing operation
type Error struct {
	Kind Kind   // classification
	Op   string // operation; e.g. "Plate.Bmatrix"
	Msg  string // message
	Err  error  // wrapped error; e.g. from material model
}

// Error implements the error interface
func (o *Error) Error() string {
	if o.Err != nil {
		return io.Sf("%s: %v: %s:\n%v", o.Op, o.Kind, o.Msg, o.Err)
	}
	return io.Sf("%s: %v: %s", o.Op, o.Kind, o.Msg)
}

// Unwrap returns the wrapped error
func (o *Error) Unwrap() error { return o.Err }

// Errf returns a new Error
func Errf(kind Kind, op, msg string, prm ...interface{}) error {
	return &Error{Kind: kind, Op: op, Msg: io.Sf(msg, prm...)}
}

// Wrap returns a new Error wrapping err
func Wrap(err error, kind Kind, op, msg string, prm ...interface{}) error {
	return &Error{Kind: kind, Op: op, Msg: io.Sf(msg, prm...), Err: err}
}

// IsKind tells whether err (or any error it wraps) is an Error of the given kind
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

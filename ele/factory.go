// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// AllocatorType defines a function that allocates an integrand for ndim space dimensions
type AllocatorType func(ndim int) (Integrand, error)

// New returns a new integrand from factory
func New(name string, ndim int) (o Integrand, err error) {
	fcn, ok := allocators[name]
	if !ok {
		return nil, chk.Err("cannot get allocator for integrand %q", name)
	}
	return fcn(ndim)
}

// SetAllocator sets a new callback function to allocate an integrand
func SetAllocator(name string, fcn AllocatorType) {
	if _, ok := allocators[name]; ok {
		chk.Panic("cannot set allocator function for %q because integrand name exists already", name)
	}
	allocators[name] = fcn
}

// Names returns the sorted names of all registered integrands
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all integrand allocators
var allocators = make(map[string]AllocatorType)

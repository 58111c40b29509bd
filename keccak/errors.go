// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

import "errors"

var (
	// ErrInvalidLength is returned when a bit sequence's length fails a
	// required exact-value or divisibility precondition (e.g. a state
	// conversion given something other than 1600 bits).
	ErrInvalidLength = errors.New("keccak: invalid length")

	// ErrInvalidCapacity is returned when the sponge is asked for a
	// capacity c that leaves no rate (c >= b).
	ErrInvalidCapacity = errors.New("keccak: invalid capacity")
)

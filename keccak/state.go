// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

import (
	"fmt"

	"github.com/dlg/sha3ref/bitseq"
)

// W is the lane width in bits for SHA-3's Keccak-p[1600,24]; ell =
// log2(W) = 6. This package does not support other widths (b in
// {25,...,800}); see the module's SPEC_FULL.md Non-goals.
const W = 64

// B is the permutation width in bits: B = 5*5*W = 1600.
const B = 5 * 5 * W

// Ell is log2(W), the parameter the standard calls ell; 6 for SHA-3.
const Ell = 6

// State is the logical 5x5xW array of bits A[x,y,z] from FIPS 202,
// stored one bit per byte. Its dimensions are fixed by the type itself,
// so unlike a slice-based representation it cannot have the wrong
// length: the only place a length precondition needs a runtime check is
// the boundary where a State is built from, or flattened to, a bit
// sequence of unconstrained length.
type State [5][5][W]byte

// BitsToState maps a 1600-bit sequence onto a State such that
// A[x,y,z] = S[W*(5y+x)+z], per FIPS 202's own indexing. It fails with
// ErrInvalidLength unless len(s) == B.
func BitsToState(s bitseq.Seq) (State, error) {
	var a State
	if len(s) != B {
		return a, ErrInvalidLength
	}
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			for z := 0; z < W; z++ {
				a[x][y][z] = s[W*(5*y+x)+z]
			}
		}
	}
	return a, nil
}

// StateToBits is the exact inverse of BitsToState.
func StateToBits(a State) bitseq.Seq {
	s := bitseq.Zeros(B)
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			for z := 0; z < W; z++ {
				s[W*(5*y+x)+z] = a[x][y][z]
			}
		}
	}
	return s
}

// lane returns the bits of lane (x,y) as a 64-bit integer, with z=0 as
// the least-significant bit. It backs DumpLanes and the Keccak-f[1600]
// known-answer test; the algorithm itself never needs a packed
// representation.
func (a State) lane(x, y int) uint64 {
	var v uint64
	for z := 0; z < W; z++ {
		v |= uint64(a[x][y][z]&1) << uint(z)
	}
	return v
}

// DumpLanes writes a's 25 lanes as 16-digit hex integers, labeled by
// (x,y), to aid debugging a wrong rotation offset or a transposed
// coordinate — the kind of off-by-one that produces a digest that still
// looks random. Grounded on original_source's
// debug_state_as_lanes_of_integers. Nothing in this module calls it;
// the hash algorithm never does.
func DumpLanes(title string, a State) string {
	out := title + " (as lanes):\n"
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			out += fmt.Sprintf("  [%d][%d] = %016X\n", x, y, a.lane(x, y))
		}
	}
	return out
}

// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

import "github.com/dlg/sha3ref/bitseq"

// NumRounds is nr for Keccak-p[1600,24]: 24 rounds.
const NumRounds = 24

// Permute applies Keccak-p[1600,24] (FIPS 202 Algorithm 7, specialized
// to b=1600) to a 1600-bit state, returning the permuted state. It
// fails with ErrInvalidLength unless len(s) == B.
//
// The round-index loop bound 12+2*Ell-nr goes negative for nr >
// 12+2*Ell — a trap when generalizing to smaller Keccak-p widths, but
// harmless here since NumRounds is a fixed 24 and Ell is a fixed 6,
// giving ir in [0, 23].
func Permute(s bitseq.Seq) (bitseq.Seq, error) {
	a, err := BitsToState(s)
	if err != nil {
		return nil, err
	}
	for ir := 12 + 2*Ell - NumRounds; ir <= 12+2*Ell-1; ir++ {
		a = Iota(Chi(Pi(Rho(Theta(a)))), ir, Ell)
	}
	return StateToBits(a), nil
}

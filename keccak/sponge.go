// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

import "github.com/dlg/sha3ref/bitseq"

// Sponge implements KECCAK[c] = SPONGE[Keccak-p[1600,24], pad10*1,
// 1600-c] (FIPS 202 Algorithm 8, specialized the way section 5.2 of the
// standard specializes it for the SHA-3 family): it absorbs the padded
// message N into a 1600-bit running state r bits at a time, applying
// the permutation between blocks, then squeezes d bits of output the
// same way.
//
// Absorption is strictly sequential: block i is fully absorbed,
// including the permutation call, before block i+1 is read. There is no
// shared state between calls — each call owns its own running state for
// the duration of one invocation.
//
// Sponge fails with ErrInvalidCapacity if c >= 1600 (leaving no rate to
// absorb into). It never fails for any other reason once that
// precondition holds; the length checks inside keccak.Permute are
// internal invariants that Sponge's own bookkeeping guarantees.
func Sponge(c int, n bitseq.Seq, d int) (bitseq.Seq, error) {
	if c >= B {
		return nil, ErrInvalidCapacity
	}
	r := B - c

	p := n.Concat(Pad10Star1(r, len(n)))
	numBlocks := len(p) / r

	s := bitseq.Zeros(B)
	for i := 0; i < numBlocks; i++ {
		block := p.Slice(i*r, (i+1)*r).Concat(bitseq.Zeros(c))
		xored, err := s.XOR(block)
		if err != nil {
			return nil, err
		}
		s, err = Permute(xored)
		if err != nil {
			return nil, err
		}
	}

	z := bitseq.Seq{}
	for {
		z = z.Concat(s.Trunc(r))
		if len(z) >= d {
			return z.Trunc(d), nil
		}
		var err error
		s, err = Permute(s)
		if err != nil {
			return nil, err
		}
	}
}

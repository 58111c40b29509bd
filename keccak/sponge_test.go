// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

import (
	"bytes"
	"testing"

	"github.com/dlg/sha3ref/bitseq"
)

func TestSpongeInvalidCapacity(t *testing.T) {
	_, err := Sponge(B, bitseq.Seq{}, 8)
	if err != ErrInvalidCapacity {
		t.Fatalf("err = %v, want ErrInvalidCapacity", err)
	}
	_, err = Sponge(B+8, bitseq.Seq{}, 8)
	if err != ErrInvalidCapacity {
		t.Fatalf("err = %v, want ErrInvalidCapacity", err)
	}
}

func TestSpongeOutputLength(t *testing.T) {
	for _, d := range []int{8, 64, 512, 1000} {
		out, err := Sponge(512, bitseq.BytesToBits([]byte("abc")), d)
		if err != nil {
			t.Fatalf("Sponge: %v", err)
		}
		if len(out) != d {
			t.Fatalf("Sponge(...,%d) produced %d bits, want %d", d, len(out), d)
		}
	}
}

func TestSpongeIsDeterministic(t *testing.T) {
	n := bitseq.BytesToBits([]byte("determinism"))
	a, err := Sponge(512, n, 256)
	if err != nil {
		t.Fatalf("Sponge: %v", err)
	}
	b, err := Sponge(512, n, 256)
	if err != nil {
		t.Fatalf("Sponge: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("Sponge is not deterministic")
	}
}

// A squeeze of more than one rate's worth of bits must re-permute
// between blocks: squeezing 2*rate bits should not just be the first
// rate bits repeated.
func TestSpongeSqueezeMultipleBlocksVaries(t *testing.T) {
	n := bitseq.BytesToBits([]byte("multi-block squeeze"))
	rate := B - 512
	out, err := Sponge(512, n, 2*rate)
	if err != nil {
		t.Fatalf("Sponge: %v", err)
	}
	first := out.Trunc(rate)
	second := out.TruncatePrefix(rate)
	if bytes.Equal(first, second) {
		t.Fatalf("first and second squeezed blocks are identical, want the permutation to have advanced the state")
	}
}

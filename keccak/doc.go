// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keccak implements the Keccak-p[1600,24] permutation and the
// Keccak[c] sponge construction defined by FIPS PUB 202, over the
// pedagogical bit-per-byte state representation the standard itself
// uses (A[x,y,z], each a single stored bit) rather than the 64-bit-lane
// packing a production implementation would use.
//
// This package is deliberately narrow: it has no notion of a SHA-3
// variant, a domain-separation suffix, or a digest length. Package sha3
// layers those on top of keccak.Sponge. keccak has no streaming API,
// no SHAKE support, and no support for Keccak-p widths other than 1600
// — see the top-level module's SPEC_FULL.md for why.
package keccak

// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sha3 implements the SHA-3 fixed-output-length hash functions
// defined by FIPS PUB 202, built on package keccak's sponge.
//
// Sizes and generic security strengths:
//
//	          output  collision-resistance  preimage-resistance
//	SHA3-224     28B              112 bits             224 bits
//	SHA3-256     32B              128 bits             256 bits
//	SHA3-384     48B              192 bits             384 bits
//	SHA3-512     64B              256 bits             512 bits
//
// This package has no streaming hash.Hash implementation and no SHAKE
// functions; see the top-level module's SPEC_FULL.md for why. Each
// variant is a single pure function over the whole input.
package sha3

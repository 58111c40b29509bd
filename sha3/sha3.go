// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import (
	"github.com/dlg/sha3ref/bitseq"
	"github.com/dlg/sha3ref/keccak"
)

// Digest sizes, in bytes, mirroring the naming convention of the
// stdlib's crypto/sha256-style Size constants.
const (
	Size224 = 224 / 8
	Size256 = 256 / 8
	Size384 = 384 / 8
	Size512 = 512 / 8
)

// domainSeparator is the two-bit suffix '01' that FIPS 202 appends to M
// before feeding it to KECCAK[c], distinguishing SHA-3 from raw Keccak
// (no suffix) and from SHAKE (suffix '1111').
var domainSeparator = bitseq.Seq{0, 1}

// sum implements the SHA-3 family wrapper shared by all four variants:
// SHA3-v(M) = KECCAK[2v](M || 01, v), for v in {224,256,384,512}.
func sum(data []byte, c, d int) []byte {
	n := bitseq.BytesToBits(data).Concat(domainSeparator)
	digestBits, err := keccak.Sponge(c, n, d)
	if err != nil {
		// c and d are fixed per variant below and always satisfy
		// Sponge's only precondition (c < 1600); this can only fire if
		// a caller adds a new variant with a bad (c, d) pair.
		panic(err)
	}
	digestBytes, err := bitseq.BitsToBytes(digestBits)
	if err != nil {
		// d is always a multiple of 8 for the four standard variants.
		panic(err)
	}
	return digestBytes
}

// Sum224 returns the SHA3-224 digest of data.
func Sum224(data []byte) [Size224]byte {
	var out [Size224]byte
	copy(out[:], sum(data, 448, 224))
	return out
}

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) [Size256]byte {
	var out [Size256]byte
	copy(out[:], sum(data, 512, 256))
	return out
}

// Sum384 returns the SHA3-384 digest of data.
func Sum384(data []byte) [Size384]byte {
	var out [Size384]byte
	copy(out[:], sum(data, 768, 384))
	return out
}

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) [Size512]byte {
	var out [Size512]byte
	copy(out[:], sum(data, 1024, 512))
	return out
}

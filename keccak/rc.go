// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

// RC is the round-constant generating function, FIPS 202 Algorithm 5:
// an 8-stage linear-feedback shift register read off one bit at a time.
// It is only ever called with non-negative t; the sequence it produces
// is periodic with period 255.
//
// The register is modeled exactly as the standard phrases it — prepend
// a zero bit, fold the new top bit back into positions 0, 4, 5 and 6,
// then drop back to 8 bits — rather than as a closed-form bit trick,
// to keep this function checkable line-by-line against Algorithm 5.
func RC(t int) byte {
	if t%255 == 0 {
		return 1
	}

	r := [8]byte{1, 0, 0, 0, 0, 0, 0, 0}
	for i := 0; i < t%255; i++ {
		// Prepend a zero: r becomes conceptually 9 bits, [0, r[0..8)].
		var r9 [9]byte
		r9[0] = 0
		copy(r9[1:], r[:])

		r9[0] ^= r9[8]
		r9[4] ^= r9[8]
		r9[5] ^= r9[8]
		r9[6] ^= r9[8]

		copy(r[:], r9[:8])
	}
	return r[0]
}

// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

import "github.com/dlg/sha3ref/bitseq"

// Pad10Star1 is the multi-rate padding rule pad10*1 (FIPS 202 Algorithm
// 9): it returns a bit sequence which, appended to a length-m message,
// brings the total length to a positive multiple of x. x must be
// positive and m non-negative; violating either is a caller bug, not a
// condition this function reports.
//
// The returned sequence is always 1, then some number of zero bits,
// then 1 — minimum length 2, when j is 0.
func Pad10Star1(x, m int) bitseq.Seq {
	j := mod(-m-2, x)

	out := make(bitseq.Seq, 0, j+2)
	out = append(out, 1)
	out = append(out, make(bitseq.Seq, j)...)
	out = append(out, 1)
	return out
}

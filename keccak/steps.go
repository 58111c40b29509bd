// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

// Five transformations compose into one round, FIPS 202 Algorithms
// 1-6: theta, rho, pi, chi, iota. Each is a pure function from State to
// State; none of them can observe or produce a state of the wrong
// shape, because State's dimensions are fixed by its type.

// rhoOffsets is FIPS 202 Table 2: the rotation offset, in bits, of lane
// (x,y) under rho. Values may exceed W and must be reduced mod W.
// Cross-checked against original_source's RHO_OFFSETS constant, which
// asserts (in its own rho implementation) that this table and the
// triangular-number step formula below agree for every (x,y) pair.
var rhoOffsets = [5][5]int{
	{0, 36, 3, 105, 210},
	{1, 300, 10, 45, 66},
	{190, 6, 171, 15, 253},
	{28, 55, 153, 21, 120},
	{91, 276, 231, 136, 78},
}

// mod returns n mod m, normalized to a non-negative residue in [0, m);
// Go's % can return a negative result for a negative n, which every
// coordinate-arithmetic step below must guard against.
func mod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

// Theta is FIPS 202 Algorithm 1.
func Theta(a State) State {
	var c [5][W]byte
	for x := 0; x < 5; x++ {
		for z := 0; z < W; z++ {
			c[x][z] = a[x][0][z] ^ a[x][1][z] ^ a[x][2][z] ^ a[x][3][z] ^ a[x][4][z]
		}
	}

	var d [5][W]byte
	for x := 0; x < 5; x++ {
		for z := 0; z < W; z++ {
			d[x][z] = c[mod(x-1, 5)][z] ^ c[mod(x+1, 5)][mod(z-1, W)]
		}
	}

	var out State
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			for z := 0; z < W; z++ {
				out[x][y][z] = a[x][y][z] ^ d[x][z]
			}
		}
	}
	return out
}

// Rho is FIPS 202 Algorithm 2. It is implemented via the standard's
// triangular-number stepping of (x,y), which is equivalent to indexing
// rhoOffsets directly; TestRhoMatchesOffsetTable in steps_test.go
// asserts the two agree.
func Rho(a State) State {
	var out State
	for z := 0; z < W; z++ {
		out[0][0][z] = a[0][0][z]
	}

	x, y := 1, 0
	for t := 0; t < 24; t++ {
		offset := (t + 1) * (t + 2) / 2
		for z := 0; z < W; z++ {
			out[x][y][z] = a[x][y][mod(z-offset, W)]
		}
		x, y = y, mod(2*x+3*y, 5)
	}
	return out
}

// Pi is FIPS 202 Algorithm 3.
func Pi(a State) State {
	var out State
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			for z := 0; z < W; z++ {
				out[x][y][z] = a[mod(x+3*y, 5)][x][z]
			}
		}
	}
	return out
}

// Chi is FIPS 202 Algorithm 4. It is the only non-linear step; like
// theta and pi, it is not an involution.
func Chi(a State) State {
	var out State
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			for z := 0; z < W; z++ {
				out[x][y][z] = a[x][y][z] ^ ((a[mod(x+1, 5)][y][z] ^ 1) & a[mod(x+2, 5)][y][z])
			}
		}
	}
	return out
}

// Iota is FIPS 202 Algorithm 6, applied with round index ir and ell
// (6 for SHA-3's W=64). It XORs the round constant derived from RC into
// lane (0,0) only; every other lane passes through unchanged.
func Iota(a State, ir, ell int) State {
	out := a

	var rc [W]byte
	for j := 0; j <= ell; j++ {
		rc[(1<<uint(j))-1] = RC(j + 7*ir)
	}

	for z := 0; z < W; z++ {
		out[0][0][z] = a[0][0][z] ^ rc[z]
	}
	return out
}

// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

// These test vectors are a subset of those published by NIST/the
// Keccak team; see http://keccak.noekeon.org/ and FIPS PUB 202.

import (
	"encoding/hex"
	"testing"
)

// testVector represents a single input and its expected digest across
// every variant that a vector happens to cover.
type testVector struct {
	desc  string
	input []byte
	want  map[string]string
}

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

var vectors = []testVector{
	{
		desc:  "empty",
		input: []byte{},
		want: map[string]string{
			"SHA3-224": "6b4e03423667dbb73b6e15454f0eb1abd4597f9a1b078e3f5b5a6bc7",
			"SHA3-256": "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a",
			"SHA3-384": "0c63a75b845e4f7d01107d852e4c2485c51a50aaaa94fc61995e71bbee983a2ac3713831264adb47fb6bd1e058d5f004",
			"SHA3-512": "a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26",
		},
	},
	{
		desc:  "single-byte-e9",
		input: decodeHex("e9"),
		want: map[string]string{
			"SHA3-256": "f0d04dd1e6cfc29a4460d521796852f25d9ef8d28b44ee91ff5b759d72c1e6d6",
		},
	},
	{
		desc:  "abc",
		input: []byte("abc"),
		want: map[string]string{
			"SHA3-256": "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532",
		},
	},
}

func TestVectors(t *testing.T) {
	funcs := map[string]func([]byte) string{
		"SHA3-224": func(b []byte) string { d := Sum224(b); return hex.EncodeToString(d[:]) },
		"SHA3-256": func(b []byte) string { d := Sum256(b); return hex.EncodeToString(d[:]) },
		"SHA3-384": func(b []byte) string { d := Sum384(b); return hex.EncodeToString(d[:]) },
		"SHA3-512": func(b []byte) string { d := Sum512(b); return hex.EncodeToString(d[:]) },
	}

	for _, v := range vectors {
		for variant, want := range v.want {
			got := funcs[variant](v.input)
			if got != want {
				t.Errorf("%s: %s(%q) = %s, want %s", v.desc, variant, v.input, got, want)
			}
		}
	}
}

func TestDigestLengths(t *testing.T) {
	data := []byte("arbitrary input of no particular length")
	if d := Sum224(data); len(d) != Size224 {
		t.Errorf("len(Sum224(...)) = %d, want %d", len(d), Size224)
	}
	if d := Sum256(data); len(d) != Size256 {
		t.Errorf("len(Sum256(...)) = %d, want %d", len(d), Size256)
	}
	if d := Sum384(data); len(d) != Size384 {
		t.Errorf("len(Sum384(...)) = %d, want %d", len(d), Size384)
	}
	if d := Sum512(data); len(d) != Size512 {
		t.Errorf("len(Sum512(...)) = %d, want %d", len(d), Size512)
	}
}

// sequentialBytes produces size consecutive bytes 0x00, 0x01, ....
func sequentialBytes(size int) []byte {
	result := make([]byte, size)
	for i := range result {
		result[i] = byte(i)
	}
	return result
}

func TestSumIsDeterministic(t *testing.T) {
	data := sequentialBytes(1024)
	if Sum256(data) != Sum256(data) {
		t.Fatalf("Sum256 is not deterministic")
	}
}

func BenchmarkSum256_1K(b *testing.B) {
	data := sequentialBytes(1024)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		Sum256(data)
	}
}

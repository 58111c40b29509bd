// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rsp reads NIST CAVP SHA-3 test-vector files: three-line
// records of the form "Len = <bits>", "Msg = <hex>", "MD = <hex>", as
// described in spec.md section 6. It is a boundary collaborator, not
// part of the hash core: the core never parses text.
package rsp

import (
	"bufio"
	"bytes"
	"regexp"
	"strconv"

	"github.com/pkg/errors"

	"github.com/dlg/sha3ref/hexutil"
)

// Record is a single decoded Len/Msg/MD entry.
type Record struct {
	// LenBits is the message length in bits, as declared by the file.
	LenBits int
	// Msg is the message bytes, truncated to LenBits/8 bytes. When
	// LenBits is 0, Msg is empty — the file's literal "00" placeholder
	// for that case is discarded, not treated as a one-byte message.
	Msg []byte
	// MD is the expected digest bytes.
	MD []byte
}

var fieldRe = regexp.MustCompile(`^\s*([A-Za-z]+)\s*=\s*([0-9A-Fa-f]+)\s*$`)

// Parse reads every Len/Msg/MD record out of a CAVP .rsp file's
// contents. Only byte-aligned vectors (Len a multiple of 8) are
// supported; any other Len is reported as an error rather than
// silently truncated or skipped.
func Parse(data []byte) ([]Record, error) {
	var records []Record

	var haveLen, haveMsg bool
	var lenBits int
	var msgHex string

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		m := fieldRe.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		key, val := m[1], m[2]

		switch key {
		case "Len":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, errors.Wrapf(err, "rsp: line %d: parsing Len field %q", lineNo, val)
			}
			lenBits, haveLen = n, true
			haveMsg = false

		case "Msg":
			if !haveLen {
				return nil, errors.Errorf("rsp: line %d: Msg field with no preceding Len field", lineNo)
			}
			msgHex, haveMsg = val, true

		case "MD":
			if !haveLen || !haveMsg {
				return nil, errors.Errorf("rsp: line %d: MD field with no preceding Len/Msg fields", lineNo)
			}
			if lenBits%8 != 0 {
				return nil, errors.Errorf("rsp: line %d: Len=%d bits is not byte-aligned", lineNo, lenBits)
			}

			msg, err := hexutil.Decode(msgHex)
			if err != nil {
				return nil, errors.Wrapf(err, "rsp: line %d: decoding Msg field %q", lineNo, msgHex)
			}
			if lenBits == 0 {
				msg = nil
			} else {
				msg = msg[:lenBits/8]
			}

			md, err := hexutil.Decode(val)
			if err != nil {
				return nil, errors.Wrapf(err, "rsp: line %d: decoding MD field %q", lineNo, val)
			}

			records = append(records, Record{LenBits: lenBits, Msg: msg, MD: md})
			haveLen, haveMsg = false, false
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "rsp: scanning input")
	}
	return records, nil
}

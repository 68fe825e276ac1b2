// Copyright 2025 The Dxt1 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package zst

import (
	"bytes"
	"testing"
)

func TestRoundTrip(tt *testing.T) {
	src := bytes.Repeat([]byte("DDS \x7c\x00\x00\x00\x00\xF8\x00\xF8"), 1000)

	buf := &bytes.Buffer{}
	if err := Encode(buf, src); err != nil {
		tt.Fatalf("Encode: %v", err)
	}
	enc := buf.Bytes()
	if !HasMagic(enc) {
		tt.Fatalf("HasMagic: got false, want true")
	}
	if len(enc) >= len(src) {
		tt.Fatalf("compressed length: got %d, want < %d", len(enc), len(src))
	}

	got, err := Decode(bytes.NewReader(enc))
	if err != nil {
		tt.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, src) {
		tt.Fatalf("round-trip mismatch")
	}
}

func TestDecodeRejectsGarbage(tt *testing.T) {
	if HasMagic([]byte("DDS ")) {
		tt.Fatalf("HasMagic: got true for a DDS prefix")
	}
	if _, err := Decode(bytes.NewReader([]byte("not zstd at all"))); err == nil {
		tt.Fatalf("Decode: got nil error for non-Zstandard input")
	}
}

func TestBadArgument(tt *testing.T) {
	if err := Encode(nil, nil); err != ErrBadArgument {
		tt.Errorf("Encode: got %v, want %v", err, ErrBadArgument)
	}
	if _, err := Decode(nil); err != ErrBadArgument {
		tt.Errorf("Decode: got %v, want %v", err, ErrBadArgument)
	}
}

// Copyright 2025 The Dxt1 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package dxt1

import (
	"bytes"
	"errors"
	"image/color"
	"testing"
)

func TestBlockBytesLayout(tt *testing.T) {
	b := Block{
		Color0: 0x1234,
		Color1: 0xABCD,
		Indexes: [TexelsPerBlock]uint8{
			0, 1, 2, 3,
			3, 2, 1, 0,
			1, 1, 1, 1,
			0, 0, 0, 3,
		},
	}
	got := b.Bytes()
	want := [BytesPerBlock]byte{
		0x34, 0x12,
		0xCD, 0xAB,
		0b11_10_01_00,
		0b00_01_10_11,
		0b01_01_01_01,
		0b11_00_00_00,
	}
	if got != want {
		tt.Fatalf("got  % 02X\nwant % 02X", got[:], want[:])
	}

	if appended := b.AppendBytes([]byte{0xEE}); !bytes.Equal(appended, append([]byte{0xEE}, want[:]...)) {
		tt.Fatalf("AppendBytes: got % 02X", appended)
	}

	parsed, err := ParseBlock(got[:])
	if err != nil {
		tt.Fatalf("ParseBlock: %v", err)
	}
	if parsed != b {
		tt.Fatalf("ParseBlock: got %+v, want %+v", parsed, b)
	}
}

func TestParseBlockBadLength(tt *testing.T) {
	for _, n := range []int{0, 1, 7, 9, 16} {
		if _, err := ParseBlock(make([]byte, n)); !errors.Is(err, ErrMalformedBlock) {
			tt.Errorf("n=%d: got %v, want %v", n, err, ErrMalformedBlock)
		}
		var dst [TexelsPerBlock]color.RGBA
		if err := DecompressBlock(&dst, make([]byte, n)); !errors.Is(err, ErrMalformedBlock) {
			tt.Errorf("n=%d: DecompressBlock: got %v, want %v", n, err, ErrMalformedBlock)
		}
	}
}

func TestParseBlockAllOnesStaysInRange(tt *testing.T) {
	src := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0b11111111, 0b11111111, 0b11111111, 0b11111111}
	b, err := ParseBlock(src)
	if err != nil {
		tt.Fatalf("ParseBlock: %v", err)
	}
	for i, index := range b.Indexes {
		if index != 3 {
			tt.Errorf("Indexes[%d]: got %d, want 3", i, index)
		}
	}

	var dst [TexelsPerBlock]color.RGBA
	if err := DecompressBlock(&dst, src); err != nil {
		tt.Fatalf("DecompressBlock: %v", err)
	}
	for i, c := range dst {
		if c != (color.RGBA{0, 0, 0, 0xFF}) {
			tt.Errorf("dst[%d]: got %v, want opaque black", i, c)
		}
	}
}

func TestBlockColorsRejectsOutOfRangeIndex(tt *testing.T) {
	b := Block{Color0: 0x0000, Color1: 0xFFFF}
	b.Indexes[9] = 4
	var dst [TexelsPerBlock]color.RGBA
	if err := b.Colors(&dst); !errors.Is(err, ErrMalformedBlock) {
		tt.Fatalf("got %v, want %v", err, ErrMalformedBlock)
	}
}

// Copyright 2025 The Dxt1 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package dxt1

import (
	"image/color"
	"testing"
)

func TestPalette(tt *testing.T) {
	got := Palette(0x0000, 0xFFFF)
	want := [PaletteSize]Color565{0x0000, 0xFFFF, 0x8410, Black}
	if got != want {
		tt.Fatalf("got %04X, want %04X", got, want)
	}
}

func TestBlendRoundsHalfUp(tt *testing.T) {
	testCases := []struct {
		a, b, want Color565
	}{
		{FromRGB565(0, 0, 0), FromRGB565(1, 1, 1), FromRGB565(1, 1, 1)},
		{FromRGB565(2, 4, 6), FromRGB565(4, 8, 12), FromRGB565(3, 6, 9)},
		{FromRGB565(31, 63, 31), FromRGB565(30, 62, 30), FromRGB565(31, 63, 31)},
		{FromRGB565(10, 20, 0), FromRGB565(10, 20, 0), FromRGB565(10, 20, 0)},
	}

	for _, tc := range testCases {
		if got := Blend(tc.a, tc.b); got != tc.want {
			tt.Errorf("Blend(0x%04X, 0x%04X): got 0x%04X, want 0x%04X",
				uint16(tc.a), uint16(tc.b), uint16(got), uint16(tc.want))
		}
		if got := Blend(tc.b, tc.a); got != tc.want {
			tt.Errorf("Blend(0x%04X, 0x%04X): not symmetric", uint16(tc.b), uint16(tc.a))
		}
	}
}

func TestNearestTiesGoToLowestIndex(tt *testing.T) {
	// Black is both entry 0 and entry 3.
	palette := Palette(Black, 0xFFFF)
	if got := nearest(&palette, Black); got != 0 {
		tt.Fatalf("got %d, want 0", got)
	}
	// Equal endpoints: entries 0, 1 and 2 all match.
	palette = Palette(0x7E45, 0x7E45)
	if got := nearest(&palette, 0x7E45); got != 0 {
		tt.Fatalf("got %d, want 0", got)
	}
}

func TestCompressSolidRed(tt *testing.T) {
	src := solidBlock(color.NRGBA{0xFF, 0x00, 0x00, 0xFF})
	got := CompressBlock(&src)
	want := [BytesPerBlock]byte{0x00, 0xF8, 0x00, 0xF8, 0x00, 0x00, 0x00, 0x00}
	if got != want {
		tt.Fatalf("CompressBlock: got % 02X, want % 02X", got[:], want[:])
	}

	var dst [TexelsPerBlock]color.RGBA
	if err := DecompressBlock(&dst, got[:]); err != nil {
		tt.Fatalf("DecompressBlock: %v", err)
	}
	for i, c := range dst {
		if c != (color.RGBA{0xFF, 0x00, 0x00, 0xFF}) {
			tt.Errorf("dst[%d]: got %v, want opaque red", i, c)
		}
	}
}

func TestCompressSolidQuantizes(tt *testing.T) {
	src := solidBlock(color.NRGBA{120, 200, 40, 0xFF})
	b := NewBlock(&src)
	if b.Color0 != b.Color1 {
		tt.Fatalf("Color0 0x%04X != Color1 0x%04X", uint16(b.Color0), uint16(b.Color1))
	}

	var dst [TexelsPerBlock]color.RGBA
	if err := b.Colors(&dst); err != nil {
		tt.Fatalf("Colors: %v", err)
	}
	for i, c := range dst {
		if c.A != 0xFF {
			tt.Errorf("dst[%d]: alpha: got 0x%02X, want 0xFF", i, c.A)
		}
		got := From8(color.NRGBA{c.R, c.G, c.B, c.A})
		if want := From8(src[i]); got != want {
			tt.Errorf("dst[%d]: got 0x%04X, want 0x%04X", i, uint16(got), uint16(want))
		}
	}
}

func TestCompressBlackAndWhiteHalves(tt *testing.T) {
	src := halvesBlock(color.NRGBA{0x00, 0x00, 0x00, 0xFF}, color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF})
	got := CompressBlock(&src)
	want := [BytesPerBlock]byte{0x00, 0x00, 0xFF, 0xFF, 0x00, 0x00, 0x55, 0x55}
	if got != want {
		tt.Fatalf("got % 02X, want % 02X", got[:], want[:])
	}

	b, err := ParseBlock(got[:])
	if err != nil {
		tt.Fatalf("ParseBlock: %v", err)
	}
	for i, index := range b.Indexes {
		wantIndex := uint8(0)
		if i >= 8 {
			wantIndex = 1
		}
		if index != wantIndex {
			tt.Errorf("Indexes[%d]: got %d, want %d", i, index, wantIndex)
		}
	}
}

func TestCompressIgnoresAlpha(tt *testing.T) {
	src := halvesBlock(color.NRGBA{0x10, 0x80, 0xF0, 0x00}, color.NRGBA{0xF0, 0x80, 0x10, 0x40})
	translucent := CompressBlock(&src)
	for i := range src {
		src[i].A = 0xFF
	}
	opaque := CompressBlock(&src)
	if translucent != opaque {
		tt.Fatalf("got % 02X, want % 02X", translucent[:], opaque[:])
	}
}

func roundTrip(tt *testing.T, src *[TexelsPerBlock]color.NRGBA) (ret [TexelsPerBlock]color.NRGBA) {
	encoded := CompressBlock(src)
	var decoded [TexelsPerBlock]color.RGBA
	if err := DecompressBlock(&decoded, encoded[:]); err != nil {
		tt.Fatalf("DecompressBlock: %v", err)
	}
	for i, c := range decoded {
		ret[i] = color.NRGBA{c.R, c.G, c.B, c.A}
	}
	return ret
}

func TestRoundTripIsIdempotent(tt *testing.T) {
	black := color.NRGBA{0x00, 0x00, 0x00, 0xFF}
	white := color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
	gray := color.NRGBA{0x80, 0x80, 0x80, 0xFF}

	blocks := [][TexelsPerBlock]color.NRGBA{
		solidBlock(color.NRGBA{0xFF, 0x00, 0x00, 0xFF}),
		solidBlock(color.NRGBA{120, 200, 40, 0xFF}),
		halvesBlock(black, white),
		halvesBlock(color.NRGBA{8, 0, 0, 0xFF}, color.NRGBA{0, 0, 200, 0xFF}),
		{
			black, gray, white, gray,
			gray, black, gray, white,
			white, gray, black, gray,
			gray, white, gray, black,
		},
	}

	for i := range blocks {
		once := roundTrip(tt, &blocks[i])
		twice := roundTrip(tt, &once)
		if once != twice {
			tt.Errorf("block %d:\nonce  %v\ntwice %v", i, once, twice)
		}
	}
}

// pseudoRandomBlock returns a deterministic, varied block.
func pseudoRandomBlock(seed uint32) (ret [TexelsPerBlock]color.NRGBA) {
	x := seed*2654435761 + 1
	for i := range ret {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		ret[i] = color.NRGBA{uint8(x), uint8(x >> 8), uint8(x >> 16), 0xFF}
	}
	return ret
}

func TestEveryTexelGetsTheNearestPaletteEntry(tt *testing.T) {
	for seed := range uint32(200) {
		src := pseudoRandomBlock(seed)
		b := NewBlock(&src)
		if b.Color0 > b.Color1 {
			tt.Errorf("seed=%d: Color0 0x%04X > Color1 0x%04X", seed, uint16(b.Color0), uint16(b.Color1))
		}

		var dst [TexelsPerBlock]color.RGBA
		if err := b.Colors(&dst); err != nil {
			tt.Fatalf("seed=%d: Colors: %v", seed, err)
		}

		palette := Palette(b.Color0, b.Color1)
		for i := range src {
			q := From8(src[i])
			bestDist := int32(1 << 30)
			for _, p := range palette {
				bestDist = min(bestDist, distance565(p, q))
			}
			chosen := palette[b.Indexes[i]]
			if got := distance565(chosen, q); got != bestDist {
				tt.Errorf("seed=%d, texel=%d: distance %d, want %d", seed, i, got, bestDist)
			}
			if dst[i] != chosen.Expand() {
				tt.Errorf("seed=%d, texel=%d: got %v, want %v", seed, i, dst[i], chosen.Expand())
			}
		}
	}
}

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
)

// Palette returns the four colors that a block with the given endpoints can
// index: the two endpoints, their Blend and Black.
//
// This is the palette that DXT1 decoders use when the first endpoint is not
// numerically greater than the second, which NewColorSpace guarantees.
func Palette(color0 Color565, color1 Color565) [PaletteSize]Color565 {
	return [PaletteSize]Color565{
		color0,
		color1,
		Blend(color0, color1),
		Black,
	}
}

// Blend returns the per-channel average of a and b, computed on the 5, 6 and
// 5 bit channel values and rounded half up.
func Blend(a Color565, b Color565) Color565 {
	return FromRGB565(
		(int(a.R())+int(b.R())+1)/2,
		(int(a.G())+int(b.G())+1)/2,
		(int(a.B())+int(b.B())+1)/2,
	)
}

// distance565 returns the squared Euclidean distance between a and b,
// measured on their 5, 6 and 5 bit channel values.
func distance565(a Color565, b Color565) int32 {
	dr := int32(a.R()) - int32(b.R())
	dg := int32(a.G()) - int32(b.G())
	db := int32(a.B()) - int32(b.B())
	return (dr * dr) + (dg * dg) + (db * db)
}

// nearest returns the index of the palette entry closest to c. On ties the
// lowest index wins.
func nearest(palette *[PaletteSize]Color565, c Color565) uint8 {
	best, bestDist := uint8(0), distance565(palette[0], c)
	for i := 1; i < PaletteSize; i++ {
		if d := distance565(palette[i], c); d < bestDist {
			best, bestDist = uint8(i), d
		}
	}
	return best
}

// NewBlock reduces 16 colors, in row-major texel order, to a Block. Alpha is
// not encoded.
func NewBlock(src *[TexelsPerBlock]color.NRGBA) Block {
	cs := NewColorSpace(src)
	palette := Palette(cs.Color0(), cs.Color1())

	b := Block{
		Color0: palette[0],
		Color1: palette[1],
	}
	for i := range src {
		b.Indexes[i] = nearest(&palette, From8(src[i]))
	}
	return b
}

// CompressBlock reduces 16 colors, in row-major texel order, to the 8 byte
// wire format.
func CompressBlock(src *[TexelsPerBlock]color.NRGBA) [BytesPerBlock]byte {
	b := NewBlock(src)
	return b.Bytes()
}

// Colors reconstructs b's 16 colors, in row-major texel order. Every color is
// opaque.
//
// It returns ErrMalformedBlock if an index is outside of the palette.
func (b *Block) Colors(dst *[TexelsPerBlock]color.RGBA) error {
	if err := b.validate(); err != nil {
		return err
	}
	palette := Palette(b.Color0, b.Color1)
	var expanded [PaletteSize]color.RGBA
	for i, c := range palette {
		expanded[i] = c.Expand()
	}
	for i, index := range b.Indexes {
		dst[i] = expanded[index]
	}
	return nil
}

// DecompressBlock reconstructs the 16 colors of the 8 byte wire format src.
//
// It returns ErrMalformedBlock if src is not exactly BytesPerBlock long.
func DecompressBlock(dst *[TexelsPerBlock]color.RGBA, src []byte) error {
	b, err := ParseBlock(src)
	if err != nil {
		return err
	}
	return b.Colors(dst)
}

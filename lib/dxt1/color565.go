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

// Color565 is a 16-bit RGB color: 5 bits of red in the high bits, then 6 bits
// of green, then 5 bits of blue.
//
// It implements the color.Color interface. Its RGBA method reports the
// Expand value.
type Color565 uint16

// Black is the all-zero Color565.
const Black = Color565(0)

const (
	mask5 = 0x1F
	mask6 = 0x3F
)

// FromRGB565 packs 5-bit red, 6-bit green and 5-bit blue channel values.
// Values above a channel's maximum are clamped to that maximum. Negative
// values are masked to the channel's width.
func FromRGB565(r int, g int, b int) Color565 {
	return Color565((clampChannel(r, mask5) << 11) |
		(clampChannel(g, mask6) << 5) |
		(clampChannel(b, mask5) << 0))
}

func clampChannel(v int, mask int) int {
	if v > mask {
		return mask
	}
	return v & mask
}

// From8 quantizes an 8-bit-per-channel color by dropping the low bits of
// each channel. It does not round. Alpha is ignored.
func From8(c color.NRGBA) Color565 {
	return FromRGB565(int(c.R>>3), int(c.G>>2), int(c.B>>3))
}

// R returns the 5-bit red channel.
func (c Color565) R() uint8 { return uint8((c >> 11) & mask5) }

// G returns the 6-bit green channel.
func (c Color565) G() uint8 { return uint8((c >> 5) & mask6) }

// B returns the 5-bit blue channel.
func (c Color565) B() uint8 { return uint8((c >> 0) & mask5) }

// Expand converts c to an opaque 8-bit-per-channel color. Each channel is
// shifted into the high bits of its byte and its own high bits are repeated
// into the low bits, so that 0 maps to 0 and the channel maximum maps to 0xFF.
//
// Expand(From8(x)) is within 7 of x for red and blue and within 3 for green.
func (c Color565) Expand() color.RGBA {
	r, g, b := c.R(), c.G(), c.B()
	return color.RGBA{
		R: (r << 3) | (r >> 2),
		G: (g << 2) | (g >> 4),
		B: (b << 3) | (b >> 2),
		A: 0xFF,
	}
}

// RGBA implements the color.Color interface.
func (c Color565) RGBA() (r, g, b, a uint32) {
	return c.Expand().RGBA()
}

// Color565Model is the color.Model for Color565 values. Converting a
// translucent color first un-premultiplies it.
var Color565Model = color.ModelFunc(func(c color.Color) color.Color {
	if c, ok := c.(Color565); ok {
		return c
	}
	return From8(color.NRGBAModel.Convert(c).(color.NRGBA))
})

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

// ColorSpace summarizes the 16 colors of one block: the two endpoint colors
// that a compressed block stores and the block's alpha range.
//
// The endpoints are the block's darkest and brightest colors, measured as the
// Euclidean RGB distance from black. After quantization they are ordered so
// that Color0 is numerically no greater than Color1.
//
// A ColorSpace is immutable. The zero value is not meaningful; use
// NewColorSpace.
type ColorSpace struct {
	samples  [TexelsPerBlock]color.NRGBA
	color0   Color565
	color1   Color565
	minAlpha uint8
	maxAlpha uint8
}

// NewColorSpace returns the ColorSpace of the given block, whose colors are
// in row-major texel order.
func NewColorSpace(samples *[TexelsPerBlock]color.NRGBA) ColorSpace {
	cs := ColorSpace{
		samples:  *samples,
		minAlpha: samples[0].A,
		maxAlpha: samples[0].A,
	}

	// Squared distances order the same way as distances, so there is no need
	// for a square root. On ties the earlier sample wins.
	low, high := samples[0], samples[0]
	lowDist := distanceFromBlack(low)
	highDist := lowDist
	for _, c := range samples[1:] {
		d := distanceFromBlack(c)
		if d < lowDist {
			low, lowDist = c, d
		}
		if d > highDist {
			high, highDist = c, d
		}
		cs.minAlpha = min(cs.minAlpha, c.A)
		cs.maxAlpha = max(cs.maxAlpha, c.A)
	}

	// Order by quantized value. Two colors' 565 order can differ from their
	// 8-bit distance order.
	low16, high16 := From8(low), From8(high)
	if low16 < high16 {
		cs.color0, cs.color1 = low16, high16
	} else {
		cs.color0, cs.color1 = high16, low16
	}
	return cs
}

// distanceFromBlack returns the squared Euclidean distance of c's RGB
// channels from (0, 0, 0). Alpha does not contribute.
func distanceFromBlack(c color.NRGBA) uint32 {
	r, g, b := uint32(c.R), uint32(c.G), uint32(c.B)
	return (r * r) + (g * g) + (b * b)
}

// Color0 returns the numerically smaller endpoint.
func (cs ColorSpace) Color0() Color565 { return cs.color0 }

// Color1 returns the numerically larger endpoint.
func (cs ColorSpace) Color1() Color565 { return cs.color1 }

// MinAlpha returns the smallest alpha value in the block.
func (cs ColorSpace) MinAlpha() uint8 { return cs.minAlpha }

// MaxAlpha returns the largest alpha value in the block.
//
// DXT1 as implemented by this package is opaque-only, so neither alpha bound
// affects compression.
func (cs ColorSpace) MaxAlpha() uint8 { return cs.maxAlpha }

// Samples returns a copy of the block's colors.
func (cs ColorSpace) Samples() [TexelsPerBlock]color.NRGBA { return cs.samples }

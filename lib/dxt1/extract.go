// Copyright 2025 The Dxt1 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package dxt1

import (
	"image"
	"image/color"
)

// makeExtract returns a closure that copies the 4×4 block of src whose
// top-left corner is at offset (blockX, blockY) from src.Bounds().Min into
// pixels, as non-premultiplied colors in row-major order.
//
// The caller guarantees that the whole block is in bounds.
func makeExtract(pixels *[TexelsPerBlock]color.NRGBA, src image.Image) func(blockX int, blockY int) {
	minPoint := src.Bounds().Min
	mX, mY := minPoint.X, minPoint.Y

	if srcNRGBA, ok := src.(*image.NRGBA); ok {
		return func(blockX int, blockY int) {
			for y := range 4 {
				for x := range 4 {
					pixels[(4*y)+x] = srcNRGBA.NRGBAAt(mX+blockX+x, mY+blockY+y)
				}
			}
		}

	} else if srcRGBA, ok := src.(*image.RGBA); ok {
		return func(blockX int, blockY int) {
			for y := range 4 {
				for x := range 4 {
					c := srcRGBA.RGBAAt(mX+blockX+x, mY+blockY+y)
					if c.A == 0xFF {
						pixels[(4*y)+x] = color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
					} else {
						pixels[(4*y)+x] = color.NRGBAModel.Convert(c).(color.NRGBA)
					}
				}
			}
		}

	} else if srcNRGBA64, ok := src.(*image.NRGBA64); ok {
		return func(blockX int, blockY int) {
			for y := range 4 {
				for x := range 4 {
					c := srcNRGBA64.NRGBA64At(mX+blockX+x, mY+blockY+y)
					pixels[(4*y)+x] = color.NRGBA{
						R: uint8(c.R >> 8),
						G: uint8(c.G >> 8),
						B: uint8(c.B >> 8),
						A: uint8(c.A >> 8),
					}
				}
			}
		}

	} else if srcRGBA64, ok := src.(image.RGBA64Image); ok {
		return func(blockX int, blockY int) {
			for y := range 4 {
				for x := range 4 {
					c := srcRGBA64.RGBA64At(mX+blockX+x, mY+blockY+y)
					if (c.A != 0x0000) && (c.A != 0xFFFF) {
						c.R = uint16((uint32(c.R) * 0xFFFF) / uint32(c.A))
						c.G = uint16((uint32(c.G) * 0xFFFF) / uint32(c.A))
						c.B = uint16((uint32(c.B) * 0xFFFF) / uint32(c.A))
					}
					pixels[(4*y)+x] = color.NRGBA{
						R: uint8(c.R >> 8),
						G: uint8(c.G >> 8),
						B: uint8(c.B >> 8),
						A: uint8(c.A >> 8),
					}
				}
			}
		}
	}

	return func(blockX int, blockY int) {
		for y := range 4 {
			for x := range 4 {
				r, g, b, a := src.At(mX+blockX+x, mY+blockY+y).RGBA()
				if (a != 0x0000) && (a != 0xFFFF) {
					r = (r * 0xFFFF) / a
					g = (g * 0xFFFF) / a
					b = (b * 0xFFFF) / a
				}
				pixels[(4*y)+x] = color.NRGBA{
					R: uint8(r >> 8),
					G: uint8(g >> 8),
					B: uint8(b >> 8),
					A: uint8(a >> 8),
				}
			}
		}
	}
}

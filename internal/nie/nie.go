// Copyright 2025 The Dxt1 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package nie implements the NIE (Naive) image file format.
//
// It is an incomplete implementation (and hence an internal package), only
// providing what's needed by the github.com/nigeltao/dxt1 module: writing
// decoded textures so that they can be compared byte for byte.
//
// NIE is specified at
// https://github.com/google/wuffs/blob/main/doc/spec/nie-spec.md
package nie

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
)

// MagicBN8 is the 8 byte prefix of a NIE file in BGRA order, non-premultiplied
// alpha, 16 bits per channel.
const MagicBN8 = "\x6E\xC3\xAF\x45\xFFbn8"

// HeaderSize is the size of the magic plus the width and height.
const HeaderSize = 16

var (
	ErrBadArgument          = errors.New("nie: bad argument")
	ErrUnsupportedImageType = errors.New("nie: unsupported image type")
)

// EncodeBN8 encodes m as a NIE file in BGRA order, non-premultiplied alpha, 8
// bytes per pixel (16 bits per channel).
func EncodeBN8(m image.Image) ([]byte, error) {
	if m == nil {
		return nil, ErrBadArgument
	}
	b := m.Bounds()
	if (int64(b.Dx()) > 0xFFFFFFFF) || (int64(b.Dy()) > 0xFFFFFFFF) {
		return nil, ErrUnsupportedImageType
	}
	ret := make([]byte, 0, HeaderSize+(8*b.Dx()*b.Dy()))
	ret = append(ret, MagicBN8...)
	ret = binary.LittleEndian.AppendUint32(ret, uint32(b.Dx()))
	ret = binary.LittleEndian.AppendUint32(ret, uint32(b.Dy()))

	switch m := m.(type) {
	case *image.RGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				at := m.RGBAAt(x, y)
				// Premultiplication is a no-op only for these alpha values.
				if (at.A != 0x00) && (at.A != 0xFF) {
					return nil, ErrUnsupportedImageType
				}
				ret = appendBN8(ret, at.R, at.G, at.B, at.A)
			}
		}
		return ret, nil

	case *image.NRGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				at := m.NRGBAAt(x, y)
				ret = appendBN8(ret, at.R, at.G, at.B, at.A)
			}
		}
		return ret, nil
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			at := color.NRGBA64Model.Convert(m.At(x, y)).(color.NRGBA64)
			ret = binary.LittleEndian.AppendUint16(ret, at.B)
			ret = binary.LittleEndian.AppendUint16(ret, at.G)
			ret = binary.LittleEndian.AppendUint16(ret, at.R)
			ret = binary.LittleEndian.AppendUint16(ret, at.A)
		}
	}
	return ret, nil
}

// appendBN8 appends one pixel, widening each 8 bit channel v to 16 bits as
// v*0x101.
func appendBN8(b []byte, r uint8, g uint8, bb uint8, a uint8) []byte {
	return append(b, bb, bb, g, g, r, r, a, a)
}

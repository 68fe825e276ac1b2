// Copyright 2025 The Dxt1 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package dds implements the DDS (DirectDraw Surface) container format for
// DXT1 textures.
//
// A file is the 4 byte Magic, a 124 byte header and then the DXT1 blocks of
// the image in row-major block order. Only single-surface DXT1 files whose
// width and height are multiples of 4 are supported.
//
// DDS is specified at
// https://learn.microsoft.com/en-us/windows/win32/direct3ddds/dx-graphics-dds-pguide
package dds

import (
	"errors"
	"image"
	"image/color"
	"io"

	"github.com/nigeltao/dxt1/lib/dxt1"
	"github.com/nigeltao/dxt1/lib/tile"
)

func init() {
	image.RegisterFormat("dds", Magic, Decode, DecodeConfig)
}

var (
	ErrBadArgument        = errors.New("dds: bad argument")
	ErrHeaderSizeMismatch = errors.New("dds: header linear size does not match dimensions")
	ErrImageIsTooLarge    = errors.New("dds: image is too large")
	ErrInvalidMagicNumber = errors.New("dds: invalid magic number")
	ErrNotADDSFile        = errors.New("dds: not a DDS file")
	ErrUnsupportedFormat  = errors.New("dds: unsupported pixel format")
)

// MaxDimension is the largest width or height that this package decodes or
// encodes.
const MaxDimension = 65532

// grid checks h's dimensions and returns their block grid.
func (h Header) grid() (tile.Grid, error) {
	if (h.Width > MaxDimension) || (h.Height > MaxDimension) {
		return tile.Grid{}, ErrImageIsTooLarge
	}
	return tile.NewGrid(int(h.Width), int(h.Height))
}

func decodeConfig(r io.Reader) (Header, error) {
	buf := [PrefixSize]byte{}
	if _, err := io.ReadFull(r, buf[:]); err == io.EOF {
		return Header{}, io.ErrUnexpectedEOF
	} else if err != nil {
		return Header{}, err
	}
	h, err := ParseHeader(buf[:])
	if err != nil {
		return Header{}, err
	}
	if err := h.Validate(); err != nil {
		return Header{}, err
	}
	if _, err := h.grid(); err != nil {
		return Header{}, err
	}
	return h, nil
}

// DecodeConfig reads a DDS image configuration from r.
func DecodeConfig(r io.Reader) (image.Config, error) {
	h, err := decodeConfig(r)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.RGBAModel,
		Width:      int(h.Width),
		Height:     int(h.Height),
	}, nil
}

// Decode reads a DDS image from r. The result is an opaque *image.RGBA.
func Decode(r io.Reader) (image.Image, error) {
	h, err := decodeConfig(r)
	if err != nil {
		return nil, err
	}
	m, err := dxt1.NewImage(int(h.Width), int(h.Height))
	if err != nil {
		return nil, err
	}
	if err := dxt1.Decode(m, r, int(h.Width)/tile.Dimension, int(h.Height)/tile.Dimension); err != nil {
		return nil, err
	}
	return m, nil
}

// EncodeOptions are optional arguments to Encode. The zero value is valid and
// means to use the default configuration.
type EncodeOptions struct {
	// Parallelism is passed on to dxt1.Encode.
	Parallelism int
}

// Encode writes src to w in the DDS format.
//
// options may be nil, which means to use the default configuration.
func Encode(w io.Writer, src image.Image, options *EncodeOptions) error {
	if (w == nil) || (src == nil) {
		return ErrBadArgument
	}
	b := src.Bounds()
	if _, err := tile.NewGrid(b.Dx(), b.Dy()); err != nil {
		return err
	} else if (b.Dx() > MaxDimension) || (b.Dy() > MaxDimension) {
		return ErrImageIsTooLarge
	}

	prefix, err := NewHeader(uint32(b.Dx()), uint32(b.Dy())).MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := w.Write(prefix); err != nil {
		return err
	}

	var dxt1Options *dxt1.EncodeOptions
	if options != nil {
		dxt1Options = &dxt1.EncodeOptions{Parallelism: options.Parallelism}
	}
	return dxt1.Encode(w, src, dxt1Options)
}

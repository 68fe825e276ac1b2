// Copyright 2025 The Dxt1 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package bmp24 implements uncompressed 24 bits per pixel BMP files with a
// BITMAPINFOHEADER, whose width and height are multiples of 4.
//
// Unlike golang.org/x/image/bmp, it exposes the header fields and writes them
// exactly: a 14 byte file header, a 40 byte info header recording 2835 pixels
// per meter, and bottom-up rows of BGR pixels.
//
// This package does not call image.RegisterFormat, so that it does not
// compete with golang.org/x/image/bmp for the "BM" magic.
package bmp24

import (
	"errors"
	"image"
	"image/color"
	"io"

	"github.com/nigeltao/dxt1/lib/tile"
)

var (
	ErrBadArgument        = errors.New("bmp24: bad argument")
	ErrImageIsTooLarge    = errors.New("bmp24: image is too large")
	ErrInvalidMagicNumber = errors.New("bmp24: invalid magic number")
	ErrUnsupported        = errors.New("bmp24: unsupported BMP variant")
)

// MaxDimension is the largest width or height that this package decodes or
// encodes.
const MaxDimension = 65532

func checkSize(width int, height int) error {
	if _, err := tile.NewGrid(width, height); err != nil {
		return err
	} else if (width > MaxDimension) || (height > MaxDimension) {
		return ErrImageIsTooLarge
	}
	return nil
}

func decodeConfig(r io.Reader) (FileHeader, InfoHeader, error) {
	buf := [PrefixSize]byte{}
	if _, err := io.ReadFull(r, buf[:]); err == io.EOF {
		return FileHeader{}, InfoHeader{}, io.ErrUnexpectedEOF
	} else if err != nil {
		return FileHeader{}, InfoHeader{}, err
	}
	fh, ih, err := ParseHeaders(buf[:])
	if err != nil {
		return FileHeader{}, InfoHeader{}, err
	}
	if err := ih.Validate(); err != nil {
		return FileHeader{}, InfoHeader{}, err
	}
	if fh.PixelOffset < PrefixSize {
		return FileHeader{}, InfoHeader{}, ErrUnsupported
	}
	if err := checkSize(ih.Size()); err != nil {
		return FileHeader{}, InfoHeader{}, err
	}
	return fh, ih, nil
}

// DecodeConfig reads a BMP image configuration from r.
func DecodeConfig(r io.Reader) (image.Config, error) {
	_, ih, err := decodeConfig(r)
	if err != nil {
		return image.Config{}, err
	}
	width, height := ih.Size()
	return image.Config{
		ColorModel: color.RGBAModel,
		Width:      width,
		Height:     height,
	}, nil
}

// Decode reads a BMP image from r. The result is an opaque *image.RGBA.
func Decode(r io.Reader) (image.Image, error) {
	fh, ih, err := decodeConfig(r)
	if err != nil {
		return nil, err
	}

	// Skip any extended info header or gap before the pixels.
	if gap := int64(fh.PixelOffset) - PrefixSize; gap > 0 {
		if _, err := io.CopyN(io.Discard, r, gap); err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		} else if err != nil {
			return nil, err
		}
	}

	width, height := ih.Size()
	m := image.NewRGBA(image.Rect(0, 0, width, height))
	row := make([]byte, rowStride(width))
	for i := range height {
		if _, err := io.ReadFull(r, row); err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		} else if err != nil {
			return nil, err
		}

		y := i
		if !ih.TopDown() {
			y = height - 1 - i
		}
		pix := m.Pix[y*m.Stride : (y*m.Stride)+(4*width)]
		for x := range width {
			pix[(4*x)+0] = row[(3*x)+2]
			pix[(4*x)+1] = row[(3*x)+1]
			pix[(4*x)+2] = row[(3*x)+0]
			pix[(4*x)+3] = 0xFF
		}
	}
	return m, nil
}

// Encode writes src to w in the BMP format. Alpha is dropped: translucent
// pixels are written as if composited onto black.
func Encode(w io.Writer, src image.Image) error {
	if (w == nil) || (src == nil) {
		return ErrBadArgument
	}
	b := src.Bounds()
	width, height := b.Dx(), b.Dy()
	if err := checkSize(width, height); err != nil {
		return err
	}

	fh, ih := NewHeaders(width, height)
	if _, err := w.Write(AppendHeaders(nil, fh, ih)); err != nil {
		return err
	}

	row := make([]byte, rowStride(width))
	srcRGBA, _ := src.(*image.RGBA)
	for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
		if srcRGBA != nil {
			pix := srcRGBA.Pix[srcRGBA.PixOffset(b.Min.X, y):]
			for x := range width {
				row[(3*x)+0] = pix[(4*x)+2]
				row[(3*x)+1] = pix[(4*x)+1]
				row[(3*x)+2] = pix[(4*x)+0]
			}
		} else {
			for x := range width {
				r, g, bb, _ := src.At(b.Min.X+x, y).RGBA()
				row[(3*x)+0] = uint8(bb >> 8)
				row[(3*x)+1] = uint8(g >> 8)
				row[(3*x)+2] = uint8(r >> 8)
			}
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

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
	"io"

	"github.com/nigeltao/dxt1/lib/tile"
)

// NewImage returns an opaque image.RGBA, suitable for Decode, of the given
// pixel width and height.
//
// It returns tile.ErrInvalidDimensions unless both are positive multiples of
// 4.
func NewImage(width int, height int) (*image.RGBA, error) {
	grid, err := tile.NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	return image.NewRGBA(grid.Bounds()), nil
}

// Decode reads blocksX×blocksY DXT1 blocks, in row-major block order, from
// src and writes their pixels to dst.
//
// dst's bounds must be at least (4×blocksX)×(4×blocksY). Reading fewer bytes
// than that many blocks returns io.ErrUnexpectedEOF.
func Decode(dst *image.RGBA, src io.Reader, blocksX int, blocksY int) error {
	if (dst == nil) || (src == nil) || (blocksX <= 0) || (blocksY <= 0) {
		return ErrBadArgument
	}
	b := dst.Bounds()
	if (b.Dx() < blocksX*tile.Dimension) || (b.Dy() < blocksY*tile.Dimension) {
		return ErrBadArgument
	}

	grid := tile.Grid{Columns: blocksX, Rows: blocksY}
	d := &decoder{}
	n := grid.Len()
	for i := 0; i < n; {
		numBlocks := min(n-i, decoderBufferSize/BytesPerBlock)
		buf := d.buf[:numBlocks*BytesPerBlock]
		if _, err := io.ReadFull(src, buf); err == io.EOF {
			return io.ErrUnexpectedEOF
		} else if err != nil {
			return err
		}

		for ; len(buf) > 0; buf, i = buf[BytesPerBlock:], i+1 {
			if err := DecompressBlock(&d.pixels, buf[:BytesPerBlock]); err != nil {
				return err
			}
			d.store(dst, grid.PixelOrigin(i).Add(b.Min))
		}
	}
	return nil
}

const decoderBufferSize = 4096

type decoder struct {
	pixels [TexelsPerBlock]color.RGBA
	buf    [decoderBufferSize]byte
}

// store copies the decoded block to the 4×4 pixels of dst whose top-left
// corner is p.
func (d *decoder) store(dst *image.RGBA, p image.Point) {
	for y := range 4 {
		o := dst.PixOffset(p.X, p.Y+y)
		row := dst.Pix[o : o+16 : o+16]
		for x := range 4 {
			c := d.pixels[(4*y)+x]
			row[(4*x)+0] = c.R
			row[(4*x)+1] = c.G
			row[(4*x)+2] = c.B
			row[(4*x)+3] = c.A
		}
	}
}

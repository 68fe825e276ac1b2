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
	"sync"

	"github.com/nigeltao/dxt1/lib/tile"
)

// EncodeOptions are optional arguments to Encode. The zero value is valid and
// means to use the default configuration.
type EncodeOptions struct {
	// Parallelism is the number of goroutines that compress rows of blocks.
	// Zero or one means to compress on the calling goroutine. The output is
	// the same regardless.
	Parallelism int
}

// Encode writes src to dst as DXT1 blocks in row-major block order, with no
// header.
//
// src's width and height must be positive multiples of 4, otherwise it
// returns tile.ErrInvalidDimensions.
//
// options may be nil, which means to use the default configuration.
func Encode(dst io.Writer, src image.Image, options *EncodeOptions) error {
	if (dst == nil) || (src == nil) {
		return ErrBadArgument
	}

	b := src.Bounds()
	grid, err := tile.NewGrid(b.Dx(), b.Dy())
	if err != nil {
		return err
	}

	if (options != nil) && (options.Parallelism > 1) && (grid.Rows > 1) {
		return encodeParallel(dst, src, grid, min(options.Parallelism, grid.Rows))
	}

	e, bufJ := &encoder{}, 0
	extract := makeExtract(&e.pixels, src)

	for i := range grid.Len() {
		p := grid.PixelOrigin(i)
		extract(p.X, p.Y)
		blk := NewBlock(&e.pixels)
		encoded := blk.Bytes()
		bufJ += copy(e.buf[bufJ:], encoded[:])

		if bufJ >= encoderBufferSize {
			if _, err := dst.Write(e.buf[:]); err != nil {
				return err
			}
			bufJ = 0
		}
	}

	if bufJ > 0 {
		if _, err := dst.Write(e.buf[:bufJ]); err != nil {
			return err
		}
	}
	return nil
}

// encoderBufferSize is a multiple of BytesPerBlock, so that a block never
// straddles two writes.
const encoderBufferSize = 4096 - 64 - 64

type encoder struct {
	pixels [TexelsPerBlock]color.NRGBA
	buf    [encoderBufferSize]byte
}

// encodeParallel compresses the whole image into memory, with each of
// numWorkers goroutines taking every numWorkers'th row of blocks, and then
// writes it in one call.
func encodeParallel(dst io.Writer, src image.Image, grid tile.Grid, numWorkers int) error {
	out := make([]byte, grid.Len()*BytesPerBlock)
	rowBytes := grid.Columns * BytesPerBlock

	wg := sync.WaitGroup{}
	for w := range numWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var pixels [TexelsPerBlock]color.NRGBA
			extract := makeExtract(&pixels, src)
			for row := w; row < grid.Rows; row += numWorkers {
				o := out[row*rowBytes : (row+1)*rowBytes]
				for column := range grid.Columns {
					extract(column*tile.Dimension, row*tile.Dimension)
					blk := NewBlock(&pixels)
					buf := blk.Bytes()
					copy(o[column*BytesPerBlock:], buf[:])
				}
			}
		}()
	}
	wg.Wait()

	_, err := dst.Write(out)
	return err
}

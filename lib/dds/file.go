// Copyright 2025 The Dxt1 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package dds

import (
	"image"
	"io"

	"github.com/nigeltao/dxt1/lib/dxt1"
	"github.com/nigeltao/dxt1/lib/tile"
)

// File is a whole DDS file held in memory: its header and its compressed
// blocks.
type File struct {
	Header Header
	Grid   tile.Grid

	// Data holds Grid.Len() blocks of dxt1.BytesPerBlock bytes each, in
	// row-major block order.
	Data []byte
}

// ParseFile parses a whole DDS file. The returned File's Data aliases data.
// Bytes after the last block are ignored.
func ParseFile(data []byte) (*File, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	grid, err := h.grid()
	if err != nil {
		return nil, err
	}

	need := PrefixSize + int(h.PitchOrLinearSize)
	if len(data) < need {
		return nil, io.ErrUnexpectedEOF
	}
	return &File{
		Header: h,
		Grid:   grid,
		Data:   data[PrefixSize:need],
	}, nil
}

// NewFile returns a File for a width×height image whose blocks are all zero.
func NewFile(width int, height int) (*File, error) {
	grid, err := tile.NewGrid(width, height)
	if err != nil {
		return nil, err
	} else if (width > MaxDimension) || (height > MaxDimension) {
		return nil, ErrImageIsTooLarge
	}
	h := NewHeader(uint32(width), uint32(height))
	return &File{
		Header: h,
		Grid:   grid,
		Data:   make([]byte, h.PitchOrLinearSize),
	}, nil
}

// BlockData returns the compressed bytes of the block at block coordinate p.
// The result aliases f.Data.
func (f *File) BlockData(p image.Point) []byte {
	i := f.Grid.Linear(p) * dxt1.BytesPerBlock
	return f.Data[i : i+dxt1.BytesPerBlock : i+dxt1.BytesPerBlock]
}

// SetBlockData overwrites the compressed bytes of the block at block
// coordinate p.
func (f *File) SetBlockData(p image.Point, block [dxt1.BytesPerBlock]byte) {
	copy(f.BlockData(p), block[:])
}

// Bytes returns f's complete file encoding.
func (f *File) Bytes() []byte {
	dst, _ := f.Header.AppendBinary(make([]byte, 0, PrefixSize+len(f.Data)))
	return append(dst, f.Data...)
}

// Copyright 2025 The Dxt1 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package tile maps between linear block numbers and block coordinates in a
// plane that is cut into 4×4 pixel tiles.
//
// Both the DXT1 codec and the BMP and DDS containers use this package, so
// that the coordinate arithmetic lives in exactly one place.
package tile

import (
	"errors"
	"image"
)

// Dimension is the width and height, in pixels, of one tile.
const Dimension = 4

var ErrInvalidDimensions = errors.New("tile: invalid dimensions")

// ToLinear returns the row-major block number of the block at (column, row).
func ToLinear(column int, row int, blockColumns int) int {
	return column + (row * blockColumns)
}

// ToCoordinate is the inverse of ToLinear. It returns the (column, row) of
// the given row-major block number as an image.Point (X is the column, Y is
// the row).
//
// Iterating linear from 0 upwards therefore visits blocks left to right,
// then top to bottom. There is no separate column-major traversal.
func ToCoordinate(linear int, blockColumns int) image.Point {
	return image.Point{
		X: linear % blockColumns,
		Y: linear / blockColumns,
	}
}

// Grid is a plane of tiles, Columns wide and Rows high.
type Grid struct {
	Columns int
	Rows    int
}

// NewGrid returns the Grid covering a width×height pixel image.
//
// It returns ErrInvalidDimensions unless both width and height are positive
// multiples of Dimension.
func NewGrid(width int, height int) (Grid, error) {
	if (width <= 0) || ((width % Dimension) != 0) ||
		(height <= 0) || ((height % Dimension) != 0) {
		return Grid{}, ErrInvalidDimensions
	}
	return Grid{
		Columns: width / Dimension,
		Rows:    height / Dimension,
	}, nil
}

// Len returns the number of blocks in g.
func (g Grid) Len() int {
	return g.Columns * g.Rows
}

// Linear returns the row-major block number of the block at p.
func (g Grid) Linear(p image.Point) int {
	return ToLinear(p.X, p.Y, g.Columns)
}

// Coordinate returns the block coordinate of the i'th block.
func (g Grid) Coordinate(i int) image.Point {
	return ToCoordinate(i, g.Columns)
}

// PixelOrigin returns the top-left pixel of the i'th block.
func (g Grid) PixelOrigin(i int) image.Point {
	return g.Coordinate(i).Mul(Dimension)
}

// Bounds returns the pixel rectangle covered by g.
func (g Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Columns*Dimension, g.Rows*Dimension)
}

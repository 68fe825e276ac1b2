// Copyright 2025 The Dxt1 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package dxt1 implements the DXT1 (also known as BC1) block compression
// image format.
//
// Every 4×4 pixel block is stored in 8 bytes: two 16-bit RGB565 endpoint
// colors followed by sixteen 2-bit indexes into a 4-entry palette. This
// package's palette is the endpoints, their average and black, which is the
// layout that DXT1 decoders use for blocks whose first endpoint is not
// greater than the second. Decoded pixels are always opaque.
//
// DXT1 is usually wrapped in .dds (DirectDraw Surface) container files, which
// prepend a 128 byte header stating width, height and format. See the
// sibling dds package.
//
// DXT1 is specified at
// https://learn.microsoft.com/en-us/windows/win32/direct3d10/d3d10-graphics-programming-guide-resources-block-compression#bc1
package dxt1

import (
	"errors"
)

const (
	// BytesPerBlock is the size of one compressed 4×4 block.
	BytesPerBlock = 8

	// TexelsPerBlock is the number of pixels in one 4×4 block.
	TexelsPerBlock = 16

	// PaletteSize is the number of colors a block's indexes choose among.
	PaletteSize = 4
)

var (
	ErrBadArgument    = errors.New("dxt1: bad argument")
	ErrMalformedBlock = errors.New("dxt1: malformed block")
)

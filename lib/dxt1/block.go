// Copyright 2025 The Dxt1 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package dxt1

// Block is one compressed 4×4 block: two endpoint colors and, for each texel
// in row-major order, a palette index in the range [0, 3].
//
// Its wire format is 8 bytes:
//
//	offset 0-1: Color0, little-endian
//	offset 2-3: Color1, little-endian
//	offset 4-7: Indexes, one byte per row of 4 texels, with the leftmost
//	            texel in the least significant 2 bits
type Block struct {
	Color0  Color565
	Color1  Color565
	Indexes [TexelsPerBlock]uint8
}

// ParseBlock parses the 8 byte wire format.
//
// It returns ErrMalformedBlock if src is not exactly BytesPerBlock long.
func ParseBlock(src []byte) (Block, error) {
	if len(src) != BytesPerBlock {
		return Block{}, ErrMalformedBlock
	}

	b := Block{
		Color0: Color565(uint16(src[0]) | (uint16(src[1]) << 8)),
		Color1: Color565(uint16(src[2]) | (uint16(src[3]) << 8)),
	}
	for row := range 4 {
		x := src[4+row]
		b.Indexes[(4*row)+0] = (x >> 0) & 0x03
		b.Indexes[(4*row)+1] = (x >> 2) & 0x03
		b.Indexes[(4*row)+2] = (x >> 4) & 0x03
		b.Indexes[(4*row)+3] = (x >> 6) & 0x03
	}
	return b, nil
}

// Bytes returns b's wire format. Index bits above the low two are dropped.
func (b *Block) Bytes() (ret [BytesPerBlock]byte) {
	ret[0] = uint8(b.Color0 >> 0)
	ret[1] = uint8(b.Color0 >> 8)
	ret[2] = uint8(b.Color1 >> 0)
	ret[3] = uint8(b.Color1 >> 8)
	for row := range 4 {
		ret[4+row] = 0 |
			((b.Indexes[(4*row)+0] & 0x03) << 0) |
			((b.Indexes[(4*row)+1] & 0x03) << 2) |
			((b.Indexes[(4*row)+2] & 0x03) << 4) |
			((b.Indexes[(4*row)+3] & 0x03) << 6)
	}
	return ret
}

// AppendBytes appends b's wire format to dst.
func (b *Block) AppendBytes(dst []byte) []byte {
	buf := b.Bytes()
	return append(dst, buf[:]...)
}

// validate checks that every index addresses the 4-entry palette. ParseBlock
// cannot produce an out-of-range index but a Block built by hand can.
func (b *Block) validate() error {
	for _, index := range b.Indexes {
		if index >= PaletteSize {
			return ErrMalformedBlock
		}
	}
	return nil
}

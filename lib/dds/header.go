// Copyright 2025 The Dxt1 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package dds

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// Magic is the byte string prefix of every DDS image file.
	Magic = "DDS "

	// MagicNumber is Magic read as a little-endian uint32.
	MagicNumber = 0x20534444

	// HeaderSize is the size of the header that follows Magic, and the value
	// of its Size field.
	HeaderSize = 124

	// PrefixSize is the number of bytes before the first compressed block.
	PrefixSize = len(Magic) + HeaderSize

	pixelFormatSize = 32
	numReserved1    = 11
)

// FourCCDXT1 is "DXT1" read as a little-endian uint32.
const FourCCDXT1 = 0x31545844

// Header flags.
const (
	FlagCaps        = 0x1
	FlagHeight      = 0x2
	FlagWidth       = 0x4
	FlagPitch       = 0x8
	FlagPixelFormat = 0x1000
	FlagMipMapCount = 0x20000
	FlagLinearSize  = 0x80000
	FlagDepth       = 0x800000
)

// PixelFormat flags and Caps bits.
const (
	PixelFormatFlagFourCC = 0x4
	CapsTexture           = 0x1000
)

// PixelFormat is the DDS_PIXELFORMAT record nested in a Header.
type PixelFormat struct {
	Size        uint32
	Flags       uint32
	FourCC      uint32
	RGBBitCount uint32
	RBitMask    uint32
	GBitMask    uint32
	BBitMask    uint32
	ABitMask    uint32
}

// Header is the 124 byte DDS_HEADER that follows Magic. Fields are listed in
// file order. Each is a little-endian uint32.
type Header struct {
	Size              uint32
	Flags             uint32
	Height            uint32
	Width             uint32
	PitchOrLinearSize uint32
	Depth             uint32
	MipMapCount       uint32
	Reserved1         [numReserved1]uint32
	PixelFormat       PixelFormat
	Caps              uint32
	Caps2             uint32
	Caps3             uint32
	Caps4             uint32
	Reserved2         uint32
}

// LinearSize returns the number of bytes of DXT1 blocks for a width×height
// image. The result can exceed what a Header's PitchOrLinearSize can hold.
func LinearSize(width uint32, height uint32) uint64 {
	bW := max(1, (uint64(width)+3)/4)
	bH := max(1, (uint64(height)+3)/4)
	return bW * bH * 8
}

// NewHeader returns the header for a width×height DXT1 image with no
// mip-maps.
//
// PitchOrLinearSize is truncated if LinearSize does not fit in a uint32.
// Encode rejects such large images first.
func NewHeader(width uint32, height uint32) Header {
	return Header{
		Size:              HeaderSize,
		Flags:             FlagCaps | FlagHeight | FlagWidth | FlagPixelFormat,
		Height:            height,
		Width:             width,
		PitchOrLinearSize: uint32(LinearSize(width, height)),
		PixelFormat: PixelFormat{
			Size:   pixelFormatSize,
			Flags:  PixelFormatFlagFourCC,
			FourCC: FourCCDXT1,
		},
		Caps: CapsTexture,
	}
}

func (h Header) String() string {
	fourCC := [4]byte{}
	binary.LittleEndian.PutUint32(fourCC[:], h.PixelFormat.FourCC)
	return fmt.Sprintf("DDS %dx%d, format %q, flags 0x%X, linear size %d, mip-maps %d",
		h.Width, h.Height, fourCC[:], h.Flags, h.PitchOrLinearSize, h.MipMapCount)
}

// ParseHeader parses the first PrefixSize bytes of src: Magic and then the
// header.
//
// It only checks the framing: the magic and the two record sizes. See also
// Header.Validate.
func ParseHeader(src []byte) (Header, error) {
	if len(src) < PrefixSize {
		return Header{}, io.ErrUnexpectedEOF
	}
	if binary.LittleEndian.Uint32(src) != MagicNumber {
		return Header{}, ErrInvalidMagicNumber
	}

	r := fieldReader{src[len(Magic):PrefixSize]}
	h := Header{}
	h.Size = r.u32()
	h.Flags = r.u32()
	h.Height = r.u32()
	h.Width = r.u32()
	h.PitchOrLinearSize = r.u32()
	h.Depth = r.u32()
	h.MipMapCount = r.u32()
	for i := range h.Reserved1 {
		h.Reserved1[i] = r.u32()
	}
	h.PixelFormat.Size = r.u32()
	h.PixelFormat.Flags = r.u32()
	h.PixelFormat.FourCC = r.u32()
	h.PixelFormat.RGBBitCount = r.u32()
	h.PixelFormat.RBitMask = r.u32()
	h.PixelFormat.GBitMask = r.u32()
	h.PixelFormat.BBitMask = r.u32()
	h.PixelFormat.ABitMask = r.u32()
	h.Caps = r.u32()
	h.Caps2 = r.u32()
	h.Caps3 = r.u32()
	h.Caps4 = r.u32()
	h.Reserved2 = r.u32()

	if (h.Size != HeaderSize) || (h.PixelFormat.Size != pixelFormatSize) {
		return Header{}, ErrNotADDSFile
	}
	return h, nil
}

// Validate checks that h describes a DXT1 image that this package can
// decode.
func (h Header) Validate() error {
	if uint64(h.PitchOrLinearSize) != LinearSize(h.Width, h.Height) {
		return ErrHeaderSizeMismatch
	}
	if ((h.PixelFormat.Flags & PixelFormatFlagFourCC) == 0) ||
		(h.PixelFormat.FourCC != FourCCDXT1) {
		return ErrUnsupportedFormat
	}
	return nil
}

// AppendBinary appends Magic and then h's 124 byte encoding to dst.
func (h Header) AppendBinary(dst []byte) ([]byte, error) {
	dst = append(dst, Magic...)
	dst = binary.LittleEndian.AppendUint32(dst, h.Size)
	dst = binary.LittleEndian.AppendUint32(dst, h.Flags)
	dst = binary.LittleEndian.AppendUint32(dst, h.Height)
	dst = binary.LittleEndian.AppendUint32(dst, h.Width)
	dst = binary.LittleEndian.AppendUint32(dst, h.PitchOrLinearSize)
	dst = binary.LittleEndian.AppendUint32(dst, h.Depth)
	dst = binary.LittleEndian.AppendUint32(dst, h.MipMapCount)
	for _, x := range h.Reserved1 {
		dst = binary.LittleEndian.AppendUint32(dst, x)
	}
	dst = binary.LittleEndian.AppendUint32(dst, h.PixelFormat.Size)
	dst = binary.LittleEndian.AppendUint32(dst, h.PixelFormat.Flags)
	dst = binary.LittleEndian.AppendUint32(dst, h.PixelFormat.FourCC)
	dst = binary.LittleEndian.AppendUint32(dst, h.PixelFormat.RGBBitCount)
	dst = binary.LittleEndian.AppendUint32(dst, h.PixelFormat.RBitMask)
	dst = binary.LittleEndian.AppendUint32(dst, h.PixelFormat.GBitMask)
	dst = binary.LittleEndian.AppendUint32(dst, h.PixelFormat.BBitMask)
	dst = binary.LittleEndian.AppendUint32(dst, h.PixelFormat.ABitMask)
	dst = binary.LittleEndian.AppendUint32(dst, h.Caps)
	dst = binary.LittleEndian.AppendUint32(dst, h.Caps2)
	dst = binary.LittleEndian.AppendUint32(dst, h.Caps3)
	dst = binary.LittleEndian.AppendUint32(dst, h.Caps4)
	dst = binary.LittleEndian.AppendUint32(dst, h.Reserved2)
	return dst, nil
}

// MarshalBinary returns Magic followed by h's 124 byte encoding.
func (h Header) MarshalBinary() ([]byte, error) {
	return h.AppendBinary(make([]byte, 0, PrefixSize))
}

type fieldReader struct {
	b []byte
}

func (r *fieldReader) u32() uint32 {
	x := binary.LittleEndian.Uint32(r.b)
	r.b = r.b[4:]
	return x
}

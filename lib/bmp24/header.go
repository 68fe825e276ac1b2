// Copyright 2025 The Dxt1 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package bmp24

import (
	"encoding/binary"
	"io"
)

const (
	// Magic is the byte string prefix of every BMP image file.
	Magic = "BM"

	// FileHeaderSize is the size of the BITMAPFILEHEADER.
	FileHeaderSize = 14

	// InfoHeaderSize is the size of the BITMAPINFOHEADER, and the value of
	// its HeaderSize field.
	InfoHeaderSize = 40

	// PrefixSize is the number of bytes of both headers.
	PrefixSize = FileHeaderSize + InfoHeaderSize

	// PixelsPerMeter is the resolution that Encode records, about 72 DPI.
	PixelsPerMeter = 2835
)

// FileHeader is the 14 byte BITMAPFILEHEADER. Fields are listed in file order
// and are little-endian.
type FileHeader struct {
	Magic       [2]byte
	FileSize    uint32
	Reserved1   uint16
	Reserved2   uint16
	PixelOffset uint32
}

// InfoHeader is the 40 byte BITMAPINFOHEADER. Fields are listed in file order
// and are little-endian.
//
// A positive Height means that rows are stored bottom-up. A negative Height
// means top-down.
type InfoHeader struct {
	HeaderSize      uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	ImageSize       uint32
	XPelsPerMeter   uint32
	YPelsPerMeter   uint32
	ColorsUsed      uint32
	ImportantColors uint32
}

// rowStride returns the number of bytes per row of 24 bit pixels, including
// padding to a multiple of 4.
func rowStride(width int) int {
	return ((3 * width) + 3) &^ 3
}

// NewHeaders returns the headers for a bottom-up, 24 bits per pixel,
// width×height image.
func NewHeaders(width int, height int) (FileHeader, InfoHeader) {
	imageSize := uint32(rowStride(width) * height)
	return FileHeader{
			Magic:       [2]byte{Magic[0], Magic[1]},
			FileSize:    PrefixSize + imageSize,
			PixelOffset: PrefixSize,
		}, InfoHeader{
			HeaderSize:    InfoHeaderSize,
			Width:         int32(width),
			Height:        int32(height),
			Planes:        1,
			BitCount:      24,
			ImageSize:     imageSize,
			XPelsPerMeter: PixelsPerMeter,
			YPelsPerMeter: PixelsPerMeter,
		}
}

// ParseHeaders parses the first PrefixSize bytes of src.
//
// It only checks the magic. See also InfoHeader.Validate.
func ParseHeaders(src []byte) (FileHeader, InfoHeader, error) {
	if len(src) < PrefixSize {
		return FileHeader{}, InfoHeader{}, io.ErrUnexpectedEOF
	}
	if (src[0] != Magic[0]) || (src[1] != Magic[1]) {
		return FileHeader{}, InfoHeader{}, ErrInvalidMagicNumber
	}

	le := binary.LittleEndian
	fh := FileHeader{
		Magic:       [2]byte{src[0], src[1]},
		FileSize:    le.Uint32(src[2:]),
		Reserved1:   le.Uint16(src[6:]),
		Reserved2:   le.Uint16(src[8:]),
		PixelOffset: le.Uint32(src[10:]),
	}

	src = src[FileHeaderSize:]
	ih := InfoHeader{
		HeaderSize:      le.Uint32(src[0:]),
		Width:           int32(le.Uint32(src[4:])),
		Height:          int32(le.Uint32(src[8:])),
		Planes:          le.Uint16(src[12:]),
		BitCount:        le.Uint16(src[14:]),
		Compression:     le.Uint32(src[16:]),
		ImageSize:       le.Uint32(src[20:]),
		XPelsPerMeter:   le.Uint32(src[24:]),
		YPelsPerMeter:   le.Uint32(src[28:]),
		ColorsUsed:      le.Uint32(src[32:]),
		ImportantColors: le.Uint32(src[36:]),
	}
	return fh, ih, nil
}

// AppendHeaders appends the PrefixSize byte encoding of fh and ih to dst.
func AppendHeaders(dst []byte, fh FileHeader, ih InfoHeader) []byte {
	le := binary.LittleEndian
	dst = append(dst, fh.Magic[0], fh.Magic[1])
	dst = le.AppendUint32(dst, fh.FileSize)
	dst = le.AppendUint16(dst, fh.Reserved1)
	dst = le.AppendUint16(dst, fh.Reserved2)
	dst = le.AppendUint32(dst, fh.PixelOffset)

	dst = le.AppendUint32(dst, ih.HeaderSize)
	dst = le.AppendUint32(dst, uint32(ih.Width))
	dst = le.AppendUint32(dst, uint32(ih.Height))
	dst = le.AppendUint16(dst, ih.Planes)
	dst = le.AppendUint16(dst, ih.BitCount)
	dst = le.AppendUint32(dst, ih.Compression)
	dst = le.AppendUint32(dst, ih.ImageSize)
	dst = le.AppendUint32(dst, ih.XPelsPerMeter)
	dst = le.AppendUint32(dst, ih.YPelsPerMeter)
	dst = le.AppendUint32(dst, ih.ColorsUsed)
	dst = le.AppendUint32(dst, ih.ImportantColors)
	return dst
}

// Validate checks that ih describes an image that this package can decode.
func (ih InfoHeader) Validate() error {
	if (ih.HeaderSize < InfoHeaderSize) ||
		(ih.Planes != 1) ||
		(ih.BitCount != 24) ||
		(ih.Compression != 0) {
		return ErrUnsupported
	}
	return nil
}

// Size returns the image's width and the absolute value of its height.
func (ih InfoHeader) Size() (width int, height int) {
	width, height = int(ih.Width), int(ih.Height)
	if height < 0 {
		height = -height
	}
	return width, height
}

// TopDown returns whether the first stored row is the top row.
func (ih InfoHeader) TopDown() bool {
	return ih.Height < 0
}

// Copyright 2025 The Dxt1 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package zst wraps whole container files (such as "foo.dds.zst") in
// Zstandard compression.
//
// DXT1 blocks are a fixed 4 bits per pixel, but flat or repetitive textures
// still leave plenty of redundancy for a general purpose compressor.
package zst

import (
	"bytes"
	"errors"
	"io"
	"runtime"

	"github.com/klauspost/compress/zstd"
)

// Magic is the byte string prefix of every Zstandard frame.
const Magic = "\x28\xB5\x2F\xFD"

// Extension is the conventional filename suffix.
const Extension = ".zst"

// MaxDecodedSize bounds the memory that Decode will allocate.
const MaxDecodedSize = 1 << 30

var ErrBadArgument = errors.New("zst: bad argument")

// HasMagic returns whether b starts with a Zstandard frame header.
func HasMagic(b []byte) bool {
	return bytes.HasPrefix(b, []byte(Magic))
}

// Encode writes the compressed form of src to w.
func Encode(w io.Writer, src []byte) error {
	if w == nil {
		return ErrBadArgument
	}
	enc, err := zstd.NewWriter(w,
		zstd.WithEncoderConcurrency(runtime.NumCPU()),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
	)
	if err != nil {
		return err
	}
	if _, err := enc.Write(src); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Decode reads all of r and returns its decompressed form.
func Decode(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, ErrBadArgument
	}
	dec, err := zstd.NewReader(r, zstd.WithDecoderMaxMemory(MaxDecodedSize))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return io.ReadAll(dec)
}

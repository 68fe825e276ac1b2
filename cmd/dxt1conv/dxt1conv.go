// Copyright 2025 The Dxt1 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// dxt1conv converts between DDS (DXT1) textures and 24 bit BMP images.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nigeltao/dxt1/internal/nie"
	"github.com/nigeltao/dxt1/internal/zst"
	"github.com/nigeltao/dxt1/lib/bmp24"
	"github.com/nigeltao/dxt1/lib/dds"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	infoFlag         = flag.Bool("info", false, "print the DDS header and first block, then exit")
	jFlag            = flag.Int("j", 0, "number of goroutines to encode with")
	outputFlag       = flag.String("output", "", "output path")
	outputFormatFlag = flag.String("output-format", "", "output format when decoding")
	zstdFlag         = flag.Bool("zstd", false, "whether to Zstandard compress the encoded DDS")
)

const usageStr = `dxt1conv converts between DDS (DXT1) textures and 24 bit BMP images.

Usage:

    dxt1conv [flags] [path]

The path to the input image file is optional. If omitted, it is prompted for
on stdin.

A .dds or .dds.zst input is decoded to a .bmp file with the same name.
A .bmp input is encoded to a .dds file with the same name. GIF, JPEG, PNG,
TIFF and WEBP inputs, and BMP inputs that are not 24 bits per pixel, are also
encoded. Width and height must be multiples of 4.

Flags (before the path):

    -info               print the DDS header and first block, then exit
    -j=N                encode with N goroutines
    -output=PATH        write to PATH instead of the derived name
    -output-format=bmp  when decoding (this is the default)
    -output-format=nie-bn8
    -zstd               when encoding, write a .dds.zst file
`

const welcomeStr = `Welcome to dxt1conv. Currently supporting DDS -> BMP and BMP -> DDS.
Supported inputs are 24 bit BMP files and DXT1 DDS files.
Type file name.
`

var (
	ErrBadOutputFormatFlag = errors.New("main: bad -output-format flag")
	ErrFormatNotSupported  = errors.New("main: file format not supported")
	ErrNoFilename          = errors.New("main: no file name given")
)

const formatNotSupportedStr = "File format not supported.\n"

func main() {
	if err := main1(); err != nil {
		reportError(os.Stdout, os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err. An unsupported input gets a plain message on
// stdout. Anything else goes to stderr.
func reportError(stdout io.Writer, stderr io.Writer, err error) {
	if errors.Is(err, ErrFormatNotSupported) {
		io.WriteString(stdout, formatNotSupportedStr)
		return
	}
	io.WriteString(stderr, err.Error()+"\n")
}

func main1() error {
	flag.Usage = func() { os.Stderr.WriteString(usageStr) }
	flag.Parse()

	c := &converter{
		outputPath:   *outputFlag,
		outputFormat: *outputFormatFlag,
		parallelism:  *jFlag,
		zstd:         *zstdFlag,
		stdout:       os.Stdout,
	}
	if err := c.checkFlags(); err != nil {
		return err
	}

	inPath := ""
	switch flag.NArg() {
	case 0:
		os.Stdout.WriteString(welcomeStr)
		p, err := promptFilename(os.Stdin)
		if err != nil {
			return err
		}
		inPath = p
	case 1:
		inPath = flag.Arg(0)
	default:
		return errors.New("too many filenames; the maximum is one")
	}

	if *infoFlag {
		return c.info(inPath)
	}
	outPath, err := c.convert(inPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "Conversion complete, file created %s\n", outPath)
	return nil
}

// promptFilename returns the first line of r, trimmed of surrounding space.
func promptFilename(r io.Reader) (string, error) {
	s := bufio.NewScanner(r)
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return "", err
		}
		return "", ErrNoFilename
	}
	name := strings.TrimSpace(s.Text())
	if name == "" {
		return "", ErrNoFilename
	}
	return name, nil
}

type inputKind uint8

const (
	kindUnsupported inputKind = iota
	kindDDS
	kindDDSZst
	kindBMP
	kindOtherImage
)

// classify returns the kind of the file at path and the path without its
// recognized extension.
func classify(path string) (inputKind, string) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".dds"+zst.Extension):
		return kindDDSZst, path[:len(path)-len(".dds"+zst.Extension)]
	case strings.HasSuffix(lower, ".dds"):
		return kindDDS, path[:len(path)-len(".dds")]
	case strings.HasSuffix(lower, ".bmp"):
		return kindBMP, path[:len(path)-len(".bmp")]
	}
	switch ext := filepath.Ext(lower); ext {
	case ".gif", ".jpeg", ".jpg", ".png", ".tif", ".tiff", ".webp":
		return kindOtherImage, path[:len(path)-len(ext)]
	}
	return kindUnsupported, path
}

type converter struct {
	outputPath   string
	outputFormat string
	parallelism  int
	zstd         bool
	stdout       io.Writer
}

func (c *converter) checkFlags() error {
	switch c.outputFormat {
	case "", "bmp", "nie-bn8":
		return nil
	}
	return ErrBadOutputFormatFlag
}

// derivedOutputPath returns where converting inPath writes to, absent an
// explicit c.outputPath.
func (c *converter) derivedOutputPath(inPath string) (string, error) {
	kind, stem := classify(inPath)
	switch kind {
	case kindDDS, kindDDSZst:
		if c.outputFormat == "nie-bn8" {
			return stem + ".nie", nil
		}
		return stem + ".bmp", nil
	case kindBMP, kindOtherImage:
		if c.zstd {
			return stem + ".dds" + zst.Extension, nil
		}
		return stem + ".dds", nil
	}
	return "", ErrFormatNotSupported
}

// convert converts the file at inPath and returns the path of the file
// created.
func (c *converter) convert(inPath string) (string, error) {
	outPath, err := c.derivedOutputPath(inPath)
	if err != nil {
		return "", err
	}
	if c.outputPath != "" {
		outPath = c.outputPath
	}

	kind, _ := classify(inPath)
	switch kind {
	case kindDDS, kindDDSZst:
		err = c.decode(inPath, outPath)
	default:
		err = c.encode(inPath, outPath, kind)
	}
	if err != nil {
		return "", err
	}
	return outPath, nil
}

// readDDS returns the DDS bytes of the file at path, decompressing them if
// they are Zstandard compressed.
func readDDS(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if zst.HasMagic(data) {
		data, err = zst.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return data, nil
}

func (c *converter) decode(inPath string, outPath string) error {
	data, err := readDDS(inPath)
	if err != nil {
		return err
	}
	src, err := dds.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}

	return writeFileAtomically(outPath, func(w io.Writer) error {
		if c.outputFormat == "nie-bn8" {
			enc, err := nie.EncodeBN8(src)
			if err != nil {
				return err
			}
			_, err = w.Write(enc)
			return err
		}
		return bmp24.Encode(w, src)
	})
}

func (c *converter) encode(inPath string, outPath string, kind inputKind) error {
	src, err := loadImage(inPath, kind)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	options := &dds.EncodeOptions{Parallelism: c.parallelism}

	return writeFileAtomically(outPath, func(w io.Writer) error {
		if !c.zstd {
			return dds.Encode(w, src, options)
		}
		buf := &bytes.Buffer{}
		if err := dds.Encode(buf, src, options); err != nil {
			return err
		}
		return zst.Encode(w, buf.Bytes())
	})
}

// loadImage decodes the file at path. 24 bit BMP files go through the bmp24
// package and everything else goes through the image package's registered
// decoders.
func loadImage(path string, kind inputKind) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if kind == kindBMP {
		m, err := bmp24.Decode(bytes.NewReader(data))
		if !errors.Is(err, bmp24.ErrUnsupported) {
			return m, err
		}
	}
	m, _, err := image.Decode(bytes.NewReader(data))
	return m, err
}

// writeFileAtomically writes to a temporary file next to path and renames it
// to path only if write succeeds.
func writeFileAtomically(path string, write func(w io.Writer) error) (retErr error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	defer func() {
		if retErr != nil {
			f.Close()
			os.Remove(tmpName)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

func (c *converter) info(inPath string) error {
	if kind, _ := classify(inPath); (kind != kindDDS) && (kind != kindDDSZst) {
		return ErrFormatNotSupported
	}
	data, err := readDDS(inPath)
	if err != nil {
		return err
	}
	f, err := dds.ParseFile(data)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	fmt.Fprintf(c.stdout, "%s\n%d×%d blocks\nfirst block: % 02X\n",
		f.Header, f.Grid.Columns, f.Grid.Rows, f.BlockData(image.Point{}))
	return nil
}

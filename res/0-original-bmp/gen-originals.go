// Copyright 2025 The Dxt1 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

//go:build ignore

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"os"

	"github.com/nigeltao/dxt1/lib/bmp24"
)

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	if err := do("circle.bmp", circle()); err != nil {
		return err
	}
	if err := do("gradient.bmp", gradient()); err != nil {
		return err
	}
	if err := do("mixed.bmp", mixed()); err != nil {
		return err
	}
	return nil
}

func circle() *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, 64, 64))
	const cx, cy = 20, 28
	for y := range 64 {
		dy := y - cy
		for x := range 64 {
			dx := x - cx
			distance := int64(4 * math.Sqrt(float64((dx*dx)+(dy*dy))))
			v := 0xFF - uint8(max(0x00, min(0xFF, distance)))
			m.SetRGBA(x, y, color.RGBA{v, v / 3, 0, 0xFF})
		}
	}
	return m
}

func gradient() *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := range 64 {
		for x := range 64 {
			m.SetRGBA(x, y, color.RGBA{0x00, uint8(4 * x), uint8(4 * y), 0xFF})
		}
	}
	return m
}

// mixed has the circle in its top half and the gradient, with hard-edged
// stripes, in its bottom half. It is 64×32 so that it is not square.
func mixed() *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, 64, 32))
	draw.Draw(m, image.Rect(0, 0, 64, 16), circle(), image.Pt(0, 20), draw.Src)
	draw.Draw(m, image.Rect(0, 16, 64, 32), gradient(), image.Pt(0, 24), draw.Src)
	for y := 16; y < 32; y++ {
		for x := 1; x < 64; x += 6 {
			m.SetRGBA(x, y, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF})
		}
	}
	return m
}

func do(filename string, m image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("os.Create: %v", err)
	}
	defer f.Close()
	if err := bmp24.Encode(f, m); err != nil {
		return fmt.Errorf("bmp24.Encode: %v", err)
	}
	return nil
}

// Copyright 2025 The Dxt1 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

//go:build ignore

package main

// This program writes the DDS encoding of every BMP in srcDirName.

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/nigeltao/dxt1/lib/bmp24"
	"github.com/nigeltao/dxt1/lib/dds"
)

const srcDirName = "../0-original-bmp"

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	entries, err := os.ReadDir(srcDirName)
	if err != nil {
		return fmt.Errorf("os.ReadDir: %v", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".bmp") {
			continue
		}
		if err := do(name); err != nil {
			return err
		}
	}
	return nil
}

func do(name string) error {
	f, err := os.Open(srcDirName + "/" + name)
	if err != nil {
		return fmt.Errorf("os.Open: %v", err)
	}
	defer f.Close()
	src, err := bmp24.Decode(f)
	if err != nil {
		return fmt.Errorf("bmp24.Decode: %v", err)
	}
	buf := &bytes.Buffer{}
	if err := dds.Encode(buf, src, nil); err != nil {
		return fmt.Errorf("dds.Encode: %v", err)
	}
	err = os.WriteFile(name[:len(name)-3]+"dds", buf.Bytes(), 0666)
	if err != nil {
		return fmt.Errorf("os.WriteFile: %v", err)
	}
	return nil
}

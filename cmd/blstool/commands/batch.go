// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/33cn/blsffi/utils/compression"
	"github.com/33cn/blsffi/utils/crypto/bls"
)

// batchLineLen is the longest line of a batch file: a 0x prefixed hex
// signature and a line break.
const batchLineLen = 2 + 2*bls.SignatureLen + 2

// readBatchFile returns the non empty lines of [path] that don't start with
// '#'. Files ending in .zst are decompressed first.
func (e *env) readBatchFile(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, compression.FileExtension) {
		b, err = e.compressor.Decompress(b)
		if err != nil {
			return nil, fmt.Errorf("couldn't decompress %s: %w", path, err)
		}
	}

	var lines []string
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

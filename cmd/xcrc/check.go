// Copyright (c) 2020. Temple3x (temple3x@gmail.com)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/zaibyte/xcrc/config/settings"
	"github.com/zaibyte/xcrc/errno"
	"github.com/zaibyte/xcrc/xerrors"

	"github.com/templexxx/xhex"
)

// formatSum returns sum in lowercase hex, 2*size digits.
func formatSum(sum uint64, size int) string {
	b := make([]byte, size)
	for i := size - 1; i >= 0; i-- {
		b[i] = byte(sum)
		sum >>= 8
	}
	dst := make([]byte, 2*size)
	xhex.Encode(dst, b)
	return string(dst)
}

// parseSum parses the hex of formatSum (in any case).
func parseSum(h string, size int) (uint64, error) {
	if len(h) != 2*size {
		return 0, xerrors.WithMessagef(errno.ErrInvalidCheckLine,
			"checksum %q should have %d hex digits", h, 2*size)
	}
	b := make([]byte, size)
	if err := xhex.Decode(b, []byte(h)); err != nil {
		return 0, xerrors.WithMessagef(errno.ErrInvalidCheckLine, "checksum %q: %s", h, err)
	}
	var sum uint64
	for _, v := range b {
		sum = sum<<8 | uint64(v)
	}
	return sum, nil
}

type checkEntry struct {
	sum  uint64
	name string
}

// readCheckFile parses lines of "<hex>  <name>",
// blank lines and lines beginning with '#' are skipped.
func readCheckFile(r io.Reader, size int) ([]checkEntry, error) {
	var entries []checkEntry

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), settings.Soft.MaxCheckLineSize)
	lineNum := 0
	for s.Scan() {
		lineNum++
		line := strings.TrimRight(s.Text(), "\r")
		if line == "" || line[0] == '#' {
			continue
		}

		i := strings.Index(line, "  ")
		if i < 0 || i+2 == len(line) {
			return nil, xerrors.WithMessagef(errno.ErrInvalidCheckLine, "line %d: %q", lineNum, line)
		}
		sum, err := parseSum(line[:i], size)
		if err != nil {
			return nil, xerrors.WithMessagef(err, "line %d", lineNum)
		}
		entries = append(entries, checkEntry{sum: sum, name: line[i+2:]})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

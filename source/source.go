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

// Package source feeds byte sources into a crc.Engine.
//
// Every function here gives the same checksum as crc.Engine.Checksum
// over the whole content in memory, no matter how the source is chunked.
package source

import (
	"io"
	"os"

	"github.com/zaibyte/xcrc/crc"
	"github.com/zaibyte/xcrc/errno"
	"github.com/zaibyte/xcrc/xbytes"
	"github.com/zaibyte/xcrc/xerrors"
)

// Sum reads r until io.EOF and returns the checksum and the count of bytes
// checksummed (after decompression if there is a decoder).
// Any read error is returned without a partial result.
func Sum(e *crc.Engine, r io.Reader, opts ...Option) (uint64, int64, error) {
	o := newOptions(opts)

	r, release, err := o.wrap(r)
	if err != nil {
		return 0, 0, err
	}
	defer release()

	buf := xbytes.GetNChunk(o.chunkSize)
	defer buf.Close()
	p := buf.Bytes()

	acc := e.Init()
	var n int64
	for {
		m, err := r.Read(p)
		if m > 0 {
			acc = e.Update(acc, p[:m])
			n += int64(m)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, 0, err
		}
	}
	return e.Final(acc), n, nil
}

// SumByteReader reads br one byte at a time until io.EOF.
func SumByteReader(e *crc.Engine, br io.ByteReader) (uint64, error) {
	acc := e.Init()
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return e.Final(acc), nil
		}
		if err != nil {
			return 0, err
		}
		acc = e.UpdateByte(acc, b)
	}
}

// SumInts checksums vals as bytes.
// All values must be in [0, 255], otherwise it returns an error wrapping
// errno.ErrByteOutOfRange and nothing is computed.
func SumInts(e *crc.Engine, vals []int) (uint64, error) {
	for i, v := range vals {
		if v < 0 || v > 0xff {
			return 0, xerrors.WithMessagef(errno.ErrByteOutOfRange, "value %d at index %d", v, i)
		}
	}

	acc := e.Init()
	for _, v := range vals {
		acc = e.UpdateByte(acc, byte(v))
	}
	return e.Final(acc), nil
}

// SumFile opens path and returns Sum of its content.
func SumFile(e *crc.Engine, path string, opts ...Option) (uint64, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	return Sum(e, f, opts...)
}

// Reader is an io.Reader passing through another one,
// it checksums everything read.
type Reader struct {
	e   *crc.Engine
	r   io.Reader
	acc uint64
	n   int64
}

// NewReader returns a Reader reading from r.
func NewReader(e *crc.Engine, r io.Reader) *Reader {
	return &Reader{e: e, r: r, acc: e.Init()}
}

func (r *Reader) Read(p []byte) (n int, err error) {
	n, err = r.r.Read(p)
	if n > 0 {
		r.acc = r.e.Update(r.acc, p[:n])
		r.n += int64(n)
	}
	return
}

// Sum returns the checksum of bytes read so far.
func (r *Reader) Sum() uint64 {
	return r.e.Final(r.acc)
}

// Count returns the count of bytes read so far.
func (r *Reader) Count() int64 {
	return r.n
}

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

package source

import (
	"io"
	"strings"

	"github.com/zaibyte/xcrc/errno"
	"github.com/zaibyte/xcrc/xbytes"
	"github.com/zaibyte/xcrc/xerrors"

	"github.com/juju/ratelimit"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec is the compression format of a source,
// the checksum is computed over the decompressed bytes.
type Codec string

const (
	CodecNone Codec = ""
	CodecGzip Codec = "gzip"
	CodecZstd Codec = "zstd"
	CodecLZ4  Codec = "lz4"
)

// ParseCodec returns the Codec named s ("", "none", "gzip", "zstd" or "lz4").
func ParseCodec(s string) (Codec, error) {
	switch c := Codec(strings.ToLower(s)); c {
	case CodecNone, "none":
		return CodecNone, nil
	case CodecGzip, CodecZstd, CodecLZ4:
		return c, nil
	}
	return CodecNone, xerrors.WithMessagef(errno.ErrUnsupportedCodec, "%q", s)
}

type options struct {
	chunkSize int
	rate      int64
	codec     Codec
}

// Option configures how a source is read.
type Option func(*options)

// WithChunkSize sets the size of each read,
// n <= 0 means xbytes.MaxChunkSizeInPool.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// WithRateLimit throttles reading to bytesPerSec,
// bytesPerSec <= 0 means unlimited.
func WithRateLimit(bytesPerSec int64) Option {
	return func(o *options) {
		o.rate = bytesPerSec
	}
}

// WithDecoder decompresses the source by c before checksumming.
func WithDecoder(c Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

func newOptions(opts []Option) *options {
	o := &options{chunkSize: xbytes.MaxChunkSizeInPool}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func nopClose() {}

// wrap returns r throttled then decompressed as o says,
// release must be called after reading.
func (o *options) wrap(r io.Reader) (wr io.Reader, release func(), err error) {
	if o.rate > 0 {
		r = ratelimit.Reader(r, ratelimit.NewBucketWithRate(float64(o.rate), o.rate))
	}

	switch o.codec {
	case CodecNone:
		return r, nopClose, nil
	case CodecGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, xerrors.WithMessage(err, "open gzip stream")
		}
		return zr, func() { _ = zr.Close() }, nil
	case CodecZstd:
		zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, nil, xerrors.WithMessage(err, "open zstd stream")
		}
		return zr, zr.Close, nil
	case CodecLZ4:
		return lz4.NewReader(r), nopClose, nil
	}
	return nil, nil, xerrors.WithMessagef(errno.ErrUnsupportedCodec, "%q", string(o.codec))
}

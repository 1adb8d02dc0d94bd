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

// Package xframe seals payloads into checksummed frames.
//
// Frame layout:
//	size    uint32 (big-endian) [0, 4)
//	payload []byte              [4, 4+size)
//	crc     Size bytes          [4+size, 4+size+Size)
//
// crc is the checksum (big-endian, width/8 bytes) of size and payload.
package xframe

import (
	"encoding/binary"
	"io"

	"github.com/zaibyte/xcrc/crc"
	"github.com/zaibyte/xcrc/errno"
	"github.com/zaibyte/xcrc/xerrors"
)

const sizeLen = 4

// MaxPayloadSize is the maximum payload size ReadFrame accepts.
const MaxPayloadSize = 64 * 1024 * 1024

// Framer seals and opens frames by an Engine.
type Framer struct {
	e *crc.Engine
}

// New creates a Framer.
func New(e *crc.Engine) *Framer {
	return &Framer{e: e}
}

// Overhead returns the frame bytes besides payload.
func (f *Framer) Overhead() int {
	return sizeLen + f.e.Size()
}

// Seal appends the frame of payload to dst and returns the resulting slice.
func (f *Framer) Seal(dst, payload []byte) []byte {
	start := len(dst)
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(payload)))
	dst = append(dst, payload...)
	sum := f.e.Checksum(dst[start:])
	return appendCRC(dst, sum, f.e.Size())
}

// Open verifies frame and returns its payload,
// the payload shares the backing array of frame.
func (f *Framer) Open(frame []byte) ([]byte, error) {
	n := f.e.Size()
	if len(frame) < sizeLen+n {
		return nil, xerrors.WithMessagef(errno.ErrFrameTooShort, "%d bytes", len(frame))
	}
	size := binary.BigEndian.Uint32(frame[:sizeLen])
	if uint64(len(frame)) != uint64(sizeLen)+uint64(size)+uint64(n) {
		return nil, xerrors.WithMessagef(errno.ErrFrameTooShort,
			"payload size %d, frame %d bytes", size, len(frame))
	}

	body := frame[:len(frame)-n]
	incoming := readCRC(frame[len(body):])
	expected := f.e.Checksum(body)
	if incoming != expected {
		return nil, xerrors.WithMessagef(errno.ErrChecksumMismatch,
			"%s: got %#x, want %#x", f.e.Algorithm().Name, incoming, expected)
	}
	return body[sizeLen:], nil
}

// WriteFrame writes the frame of payload to w.
func (f *Framer) WriteFrame(w io.Writer, payload []byte) error {
	buf := make([]byte, 0, len(payload)+f.Overhead())
	_, err := w.Write(f.Seal(buf, payload))
	return err
}

// ReadFrame reads one frame from r and returns its payload.
// It returns io.EOF only if there is no byte before the frame,
// a truncated frame is io.ErrUnexpectedEOF.
func (f *Framer) ReadFrame(r io.Reader) ([]byte, error) {
	var sb [sizeLen]byte
	if _, err := io.ReadFull(r, sb[:]); err != nil {
		return nil, err
	}
	size := binary.BigEndian.Uint32(sb[:])
	if size > MaxPayloadSize {
		return nil, xerrors.WithMessagef(errno.ErrFrameTooShort,
			"payload size %d over limit %d", size, MaxPayloadSize)
	}

	frame := make([]byte, sizeLen+int(size)+f.e.Size())
	copy(frame, sb[:])
	if _, err := io.ReadFull(r, frame[sizeLen:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return f.Open(frame)
}

func appendCRC(dst []byte, sum uint64, n int) []byte {
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, byte(sum>>(uint(i)*8)))
	}
	return dst
}

func readCRC(p []byte) uint64 {
	var sum uint64
	for _, b := range p {
		sum = sum<<8 | uint64(b)
	}
	return sum
}

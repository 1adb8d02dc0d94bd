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

// Package errno provides error numbers for xcrc.
//
// An Errno is an unsigned number describing an error condition.
// It implements the error interface. The zero Errno is by convention
// a non-error, so code to convert from Errno to error should use:
//	err = nil
//	if errno != 0 {
//		err = errno
//	}
//
// Context should be added by xerrors.WithMessage,
// callers get the number back by ErrToErrno (e.g. as process exit code).
package errno

import "errors"

type Errno uint16

func (e Errno) Error() string {

	if e == 0 {
		return ""
	}

	if int(e) < len(errnoStr) {
		s := errnoStr[e]
		if s != "" {
			return s
		}
	}
	return "unknown error"
}

// ToErr returns nil for the zero Errno.
func (e Errno) ToErr() error {
	if e == 0 {
		return nil
	}

	return e
}

// ErrToErrno returns Errno value by error.
// Any error which is not an Errno (after unwrapping) is an internal error.
func ErrToErrno(err error) Errno {
	if err == nil {
		return 0
	}

	var e Errno
	if errors.As(err, &e) {
		return e
	}

	return Errno(internal)
}

const (
	invalidAlgorithm = 1
	unknownAlgorithm = 2
	byteOutOfRange   = 3
	checksumMismatch = 4
	invalidConfig    = 5
	invalidCheckLine = 6
	unsupportedCodec = 7
	frameTooShort    = 8
	internal         = 9
)

// Error table.
// Please add errno in order.
var errnoStr = [...]string{
	invalidAlgorithm: "invalid algorithm",
	unknownAlgorithm: "unknown algorithm",
	byteOutOfRange:   "byte out of range",
	checksumMismatch: "checksum mismatch",
	invalidConfig:    "invalid config",
	invalidCheckLine: "invalid check line",
	unsupportedCodec: "unsupported codec",
	frameTooShort:    "frame too short",
	internal:         "internal error",
}

var (
	ErrInvalidAlgorithm = Errno(invalidAlgorithm) // Width or constants illegal, raised by crc.New.
	ErrUnknownAlgorithm = Errno(unknownAlgorithm)
	ErrByteOutOfRange   = Errno(byteOutOfRange) // A value outside [0, 255] reached the engine boundary.
	ErrChecksumMismatch = Errno(checksumMismatch)
	ErrInvalidConfig    = Errno(invalidConfig)
	ErrInvalidCheckLine = Errno(invalidCheckLine)
	ErrUnsupportedCodec = Errno(unsupportedCodec)
	ErrFrameTooShort    = Errno(frameTooShort)
	ErrInternal         = Errno(internal)
)

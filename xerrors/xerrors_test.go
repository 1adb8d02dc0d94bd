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

package xerrors

import (
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithMessageNil(t *testing.T) {
	assert.Nil(t, WithMessage(nil, "no error"))
	assert.Nil(t, WithMessagef(nil, "no error %d", 1))
}

func TestWithMessage(t *testing.T) {
	tests := []struct {
		err     error
		message string
		want    string
	}{
		{io.EOF, "read error", "read error: EOF"},
		{WithMessage(io.EOF, "read error"), "client error", "client error: read error: EOF"},
		{WithMessagef(io.EOF, "read %s at %d", "chunk", 3), "sum file", "sum file: read chunk at 3: EOF"},
	}

	for _, tt := range tests {
		got := WithMessage(tt.err, tt.message).Error()
		assert.Equal(t, tt.want, got)
	}
}

func TestWithMessageIs(t *testing.T) {

	err := WithMessagef(os.ErrNotExist, "open %s", "a.bin")
	err = WithMessage(err, "sum file")

	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, "open a.bin: file does not exist", errors.Unwrap(err).Error())
}

func TestWithMessageFormat(t *testing.T) {

	err := WithMessage(io.EOF, "read error")

	assert.Equal(t, "read error: EOF", fmt.Sprintf("%s", err))
	assert.Equal(t, "read error: EOF", fmt.Sprintf("%v", err))
	assert.Equal(t, "EOF\nread error", fmt.Sprintf("%+v", err))
}

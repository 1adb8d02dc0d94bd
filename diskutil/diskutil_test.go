/*
 * Copyright (c) 2020. Temple3x (temple3x@gmail.com)
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */


package diskutil

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/zaibyte/xcrc/xerrors"

	"github.com/stretchr/testify/assert"
)

func TestIsBroken(t *testing.T) {
	for _, err := range []error{syscall.EIO, syscall.EROFS} {
		assert.True(t, IsBroken(err))
		assert.True(t, IsBroken(xerrors.WithMessage(err, "read")))
		assert.True(t, IsBroken(&os.PathError{Op: "read", Path: "/a", Err: err}))
	}

	assert.False(t, IsBroken(nil))
	assert.False(t, IsBroken(syscall.ENOENT))
	assert.False(t, IsBroken(errors.New("EIO")))
}

func TestKind(t *testing.T) {
	_, err := os.Open(filepath.Join(t.TempDir(), "not_exist"))
	assert.Equal(t, "not_exist", Kind(err))
	assert.Equal(t, "not_exist", Kind(xerrors.WithMessage(err, "sum")))

	assert.Equal(t, "", Kind(nil))
	assert.Equal(t, "broken", Kind(syscall.EIO))
	assert.Equal(t, "permission", Kind(syscall.EACCES))
	assert.Equal(t, "other", Kind(errors.New("x")))
}

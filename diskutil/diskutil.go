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


// Package diskutil classifies failures of reading sources from disk.
package diskutil

import (
	"errors"
	"io/fs"
	"syscall"
)

// IsBroken returns an error is disk error or not.
func IsBroken(err error) bool {
	if err == nil {
		return false
	}

	// EIO: I/O error
	if errors.Is(err, syscall.EIO) {
		return true
	}

	// EROFS: Read-only file system, caused by
	// 1. VFS error,
	// 2. hard disk error
	if errors.Is(err, syscall.EROFS) {
		return true
	}

	return false
}

// Kind returns a short word of err for logging:
// "broken", "not_exist", "permission" or "other".
// It's "" for nil.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case IsBroken(err):
		return "broken"
	case errors.Is(err, fs.ErrNotExist):
		return "not_exist"
	case errors.Is(err, fs.ErrPermission):
		return "permission"
	default:
		return "other"
	}
}

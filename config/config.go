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

// Package config loads TOML configs and fills defaults.
package config

import (
	"strings"
	"time"

	"github.com/zaibyte/xcrc/errno"
	"github.com/zaibyte/xcrc/xerrors"

	"github.com/BurntSushi/toml"
	"github.com/docker/go-units"
)

// Load decodes the TOML file at path into v.
// Unknown keys are rejected.
func Load(path string, v interface{}) error {
	md, err := toml.DecodeFile(path, v)
	if err != nil {
		return xerrors.WithMessagef(errno.ErrInvalidConfig, "load %s: %s", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return xerrors.WithMessagef(errno.ErrInvalidConfig, "load %s: unknown keys: %s",
			path, strings.Join(keys, ", "))
	}
	return nil
}

// Adjust sets v to def if v is the zero value.
func Adjust[T comparable](v *T, def T) {
	var zero T
	if *v == zero {
		*v = def
	}
}

// Size is a size in bytes written in human, e.g. "64KiB", "10MB" or "4096".
// Units are binary (1KB == 1KiB == 1024).
type Size int64

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Size) UnmarshalText(text []byte) error {
	n, err := units.RAMInBytes(string(text))
	if err != nil {
		return xerrors.WithMessagef(errno.ErrInvalidConfig, "size %q: %s", text, err)
	}
	*s = Size(n)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s Size) String() string {
	return units.BytesSize(float64(s))
}

// Duration is a time.Duration written as "15s", "1m30s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	if err != nil {
		return xerrors.WithMessagef(errno.ErrInvalidConfig, "duration %q: %s", text, err)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

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

package crc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReflect(t *testing.T) {
	assert.Equal(t, uint64(0xEDB88320), Reflect(0x04C11DB7, 32))
	assert.Equal(t, uint64(0x82F63B78), Reflect(0x1EDC6F41, 32))
	assert.Equal(t, uint64(0xA001), Reflect(0x8005, 16))
	assert.Equal(t, uint64(0xE0), Reflect(0x07, 8))
	assert.Equal(t, uint64(0xC96C5795D7870F42), Reflect(0x42F0E1EBA9EA3693, 64))
	assert.Equal(t, uint64(0xD800000000000000), Reflect(0x1B, 64))
}

func TestReflect_Involution(t *testing.T) {
	for w := uint(8); w <= 64; w += 8 {
		mask := widthMask(w)
		for i := 0; i < 1000; i++ {
			v := rand.Uint64() & mask
			r := Reflect(v, w)
			assert.Zero(t, r&^mask)
			assert.Equal(t, v, Reflect(r, w))
		}
	}
}

func TestWidthMask(t *testing.T) {
	assert.Equal(t, uint64(0xFF), widthMask(8))
	assert.Equal(t, uint64(0xFFFFFF), widthMask(24))
	assert.Equal(t, ^uint64(0), widthMask(64))
}

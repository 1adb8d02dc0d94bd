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
	"github.com/stretchr/testify/require"
)

func TestAccelerated_MatchTable(t *testing.T) {
	for _, a := range []Algorithm{CRC32, CRC32_JAMCRC, CRC32_C, CRC32_D, CRC64_XZ, CRC64_GO_ISO} {
		fast := MustNew(a)
		slow, err := newEngine(a, false)
		require.NoError(t, err)
		assert.Equal(t, "", slow.Accelerated())

		for _, n := range []int{0, 1, 15, 16, 17, 255, 1024, 8192 + 3} {
			p := make([]byte, n)
			rand.Read(p)
			assert.Equal(t, slow.Checksum(p), fast.Checksum(p), "%s %d", a.Name, n)

			// Mixed paths share the same accumulator.
			acc := fast.Update(fast.Init(), p[:n/2])
			acc = slow.Update(acc, p[n/2:])
			assert.Equal(t, slow.Checksum(p), slow.Final(acc), "%s mixed %d", a.Name, n)
		}
	}
}

func TestAccelerated_Selection(t *testing.T) {
	// Same polys, but not RefIn.
	assert.Nil(t, accelerated(CRC32_BZIP2))
	assert.Nil(t, accelerated(CRC64_ECMA_182))
	assert.Nil(t, accelerated(CRC16_ARC))

	assert.NotNil(t, accelerated(CRC64_XZ))
	assert.NotNil(t, accelerated(CRC64_GO_ISO))
	assert.Equal(t, "slicing-by-8", MustNew(CRC64_XZ).Accelerated())

	if hasIEEE {
		assert.Equal(t, "pclmulqdq", MustNew(CRC32).Accelerated())
	}
	if hasCastagnoli {
		assert.Equal(t, "sse4.2", MustNew(CRC32_C).Accelerated())
	}
}

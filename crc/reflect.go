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

import "math/bits"

// Reflect reverses the low width bits of v:
// bit 0 becomes bit width-1 and so on.
// Bits above width are ignored, the result always fits in width bits.
//
// width must be in [1, 64].
func Reflect(v uint64, width uint) uint64 {
	return bits.Reverse64(v) >> (64 - width)
}

func widthMask(width uint) uint64 {
	return ^uint64(0) >> (64 - width)
}

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
	"hash/crc64"

	"github.com/klauspost/crc32"
	"github.com/templexxx/cpu"
)

// Some RefIn algorithms share the register of a hardware accelerated
// (or slicing-by-8) implementation, the accumulator is the complement of
// the crc which is passed in and returned by those Update functions.
//
// Only the divisor matters, Init, XorOut and RefOut are applied by Engine.

const (
	polyIEEE       = 0x04C11DB7
	polyCastagnoli = 0x1EDC6F41
	polyECMA       = 0x42F0E1EBA9EA3693
	polyISO        = 0x000000000000001B
)

// CRC-32 tables in klauspost/crc32 only beat the byte table with CPU support.
// These must be ready before defaultEngine is made, so no init().
var (
	hasCastagnoli = cpu.X86.HasSSE42
	hasIEEE       = cpu.X86.HasPCLMULQDQ && cpu.X86.HasSSE41

	castagnoliTable = crc32.MakeTable(crc32.Castagnoli)
	ecmaTable       = crc64.MakeTable(crc64.ECMA)
	isoTable        = crc64.MakeTable(crc64.ISO)
)

func accelerated(a Algorithm) func(acc uint64, p []byte) uint64 {
	if !a.RefIn {
		return nil
	}

	switch a.Width {
	case 32:
		switch {
		case a.Poly == polyIEEE && hasIEEE:
			return updateIEEE
		case a.Poly == polyCastagnoli && hasCastagnoli:
			return updateCastagnoli
		}
	case 64:
		switch a.Poly {
		case polyECMA:
			return updateECMA
		case polyISO:
			return updateISO
		}
	}
	return nil
}

func updateIEEE(acc uint64, p []byte) uint64 {
	return uint64(^crc32.Update(^uint32(acc), crc32.IEEETable, p))
}

func updateCastagnoli(acc uint64, p []byte) uint64 {
	return uint64(^crc32.Update(^uint32(acc), castagnoliTable, p))
}

func updateECMA(acc uint64, p []byte) uint64 {
	return ^crc64.Update(^acc, ecmaTable, p)
}

func updateISO(acc uint64, p []byte) uint64 {
	return ^crc64.Update(^acc, isoTable, p)
}

// Accelerated returns the name of the fast path used by e,
// "" means the byte table.
func (e *Engine) Accelerated() string {
	if e.update == nil {
		return ""
	}
	switch e.alg.Width {
	case 32:
		if e.alg.Poly == polyCastagnoli {
			return "sse4.2"
		}
		return "pclmulqdq"
	default:
		return "slicing-by-8"
	}
}

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
	"sort"
	"strings"

	"github.com/zaibyte/xcrc/errno"
	"github.com/zaibyte/xcrc/xerrors"
)

// Algorithm is the parameter set of a CRC variant.
//
// Poly is written in normal (MSB-first) form without the top bit,
// e.g. 0x04C11DB7 for CRC-32.
// Init and XorOut are the register values as published,
// they are never reflected by the caller.
type Algorithm struct {
	Name   string
	Poly   uint64
	Width  uint
	Init   uint64
	XorOut uint64
	RefIn  bool
	RefOut bool
}

// Validate checks the width and that all constants fit in it.
func (a Algorithm) Validate() error {
	if a.Width < 8 || a.Width > 64 || a.Width%8 != 0 {
		return xerrors.WithMessagef(errno.ErrInvalidAlgorithm,
			"%s: width %d is not a multiple of 8 in [8, 64]", a.Name, a.Width)
	}
	mask := widthMask(a.Width)
	if a.Poly&^mask != 0 {
		return xerrors.WithMessagef(errno.ErrInvalidAlgorithm,
			"%s: poly %#x exceeds %d bits", a.Name, a.Poly, a.Width)
	}
	if a.Init&^mask != 0 {
		return xerrors.WithMessagef(errno.ErrInvalidAlgorithm,
			"%s: init %#x exceeds %d bits", a.Name, a.Init, a.Width)
	}
	if a.XorOut&^mask != 0 {
		return xerrors.WithMessagef(errno.ErrInvalidAlgorithm,
			"%s: xorout %#x exceeds %d bits", a.Name, a.XorOut, a.Width)
	}
	return nil
}

func (a Algorithm) String() string {
	return a.Name
}

// Catalog of well-known algorithms.
// Parameters follow the published CRC catalogues,
// each entry is checked against its check value ("123456789") in tests.
//
// Renaming or removing an entry breaks callers which look it up by name.
var (
	CRC8                = Algorithm{Name: "CRC8", Poly: 0x07, Width: 8, Init: 0x00, XorOut: 0x00, RefIn: false, RefOut: false}
	CRC8_SAE_J1850      = Algorithm{Name: "CRC8_SAE_J1850", Poly: 0x1D, Width: 8, Init: 0xFF, XorOut: 0xFF, RefIn: false, RefOut: false}
	CRC8_SAE_J1850_ZERO = Algorithm{Name: "CRC8_SAE_J1850_ZERO", Poly: 0x1D, Width: 8, Init: 0x00, XorOut: 0x00, RefIn: false, RefOut: false}
	CRC8_8H2F           = Algorithm{Name: "CRC8_8H2F", Poly: 0x2F, Width: 8, Init: 0xFF, XorOut: 0xFF, RefIn: false, RefOut: false}
	CRC8_CDMA2000       = Algorithm{Name: "CRC8_CDMA2000", Poly: 0x9B, Width: 8, Init: 0xFF, XorOut: 0x00, RefIn: false, RefOut: false}
	CRC8_DARC           = Algorithm{Name: "CRC8_DARC", Poly: 0x39, Width: 8, Init: 0x00, XorOut: 0x00, RefIn: true, RefOut: true}
	CRC8_DVB_S2         = Algorithm{Name: "CRC8_DVB_S2", Poly: 0xD5, Width: 8, Init: 0x00, XorOut: 0x00, RefIn: false, RefOut: false}
	CRC8_EBU            = Algorithm{Name: "CRC8_EBU", Poly: 0x1D, Width: 8, Init: 0xFF, XorOut: 0x00, RefIn: true, RefOut: true}
	CRC8_ICODE          = Algorithm{Name: "CRC8_ICODE", Poly: 0x1D, Width: 8, Init: 0xFD, XorOut: 0x00, RefIn: false, RefOut: false}
	CRC8_ITU            = Algorithm{Name: "CRC8_ITU", Poly: 0x07, Width: 8, Init: 0x00, XorOut: 0x55, RefIn: false, RefOut: false}
	CRC8_MAXIM          = Algorithm{Name: "CRC8_MAXIM", Poly: 0x31, Width: 8, Init: 0x00, XorOut: 0x00, RefIn: true, RefOut: true}
	CRC8_ROHC           = Algorithm{Name: "CRC8_ROHC", Poly: 0x07, Width: 8, Init: 0xFF, XorOut: 0x00, RefIn: true, RefOut: true}
	CRC8_WCDMA          = Algorithm{Name: "CRC8_WCDMA", Poly: 0x9B, Width: 8, Init: 0x00, XorOut: 0x00, RefIn: true, RefOut: true}

	CRC16_CCIT_ZERO   = Algorithm{Name: "CRC16_CCIT_ZERO", Poly: 0x1021, Width: 16, Init: 0x0000, XorOut: 0x0000, RefIn: false, RefOut: false}
	CRC16_ARC         = Algorithm{Name: "CRC16_ARC", Poly: 0x8005, Width: 16, Init: 0x0000, XorOut: 0x0000, RefIn: true, RefOut: true}
	CRC16_AUG_CCITT   = Algorithm{Name: "CRC16_AUG_CCITT", Poly: 0x1021, Width: 16, Init: 0x1D0F, XorOut: 0x0000, RefIn: false, RefOut: false}
	CRC16_BUYPASS     = Algorithm{Name: "CRC16_BUYPASS", Poly: 0x8005, Width: 16, Init: 0x0000, XorOut: 0x0000, RefIn: false, RefOut: false}
	CRC16_CCITT_FALSE = Algorithm{Name: "CRC16_CCITT_FALSE", Poly: 0x1021, Width: 16, Init: 0xFFFF, XorOut: 0x0000, RefIn: false, RefOut: false}
	CRC16_CDMA2000    = Algorithm{Name: "CRC16_CDMA2000", Poly: 0xC867, Width: 16, Init: 0xFFFF, XorOut: 0x0000, RefIn: false, RefOut: false}
	CRC16_DDS_110     = Algorithm{Name: "CRC16_DDS_110", Poly: 0x8005, Width: 16, Init: 0x800D, XorOut: 0x0000, RefIn: false, RefOut: false}
	CRC16_DECT_R      = Algorithm{Name: "CRC16_DECT_R", Poly: 0x0589, Width: 16, Init: 0x0000, XorOut: 0x0001, RefIn: false, RefOut: false}
	CRC16_DECT_X      = Algorithm{Name: "CRC16_DECT_X", Poly: 0x0589, Width: 16, Init: 0x0000, XorOut: 0x0000, RefIn: false, RefOut: false}
	CRC16_DNP         = Algorithm{Name: "CRC16_DNP", Poly: 0x3D65, Width: 16, Init: 0x0000, XorOut: 0xFFFF, RefIn: true, RefOut: true}
	CRC16_EN_13757    = Algorithm{Name: "CRC16_EN_13757", Poly: 0x3D65, Width: 16, Init: 0x0000, XorOut: 0xFFFF, RefIn: false, RefOut: false}
	CRC16_GENIBUS     = Algorithm{Name: "CRC16_GENIBUS", Poly: 0x1021, Width: 16, Init: 0xFFFF, XorOut: 0xFFFF, RefIn: false, RefOut: false}
	CRC16_MAXIM       = Algorithm{Name: "CRC16_MAXIM", Poly: 0x8005, Width: 16, Init: 0x0000, XorOut: 0xFFFF, RefIn: true, RefOut: true}
	CRC16_MCRF4XX     = Algorithm{Name: "CRC16_MCRF4XX", Poly: 0x1021, Width: 16, Init: 0xFFFF, XorOut: 0x0000, RefIn: true, RefOut: true}
	CRC16_RIELLO      = Algorithm{Name: "CRC16_RIELLO", Poly: 0x1021, Width: 16, Init: 0xB2AA, XorOut: 0x0000, RefIn: true, RefOut: true}
	CRC16_T10_DIF     = Algorithm{Name: "CRC16_T10_DIF", Poly: 0x8BB7, Width: 16, Init: 0x0000, XorOut: 0x0000, RefIn: false, RefOut: false}
	CRC16_TELEDISK    = Algorithm{Name: "CRC16_TELEDISK", Poly: 0xA097, Width: 16, Init: 0x0000, XorOut: 0x0000, RefIn: false, RefOut: false}
	CRC16_TMS37157    = Algorithm{Name: "CRC16_TMS37157", Poly: 0x1021, Width: 16, Init: 0x89EC, XorOut: 0x0000, RefIn: true, RefOut: true}
	CRC16_USB         = Algorithm{Name: "CRC16_USB", Poly: 0x8005, Width: 16, Init: 0xFFFF, XorOut: 0xFFFF, RefIn: true, RefOut: true}
	CRC16_A           = Algorithm{Name: "CRC16_A", Poly: 0x1021, Width: 16, Init: 0xC6C6, XorOut: 0x0000, RefIn: true, RefOut: true}
	CRC16_KERMIT      = Algorithm{Name: "CRC16_KERMIT", Poly: 0x1021, Width: 16, Init: 0x0000, XorOut: 0x0000, RefIn: true, RefOut: true}
	CRC16_MODBUS      = Algorithm{Name: "CRC16_MODBUS", Poly: 0x8005, Width: 16, Init: 0xFFFF, XorOut: 0x0000, RefIn: true, RefOut: true}
	CRC16_X_25        = Algorithm{Name: "CRC16_X_25", Poly: 0x1021, Width: 16, Init: 0xFFFF, XorOut: 0xFFFF, RefIn: true, RefOut: true}
	CRC16_XMODEM      = Algorithm{Name: "CRC16_XMODEM", Poly: 0x1021, Width: 16, Init: 0x0000, XorOut: 0x0000, RefIn: false, RefOut: false}

	CRC32        = Algorithm{Name: "CRC32", Poly: 0x04C11DB7, Width: 32, Init: 0xFFFFFFFF, XorOut: 0xFFFFFFFF, RefIn: true, RefOut: true}
	CRC32_BZIP2  = Algorithm{Name: "CRC32_BZIP2", Poly: 0x04C11DB7, Width: 32, Init: 0xFFFFFFFF, XorOut: 0xFFFFFFFF, RefIn: false, RefOut: false}
	CRC32_C      = Algorithm{Name: "CRC32_C", Poly: 0x1EDC6F41, Width: 32, Init: 0xFFFFFFFF, XorOut: 0xFFFFFFFF, RefIn: true, RefOut: true}
	CRC32_D      = Algorithm{Name: "CRC32_D", Poly: 0xA833982B, Width: 32, Init: 0xFFFFFFFF, XorOut: 0xFFFFFFFF, RefIn: true, RefOut: true}
	CRC32_MPEG2  = Algorithm{Name: "CRC32_MPEG2", Poly: 0x04C11DB7, Width: 32, Init: 0xFFFFFFFF, XorOut: 0x00000000, RefIn: false, RefOut: false}
	CRC32_POSIX  = Algorithm{Name: "CRC32_POSIX", Poly: 0x04C11DB7, Width: 32, Init: 0x00000000, XorOut: 0xFFFFFFFF, RefIn: false, RefOut: false}
	CRC32_Q      = Algorithm{Name: "CRC32_Q", Poly: 0x814141AB, Width: 32, Init: 0x00000000, XorOut: 0x00000000, RefIn: false, RefOut: false}
	CRC32_JAMCRC = Algorithm{Name: "CRC32_JAMCRC", Poly: 0x04C11DB7, Width: 32, Init: 0xFFFFFFFF, XorOut: 0x00000000, RefIn: true, RefOut: true}
	CRC32_XFER   = Algorithm{Name: "CRC32_XFER", Poly: 0x000000AF, Width: 32, Init: 0x00000000, XorOut: 0x00000000, RefIn: false, RefOut: false}

	CRC64_ECMA_182 = Algorithm{Name: "CRC64_ECMA_182", Poly: 0x42F0E1EBA9EA3693, Width: 64, Init: 0x0000000000000000, XorOut: 0x0000000000000000, RefIn: false, RefOut: false}
	CRC64_GO_ISO   = Algorithm{Name: "CRC64_GO_ISO", Poly: 0x000000000000001B, Width: 64, Init: 0xFFFFFFFFFFFFFFFF, XorOut: 0xFFFFFFFFFFFFFFFF, RefIn: true, RefOut: true}
	CRC64_WE       = Algorithm{Name: "CRC64_WE", Poly: 0x42F0E1EBA9EA3693, Width: 64, Init: 0xFFFFFFFFFFFFFFFF, XorOut: 0xFFFFFFFFFFFFFFFF, RefIn: false, RefOut: false}
	CRC64_XZ       = Algorithm{Name: "CRC64_XZ", Poly: 0x42F0E1EBA9EA3693, Width: 64, Init: 0xFFFFFFFFFFFFFFFF, XorOut: 0xFFFFFFFFFFFFFFFF, RefIn: true, RefOut: true}
)

// Default is used when no algorithm is named.
var Default = CRC32

var catalog = []Algorithm{
	CRC8, CRC8_SAE_J1850, CRC8_SAE_J1850_ZERO, CRC8_8H2F, CRC8_CDMA2000, CRC8_DARC,
	CRC8_DVB_S2, CRC8_EBU, CRC8_ICODE, CRC8_ITU, CRC8_MAXIM, CRC8_ROHC, CRC8_WCDMA,

	CRC16_CCIT_ZERO, CRC16_ARC, CRC16_AUG_CCITT, CRC16_BUYPASS, CRC16_CCITT_FALSE,
	CRC16_CDMA2000, CRC16_DDS_110, CRC16_DECT_R, CRC16_DECT_X, CRC16_DNP, CRC16_EN_13757,
	CRC16_GENIBUS, CRC16_MAXIM, CRC16_MCRF4XX, CRC16_RIELLO, CRC16_T10_DIF, CRC16_TELEDISK,
	CRC16_TMS37157, CRC16_USB, CRC16_A, CRC16_KERMIT, CRC16_MODBUS, CRC16_X_25,
	CRC16_XMODEM,

	CRC32, CRC32_BZIP2, CRC32_C, CRC32_D, CRC32_MPEG2, CRC32_POSIX, CRC32_Q, CRC32_JAMCRC,
	CRC32_XFER,

	CRC64_ECMA_182, CRC64_GO_ISO, CRC64_WE, CRC64_XZ,
}

var index = makeIndex(catalog)

func makeIndex(algs []Algorithm) map[string]Algorithm {
	m := make(map[string]Algorithm, len(algs))
	for _, a := range algs {
		m[canonical(a.Name)] = a
	}
	return m
}

// canonical drops case and separators,
// so "CRC-32/BZIP2", "crc32_bzip2" and "CRC32_BZIP2" are the same name.
func canonical(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '-' || c == '/' || c == '_' || c == ' ':
			continue
		case 'a' <= c && c <= 'z':
			c -= 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Lookup returns the catalog entry named name.
func Lookup(name string) (Algorithm, error) {
	a, ok := index[canonical(name)]
	if !ok {
		return Algorithm{}, xerrors.WithMessagef(errno.ErrUnknownAlgorithm, "%q", name)
	}
	return a, nil
}

// Names returns all catalog names in lexical order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, a := range catalog {
		names = append(names, a.Name)
	}
	sort.Strings(names)
	return names
}

// Algorithms returns a copy of the catalog ordered by width.
func Algorithms() []Algorithm {
	algs := make([]Algorithm, len(catalog))
	copy(algs, catalog)
	return algs
}

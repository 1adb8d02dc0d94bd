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

// Package crc implements parameterized Cyclic Redundancy Checks
// with widths of 8, 16, 24 ... 64 bits.
//
// Every algorithm runs in the reflected (LSB-first) domain
// with one right-shifting byte table, algorithms without input reflection
// reflect each byte before mixing, and those without output reflection
// reflect the register once at the end.
//
// Usage:
// 1.
// e, err := New(CRC16_MODBUS)
// e.Checksum(p)
// 2.
// acc := e.Init()
// acc = e.Update(acc, p0)
// acc = e.Update(acc, p1)
// e.Final(acc)
// 3.
// d := e.New()
// d.Write()
// d.Sum64()
//
// An Engine is immutable and safe for concurrent use,
// an accumulator (or a Digest) belongs to one computation.
package crc

import (
	"math/bits"
)

// Engine computes one Algorithm.
type Engine struct {
	alg Algorithm

	width   uint
	mask    uint64
	divisor uint64 // Poly reflected over width.
	init    uint64 // Init reflected over width.
	xorOut  uint64

	tab *Table

	// update is the accelerated Update for some RefIn algorithms,
	// nil means using tab.
	update func(acc uint64, p []byte) uint64
}

// New returns an Engine for a.
// It returns an error wrapping errno.ErrInvalidAlgorithm if a is illegal.
func New(a Algorithm) (*Engine, error) {
	return newEngine(a, true)
}

func newEngine(a Algorithm, accel bool) (*Engine, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		alg:     a,
		width:   a.Width,
		mask:    widthMask(a.Width),
		divisor: Reflect(a.Poly, a.Width),
		init:    Reflect(a.Init, a.Width),
		xorOut:  a.XorOut,
	}
	e.tab = getTable(e.divisor, e.width)
	if accel {
		e.update = accelerated(a)
	}
	return e, nil
}

// MustNew is like New but panics if a is illegal.
// It's used for package level engines of catalog algorithms.
func MustNew(a Algorithm) *Engine {
	e, err := New(a)
	if err != nil {
		panic(err)
	}
	return e
}

// Algorithm returns the parameters of e.
func (e *Engine) Algorithm() Algorithm { return e.alg }

// Width returns the width of checksum in bits.
func (e *Engine) Width() uint { return e.width }

// Size returns the width of checksum in bytes.
func (e *Engine) Size() int { return int(e.width / 8) }

// Init returns a new accumulator.
func (e *Engine) Init() uint64 { return e.init }

// UpdateByte adds b to acc.
func (e *Engine) UpdateByte(acc uint64, b byte) uint64 {
	if !e.alg.RefIn {
		b = bits.Reverse8(b)
	}
	return e.tab[byte(acc)^b] ^ (acc >> 8)
}

// Update adds p to acc.
// The result doesn't depend on how the input is split across calls.
func (e *Engine) Update(acc uint64, p []byte) uint64 {
	if e.update != nil {
		return e.update(acc, p)
	}

	tab := e.tab
	if e.alg.RefIn {
		for _, b := range p {
			acc = tab[byte(acc)^b] ^ (acc >> 8)
		}
		return acc
	}
	for _, b := range p {
		acc = tab[byte(acc)^bits.Reverse8(b)] ^ (acc >> 8)
	}
	return acc
}

// Final returns the checksum of acc, acc isn't changed.
func (e *Engine) Final(acc uint64) uint64 {
	if !e.alg.RefOut {
		acc = Reflect(acc, e.width)
	}
	return (acc ^ e.xorOut) & e.mask
}

// Checksum returns the checksum of p.
func (e *Engine) Checksum(p []byte) uint64 {
	return e.Final(e.Update(e.init, p))
}

// Sum returns the checksum of p under a.
func Sum(a Algorithm, p []byte) (uint64, error) {
	e, err := New(a)
	if err != nil {
		return 0, err
	}
	return e.Checksum(p), nil
}

var defaultEngine = MustNew(Default)

// Compute returns the checksum of p under Default.
func Compute(p []byte) uint64 {
	return defaultEngine.Checksum(p)
}

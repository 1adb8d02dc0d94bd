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

// Package xbytes provides pooled byte chunks for streaming reads.
package xbytes

import (
	"io"
	"sync"
)

// Buffer is a chunk for reading into.
// Close returns it to the pool (if it's from the pool),
// callers must not retain Bytes after calling Close.
type Buffer interface {
	io.Closer
	Bytes() []byte
}

const MaxChunkSizeInPool = 32 * 1024 // by default, create 32 KiB chunks.

var (
	_chunkPool = newChunkPool(MaxChunkSizeInPool)
	// GetChunk retrieves a chunk from the chunk pool, creating one if necessary.
	GetChunk = _chunkPool.Get
	// GetNChunk retrieves a chunk whose Bytes has length n,
	// chunks larger than MaxChunkSizeInPool are made and never pooled.
	GetNChunk = func(n int) Buffer {
		if n <= 0 {
			n = MaxChunkSizeInPool
		}
		if n <= MaxChunkSizeInPool {
			c := GetChunk()
			c.S = c.S[:n]
			return c
		}
		return &Chunk{S: make([]byte, n)}
	}
)

// A chunkPool is a type-safe wrapper around a sync.Pool.
type chunkPool struct {
	p    *sync.Pool
	size int
}

func newChunkPool(size int) chunkPool {
	return chunkPool{
		p: &sync.Pool{
			New: func() interface{} {
				return &Chunk{S: make([]byte, size)}
			},
		},
		size: size,
	}
}

// Get retrieves a full size Chunk from the pool.
func (p chunkPool) Get() *Chunk {
	c := p.p.Get().(*Chunk)
	c.S = c.S[:p.size]
	c.pooled = true
	return c
}

func (p chunkPool) put(c *Chunk) {
	c.pooled = false
	p.p.Put(c)
}

// Chunk is a thin wrapper around a byte slice.
type Chunk struct {
	S      []byte
	pooled bool
}

// Bytes returns a mutable reference to the underlying byte slice.
// Implements Buffer.
func (c *Chunk) Bytes() []byte {
	return c.S
}

// Close returns the Chunk to the pool, it's a nop for a Chunk made by GetNChunk
// beyond pool size.
func (c *Chunk) Close() error {
	if c.pooled {
		_chunkPool.put(c)
		return nil
	}
	c.S = nil // Release the byte slice.
	return nil
}

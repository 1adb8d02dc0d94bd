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


// Settings is the global settings of xcrc.
// Don't modify it unless you totally know what will happen.
package settings

const (
	kb = 1024
	mb = kb * 1024
)

const (
	// DefaultAlgorithm is used when no algorithm is given.
	DefaultAlgorithm = "CRC32"

	// DefaultChunkSize is the size of each read from a source.
	// It's the same as the pooled chunk size, bigger chunks are not pooled.
	DefaultChunkSize = 32 * kb

	// MaxChunkSize is the upper limit of chunk size.
	// There is nothing to gain with larger chunks for a table driven CRC.
	MaxChunkSize = 16 * mb

	// DefaultConcurrency is the default number of files checksummed at the same time.
	DefaultConcurrency = 4

	// MaxConcurrency limits opened files.
	MaxConcurrency = 256
)

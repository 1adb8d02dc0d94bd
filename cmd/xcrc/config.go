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

package main

import (
	"github.com/zaibyte/xcrc/config"
	"github.com/zaibyte/xcrc/config/settings"
	"github.com/zaibyte/xcrc/metricutil"
	"github.com/zaibyte/xcrc/xlog"
	"github.com/zaibyte/xcrc/xmath"
)

// Config is the TOML config of xcrc, flags override it.
//
// e.g.
//
//	algorithm = "CRC32_C"
//	chunk_size = "64KiB"
//	rate_limit = "100MB" # per source, in bytes/s
//	decoder = "zstd"
//	concurrency = 8
//
//	[log]
//	error_log_output = "/var/log/xcrc/error.log"
//	record_output = "/var/log/xcrc/record.log"
//
//	[metric]
//	push_job = "xcrc"
//	push_address = "http://127.0.0.1:9091"
//	push_interval = "15s"
type Config struct {
	Algorithm   string            `toml:"algorithm"`
	ChunkSize   config.Size       `toml:"chunk_size"`
	RateLimit   config.Size       `toml:"rate_limit"`
	Decoder     string            `toml:"decoder"`
	Concurrency int               `toml:"concurrency"`
	Log         xlog.Config       `toml:"log"`
	Metric      metricutil.Config `toml:"metric"`
}

func (c *Config) adjust() {
	config.Adjust(&c.Algorithm, settings.DefaultAlgorithm)

	config.Adjust(&c.ChunkSize, config.Size(settings.DefaultChunkSize))
	c.ChunkSize = config.Size(xmath.Clamp(int(c.ChunkSize), 1, settings.MaxChunkSize))

	config.Adjust(&c.Concurrency, settings.DefaultConcurrency)
	c.Concurrency = xmath.Clamp(c.Concurrency, 1, settings.MaxConcurrency)
}

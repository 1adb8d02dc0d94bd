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


// Package xlog provides logger features.
//
// All log entries are encoded in JSON,
// and time format is ISO8601 ("2006-01-02T15:04:05.000Z0700")
//
// There are two kinds of logger:
// 1. ErrorLogger for the common application log (global logger)
// 2. RecordLogger for checksum records, one JSON line per source
package xlog

import (
	"github.com/zaibyte/xcrc/config"

	"go.uber.org/zap"
)

// TimeFormat is used for parsing log entry's time field.
const (
	ISO8601TimeFormat = "2006-01-02T15:04:05.000Z0700"
)

// Config is the log configs of a command line application.
//
// Outputs are passed to zap.Open, "stderr", "stdout" and file paths are legal.
type Config struct {
	ErrorLogOutput string `toml:"error_log_output"`
	ErrorLogLevel  string `toml:"error_log_level"`
	// RecordOutput is the output of checksum records,
	// empty means records are dropped.
	RecordOutput string `toml:"record_output"`
}

// MakeCmdLogger init global error logger and returns the record logger.
func (c *Config) MakeCmdLogger(appName string) (el *ErrorLogger, rl *RecordLogger, err error) {

	config.Adjust(&c.ErrorLogOutput, "stderr")
	config.Adjust(&c.ErrorLogLevel, "info")

	el, err = NewErrorLogger(c.ErrorLogOutput, c.ErrorLogLevel)
	if err != nil {
		return
	}
	el.l = el.l.With(zap.String("app", appName))

	InitGlobalLogger(el)

	if c.RecordOutput == "" {
		return el, NewNopRecordLogger(), nil
	}
	rl, err = NewRecordLogger(c.RecordOutput)
	if err != nil {
		_ = el.Close()
		return nil, nil, err
	}
	return
}

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


package xlog

import (
	"time"

	"github.com/zaibyte/xcrc/xmath"

	"github.com/docker/go-units"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RecordLogger is used for recording checksum results.
type RecordLogger struct {
	fl *FreeLogger
}

// NewRecordLogger creates a RecordLogger.
func NewRecordLogger(outputPath string) (logger *RecordLogger, err error) {
	fl, err := NewFreeLogger(outputPath, nil)
	if err != nil {
		return
	}
	return &RecordLogger{fl}, nil
}

// NewNopRecordLogger returns a RecordLogger which writes nothing.
func NewNopRecordLogger() *RecordLogger {
	return &RecordLogger{newFreeLogger(zapcore.AddSync(nopWriter{}), nil, nil)}
}

// Record is one checksum result.
//
// fields:
// | name   | type    | detail                          | e.g               |
// |--------|---------|---------------------------------|-------------------|
// | time   | string  | log entry written time(ISO8601) |                   |
// | alg    | string  | algorithm name                  | CRC32_C           |
// | source | string  | file path or "-" for stdin      | /tmp/a            |
// | crc    | string  | checksum in hex, width/4 digits | e3069283          |
// | size   | int64   | bytes checksummed               | 9                 |
// | size_h | string  | size in human                   | 9B                |
// | cost   | float64 | elapsed in milliseconds         | 0.02              |
// | mbps   | float64 | throughput in MiB/s             | 1024.5            |
// | errno  | int     | 0 means ok                      | 4                 |
// | error  | string  | omitted if ok                   | checksum mismatch |
type Record struct {
	Alg     string
	Source  string
	CRC     string
	Size    int64
	Elapsed time.Duration
	Errno   uint16
	Err     error
}

// Write writes r to RecordLogger.
func (l *RecordLogger) Write(r *Record) {
	fs := make([]zap.Field, 0, 10)
	fs = append(fs,
		zap.String("alg", r.Alg),
		zap.String("source", r.Source),
		zap.String("crc", r.CRC),
		zap.Int64("size", r.Size),
		zap.String("size_h", units.BytesSize(float64(r.Size))),
		zap.Float64("cost", xmath.Round(float64(r.Elapsed)/float64(time.Millisecond), 2)),
		zap.Float64("mbps", Throughput(r.Size, r.Elapsed)),
		zap.Uint16("errno", r.Errno),
	)
	if r.Err != nil {
		fs = append(fs, zap.String("error", r.Err.Error()))
	}
	l.fl.Write(fs...)
}

// Throughput returns MiB/s with 2 decimal places,
// it's 0 if elapsed isn't positive.
func Throughput(size int64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return xmath.Round(float64(size)/(1024*1024)/elapsed.Seconds(), 2)
}

// Sync syncs RecordLogger.
func (l *RecordLogger) Sync() error {
	return l.fl.Sync()
}

// Close closes RecordLogger.
func (l *RecordLogger) Close() error {
	return l.fl.Close()
}

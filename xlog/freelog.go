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
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FreeLogger is a logger without level, msg ... (any default fields except time)
// for highly specialised.
type FreeLogger struct {
	l     *zap.Logger
	close func()
}

func freeEncoderConf() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:    "time",
		EncodeTime: zapcore.ISO8601TimeEncoder,
		LineEnding: zapcore.DefaultLineEnding,
	}
}

// NewFreeLogger return a new FreeLogger.
func NewFreeLogger(outputPath string, fields []zap.Field) (logger *FreeLogger, err error) {

	syncer, closeFn, err := zap.Open(outputPath)
	if err != nil {
		return
	}

	return newFreeLogger(syncer, closeFn, fields), nil
}

func newFreeLogger(syncer zapcore.WriteSyncer, closeFn func(), fields []zap.Field) *FreeLogger {
	lvl := zap.NewAtomicLevelAt(zap.InfoLevel)
	core := zapcore.NewCore(zapcore.NewJSONEncoder(freeEncoderConf()), syncer, lvl)
	if fields != nil {
		core = core.With(fields)
	}
	return &FreeLogger{l: zap.New(core), close: closeFn}
}

// Write writes an entry with fields f.
func (l *FreeLogger) Write(f ...zap.Field) {
	l.l.Info("", f...)
}

// Sync syncs FreeLogger.
func (l *FreeLogger) Sync() error {
	return l.l.Sync()
}

// Close closes FreeLogger.
func (l *FreeLogger) Close() error {
	err := l.l.Sync()
	if l.close != nil {
		l.close()
	}
	return err
}

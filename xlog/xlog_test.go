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
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func readLines(t *testing.T, fp string) []map[string]interface{} {
	t.Helper()

	f, err := os.Open(fp)
	require.NoError(t, err)
	defer f.Close()

	var lines []map[string]interface{}
	s := bufio.NewScanner(f)
	for s.Scan() {
		m := make(map[string]interface{})
		require.NoError(t, json.Unmarshal(s.Bytes(), &m))
		lines = append(lines, m)
	}
	require.NoError(t, s.Err())
	return lines
}

func TestErrorLogger(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "error.log")
	l, err := NewErrorLogger(fp, "info")
	require.NoError(t, err)

	l.Debug("invisible")
	l.Info("hello", zap.String("alg", "CRC32"))
	l.DebugOn()
	assert.Equal(t, "debug", l.GetLvl())
	l.Debug("visible")
	l.DebugOff()
	assert.Equal(t, "info", l.GetLvl())
	require.NoError(t, l.Close())

	lines := readLines(t, fp)
	require.Len(t, lines, 2)

	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "hello", lines[0]["msg"])
	assert.Equal(t, "CRC32", lines[0]["alg"])
	_, err = time.Parse(ISO8601TimeFormat, lines[0]["time"].(string))
	assert.NoError(t, err)
	assert.Nil(t, lines[0]["caller"])

	assert.Equal(t, "debug", lines[1]["level"])
}

func TestNewErrorLogger_BadLevel(t *testing.T) {
	_, err := NewErrorLogger("stderr", "loud")
	assert.Error(t, err)
}

func TestGlobal_BeforeInit(t *testing.T) {
	assert.NotPanics(t, func() {
		Info("nop")
		Error("nop")
	})
}

func TestConfig_MakeCmdLogger(t *testing.T) {
	defer InitGlobalLogger(_global)

	dir := t.TempDir()
	cfg := &Config{
		ErrorLogOutput: filepath.Join(dir, "error.log"),
		RecordOutput:   filepath.Join(dir, "record.log"),
	}
	el, rl, err := cfg.MakeCmdLogger("xcrc")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.ErrorLogLevel)
	assert.Same(t, el, GetLogger())

	Warn("slow disk")
	rl.Write(&Record{Alg: "CRC32", Source: "-", CRC: "cbf43926", Size: 9, Elapsed: time.Millisecond})
	require.NoError(t, rl.Close())
	require.NoError(t, el.Close())

	errLines := readLines(t, cfg.ErrorLogOutput)
	require.Len(t, errLines, 1)
	assert.Equal(t, "xcrc", errLines[0]["app"])
	assert.Equal(t, "warn", errLines[0]["level"])

	recLines := readLines(t, cfg.RecordOutput)
	require.Len(t, recLines, 1)
	assert.Nil(t, recLines[0]["level"])
	assert.Nil(t, recLines[0]["msg"])
	assert.Equal(t, "cbf43926", recLines[0]["crc"])
	assert.Equal(t, "9B", recLines[0]["size_h"])
	assert.Equal(t, float64(9), recLines[0]["size"])
	assert.Equal(t, float64(0), recLines[0]["errno"])
	assert.Nil(t, recLines[0]["error"])
}

func TestRecordLogger_Error(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "record.log")
	rl, err := NewRecordLogger(fp)
	require.NoError(t, err)

	rl.Write(&Record{Alg: "CRC8", Source: "a", Errno: 4, Err: errors.New("checksum mismatch")})
	require.NoError(t, rl.Close())

	lines := readLines(t, fp)
	require.Len(t, lines, 1)
	assert.Equal(t, float64(4), lines[0]["errno"])
	assert.Equal(t, "checksum mismatch", lines[0]["error"])
}

func TestNopRecordLogger(t *testing.T) {
	rl := NewNopRecordLogger()
	rl.Write(&Record{Alg: "CRC8"})
	assert.NoError(t, rl.Close())
}

func TestThroughput(t *testing.T) {
	assert.Equal(t, float64(0), Throughput(1024, 0))
	assert.Equal(t, float64(1), Throughput(1024*1024, time.Second))
	assert.Equal(t, 0.5, Throughput(1024*1024, 2*time.Second))
}

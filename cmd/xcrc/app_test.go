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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zaibyte/xcrc/errno"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	t   *testing.T
	dir string
	cfg string
}

func newEnv(t *testing.T) *env {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "xcrc.toml")
	content := fmt.Sprintf(`
[log]
error_log_output = %q
record_output = %q
`, filepath.Join(dir, "error.log"), filepath.Join(dir, "record.log"))
	require.NoError(t, os.WriteFile(cfg, []byte(content), 0644))
	return &env{t: t, dir: dir, cfg: cfg}
}

func (e *env) write(name string, content []byte) string {
	fp := filepath.Join(e.dir, name)
	require.NoError(e.t, os.WriteFile(fp, content, 0644))
	return fp
}

func (e *env) run(stdin string, args ...string) (code int, stdout, stderr string) {
	var outBuf, errBuf bytes.Buffer
	args = append([]string{"-config", e.cfg}, args...)
	code = run(args, strings.NewReader(stdin), &outBuf, &errBuf)
	return code, outBuf.String(), errBuf.String()
}

func TestRun_Files(t *testing.T) {
	e := newEnv(t)
	a := e.write("a", []byte("123456789"))
	b := e.write("b", []byte("ABC"))

	code, out, _ := e.run("", "-a", "CRC16_MODBUS", "-j", "1", a, b)
	assert.Equal(t, 0, code)
	assert.Equal(t, fmt.Sprintf("4b37  %s\n8550  %s\n", a, b), out)

	code, out, _ = e.run("", a)
	assert.Equal(t, 0, code)
	assert.Equal(t, fmt.Sprintf("cbf43926  %s\n", a), out)

	records, err := os.ReadFile(filepath.Join(e.dir, "record.log"))
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(records), "\n"))
}

func TestRun_Stdin(t *testing.T) {
	e := newEnv(t)

	code, out, _ := e.run("123456789", "-a", "crc-32/c")
	assert.Equal(t, 0, code)
	assert.Equal(t, "e3069283  -\n", out)

	code, out, _ = e.run("123456789", "-a", "CRC64_XZ", "-")
	assert.Equal(t, 0, code)
	assert.Equal(t, "995dc9bbdf1939fa  -\n", out)

	code, out, _ = e.run("", "-a", "CRC8_ROHC")
	assert.Equal(t, 0, code)
	assert.Equal(t, "ff  -\n", out)
}

func TestRun_MissingFile(t *testing.T) {
	e := newEnv(t)
	a := e.write("a", []byte("123456789"))

	code, out, errOut := e.run("", a, filepath.Join(e.dir, "not_exist"))
	assert.Equal(t, int(errno.ErrInternal), code)
	assert.Equal(t, fmt.Sprintf("cbf43926  %s\n", a), out)
	assert.Contains(t, errOut, "not_exist")
}

func TestRun_Decode(t *testing.T) {
	e := newEnv(t)

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte("123456789"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	gz := e.write("check.gz", buf.Bytes())

	code, out, _ := e.run("", "-decode", "gzip", "-chunk", "2", gz)
	assert.Equal(t, 0, code)
	assert.Equal(t, fmt.Sprintf("cbf43926  %s\n", gz), out)

	code, _, _ = e.run("", "-decode", "brotli", gz)
	assert.Equal(t, int(errno.ErrUnsupportedCodec), code)
}

func TestRun_Check(t *testing.T) {
	e := newEnv(t)
	a := e.write("a", []byte("123456789"))
	b := e.write("b", []byte("ABC"))

	sums := e.write("sums", []byte(fmt.Sprintf("# CRC32\ncbf43926  %s\n\nA3830348  %s\n", a, b)))
	code, out, _ := e.run("", "-c", sums)
	assert.Equal(t, 0, code)
	assert.Equal(t, fmt.Sprintf("%s: OK\n%s: OK\n", a, b), out)

	require.NoError(t, os.WriteFile(b, []byte("ABD"), 0644))
	code, out, errOut := e.run("", "-c", sums)
	assert.Equal(t, int(errno.ErrChecksumMismatch), code)
	assert.Equal(t, fmt.Sprintf("%s: OK\n%s: FAILED\n", a, b), out)
	assert.Contains(t, errOut, "1 of 2")

	code, _, _ = e.run(fmt.Sprintf("cbf43926  %s\n", a), "-c", "-")
	assert.Equal(t, 0, code)

	bad := e.write("bad", []byte("cbf4392  a\n"))
	code, _, _ = e.run("", "-c", bad)
	assert.Equal(t, int(errno.ErrInvalidCheckLine), code)
}

func TestRun_Bytes(t *testing.T) {
	e := newEnv(t)

	code, out, _ := e.run("", "-bytes", "65, 66, 67")
	assert.Equal(t, 0, code)
	assert.Equal(t, "a3830348\n", out)

	code, out, _ = e.run("", "-a", "CRC16_X_25", "-bytes", "65,66,67")
	assert.Equal(t, 0, code)
	assert.Equal(t, "9f2f\n", out)

	for _, list := range []string{"65,256", "-1", "A"} {
		code, out, _ = e.run("", "-bytes", list)
		assert.Equal(t, int(errno.ErrByteOutOfRange), code, list)
		assert.Empty(t, out)
	}
}

func TestRun_List(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"-list"}, strings.NewReader(""), &out, &bytes.Buffer{})
	assert.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 51)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	for _, l := range lines {
		if strings.HasPrefix(l, "CRC16_MODBUS ") {
			assert.True(t, strings.HasSuffix(l, "4b37"), l)
		}
	}
}

func TestRun_BadConfig(t *testing.T) {
	e := newEnv(t)

	code, _, _ := e.run("", "-a", "CRC-13")
	assert.Equal(t, int(errno.ErrUnknownAlgorithm), code)

	code, _, _ = e.run("", "-chunk", "lots")
	assert.Equal(t, int(errno.ErrInvalidConfig), code)

	var errBuf bytes.Buffer
	code = run([]string{"-no-such-flag"}, strings.NewReader(""), &bytes.Buffer{}, &errBuf)
	assert.Equal(t, int(errno.ErrInvalidConfig), code)

	cfg := e.write("bad.toml", []byte("algo = 1"))
	code = run([]string{"-config", cfg}, strings.NewReader(""), &bytes.Buffer{}, &errBuf)
	assert.Equal(t, int(errno.ErrInvalidConfig), code)
}

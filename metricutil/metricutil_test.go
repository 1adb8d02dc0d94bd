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


package metricutil

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/zaibyte/xcrc/config"
	"github.com/zaibyte/xcrc/errno"
	"github.com/zaibyte/xcrc/xerrors"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestObserve(t *testing.T) {
	Observe("TEST_OK", 1024, time.Millisecond, nil)
	Observe("TEST_OK", 1024, time.Millisecond, nil)
	assert.Equal(t, float64(2048), testutil.ToFloat64(sumBytes.WithLabelValues("TEST_OK")))
	assert.Equal(t, float64(2), testutil.ToFloat64(sumTotal.WithLabelValues("TEST_OK", "0")))

	err := xerrors.WithMessage(errno.ErrChecksumMismatch, "a.txt")
	Observe("TEST_FAIL", 1024, time.Millisecond, err)
	assert.Equal(t, float64(0), testutil.ToFloat64(sumBytes.WithLabelValues("TEST_FAIL")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(sumTotal.WithLabelValues("TEST_FAIL", "checksum mismatch")))

	Observe("TEST_IO", 0, 0, errors.New("disk on fire"))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(sumTotal.WithLabelValues("TEST_IO", "internal error")))
}

func TestStartPusher_Disabled(t *testing.T) {
	p := StartPusher(&Config{}, "i")
	assert.Nil(t, p)
	p.Stop()
}

func TestPusher(t *testing.T) {
	defer goleak.VerifyNone(t)

	var (
		mu     sync.Mutex
		paths  []string
		bodies []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		paths = append(paths, r.URL.Path)
		bodies = append(bodies, string(b))
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	Observe("TEST_PUSH", 9, time.Millisecond, nil)

	p := StartPusher(&Config{
		PushJob:      "xcrc",
		PushAddress:  srv.URL,
		PushInterval: config.Duration{Duration: 10 * time.Millisecond},
	}, "node0")
	require.NotNil(t, p)

	time.Sleep(50 * time.Millisecond)
	p.Stop()

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, paths)
	assert.Equal(t, "/metrics/job/xcrc/instance/node0", paths[0])
	// Metrics are in protobuf delimited format, names are plain text inside.
	assert.True(t, strings.Contains(bodies[len(bodies)-1], "xcrc_sum_bytes_total"))
}

/*
 * Copyright (c) 2020. Temple3x (temple3x@gmail.com)
 * Copyright 2016 PingCAP, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *       http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package metricutil provides checksum metrics and pushes them
// to Prometheus Pushgateway.
package metricutil

import (
	"time"

	"github.com/zaibyte/xcrc/errno"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "xcrc"

// Registry holds all xcrc metrics, it's the Gatherer of Pusher.
var Registry = prometheus.NewRegistry()

var (
	sumBytes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sum_bytes_total",
			Help:      "Bytes checksummed.",
		}, []string{"alg"})

	sumTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sum_total",
			Help:      "Sources checksummed, by errno (0 is ok).",
		}, []string{"alg", "errno"})

	sumSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sum_duration_seconds",
			Help:      "Time of checksumming a source.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"alg"})
)

func init() {
	Registry.MustRegister(sumBytes, sumTotal, sumSeconds)
}

// Observe records one source checksummed by alg.
func Observe(alg string, size int64, elapsed time.Duration, err error) {
	code := errno.ErrToErrno(err)
	sumTotal.WithLabelValues(alg, errnoLabel(code)).Inc()
	if err != nil {
		return
	}
	sumBytes.WithLabelValues(alg).Add(float64(size))
	sumSeconds.WithLabelValues(alg).Observe(elapsed.Seconds())
}

func errnoLabel(code errno.Errno) string {
	if code == 0 {
		return "0"
	}
	return code.Error()
}

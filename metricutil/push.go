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
	"net/http"
	"time"

	"github.com/zaibyte/xcrc/config"
	"github.com/zaibyte/xcrc/config/settings"
	"github.com/zaibyte/xcrc/xlog"

	"github.com/lni/goutils/syncutil"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.uber.org/zap"
)

type Config struct {
	PushJob      string          `json:"push_job" toml:"push_job"`
	PushAddress  string          `json:"push_address" toml:"push_address"`
	PushInterval config.Duration `json:"push_interval" toml:"push_interval"`
}

// Pusher pushes Registry in background.
type Pusher struct {
	cfg     *Config
	pusher  *push.Pusher
	stopper *syncutil.Stopper
}

// StartPusher starts pushing metrics every PushInterval,
// it returns nil if push is disabled (no address or job).
func StartPusher(cfg *Config, instanceID string) *Pusher {

	if len(cfg.PushAddress) == 0 || cfg.PushJob == "" {
		xlog.Info("disable Prometheus push client")
		return nil
	}

	if instanceID == "" {
		panic("instanceID must not be empty")
	}

	config.Adjust(&cfg.PushInterval.Duration, settings.Soft.PushInterval)

	client := &http.Client{
		Timeout:   settings.Soft.PushTimeout,
		Transport: &http.Transport{DisableKeepAlives: true},
	}

	p := &Pusher{
		cfg: cfg,
		pusher: push.New(cfg.PushAddress, cfg.PushJob).
			Gatherer(Registry).
			Client(client).
			Grouping("instance", instanceID),
		stopper: syncutil.NewStopper(),
	}

	xlog.Info("start Prometheus push client", zap.String("address", cfg.PushAddress))

	p.stopper.RunWorker(p.loop)
	return p
}

func (p *Pusher) loop() {
	ticker := time.NewTicker(p.cfg.PushInterval.Duration)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.push()
		case <-p.stopper.ShouldStop():
			return
		}
	}
}

func (p *Pusher) push() {
	err := p.pusher.Push()
	if err != nil {
		xlog.Error("could not push metrics to Prometheus Pushgateway", zap.Error(err))
	}
}

// Stop stops the background pushing and pushes the last time.
// It's safe to call Stop on a nil Pusher.
func (p *Pusher) Stop() {
	if p == nil {
		return
	}
	p.stopper.Stop()
	p.push()
}

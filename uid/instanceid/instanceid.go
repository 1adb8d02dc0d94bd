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


// Package instanceid names the running xcrc process for metrics grouping.
package instanceid

import (
	"encoding/hex"
	"os"

	"github.com/google/uuid"
)

// Get gets Instance ID: the hostname and the node ID (according MAC address),
// e.g. "host0-0242ac110002".
//
// Warn:
// It maybe not unique in containers, MAC address maybe not unique in cluster.
func Get() string {
	node := hex.EncodeToString(uuid.NodeID())
	host, err := os.Hostname()
	if err != nil || host == "" {
		return node
	}
	return host + "-" + node
}

var _run = uuid.New()

// Run returns a random ID of this process, it won't change before exiting.
func Run() string {
	return _run.String()
}

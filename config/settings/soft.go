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
//
// Copyright 2017-2019 Lei Ni (nilei81@gmail.com) and other Dragonboat authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// The idea of soft settings is from Dragonboat.

package settings

import "time"

// Tuning configuration parameters here will impact the performance of your
// system. It will not change any checksum. Only tune these parameters when
// you know what you are doing.

// Soft is the soft settings that can be changed after the deployment of a
// system.
var Soft = getDefaultSoftSettings()

type soft struct {

	//
	// metrics
	//
	// PushInterval is the interval of pushing metrics to Pushgateway.
	PushInterval time.Duration
	// PushTimeout is the timeout of each push.
	PushTimeout time.Duration

	//
	// check file
	//
	// MaxCheckLineSize is the maximum size of a line in check file.
	MaxCheckLineSize int
}

func getDefaultSoftSettings() soft {
	return soft{

		PushInterval:     15 * time.Second,
		PushTimeout:      5 * time.Second,
		MaxCheckLineSize: 64 * kb,
	}
}

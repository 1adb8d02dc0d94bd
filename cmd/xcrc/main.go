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

// xcrc prints or verifies CRC checksums of files.
//
// Usage:
//
//	xcrc [-a ALG] [-config FILE] [-j N] [-decode gzip|zstd|lz4] [FILE...]
//	xcrc -c CHECKFILE
//	xcrc -bytes "65,66,67"
//	xcrc -list
//
// Each checksum is printed as "<hex>  <name>", "-" (or no FILE) reads stdin.
// Lines of the same format are verified by -c.
// The exit code is the errno of the first failure, 0 means ok.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Copyright 2020-2025 Buf Technologies, Inc.
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

package report

import (
	"os"
	"strings"
)

// debugMode is the status of the EXPRC_DEBUG environment variable at
// startup. It enables stack-trace capture for every diagnostic.
var debugMode = func() bool {
	switch strings.ToLower(os.Getenv("EXPRC_DEBUG")) {
	case "", "0", "off", "false":
		return false
	default:
		return true
	}
}()

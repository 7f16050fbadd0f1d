/*
 * Copyright 2024 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package opts

import (
	"os"
	"strconv"
)

const (
	_DefaultMaxPacketWords = 4 // architectural packet limit
	_DefaultStrict         = 0 // assembler rules are not enforced
)

var (
	MaxPacketWords = parseOrDefault("VLIWDEC_MAX_PACKET_WORDS", _DefaultMaxPacketWords, 1, 4)
	Strict         = parseOrDefault("VLIWDEC_STRICT", _DefaultStrict, 0, 1) != 0
)

func parseOrDefault(key string, def int, min int, max int) int {
	if env := os.Getenv(key); env == "" {
		return def
	} else if val, err := strconv.ParseUint(env, 0, 64); err != nil {
		panic("vliwdec: invalid value for " + key)
	} else if ret := int(val); ret < min {
		panic("vliwdec: value too small for " + key)
	} else if ret > max {
		panic("vliwdec: value too large for " + key)
	} else {
		return ret
	}
}

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

package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/vliwdec/internal/packet"
)

// Invalid is the structured form of a malformed-packet error.
type Invalid struct {
	Reason string
	Cause  string
	Insn   int
	Words  []uint32
	Err    error
}

// EInvalid flattens err into an Invalid, keeping a private copy of words.
func EInvalid(err error, words []uint32) Invalid {
	var pe *packet.Error
	ret := Invalid{
		Reason: err.Error(),
		Insn:   -1,
		Words:  append([]uint32(nil), words...),
		Err:    err,
	}
	if errors.As(err, &pe) {
		ret.Cause = pe.Cause.String()
		ret.Insn = pe.Insn
	}
	return ret
}

// Words formats encoding words the way they appear in a listing.
func Words(words []uint32) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, w := range words {
		if i != 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%08x", w)
	}
	sb.WriteByte(']')
	return sb.String()
}

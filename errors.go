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

package vliwdec

import (
	"errors"
	"fmt"

	"github.com/cloudwego/vliwdec/internal/packet"
	"github.com/cloudwego/vliwdec/internal/utils"
)

var (
	// ErrIncomplete occures when the words run out before the packet ends.
	// Fetch more words and try again.
	ErrIncomplete = packet.ErrIncomplete

	// ErrInvalidPacket matches every InvalidPacketError with errors.Is.
	ErrInvalidPacket = errors.New("invalid packet")
)

// InvalidPacketError occures when the words do not form a valid packet.
// Decoding of that packet is abandoned; there is nothing to retry.
type InvalidPacketError struct {
	Reason string
	Cause  string
	Insn   int
	Words  []uint32
	Err    error
}

func newInvalidPacketError(err error, words []uint32) *InvalidPacketError {
	e := utils.EInvalid(err, words)
	return &InvalidPacketError{
		Reason: e.Reason,
		Cause:  e.Cause,
		Insn:   e.Insn,
		Words:  e.Words,
		Err:    e.Err,
	}
}

func (self *InvalidPacketError) Error() string {
	return fmt.Sprintf("InvalidPacketError(%s): %s", utils.Words(self.Words), self.Reason)
}

func (self *InvalidPacketError) Is(target error) bool {
	return target == ErrInvalidPacket
}

func (self *InvalidPacketError) Unwrap() error {
	return self.Err
}

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

package packet

import (
	"errors"
	"fmt"
)

// ErrIncomplete is returned when the words run out before an end-of-packet
// marker. It is the only condition a caller is expected to recover from.
var ErrIncomplete = errors.New("incomplete packet")

type Cause uint8

const (
	C_slot_unmappable Cause = iota
	C_slot_conflict
	C_newvalue_range
	C_newvalue_nodest
	C_extender_last
	C_extender_twice
	C_extender_target
	C_extension
	C_too_many_insns
	C_no_end
	C_schedule_order
	C_assembler_rule
)

var _CauseNames = [...]string{
	C_slot_unmappable: "cannot map instructions to slots",
	C_slot_conflict:   "two instructions share a slot",
	C_newvalue_range:  "new-value consumer has no valid producer",
	C_newvalue_nodest: "new-value producer writes no register",
	C_extender_last:   "constant extender at end of packet",
	C_extender_twice:  "two constant extenders in a row",
	C_extender_target: "instruction is not extendable",
	C_extension:       "vector extension constraint violated",
	C_too_many_insns:  "too many instructions",
	C_no_end:          "packet does not end",
	C_schedule_order:  "new-value consumer scheduled before its producer",
	C_assembler_rule:  "packet violates an assembler rule",
}

func (self Cause) String() string {
	if int(self) < len(_CauseNames) {
		return _CauseNames[self]
	} else {
		return fmt.Sprintf("cause(%d)", self)
	}
}

// Error describes a malformed packet. Decoding of the packet is abandoned.
type Error struct {
	Cause Cause
	Insn  int // position of the offending instruction, -1 if not specific
	Note  string
	Err   error
}

func errorf(cause Cause, insn int, format string, args ...interface{}) *Error {
	return &Error{
		Cause: cause,
		Insn:  insn,
		Note:  fmt.Sprintf(format, args...),
	}
}

func (self *Error) Error() string {
	msg := self.Cause.String()
	if self.Insn >= 0 {
		msg = fmt.Sprintf("%s (insn %d)", msg, self.Insn)
	}
	if self.Note != "" {
		msg += ": " + self.Note
	}
	if self.Err != nil {
		msg += ": " + self.Err.Error()
	}
	return msg
}

func (self *Error) Unwrap() error {
	return self.Err
}

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

package isa

import (
	. "github.com/cloudwego/vliwdec/internal/packet"
)

// Instruction classes, taken from bits [31:28] of a non-duplex word.
const (
	ICLASS_EXTENDER uint8 = iota
	ICLASS_CJ
	ICLASS_NCJ
	ICLASS_V4LDST
	ICLASS_V2LDST
	ICLASS_J
	ICLASS_CR
	ICLASS_ALU32_2op
	ICLASS_S_2op
	ICLASS_LD
	ICLASS_ST
	ICLASS_ALU32_ADDI
	ICLASS_S_3op
	ICLASS_ALU64
	ICLASS_M
	ICLASS_ALU32_3op
	ICLASS_SUBINSN
	_ICLASS_LAST
)

var _IClassSlots = [_ICLASS_LAST]SlotMask{
	ICLASS_EXTENDER:   SLOTS_0123,
	ICLASS_CJ:         SLOTS_23,
	ICLASS_NCJ:        SLOTS_0,
	ICLASS_V4LDST:     SLOTS_01,
	ICLASS_V2LDST:     SLOTS_01,
	ICLASS_J:          SLOTS_23,
	ICLASS_CR:         SLOTS_3,
	ICLASS_ALU32_2op:  SLOTS_0123,
	ICLASS_S_2op:      SLOTS_23,
	ICLASS_LD:         SLOTS_01,
	ICLASS_ST:         SLOTS_01,
	ICLASS_ALU32_ADDI: SLOTS_0123,
	ICLASS_S_3op:      SLOTS_23,
	ICLASS_ALU64:      SLOTS_23,
	ICLASS_M:          SLOTS_23,
	ICLASS_ALU32_3op:  SLOTS_0123,
	ICLASS_SUBINSN:    SLOTS_01,
}

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

// Word layout:
//
//	[31:28] iclass
//	[27:24] minor opcode
//	[23:19] register A, or a 5-bit immediate
//	[18:16] predicate or new-value register
//	[15:14] parse bits
//	[13:5]  9-bit immediate, overlapping register C at [12:8]
//	[4:0]   register B
//
// Duplex words (parse bits 00) carry two 13-bit sub-instructions, the one
// at [28:16] goes to slot 1 and is decoded first, the one at [12:0] goes to
// slot 0. A sub-instruction keeps its opcode in [12:9].
//
// Extender words (iclass 0) carry 26 bits of payload in [27:16] and [13:0].
const (
	_SubBits  = 13
	_SubMask  = 1<<_SubBits - 1
	_SubHiPos = 16
	_SubOpPos = 9
)

// Decoder decodes single words. It never fails: unknown encodings decode to
// ILLEGAL.
type Decoder struct{}

func (self Decoder) DecodeWord(w uint32, out *[2]Instruction) int {
	if ParseBits(w) == PARSE_DUPLEX {
		self.decodeSub((w>>_SubHiPos)&_SubMask, &out[0])
		self.decodeSub(w&_SubMask, &out[1])
		return 2
	}

	/* constant extenders only carry payload */
	ic := uint8(w >> 28)
	if ic == ICLASS_EXTENDER {
		out[0].Opcode = A4_ext
		out[0].IClass = ICLASS_EXTENDER
		out[0].Immed[0] = ExtenderPayload(w) << 6
		return 1
	}

	op := _Decode[ic][(w>>24)&0xf]
	self.fill(op, w, &out[0])
	out[0].IClass = ic
	return 1
}

func (self Decoder) decodeSub(w uint32, insn *Instruction) {
	self.fill(_DecodeSub[(w>>_SubOpPos)&0xf], w, insn)
	insn.IClass = ICLASS_SUBINSN
}

func (Decoder) fill(op Opcode, w uint32, insn *Instruction) {
	info := Info(op)
	insn.Opcode = op
	for i, f := range info.RegF {
		insn.Regno[i] = uint8(f.Get(w))
	}
	for i, f := range info.ImmF {
		insn.Immed[i] = f.Get(w)
	}
}

// ExtenderPayload returns the 26-bit payload of an extender word.
func ExtenderPayload(w uint32) uint32 {
	return (w>>16)&0xfff<<14 | w&0x3fff
}

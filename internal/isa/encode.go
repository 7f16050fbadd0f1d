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
	"fmt"

	. "github.com/cloudwego/vliwdec/internal/packet"
)

// Operands lists register numbers and immediates in operand order.
type Operands struct {
	Regs []uint8
	Imms []uint32
}

func (self Operands) put(info *OpInfo) uint32 {
	var w uint32
	if len(self.Regs) > len(info.RegF) || len(self.Imms) > len(info.ImmF) {
		panic(fmt.Sprintf("isa: too many operands for %s", info.Name))
	}
	for i, r := range self.Regs {
		w |= info.RegF[i].Put(uint32(r))
	}
	for i, v := range self.Imms {
		w |= info.ImmF[i].Put(v)
	}
	return w
}

// Encode builds the word for op with the given parse bits. It panics for
// sub-instructions and opcodes without an encoding.
func Encode(op Opcode, parse uint32, args Operands) uint32 {
	info := Info(op)
	if info.Minor < 0 || info.IClass == ICLASS_SUBINSN {
		panic("isa: cannot encode " + info.Name)
	}
	w := uint32(info.IClass)<<28 | uint32(info.Minor)<<24 | (parse&3)<<14
	return w | args.put(info)
}

// EncodeSub builds one 13-bit duplex half.
func EncodeSub(op Opcode, args Operands) uint32 {
	info := Info(op)
	if info.IClass != ICLASS_SUBINSN {
		panic("isa: not a sub-instruction: " + info.Name)
	}
	return (uint32(info.Minor)<<_SubOpPos | args.put(info)) & _SubMask
}

// Duplex packs two halves into a word. A duplex always ends its packet.
func Duplex(slot1 uint32, slot0 uint32) uint32 {
	return (slot1&_SubMask)<<_SubHiPos | slot0&_SubMask
}

// Extender builds a constant extender carrying the upper 26 bits of v.
func Extender(v uint32, parse uint32) uint32 {
	p := v >> 6
	return (p>>14)&0xfff<<16 | (parse&3)<<14 | p&0x3fff
}

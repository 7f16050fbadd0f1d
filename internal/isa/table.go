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
	"strings"

	. "github.com/cloudwego/vliwdec/internal/packet"
)

var (
	_Decode    [ICLASS_SUBINSN][16]Opcode
	_DecodeSub [16]Opcode
)

func init() {
	for i := range _OpInfo {
		op := Opcode(i)
		info := &_OpInfo[i]

		/* sanity check */
		if len(info.Regs) != len(info.RegF) {
			panic(fmt.Sprintf("isa: %s has %d register letters but %d fields", info.Name, len(info.Regs), len(info.RegF)))
		}
		for i := 0; i < len(info.Preds); i++ {
			if strings.IndexByte(info.Regs, info.Preds[i]) < 0 {
				panic(fmt.Sprintf("isa: %s has no %c register for a predicate", info.Name, info.Preds[i]))
			}
		}
		if len(info.RegF) > MaxRegs || len(info.ImmF) > MaxImms {
			panic("isa: too many operands for " + info.Name)
		}
		if info.Minor < 0 {
			continue
		}

		/* register the encoding */
		slot := &_DecodeSub[info.Minor]
		if info.IClass != ICLASS_SUBINSN {
			slot = &_Decode[info.IClass][info.Minor]
		}
		if *slot != ILLEGAL {
			panic(fmt.Sprintf("isa: %s and %s share an encoding", info.Name, _OpInfo[*slot].Name))
		}
		*slot = op
	}
}

var (
	_ OpTable     = Table{}
	_ WordDecoder = Decoder{}
	_ ExtChecker  = VectorChecker{}
)

// Table answers opcode queries from the static opcode table.
type Table struct{}

func (Table) Attrib(op Opcode, a Attrib) bool {
	return Info(op).Attrs.Has(a)
}

func (Table) Name(op Opcode) string {
	return Info(op).Name
}

func (Table) RegField(op Opcode, field byte) int {
	return strings.IndexByte(Info(op).Regs, field)
}

func (self Table) PredField(op Opcode, field byte) int {
	if strings.IndexByte(Info(op).Preds, field) < 0 {
		return -1
	}
	return self.RegField(op, field)
}

func (Table) ExtendedImmediate(op Opcode) int {
	return int(Info(op).Ext)
}

func (Table) ClassSlots(op Opcode, iclass uint8) SlotMask {
	if info := Info(op); info.Attrs.Has(A_EXTENSION) {
		return info.Slots
	}
	if iclass >= _ICLASS_LAST {
		return 0
	}
	return _IClassSlots[iclass]
}

func (Table) LoopEnd(loops LoopMask) Opcode {
	switch loops {
	case Loop0:
		return J2_endloop0
	case Loop1:
		return J2_endloop1
	case Loop0 | Loop1:
		return J2_endloop01
	default:
		panic(fmt.Sprintf("isa: invalid loop mask %#x", loops))
	}
}

// New returns the collaborators for this instruction set.
func New() *ISA {
	return &ISA{
		Table:   Table{},
		Decoder: Decoder{},
		Ext:     VectorChecker{},
	}
}

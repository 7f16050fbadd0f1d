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
	"strings"
)

// Opcode is an opaque key into an OpTable.
type Opcode uint16

// Attrib is a boolean property of an opcode.
type Attrib uint8

const (
	A_STORE Attrib = iota
	A_LOAD
	A_MEMLIKE
	A_MEMLIKE_PACKET_RULES
	A_MEMOP
	A_NVSTORE
	A_VMEM
	A_DOTNEW
	A_DOTOLD
	A_DOTNEWVALUE
	A_EXTENSION
	A_IT_EXTENDER
	A_EXTENDABLE
	A_IT_NOP
	A_SUBINSN
	A_NEWCMPJUMP
	A_WRITES_PRED_REG
	A_READS_PRED_REG
	A_IMPLICIT_WRITES_P0
	A_IMPLICIT_WRITES_P1
	A_IMPLICIT_WRITES_P2
	A_IMPLICIT_WRITES_P3
	A_IMPLICIT_READS_P0
	A_IMPLICIT_READS_P1
	A_HWLOOP0_END
	A_HWLOOP1_END
	A_COF
	A_JUMP
	A_CALL
	A_CJUMP
	A_INDIRECT
	A_HINTJR
	A_IMPLICIT_COF
	A_RTE
	A_BRANCHADDER
	A_RELAX_COF_1ST
	A_RELAX_COF_2ND
	A_CACHEOP
	A_DCZEROA
	A_DEALLOCRET
	A_DEALLOCFRAME
	A_ROPS_2
	A_ROPS_3
	A_FPOP
	A_MPY
	A_ICOP
	A_V2LDST
	A_CRSLOT23
	A_JUMPSET
	A_RESTRICT_SLOT0ONLY
	A_RESTRICT_SLOT1ONLY
	A_RESTRICT_SLOT2ONLY
	A_RESTRICT_SLOT3ONLY
	A_RESTRICT_NOSLOT1
	A_RESTRICT_PREFERSLOT0
	A_RESTRICT_NOPACKET
	A_RESTRICT_NOSLOT1_STORE
	A_RESTRICT_NOSLOT0_LOAD
	A_RESTRICT_NOSLOT2_MPY
	A_RESTRICT_LATEPRED
	A_LAST
)

var _AttribNames = [...]string{
	A_STORE:                  "STORE",
	A_LOAD:                   "LOAD",
	A_MEMLIKE:                "MEMLIKE",
	A_MEMLIKE_PACKET_RULES:   "MEMLIKE_PACKET_RULES",
	A_MEMOP:                  "MEMOP",
	A_NVSTORE:                "NVSTORE",
	A_VMEM:                   "VMEM",
	A_DOTNEW:                 "DOTNEW",
	A_DOTOLD:                 "DOTOLD",
	A_DOTNEWVALUE:            "DOTNEWVALUE",
	A_EXTENSION:              "EXTENSION",
	A_IT_EXTENDER:            "IT_EXTENDER",
	A_EXTENDABLE:             "EXTENDABLE",
	A_IT_NOP:                 "IT_NOP",
	A_SUBINSN:                "SUBINSN",
	A_NEWCMPJUMP:             "NEWCMPJUMP",
	A_WRITES_PRED_REG:        "WRITES_PRED_REG",
	A_READS_PRED_REG:         "READS_PRED_REG",
	A_IMPLICIT_WRITES_P0:     "IMPLICIT_WRITES_P0",
	A_IMPLICIT_WRITES_P1:     "IMPLICIT_WRITES_P1",
	A_IMPLICIT_WRITES_P2:     "IMPLICIT_WRITES_P2",
	A_IMPLICIT_WRITES_P3:     "IMPLICIT_WRITES_P3",
	A_IMPLICIT_READS_P0:      "IMPLICIT_READS_P0",
	A_IMPLICIT_READS_P1:      "IMPLICIT_READS_P1",
	A_HWLOOP0_END:            "HWLOOP0_END",
	A_HWLOOP1_END:            "HWLOOP1_END",
	A_COF:                    "COF",
	A_JUMP:                   "JUMP",
	A_CALL:                   "CALL",
	A_CJUMP:                  "CJUMP",
	A_INDIRECT:               "INDIRECT",
	A_HINTJR:                 "HINTJR",
	A_IMPLICIT_COF:           "IMPLICIT_COF",
	A_RTE:                    "RTE",
	A_BRANCHADDER:            "BRANCHADDER",
	A_RELAX_COF_1ST:          "RELAX_COF_1ST",
	A_RELAX_COF_2ND:          "RELAX_COF_2ND",
	A_CACHEOP:                "CACHEOP",
	A_DCZEROA:                "DCZEROA",
	A_DEALLOCRET:             "DEALLOCRET",
	A_DEALLOCFRAME:           "DEALLOCFRAME",
	A_ROPS_2:                 "ROPS_2",
	A_ROPS_3:                 "ROPS_3",
	A_FPOP:                   "FPOP",
	A_MPY:                    "MPY",
	A_ICOP:                   "ICOP",
	A_V2LDST:                 "V2LDST",
	A_CRSLOT23:               "CRSLOT23",
	A_JUMPSET:                "JUMPSET",
	A_RESTRICT_SLOT0ONLY:     "RESTRICT_SLOT0ONLY",
	A_RESTRICT_SLOT1ONLY:     "RESTRICT_SLOT1ONLY",
	A_RESTRICT_SLOT2ONLY:     "RESTRICT_SLOT2ONLY",
	A_RESTRICT_SLOT3ONLY:     "RESTRICT_SLOT3ONLY",
	A_RESTRICT_NOSLOT1:       "RESTRICT_NOSLOT1",
	A_RESTRICT_PREFERSLOT0:   "RESTRICT_PREFERSLOT0",
	A_RESTRICT_NOPACKET:      "RESTRICT_NOPACKET",
	A_RESTRICT_NOSLOT1_STORE: "RESTRICT_NOSLOT1_STORE",
	A_RESTRICT_NOSLOT0_LOAD:  "RESTRICT_NOSLOT0_LOAD",
	A_RESTRICT_NOSLOT2_MPY:   "RESTRICT_NOSLOT2_MPY",
	A_RESTRICT_LATEPRED:      "RESTRICT_LATEPRED",
}

func (self Attrib) String() string {
	if self < A_LAST {
		return _AttribNames[self]
	} else {
		return "A_???"
	}
}

// AttribSet is a bitmap of attributes, convenient for building tables.
type AttribSet uint64

// Attribs builds an AttribSet out of a list of attributes.
func Attribs(attrs ...Attrib) AttribSet {
	var s AttribSet
	for _, a := range attrs {
		s |= 1 << a
	}
	return s
}

func (self AttribSet) Has(a Attrib) bool {
	return self&(1<<a) != 0
}

func (self AttribSet) String() string {
	var nb []string
	for a := Attrib(0); a < A_LAST; a++ {
		if self.Has(a) {
			nb = append(nb, a.String())
		}
	}
	return "{" + strings.Join(nb, ",") + "}"
}

// SlotMask is a set of dispatch slots, bit N for slot N.
type SlotMask uint8

const (
	SLOTS_0    SlotMask = 1 << 0
	SLOTS_1    SlotMask = 1 << 1
	SLOTS_2    SlotMask = 1 << 2
	SLOTS_3    SlotMask = 1 << 3
	SLOTS_01            = SLOTS_0 | SLOTS_1
	SLOTS_23            = SLOTS_2 | SLOTS_3
	SLOTS_0123          = SLOTS_01 | SLOTS_23
)

func (self SlotMask) Has(slot int) bool {
	return slot >= 0 && slot < MaxSlots && self&(1<<slot) != 0
}

func (self SlotMask) String() string {
	buf := []byte("<")
	for i := MaxSlots - 1; i >= 0; i-- {
		if self.Has(i) {
			buf = append(buf, byte('0'+i))
		}
	}
	return string(append(buf, '>'))
}

// LoopMask names the hardware loops a packet closes.
type LoopMask uint8

const (
	Loop0 LoopMask = 1 << iota
	Loop1
)

// OpTable answers questions about opcodes. Implementations must be immutable
// once built so packets can be decoded concurrently.
type OpTable interface {
	// Attrib reports whether op carries attribute a.
	Attrib(op Opcode, a Attrib) bool

	// Name is used for diagnostics only.
	Name(op Opcode) string

	// RegField returns the operand index holding the register field named
	// by letter (d, s, t, u, v, x, e, y), or -1 if op has no such operand.
	RegField(op Opcode, field byte) int

	// PredField is RegField limited to operands naming a predicate register.
	PredField(op Opcode, field byte) int

	// ExtendedImmediate returns which immediate a constant extender widens.
	ExtendedImmediate(op Opcode) int

	// ClassSlots returns the slots allowed by the instruction class alone.
	ClassSlots(op Opcode, iclass uint8) SlotMask

	// LoopEnd returns the opcode of the synthesized end-of-loop instruction.
	LoopEnd(loops LoopMask) Opcode
}

// WordDecoder turns one encoding word into one or two instructions (two for
// a duplex word). It never fails: undecodable words become an illegal
// opcode inside the decoder.
type WordDecoder interface {
	DecodeWord(word uint32, out *[2]Instruction) int
}

// ExtChecker validates the vector-extension part of a packet. It is only
// invoked when the packet holds at least one A_EXTENSION instruction.
type ExtChecker interface {
	CheckExtension(p *Packet, disasOnly bool) error
}

// ISA bundles the read-only collaborators the assembler needs.
type ISA struct {
	Table   OpTable
	Decoder WordDecoder
	Ext     ExtChecker
}

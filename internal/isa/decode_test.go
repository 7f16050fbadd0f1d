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
package isa_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cloudwego/vliwdec/internal/isa"
	"github.com/cloudwego/vliwdec/internal/packet"
)

func operandsOf(op packet.Opcode, insn *packet.Instruction) isa.Operands {
	info := isa.Info(op)
	return isa.Operands{
		Regs: append([]uint8(nil), insn.Regno[:len(info.RegF)]...),
		Imms: append([]uint32(nil), insn.Immed[:len(info.ImmF)]...),
	}
}

func sampleOperands(op packet.Opcode) isa.Operands {
	var args isa.Operands
	info := isa.Info(op)
	for i := range info.RegF {
		args.Regs = append(args.Regs, uint8(i+1))
	}
	for range info.ImmF {
		args.Imms = append(args.Imms, 1)
	}
	return args
}

var _ = Describe("Decoder", func() {
	var (
		dec isa.Decoder
		out [2]packet.Instruction
	)

	BeforeEach(func() {
		dec = isa.Decoder{}
		out = [2]packet.Instruction{}
	})

	It("should decode every encodable opcode back to itself", func() {
		for op := packet.Opcode(0); op < isa.OP_LAST; op++ {
			info := isa.Info(op)
			if info.Minor < 0 || info.IClass == isa.ICLASS_SUBINSN {
				continue
			}

			w := isa.Encode(op, packet.PARSE_END, sampleOperands(op))
			Expect(dec.DecodeWord(w, &out)).To(Equal(1), info.Name)
			Expect(out[0].Opcode).To(Equal(op), info.Name)
			Expect(out[0].IClass).To(Equal(info.IClass), info.Name)
			Expect(isa.Encode(op, packet.PARSE_END, operandsOf(op, &out[0]))).To(Equal(w), info.Name)
		}
	})

	It("should decode every sub-instruction in either half", func() {
		nop := isa.EncodeSub(isa.SA1_seti, isa.Operands{Regs: []uint8{0}, Imms: []uint32{0}})
		for op := packet.Opcode(0); op < isa.OP_LAST; op++ {
			info := isa.Info(op)
			if info.IClass != isa.ICLASS_SUBINSN {
				continue
			}

			half := isa.EncodeSub(op, sampleOperands(op))
			Expect(dec.DecodeWord(isa.Duplex(half, nop), &out)).To(Equal(2), info.Name)
			Expect(out[0].Opcode).To(Equal(op), info.Name)
			Expect(out[0].IClass).To(Equal(uint8(isa.ICLASS_SUBINSN)))
			Expect(isa.EncodeSub(op, operandsOf(op, &out[0]))).To(Equal(half), info.Name)

			Expect(dec.DecodeWord(isa.Duplex(nop, half), &out)).To(Equal(2), info.Name)
			Expect(out[1].Opcode).To(Equal(op), info.Name)
		}
	})

	It("should map high sub-instruction registers", func() {
		half := isa.EncodeSub(isa.SA1_tfr, isa.Operands{Regs: []uint8{16, 23}})
		dec.DecodeWord(isa.Duplex(half, half), &out)
		Expect(out[0].Regno[:2]).To(Equal([]uint8{16, 23}))
		Expect(out[1].Regno[:2]).To(Equal([]uint8{16, 23}))
	})

	It("should put the high half first", func() {
		hi := isa.EncodeSub(isa.SA1_seti, isa.Operands{Regs: []uint8{1}, Imms: []uint32{5}})
		lo := isa.EncodeSub(isa.SL1_loadri_io, isa.Operands{Regs: []uint8{2, 3}})
		w := isa.Duplex(hi, lo)

		Expect(packet.ParseBits(w)).To(Equal(uint32(packet.PARSE_DUPLEX)))
		Expect(dec.DecodeWord(w, &out)).To(Equal(2))
		Expect(out[0].Opcode).To(Equal(isa.SA1_seti))
		Expect(out[0].Immed[0]).To(Equal(uint32(5)))
		Expect(out[1].Opcode).To(Equal(isa.SL1_loadri_io))
		Expect(out[1].Regno[:2]).To(Equal([]uint8{2, 3}))
	})

	It("should carry the extender payload", func() {
		w := isa.Extender(0x12345640, packet.PARSE_NOTEND)

		Expect(packet.ParseBits(w)).To(Equal(uint32(packet.PARSE_NOTEND)))
		Expect(isa.ExtenderPayload(w)).To(Equal(uint32(0x12345640 >> 6)))
		Expect(dec.DecodeWord(w, &out)).To(Equal(1))
		Expect(out[0].Opcode).To(Equal(isa.A4_ext))
		Expect(out[0].Immed[0]).To(Equal(uint32(0x12345640)))
	})

	It("should drop the low six bits of an extended value", func() {
		w := isa.Extender(0xffffffff, packet.PARSE_END)
		dec.DecodeWord(w, &out)
		Expect(out[0].Immed[0]).To(Equal(uint32(0xffffffc0)))
	})

	DescribeTable("unknown encodings",
		func(w uint32) {
			Expect(dec.DecodeWord(w, &out)).To(Equal(1))
			Expect(out[0].Opcode).To(Equal(isa.ILLEGAL))
		},
		Entry("unused ALU32 minor", uint32(0xff00c000)),
		Entry("unused CR minor", uint32(0x6f00c000)),
	)

	DescribeTable("encoder misuse",
		func(fn func()) {
			Expect(fn).To(Panic())
		},
		Entry("sub-instruction as a word", func() { isa.Encode(isa.SA1_tfr, packet.PARSE_END, isa.Operands{}) }),
		Entry("opcode without an encoding", func() { isa.Encode(isa.J2_endloop0, packet.PARSE_END, isa.Operands{}) }),
		Entry("word as a sub-instruction", func() { isa.EncodeSub(isa.A2_add, isa.Operands{}) }),
		Entry("too many operands", func() {
			isa.Encode(isa.A2_nop, packet.PARSE_END, isa.Operands{Regs: []uint8{1}})
		}),
	)
})

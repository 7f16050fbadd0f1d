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

var _ = Describe("Table", func() {
	tab := isa.Table{}

	It("should name opcodes", func() {
		Expect(tab.Name(isa.A2_add)).To(Equal("add"))
		Expect(tab.Name(isa.ILLEGAL)).To(Equal("illegal"))
		Expect(isa.Info(isa.OP_LAST + 1).Name).To(Equal("illegal"))
	})

	It("should locate register fields by letter", func() {
		Expect(tab.RegField(isa.C2_cmpeqi, 'd')).To(Equal(0))
		Expect(tab.RegField(isa.C2_cmpeqi, 's')).To(Equal(1))
		Expect(tab.RegField(isa.C2_cmpeqi, 't')).To(Equal(-1))
		Expect(tab.RegField(isa.S2_storerinew_io, 't')).To(Equal(1))
		Expect(tab.RegField(isa.A2_nop, 'd')).To(Equal(-1))
	})

	It("should locate predicate fields only", func() {
		Expect(tab.PredField(isa.C2_cmpeqi, 'd')).To(Equal(0))
		Expect(tab.PredField(isa.C2_cmpeqi, 's')).To(Equal(-1))
		Expect(tab.PredField(isa.C2_and, 't')).To(Equal(2))
		Expect(tab.PredField(isa.J2_jumptnew, 'u')).To(Equal(0))
		Expect(tab.PredField(isa.J4_cmpeqi_tp0_jump_nt, 's')).To(Equal(-1))
		Expect(tab.RegField(isa.J4_cmpeqi_tp0_jump_nt, 's')).To(Equal(0))
	})

	It("should report attributes", func() {
		Expect(tab.Attrib(isa.S2_storeri_io, packet.A_STORE)).To(BeTrue())
		Expect(tab.Attrib(isa.S2_storeri_io, packet.A_LOAD)).To(BeFalse())
		Expect(tab.Attrib(isa.J2_endloop01, packet.A_HWLOOP0_END)).To(BeTrue())
		Expect(tab.Attrib(isa.J2_endloop01, packet.A_HWLOOP1_END)).To(BeTrue())
		Expect(tab.ExtendedImmediate(isa.A2_addi)).To(Equal(0))
		Expect(tab.ExtendedImmediate(isa.A2_add)).To(Equal(-1))
	})

	DescribeTable("class slots",
		func(op packet.Opcode, iclass uint8, want packet.SlotMask) {
			Expect(tab.ClassSlots(op, iclass)).To(Equal(want))
		},
		Entry("ALU32", isa.A2_add, isa.ICLASS_ALU32_3op, packet.SLOTS_0123),
		Entry("load", isa.L2_loadri_io, isa.ICLASS_LD, packet.SLOTS_01),
		Entry("control register", isa.A2_tfrrcr, isa.ICLASS_CR, packet.SLOTS_3),
		Entry("jump", isa.J2_jump, isa.ICLASS_J, packet.SLOTS_23),
		Entry("sub-instruction", isa.SA1_tfr, isa.ICLASS_SUBINSN, packet.SLOTS_01),
		Entry("vector store", isa.V6_vS32b_ai, isa.ICLASS_ALU64, packet.SLOTS_0),
		Entry("vector load", isa.V6_vL32b_ai, isa.ICLASS_ALU64, packet.SLOTS_01),
		Entry("out of range class", isa.A2_add, uint8(0x20), packet.SlotMask(0)),
	)

	DescribeTable("loop ends",
		func(loops packet.LoopMask, want packet.Opcode) {
			Expect(tab.LoopEnd(loops)).To(Equal(want))
			Expect(tab.Attrib(want, packet.A_COF)).To(BeTrue())
		},
		Entry("loop 0", packet.Loop0, isa.J2_endloop0),
		Entry("loop 1", packet.Loop1, isa.J2_endloop1),
		Entry("both", packet.Loop0|packet.Loop1, isa.J2_endloop01),
	)

	It("should reject an empty loop mask", func() {
		Expect(func() { tab.LoopEnd(0) }).To(Panic())
	})

	It("should bundle all collaborators", func() {
		desc := isa.New()
		Expect(desc.Table).To(Equal(isa.Table{}))
		Expect(desc.Decoder).To(Equal(isa.Decoder{}))
		Expect(desc.Ext).To(Equal(isa.VectorChecker{}))
	})
})

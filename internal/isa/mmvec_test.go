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
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cloudwego/vliwdec/internal/isa"
	"github.com/cloudwego/vliwdec/internal/packet"
)

func enc(op packet.Opcode, parse uint32, regs []uint8, imms ...uint32) uint32 {
	return isa.Encode(op, parse, isa.Operands{Regs: regs, Imms: imms})
}

var _ = Describe("VectorChecker", func() {
	var (
		p    *packet.Packet
		desc *packet.ISA
	)

	assemble := func(cfg packet.Config, words ...uint32) error {
		_, err := packet.Assemble(desc, cfg, 0x2000, words, p)
		return err
	}

	exec := packet.Config{MaxWords: packet.MaxWords}
	disas := packet.Config{MaxWords: packet.MaxWords, DisasOnly: true}

	BeforeEach(func() {
		p = new(packet.Packet)
		desc = isa.New()
	})

	Context("new-value stores", func() {
		It("should take the producer's destination", func() {
			err := assemble(exec,
				enc(isa.V6_vaddw, packet.PARSE_NOTEND, []uint8{7, 1, 2}),
				enc(isa.V6_vS32b_new_ai, packet.PARSE_END, []uint8{3, 2}, 0),
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Len()).To(Equal(2))

			st := p.Insn(p.Position(1))
			Expect(st.Opcode).To(Equal(isa.V6_vS32b_new_ai))
			Expect(st.Regno[1]).To(Equal(uint8(7)))
			Expect(int(st.Producer)).To(Equal(0))
			Expect(st.ProducerSlot).To(Equal(p.Insn(p.Position(0)).Slot))
			Expect(st.Slot).To(Equal(int8(0)))
		})

		It("should skip constant extenders", func() {
			Expect(assemble(disas,
				enc(isa.V6_vaddw, packet.PARSE_NOTEND, []uint8{9, 1, 2}),
				isa.Extender(0x1000, packet.PARSE_NOTEND),
				enc(isa.A2_addi, packet.PARSE_NOTEND, []uint8{1, 2}, 3),
				enc(isa.V6_vS32b_new_ai, packet.PARSE_END, []uint8{3, 4}, 0),
			)).To(Succeed())
			Expect(p.Len()).To(Equal(4))
			Expect(p.Insn(3).Regno[1]).To(Equal(uint8(9)))
			Expect(int(p.Insn(3).Producer)).To(Equal(p.ID(0)))
		})

		It("should reject a scalar producer", func() {
			var e *packet.Error
			err := assemble(exec,
				enc(isa.A2_tfrsi, packet.PARSE_NOTEND, []uint8{1}, 7),
				enc(isa.V6_vS32b_new_ai, packet.PARSE_END, []uint8{3, 2}, 0),
			)
			Expect(errors.As(err, &e)).To(BeTrue())
			Expect(e.Cause).To(Equal(packet.C_extension))
		})

		It("should reject a distance past the packet start", func() {
			err := assemble(disas,
				enc(isa.V6_vaddw, packet.PARSE_NOTEND, []uint8{7, 1, 2}),
				enc(isa.V6_vS32b_new_ai, packet.PARSE_END, []uint8{3, 4}, 0),
			)
			Expect(err).To(HaveOccurred())
		})

		It("should reject a zero distance", func() {
			err := assemble(disas,
				enc(isa.V6_vaddw, packet.PARSE_NOTEND, []uint8{7, 1, 2}),
				enc(isa.V6_vS32b_new_ai, packet.PARSE_END, []uint8{3, 1}, 0),
			)
			Expect(err).To(HaveOccurred())
		})
	})

	Context("resource limits", func() {
		It("should allow at most two vector memory instructions", func() {
			Expect(assemble(disas,
				enc(isa.V6_vL32b_ai, packet.PARSE_NOTEND, []uint8{1, 2}, 0),
				enc(isa.V6_vL32b_ai, packet.PARSE_NOTEND, []uint8{3, 4}, 0),
				enc(isa.V6_vS32b_ai, packet.PARSE_END, []uint8{5, 6}, 0),
			)).To(Succeed())
			Expect(p.HasHVX).To(BeTrue())

			Expect(isa.VectorChecker{}.CheckExtension(p, true)).To(Succeed())
			Expect(isa.VectorChecker{}.CheckExtension(p, false)).To(MatchError(ContainSubstring("3 vector memory")))
		})

		It("should allow at most one vector store", func() {
			Expect(assemble(disas,
				enc(isa.V6_vS32b_ai, packet.PARSE_NOTEND, []uint8{1, 2}, 0),
				enc(isa.V6_vS32b_ai, packet.PARSE_END, []uint8{3, 4}, 0),
			)).To(Succeed())

			Expect(isa.VectorChecker{}.CheckExtension(p, true)).To(Succeed())
			Expect(isa.VectorChecker{}.CheckExtension(p, false)).To(MatchError(ContainSubstring("2 vector stores")))
		})

		It("should accept a load and a store", func() {
			Expect(assemble(exec,
				enc(isa.V6_vL32b_ai, packet.PARSE_NOTEND, []uint8{1, 2}, 0),
				enc(isa.V6_vS32b_ai, packet.PARSE_END, []uint8{3, 4}, 0),
			)).To(Succeed())
			Expect(p.HasHVX).To(BeTrue())
		})
	})
})

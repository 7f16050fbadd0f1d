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

// destination fields a new-value producer may write, in order of preference
var _DestFields = [...]byte{'d', 'x', 'e', 'y'}

// ResolveNewValues links every new-value consumer to the instruction that
// produces its operand, and rewrites the operand to the producer's
// destination register.
//
// The consumer's N field encodes a distance: bit 0 selects the odd/even
// half of a pair and is dropped, the rest counts non-extender instructions
// backwards from the consumer.
type ResolveNewValues struct{}

func (self ResolveNewValues) Apply(p *Packet, ctx *Context) error {
	for i := 1; i < p.count; i++ {
		insn := p.Insn(i)
		if !ctx.attr(insn, A_DOTNEWVALUE) || ctx.attr(insn, A_EXTENSION) || ctx.attr(insn, A_IT_EXTENDER) {
			continue
		}

		/* stores carry the value in Nt, jumps compare Ns */
		field := byte('s')
		if ctx.attr(insn, A_STORE) {
			field = 't'
		}
		use := ctx.Table.RegField(insn.Opcode, field)
		if use < 0 {
			return errorf(C_newvalue_range, i, "%s has no N%c field", ctx.name(insn), field)
		}

		/* find the producer */
		def, err := self.producer(p, ctx, i, int(insn.Regno[use]>>1))
		if err != nil {
			return err
		}
		src := p.Insn(def)
		reg := self.dest(ctx, src)
		if reg < 0 {
			return errorf(C_newvalue_nodest, i, "producer %s", ctx.name(src))
		}

		/* patch the consumer, remember the producer slot for predicated cancellation */
		insn.Regno[use] = src.Regno[reg]
		insn.Producer = int8(p.ID(def))
		insn.ProducerSlot = src.Slot
	}
	return nil
}

func (ResolveNewValues) producer(p *Packet, ctx *Context, i int, dist int) (int, error) {
	if dist == 0 {
		return -1, errorf(C_newvalue_range, i, "zero distance")
	}
	j := i
	for n := 0; n < dist; n++ {
		for j--; j >= 0 && ctx.attr(p.Insn(j), A_IT_EXTENDER); j-- {
		}
		if j < 0 {
			return -1, errorf(C_newvalue_range, i, "distance %d", dist)
		}
	}
	return j, nil
}

func (ResolveNewValues) dest(ctx *Context, insn *Instruction) int {
	for _, f := range _DestFields {
		if (f == 'd' || f == 'e') && ctx.attr(insn, A_WRITES_PRED_REG) {
			continue
		}
		if r := ctx.Table.RegField(insn.Opcode, f); r >= 0 {
			return r
		}
	}
	return -1
}

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

const (
	_ExtenderLowBits = 6
	_ExtenderLowMask = 1<<_ExtenderLowBits - 1
)

// ApplyExtenders merges every constant extender payload into the immediate
// of the instruction that follows it.
type ApplyExtenders struct{}

func (ApplyExtenders) Apply(p *Packet, ctx *Context) error {
	for i := 0; i < p.count; i++ {
		ext := p.Insn(i)
		if !ctx.attr(ext, A_IT_EXTENDER) {
			continue
		}

		/* the extender must be followed by exactly one extendable instruction */
		if i == p.count-1 {
			return errorf(C_extender_last, i, "")
		}
		insn := p.Insn(i + 1)
		if ctx.attr(insn, A_IT_EXTENDER) {
			return errorf(C_extender_twice, i+1, "")
		}
		if !ctx.attr(insn, A_EXTENDABLE) {
			return errorf(C_extender_target, i+1, "%s", ctx.name(insn))
		}

		/* only the low bits of the base immediate survive */
		n := ctx.Table.ExtendedImmediate(insn.Opcode)
		if n < 0 || n >= MaxImms {
			return errorf(C_extender_target, i+1, "%s has no immediate %d", ctx.name(insn), n)
		}
		insn.Immed[n] = ext.Immed[0] | (insn.Immed[n] & _ExtenderLowMask)
		insn.Extended = true
		insn.ExtImm = int8(n)
		p.HasPayload = true
	}
	return nil
}

// RemoveExtenders drops the extender pseudo-instructions once applied.
type RemoveExtenders struct{}

func (RemoveExtenders) Apply(p *Packet, ctx *Context) error {
	p.filter(func(insn *Instruction) bool {
		return !ctx.attr(insn, A_IT_EXTENDER)
	})
	return nil
}

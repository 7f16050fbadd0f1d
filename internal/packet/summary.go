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

// canJump tells whether op changes control flow. Hint jumps are marked as
// jumps but never redirect anything.
func canJump(ctx *Context, insn *Instruction) bool {
	if ctx.attr(insn, A_HINTJR) {
		return false
	}
	return ctx.attr(insn, A_JUMP) || ctx.attr(insn, A_CALL) || ctx.attr(insn, A_IMPLICIT_COF)
}

// Summary computes the per-instruction and per-packet flags code generation
// keys off. Compare halves are skipped, their jump half speaks for both.
type Summary struct{}

func (self Summary) Apply(p *Packet, ctx *Context) error {
	var loads int
	var stores int

	for i := 0; i < p.count; i++ {
		insn := p.Insn(i)
		if insn.Part1 {
			continue
		}

		switch {
		case ctx.attr(insn, A_ROPS_3):
			p.NumROps += 3
		case ctx.attr(insn, A_ROPS_2):
			p.NumROps += 2
		default:
			p.NumROps++
		}
		if insn.Extended {
			p.NumROps += 2
		}

		self.memory(p, ctx, insn)
		self.branches(p, ctx, insn)

		/* loop ends carry no slot of their own */
		if insn.IsEndloop {
			continue
		}
		if insn.Slot >= 0 && insn.Slot < MaxSlots {
			p.SlotValid[insn.Slot] = true
		}
		if insn.IsStore {
			stores++
		} else if insn.IsLoad {
			loads++
		}
	}

	switch {
	case stores == 2:
		p.DualStore = true
	case loads == 2:
		p.DualLoad = true
	case loads == 1 && stores == 1:
		p.LoadAndStore = true
	case loads == 1:
		p.SingleLoad = true
	case stores == 1:
		p.SingleStore = true
	}
	return nil
}

func (Summary) memory(p *Packet, ctx *Context, insn *Instruction) {
	at := func(a Attrib) bool { return ctx.attr(insn, a) }

	if at(A_MEMOP) || at(A_NVSTORE) {
		p.HasMemopOrNVStore = true
	}
	if at(A_CACHEOP) {
		p.HasCacheOp = true
		p.HasDCZeroA = p.HasDCZeroA || at(A_DCZEROA)
	}
	if at(A_DEALLOCRET) {
		p.HasDeallocReturn = true
	}
	if at(A_FPOP) {
		p.HasFPOp = true
	}

	/* vector memory does not go through the scalar store buffer */
	if at(A_STORE) {
		insn.IsStore = true
		if !at(A_VMEM) {
			if insn.Slot == 0 {
				p.HasStoreS0 = true
			} else if insn.Slot != SlotNone {
				p.HasStoreS1 = true
			}
		}
	}
	if at(A_LOAD) {
		insn.IsLoad = true
		if !at(A_VMEM) {
			if insn.Slot == 0 {
				p.HasLoadS0 = true
			} else if insn.Slot != SlotNone {
				p.HasLoadS1 = true
			}
		}
	}

	insn.IsMemop = at(A_MEMOP)
	insn.IsDealloc = at(A_DEALLOCRET) || at(A_DEALLOCFRAME)
}

func (Summary) branches(p *Packet, ctx *Context, insn *Instruction) {
	at := func(a Attrib) bool { return ctx.attr(insn, a) }

	p.HasCall = p.HasCall || at(A_CALL)
	p.HasJumpr = p.HasJumpr || (at(A_INDIRECT) && !at(A_HINTJR))
	if at(A_CJUMP) {
		p.HasCJump = true
		p.HasCJumpDotNew = p.HasCJumpDotNew || at(A_DOTNEW)
		p.HasCJumpDotOld = p.HasCJumpDotOld || at(A_DOTOLD)
		p.HasCJumpNewVal = p.HasCJumpNewVal || at(A_DOTNEWVALUE)
	}

	/* the first control flow change is ordinary, any later one is a dual jump */
	if canJump(ctx, insn) {
		if p.HasCOF {
			p.HasDualJump = true
			insn.Is2ndJump = true
		}
		p.HasCOF = true
	}

	insn.IsEndloop = ctx.endsLoop(insn)
	if !insn.IsEndloop {
		return
	}

	/* and the same for loop ends */
	if p.HasEndloop {
		p.HasDualEndloop = true
	}
	p.HasEndloop = true
	p.HasCOF = true

	l0 := at(A_HWLOOP0_END)
	l1 := at(A_HWLOOP1_END)
	p.HasEndloop0 = p.HasEndloop0 || (l0 && !l1)
	p.HasEndloop1 = p.HasEndloop1 || (l1 && !l0)
	p.HasEndloop01 = p.HasEndloop01 || (l0 && l1)
}

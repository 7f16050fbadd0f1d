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

// ValidSlots computes the legal slots of an instruction: the class default
// unless one of the named exceptions applies.
func ValidSlots(tab OpTable, insn *Instruction) SlotMask {
	op := insn.Opcode
	at := func(a Attrib) bool { return tab.Attrib(op, a) }

	switch {
	case at(A_EXTENSION):
		return tab.ClassSlots(op, insn.IClass)
	case at(A_ICOP):
		return SLOTS_2
	case at(A_RESTRICT_SLOT0ONLY):
		return SLOTS_0
	case at(A_RESTRICT_SLOT1ONLY):
		return SLOTS_1
	case at(A_RESTRICT_SLOT2ONLY):
		return SLOTS_2
	case at(A_RESTRICT_SLOT3ONLY):
		return SLOTS_3
	case at(A_COF) && at(A_INDIRECT) && !at(A_MEMLIKE) && !at(A_MEMLIKE_PACKET_RULES):
		return SLOTS_2
	case at(A_RESTRICT_NOSLOT1):
		return SLOTS_0
	case at(A_V2LDST):
		return SLOTS_01
	case at(A_CRSLOT23):
		return SLOTS_23
	case at(A_RESTRICT_PREFERSLOT0):
		return SLOTS_0
	case at(A_SUBINSN):
		return SLOTS_01
	case at(A_CALL), at(A_JUMPSET):
		return SLOTS_23
	default:
		return tab.ClassSlots(op, insn.IClass)
	}
}

// AssignSlots gives every instruction a unique dispatch slot. Slots are
// handed out in decreasing order along the encoding, then the memory,
// duplex and empty-slot-0 exceptions are applied.
type AssignSlots struct{}

func (self AssignSlots) Apply(p *Packet, ctx *Context) error {
	if err := self.assign(p, ctx); err != nil {
		return err
	}
	self.fixMemory(p, ctx)
	self.fixDuplex(p, ctx)
	self.fixSlot1(p, ctx)
	return self.verify(p, ctx)
}

func (AssignSlots) assign(p *Packet, ctx *Context) error {
	slot := MaxSlots - 1
	for i := 0; i < p.count; i++ {
		insn := p.Insn(i)

		/* loop ends alias slot 0 and take no part in the count down */
		if insn.LoopEnd {
			insn.Slot = 0
			continue
		}

		/* count down until a legal slot is found */
		valid := ValidSlots(ctx.Table, insn)
		for !valid.Has(slot) {
			if slot == 0 {
				return errorf(C_slot_unmappable, i, "%s needs slots %s", ctx.name(insn), valid)
			}
			slot--
		}

		insn.Slot = int8(slot)
		if slot > 0 {
			slot--
		}
	}
	return nil
}

func (AssignSlots) isMem(ctx *Context, insn *Instruction) bool {
	return ctx.attr(insn, A_MEMLIKE) || ctx.attr(insn, A_MEMLIKE_PACKET_RULES)
}

// fixMemory moves the last memory instruction to slot 0 and the others to
// slot 1.
func (self AssignSlots) fixMemory(p *Packet, ctx *Context) {
	hit := false
	for i := p.count - 1; i >= 0; i-- {
		if insn := p.Insn(i); self.isMem(ctx, insn) {
			if !hit {
				hit = true
				insn.Slot = 0
			} else {
				insn.Slot = 1
			}
		}
	}
}

// fixDuplex puts the halves of a duplex word in slots 1 and 0.
func (AssignSlots) fixDuplex(p *Packet, ctx *Context) {
	hit := false
	for i := p.count - 1; i >= 0; i-- {
		if insn := p.Insn(i); ctx.attr(insn, A_SUBINSN) {
			if !hit {
				hit = true
				insn.Slot = 0
			} else {
				insn.Slot = 1
			}
		}
	}
}

// fixSlot1 slides a lone slot 1 instruction down to slot 0, slot 1 is never
// occupied while slot 0 is empty.
func (AssignSlots) fixSlot1(p *Packet, ctx *Context) {
	var slot0 bool
	var slot1 = -1

	for i := p.count - 1; i >= 0; i-- {
		insn := p.Insn(i)
		if insn.Slot == 0 && !insn.LoopEnd {
			slot0 = true
		}
		if insn.Slot == 1 {
			slot1 = i
		}
	}
	if !slot0 && slot1 >= 0 {
		p.Insn(slot1).Slot = 0
	}
}

func (AssignSlots) verify(p *Packet, ctx *Context) error {
	var used [MaxSlots]int
	for i := range used {
		used[i] = -1
	}
	for i := 0; i < p.count; i++ {
		insn := p.Insn(i)
		if insn.LoopEnd {
			continue
		}
		if insn.Slot < 0 || insn.Slot >= MaxSlots {
			return errorf(C_slot_unmappable, i, "%s has no slot", ctx.name(insn))
		}
		if j := used[insn.Slot]; j >= 0 {
			return errorf(C_slot_conflict, i, "%s and %s both in slot %d", ctx.name(p.Insn(j)), ctx.name(insn), insn.Slot)
		}
		used[insn.Slot] = i
	}
	return nil
}

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

// ExtensionChecks hands packets with vector instructions to the extension
// checker. Any complaint is fatal for the packet.
type ExtensionChecks struct{}

func (ExtensionChecks) Apply(p *Packet, ctx *Context) error {
	if !p.HasHVX || ctx.Ext == nil {
		return nil
	}
	if err := ctx.Ext.CheckExtension(p, ctx.DisasOnly); err != nil {
		return &Error{Cause: C_extension, Insn: -1, Err: err}
	}
	return nil
}

// AssemblerChecks rejects packets an assembler would refuse to build but
// which still map onto slots.
type AssemblerChecks struct{}

func (self AssemblerChecks) Apply(p *Packet, ctx *Context) error {
	for _, fn := range []func(*Packet, *Context) error{
		self.checkBranching,
		self.checkSolo,
		self.checkSlotRestrictions,
		self.checkLatePred,
	} {
		if err := fn(p, ctx); err != nil {
			return err
		}
	}
	return nil
}

// checkBranching allows a single change of flow, or a relaxed pair, and at
// most two branch adders.
func (AssemblerChecks) checkBranching(p *Packet, ctx *Context) error {
	var cofs int
	var adders int
	var relax1 bool
	var relax2 bool

	for i := 0; i < p.count; i++ {
		insn := p.Insn(i)
		if ctx.attr(insn, A_BRANCHADDER) {
			adders++
		}
		if ctx.attr(insn, A_COF) {
			cofs++
		}
		if !relax1 && ctx.attr(insn, A_RELAX_COF_1ST) {
			relax1 = true
		} else if relax1 && ctx.attr(insn, A_RELAX_COF_2ND) {
			relax2 = true
		}
	}

	switch {
	case cofs == 2 && relax1 && relax2:
		return nil
	case adders > 2:
		return errorf(C_assembler_rule, -1, "%d branch adders", adders)
	case cofs > 1:
		return errorf(C_assembler_rule, -1, "%d changes of flow", cofs)
	default:
		return nil
	}
}

func (AssemblerChecks) checkSolo(p *Packet, ctx *Context) error {
	for i := 0; i < p.count; i++ {
		if insn := p.Insn(i); ctx.attr(insn, A_RESTRICT_NOPACKET) && p.count > 1 {
			return errorf(C_assembler_rule, i, "%s must be alone in its packet", ctx.name(insn))
		}
	}
	return nil
}

func (AssemblerChecks) checkSlotRestrictions(p *Packet, ctx *Context) error {
	var slot1Store bool
	var slot0Load bool
	var slot2Mpy bool

	for i := 0; i < p.count; i++ {
		insn := p.Insn(i)
		slot1Store = slot1Store || (insn.Slot == 1 && ctx.attr(insn, A_STORE))
		slot0Load = slot0Load || (insn.Slot == 0 && ctx.attr(insn, A_LOAD))
		slot2Mpy = slot2Mpy || (insn.Slot == 2 && ctx.attr(insn, A_MPY))
	}

	for i := 0; i < p.count; i++ {
		insn := p.Insn(i)
		switch {
		case slot1Store && ctx.attr(insn, A_RESTRICT_NOSLOT1_STORE):
			return errorf(C_assembler_rule, i, "slot 1 store not allowed with %s", ctx.name(insn))
		case slot0Load && ctx.attr(insn, A_RESTRICT_NOSLOT0_LOAD):
			return errorf(C_assembler_rule, i, "slot 0 load not allowed with %s", ctx.name(insn))
		case slot2Mpy && ctx.attr(insn, A_RESTRICT_NOSLOT2_MPY):
			return errorf(C_assembler_rule, i, "slot 2 multiply not allowed with %s", ctx.name(insn))
		}
	}
	return nil
}

// checkLatePred rejects .new reads of a predicate that is generated too late
// in the pipeline to be forwarded.
func (AssemblerChecks) checkLatePred(p *Packet, ctx *Context) error {
	var late uint8
	var reads uint8

	for i := 0; i < p.count; i++ {
		insn := p.Insn(i)
		at := func(a Attrib) bool { return ctx.attr(insn, a) }
		preds := func(fields string) (m uint8) {
			for j := 0; j < len(fields); j++ {
				if r := ctx.Table.PredField(insn.Opcode, fields[j]); r >= 0 {
					m |= 1 << (insn.Regno[r] & 3)
				}
			}
			return m
		}

		if at(A_RESTRICT_LATEPRED) {
			switch {
			case at(A_IMPLICIT_WRITES_P0):
				late |= 1
			case at(A_IMPLICIT_WRITES_P1):
				late |= 2
			case at(A_IMPLICIT_WRITES_P2):
				late |= 4
			case at(A_IMPLICIT_WRITES_P3):
				if !at(A_HWLOOP0_END) {
					late |= 8
				}
			default:
				late |= preds("de")
			}
		}

		if at(A_DOTNEW) {
			if at(A_IMPLICIT_READS_P0) {
				reads |= 1
			}
			if at(A_IMPLICIT_READS_P1) {
				reads |= 2
			}
			reads |= preds("stuv")
		}
	}

	if late&reads != 0 {
		return errorf(C_assembler_rule, -1, ".new read of late predicate (reads %#x, late %#x)", reads, late)
	}
	return nil
}

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

// Context carries what every pass may look at besides the packet itself.
type Context struct {
	Table     OpTable
	Ext       ExtChecker
	DisasOnly bool
	Strict    bool
}

func (self *Context) attr(insn *Instruction, a Attrib) bool {
	return self.Table.Attrib(insn.Opcode, a)
}

func (self *Context) endsLoop(insn *Instruction) bool {
	return insn.LoopEnd || self.attr(insn, A_HWLOOP0_END) || self.attr(insn, A_HWLOOP1_END)
}

func (self *Context) name(insn *Instruction) string {
	return self.Table.Name(insn.Opcode)
}

type Pass interface {
	Apply(*Packet, *Context) error
}

type _PassDescriptor struct {
	pass   Pass
	desc   string
	exec   bool // skipped when only disassembling
	strict bool // only in strict mode
}

var _passes = [...]_PassDescriptor{
	{desc: "Constant Extender Application", pass: new(ApplyExtenders)},
	{desc: "Constant Extender Removal", pass: new(RemoveExtenders), exec: true},
	{desc: "Slot Assignment", pass: new(AssignSlots), exec: true},
	{desc: "New Value Resolution", pass: new(ResolveNewValues)},
	{desc: "Vector Extension Checks", pass: new(ExtensionChecks)},
	{desc: "Assembler Checks", pass: new(AssemblerChecks), exec: true, strict: true},
	{desc: "Shuffle for Execution", pass: new(Shuffle), exec: true},
	{desc: "Compare-Jump Splitting", pass: new(SplitCmpJump), exec: true},
	{desc: "Summary Flags", pass: new(Summary)},
}

func schedulePacket(p *Packet, ctx *Context) error {
	for _, d := range _passes {
		if d.exec && ctx.DisasOnly {
			continue
		}
		if d.strict && !ctx.Strict {
			continue
		}
		if err := d.pass.Apply(p, ctx); err != nil {
			Logger.WithField("pass", d.desc).Debugf("vliwdec: pass failed at %#08x: %v", p.PC, err)
			return err
		}
	}
	return nil
}

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
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gonum.org/v1/gonum/graph/simple"
)

const (
	MaxWords = 4 // words per packet
	MaxSlots = 4 // dispatch slots
	MaxRegs  = 5 // register operands per instruction
	MaxImms  = 2 // immediate operands per instruction

	// MaxInsns bounds a scheduled packet: four slotted instructions, two
	// split compare halves and one synthesized loop end.
	MaxInsns = 7
)

const (
	// every word may be a duplex, plus one loop end
	_ArenaSize = MaxWords*2 + 1
)

const (
	SlotNone = -1
	NoID     = -1
)

// Instruction is a decoded instruction or a micro-op produced by splitting.
type Instruction struct {
	Opcode   Opcode
	IClass   uint8
	Encoding uint32
	Regno    [MaxRegs]uint8
	Immed    [MaxImms]uint32

	Slot     int8 // dispatch slot, SlotNone until assigned
	Part1    bool // compare half of a split compare-and-jump
	Extended bool // immediate widened by a constant extender
	ExtImm   int8 // which immediate the extender was merged into
	LoopEnd  bool // synthesized from parse bits

	// new-value link, arena ID of the producing instruction
	Producer     int8
	ProducerSlot int8

	IsStore   bool
	IsLoad    bool
	IsMemop   bool
	IsDealloc bool
	IsEndloop bool
	Is2ndJump bool
}

func (self *Instruction) init() {
	self.Slot = SlotNone
	self.ExtImm = -1
	self.Producer = NoID
	self.ProducerSlot = SlotNone
}

// Packet is a group of instructions dispatched atomically.
//
// Instructions live in an arena and never move once decoded; the execution
// order is a permutation of arena IDs. Removing an instruction drops its ID
// from the order, splitting appends a new arena entry.
type Packet struct {
	PC   uint32
	Size int // encoded size in bytes

	arena [_ArenaSize]Instruction
	nid   int
	order [_ArenaSize]int8
	count int

	HasCOF            bool
	HasDualJump       bool
	HasCall           bool
	HasJumpr          bool
	HasCJump          bool
	HasCJumpDotNew    bool
	HasCJumpDotOld    bool
	HasCJumpNewVal    bool
	HasEndloop        bool
	HasEndloop0       bool
	HasEndloop1       bool
	HasEndloop01      bool
	HasDualEndloop    bool
	HasCacheOp        bool
	HasDCZeroA        bool
	HasDeallocReturn  bool
	HasMemopOrNVStore bool
	HasStoreS0        bool
	HasStoreS1        bool
	HasLoadS0         bool
	HasLoadS1         bool
	HasHVX            bool
	HasPayload        bool
	HasFPOp           bool

	DualStore    bool
	DualLoad     bool
	LoadAndStore bool
	SingleLoad   bool
	SingleStore  bool

	SlotValid [MaxSlots]bool
	NumROps   int
}

// Len returns the number of instructions in execution order.
func (self *Packet) Len() int {
	return self.count
}

// Insn returns the i-th instruction in execution order.
func (self *Packet) Insn(i int) *Instruction {
	return &self.arena[self.order[i]]
}

// ID returns the arena ID of the i-th instruction.
func (self *Packet) ID(i int) int {
	return int(self.order[i])
}

// ByID returns the instruction with arena ID id.
func (self *Packet) ByID(id int) *Instruction {
	return &self.arena[id]
}

// Position returns where arena ID id sits in execution order, or -1 if the
// instruction was removed.
func (self *Packet) Position(id int) int {
	for i := 0; i < self.count; i++ {
		if int(self.order[i]) == id {
			return i
		}
	}
	return -1
}

// Insns returns the instructions in execution order.
func (self *Packet) Insns() []*Instruction {
	ret := make([]*Instruction, self.count)
	for i := range ret {
		ret[i] = self.Insn(i)
	}
	return ret
}

func (self *Packet) alloc() (int, *Instruction) {
	if self.nid >= _ArenaSize {
		panic("vliwdec: packet arena overflow")
	}
	id := self.nid
	self.nid++
	self.arena[id] = Instruction{}
	self.arena[id].init()
	return id, &self.arena[id]
}

func (self *Packet) push(id int) {
	self.order[self.count] = int8(id)
	self.count++
}

// append allocates a new instruction at the end of execution order.
func (self *Packet) append() *Instruction {
	id, insn := self.alloc()
	self.push(id)
	return insn
}

// sendTo moves the instruction at position from to position to, shifting
// everything in between by one.
func (self *Packet) sendTo(from int, to int) {
	if from == to {
		return
	}
	v := self.order[from]
	if from < to {
		copy(self.order[from:to], self.order[from+1:to+1])
	} else {
		copy(self.order[to+1:from+1], self.order[to:from])
	}
	self.order[to] = v
}

// filter keeps the instructions for which keep returns true.
func (self *Packet) filter(keep func(*Instruction) bool) {
	n := 0
	for i := 0; i < self.count; i++ {
		if keep(&self.arena[self.order[i]]) {
			self.order[n] = self.order[i]
			n++
		}
	}
	self.count = n
}

// Deps returns the new-value dependencies as a graph over arena IDs, with an
// edge from every producer to its consumer.
func (self *Packet) Deps() *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	for i := 0; i < self.count; i++ {
		g.AddNode(simple.Node(self.order[i]))
	}
	for i := 0; i < self.count; i++ {
		id := self.order[i]
		p := self.arena[id].Producer
		if p == NoID || g.Node(int64(p)) == nil {
			continue
		}
		if !g.HasEdgeFromTo(int64(p), int64(id)) {
			g.SetEdge(g.NewEdge(simple.Node(p), simple.Node(id)))
		}
	}
	return g
}

// Dump renders the packet for diagnostics.
func (self *Packet) Dump() string {
	cfg := spew.ConfigState{
		Indent:                  "    ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	return cfg.Sdump(self.Insns())
}

// Format renders the packet in execution order using the names from tab.
func (self *Packet) Format(tab OpTable) string {
	var sb strings.Builder
	sb.WriteString("{")
	for i := 0; i < self.count; i++ {
		insn := self.Insn(i)
		sb.WriteString(fmt.Sprintf(" %s@%d", tab.Name(insn.Opcode), insn.Slot))
		if insn.Part1 {
			sb.WriteString(".cmp")
		}
		if i != self.count-1 {
			sb.WriteString(";")
		}
	}
	sb.WriteString(" }")
	return sb.String()
}

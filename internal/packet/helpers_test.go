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
package packet_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/cloudwego/vliwdec/internal/isa"
	. "github.com/cloudwego/vliwdec/internal/packet"
)

const (
	notEnd  = PARSE_NOTEND
	end     = PARSE_END
	loopEnd = PARSE_LOOPEND
)

var (
	_ISA    = isa.New()
	_Exec   = Config{MaxWords: MaxWords}
	_Disas  = Config{MaxWords: MaxWords, DisasOnly: true}
	_Strict = Config{MaxWords: MaxWords, Strict: true}
)

func word(op Opcode, parse uint32, regs []uint8, imms ...uint32) uint32 {
	return isa.Encode(op, parse, isa.Operands{Regs: regs, Imms: imms})
}

func regs(v ...uint8) []uint8 {
	return v
}

func decodeWith(desc *ISA, cfg Config, words ...uint32) (*Packet, error) {
	p := new(Packet)
	_, err := Assemble(desc, cfg, 0x1000, words, p)
	return p, err
}

func mustDecode(t *testing.T, cfg Config, words ...uint32) *Packet {
	t.Helper()
	p := new(Packet)
	n, err := Assemble(_ISA, cfg, 0x1000, words, p)
	require.NoError(t, err, spew.Sdump(words))
	require.Equal(t, len(words), n)
	return p
}

func mustFail(t *testing.T, cfg Config, words ...uint32) Cause {
	t.Helper()
	var e *Error
	p := new(Packet)
	n, err := Assemble(_ISA, cfg, 0x1000, words, p)
	require.Error(t, err)
	require.Zero(t, n)
	require.ErrorAs(t, err, &e)
	return e.Cause
}

func opcodes(p *Packet) []Opcode {
	ret := make([]Opcode, p.Len())
	for i := range ret {
		ret[i] = p.Insn(i).Opcode
	}
	return ret
}

func slots(p *Packet) []int8 {
	ret := make([]int8, p.Len())
	for i := range ret {
		ret[i] = p.Insn(i).Slot
	}
	return ret
}

// checkInvariants asserts what must hold for every packet decoded for
// execution.
func checkInvariants(t *testing.T, p *Packet) {
	t.Helper()
	var used [MaxSlots]bool

	require.LessOrEqual(t, p.Len(), MaxInsns)
	for i := 0; i < p.Len(); i++ {
		insn := p.Insn(i)
		if insn.LoopEnd || insn.Part1 {
			continue
		}
		require.GreaterOrEqual(t, insn.Slot, int8(0), p.Dump())
		require.False(t, used[insn.Slot], "slot %d used twice: %s", insn.Slot, p.Dump())
		used[insn.Slot] = true
	}

	/* producers precede consumers */
	for it := p.Deps().Edges(); it.Next(); {
		e := it.Edge()
		require.Less(t, p.Position(int(e.From().ID())), p.Position(int(e.To().ID())), p.Dump())
	}
}

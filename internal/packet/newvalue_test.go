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

	"github.com/stretchr/testify/require"

	"github.com/cloudwego/vliwdec/internal/isa"
	. "github.com/cloudwego/vliwdec/internal/packet"
)

func TestResolveNewValues_Store(t *testing.T) {
	p := mustDecode(t, _Exec,
		word(isa.A2_tfrsi, notEnd, regs(1), 7),
		word(isa.S2_storerinew_io, end, regs(29, 2), 0),
	)

	use := isa.Table{}.RegField(isa.S2_storerinew_io, 't')
	src := p.Insn(0)
	dst := p.Insn(1)
	require.Equal(t, isa.S2_storerinew_io, dst.Opcode)
	require.Equal(t, uint8(1), dst.Regno[use])
	require.Equal(t, int8(p.ID(0)), dst.Producer)
	require.Equal(t, src.Slot, dst.ProducerSlot)
	require.True(t, p.HasMemopOrNVStore)

	/* the link shows up in the dependency graph */
	g := p.Deps()
	require.Equal(t, 1, g.Edges().Len())
	require.True(t, g.HasEdgeFromTo(int64(p.ID(0)), int64(p.ID(1))))
	checkInvariants(t, p)
}

func TestResolveNewValues_Jump(t *testing.T) {
	p := mustDecode(t, _Exec,
		word(isa.A2_add, notEnd, regs(5, 1, 2)),
		word(isa.J4_cmpeq_t_jumpnv_t, end, regs(2, 6), 0x20),
	)
	require.Equal(t, uint8(5), p.Insn(1).Regno[0])
	require.Equal(t, []int8{3, 0}, slots(p))
	require.True(t, p.HasCJumpNewVal)
	require.True(t, p.HasCOF)
	checkInvariants(t, p)
}

func TestResolveNewValues_SkipsExtenders(t *testing.T) {
	words := []uint32{
		word(isa.A2_tfrsi, notEnd, regs(1), 7),
		isa.Extender(0x4000, notEnd),
		word(isa.S2_storerinew_io, end, regs(29, 2), 0),
	}
	use := isa.Table{}.RegField(isa.S2_storerinew_io, 't')

	p := mustDecode(t, _Disas, words...)
	require.Equal(t, 3, p.Len())
	require.Equal(t, uint8(1), p.Insn(2).Regno[use])
	require.Equal(t, int8(p.ID(0)), p.Insn(2).Producer)

	p = mustDecode(t, _Exec, words...)
	require.Equal(t, 2, p.Len())
	require.Equal(t, uint8(1), p.Insn(1).Regno[use])
	require.True(t, p.Insn(1).Extended)
	require.Equal(t, uint32(0x4000), p.Insn(1).Immed[0])
}

func TestResolveNewValues_FirstIsIgnored(t *testing.T) {
	p := mustDecode(t, _Exec, word(isa.S2_storerinew_io, end, regs(29, 2), 0))
	require.Equal(t, int8(NoID), p.Insn(0).Producer)
	require.Equal(t, uint8(2), p.Insn(0).Regno[1])
}

func TestResolveNewValues_Malformed(t *testing.T) {
	tfr := word(isa.A2_tfrsi, notEnd, regs(1), 7)
	require.Equal(t, C_newvalue_range, mustFail(t, _Exec, tfr, word(isa.S2_storerinew_io, end, regs(29, 1), 0)))
	require.Equal(t, C_newvalue_range, mustFail(t, _Exec, tfr, word(isa.S2_storerinew_io, end, regs(29, 4), 0)))
	require.Equal(t, C_newvalue_range, mustFail(t, _Disas, tfr, word(isa.S2_storerinew_io, end, regs(29, 4), 0)))
	require.Equal(t, C_newvalue_nodest, mustFail(t, _Exec,
		word(isa.S2_storeri_io, notEnd, regs(29, 3), 1),
		word(isa.S2_storerinew_io, end, regs(29, 2), 0),
	))
}

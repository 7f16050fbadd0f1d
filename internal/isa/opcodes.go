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

package isa

import (
	. "github.com/cloudwego/vliwdec/internal/packet"
)

const (
	ILLEGAL Opcode = iota
	A4_ext
	A2_nop
	A2_add
	A2_sub
	A2_addi
	A2_tfrsi
	A2_tfr
	A2_tfrrcr
	C2_cmpeq
	C2_cmpeqi
	C2_and
	M2_mpyi
	F2_sfadd
	S2_asl_r_r
	S2_cabacdecbin
	L2_loadri_io
	L2_loadrb_io
	L2_loadrh_io
	L2_deallocframe
	L4_return
	L4_add_memopw_io
	S2_storeri_io
	S2_storerb_io
	S2_storerinew_io
	S2_storew_locked
	S2_allocframe
	Y2_dczeroa
	Y2_dccleana
	Y2_isync
	J2_jump
	J2_jumpt
	J2_jumptnew
	J2_call
	J2_jumpr
	J2_callr
	J4_hintjumpr
	J2_trap0
	J2_rte
	J2_pause
	J2_loop0i
	J2_ploop1si
	J4_cmpeqi_tp0_jump_nt
	J4_cmpeqi_tp1_jump_nt
	J4_cmpeq_t_jumpnv_t
	J2_endloop0
	J2_endloop1
	J2_endloop01
	V6_vaddw
	V6_vL32b_ai
	V6_vS32b_ai
	V6_vS32b_new_ai
	SA1_addi
	SA1_seti
	SA1_tfr
	SA1_cmpeqi
	SL1_loadri_io
	SS1_storew_io
	SL2_jumpr31
	OP_LAST
)

// Field is a bit field of an encoding word.
type Field struct {
	Lo    uint8
	Width uint8
	Sub   bool // 4-bit duplex register, r0-r7 and r16-r23
}

func (self Field) Get(w uint32) uint32 {
	v := (w >> self.Lo) & (1<<self.Width - 1)
	if self.Sub && v >= 8 {
		v += 8
	}
	return v
}

func (self Field) Put(v uint32) uint32 {
	if self.Sub && v >= 16 {
		v -= 8
	}
	return (v & (1<<self.Width - 1)) << self.Lo
}

var (
	fRA = Field{Lo: 19, Width: 5}
	fRB = Field{Lo: 0, Width: 5}
	fRC = Field{Lo: 8, Width: 5}
	fP  = Field{Lo: 16, Width: 3}
	fI9 = Field{Lo: 5, Width: 9}
	fI5 = Field{Lo: 19, Width: 5}
	sRA = Field{Lo: 0, Width: 4, Sub: true}
	sRB = Field{Lo: 4, Width: 4, Sub: true}
	sI5 = Field{Lo: 4, Width: 5}
	sI2 = Field{Lo: 4, Width: 2}
)

// OpInfo describes one opcode: its encoding, operands and attributes.
//
// Regs holds one letter per register operand, in operand order, and RegF
// the bit fields they are taken from. Preds lists the letters that name
// predicate registers. Minor is -1 for opcodes that have no encoding of
// their own.
type OpInfo struct {
	Name   string
	IClass uint8
	Minor  int8
	Attrs  AttribSet
	Regs   string
	Preds  string
	RegF   []Field
	ImmF   []Field
	Ext    int8
	Slots  SlotMask
}

func fs(f ...Field) []Field {
	return f
}

var _OpInfo = [OP_LAST]OpInfo{
	ILLEGAL: {Name: "illegal", IClass: ICLASS_ALU32_2op, Minor: -1, Ext: -1},
	A4_ext: {
		Name:   "immext",
		IClass: ICLASS_EXTENDER,
		Minor:  -1,
		Attrs:  Attribs(A_IT_EXTENDER),
		Ext:    -1,
	},
	A2_nop: {
		Name:   "nop",
		IClass: ICLASS_ALU32_2op,
		Minor:  1,
		Attrs:  Attribs(A_IT_NOP),
		Ext:    -1,
	},
	A2_add: {
		Name:   "add",
		IClass: ICLASS_ALU32_3op,
		Minor:  0,
		Regs:   "dst",
		RegF:   fs(fRB, fRA, fRC),
		Ext:    -1,
	},
	A2_sub: {
		Name:   "sub",
		IClass: ICLASS_ALU32_3op,
		Minor:  2,
		Regs:   "dts",
		RegF:   fs(fRB, fRA, fRC),
		Ext:    -1,
	},
	A2_addi: {
		Name:   "addi",
		IClass: ICLASS_ALU32_ADDI,
		Minor:  0,
		Attrs:  Attribs(A_EXTENDABLE),
		Regs:   "ds",
		RegF:   fs(fRB, fRA),
		ImmF:   fs(fI9),
		Ext:    0,
	},
	A2_tfrsi: {
		Name:   "tfrsi",
		IClass: ICLASS_ALU32_2op,
		Minor:  0,
		Attrs:  Attribs(A_EXTENDABLE),
		Regs:   "d",
		RegF:   fs(fRB),
		ImmF:   fs(fI9),
		Ext:    0,
	},
	A2_tfr: {
		Name:   "tfr",
		IClass: ICLASS_ALU32_2op,
		Minor:  3,
		Regs:   "ds",
		RegF:   fs(fRB, fRA),
		Ext:    -1,
	},
	A2_tfrrcr: {
		Name:   "tfrrcr",
		IClass: ICLASS_CR,
		Minor:  3,
		Regs:   "ds",
		RegF:   fs(fRB, fRA),
		Ext:    -1,
	},
	C2_cmpeq: {
		Name:   "cmpeq",
		IClass: ICLASS_ALU32_3op,
		Minor:  1,
		Attrs:  Attribs(A_WRITES_PRED_REG),
		Regs:   "dst",
		Preds:  "d",
		RegF:   fs(fP, fRA, fRB),
		Ext:    -1,
	},
	C2_cmpeqi: {
		Name:   "cmpeqi",
		IClass: ICLASS_ALU32_2op,
		Minor:  2,
		Attrs:  Attribs(A_WRITES_PRED_REG, A_EXTENDABLE),
		Regs:   "ds",
		Preds:  "d",
		RegF:   fs(fP, fRA),
		ImmF:   fs(fI9),
		Ext:    0,
	},
	C2_and: {
		Name:   "and_pp",
		IClass: ICLASS_CR,
		Minor:  0,
		Attrs:  Attribs(A_WRITES_PRED_REG, A_CRSLOT23),
		Regs:   "dst",
		Preds:  "dst",
		RegF:   fs(fP, fRA, fRB),
		Ext:    -1,
	},
	M2_mpyi: {
		Name:   "mpyi",
		IClass: ICLASS_M,
		Minor:  0,
		Attrs:  Attribs(A_MPY),
		Regs:   "dst",
		RegF:   fs(fRB, fRA, fRC),
		Ext:    -1,
	},
	F2_sfadd: {
		Name:   "sfadd",
		IClass: ICLASS_M,
		Minor:  1,
		Attrs:  Attribs(A_FPOP),
		Regs:   "dst",
		RegF:   fs(fRB, fRA, fRC),
		Ext:    -1,
	},
	S2_asl_r_r: {
		Name:   "asl",
		IClass: ICLASS_S_3op,
		Minor:  0,
		Regs:   "dst",
		RegF:   fs(fRB, fRA, fRC),
		Ext:    -1,
	},
	S2_cabacdecbin: {
		Name:   "decbin",
		IClass: ICLASS_S_3op,
		Minor:  1,
		Attrs:  Attribs(A_IMPLICIT_WRITES_P0, A_RESTRICT_LATEPRED, A_ROPS_2),
		Regs:   "dst",
		RegF:   fs(fRB, fRA, fRC),
		Ext:    -1,
	},
	L2_loadri_io: {
		Name:   "loadri",
		IClass: ICLASS_LD,
		Minor:  0,
		Attrs:  Attribs(A_LOAD, A_MEMLIKE, A_EXTENDABLE),
		Regs:   "ds",
		RegF:   fs(fRB, fRA),
		ImmF:   fs(fI9),
		Ext:    0,
	},
	L2_loadrb_io: {
		Name:   "loadrb",
		IClass: ICLASS_LD,
		Minor:  1,
		Attrs:  Attribs(A_LOAD, A_MEMLIKE, A_EXTENDABLE),
		Regs:   "ds",
		RegF:   fs(fRB, fRA),
		ImmF:   fs(fI9),
		Ext:    0,
	},
	L2_loadrh_io: {
		Name:   "loadrh",
		IClass: ICLASS_V2LDST,
		Minor:  0,
		Attrs:  Attribs(A_LOAD, A_MEMLIKE, A_V2LDST),
		Regs:   "ds",
		RegF:   fs(fRB, fRA),
		ImmF:   fs(fI9),
		Ext:    -1,
	},
	L2_deallocframe: {
		Name:   "deallocframe",
		IClass: ICLASS_LD,
		Minor:  2,
		Attrs:  Attribs(A_LOAD, A_MEMLIKE, A_DEALLOCFRAME),
		Ext:    -1,
	},
	L4_return: {
		Name:   "dealloc_return",
		IClass: ICLASS_LD,
		Minor:  3,
		Attrs:  Attribs(A_LOAD, A_MEMLIKE, A_DEALLOCRET, A_JUMP, A_COF, A_INDIRECT, A_RESTRICT_SLOT0ONLY),
		Ext:    -1,
	},
	L4_add_memopw_io: {
		Name:   "memopw_add",
		IClass: ICLASS_V4LDST,
		Minor:  0,
		Attrs:  Attribs(A_MEMOP, A_MEMLIKE, A_RESTRICT_SLOT0ONLY, A_ROPS_3),
		Regs:   "st",
		RegF:   fs(fRA, fRB),
		ImmF:   fs(fI9),
		Ext:    -1,
	},
	S2_storeri_io: {
		Name:   "storeri",
		IClass: ICLASS_ST,
		Minor:  0,
		Attrs:  Attribs(A_STORE, A_MEMLIKE, A_EXTENDABLE),
		Regs:   "st",
		RegF:   fs(fRA, fRB),
		ImmF:   fs(fI9),
		Ext:    0,
	},
	S2_storerb_io: {
		Name:   "storerb",
		IClass: ICLASS_ST,
		Minor:  1,
		Attrs:  Attribs(A_STORE, A_MEMLIKE, A_EXTENDABLE),
		Regs:   "st",
		RegF:   fs(fRA, fRB),
		ImmF:   fs(fI9),
		Ext:    0,
	},
	S2_storerinew_io: {
		Name:   "storerinew",
		IClass: ICLASS_ST,
		Minor:  2,
		Attrs:  Attribs(A_STORE, A_MEMLIKE, A_DOTNEWVALUE, A_NVSTORE, A_EXTENDABLE, A_RESTRICT_SLOT0ONLY),
		Regs:   "st",
		RegF:   fs(fRA, fP),
		ImmF:   fs(fI9),
		Ext:    0,
	},
	S2_storew_locked: {
		Name:   "storew_locked",
		IClass: ICLASS_ST,
		Minor:  3,
		Attrs:  Attribs(A_STORE, A_MEMLIKE, A_WRITES_PRED_REG, A_RESTRICT_SLOT0ONLY),
		Regs:   "sdt",
		Preds:  "d",
		RegF:   fs(fRA, fP, fRB),
		Ext:    -1,
	},
	S2_allocframe: {
		Name:   "allocframe",
		IClass: ICLASS_ST,
		Minor:  4,
		Attrs:  Attribs(A_STORE, A_MEMLIKE),
		ImmF:   fs(fI9),
		Ext:    -1,
	},
	Y2_dczeroa: {
		Name:   "dczeroa",
		IClass: ICLASS_ST,
		Minor:  5,
		Attrs:  Attribs(A_STORE, A_MEMLIKE, A_CACHEOP, A_DCZEROA, A_RESTRICT_SLOT0ONLY),
		Regs:   "s",
		RegF:   fs(fRA),
		Ext:    -1,
	},
	Y2_dccleana: {
		Name:   "dccleana",
		IClass: ICLASS_ST,
		Minor:  6,
		Attrs:  Attribs(A_MEMLIKE, A_CACHEOP, A_RESTRICT_SLOT0ONLY),
		Regs:   "s",
		RegF:   fs(fRA),
		Ext:    -1,
	},
	Y2_isync: {
		Name:   "isync",
		IClass: ICLASS_J,
		Minor:  10,
		Attrs:  Attribs(A_RESTRICT_SLOT2ONLY, A_RESTRICT_NOPACKET),
		Ext:    -1,
	},
	J2_jump: {
		Name:   "jump",
		IClass: ICLASS_J,
		Minor:  0,
		Attrs:  Attribs(A_JUMP, A_COF, A_BRANCHADDER, A_EXTENDABLE, A_RELAX_COF_2ND),
		ImmF:   fs(fI9),
		Ext:    0,
	},
	J2_jumpt: {
		Name:   "jumpt",
		IClass: ICLASS_J,
		Minor:  1,
		Attrs:  Attribs(A_JUMP, A_CJUMP, A_COF, A_DOTOLD, A_READS_PRED_REG, A_BRANCHADDER, A_EXTENDABLE, A_RELAX_COF_1ST),
		Regs:   "u",
		Preds:  "u",
		RegF:   fs(fP),
		ImmF:   fs(fI9),
		Ext:    0,
	},
	J2_jumptnew: {
		Name:   "jumptnew",
		IClass: ICLASS_J,
		Minor:  2,
		Attrs:  Attribs(A_JUMP, A_CJUMP, A_COF, A_DOTNEW, A_READS_PRED_REG, A_BRANCHADDER, A_EXTENDABLE, A_RELAX_COF_1ST),
		Regs:   "u",
		Preds:  "u",
		RegF:   fs(fP),
		ImmF:   fs(fI9),
		Ext:    0,
	},
	J2_call: {
		Name:   "call",
		IClass: ICLASS_J,
		Minor:  3,
		Attrs:  Attribs(A_CALL, A_COF, A_BRANCHADDER, A_EXTENDABLE),
		ImmF:   fs(fI9),
		Ext:    0,
	},
	J2_jumpr: {
		Name:   "jumpr",
		IClass: ICLASS_J,
		Minor:  4,
		Attrs:  Attribs(A_JUMP, A_COF, A_INDIRECT),
		Regs:   "s",
		RegF:   fs(fRA),
		Ext:    -1,
	},
	J2_callr: {
		Name:   "callr",
		IClass: ICLASS_J,
		Minor:  5,
		Attrs:  Attribs(A_CALL, A_COF, A_INDIRECT),
		Regs:   "s",
		RegF:   fs(fRA),
		Ext:    -1,
	},
	J4_hintjumpr: {
		Name:   "hintjr",
		IClass: ICLASS_J,
		Minor:  6,
		Attrs:  Attribs(A_JUMP, A_INDIRECT, A_HINTJR, A_RESTRICT_SLOT2ONLY),
		Regs:   "s",
		RegF:   fs(fRA),
		Ext:    -1,
	},
	J2_trap0: {
		Name:   "trap0",
		IClass: ICLASS_J,
		Minor:  7,
		Attrs:  Attribs(A_IMPLICIT_COF, A_COF, A_RESTRICT_SLOT2ONLY),
		ImmF:   fs(fI9),
		Ext:    -1,
	},
	J2_rte: {
		Name:   "rte",
		IClass: ICLASS_J,
		Minor:  8,
		Attrs:  Attribs(A_IMPLICIT_COF, A_COF, A_RTE, A_RESTRICT_SLOT2ONLY),
		Ext:    -1,
	},
	J2_pause: {
		Name:   "pause",
		IClass: ICLASS_J,
		Minor:  9,
		Attrs:  Attribs(A_IMPLICIT_COF, A_COF, A_RESTRICT_SLOT2ONLY),
		ImmF:   fs(fI9),
		Ext:    -1,
	},
	J2_loop0i: {
		Name:   "loop0",
		IClass: ICLASS_CR,
		Minor:  1,
		Attrs:  Attribs(A_EXTENDABLE),
		ImmF:   fs(fI9, fI5),
		Ext:    0,
	},
	J2_ploop1si: {
		Name:   "sp1loop0",
		IClass: ICLASS_CR,
		Minor:  2,
		Attrs:  Attribs(A_IMPLICIT_WRITES_P3, A_EXTENDABLE),
		ImmF:   fs(fI9, fI5),
		Ext:    0,
	},
	J4_cmpeqi_tp0_jump_nt: {
		Name:   "cmpeqi_tp0_jump",
		IClass: ICLASS_CJ,
		Minor:  0,
		Attrs:  Attribs(A_NEWCMPJUMP, A_IMPLICIT_WRITES_P0, A_JUMP, A_CJUMP, A_COF, A_DOTNEW, A_BRANCHADDER, A_RELAX_COF_1ST, A_RELAX_COF_2ND),
		Regs:   "s",
		RegF:   fs(fRB),
		ImmF:   fs(fI9, fI5),
		Ext:    -1,
	},
	J4_cmpeqi_tp1_jump_nt: {
		Name:   "cmpeqi_tp1_jump",
		IClass: ICLASS_CJ,
		Minor:  1,
		Attrs:  Attribs(A_NEWCMPJUMP, A_IMPLICIT_WRITES_P1, A_JUMP, A_CJUMP, A_COF, A_DOTNEW, A_BRANCHADDER, A_RELAX_COF_1ST, A_RELAX_COF_2ND),
		Regs:   "s",
		RegF:   fs(fRB),
		ImmF:   fs(fI9, fI5),
		Ext:    -1,
	},
	J4_cmpeq_t_jumpnv_t: {
		Name:   "cmpeq_jumpnv",
		IClass: ICLASS_NCJ,
		Minor:  0,
		Attrs:  Attribs(A_DOTNEWVALUE, A_JUMP, A_CJUMP, A_COF, A_BRANCHADDER, A_MEMLIKE_PACKET_RULES),
		Regs:   "st",
		RegF:   fs(fP, fRB),
		ImmF:   fs(fI9),
		Ext:    -1,
	},
	J2_endloop0: {
		Name:   "endloop0",
		IClass: ICLASS_J,
		Minor:  -1,
		Attrs:  Attribs(A_HWLOOP0_END, A_COF, A_IMPLICIT_WRITES_P3, A_RELAX_COF_2ND),
		Ext:    -1,
	},
	J2_endloop1: {
		Name:   "endloop1",
		IClass: ICLASS_J,
		Minor:  -1,
		Attrs:  Attribs(A_HWLOOP1_END, A_COF, A_RELAX_COF_2ND),
		Ext:    -1,
	},
	J2_endloop01: {
		Name:   "endloop01",
		IClass: ICLASS_J,
		Minor:  -1,
		Attrs:  Attribs(A_HWLOOP0_END, A_HWLOOP1_END, A_COF, A_IMPLICIT_WRITES_P3, A_RELAX_COF_2ND),
		Ext:    -1,
	},
	V6_vaddw: {
		Name:   "vaddw",
		IClass: ICLASS_ALU64,
		Minor:  12,
		Attrs:  Attribs(A_EXTENSION),
		Regs:   "duv",
		RegF:   fs(fRB, fRA, fRC),
		Ext:    -1,
		Slots:  SLOTS_0123,
	},
	V6_vL32b_ai: {
		Name:   "vmem_load",
		IClass: ICLASS_ALU64,
		Minor:  13,
		Attrs:  Attribs(A_EXTENSION, A_LOAD, A_VMEM, A_MEMLIKE),
		Regs:   "dt",
		RegF:   fs(fRB, fRA),
		ImmF:   fs(fI9),
		Ext:    -1,
		Slots:  SLOTS_01,
	},
	V6_vS32b_ai: {
		Name:   "vmem_store",
		IClass: ICLASS_ALU64,
		Minor:  14,
		Attrs:  Attribs(A_EXTENSION, A_STORE, A_VMEM, A_MEMLIKE),
		Regs:   "ts",
		RegF:   fs(fRA, fRB),
		ImmF:   fs(fI9),
		Ext:    -1,
		Slots:  SLOTS_0,
	},
	V6_vS32b_new_ai: {
		Name:   "vmem_store_new",
		IClass: ICLASS_ALU64,
		Minor:  15,
		Attrs:  Attribs(A_EXTENSION, A_STORE, A_VMEM, A_MEMLIKE, A_DOTNEWVALUE),
		Regs:   "ts",
		RegF:   fs(fRA, fP),
		ImmF:   fs(fI9),
		Ext:    -1,
		Slots:  SLOTS_0,
	},
	SA1_addi: {
		Name:   "sub_addi",
		IClass: ICLASS_SUBINSN,
		Minor:  0,
		Attrs:  Attribs(A_SUBINSN, A_EXTENDABLE),
		Regs:   "x",
		RegF:   fs(sRA),
		ImmF:   fs(sI5),
		Ext:    0,
	},
	SA1_seti: {
		Name:   "sub_seti",
		IClass: ICLASS_SUBINSN,
		Minor:  1,
		Attrs:  Attribs(A_SUBINSN, A_EXTENDABLE),
		Regs:   "d",
		RegF:   fs(sRA),
		ImmF:   fs(sI5),
		Ext:    0,
	},
	SA1_tfr: {
		Name:   "sub_tfr",
		IClass: ICLASS_SUBINSN,
		Minor:  2,
		Attrs:  Attribs(A_SUBINSN),
		Regs:   "ds",
		RegF:   fs(sRA, sRB),
		Ext:    -1,
	},
	SA1_cmpeqi: {
		Name:   "sub_cmpeqi",
		IClass: ICLASS_SUBINSN,
		Minor:  3,
		Attrs:  Attribs(A_SUBINSN, A_IMPLICIT_WRITES_P0),
		Regs:   "s",
		RegF:   fs(sRA),
		ImmF:   fs(sI2),
		Ext:    -1,
	},
	SL1_loadri_io: {
		Name:   "sub_loadri",
		IClass: ICLASS_SUBINSN,
		Minor:  4,
		Attrs:  Attribs(A_SUBINSN, A_LOAD, A_MEMLIKE),
		Regs:   "ds",
		RegF:   fs(sRA, sRB),
		Ext:    -1,
	},
	SS1_storew_io: {
		Name:   "sub_storew",
		IClass: ICLASS_SUBINSN,
		Minor:  5,
		Attrs:  Attribs(A_SUBINSN, A_STORE, A_MEMLIKE),
		Regs:   "st",
		RegF:   fs(sRA, sRB),
		Ext:    -1,
	},
	SL2_jumpr31: {
		Name:   "sub_jumpr31",
		IClass: ICLASS_SUBINSN,
		Minor:  6,
		Attrs:  Attribs(A_SUBINSN, A_JUMP, A_COF, A_INDIRECT, A_RESTRICT_SLOT0ONLY),
		Ext:    -1,
	},
}

// Info returns the description of op. Out of range opcodes describe ILLEGAL.
func Info(op Opcode) *OpInfo {
	if op >= OP_LAST {
		return &_OpInfo[ILLEGAL]
	}
	return &_OpInfo[op]
}

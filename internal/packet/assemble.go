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

	"github.com/sirupsen/logrus"
)

// Parse bits live in bits [15:14] of every word.
const (
	PARSE_DUPLEX  = 0 // duplex word, always ends a packet
	PARSE_NOTEND  = 1
	PARSE_LOOPEND = 2 // not the end, but marks a hardware loop end in word 0 or 1
	PARSE_END     = 3
)

func ParseBits(w uint32) uint32 {
	return (w >> 14) & 3
}

func IsPacketEnd(w uint32) bool {
	pb := ParseBits(w)
	return pb == PARSE_END || pb == PARSE_DUPLEX
}

func isLoopEndMarker(w uint32) bool {
	return ParseBits(w) == PARSE_LOOPEND
}

// Config selects how much of the pipeline runs.
type Config struct {
	MaxWords  int  // word budget, capped at MaxWords
	DisasOnly bool // decode for display only, never feed the result to codegen
	Strict    bool // enforce assembler packet rules
}

// Assemble decodes the packet at the head of words into out and returns the
// number of words it spans.
//
// ErrIncomplete is returned when the budget runs out before the packet ends;
// any other error means the packet is malformed. On error out is untouched.
func Assemble(isa *ISA, cfg Config, pc uint32, words []uint32, out *Packet) (int, error) {
	var pkt Packet
	var err error
	var nw int

	/* decode into a scratch packet, publish only on success */
	if nw, err = assemble(isa, cfg, pc, words, &pkt); err != nil {
		report(isa.Table, &pkt, words, nw, err)
		return 0, err
	}

	*out = pkt
	addStats(&pkt, nw)
	return nw, nil
}

func assemble(isa *ISA, cfg Config, pc uint32, words []uint32, p *Packet) (int, error) {
	if isa == nil || isa.Table == nil || isa.Decoder == nil {
		panic("vliwdec: incomplete ISA description")
	}

	budget := len(words)
	if budget > MaxWords {
		budget = MaxWords
	}
	if cfg.MaxWords > 0 && budget > cfg.MaxWords {
		budget = cfg.MaxWords
	}

	p.PC = pc
	nw, end := decodeWords(isa.Decoder, words[:budget], p)
	if !end {
		if nw >= MaxWords {
			return nw, errorf(C_no_end, -1, "no end-of-packet marker within %d words", nw)
		}
		return nw, ErrIncomplete
	}

	p.Size = nw * 4
	for i := 0; i < p.count; i++ {
		p.HasHVX = p.HasHVX || isa.Table.Attrib(p.Insn(i).Opcode, A_EXTENSION)
	}

	addEndloop(isa.Table, words[:nw], p)

	ctx := Context{
		Table:     isa.Table,
		Ext:       isa.Ext,
		DisasOnly: cfg.DisasOnly,
		Strict:    cfg.Strict,
	}
	if err := schedulePacket(p, &ctx); err != nil {
		return nw, err
	}

	/* sanity check */
	if p.count > MaxInsns && !cfg.DisasOnly {
		return nw, errorf(C_too_many_insns, -1, "%d instructions after scheduling", p.count)
	}
	return nw, nil
}

func decodeWords(dec WordDecoder, words []uint32, p *Packet) (int, bool) {
	var n int
	var buf [2]Instruction

	for i, w := range words {
		buf = [2]Instruction{}
		if n = dec.DecodeWord(w, &buf); n < 1 || n > 2 {
			panic(fmt.Sprintf("vliwdec: decoder produced %d instructions for %#08x", n, w))
		}

		/* copy the decoded operands, reset the scheduling state */
		for j := 0; j < n; j++ {
			id, insn := p.alloc()
			*insn = buf[j]
			insn.init()
			insn.Encoding = w
			p.push(id)
		}

		if IsPacketEnd(w) {
			return i + 1, true
		}
	}
	return len(words), false
}

// addEndloop synthesizes the loop end instruction encoded in parse bits.
// Loop 0 needs at least two words, loop 1 at least three.
func addEndloop(tab OpTable, words []uint32, p *Packet) {
	var loops LoopMask
	switch {
	case len(words) == 2:
		if isLoopEndMarker(words[0]) {
			loops = Loop0
		}
	case len(words) >= 3:
		if isLoopEndMarker(words[0]) {
			loops |= Loop0
		}
		if isLoopEndMarker(words[1]) {
			loops |= Loop1
		}
	}
	if loops != 0 {
		insn := p.append()
		insn.Opcode = tab.LoopEnd(loops)
		insn.LoopEnd = true
	}
}

func report(tab OpTable, p *Packet, words []uint32, nw int, err error) {
	if nw > len(words) {
		nw = len(words)
	}
	fields := logrus.Fields{
		"pc":    fmt.Sprintf("%#08x", p.PC),
		"words": fmt.Sprintf("%08x", words[:nw]),
	}
	if err == ErrIncomplete {
		incompleteCount.Add(1)
		Logger.WithFields(fields).Debug("vliwdec: incomplete packet")
		return
	}
	invalidCount.Add(1)
	if e, ok := err.(*Error); ok {
		fields["cause"] = e.Cause.String()
		fields["insn"] = e.Insn
		if e.Insn >= 0 && e.Insn < p.count {
			fields["opcode"] = tab.Name(p.Insn(e.Insn).Opcode)
		}
	}
	Logger.WithFields(fields).Warnf("vliwdec: malformed packet: %v", err)
}

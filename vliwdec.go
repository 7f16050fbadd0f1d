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

package vliwdec

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/cloudwego/vliwdec/internal/isa"
	"github.com/cloudwego/vliwdec/internal/opts"
	"github.com/cloudwego/vliwdec/internal/packet"
)

type (
	Packet      = packet.Packet
	Instruction = packet.Instruction
)

// Decoder turns instruction words into scheduled packets. It holds no
// mutable state, a single Decoder may be shared by any number of goroutines
// as long as each of them decodes into its own Packet.
type Decoder struct {
	isa  packet.ISA
	opts opts.Options
}

// NewDecoder creates a decoder for the built-in instruction set.
func NewDecoder(options ...Option) *Decoder {
	o := opts.GetDefaultOptions()
	o.ExtChecker = isa.VectorChecker{}

	/* apply the options */
	for _, fn := range options {
		fn(&o)
	}

	desc := isa.New()
	desc.Ext = o.ExtChecker
	return &Decoder{isa: *desc, opts: o}
}

// Decode decodes the packet at the head of words, located at pc, into out.
//
// It returns the number of words the packet spans. On failure it returns 0
// and leaves out untouched: ErrIncomplete means more words are needed, an
// *InvalidPacketError means the words do not form a packet.
func (self *Decoder) Decode(pc uint32, words []uint32, out *Packet) (int, error) {
	n, err := packet.Assemble(&self.isa, self.opts.Config(), pc, words, out)
	if err == nil || errors.Is(err, ErrIncomplete) {
		return n, err
	}

	/* only report the words the packet could have used */
	if len(words) > packet.MaxWords {
		words = words[:packet.MaxWords]
	}
	return 0, newInvalidPacketError(err, words)
}

// Name returns the mnemonic of op.
func (self *Decoder) Name(op packet.Opcode) string {
	return self.isa.Table.Name(op)
}

// Format renders p in execution order.
func (self *Decoder) Format(p *Packet) string {
	return p.Format(self.isa.Table)
}

// DecodePacket decodes one packet with a throw-away decoder.
func DecodePacket(pc uint32, words []uint32, out *Packet, options ...Option) (int, error) {
	return NewDecoder(options...).Decode(pc, words, out)
}

// SetLogLevel sets the level of diagnostics about malformed and incomplete
// packets. Malformed packets are reported at warning level, incomplete ones
// at debug level. Only the decoder's own logger is affected.
func SetLogLevel(level logrus.Level) {
	packet.Logger.SetLevel(level)
}

// SetLogOutput redirects the decoder's diagnostics to w.
func SetLogOutput(w io.Writer) {
	packet.Logger.SetOutput(w)
}

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
package fuzz

import (
	"fmt"

	"github.com/cloudwego/vliwdec"
	"github.com/cloudwego/vliwdec/internal/packet"
)

// Check checks that p, decoded for execution from n words, is a packet the
// hardware could issue.
func Check(p *vliwdec.Packet, n int) (err error) {
	var used [packet.MaxSlots]bool

	if p.Size != n*4 {
		return fmt.Errorf("size %d for %d words", p.Size, n)
	}
	if p.Len() > packet.MaxInsns {
		return fmt.Errorf("%d instructions", p.Len())
	}

	for i := 0; i < p.Len(); i++ {
		insn := p.Insn(i)
		if insn.LoopEnd || insn.Part1 {
			continue
		}
		if insn.Slot < 0 || int(insn.Slot) >= packet.MaxSlots {
			return fmt.Errorf("instruction %d: slot %d", i, insn.Slot)
		}
		if used[insn.Slot] {
			return fmt.Errorf("instruction %d: slot %d used twice", i, insn.Slot)
		}
		used[insn.Slot] = true
	}

	/* every new-value producer runs first */
	for it := p.Deps().Edges(); it.Next(); {
		e := it.Edge()
		if from, to := p.Position(int(e.From().ID())), p.Position(int(e.To().ID())); from >= to {
			return fmt.Errorf("producer at %d runs after its consumer at %d", from, to)
		}
	}
	return nil
}

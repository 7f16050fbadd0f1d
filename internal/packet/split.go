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
	"github.com/oleiade/lane"
)

// SplitCmpJump splits every fused compare-and-jump into a compare half and
// a jump half. The jump half stays where it is; the compare halves are
// moved to the front, keeping their relative order, so that dual jumps are
// not reordered with respect to each other.
type SplitCmpJump struct{}

func (SplitCmpJump) Apply(p *Packet, ctx *Context) error {
	q := lane.NewQueue()
	n := p.count

	/* duplicate at the end, the copy does the compare */
	for i := 0; i < n; i++ {
		insn := p.Insn(i)
		if !ctx.attr(insn, A_NEWCMPJUMP) {
			continue
		}
		if p.count >= MaxInsns || p.nid >= _ArenaSize {
			return errorf(C_too_many_insns, i, "cannot split %s", ctx.name(insn))
		}
		id, cmp := p.alloc()
		*cmp = *insn
		cmp.Part1 = true
		insn.Part1 = false
		p.push(id)
		q.Enqueue(id)
	}

	/* then move the compares to the front */
	for i := 0; !q.Empty(); i++ {
		id := q.Dequeue().(int)
		p.sendTo(p.Position(id), i)
	}
	return nil
}

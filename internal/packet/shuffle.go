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
)

// every round moves at least one instruction strictly towards its final
// place, which cannot happen more than this many times
const _MaxShuffleRounds = _ArenaSize * _ArenaSize

// Shuffle reorders the packet into execution order: stores go last in their
// encoded order, predicate producers go first so that .new readers see them,
// and a new-value compare or store goes after everything else.
//
// A trailing loop end is left where it is.
type Shuffle struct{}

func (self Shuffle) Apply(p *Packet, ctx *Context) error {
	last := p.count - 1
	if last < 0 {
		return nil
	}
	if ctx.endsLoop(p.Insn(last)) {
		last--
	}

	/* retry until no modifications */
	for n := 0; ; n++ {
		if n > _MaxShuffleRounds {
			panic(fmt.Sprintf("vliwdec: shuffle does not converge: %s", p.Format(ctx.Table)))
		}
		if self.sinkStores(p, ctx, last) {
			continue
		}
		if !self.floatCompares(p, ctx, last) {
			break
		}
	}

	/* new-value consumers read results from every other instruction */
	self.sendLast(p, ctx, last, A_DOTNEWVALUE)

	/* return-from-exception switches privilege mode, it goes after that */
	self.sendLast(p, ctx, last, A_RTE)
	return self.verify(p, ctx)
}

// sinkStores walks backwards; once a non-memory instruction has been seen,
// any store further back is moved in front of the stores already sunk.
// Loads and new-value consumers do not let stores past them.
func (Shuffle) sinkStores(p *Packet, ctx *Context, last int) bool {
	var seen bool
	var nmem int
	var changed bool

	for i := last; i >= 0; i-- {
		insn := p.Insn(i)
		switch {
		case ctx.attr(insn, A_STORE) && seen:
			p.sendTo(i, last-nmem)
			nmem++
			changed = true
		case ctx.attr(insn, A_STORE), ctx.attr(insn, A_LOAD):
			nmem++
		case ctx.attr(insn, A_DOTNEWVALUE):
			/* not a reason to sink stores */
		default:
			seen = true
		}
	}
	return changed
}

func (Shuffle) isPredProducer(ctx *Context, insn *Instruction) bool {
	switch {
	case ctx.attr(insn, A_WRITES_PRED_REG) && !ctx.attr(insn, A_STORE):
		return true
	case ctx.attr(insn, A_IMPLICIT_WRITES_P3) && !ctx.endsLoop(insn):
		return true
	case ctx.attr(insn, A_IMPLICIT_WRITES_P0) && !ctx.attr(insn, A_NEWCMPJUMP):
		return true
	default:
		return false
	}
}

// floatCompares walks forwards and moves predicate producers to the front
// once anything else has been seen.
func (self Shuffle) floatCompares(p *Packet, ctx *Context, last int) bool {
	var seen bool
	var changed bool

	for i := 0; i <= last; i++ {
		if !self.isPredProducer(ctx, p.Insn(i)) {
			seen = true
		} else if seen {
			p.sendTo(i, 0)
			changed = true
		}
	}
	return changed
}

func (Shuffle) sendLast(p *Packet, ctx *Context, last int, a Attrib) {
	for i := 0; i < last; i++ {
		if ctx.attr(p.Insn(i), a) {
			p.sendTo(i, last)
			return
		}
	}
}

// verify checks that every new-value producer still precedes its consumer.
func (Shuffle) verify(p *Packet, ctx *Context) error {
	var pos [_ArenaSize]int
	for i := 0; i < p.count; i++ {
		pos[p.order[i]] = i
	}

	/* walk the dependency edges */
	g := p.Deps()
	for it := g.Edges(); it.Next(); {
		e := it.Edge()
		if pos[e.From().ID()] > pos[e.To().ID()] {
			return errorf(C_schedule_order, pos[e.To().ID()], "%s", p.Format(ctx.Table))
		}
	}
	return nil
}

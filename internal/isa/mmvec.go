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
	"fmt"

	. "github.com/cloudwego/vliwdec/internal/packet"
)

const (
	_MaxVectorMem    = 2
	_MaxVectorStores = 1
)

// VectorChecker validates the vector part of a packet and links vector
// new-value stores to their producers, which the scalar resolver leaves
// alone.
type VectorChecker struct{}

func (self VectorChecker) CheckExtension(p *Packet, disasOnly bool) error {
	var mem int
	var stores int

	for i := 0; i < p.Len(); i++ {
		insn := p.Insn(i)
		info := Info(insn.Opcode)
		if !info.Attrs.Has(A_EXTENSION) {
			continue
		}
		if info.Attrs.Has(A_VMEM) {
			mem++
			if info.Attrs.Has(A_STORE) {
				stores++
			}
		}
		if info.Attrs.Has(A_DOTNEWVALUE) {
			if err := self.resolve(p, i); err != nil {
				return err
			}
		}
	}

	/* resource limits only matter for execution */
	if disasOnly {
		return nil
	}
	if mem > _MaxVectorMem {
		return fmt.Errorf("%d vector memory instructions", mem)
	}
	if stores > _MaxVectorStores {
		return fmt.Errorf("%d vector stores", stores)
	}
	return nil
}

// resolve finds the vector instruction producing the value stored by the
// new-value store at position i.
func (VectorChecker) resolve(p *Packet, i int) error {
	insn := p.Insn(i)
	use := Table{}.RegField(insn.Opcode, 's')
	dist := int(insn.Regno[use] >> 1)
	if dist == 0 {
		return fmt.Errorf("%s: zero new-value distance", Info(insn.Opcode).Name)
	}

	/* extenders do not count */
	j := i
	for n := 0; n < dist; n++ {
		for j--; j >= 0 && Info(p.Insn(j).Opcode).Attrs.Has(A_IT_EXTENDER); j-- {
		}
		if j < 0 {
			return fmt.Errorf("%s: new-value distance %d out of range", Info(insn.Opcode).Name, dist)
		}
	}

	src := Info(p.Insn(j).Opcode)
	def := Table{}.RegField(p.Insn(j).Opcode, 'd')
	if !src.Attrs.Has(A_EXTENSION) || src.Attrs.Has(A_STORE) || def < 0 {
		return fmt.Errorf("%s: %s does not produce a vector", Info(insn.Opcode).Name, src.Name)
	}

	insn.Regno[use] = p.Insn(j).Regno[def]
	insn.Producer = int8(p.ID(j))
	insn.ProducerSlot = p.Insn(j).Slot
	return nil
}

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
	"sync/atomic"
)

var (
	packetCount     atomic.Int64
	wordCount       atomic.Int64
	splitCount      atomic.Int64
	endloopCount    atomic.Int64
	incompleteCount atomic.Int64
	invalidCount    atomic.Int64
)

// Stats is a snapshot of the decode counters.
type Stats struct {
	Packets    int64
	Words      int64
	Splits     int64
	Endloops   int64
	Incomplete int64
	Invalid    int64
}

func GetStats() Stats {
	return Stats{
		Packets:    packetCount.Load(),
		Words:      wordCount.Load(),
		Splits:     splitCount.Load(),
		Endloops:   endloopCount.Load(),
		Incomplete: incompleteCount.Load(),
		Invalid:    invalidCount.Load(),
	}
}

func addStats(p *Packet, nw int) {
	packetCount.Add(1)
	wordCount.Add(int64(nw))
	for i := 0; i < p.count; i++ {
		insn := p.Insn(i)
		if insn.Part1 {
			splitCount.Add(1)
		}
		if insn.LoopEnd {
			endloopCount.Add(1)
		}
	}
}

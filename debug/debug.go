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

package debug

import (
	"github.com/cloudwego/vliwdec/internal/packet"
)

// A Stats records statistics about the packet decoder.
type Stats struct {
	Decoded DecodeStats
	Failed  FailStats
}

// A DecodeStats records statistics about successfully decoded packets.
type DecodeStats struct {
	Packets  int
	Words    int
	Splits   int
	Endloops int
}

// A FailStats records statistics about packets that failed to decode.
type FailStats struct {
	Incomplete int
	Invalid    int
}

// GetStats returns statistics of the packet decoder.
func GetStats() Stats {
	s := packet.GetStats()
	return Stats{
		Decoded: DecodeStats{
			Packets:  int(s.Packets),
			Words:    int(s.Words),
			Splits:   int(s.Splits),
			Endloops: int(s.Endloops),
		},
		Failed: FailStats{
			Incomplete: int(s.Incomplete),
			Invalid:    int(s.Invalid),
		},
	}
}

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
	"fmt"

	"github.com/cloudwego/vliwdec/internal/opts"
	"github.com/cloudwego/vliwdec/internal/packet"
)

// Option is the property setter function for opts.Options.
type Option func(*opts.Options)

// WithDisassembly decodes packets for display only.
//
// Extenders stay in the packet, and slot assignment, reordering and
// splitting are skipped. New-value operands are still resolved and summary
// flags are still computed. Packets decoded this way must never be used to
// generate code.
func WithDisassembly(v bool) Option {
	return func(o *opts.Options) { o.DisasOnly = v }
}

// WithMaxWords limits how many words a packet may span.
//
// The default value of this option is "4", which is also the upper bound.
func WithMaxWords(n int) Option {
	if n < 1 || n > packet.MaxWords {
		panic(fmt.Sprintf("vliwdec: invalid packet word limit: %d", n))
	} else {
		return func(o *opts.Options) { o.MaxWords = n }
	}
}

// WithStrict rejects packets that break assembler packet rules, such as
// more than one change of flow or a .new read of a late predicate.
func WithStrict(v bool) Option {
	return func(o *opts.Options) { o.Strict = v }
}

// WithExtChecker replaces the vector extension checker. A nil checker
// disables vector checks altogether.
func WithExtChecker(c packet.ExtChecker) Option {
	return func(o *opts.Options) { o.ExtChecker = c }
}

// SetMaxWords sets the default packet word limit for all decoders created
// from now on.
//
// This value can also be configured with the `VLIWDEC_MAX_PACKET_WORDS`
// environment variable.
//
// Returns the old opts.MaxPacketWords value.
func SetMaxWords(n int) int {
	if n < 1 || n > packet.MaxWords {
		panic(fmt.Sprintf("vliwdec: invalid packet word limit: %d", n))
	}
	n, opts.MaxPacketWords = opts.MaxPacketWords, n
	return n
}

// SetStrict sets the default strictness for all decoders created from now on.
//
// This value can also be configured with the `VLIWDEC_STRICT` environment
// variable.
//
// Returns the old opts.Strict value.
func SetStrict(v bool) bool {
	v, opts.Strict = opts.Strict, v
	return v
}

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

package opts

import (
	"github.com/cloudwego/vliwdec/internal/packet"
)

type Options struct {
	MaxWords   int
	DisasOnly  bool
	Strict     bool
	ExtChecker packet.ExtChecker
}

// Config returns the pipeline configuration these options select.
func (self *Options) Config() packet.Config {
	return packet.Config{
		MaxWords:  self.MaxWords,
		DisasOnly: self.DisasOnly,
		Strict:    self.Strict,
	}
}

func GetDefaultOptions() Options {
	return Options{
		MaxWords: MaxPacketWords,
		Strict:   Strict,
	}
}

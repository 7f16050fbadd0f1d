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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOrDefault(t *testing.T) {
	t.Setenv("VLIWDEC_TEST_VALUE", "")
	require.Equal(t, 3, parseOrDefault("VLIWDEC_TEST_VALUE", 3, 1, 4))
	t.Setenv("VLIWDEC_TEST_VALUE", "2")
	require.Equal(t, 2, parseOrDefault("VLIWDEC_TEST_VALUE", 3, 1, 4))
	t.Setenv("VLIWDEC_TEST_VALUE", "0x4")
	require.Equal(t, 4, parseOrDefault("VLIWDEC_TEST_VALUE", 3, 1, 4))
}

func TestParseOrDefault_Invalid(t *testing.T) {
	for _, v := range []string{"abc", "0", "5", "-1"} {
		t.Setenv("VLIWDEC_TEST_VALUE", v)
		require.Panics(t, func() { parseOrDefault("VLIWDEC_TEST_VALUE", 3, 1, 4) }, v)
	}
}

func TestOptions_Config(t *testing.T) {
	o := GetDefaultOptions()
	o.DisasOnly = true
	cfg := o.Config()
	require.Equal(t, MaxPacketWords, cfg.MaxWords)
	require.True(t, cfg.DisasOnly)
	require.Equal(t, Strict, cfg.Strict)
}

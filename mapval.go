// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mapping

import (
	"time"

	"dario.cat/mergo"
	"github.com/go-viper/mapstructure/v2"
)

// Decode hydrates out (a struct pointer) from the map representation in one
// bulk step, honoring the same struct tag as the engine and decoding nested
// maps recursively.
//
// Decode is complementary to [Converter.Convert]: it performs deep,
// hook-driven decoding without per-property error policy, exclusions, or
// mappers. Use it to materialize a typed value from a map wholesale; use the
// engine when the per-property contract matters.
//
// Example:
//
//	m := mapping.MapValue{"name": "svc", "timeout": "30s"}
//	var cfg ServiceConfig
//	err := m.Decode(&cfg)
func (m MapValue) Decode(out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: DefaultTagName,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return err
	}

	return decoder.Decode(map[string]any(m))
}

// Merge fills absent properties of the map representation from defaults.
// Existing keys are kept; only missing ones are added. Use it to apply a
// defaults layer before conversion.
//
// Example:
//
//	m := mapping.MapValue{"host": "db1"}
//	err := m.Merge(mapping.MapValue{"host": "localhost", "port": 5432})
//	// m == {"host": "db1", "port": 5432}
func (m MapValue) Merge(defaults MapValue) error {
	dst := map[string]any(m)
	return mergo.Map(&dst, map[string]any(defaults))
}

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

// Package mapping copies named properties between in-memory representations.
//
// A representation is either a structured value (a Go struct, enumerated
// through its exported fields) or a map value (map[string]any, enumerated
// through its keys). The engine copies every property of the source onto the
// target, with configurable exclusions, per-property override functions
// (mappers), and a fail-fast or log-and-continue error policy.
//
// # Quick Start
//
//	// Zero-configuration copy, map into struct
//	var user User
//	err := mapping.Convert(map[string]any{
//	    "Name": "Ada",
//	    "Age":  36,
//	}, &user)
//
//	// Generic variant producing a fresh value
//	user, err := mapping.Into[User](record)
//
// # Converter
//
// For shared configuration, create a [Converter]:
//
//	c := mapping.MustNew(
//	    mapping.WithExclusions("revision"),
//	    mapping.WithFailFast(),
//	)
//
//	err := c.Convert(source, &target)
//
// # Struct Tags
//
// Struct fields are exposed under their field name, or renamed with the map
// tag; "-" removes a field from the property set:
//
//	type User struct {
//	    Name     string `map:"name"`
//	    Age      int    `map:"age"`
//	    internal string         // unexported: never exposed
//	    Secret   string `map:"-"` // excluded from the property set
//	}
//
// # Mappers
//
// A mapper overrides the default copy for one property. The mapper fully owns
// the read-and-write responsibility for its property: the driver invokes it
// with the source representation and discards its return value. A mapper that
// does not write back to the representation has no visible effect outside
// self-conversion. This is the single most important thing to know when
// registering one.
//
//	c := mapping.MustNew(mapping.WithMapper("count", func(src mapping.Value) (any, error) {
//	    v, err := src.Read("count")
//	    if err != nil {
//	        return nil, err
//	    }
//	    n, _ := v.(int)
//	    return n + 1000, src.Write("count", n+1000)
//	}))
//
//	// Self-conversion: only mappers run, the default copy is skipped.
//	err := c.ConvertSelf(&obj)
//
// Mapper errors always abort the conversion; the fail-fast flag governs only
// the built-in default copy path.
//
// # Exclusions
//
// Names in the exclusion set are never read or written, even when a mapper is
// registered under them. The set defaults to [DefaultExclusions] and is
// replaced wholesale, never added to incrementally:
//
//	c.SetExclusions("id", "createdAt")
//
// # Error Policy
//
// By default, a default-path access failure (property missing on the target,
// type mismatch) is logged at debug severity and the property is skipped; the
// conversion returns nil and callers inspect the target for unset properties.
// With [WithFailFast] the first failure aborts the conversion; properties
// later in iteration order are left untouched, and properties already written
// are not rolled back.
//
// # Coercion
//
// The engine is not a type-coercion layer: a string "42" does not fit an int
// field. [WithCoercion] opts into scalar coercion on type-mismatched writes:
//
//	err := mapping.Convert(m, &out, mapping.WithCoercion())
//
// # Document Sources
//
// The following subpackages turn serialized documents into map
// representations:
//
//   - rivaas.dev/mapping/yaml: YAML support (gopkg.in/yaml.v3)
//   - rivaas.dev/mapping/toml: TOML support (github.com/BurntSushi/toml)
//   - rivaas.dev/mapping/msgpack: MessagePack support (github.com/vmihailenco/msgpack/v5)
//
// Example with YAML:
//
//	import "rivaas.dev/mapping/yaml"
//
//	src, err := yaml.Source(body)
//	err = c.Convert(src, &cfg)
//
// # Concurrency
//
// Conversions are synchronous, in-memory, and run to completion or fail; there
// is no cancellation or retry. Concurrent Convert calls against a stable
// configuration are safe, but configuration mutators must complete before
// steady-state use: the converter provides no internal locking.
package mapping

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
	"reflect"
	"time"
)

// DefaultTagName is the struct tag consulted when enumerating the properties
// of a structured representation. A field without the tag is exposed under its
// Go field name; a field tagged "-" is not exposed at all.
const DefaultTagName = "map"

// MapperFunc is a per-property override function.
//
// A registered mapper fully owns the read-and-write responsibility for its
// property: the conversion driver invokes it with the source representation
// and discards its return value. A mapper that does not write back to the
// representation has no visible effect outside self-conversion. The return
// value exists for direct invocation through [Converter.Mapper] or
// [MapperFor].
//
// Errors returned by a mapper always abort the conversion, regardless of the
// fail-fast policy.
type MapperFunc func(source Value) (any, error)

// DefaultExclusions holds the property names skipped by default. They are the
// reserved meta-property names that dynamic producers inject into map payloads
// and that have no sensible counterpart on a target representation.
//
// Replace the set per converter with [Converter.SetExclusions] or
// [WithExclusions].
var DefaultExclusions = []string{"class", "metaClass"}

// Cached reflect types for special-case handling.
var (
	timeType     = reflect.TypeFor[time.Time]()
	durationType = reflect.TypeFor[time.Duration]()
)

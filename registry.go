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
	"fmt"
	"reflect"
)

// AddMapper registers fn as the override for the named property.
// At most one mapper per name: a second registration is rejected eagerly with
// a [DuplicateMapperError] and the first mapper stays in effect.
//
// Registration is configuration; do not call concurrently with conversions.
func (c *Converter) AddMapper(name string, fn MapperFunc) error {
	if _, exists := c.mappers[name]; exists {
		return &DuplicateMapperError{Name: name}
	}
	c.mappers[name] = fn

	return nil
}

// MustAddMapper is like [Converter.AddMapper] but panics on duplicate
// registration. Use during setup where panic on misconfiguration is
// acceptable.
func (c *Converter) MustAddMapper(name string, fn MapperFunc) {
	if err := c.AddMapper(name, fn); err != nil {
		panic(fmt.Sprintf("mapping.MustAddMapper: %v", err))
	}
}

// HasMapper reports whether a mapper is registered for the named property.
func (c *Converter) HasMapper(name string) bool {
	_, ok := c.mappers[name]
	return ok
}

// Mapper returns the registered mapper for the named property.
// The mapper's result is untyped; [MapperFor] is the type-safe retrieval.
func (c *Converter) Mapper(name string) (MapperFunc, bool) {
	fn, ok := c.mappers[name]
	return fn, ok
}

// MapperFor returns the registered mapper wrapped with a result-type
// assertion. This is the single type-assertion boundary for mapper results: a
// mapper whose actual return type does not match T fails with
// [ErrTypeMismatch] at the point of use, not at registration or retrieval.
//
// Example:
//
//	total, ok := mapping.MapperFor[float64](c, "total")
//	if ok {
//	    v, err := total(src)
//	    ...
//	}
func MapperFor[T any](c *Converter, name string) (func(source Value) (T, error), bool) {
	fn, ok := c.mappers[name]
	if !ok {
		return nil, false
	}

	typed := func(source Value) (T, error) {
		var zero T
		out, err := fn(source)
		if err != nil {
			return zero, err
		}
		result, ok := out.(T)
		if !ok {
			return zero, fmt.Errorf("%w: mapper for %q returned %T, want %s",
				ErrTypeMismatch, name, out, reflect.TypeFor[T]())
		}

		return result, nil
	}

	return typed, true
}

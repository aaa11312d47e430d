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
	"sort"
)

// Value abstracts a representation: either a structured value with fixed named
// fields ([StructValue]) or an associative string-keyed container ([MapValue]).
// The conversion driver depends only on this interface and never inspects
// concrete representation types.
//
// Implementers must distinguish "property present" from "property absent" via
// Has; Names enumerates the property set without filtering (exclusion is a
// separate stage applied by the driver).
type Value interface {
	// Names returns the property names the representation exposes, in a
	// stable order.
	Names() []string

	// Has reports whether the named property exists on the representation.
	Has(name string) bool

	// Read returns the value of the named property.
	Read(name string) (any, error)

	// Write sets the named property.
	Write(name string, value any) error
}

// MapValue is the associative representation: a string-keyed container whose
// key set is the property set verbatim. Reads and writes always succeed
// structurally (maps accept arbitrary keys); writing to a nil MapValue is the
// one exception and fails with [ErrPropertyNotWritable].
type MapValue map[string]any

// Names returns the keys in sorted order. Sorting keeps the iteration order
// stable so that, under fail-fast, the set of untouched properties after a
// failure is well-defined.
func (m MapValue) Names() []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

// Has reports whether the key exists.
func (m MapValue) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// Read returns the value for the key. A missing key yields nil without error;
// map reads never fail structurally.
func (m MapValue) Read(name string) (any, error) {
	return m[name], nil
}

// Write creates or overwrites the key.
func (m MapValue) Write(name string, value any) error {
	if m == nil {
		return &AccessError{Property: name, Op: OpWrite, Value: value, Err: ErrPropertyNotWritable}
	}
	m[name] = value

	return nil
}

// StructValue is the structured representation: a Go struct whose exported
// fields form the property set. Field names may be renamed with the converter
// tag (see [DefaultTagName]); a field tagged "-" is not part of the property
// set. Embedded structs are flattened into the property set, including
// embedded fields of unexported struct type; when a flattened name collides
// with another field, the shallower field wins, as in Go's field promotion.
//
// A StructValue built from a struct pointer is writable; one built from a
// plain struct value is read-only and writes fail with
// [ErrPropertyNotWritable]. Use [ValueOf] to construct one.
type StructValue struct {
	v    reflect.Value
	info *structInfo
}

// Names returns the property names in field declaration order.
func (s *StructValue) Names() []string {
	names := make([]string, len(s.info.fields))
	for i, f := range s.info.fields {
		names[i] = f.name
	}

	return names
}

// Has reports whether the named property exists on the struct.
func (s *StructValue) Has(name string) bool {
	_, ok := s.info.byName[name]
	return ok
}

// Read returns the value of the named field.
func (s *StructValue) Read(name string) (any, error) {
	idx, ok := s.info.byName[name]
	if !ok {
		return nil, &AccessError{Property: name, Op: OpRead, Err: ErrPropertyNotFound}
	}

	fv, err := fieldByIndex(s.v, s.info.fields[idx].index, false)
	if err != nil {
		return nil, &AccessError{Property: name, Op: OpRead, Err: err}
	}

	return fv.Interface(), nil
}

// Write sets the named field. Assignable values are stored directly; values of
// a different numeric kind are converted natively. Anything else fails with
// [ErrTypeMismatch] carrying the field type, which the converter may use for
// optional coercion.
func (s *StructValue) Write(name string, value any) error {
	idx, ok := s.info.byName[name]
	if !ok {
		return &AccessError{Property: name, Op: OpWrite, Value: value, Err: ErrPropertyNotFound}
	}

	if !s.v.CanAddr() {
		return &AccessError{Property: name, Op: OpWrite, Value: value, Err: ErrPropertyNotWritable}
	}

	fv, err := fieldByIndex(s.v, s.info.fields[idx].index, true)
	if err != nil {
		return &AccessError{Property: name, Op: OpWrite, Value: value, Err: err}
	}
	if !fv.CanSet() {
		return &AccessError{Property: name, Op: OpWrite, Value: value, Err: ErrPropertyNotWritable}
	}

	if value == nil {
		fv.SetZero()
		return nil
	}

	rv := reflect.ValueOf(value)
	switch {
	case rv.Type().AssignableTo(fv.Type()):
		fv.Set(rv)
	case rv.Kind() == fv.Kind() && rv.Type().ConvertibleTo(fv.Type()):
		// Same-kind named types (type UserID string, type Age int).
		fv.Set(rv.Convert(fv.Type()))
	case isNumericKind(rv.Kind()) && isNumericKind(fv.Kind()) && rv.Type().ConvertibleTo(fv.Type()):
		fv.Set(rv.Convert(fv.Type()))
	default:
		return &AccessError{
			Property: name,
			Op:       OpWrite,
			Type:     fv.Type(),
			Value:    value,
			Err:      ErrTypeMismatch,
		}
	}

	return nil
}

// Type returns the Go type of the named property, if present.
func (s *StructValue) Type(name string) (reflect.Type, bool) {
	idx, ok := s.info.byName[name]
	if !ok {
		return nil, false
	}

	return s.info.fields[idx].typ, true
}

// ValueOf wraps v in its representation variant using [DefaultTagName] for
// struct field naming. Accepted inputs:
//
//   - a [Value] (returned as is)
//   - map[string]any (wrapped as [MapValue])
//   - a struct pointer (writable [StructValue])
//   - a plain struct value (read-only [StructValue])
//
// Anything else fails with [ErrUnsupportedRepresentation].
func ValueOf(v any) (Value, error) {
	return valueOf(v, DefaultTagName)
}

// valueOf is ValueOf with an explicit struct tag name.
func valueOf(v any, tag string) (Value, error) {
	switch t := v.(type) {
	case Value:
		return t, nil
	case map[string]any:
		return MapValue(t), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: nil %s", ErrUnsupportedRepresentation, rv.Type())
		}
		elem := rv.Elem()
		if elem.Kind() == reflect.Struct {
			return &StructValue{v: elem, info: getStructInfo(elem.Type(), tag)}, nil
		}
		if m, ok := elem.Interface().(map[string]any); ok {
			return MapValue(m), nil
		}
	case reflect.Struct:
		return &StructValue{v: rv, info: getStructInfo(rv.Type(), tag)}, nil
	case reflect.Map:
		// Map types other than map[string]any have no defined property set.
	}

	return nil, fmt.Errorf("%w: %T", ErrUnsupportedRepresentation, v)
}

// sameRef reports whether a and b are the identical underlying reference.
// Only reference kinds (pointers and maps) can alias; distinct struct values
// are never the same reference.
func sameRef(a, b any) bool {
	if a == nil || b == nil {
		return false
	}

	ra := reflect.ValueOf(a)
	rb := reflect.ValueOf(b)
	if ra.Kind() != rb.Kind() {
		return false
	}

	switch ra.Kind() {
	case reflect.Pointer, reflect.Map:
		return ra.Pointer() == rb.Pointer()
	default:
		return false
	}
}

// fieldByIndex walks an index path through embedded structs. For writes
// (alloc=true) nil embedded pointers are allocated along the way; for reads a
// nil embedded pointer makes the property unreadable.
func fieldByIndex(v reflect.Value, index []int, alloc bool) (reflect.Value, error) {
	for i, x := range index {
		if i > 0 {
			if v.Kind() == reflect.Pointer {
				if v.IsNil() {
					if !alloc || !v.CanSet() {
						return reflect.Value{}, ErrPropertyNotFound
					}
					v.Set(reflect.New(v.Type().Elem()))
				}
				v = v.Elem()
			}
		}
		v = v.Field(x)
	}

	return v, nil
}

// isNumericKind reports whether the kind is an integer or float kind.
func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

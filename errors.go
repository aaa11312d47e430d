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
	"errors"
	"fmt"
	"reflect"
)

// Op identifies the property access direction of a failed operation.
type Op int

const (
	// OpRead is a property read on the source representation.
	OpRead Op = iota + 1

	// OpWrite is a property write on the target representation.
	OpWrite
)

// String returns the string representation of the operation.
func (o Op) String() string {
	switch o {
	case OpRead:
		return "read"
	case OpWrite:
		return "write"
	default:
		return "unknown"
	}
}

// Static errors for mapping operations.
var (
	ErrNilTarget                 = errors.New("target must not be nil")
	ErrUnsupportedRepresentation = errors.New("unsupported representation")
	ErrPropertyNotFound          = errors.New("property not found")
	ErrPropertyNotWritable       = errors.New("property not writable")
	ErrTypeMismatch              = errors.New("type mismatch")
	ErrEmptyTagName              = errors.New("tag name must not be empty")
)

// AccessError reports a default-path property access failure with
// property-level context. It is the error routed through the converter's
// fail-fast policy: with fail-fast enabled it aborts the conversion, with
// fail-fast disabled it is logged and the property is skipped.
//
// Use [errors.As] to check for AccessError:
//
//	var accErr *mapping.AccessError
//	if errors.As(err, &accErr) {
//	    fmt.Printf("property: %s, op: %s\n", accErr.Property, accErr.Op)
//	}
type AccessError struct {
	Property string       // Property name that failed
	Op       Op           // Access direction (read or write)
	Type     reflect.Type // Target property type, set for write failures
	Value    any          // Value involved in a failed write
	Err      error        // Underlying error
}

// Error returns a formatted error message.
func (e *AccessError) Error() string {
	if e.Op == OpWrite && e.Type != nil && errors.Is(e.Err, ErrTypeMismatch) {
		return fmt.Sprintf("mapping: cannot write property %q: value of type %T is not assignable to %s",
			e.Property, e.Value, e.Type)
	}

	return fmt.Sprintf("mapping: cannot %s property %q: %v", e.Op, e.Property, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *AccessError) Unwrap() error {
	return e.Err
}

// DuplicateMapperError is the configuration error returned when a mapper is
// registered for a property name that already has one. The check is eager:
// it is reported at registration time, never at conversion time. The first
// registration stays in effect.
type DuplicateMapperError struct {
	Name string // Property name of the rejected registration
}

// Error returns a formatted error message.
func (e *DuplicateMapperError) Error() string {
	return fmt.Sprintf("mapping: mapper already registered for property %q", e.Name)
}

// MapperError wraps a failure raised by a user-registered mapper function.
// Mapper failures always abort the conversion; the fail-fast flag governs
// only the built-in default-copy path.
type MapperError struct {
	Property string // Property the failing mapper is registered under
	Err      error  // Error returned by the mapper function
}

// Error returns a formatted error message.
func (e *MapperError) Error() string {
	return fmt.Sprintf("mapping: mapper for property %q failed: %v", e.Property, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *MapperError) Unwrap() error {
	return e.Err
}

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
)

// Convert copies the properties of source onto target in one synchronous
// pass. Both arguments may be a struct pointer, a plain struct (source only;
// struct targets must be pointers to be writable), a map[string]any, or a
// [Value].
//
// Per enumerated property, after exclusion filtering and in a stable order:
//
//   - a registered mapper is invoked with the source representation and owns
//     the full read-and-write responsibility for that property; its return
//     value is discarded and its error always aborts the conversion
//   - otherwise, when source and target are distinct references, the value is
//     read from source and written to target (the default copy path)
//   - otherwise (self-conversion) the property is skipped; copying a value
//     onto itself is a no-op
//
// Default-path access failures follow the error policy: under fail-fast the
// first failure aborts (already-written properties are not rolled back);
// under the lenient default the failure is logged at debug severity and the
// property keeps its prior value on target.
//
// A nil source is the degenerate case: Convert returns nil immediately and
// target is untouched.
//
// Errors:
//   - [ErrNilTarget]: target is nil while source is not
//   - [ErrUnsupportedRepresentation]: an argument is neither struct nor map
//   - [MapperError]: a registered mapper failed
//   - [AccessError]: a default-path failure under fail-fast
func (c *Converter) Convert(source, target any) error {
	if source == nil {
		return nil
	}
	if target == nil {
		return ErrNilTarget
	}

	src, err := valueOf(source, c.cfg.tagName)
	if err != nil {
		return err
	}
	dst, err := valueOf(target, c.cfg.tagName)
	if err != nil {
		return err
	}

	self := sameRef(source, target)

	var stats Stats
	if c.cfg.events.Done != nil {
		defer func() { c.cfg.events.Done(stats) }()
	}

	for _, name := range src.Names() {
		if _, excluded := c.cfg.exclusions[name]; excluded {
			continue
		}
		stats.Properties++

		if fn, ok := c.mappers[name]; ok {
			// The mapper owns read and write for this property; its
			// return value is intentionally discarded.
			if _, err := fn(src); err != nil {
				return &MapperError{Property: name, Err: err}
			}
			stats.Mapped++
			if ev := c.cfg.events.PropertyMapped; ev != nil {
				ev(name)
			}

			continue
		}

		if self {
			continue
		}

		if err := c.copyProperty(src, dst, name, &stats); err != nil {
			return err
		}
	}

	return nil
}

// ConvertSelf runs a self-conversion: source and target are the identical
// reference, so the default copy path is skipped for every property and only
// registered mappers run.
func (c *Converter) ConvertSelf(source any) error {
	return c.Convert(source, source)
}

// copyProperty runs the default copy path for one property and applies the
// error policy.
func (c *Converter) copyProperty(src, dst Value, name string, stats *Stats) error {
	value, err := src.Read(name)
	if err == nil {
		err = c.writeProperty(dst, name, value)
	}

	if err != nil {
		if c.cfg.failFast {
			return err
		}
		stats.Skipped++
		if ev := c.cfg.events.PropertySkipped; ev != nil {
			ev(name, err)
		}
		c.cfg.logger.Debug("mapping: skipping property",
			"property", name,
			"error", err)

		return nil
	}

	stats.Copied++
	if ev := c.cfg.events.PropertyCopied; ev != nil {
		ev(name)
	}

	return nil
}

// writeProperty writes value to the named property on dst, retrying a
// type-mismatched write with scalar coercion when enabled.
func (c *Converter) writeProperty(dst Value, name string, value any) error {
	err := dst.Write(name, value)
	if err == nil || !c.cfg.coerce {
		return err
	}

	var accErr *AccessError
	if !errors.As(err, &accErr) || accErr.Type == nil || !errors.Is(accErr.Err, ErrTypeMismatch) {
		return err
	}

	coerced, cerr := coerceValue(value, accErr.Type)
	if cerr != nil {
		return err
	}

	return dst.Write(name, coerced)
}

// Convert copies the properties of source onto target using a converter built
// from opts. See [Converter.Convert].
//
// Example:
//
//	var out Account
//	err := mapping.Convert(record, &out, mapping.WithExclusions("id"))
func Convert(source, target any, opts ...Option) error {
	c, err := New(opts...)
	if err != nil {
		return err
	}

	return c.Convert(source, target)
}

// ConvertSelf runs a self-conversion using a converter built from opts.
// See [Converter.ConvertSelf].
func ConvertSelf(source any, opts ...Option) error {
	c, err := New(opts...)
	if err != nil {
		return err
	}

	return c.ConvertSelf(source)
}

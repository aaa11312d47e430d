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
	"sort"
)

// Converter copies named properties between representations with configurable
// exclusions, per-property mappers, and an error policy.
//
// Use [New] or [MustNew] to create a configured Converter, or the
// package-level [Convert], [ConvertSelf], and [Into] for zero-configuration
// conversions.
//
// Concurrent [Converter.Convert] calls against a stable configuration are
// safe. Configuration mutators ([Converter.AddMapper],
// [Converter.SetExclusions], [Converter.SetFailFast]) must not run
// concurrently with conversions or with each other: no internal locking is
// provided. Configure the converter before steady-state use.
//
// Example:
//
//	c := mapping.MustNew(
//	    mapping.WithExclusions("id"),
//	    mapping.WithFailFast(),
//	)
//
//	var out Account
//	err := c.Convert(record, &out)
type Converter struct {
	cfg     *config
	mappers map[string]MapperFunc
}

// New creates a [Converter] with the given options.
// It returns an error if the configuration is invalid, including a
// [DuplicateMapperError] when [WithMapper] registered two mappers under the
// same property name.
//
// Example:
//
//	c, err := mapping.New(
//	    mapping.WithExclusions("revision"),
//	)
//	if err != nil {
//	    return fmt.Errorf("failed to create converter: %w", err)
//	}
func New(opts ...Option) (*Converter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	c := &Converter{
		cfg:     cfg,
		mappers: make(map[string]MapperFunc, len(cfg.mappers)),
	}
	for _, m := range cfg.mappers {
		if err := c.AddMapper(m.name, m.fn); err != nil {
			return nil, err
		}
	}
	cfg.mappers = nil

	return c, nil
}

// MustNew creates a [Converter] with the given options.
// It panics if the configuration is invalid.
//
// Use in main() or init() where panic on startup is acceptable.
func MustNew(opts ...Option) *Converter {
	c, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("mapping.MustNew: %v", err))
	}

	return c
}

// SetExclusions replaces the exclusion set wholesale, dropping the previous
// set including [DefaultExclusions]. There is no incremental add.
func (c *Converter) SetExclusions(names ...string) {
	exclusions := make(map[string]struct{}, len(names))
	for _, n := range names {
		exclusions[n] = struct{}{}
	}
	c.cfg.exclusions = exclusions
}

// Exclusions returns a sorted copy of the current exclusion set.
func (c *Converter) Exclusions() []string {
	names := make([]string, 0, len(c.cfg.exclusions))
	for n := range c.cfg.exclusions {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// SetFailFast switches the error policy for default-path access failures.
func (c *Converter) SetFailFast(enabled bool) {
	c.cfg.failFast = enabled
}

// FailFast reports whether the fail-fast error policy is enabled.
func (c *Converter) FailFast() bool {
	return c.cfg.failFast
}

// Into converts source into a fresh T using a converter built from opts.
//
// Example:
//
//	account, err := mapping.Into[Account](record)
func Into[T any](source any, opts ...Option) (T, error) {
	var zero T
	c, err := New(opts...)
	if err != nil {
		return zero, err
	}

	return IntoWith[T](c, source)
}

// IntoWith converts source into a fresh T using the [Converter]'s
// configuration. A map-kinded T is allocated before conversion; a struct T is
// converted through a pointer so its fields are writable. A nil source yields
// the zero T, mirroring the degenerate absent-source case of
// [Converter.Convert].
//
// Example:
//
//	account, err := mapping.IntoWith[Account](c, record)
func IntoWith[T any](c *Converter, source any) (T, error) {
	var out T
	if source == nil {
		return out, nil
	}

	switch m := any(&out).(type) {
	case *map[string]any:
		*m = make(map[string]any)
		if err := c.Convert(source, *m); err != nil {
			return out, err
		}

		return out, nil
	case *MapValue:
		*m = make(MapValue)
		if err := c.Convert(source, *m); err != nil {
			return out, err
		}

		return out, nil
	}

	if err := c.Convert(source, &out); err != nil {
		return out, err
	}

	return out, nil
}

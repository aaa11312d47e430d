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
	"log/slog"
)

// Events provides hooks for observability without coupling.
// All hooks are optional; nil hooks are never called.
type Events struct {
	// PropertyMapped is called after a registered mapper ran for a property.
	PropertyMapped func(name string)

	// PropertyCopied is called after the default copy path wrote a property.
	PropertyCopied func(name string)

	// PropertySkipped is called when a default-path access failure was
	// tolerated under the lenient policy. It is not called under fail-fast.
	PropertySkipped func(name string, err error)

	// Done is called at the end of every conversion with statistics,
	// even when the conversion returns an error.
	Done func(stats Stats)
}

// Stats tracks per-conversion metrics.
type Stats struct {
	Properties int // Properties visited after exclusion filtering
	Mapped     int // Properties handled by registered mappers
	Copied     int // Properties written by the default copy path
	Skipped    int // Properties skipped under the lenient policy
}

// Option configures a [Converter].
type Option func(*config)

// config holds converter configuration. It is shared mutable state with the
// lifetime of one converter instance: configure before steady-state use; no
// internal locking is provided.
type config struct {
	failFast   bool
	coerce     bool
	tagName    string
	exclusions map[string]struct{}
	logger     *slog.Logger
	events     Events
	mappers    []namedMapper
}

// namedMapper carries a mapper registration supplied via [WithMapper] until
// [New] registers it with the eager duplicate check.
type namedMapper struct {
	name string
	fn   MapperFunc
}

// WithFailFast enables the fail-fast error policy: the first default-path
// access failure aborts the conversion. Properties already written are not
// rolled back. The default policy is lenient: failures are logged at debug
// severity and the property is skipped.
//
// Example:
//
//	c := mapping.MustNew(mapping.WithFailFast())
func WithFailFast() Option {
	return func(c *config) {
		c.failFast = true
	}
}

// WithExclusions replaces the exclusion set wholesale. There is no incremental
// add: the given names become the entire set, dropping [DefaultExclusions].
// An excluded property is never read or written, even when a mapper is
// registered under its name.
//
// Example:
//
//	c := mapping.MustNew(mapping.WithExclusions("id", "createdAt"))
func WithExclusions(names ...string) Option {
	return func(c *config) {
		c.exclusions = make(map[string]struct{}, len(names))
		for _, n := range names {
			c.exclusions[n] = struct{}{}
		}
	}
}

// WithMapper registers a per-property override function. Registering two
// mappers under the same name makes [New] fail with [DuplicateMapperError]
// (and [MustNew] panic).
//
// Example:
//
//	c := mapping.MustNew(
//	    mapping.WithMapper("total", func(src mapping.Value) (any, error) {
//	        n, _ := src.Read("net")
//	        return nil, src.Write("total", n)
//	    }),
//	)
func WithMapper(name string, fn MapperFunc) Option {
	return func(c *config) {
		c.mappers = append(c.mappers, namedMapper{name: name, fn: fn})
	}
}

// WithLogger sets the logger used for lenient-policy skip messages.
// The default is [slog.Default].
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithEvents sets observability hooks.
//
// Example:
//
//	c := mapping.MustNew(mapping.WithEvents(mapping.Events{
//	    Done: func(stats mapping.Stats) {
//	        log.Printf("copied %d properties", stats.Copied)
//	    },
//	}))
func WithEvents(events Events) Option {
	return func(c *config) {
		c.events = events
	}
}

// WithCoercion enables scalar coercion on the default copy path: when a write
// fails with a type mismatch, the value is coerced to the target property type
// (string "42" into an int field, number into a string field, and so on) and
// the write is retried. Without this option the mismatch is routed to the
// error policy unchanged.
func WithCoercion() Option {
	return func(c *config) {
		c.coerce = true
	}
}

// WithTagName sets the struct tag consulted for property names on structured
// representations. The default is [DefaultTagName].
//
// Example:
//
//	c := mapping.MustNew(mapping.WithTagName("json"))
func WithTagName(tag string) Option {
	return func(c *config) {
		c.tagName = tag
	}
}

// defaultConfig returns converter defaults: lenient error policy, the
// built-in exclusion set, and the default struct tag.
func defaultConfig() *config {
	exclusions := make(map[string]struct{}, len(DefaultExclusions))
	for _, n := range DefaultExclusions {
		exclusions[n] = struct{}{}
	}

	return &config{
		tagName:    DefaultTagName,
		exclusions: exclusions,
		logger:     slog.Default(),
	}
}

// validate checks configuration invariants.
func (c *config) validate() error {
	if c.tagName == "" {
		return ErrEmptyTagName
	}

	return nil
}

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
	"testing"
)

// TestConverter creates a Converter configured for testing. Lenient-path skip
// messages are routed to the test log so failures stay attributable to their
// test.
//
// Example:
//
//	func TestMyFeature(t *testing.T) {
//	    c := mapping.TestConverter(t)
//	    // use c in test
//	}
func TestConverter(t *testing.T, opts ...Option) *Converter {
	t.Helper()

	defaultOpts := []Option{
		WithLogger(slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))),
	}

	// User-provided options override defaults
	allOpts := append(defaultOpts, opts...)

	c, err := New(allOpts...)
	if err != nil {
		t.Fatalf("TestConverter: failed to create converter: %v", err)
	}

	return c
}

// TestMapValue creates a MapValue from key-value pairs for testing.
//
// Example:
//
//	m := mapping.TestMapValue(t, "name", "Ada", "age", 36)
func TestMapValue(t *testing.T, pairs ...any) MapValue {
	t.Helper()

	if len(pairs)%2 != 0 {
		t.Fatalf("TestMapValue: pairs must be key-value pairs, got odd number of arguments")
	}

	m := make(MapValue, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			t.Fatalf("TestMapValue: key at position %d is %T, want string", i, pairs[i])
		}
		m[key] = pairs[i+1]
	}

	return m
}

// testWriter adapts testing.T to io.Writer for the test logger.
type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

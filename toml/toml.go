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

// Package toml turns TOML documents into map representations for the mapping
// engine, using github.com/BurntSushi/toml for parsing.
//
// Example:
//
//	src, err := toml.Source(body)
//	if err != nil {
//	    // handle error
//	}
//	err = converter.Convert(src, &cfg)
package toml

import (
	"io"

	"github.com/BurntSushi/toml"

	"rivaas.dev/mapping"
)

// Source decodes a TOML document into a map representation.
//
// Example:
//
//	src, err := toml.Source([]byte("name = \"svc\"\nport = 8080\n"))
func Source(body []byte) (mapping.MapValue, error) {
	var m map[string]any
	if err := toml.Unmarshal(body, &m); err != nil {
		return nil, err
	}

	return mapping.MapValue(m), nil
}

// SourceReader decodes a TOML document from an io.Reader into a map
// representation.
//
// Example:
//
//	src, err := toml.SourceReader(file)
func SourceReader(r io.Reader) (mapping.MapValue, error) {
	var m map[string]any
	if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
		return nil, err
	}

	return mapping.MapValue(m), nil
}

// Into decodes a TOML document and converts it into a fresh T through the
// mapping engine, so exclusions, mappers, and the error policy apply.
//
// Example:
//
//	cfg, err := toml.Into[Config](body)
func Into[T any](body []byte, opts ...mapping.Option) (T, error) {
	src, err := Source(body)
	if err != nil {
		var zero T
		return zero, err
	}

	return mapping.Into[T](src, opts...)
}

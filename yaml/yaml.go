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

// Package yaml turns YAML documents into map representations for the mapping
// engine, using gopkg.in/yaml.v3 for parsing.
//
// Example:
//
//	src, err := yaml.Source(body)
//	if err != nil {
//	    // handle error
//	}
//	err = converter.Convert(src, &cfg)
package yaml

import (
	"io"

	"gopkg.in/yaml.v3"

	"rivaas.dev/mapping"
)

// Source decodes a YAML document into a map representation. The document's
// top level must be a mapping.
//
// Example:
//
//	src, err := yaml.Source([]byte("name: svc\nport: 8080\n"))
func Source(body []byte) (mapping.MapValue, error) {
	var m map[string]any
	if err := yaml.Unmarshal(body, &m); err != nil {
		return nil, err
	}

	return mapping.MapValue(m), nil
}

// SourceReader decodes a YAML document from an io.Reader into a map
// representation.
//
// Example:
//
//	src, err := yaml.SourceReader(file)
func SourceReader(r io.Reader) (mapping.MapValue, error) {
	var m map[string]any
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, err
	}

	return mapping.MapValue(m), nil
}

// Into decodes a YAML document and converts it into a fresh T through the
// mapping engine, so exclusions, mappers, and the error policy apply.
//
// Example:
//
//	cfg, err := yaml.Into[Config](body, mapping.WithCoercion())
func Into[T any](body []byte, opts ...mapping.Option) (T, error) {
	src, err := Source(body)
	if err != nil {
		var zero T
		return zero, err
	}

	return mapping.Into[T](src, opts...)
}

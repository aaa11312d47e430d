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
	"maps"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
)

var (
	// RCU pattern: atomic pointer to immutable map
	structInfoCachePtr atomic.Pointer[map[cacheKey]*structInfo]

	// Write-side lock (only for cache updates)
	structInfoCacheMu sync.Mutex
)

func init() {
	m := make(map[cacheKey]*structInfo)
	structInfoCachePtr.Store(&m)
}

// cacheKey is the key for the struct field-table cache.
type cacheKey struct {
	typ reflect.Type
	tag string
}

// structInfo is the accessor table of a struct type: its exposed property
// names mapped to field index paths. Built once per (type, tag) pair.
type structInfo struct {
	fields []fieldInfo
	byName map[string]int // property name -> index into fields
}

// fieldInfo describes one exposed property of a struct type.
type fieldInfo struct {
	name  string       // exposed property name (tag or field name)
	index []int        // field index path, through embedded structs
	typ   reflect.Type // field type
}

// getStructInfo retrieves or parses the accessor table for a struct type.
// It uses a read-copy-update pattern for concurrent access: reads are
// lock-free, and concurrent misses for the same type+tag parse only once
// (double-check locking).
func getStructInfo(typ reflect.Type, tag string) *structInfo {
	if typ == nil {
		panic("mapping: getStructInfo called with nil type")
	}
	if tag == "" {
		panic("mapping: getStructInfo called with empty tag")
	}

	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		panic(fmt.Sprintf("mapping: getStructInfo expects struct, got %s", typ.Kind()))
	}

	key := cacheKey{typ: typ, tag: tag}

	// Lock-free read from the current map
	m := structInfoCachePtr.Load()
	if si, ok := (*m)[key]; ok {
		return si
	}

	structInfoCacheMu.Lock()
	defer structInfoCacheMu.Unlock()

	// Double-check: another goroutine might have populated it
	m = structInfoCachePtr.Load()
	if si, ok := (*m)[key]; ok {
		return si
	}

	si := parseStructType(typ, tag, nil)
	resolveFieldNames(si)

	// Copy-on-write: create new map with added entry
	newMap := make(map[cacheKey]*structInfo, len(*m)+1)
	maps.Copy(newMap, *m)
	newMap[key] = si

	structInfoCachePtr.Store(&newMap)

	return si
}

// parseStructType recursively parses struct fields into an accessor table.
// It flattens embedded structs (by value or pointer, including those of
// unexported type) and skips unexported named fields and fields tagged "-".
// The indexPrefix parameter tracks the field index path for nested access.
// Name collisions are resolved afterwards by resolveFieldNames.
func parseStructType(t reflect.Type, tag string, indexPrefix []int) *structInfo {
	info := &structInfo{
		fields: make([]fieldInfo, 0, t.NumField()),
	}

	for i := range t.NumField() {
		field := t.Field(i)

		index := make([]int, 0, len(indexPrefix)+1)
		index = append(index, indexPrefix...)
		index = append(index, i)

		fieldType := field.Type
		kind := fieldType.Kind()
		if kind == reflect.Pointer && fieldType.Elem().Kind() == reflect.Struct {
			fieldType = fieldType.Elem()
			kind = reflect.Struct
		}

		// Embedded structs are flattened before the exported check: an
		// embedded field of unexported struct type still promotes its
		// exported fields, as in encoding/json.
		if field.Anonymous && kind == reflect.Struct && field.Tag.Get(tag) == "" {
			embedded := parseStructType(fieldType, tag, index)
			info.fields = append(info.fields, embedded.fields...)

			continue
		}

		if !field.IsExported() {
			continue
		}

		name := field.Name
		if tagValue := field.Tag.Get(tag); tagValue != "" {
			if tagValue == "-" {
				continue
			}
			// Strip options ("name,omitempty" style) from the tag value
			name, _, _ = strings.Cut(tagValue, ",")
			if name == "" {
				name = field.Name
			}
		}

		info.fields = append(info.fields, fieldInfo{
			name:  name,
			index: index,
			typ:   field.Type,
		})
	}

	return info
}

// resolveFieldNames deduplicates property names after embedded flattening and
// builds the name lookup table. A shallower field shadows a deeper promoted
// one, matching Go's field promotion rules; at equal depth the first
// declaration wins. Each name appears exactly once in the resulting field list.
func resolveFieldNames(si *structInfo) {
	fields := make([]fieldInfo, 0, len(si.fields))
	byName := make(map[string]int, len(si.fields))

	for _, f := range si.fields {
		j, seen := byName[f.name]
		if !seen {
			byName[f.name] = len(fields)
			fields = append(fields, f)

			continue
		}
		if len(f.index) < len(fields[j].index) {
			fields[j] = f
		}
	}

	si.fields = fields
	si.byName = byName
}

// WarmupCache pre-parses struct types to populate the accessor-table cache.
// Call during application startup after defining your representation types.
// Non-struct values are silently skipped.
//
// Example:
//
//	mapping.WarmupCache(
//	    UserRecord{},
//	    AccountRecord{},
//	)
func WarmupCache(types ...any) {
	for _, t := range types {
		typ := reflect.TypeOf(t)
		if typ == nil {
			continue
		}
		if typ.Kind() == reflect.Pointer {
			typ = typ.Elem()
		}
		if typ.Kind() != reflect.Struct {
			continue
		}

		getStructInfo(typ, DefaultTagName)
	}
}

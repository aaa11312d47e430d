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

//go:build !integration

package mapping

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStructInfo_Cached(t *testing.T) {
	t.Parallel()

	type record struct {
		Name string `map:"name"`
	}

	typ := reflect.TypeFor[record]()
	first := getStructInfo(typ, DefaultTagName)
	second := getStructInfo(typ, DefaultTagName)

	assert.Same(t, first, second, "repeated lookups must return the cached table")
}

func TestGetStructInfo_DistinctPerTag(t *testing.T) {
	t.Parallel()

	type record struct {
		Name string `map:"mapped" json:"jsonName"`
	}

	typ := reflect.TypeFor[record]()
	mapInfo := getStructInfo(typ, "map")
	jsonInfo := getStructInfo(typ, "json")

	require.NotSame(t, mapInfo, jsonInfo)
	assert.Equal(t, "mapped", mapInfo.fields[0].name)
	assert.Equal(t, "jsonName", jsonInfo.fields[0].name)
}

func TestGetStructInfo_PointerNormalized(t *testing.T) {
	t.Parallel()

	type record struct {
		Name string `map:"name"`
	}

	direct := getStructInfo(reflect.TypeFor[record](), DefaultTagName)
	viaPtr := getStructInfo(reflect.TypeFor[*record](), DefaultTagName)

	assert.Same(t, direct, viaPtr)
}

func TestGetStructInfo_Concurrent(t *testing.T) {
	t.Parallel()

	type record struct {
		A string `map:"a"`
		B int    `map:"b"`
	}

	typ := reflect.TypeFor[record]()

	const goroutines = 32
	results := make([]*structInfo, goroutines)

	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = getStructInfo(typ, DefaultTagName)
		}()
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, results[0], results[i])
	}
}

// An embedded field of unexported struct type promotes its exported fields
// into the accessor table.
func TestGetStructInfo_UnexportedEmbeddedType(t *testing.T) {
	t.Parallel()

	type base struct {
		ID string `map:"id"`
	}
	type viaValue struct {
		base
		Name string `map:"name"`
	}
	type viaPointer struct {
		*base
		Name string `map:"name"`
	}

	valueInfo := getStructInfo(reflect.TypeFor[viaValue](), DefaultTagName)
	require.Len(t, valueInfo.fields, 2)
	assert.Equal(t, "id", valueInfo.fields[0].name)
	assert.Equal(t, "name", valueInfo.fields[1].name)

	ptrInfo := getStructInfo(reflect.TypeFor[viaPointer](), DefaultTagName)
	require.Len(t, ptrInfo.fields, 2)
	assert.Equal(t, "id", ptrInfo.fields[0].name)
}

func TestGetStructInfo_ShadowedNameDeduplicated(t *testing.T) {
	t.Parallel()

	type base struct {
		Name string `map:"name"`
	}
	type record struct {
		base
		Name string `map:"name"`
	}

	info := getStructInfo(reflect.TypeFor[record](), DefaultTagName)
	require.Len(t, info.fields, 1, "shadowed name must appear once")
	assert.Equal(t, []int{1}, info.fields[0].index, "the shallower field wins")
}

func TestGetStructInfo_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { getStructInfo(nil, DefaultTagName) })
	assert.Panics(t, func() { getStructInfo(reflect.TypeFor[struct{}](), "") })
	assert.Panics(t, func() { getStructInfo(reflect.TypeFor[int](), DefaultTagName) })
}

func TestWarmupCache(t *testing.T) {
	t.Parallel()

	type warm struct {
		Name string `map:"name"`
	}

	// Non-struct values are silently skipped; structs end up cached.
	WarmupCache(warm{}, &warm{}, 42, nil, "skip")

	info := getStructInfo(reflect.TypeFor[warm](), DefaultTagName)
	require.Len(t, info.fields, 1)
	assert.Equal(t, "name", info.fields[0].name)
}

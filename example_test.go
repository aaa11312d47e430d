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

package mapping_test

import (
	"fmt"

	"rivaas.dev/mapping"
)

type account struct {
	Owner   string `map:"owner"`
	Balance int    `map:"balance"`
}

func ExampleConvert() {
	var acc account
	err := mapping.Convert(map[string]any{"owner": "ada", "balance": 100}, &acc)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(acc.Owner, acc.Balance)
	// Output: ada 100
}

func ExampleInto() {
	acc, err := mapping.Into[account](map[string]any{"owner": "ada", "balance": 100})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(acc.Owner, acc.Balance)
	// Output: ada 100
}

func ExampleNew() {
	c, err := mapping.New(mapping.WithExclusions("balance"))
	if err != nil {
		fmt.Println(err)
		return
	}

	var acc account
	if err := c.Convert(map[string]any{"owner": "ada", "balance": 100}, &acc); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(acc.Owner, acc.Balance)
	// Output: ada 0
}

func ExampleConverter_AddMapper() {
	c := mapping.MustNew()

	// The mapper owns the property: it reads from the source and performs
	// any writes itself. Its return value is ignored by Convert.
	err := c.AddMapper("balance", func(source mapping.Value) (any, error) {
		raw, err := source.Read("balance")
		if err != nil {
			return nil, err
		}

		fmt.Println("balance seen:", raw)
		return nil, nil
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	var acc account
	if err := c.Convert(map[string]any{"owner": "ada", "balance": 100}, &acc); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(acc.Owner, acc.Balance)
	// Output:
	// balance seen: 100
	// ada 0
}

func ExampleWithCoercion() {
	acc, err := mapping.Into[account](
		map[string]any{"owner": "ada", "balance": "100"},
		mapping.WithCoercion(),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(acc.Balance)
	// Output: 100
}

func ExampleWithFailFast() {
	_, err := mapping.Into[account](
		map[string]any{"owner": "ada", "balance": "not a number"},
		mapping.WithFailFast(),
	)

	fmt.Println(err != nil)
	// Output: true
}

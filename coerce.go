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
	"reflect"

	"github.com/spf13/cast"
)

// coerceValue coerces v to the given scalar type. It backs [WithCoercion]:
// the converter calls it only after a write failed with a type mismatch, so
// the result is re-written through the representation, which handles named
// types via its native numeric conversion.
func coerceValue(v any, t reflect.Type) (any, error) {
	switch t {
	case timeType:
		return cast.ToTimeE(v)
	case durationType:
		return cast.ToDurationE(v)
	}

	switch t.Kind() {
	case reflect.String:
		return cast.ToStringE(v)
	case reflect.Bool:
		return cast.ToBoolE(v)
	case reflect.Int:
		return cast.ToIntE(v)
	case reflect.Int8:
		return cast.ToInt8E(v)
	case reflect.Int16:
		return cast.ToInt16E(v)
	case reflect.Int32:
		return cast.ToInt32E(v)
	case reflect.Int64:
		return cast.ToInt64E(v)
	case reflect.Uint:
		return cast.ToUintE(v)
	case reflect.Uint8:
		return cast.ToUint8E(v)
	case reflect.Uint16:
		return cast.ToUint16E(v)
	case reflect.Uint32:
		return cast.ToUint32E(v)
	case reflect.Uint64:
		return cast.ToUint64E(v)
	case reflect.Float32:
		return cast.ToFloat32E(v)
	case reflect.Float64:
		return cast.ToFloat64E(v)
	default:
		return nil, fmt.Errorf("%w: cannot coerce %T to %s", ErrTypeMismatch, v, t)
	}
}

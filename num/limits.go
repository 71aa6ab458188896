// Copyright 2025 Zintix Labs
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

package num

import (
	"math"
	"reflect"
)

// Highest 回傳 T 可表示的最大有限值。
func Highest[T Numbers]() T {
	var z T
	switch reflect.TypeOf(z).Kind() {
	case reflect.Int:
		v := math.MaxInt
		return T(v)
	case reflect.Int8:
		v := math.MaxInt8
		return T(v)
	case reflect.Int16:
		v := math.MaxInt16
		return T(v)
	case reflect.Int32:
		v := math.MaxInt32
		return T(v)
	case reflect.Int64:
		var v int64 = math.MaxInt64
		return T(v)
	case reflect.Uint, reflect.Uintptr:
		var v uint64 = math.MaxUint64
		if reflect.TypeOf(z).Size() == 4 {
			v = math.MaxUint32
		}
		return T(v)
	case reflect.Uint8:
		v := math.MaxUint8
		return T(v)
	case reflect.Uint16:
		v := math.MaxUint16
		return T(v)
	case reflect.Uint32:
		var v uint32 = math.MaxUint32
		return T(v)
	case reflect.Uint64:
		var v uint64 = math.MaxUint64
		return T(v)
	case reflect.Float32:
		var v float32 = math.MaxFloat32
		return T(v)
	default:
		v := math.MaxFloat64
		return T(v)
	}
}

// Lowest 回傳 T 可表示的最小有限值（浮點數為 -Max，而非最小正數）。
func Lowest[T Numbers]() T {
	var z T
	switch reflect.TypeOf(z).Kind() {
	case reflect.Int:
		v := math.MinInt
		return T(v)
	case reflect.Int8:
		v := math.MinInt8
		return T(v)
	case reflect.Int16:
		v := math.MinInt16
		return T(v)
	case reflect.Int32:
		v := math.MinInt32
		return T(v)
	case reflect.Int64:
		var v int64 = math.MinInt64
		return T(v)
	case reflect.Float32:
		var v float32 = -math.MaxFloat32
		return T(v)
	case reflect.Float64:
		v := -math.MaxFloat64
		return T(v)
	default:
		return 0
	}
}

// IsFloat 判斷 T 是否為浮點數型別。
func IsFloat[T Numbers]() bool {
	var z T
	k := reflect.TypeOf(z).Kind()
	return k == reflect.Float32 || k == reflect.Float64
}

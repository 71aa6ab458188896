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

// Package rounded 提供每次修改後都依捨入方法 M 校正的數值。
//
// 不變量：Value() 永遠等於 M.Round(Value())。
package rounded

import (
	"fmt"
	"math"
	"reflect"

	"github.com/zintix-labs/numlab/num"
)

// Method 為捨入方法。
type Method[T num.Numbers] interface {
	Round(v T) T
}

// NearestInt 捨入到最近的整數，平手時取偶數。整數型別不變。
type NearestInt[T num.Numbers] struct{}

func (NearestInt[T]) Round(v T) T {
	if !num.IsFloat[T]() {
		return v
	}
	return T(math.RoundToEven(float64(v)))
}

// Nearest 捨入到 Unit 的最近整數倍，平手時取偶數倍。
// Unit 不為正（含零值）時，整數型別以 1、浮點數以機器 epsilon 為單位。
type Nearest[T num.Numbers] struct {
	unit T
}

// Unit 建立以 u 為單位的捨入方法。
func Unit[T num.Numbers](u T) Nearest[T] {
	return Nearest[T]{unit: u}
}

// Unit 回傳實際使用的單位。
func (n Nearest[T]) Unit() T {
	if n.unit > 0 {
		return n.unit
	}
	if !num.IsFloat[T]() {
		return 1
	}
	var z T
	if reflect.TypeOf(z).Kind() == reflect.Float32 {
		var eps float32 = 0x1p-23
		return T(eps)
	}
	var eps float64 = 0x1p-52
	return T(eps)
}

func (n Nearest[T]) Round(v T) T {
	u := n.Unit()
	if num.IsFloat[T]() {
		f := float64(v)
		return T(f - math.Remainder(f, float64(u)))
	}
	if unsigned[T]() {
		x, y := uint64(v), uint64(u)
		q, r := x/y, x%y
		if r > y-r || (r == y-r && q%2 == 1) {
			q++
		}
		return T(q * y)
	}
	x, y := int64(v), int64(u)
	q, r := x/y, x%y
	ar := max(r, -r)
	if ar > y-ar || (ar == y-ar && q%2 != 0) {
		if x < 0 {
			q--
		} else {
			q++
		}
	}
	return T(q * y)
}

// Rounded 為經 M 捨入的值。
type Rounded[T num.Numbers, M Method[T]] struct {
	v T
	m M
}

type (
	// Grid 捨入到固定單位的倍數。
	Grid[T num.Numbers] = Rounded[T, Nearest[T]]
	// Whole 捨入到整數。
	Whole[T num.Numbers] = Rounded[T, NearestInt[T]]
)

// New 以方法 m 捨入 v 後建立。
func New[T num.Numbers, M Method[T]](v T, m M) Rounded[T, M] {
	return Rounded[T, M]{v: m.Round(v), m: m}
}

// ToNearest 將 v 捨入到 unit 的倍數。
func ToNearest[T num.Numbers](v, unit T) Grid[T] {
	return New(v, Unit(unit))
}

// ToNearestInt 將 v 捨入到整數。
func ToNearestInt[T num.Numbers](v T) Whole[T] {
	return New(v, NearestInt[T]{})
}

func (r Rounded[T, M]) Value() T  { return r.v }
func (r Rounded[T, M]) Method() M { return r.m }

// Set 捨入後指定新值。
func (r *Rounded[T, M]) Set(v T) { r.v = r.m.Round(v) }

func (r *Rounded[T, M]) Add(d T) { r.Set(r.v + d) }
func (r *Rounded[T, M]) Sub(d T) { r.Set(r.v - d) }
func (r *Rounded[T, M]) Mul(d T) { r.Set(r.v * d) }
func (r *Rounded[T, M]) Div(d T) { r.Set(r.v / d) }
func (r *Rounded[T, M]) Inc()    { r.Add(1) }
func (r *Rounded[T, M]) Dec()    { r.Sub(1) }

// Mod 以 d 取餘數後捨入；浮點數使用 math.Mod。
func (r *Rounded[T, M]) Mod(d T) {
	if num.IsFloat[T]() {
		r.Set(T(math.Mod(float64(r.v), float64(d))))
		return
	}
	r.Set(modInt(r.v, d))
}

// Neg 回傳 -v 捨入後的副本。
func (r Rounded[T, M]) Neg() Rounded[T, M] {
	return New(-r.v, r.m)
}

// Abs 回傳 |v|。
func (r Rounded[T, M]) Abs() Rounded[T, M] {
	if r.v < 0 {
		return r.Neg()
	}
	return r
}

// Compare 比較 r 與 v：小於 / 等於 / 大於分別回傳 -1 / 0 / 1。含 NaN 時回傳 -1。
func (r Rounded[T, M]) Compare(v T) int {
	switch {
	case r.v == v:
		return 0
	case r.v > v:
		return 1
	default:
		return -1
	}
}

func (r Rounded[T, M]) Equal(v T) bool { return r.v == v }

// ApproxEqual 以 num.Real 的相對 / 絕對容差比較。
func (r Rounded[T, M]) ApproxEqual(v T, tol float64) bool {
	return num.Real(r.v).ApproxEqual(num.Real(v), tol)
}

func (r Rounded[T, M]) IsNaN() bool    { return r.v != r.v }
func (r Rounded[T, M]) IsInf() bool    { return math.IsInf(float64(r.v), 0) }
func (r Rounded[T, M]) IsFinite() bool { return !r.IsNaN() && !r.IsInf() }

func (r Rounded[T, M]) String() string {
	return fmt.Sprint(r.v)
}

func modInt[T num.Numbers](a, b T) T {
	if unsigned[T]() {
		return T(uint64(a) % uint64(b))
	}
	return T(int64(a) % int64(b))
}

func unsigned[T num.Numbers]() bool {
	var z T
	return z-1 > z
}

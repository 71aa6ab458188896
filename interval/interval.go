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

// Package interval 提供閉區間 [min,max] 與區間算術。
//
// 不變量：任何建構或修改之後 min ≤ max。欄位不匯出，只能經由會維持不變量的方法修改。
package interval

import (
	"fmt"

	"github.com/zintix-labs/numlab/num"
)

// Interval 為閉區間 [min,max]。零值為 [0,0]。
type Interval[T num.Numbers] struct {
	min T
	max T
}

// New 建立區間，a > b 時自動交換。
func New[T num.Numbers](a, b T) Interval[T] {
	if b < a {
		a, b = b, a
	}
	return Interval[T]{min: a, max: b}
}

// Point 建立退化區間 [v,v]。
func Point[T num.Numbers](v T) Interval[T] {
	return Interval[T]{min: v, max: v}
}

// Full 回傳 T 可表示的最大區間 [lowest, highest]。
func Full[T num.Numbers]() Interval[T] {
	return Interval[T]{min: num.Lowest[T](), max: num.Highest[T]()}
}

func (iv Interval[T]) Min() T { return iv.min }
func (iv Interval[T]) Max() T { return iv.max }

// Width 回傳 max - min。
func (iv Interval[T]) Width() T { return iv.max - iv.min }

// Center 回傳中點（浮點數）。
func (iv Interval[T]) Center() float64 {
	return (float64(iv.min) + float64(iv.max)) / 2
}

// HalfWidth 回傳半寬（浮點數）。
func (iv Interval[T]) HalfWidth() float64 {
	return (float64(iv.max) - float64(iv.min)) / 2
}

// Set 重設邊界，a > b 時自動交換。
func (iv *Interval[T]) Set(a, b T) {
	*iv = New(a, b)
}

// Contains 判斷 v 是否落在 [min,max]。
func (iv Interval[T]) Contains(v T) bool {
	return iv.min <= v && v <= iv.max
}

// ContainsWithin 允許 tol 的外擴容差。
func (iv Interval[T]) ContainsWithin(v, tol T) bool {
	return subSat(iv.min, tol) <= v && v <= addSat(iv.max, tol)
}

// ContainsInterval 判斷 o 是否完全落在 iv 之內。
func (iv Interval[T]) ContainsInterval(o Interval[T]) bool {
	return iv.min <= o.min && o.max <= iv.max
}

// Intersects 判斷兩區間是否有交集（含端點相接）。
func (iv Interval[T]) Intersects(o Interval[T]) bool {
	return iv.min <= o.max && o.min <= iv.max
}

// Empty 寬度不大於 tol 時視為空。
func (iv Interval[T]) Empty(tol T) bool {
	return iv.Width() <= tol
}

// Expand 兩端各外擴 d；d 為負時內縮，交錯後重新排序。整數端點溢位時飽和。
func (iv *Interval[T]) Expand(d T) {
	*iv = New(subSat(iv.min, d), addSat(iv.max, d))
}

// ExpandInclude 擴張至包含 v。
func (iv *Interval[T]) ExpandInclude(v T) {
	if v < iv.min {
		iv.min = v
	}
	if v > iv.max {
		iv.max = v
	}
}

// Shift 整體平移 d。整數端點溢位時飽和，此時寬度會縮小。
func (iv *Interval[T]) Shift(d T) {
	iv.min = addSat(iv.min, d)
	iv.max = addSat(iv.max, d)
}

// Clamp 將 v 截斷到區間內。NaN 截斷為 min。
func (iv Interval[T]) Clamp(v T) T {
	if v != v {
		return iv.min
	}
	if v < iv.min {
		return iv.min
	}
	if v > iv.max {
		return iv.max
	}
	return v
}

// String 回傳 [min,max]。
func (iv Interval[T]) String() string {
	return fmt.Sprintf("[%v,%v]", iv.min, iv.max)
}

// Raw 回傳 "min max"。
func (iv Interval[T]) Raw() string {
	return fmt.Sprintf("%v %v", iv.min, iv.max)
}

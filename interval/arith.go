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

package interval

import "github.com/zintix-labs/numlab/num"

// Add : [a,b] + [c,d] = [a+c, b+d]
//
// 整數端點溢位時飽和在 Lowest / Highest。
func Add[T num.Numbers](x, y Interval[T]) Interval[T] {
	return Interval[T]{min: addSat(x.min, y.min), max: addSat(x.max, y.max)}
}

// Sub : [a,b] - [c,d] = [a-d, b-c]
//
// 整數端點溢位時飽和；無號整數的下限因此停在 0。
func Sub[T num.Numbers](x, y Interval[T]) Interval[T] {
	return Interval[T]{min: subSat(x.min, y.max), max: subSat(x.max, y.min)}
}

// Mul 取四個端點乘積的最小與最大值。
func Mul[T num.Numbers](x, y Interval[T]) Interval[T] {
	return span(x.min*y.min, x.min*y.max, x.max*y.min, x.max*y.max)
}

// Div 取四個端點商的最小與最大值。
// 除數區間含 0 時商無界，回傳 Full。
func Div[T num.Numbers](x, y Interval[T]) Interval[T] {
	if y.Contains(0) {
		return Full[T]()
	}
	return span(x.min/y.min, x.min/y.max, x.max/y.min, x.max/y.max)
}

// Scale 乘上純量 s，s 為負時端點交換。
func Scale[T num.Numbers](x Interval[T], s T) Interval[T] {
	return New(x.min*s, x.max*s)
}

// Hull 回傳同時包含 x 與 y 的最小區間。
func Hull[T num.Numbers](x, y Interval[T]) Interval[T] {
	return Interval[T]{min: min(x.min, y.min), max: max(x.max, y.max)}
}

// Intersection 回傳交集；沒有交集時 ok 為 false。
func Intersection[T num.Numbers](x, y Interval[T]) (Interval[T], bool) {
	if !x.Intersects(y) {
		return Interval[T]{}, false
	}
	return Interval[T]{min: max(x.min, y.min), max: min(x.max, y.max)}, true
}

func span[T num.Numbers](a, b, c, d T) Interval[T] {
	return Interval[T]{min: min(a, b, c, d), max: max(a, b, c, d)}
}

// addSat / subSat 只在整數溢位時改變結果；浮點數的比較條件不會成立。
// 兩者對 a 單調遞增、對 b 單調，因此保持 min ≤ max。
func addSat[T num.Numbers](a, b T) T {
	s := a + b
	if b > 0 && s < a {
		return num.Highest[T]()
	}
	if b < 0 && s > a {
		return num.Lowest[T]()
	}
	return s
}

func subSat[T num.Numbers](a, b T) T {
	s := a - b
	if b > 0 && s > a {
		return num.Lowest[T]()
	}
	if b < 0 && s < a {
		return num.Highest[T]()
	}
	return s
}

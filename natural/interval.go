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

package natural

import "github.com/zintix-labs/numlab/num"

// Interval 為 Natural 的閉區間，上界可以是 infinity。
type Interval[T num.Signed] struct {
	min Natural[T]
	max Natural[T]
}

// Unbounded 回傳 [0, inf]。
func Unbounded[T num.Signed]() Interval[T] {
	return Interval[T]{max: Infinity[T]()}
}

// UpTo 回傳 [0, hi]。
func UpTo[T num.Signed](hi Natural[T]) Interval[T] {
	return Interval[T]{max: hi}
}

// NewInterval 建立區間，端點順序不拘。
func NewInterval[T num.Signed](a, b Natural[T]) Interval[T] {
	if b.Less(a) {
		a, b = b, a
	}
	return Interval[T]{min: a, max: b}
}

func (iv Interval[T]) Min() Natural[T] { return iv.min }
func (iv Interval[T]) Max() Natural[T] { return iv.max }

func (iv Interval[T]) Contains(n Natural[T]) bool {
	return iv.min.Cmp(n) <= 0 && n.Cmp(iv.max) <= 0
}

func (iv Interval[T]) ContainsInterval(o Interval[T]) bool {
	return iv.min.Cmp(o.min) <= 0 && iv.max.Cmp(o.max) >= 0
}

func (iv Interval[T]) String() string {
	return "[" + iv.min.String() + "," + iv.max.String() + "]"
}

func (iv Interval[T]) Raw() string {
	return iv.min.String() + " " + iv.max.String()
}

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

package sequ

import (
	"iter"
	"math"

	"github.com/zintix-labs/numlab/num"
)

// Steppable 為可作為等差數列元素的型別（需要負步長，故不含無號整數）。
type Steppable interface {
	num.Signed | num.Floaters
}

// 浮點步數計算的容差，吸收 (bound-first)/stride 的捨入誤差。
const stepSlack = 1e-9

//---------------------------------------
// Linear
//---------------------------------------

// Linear 為 first, first+stride, ... 直到不超過 bound 的等差數列。
// stride 為負時往下走。stride 為 0 時只有 first 一個元素。
type Linear[T Steppable] struct {
	first, stride, bound T
}

func NewLinear[T Steppable](first, stride, bound T) Linear[T] {
	return Linear[T]{first: first, stride: stride, bound: bound}
}

// Ascending 為步長 +1 的等差數列。
func Ascending[T Steppable](first, bound T) Linear[T] { return NewLinear(first, 1, bound) }

// Descending 為步長 -1 的等差數列。
func Descending[T Steppable](first, bound T) Linear[T] { return NewLinear(first, -1, bound) }

func (l Linear[T]) Stride() T { return l.stride }

func (l Linear[T]) empty() bool {
	if l.stride >= 0 {
		return l.first > l.bound
	}
	return l.first < l.bound
}

func (l Linear[T]) Len() int {
	if l.empty() {
		return 0
	}
	if l.stride == 0 {
		return 1
	}
	if num.IsFloat[T]() {
		k := float64(l.bound-l.first) / float64(l.stride)
		return 1 + int(math.Floor(k+stepSlack*max(1, math.Abs(k))))
	}
	return 1 + int((l.bound-l.first)/l.stride)
}

func (l Linear[T]) At(i int) T { return l.first + l.stride*T(i) }

func (l Linear[T]) All() iter.Seq[T] { return indexed[T](l) }

//---------------------------------------
// Geometric
//---------------------------------------

// Geometric 為 scale, scale·base, scale·base², ... 直到越過 bound 的等比數列。
// base > 1 往上走，0 ≤ base < 1 往下走。
type Geometric[T num.Floaters] struct {
	scale, base, bound T
}

func NewGeometric[T num.Floaters](scale, base, bound T) Geometric[T] {
	return Geometric[T]{scale: scale, base: base, bound: bound}
}

// Powers 為 1, base, base², ... 直到 bound。
func Powers[T num.Floaters](base, bound T) Geometric[T] { return NewGeometric(1, base, bound) }

func (g Geometric[T]) Base() T { return g.base }

func (g Geometric[T]) empty() bool {
	up := g.base > 1
	if g.scale < 0 || g.bound < 0 {
		up = !up
	}
	if up {
		return g.scale > g.bound
	}
	return g.scale < g.bound
}

func (g Geometric[T]) Len() int {
	if g.empty() {
		return 0
	}
	k := math.Log(float64(g.bound)/float64(g.scale)) / math.Log(float64(g.base))
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return 1
	}
	return 1 + int(math.Floor(k+stepSlack*max(1, math.Abs(k))))
}

func (g Geometric[T]) At(i int) T {
	return g.scale * T(math.Pow(float64(g.base), float64(i)))
}

func (g Geometric[T]) All() iter.Seq[T] { return indexed[T](g) }

//---------------------------------------
// Fibonacci
//---------------------------------------

// Fibonacci 為前 n 個 Fibonacci 數 0, 1, 1, 2, 3, ...，溢位時依 T 的規則繞回。
type Fibonacci[T num.Integers] struct {
	n int
}

func NewFibonacci[T num.Integers](n int) Fibonacci[T] {
	return Fibonacci[T]{n: max(n, 0)}
}

func (f Fibonacci[T]) Len() int { return f.n }

// At 以 O(i) 迭代計算。
func (f Fibonacci[T]) At(i int) T {
	var cur, prev T = 0, 1
	for ; i > 0; i-- {
		cur, prev = cur+prev, cur
	}
	return cur
}

func (f Fibonacci[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		var cur, prev T = 0, 1
		for range f.n {
			if !yield(cur) {
				return
			}
			cur, prev = cur+prev, cur
		}
	}
}

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

// Package rational 提供整數分子/分母的有理數。
//
// 運算不會自動約分（避免每次都算 gcd），需要時呼叫 Normalize。
// 分母為 0 不做檢查，比較與 Float64 會得到 ±Inf/NaN。
package rational

import (
	"strconv"

	"github.com/zintix-labs/numlab/num"
)

// Rational 為 Num/Den。零值 0/0 不是合法有理數，請用 New 或 FromInt。
type Rational[T num.Signed] struct {
	Num T
	Den T
}

// New 建立 n/d（不約分）。
func New[T num.Signed](n, d T) Rational[T] {
	return Rational[T]{Num: n, Den: d}
}

// FromInt 建立 n/1。
func FromInt[T num.Signed](n T) Rational[T] {
	return Rational[T]{Num: n, Den: 1}
}

// Add : n1/d1 + n2/d2 = (n1 d2 + n2 d1)/(d1 d2)
func (a Rational[T]) Add(b Rational[T]) Rational[T] {
	return Rational[T]{Num: a.Num*b.Den + b.Num*a.Den, Den: a.Den * b.Den}
}

// Sub : n1/d1 - n2/d2 = (n1 d2 - n2 d1)/(d1 d2)
func (a Rational[T]) Sub(b Rational[T]) Rational[T] {
	return Rational[T]{Num: a.Num*b.Den - b.Num*a.Den, Den: a.Den * b.Den}
}

func (a Rational[T]) Mul(b Rational[T]) Rational[T] {
	return Rational[T]{Num: a.Num * b.Num, Den: a.Den * b.Den}
}

// Div : (n1/d1)/(n2/d2) = (n1 d2)/(d1 n2)
func (a Rational[T]) Div(b Rational[T]) Rational[T] {
	return Rational[T]{Num: a.Num * b.Den, Den: a.Den * b.Num}
}

func (a Rational[T]) Neg() Rational[T] {
	return Rational[T]{Num: -a.Num, Den: a.Den}
}

func (a Rational[T]) AddInt(n T) Rational[T] { return Rational[T]{Num: a.Num + n*a.Den, Den: a.Den} }
func (a Rational[T]) SubInt(n T) Rational[T] { return Rational[T]{Num: a.Num - n*a.Den, Den: a.Den} }
func (a Rational[T]) MulInt(n T) Rational[T] { return Rational[T]{Num: a.Num * n, Den: a.Den} }
func (a Rational[T]) DivInt(n T) Rational[T] { return Rational[T]{Num: a.Num, Den: a.Den * n} }

// Reciprocal 回傳 d/n，符號移到分子。
func (a Rational[T]) Reciprocal() Rational[T] {
	if a.Num < 0 {
		return Rational[T]{Num: -a.Den, Den: -a.Num}
	}
	return Rational[T]{Num: a.Den, Den: a.Num}
}

// Normalize 就地約分，並讓分母為正。
func (a *Rational[T]) Normalize() {
	if a.Den < 0 {
		a.Num, a.Den = -a.Num, -a.Den
	}
	g := gcd(abs(a.Num), a.Den)
	if g > 1 {
		a.Num /= g
		a.Den /= g
	}
}

// Normalized 回傳約分後的副本。
func (a Rational[T]) Normalized() Rational[T] {
	a.Normalize()
	return a
}

// Cmp 回傳 -1、0、+1。分母需非零。
func (a Rational[T]) Cmp(b Rational[T]) int {
	x, y := a.Normalized(), b.Normalized()
	l := x.Num * y.Den
	r := y.Num * x.Den
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

// Equal 判斷數值相等（1/2 與 2/4 相等）。
func (a Rational[T]) Equal(b Rational[T]) bool {
	return a.Cmp(b) == 0
}

func (a Rational[T]) Float64() float64 {
	return float64(a.Num) / float64(a.Den)
}

// String 回傳 "n/d"。
func (a Rational[T]) String() string {
	return strconv.FormatInt(int64(a.Num), 10) + "/" + strconv.FormatInt(int64(a.Den), 10)
}

func gcd[T num.Signed](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs[T num.Signed](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

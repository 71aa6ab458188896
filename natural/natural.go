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

// Package natural 提供「安全的無號整數」：值域為 [0, max] 或 infinity，
// 運算飽和而不溢位繞回。
//
// 內部以有號整數儲存，-1 代表 infinity。
package natural

import (
	"strconv"

	"github.com/zintix-labs/numlab/num"
)

const infty = -1

// Natural 為非負整數或 infinity。零值即 0。
type Natural[T num.Signed] struct {
	v T
}

// New 建立 Natural，負值視為 0。
func New[T num.Signed](v T) Natural[T] {
	if v < 0 {
		v = 0
	}
	return Natural[T]{v: v}
}

func Zero[T num.Signed]() Natural[T]     { return Natural[T]{} }
func Max[T num.Signed]() Natural[T]      { return Natural[T]{v: num.Highest[T]()} }
func Infinity[T num.Signed]() Natural[T] { return Natural[T]{v: infty} }

func (n Natural[T]) IsInf() bool    { return n.v < 0 }
func (n Natural[T]) IsFinite() bool { return n.v >= 0 }
func (n Natural[T]) IsZero() bool   { return n.v == 0 }

// Value 回傳數值；infinity 時回傳 T 的最大值。
func (n Natural[T]) Value() T {
	if n.IsInf() {
		return num.Highest[T]()
	}
	return n.v
}

// Int64 回傳 (值, 是否有限)。
func (n Natural[T]) Int64() (int64, bool) {
	if n.IsInf() {
		return 0, false
	}
	return int64(n.v), true
}

// Add 飽和加法：任一為 infinity 則為 infinity，超過 max 則停在 max。
func (n Natural[T]) Add(o Natural[T]) Natural[T] {
	if n.IsInf() || o.IsInf() {
		return Infinity[T]()
	}
	hi := num.Highest[T]()
	if hi-n.v < o.v {
		return Natural[T]{v: hi}
	}
	return Natural[T]{v: n.v + o.v}
}

// Sub 下限為 0：inf-inf = 0、inf-x = inf、x-inf = 0。
func (n Natural[T]) Sub(o Natural[T]) Natural[T] {
	switch {
	case n.IsInf() && o.IsInf():
		return Zero[T]()
	case n.IsInf():
		return n
	case o.IsInf() || o.v > n.v:
		return Zero[T]()
	}
	return Natural[T]{v: n.v - o.v}
}

// Mul 飽和乘法：0 乘任何數（含 infinity）為 0。
func (n Natural[T]) Mul(o Natural[T]) Natural[T] {
	if n.IsZero() || o.IsZero() {
		return Zero[T]()
	}
	if n.IsInf() || o.IsInf() {
		return Infinity[T]()
	}
	hi := num.Highest[T]()
	if n.v > hi/o.v {
		return Natural[T]{v: hi}
	}
	return Natural[T]{v: n.v * o.v}
}

func (n Natural[T]) AddInt(v T) Natural[T] { return n.Add(New(v)) }
func (n Natural[T]) SubInt(v T) Natural[T] { return n.Sub(New(v)) }
func (n Natural[T]) MulInt(v T) Natural[T] { return n.Mul(New(v)) }

// Inc 加一，停在 max；infinity 不變。
func (n *Natural[T]) Inc() {
	if n.v >= 0 && n.v < num.Highest[T]() {
		n.v++
	}
}

// Dec 減一，停在 0；infinity 不變。
func (n *Natural[T]) Dec() {
	if n.v > 0 {
		n.v--
	}
}

// Cmp 回傳 -1、0、+1。infinity 大於所有有限值，兩個 infinity 相等。
func (n Natural[T]) Cmp(o Natural[T]) int {
	switch {
	case n.IsInf() && o.IsInf():
		return 0
	case n.IsInf():
		return 1
	case o.IsInf():
		return -1
	case n.v < o.v:
		return -1
	case n.v > o.v:
		return 1
	}
	return 0
}

func (n Natural[T]) Equal(o Natural[T]) bool { return n.Cmp(o) == 0 }
func (n Natural[T]) Less(o Natural[T]) bool  { return n.Cmp(o) < 0 }

// String 回傳十進位數字，infinity 為 "inf"。
func (n Natural[T]) String() string {
	if n.IsInf() {
		return "inf"
	}
	return strconv.FormatInt(int64(n.v), 10)
}

// Raw 為 "#n"，infinity 為 "oo"。
func (n Natural[T]) Raw() string {
	if n.IsInf() {
		return "oo"
	}
	return "#" + strconv.FormatInt(int64(n.v), 10)
}

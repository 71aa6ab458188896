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

// Package sequ 提供有限數列產生器：等差、等比、Fibonacci，以及重複與串接組合。
//
// 所有數列都是值型別，以 At 隨機存取、以 All 迭代，不持有游標狀態。
package sequ

import (
	"iter"
	"slices"
)

// Sequence 為長度已知的有限數列。
type Sequence[T any] interface {
	Len() int
	At(i int) T
	All() iter.Seq[T]
}

// Collect 將數列展開成 slice。
func Collect[T any](s Sequence[T]) []T {
	out := make([]T, 0, s.Len())
	return slices.AppendSeq(out, s.All())
}

// First 回傳第一個元素；空數列回傳 false。
func First[T any](s Sequence[T]) (T, bool) {
	if s.Len() == 0 {
		var z T
		return z, false
	}
	return s.At(0), true
}

// Last 回傳最後一個元素；空數列回傳 false。
func Last[T any](s Sequence[T]) (T, bool) {
	n := s.Len()
	if n == 0 {
		var z T
		return z, false
	}
	return s.At(n - 1), true
}

func indexed[T any](s Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		n := s.Len()
		for i := 0; i < n; i++ {
			if !yield(s.At(i)) {
				return
			}
		}
	}
}

//---------------------------------------
// Repeated / Combined / Map
//---------------------------------------

// Repeated 先走完 head，再把 rep 重複 times 次。
type Repeated[T any] struct {
	head  Sequence[T]
	rep   Sequence[T]
	times int
}

// Repeat 將 s 走完後再重複 times 次（總共 times+1 趟）。
func Repeat[T any](s Sequence[T], times int) Repeated[T] {
	return Repeated[T]{head: s, rep: s, times: max(times, 0)}
}

// RepeatWith 先走完 head，再把 rep 重複 times 次。
func RepeatWith[T any](head, rep Sequence[T], times int) Repeated[T] {
	return Repeated[T]{head: head, rep: rep, times: max(times, 0)}
}

func (r Repeated[T]) Len() int {
	return r.head.Len() + r.times*r.rep.Len()
}

func (r Repeated[T]) At(i int) T {
	if n := r.head.Len(); i >= n {
		return r.rep.At((i - n) % r.rep.Len())
	}
	return r.head.At(i)
}

func (r Repeated[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range r.head.All() {
			if !yield(v) {
				return
			}
		}
		for range r.times {
			for v := range r.rep.All() {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Combined 串接兩個數列。
type Combined[T any] struct {
	a, b Sequence[T]
}

func Combine[T any](a, b Sequence[T]) Combined[T] {
	return Combined[T]{a: a, b: b}
}

func (c Combined[T]) Len() int { return c.a.Len() + c.b.Len() }

func (c Combined[T]) At(i int) T {
	if n := c.a.Len(); i >= n {
		return c.b.At(i - n)
	}
	return c.a.At(i)
}

func (c Combined[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range c.a.All() {
			if !yield(v) {
				return
			}
		}
		for v := range c.b.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Mapped 對底層數列逐元素套用 f，常用於型別轉換（例如 int 數列轉 float64 後再 Combine）。
type Mapped[T, U any] struct {
	src Sequence[T]
	f   func(T) U
}

func Map[T, U any](s Sequence[T], f func(T) U) Mapped[T, U] {
	return Mapped[T, U]{src: s, f: f}
}

func (m Mapped[T, U]) Len() int   { return m.src.Len() }
func (m Mapped[T, U]) At(i int) U { return m.f(m.src.At(i)) }

func (m Mapped[T, U]) All() iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range m.src.All() {
			if !yield(m.f(v)) {
				return
			}
		}
	}
}

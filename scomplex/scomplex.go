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

// Package scomplex 提供分裂複數 a + bj（j² = +1），split-biquaternion 的係數型別。
package scomplex

import "github.com/zintix-labs/numlab/num"

// Scomplex 為分裂複數。
type Scomplex[T num.Analytic[T]] struct {
	Re T
	Im T
}

// New 建立 re + im·j。
func New[T num.Analytic[T]](re, im T) Scomplex[T] {
	return Scomplex[T]{Re: re, Im: im}
}

func (a Scomplex[T]) Add(b Scomplex[T]) Scomplex[T] {
	return Scomplex[T]{Re: a.Re.Add(b.Re), Im: a.Im.Add(b.Im)}
}

func (a Scomplex[T]) Sub(b Scomplex[T]) Scomplex[T] {
	return Scomplex[T]{Re: a.Re.Sub(b.Re), Im: a.Im.Sub(b.Im)}
}

// Mul : (a + bj)(c + dj) = (ac + bd) + (ad + bc)j
func (a Scomplex[T]) Mul(b Scomplex[T]) Scomplex[T] {
	return Scomplex[T]{
		Re: a.Re.Mul(b.Re).Add(a.Im.Mul(b.Im)),
		Im: a.Re.Mul(b.Im).Add(a.Im.Mul(b.Re)),
	}
}

// Div : x·conj(y) / abs2(y)。abs2(y) = 0（光錐上的元素）時結果為 Inf/NaN。
func (a Scomplex[T]) Div(b Scomplex[T]) Scomplex[T] {
	n := a.Mul(b.Conj())
	d := b.Abs2()
	return Scomplex[T]{Re: n.Re.Div(d), Im: n.Im.Div(d)}
}

func (a Scomplex[T]) Neg() Scomplex[T] {
	return Scomplex[T]{Re: a.Re.Neg(), Im: a.Im.Neg()}
}

// Scale 兩個部分同乘 s。
func (a Scomplex[T]) Scale(s T) Scomplex[T] {
	return Scomplex[T]{Re: a.Re.Mul(s), Im: a.Im.Mul(s)}
}

// Conj 回傳 a - bj。
func (a Scomplex[T]) Conj() Scomplex[T] {
	return Scomplex[T]{Re: a.Re, Im: a.Im.Neg()}
}

// Abs2 回傳 a² - b²（可能為負）。
func (a Scomplex[T]) Abs2() T {
	return a.Re.Mul(a.Re).Sub(a.Im.Mul(a.Im))
}

// Abs 回傳 sqrt(a² - b²)。
func (a Scomplex[T]) Abs() T {
	return a.Abs2().Sqrt()
}

// ConjTimes 回傳 conj(a)·b。
func ConjTimes[T num.Analytic[T]](a, b Scomplex[T]) Scomplex[T] {
	return a.Conj().Mul(b)
}

//---------------------------------------
// num.Number 合約
//---------------------------------------

func (Scomplex[T]) FromFloat64(f float64) Scomplex[T] {
	return Scomplex[T]{Re: num.Const[T](f), Im: num.Zero[T]()}
}

func (a Scomplex[T]) Float64() float64   { return a.Re.Float64() }
func (a Scomplex[T]) Tolerance() float64 { return a.Re.Tolerance() }

func (a Scomplex[T]) ApproxEqual(b Scomplex[T], tol float64) bool {
	return a.Re.ApproxEqual(b.Re, tol) && a.Im.ApproxEqual(b.Im, tol)
}

func (a Scomplex[T]) IsNaN() bool    { return a.Re.IsNaN() || a.Im.IsNaN() }
func (a Scomplex[T]) IsInf() bool    { return a.Re.IsInf() || a.Im.IsInf() }
func (a Scomplex[T]) IsFinite() bool { return a.Re.IsFinite() && a.Im.IsFinite() }
func (a Scomplex[T]) IsNormal() bool { return a.Re.IsNormal() && a.Im.IsNormal() }

func (a Scomplex[T]) String() string {
	return "(" + a.Re.String() + "," + a.Im.String() + ")"
}

//---------------------------------------
// 解析函數
//---------------------------------------

// 在冪等基底 e± = (1 ± j)/2 下，a + bj = (a+b)e+ + (a-b)e-，
// 因此 f(a + bj) = (f(a+b) + f(a-b))/2 + (f(a+b) - f(a-b))/2 j。
func apply[T num.Analytic[T]](a Scomplex[T], f func(T) T) Scomplex[T] {
	p := f(a.Re.Add(a.Im))
	m := f(a.Re.Sub(a.Im))
	half := num.Const[T](0.5)
	return Scomplex[T]{Re: p.Add(m).Mul(half), Im: p.Sub(m).Mul(half)}
}

func (a Scomplex[T]) Sqrt() Scomplex[T] { return apply(a, func(x T) T { return x.Sqrt() }) }
func (a Scomplex[T]) Sin() Scomplex[T]  { return apply(a, func(x T) T { return x.Sin() }) }
func (a Scomplex[T]) Cos() Scomplex[T]  { return apply(a, func(x T) T { return x.Cos() }) }
func (a Scomplex[T]) Acos() Scomplex[T] { return apply(a, func(x T) T { return x.Acos() }) }
func (a Scomplex[T]) Exp() Scomplex[T]  { return apply(a, func(x T) T { return x.Exp() }) }
func (a Scomplex[T]) Log() Scomplex[T]  { return apply(a, func(x T) T { return x.Log() }) }

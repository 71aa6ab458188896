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

// Package dual 提供對偶數 a + bε（ε² = 0）。
//
// Dual[T] 本身實作 num.Analytic，因此可以直接作為 quaternion 的係數（dual quaternion），
// 也可以用來做前向自動微分：f(x + ε) = f(x) + f'(x)ε。
package dual

import (
	"github.com/zintix-labs/numlab/num"
)

// Dual 為對偶數，Re 為實部，Du 為對偶部。
type Dual[T num.Analytic[T]] struct {
	Re T
	Du T
}

// New 建立 re + du·ε。
func New[T num.Analytic[T]](re, du T) Dual[T] {
	return Dual[T]{Re: re, Du: du}
}

// Var 建立自變數 x + 1ε，用於求導。
func Var[T num.Analytic[T]](x T) Dual[T] {
	return Dual[T]{Re: x, Du: num.One[T]()}
}

// Derivative 回傳 f 在 x 的一階導數。
func Derivative[T num.Analytic[T]](f func(Dual[T]) Dual[T], x T) T {
	return f(Var(x)).Du
}

//---------------------------------------
// 算術
//---------------------------------------

func (a Dual[T]) Add(b Dual[T]) Dual[T] {
	return Dual[T]{Re: a.Re.Add(b.Re), Du: a.Du.Add(b.Du)}
}

func (a Dual[T]) Sub(b Dual[T]) Dual[T] {
	return Dual[T]{Re: a.Re.Sub(b.Re), Du: a.Du.Sub(b.Du)}
}

// Mul : (a + bε)(c + dε) = ac + (ad + bc)ε
func (a Dual[T]) Mul(b Dual[T]) Dual[T] {
	return Dual[T]{
		Re: a.Re.Mul(b.Re),
		Du: a.Re.Mul(b.Du).Add(a.Du.Mul(b.Re)),
	}
}

// Div : (a + bε)/(c + dε) = a/c + (bc - ad)/c² ε
func (a Dual[T]) Div(b Dual[T]) Dual[T] {
	c2 := b.Re.Mul(b.Re)
	return Dual[T]{
		Re: a.Re.Div(b.Re),
		Du: a.Du.Mul(b.Re).Sub(a.Re.Mul(b.Du)).Div(c2),
	}
}

func (a Dual[T]) Neg() Dual[T] {
	return Dual[T]{Re: a.Re.Neg(), Du: a.Du.Neg()}
}

// AddScalar 只加到實部。
func (a Dual[T]) AddScalar(s T) Dual[T] {
	return Dual[T]{Re: a.Re.Add(s), Du: a.Du}
}

// SubScalar 只從實部扣除。
func (a Dual[T]) SubScalar(s T) Dual[T] {
	return Dual[T]{Re: a.Re.Sub(s), Du: a.Du}
}

// Scale 兩個部分同乘 s。
func (a Dual[T]) Scale(s T) Dual[T] {
	return Dual[T]{Re: a.Re.Mul(s), Du: a.Du.Mul(s)}
}

// Conj 對偶共軛 a - bε。
func (a Dual[T]) Conj() Dual[T] {
	return Dual[T]{Re: a.Re, Du: a.Du.Neg()}
}

// TimesConj 回傳 a·conj(b)。
func TimesConj[T num.Analytic[T]](a, b Dual[T]) Dual[T] {
	return a.Mul(b.Conj())
}

// ConjTimes 回傳 conj(a)·b。
func ConjTimes[T num.Analytic[T]](a, b Dual[T]) Dual[T] {
	return a.Conj().Mul(b)
}

//---------------------------------------
// num.Number 合約
//---------------------------------------

func (Dual[T]) FromFloat64(f float64) Dual[T] {
	return Dual[T]{Re: num.Const[T](f), Du: num.Zero[T]()}
}

// Float64 回傳實部的主分量。
func (a Dual[T]) Float64() float64 { return a.Re.Float64() }

func (a Dual[T]) Tolerance() float64 { return a.Re.Tolerance() }

func (a Dual[T]) ApproxEqual(b Dual[T], tol float64) bool {
	return a.Re.ApproxEqual(b.Re, tol) && a.Du.ApproxEqual(b.Du, tol)
}

func (a Dual[T]) IsNaN() bool    { return a.Re.IsNaN() || a.Du.IsNaN() }
func (a Dual[T]) IsInf() bool    { return a.Re.IsInf() || a.Du.IsInf() }
func (a Dual[T]) IsFinite() bool { return a.Re.IsFinite() && a.Du.IsFinite() }
func (a Dual[T]) IsNormal() bool { return a.Re.IsNormal() && a.Du.IsNormal() }

// String 輸出 (re,du)。
func (a Dual[T]) String() string {
	return "(" + a.Re.String() + "," + a.Du.String() + ")"
}

// Less 以實部比較大小。
func (a Dual[T]) Less(b Dual[T]) bool {
	return a.Re.Float64() < b.Re.Float64()
}

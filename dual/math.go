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

package dual

import (
	"math"

	"github.com/zintix-labs/numlab/num"
)

// 所有函數皆遵守 f(a + bε) = f(a) + b·f'(a)ε。
// 實部只用到 T 的 Analytic 函數，其餘三角/雙曲函數由它們組合而成。

func (a Dual[T]) Sqrt() Dual[T] {
	s := a.Re.Sqrt()
	two := num.Const[T](2)
	return Dual[T]{Re: s, Du: a.Du.Div(two.Mul(s))}
}

func (a Dual[T]) Sin() Dual[T] {
	return Dual[T]{Re: a.Re.Sin(), Du: a.Du.Mul(a.Re.Cos())}
}

func (a Dual[T]) Cos() Dual[T] {
	return Dual[T]{Re: a.Re.Cos(), Du: a.Du.Mul(a.Re.Sin()).Neg()}
}

// Tan : d/cos²
func (a Dual[T]) Tan() Dual[T] {
	c := a.Re.Cos()
	return Dual[T]{Re: a.Re.Sin().Div(c), Du: a.Du.Div(c.Mul(c))}
}

// Acos : -d/sqrt(1-r²)
func (a Dual[T]) Acos() Dual[T] {
	return Dual[T]{Re: a.Re.Acos(), Du: a.Du.Div(oneMinusSq(a.Re).Sqrt()).Neg()}
}

// Asin : d/sqrt(1-r²)
func (a Dual[T]) Asin() Dual[T] {
	halfPi := num.Const[T](math.Pi / 2)
	return Dual[T]{Re: halfPi.Sub(a.Re.Acos()), Du: a.Du.Div(oneMinusSq(a.Re).Sqrt())}
}

// Atan : d/(1+r²)
func (a Dual[T]) Atan() Dual[T] {
	one := num.One[T]()
	den := one.Add(a.Re.Mul(a.Re))
	// atan(x) = asin(x/sqrt(1+x²)) = π/2 - acos(x/sqrt(1+x²))
	halfPi := num.Const[T](math.Pi / 2)
	re := halfPi.Sub(a.Re.Div(den.Sqrt()).Acos())
	return Dual[T]{Re: re, Du: a.Du.Div(den)}
}

func (a Dual[T]) Sinh() Dual[T] {
	return Dual[T]{Re: sinh(a.Re), Du: a.Du.Mul(cosh(a.Re))}
}

func (a Dual[T]) Cosh() Dual[T] {
	return Dual[T]{Re: cosh(a.Re), Du: a.Du.Mul(sinh(a.Re))}
}

// Tanh : d/cosh²
func (a Dual[T]) Tanh() Dual[T] {
	c := cosh(a.Re)
	return Dual[T]{Re: sinh(a.Re).Div(c), Du: a.Du.Div(c.Mul(c))}
}

func (a Dual[T]) Exp() Dual[T] {
	e := a.Re.Exp()
	return Dual[T]{Re: e, Du: a.Du.Mul(e)}
}

// Log : d/r
func (a Dual[T]) Log() Dual[T] {
	return Dual[T]{Re: a.Re.Log(), Du: a.Du.Div(a.Re)}
}

// PowScalar : r^e + d·e·r^(e-1) ε，r 需為正。
func (a Dual[T]) PowScalar(e T) Dual[T] {
	lr := a.Re.Log()
	re := e.Mul(lr).Exp()
	em1 := e.Sub(num.One[T]())
	return Dual[T]{Re: re, Du: a.Du.Mul(e).Mul(em1.Mul(lr).Exp())}
}

// Pow 以 exp(e·log(a)) 計算對偶數次方。
func (a Dual[T]) Pow(e Dual[T]) Dual[T] {
	return e.Mul(a.Log()).Exp()
}

// Erf 為誤差函數，導數 2/√π·e^(-x²)。
func Erf(a Dual[num.Real]) Dual[num.Real] {
	x := float64(a.Re)
	d := 2 / math.SqrtPi * math.Exp(-x*x)
	return Dual[num.Real]{Re: num.Real(math.Erf(x)), Du: a.Du * num.Real(d)}
}

func oneMinusSq[T num.Analytic[T]](x T) T {
	return num.One[T]().Sub(x.Mul(x))
}

func sinh[T num.Analytic[T]](x T) T {
	half := num.Const[T](0.5)
	return x.Exp().Sub(x.Neg().Exp()).Mul(half)
}

func cosh[T num.Analytic[T]](x T) T {
	half := num.Const[T](0.5)
	return x.Exp().Add(x.Neg().Exp()).Mul(half)
}

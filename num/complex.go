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

package num

import (
	"math/cmplx"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

// Complex 為雙精度複數係數，biquaternion 的分量型別。
type Complex complex128

// NewComplex 以實部與虛部建構 Complex。
func NewComplex(re, im float64) Complex {
	return Complex(complex(re, im))
}

func (a Complex) Add(b Complex) Complex { return a + b }
func (a Complex) Sub(b Complex) Complex { return a - b }
func (a Complex) Mul(b Complex) Complex { return a * b }
func (a Complex) Div(b Complex) Complex { return a / b }
func (a Complex) Neg() Complex          { return -a }

func (Complex) FromFloat64(f float64) Complex { return Complex(complex(f, 0)) }

// Float64 回傳實部。
func (a Complex) Float64() float64 { return real(a) }
func (Complex) Tolerance() float64 { return TolFloat64 }

// Re 回傳實部。
func (a Complex) Re() float64 { return real(a) }

// Im 回傳虛部。
func (a Complex) Im() float64 { return imag(a) }

// Conj 回傳共軛複數。
func (a Complex) Conj() Complex { return Complex(cmplx.Conj(complex128(a))) }

// ApproxEqual 分別比較實部與虛部。
func (a Complex) ApproxEqual(b Complex, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(real(a), real(b), tol, tol) &&
		scalar.EqualWithinAbsOrRel(imag(a), imag(b), tol, tol)
}

func (a Complex) IsNaN() bool    { return cmplx.IsNaN(complex128(a)) }
func (a Complex) IsInf() bool    { return cmplx.IsInf(complex128(a)) }
func (a Complex) IsFinite() bool { return isFinite(real(a)) && isFinite(imag(a)) }

// IsNormal 要求實部與虛部皆為正規數。
func (a Complex) IsNormal() bool {
	return isNormal(real(a), smallestNormal64) && isNormal(imag(a), smallestNormal64)
}

func (a Complex) Sqrt() Complex { return Complex(cmplx.Sqrt(complex128(a))) }
func (a Complex) Sin() Complex  { return Complex(cmplx.Sin(complex128(a))) }
func (a Complex) Cos() Complex  { return Complex(cmplx.Cos(complex128(a))) }
func (a Complex) Acos() Complex { return Complex(cmplx.Acos(complex128(a))) }
func (a Complex) Exp() Complex  { return Complex(cmplx.Exp(complex128(a))) }
func (a Complex) Log() Complex  { return Complex(cmplx.Log(complex128(a))) }

// String 輸出 (re,im)。
func (a Complex) String() string {
	return "(" + strconv.FormatFloat(real(a), 'g', -1, 64) + "," +
		strconv.FormatFloat(imag(a), 'g', -1, 64) + ")"
}

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
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// TolFloat64 為雙精度係數的預設容差
	TolFloat64 = 1e-11
	// TolFloat32 為單精度係數的預設容差
	TolFloat32 = 1e-4

	smallestNormal32 = 1.17549435082228750796873653722224568e-38
	smallestNormal64 = 2.2250738585072014e-308
)

// Real 為雙精度實數係數。
type Real float64

func (a Real) Add(b Real) Real { return a + b }
func (a Real) Sub(b Real) Real { return a - b }
func (a Real) Mul(b Real) Real { return a * b }
func (a Real) Div(b Real) Real { return a / b }
func (a Real) Neg() Real       { return -a }

func (Real) FromFloat64(f float64) Real { return Real(f) }
func (a Real) Float64() float64         { return float64(a) }
func (Real) Tolerance() float64         { return TolFloat64 }

// ApproxEqual 以絕對或相對容差比較（任一成立即視為相等）。
func (a Real) ApproxEqual(b Real, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(float64(a), float64(b), tol, tol)
}

func (a Real) IsNaN() bool    { return math.IsNaN(float64(a)) }
func (a Real) IsInf() bool    { return math.IsInf(float64(a), 0) }
func (a Real) IsFinite() bool { return isFinite(float64(a)) }
func (a Real) IsNormal() bool { return isNormal(float64(a), smallestNormal64) }

func (a Real) Sqrt() Real { return Real(math.Sqrt(float64(a))) }
func (a Real) Sin() Real  { return Real(math.Sin(float64(a))) }
func (a Real) Cos() Real  { return Real(math.Cos(float64(a))) }
func (a Real) Acos() Real { return Real(math.Acos(float64(a))) }
func (a Real) Exp() Real  { return Real(math.Exp(float64(a))) }
func (a Real) Log() Real  { return Real(math.Log(float64(a))) }

func (a Real) String() string {
	return strconv.FormatFloat(float64(a), 'g', -1, 64)
}

// Real32 為單精度實數係數。運算在 float32 上進行，超越函數經由 float64 計算後截斷。
type Real32 float32

func (a Real32) Add(b Real32) Real32 { return a + b }
func (a Real32) Sub(b Real32) Real32 { return a - b }
func (a Real32) Mul(b Real32) Real32 { return a * b }
func (a Real32) Div(b Real32) Real32 { return a / b }
func (a Real32) Neg() Real32         { return -a }

func (Real32) FromFloat64(f float64) Real32 { return Real32(f) }
func (a Real32) Float64() float64           { return float64(a) }
func (Real32) Tolerance() float64           { return TolFloat32 }

func (a Real32) ApproxEqual(b Real32, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(float64(a), float64(b), tol, tol)
}

func (a Real32) IsNaN() bool    { return math.IsNaN(float64(a)) }
func (a Real32) IsInf() bool    { return math.IsInf(float64(a), 0) }
func (a Real32) IsFinite() bool { return isFinite(float64(a)) }
func (a Real32) IsNormal() bool { return isNormal(float64(a), smallestNormal32) }

func (a Real32) Sqrt() Real32 { return Real32(math.Sqrt(float64(a))) }
func (a Real32) Sin() Real32  { return Real32(math.Sin(float64(a))) }
func (a Real32) Cos() Real32  { return Real32(math.Cos(float64(a))) }
func (a Real32) Acos() Real32 { return Real32(math.Acos(float64(a))) }
func (a Real32) Exp() Real32  { return Real32(math.Exp(float64(a))) }
func (a Real32) Log() Real32  { return Real32(math.Log(float64(a))) }

func (a Real32) String() string {
	return strconv.FormatFloat(float64(a), 'g', -1, 32)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// isNormal 對應 C 的 isnormal：非零、非 NaN/Inf、且非次正規數。
func isNormal(f, smallest float64) bool {
	if f == 0 || !isFinite(f) {
		return false
	}
	return math.Abs(f) >= smallest
}

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

// Package num 定義 numlab 所有數值型別共用的泛型約束與係數合約。
//
// 兩層約束：
//   - Integers / Floaters / Numbers / Signed：內建數值型別的集合，給 interval、rational 等簡單型別使用。
//   - Number[C] / Analytic[C]：以方法描述的「係數」合約，quaternion 的四個分量皆為此型別。
//     Real、Real32、Complex 以及 dual.Dual、scomplex.Scomplex 都實作 Analytic。
package num

import "golang.org/x/exp/constraints"

// Integers 定義所有底層實現為整數型別的集合
type Integers interface {
	constraints.Integer
}

// Signed 定義所有底層實現為有號整數型別的集合
type Signed interface {
	constraints.Signed
}

// Floaters 定義所有底層實現為浮點數型別的集合
type Floaters interface {
	constraints.Float
}

// Numbers 定義所有底層實現為數值型別的集合（整數與浮點數）
type Numbers interface {
	Integers | Floaters
}

// Number 是 quaternion 係數的最小合約：環運算 + 常數建構 + 容差比較 + 分類謂詞。
//
// FromFloat64 不使用接收者的值，只用來在泛型程式中建構 0、1 等常數。
// Float64 回傳「主分量」（實數部），用於 slerp 等需要分支判斷的場合。
type Number[C any] interface {
	Add(C) C
	Sub(C) C
	Mul(C) C
	Div(C) C
	Neg() C

	FromFloat64(float64) C
	Float64() float64

	// Tolerance 回傳該精度下的比較容差（float64 約 1e-11，float32 約 1e-4）。
	Tolerance() float64
	ApproxEqual(C, float64) bool

	IsNaN() bool
	IsInf() bool
	IsFinite() bool
	IsNormal() bool

	String() string
}

// Analytic 在 Number 之上加入 quaternion 正規化、插值與 exp/log 所需的函數。
type Analytic[C any] interface {
	Number[C]
	Sqrt() C
	Sin() C
	Cos() C
	Acos() C
	Exp() C
	Log() C
}

// Const 以 float64 常數建構係數 C。
func Const[C Number[C]](f float64) C {
	var z C
	return z.FromFloat64(f)
}

// Zero 回傳 C 的加法單位元。
func Zero[C Number[C]]() C {
	return Const[C](0)
}

// One 回傳 C 的乘法單位元。
func One[C Number[C]]() C {
	return Const[C](1)
}

// Tolerance 回傳係數 C 的預設容差。
func Tolerance[C Number[C]]() float64 {
	var z C
	return z.Tolerance()
}

// Approx1 判斷 x 是否在容差內等於 1。
func Approx1[C Number[C]](x C) bool {
	return x.ApproxEqual(One[C](), x.Tolerance())
}

// Approx0 判斷 x 是否在容差內等於 0。
func Approx0[C Number[C]](x C) bool {
	return x.ApproxEqual(Zero[C](), x.Tolerance())
}

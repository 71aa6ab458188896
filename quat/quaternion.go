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

// Package quat 實作係數泛型的 quaternion w + xi + yj + zk。
//
// 係數 C 只需滿足 num.Number（環運算）即可相乘、共軛、計算 norm2；
// 正規化、反元素、插值（lerp / slerp / squad）與 exp / log / pow 需要 num.Analytic。
// 因為 Go 的方法不能額外加約束，這些操作以自由函數提供。
//
// 係數替換即得到各種變體：
//
//	Quaternion[num.Real]                    旋轉 quaternion
//	Quaternion[num.Complex]                 biquaternion（見 quat/biquat）
//	Quaternion[dual.Dual[num.Real]]         dual quaternion（見 quat/dualquat）
//	Quaternion[scomplex.Scomplex[num.Real]] split biquaternion（見 quat/splitquat）
//
// 所有運算都不檢查輸入：norm 為 0 的 quaternion 正規化會得到 NaN/Inf，
// 呼叫端需要時自行以 IsFinite / IsNormal 檢查。
package quat

import (
	"io"
	"strings"

	"github.com/zintix-labs/numlab/num"
)

// Quaternion 為 W + Xi + Yj + Zk。零值為零 quaternion，單位元請用 Identity。
type Quaternion[C num.Number[C]] struct {
	W C
	X C
	Y C
	Z C
}

// New 依 (w, x, y, z) 建立 quaternion。
func New[C num.Number[C]](w, x, y, z C) Quaternion[C] {
	return Quaternion[C]{W: w, X: x, Y: y, Z: z}
}

// Identity 回傳乘法單位元 (1,0,0,0)。
func Identity[C num.Number[C]]() Quaternion[C] {
	z := num.Zero[C]()
	return Quaternion[C]{W: num.One[C](), X: z, Y: z, Z: z}
}

// Scalar 回傳只有實部的 quaternion (w,0,0,0)。
func Scalar[C num.Number[C]](w C) Quaternion[C] {
	z := num.Zero[C]()
	return Quaternion[C]{W: w, X: z, Y: z, Z: z}
}

// Pure 回傳純虛 quaternion (0,x,y,z)。
func Pure[C num.Number[C]](x, y, z C) Quaternion[C] {
	return Quaternion[C]{W: num.Zero[C](), X: x, Y: y, Z: z}
}

func (q Quaternion[C]) Real() C  { return q.W }
func (q Quaternion[C]) ImagI() C { return q.X }
func (q Quaternion[C]) ImagJ() C { return q.Y }
func (q Quaternion[C]) ImagK() C { return q.Z }

// Vec 回傳虛部 (x,y,z)。
func (q Quaternion[C]) Vec() [3]C { return [3]C{q.X, q.Y, q.Z} }

// SetIdentity 就地重設為 (1,0,0,0)。
func (q *Quaternion[C]) SetIdentity() {
	*q = Identity[C]()
}

// Conjugate 就地將虛部取負，回傳自身以便串接。
func (q *Quaternion[C]) Conjugate() *Quaternion[C] {
	q.X = q.X.Neg()
	q.Y = q.Y.Neg()
	q.Z = q.Z.Neg()
	return q
}

// MulAssign 就地計算 q = q·p。
func (q *Quaternion[C]) MulAssign(p Quaternion[C]) *Quaternion[C] {
	*q = Mul(*q, p)
	return q
}

// AddAssign 就地計算 q = q + p。
func (q *Quaternion[C]) AddAssign(p Quaternion[C]) *Quaternion[C] {
	*q = Add(*q, p)
	return q
}

// ApproxEqual 逐分量比較。
func (q Quaternion[C]) ApproxEqual(p Quaternion[C], tol float64) bool {
	return q.W.ApproxEqual(p.W, tol) &&
		q.X.ApproxEqual(p.X, tol) &&
		q.Y.ApproxEqual(p.Y, tol) &&
		q.Z.ApproxEqual(p.Z, tol)
}

// String 回傳 print 形式 (w,x,y,z)。
func (q Quaternion[C]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(q.W.String())
	sb.WriteByte(',')
	sb.WriteString(q.X.String())
	sb.WriteByte(',')
	sb.WriteString(q.Y.String())
	sb.WriteByte(',')
	sb.WriteString(q.Z.String())
	sb.WriteByte(')')
	return sb.String()
}

// Raw 回傳以空白分隔的分量 "w x y z"（串流輸出形式）。
func (q Quaternion[C]) Raw() string {
	return q.W.String() + " " + q.X.String() + " " + q.Y.String() + " " + q.Z.String()
}

// Print 將 print 形式寫入 w。只供診斷使用，不是穩定的序列化格式。
func Print[C num.Number[C]](w io.Writer, q Quaternion[C]) error {
	_, err := io.WriteString(w, q.String())
	return err
}

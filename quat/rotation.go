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

package quat

import (
	"github.com/zintix-labs/numlab/num"
)

// FromAxisAngle 建立繞 axis 旋轉 angle（弧度）的單位 quaternion，axis 不需預先正規化。
func FromAxisAngle[C num.Analytic[C]](axis [3]C, angle C) Quaternion[C] {
	n := axis[0].Mul(axis[0]).Add(axis[1].Mul(axis[1])).Add(axis[2].Mul(axis[2])).Sqrt()
	half := angle.Mul(num.Const[C](0.5))
	k := half.Sin().Div(n)
	return Quaternion[C]{
		W: half.Cos(),
		X: axis[0].Mul(k),
		Y: axis[1].Mul(k),
		Z: axis[2].Mul(k),
	}
}

// AxisAngle 拆解單位 quaternion 為旋轉軸與角度（弧度，[0,2π]）。
// 角度趨近 0 時軸不確定，回傳 (1,0,0)。
func AxisAngle[C num.Analytic[C]](q Quaternion[C]) ([3]C, C) {
	one := num.One[C]()
	zero := num.Zero[C]()
	angle := num.Const[C](2).Mul(q.W.Acos())
	s := one.Sub(q.W.Mul(q.W)).Sqrt()
	if !(s.Float64() > s.Tolerance()) {
		return [3]C{one, zero, zero}, angle
	}
	return [3]C{q.X.Div(s), q.Y.Div(s), q.Z.Div(s)}, angle
}

// Rotate 以單位 quaternion q 旋轉向量 v：q·(0,v)·conj(q)。
func Rotate[C num.Number[C]](q Quaternion[C], v [3]C) [3]C {
	r := TimesConj(Mul(q, Pure(v[0], v[1], v[2])), q)
	return [3]C{r.X, r.Y, r.Z}
}

// Widen 將單精度 quaternion 提升為雙精度（無損）。
func Widen(q Quaternion[num.Real32]) Quaternion[num.Real] {
	return Quaternion[num.Real]{W: num.Real(q.W), X: num.Real(q.X), Y: num.Real(q.Y), Z: num.Real(q.Z)}
}

// Narrow 將雙精度 quaternion 截斷為單精度。會損失精度，因此不提供隱式轉換。
func Narrow(q Quaternion[num.Real]) Quaternion[num.Real32] {
	return Quaternion[num.Real32]{W: num.Real32(q.W), X: num.Real32(q.X), Y: num.Real32(q.Y), Z: num.Real32(q.Z)}
}

// MulMixed 以雙精度計算單精度與雙精度 quaternion 的乘積。
func MulMixed(p Quaternion[num.Real32], q Quaternion[num.Real]) Quaternion[num.Real] {
	return Mul(Widen(p), q)
}

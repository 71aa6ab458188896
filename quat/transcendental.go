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

import "github.com/zintix-labs/numlab/num"

// Log 回傳單位 quaternion 的對數 (0, φ·(x,y,z)/sinφ)，φ = acos(w)。
// sinφ 不為正（q 為 ±1，或 w 因漂移超出 [-1,1]）時回傳零 quaternion。
func Log[C num.Analytic[C]](q Quaternion[C]) Quaternion[C] {
	zero := num.Zero[C]()
	phi := q.W.Acos()
	sinPhi := phi.Sin()
	if !(sinPhi.Float64() > 0) {
		return Quaternion[C]{W: zero, X: zero, Y: zero, Z: zero}
	}
	k := phi.Div(sinPhi)
	return Quaternion[C]{W: zero, X: q.X.Mul(k), Y: q.Y.Mul(k), Z: q.Z.Mul(k)}
}

// Exp 回傳 e^w·(cosφ, sinφ/φ·(x,y,z))，φ = sqrt(x²+y²+z²) 為虛部的向量長度。
// 純虛輸入（Log 的輸出）時 e^w = 1。
func Exp[C num.Analytic[C]](q Quaternion[C]) Quaternion[C] {
	zero := num.Zero[C]()
	ew := q.W.Exp()
	phi := q.X.Mul(q.X).Add(q.Y.Mul(q.Y)).Add(q.Z.Mul(q.Z)).Sqrt()
	if phi.Float64() == 0 {
		return Quaternion[C]{W: ew, X: zero, Y: zero, Z: zero}
	}
	k := ew.Mul(phi.Sin().Div(phi))
	return Quaternion[C]{
		W: ew.Mul(phi.Cos()),
		X: q.X.Mul(k),
		Y: q.Y.Mul(k),
		Z: q.Z.Mul(k),
	}
}

// Pow 回傳 exp(log(q)·e)，只對單位 quaternion 有意義。
func Pow[C num.Analytic[C]](q Quaternion[C], e C) Quaternion[C] {
	return Exp(Scale(Log(q), e))
}

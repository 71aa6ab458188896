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
	"fmt"

	"github.com/zintix-labs/numlab/num"
)

// Debug 開啟後，插值函數會檢查 t ∈ [0,1]，不符時 panic。預設關閉，t 不做截斷。
var Debug = false

func checkT[C num.Number[C]](t C) {
	if !Debug {
		return
	}
	if f := t.Float64(); f < 0 || f > 1 {
		panic(fmt.Sprintf("quat: interpolation parameter %v outside [0,1]", f))
	}
}

// Lerp 逐分量線性插值 (1-t)·from + t·to，再正規化。
func Lerp[C num.Analytic[C]](from, to Quaternion[C], t C) Quaternion[C] {
	checkT(t)
	s := num.One[C]().Sub(t)
	r := Add(Scale(from, s), Scale(to, t))
	Normalize(&r)
	return r
}

// Slerp 球面線性插值，沿最短弧從 from 走到 to。
//
//   - cosφ = dot(from, to)；cosφ < 0 時改用 -cosφ，並以減法混合（走短弧）。
//   - 1-|cosφ| 小於容差時 sinφ 趨近 0，權重退化為 (1-t, t)。
//   - 否則權重為 sin((1-t)φ)/sinφ 與 sin(tφ)/sinφ。
//
// 輸入為單位 quaternion 時輸出也是單位 quaternion，因此不再正規化。
func Slerp[C num.Analytic[C]](from, to Quaternion[C], t C) Quaternion[C] {
	checkT(t)
	one := num.One[C]()

	cosPhi := Dot(from, to)
	flip := cosPhi.Float64() < 0
	if flip {
		cosPhi = cosPhi.Neg()
	}

	var s0, s1 C
	if one.Sub(cosPhi).Float64() < cosPhi.Tolerance() {
		s0 = one.Sub(t)
		s1 = t
	} else {
		phi := cosPhi.Acos()
		sinPhi := phi.Sin()
		s0 = one.Sub(t).Mul(phi).Sin().Div(sinPhi)
		s1 = t.Mul(phi).Sin().Div(sinPhi)
	}

	if flip {
		return Sub(Scale(from, s0), Scale(to, s1))
	}
	return Add(Scale(from, s0), Scale(to, s1))
}

// Squad 球面三次插值 slerp(slerp(q0,q3,t), slerp(q1,q2,t), 2t(1-t))。
// q0、q3 為區段端點，q1、q2 為控制點（見 SquadControl）。
func Squad[C num.Analytic[C]](q0, q1, q2, q3 Quaternion[C], t C) Quaternion[C] {
	one := num.One[C]()
	two := num.Const[C](2)
	a := Slerp(q0, q3, t)
	b := Slerp(q1, q2, t)
	return Slerp(a, b, two.Mul(t).Mul(one.Sub(t)))
}

// SquadControl 回傳關鍵影格 cur 的控制點
// cur·exp(-(log(cur⁻¹·next) + log(cur⁻¹·prev))/4)，讓相鄰區段在 cur 處切線連續。
func SquadControl[C num.Analytic[C]](prev, cur, next Quaternion[C]) Quaternion[C] {
	a := Log(InverseTimes(cur, next))
	b := Log(InverseTimes(cur, prev))
	s := Scale(Add(a, b), num.Const[C](-0.25))
	return Mul(cur, Exp(s))
}

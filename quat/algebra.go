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
	"math"

	"github.com/zintix-labs/numlab/num"
)

//---------------------------------------
// 逐分量運算
//---------------------------------------

// Conj 回傳共軛 (w,-x,-y,-z)。
func Conj[C num.Number[C]](q Quaternion[C]) Quaternion[C] {
	return Quaternion[C]{W: q.W, X: q.X.Neg(), Y: q.Y.Neg(), Z: q.Z.Neg()}
}

func Neg[C num.Number[C]](q Quaternion[C]) Quaternion[C] {
	return Quaternion[C]{W: q.W.Neg(), X: q.X.Neg(), Y: q.Y.Neg(), Z: q.Z.Neg()}
}

func Add[C num.Number[C]](a, b Quaternion[C]) Quaternion[C] {
	return Quaternion[C]{W: a.W.Add(b.W), X: a.X.Add(b.X), Y: a.Y.Add(b.Y), Z: a.Z.Add(b.Z)}
}

func Sub[C num.Number[C]](a, b Quaternion[C]) Quaternion[C] {
	return Quaternion[C]{W: a.W.Sub(b.W), X: a.X.Sub(b.X), Y: a.Y.Sub(b.Y), Z: a.Z.Sub(b.Z)}
}

// Scale 回傳 s·q。係數皆可交換，左乘與右乘相同。
func Scale[C num.Number[C]](q Quaternion[C], s C) Quaternion[C] {
	return Quaternion[C]{W: s.Mul(q.W), X: s.Mul(q.X), Y: s.Mul(q.Y), Z: s.Mul(q.Z)}
}

// DivScalar 回傳 q/s（四個分量各自除以 s）。
func DivScalar[C num.Number[C]](q Quaternion[C], s C) Quaternion[C] {
	return Quaternion[C]{W: q.W.Div(s), X: q.X.Div(s), Y: q.Y.Div(s), Z: q.Z.Div(s)}
}

// AddScalar 將 s 加到四個分量上。
func AddScalar[C num.Number[C]](q Quaternion[C], s C) Quaternion[C] {
	return Quaternion[C]{W: q.W.Add(s), X: q.X.Add(s), Y: q.Y.Add(s), Z: q.Z.Add(s)}
}

// SubScalar 將四個分量各自減去 s。
func SubScalar[C num.Number[C]](q Quaternion[C], s C) Quaternion[C] {
	return Quaternion[C]{W: q.W.Sub(s), X: q.X.Sub(s), Y: q.Y.Sub(s), Z: q.Z.Sub(s)}
}

//---------------------------------------
// 乘積
//---------------------------------------

// Mul 為 Hamilton 乘積 p·q（不可交換）。
func Mul[C num.Number[C]](p, q Quaternion[C]) Quaternion[C] {
	return Quaternion[C]{
		W: p.W.Mul(q.W).Sub(p.X.Mul(q.X)).Sub(p.Y.Mul(q.Y)).Sub(p.Z.Mul(q.Z)),
		X: p.W.Mul(q.X).Add(p.X.Mul(q.W)).Add(p.Y.Mul(q.Z)).Sub(p.Z.Mul(q.Y)),
		Y: p.W.Mul(q.Y).Sub(p.X.Mul(q.Z)).Add(p.Y.Mul(q.W)).Add(p.Z.Mul(q.X)),
		Z: p.W.Mul(q.Z).Add(p.X.Mul(q.Y)).Sub(p.Y.Mul(q.X)).Add(p.Z.Mul(q.W)),
	}
}

// TimesConj 回傳 p·conj(q)，共軛已展開在公式中。
func TimesConj[C num.Number[C]](p, q Quaternion[C]) Quaternion[C] {
	return Quaternion[C]{
		W: p.W.Mul(q.W).Add(p.X.Mul(q.X)).Add(p.Y.Mul(q.Y)).Add(p.Z.Mul(q.Z)),
		X: p.X.Mul(q.W).Sub(p.W.Mul(q.X)).Sub(p.Y.Mul(q.Z)).Add(p.Z.Mul(q.Y)),
		Y: p.Y.Mul(q.W).Sub(p.W.Mul(q.Y)).Add(p.X.Mul(q.Z)).Sub(p.Z.Mul(q.X)),
		Z: p.Z.Mul(q.W).Sub(p.W.Mul(q.Z)).Sub(p.X.Mul(q.Y)).Add(p.Y.Mul(q.X)),
	}
}

// ConjTimes 回傳 conj(p)·q，共軛已展開在公式中。
func ConjTimes[C num.Number[C]](p, q Quaternion[C]) Quaternion[C] {
	return Quaternion[C]{
		W: p.W.Mul(q.W).Add(p.X.Mul(q.X)).Add(p.Y.Mul(q.Y)).Add(p.Z.Mul(q.Z)),
		X: p.W.Mul(q.X).Sub(p.X.Mul(q.W)).Sub(p.Y.Mul(q.Z)).Add(p.Z.Mul(q.Y)),
		Y: p.W.Mul(q.Y).Add(p.X.Mul(q.Z)).Sub(p.Y.Mul(q.W)).Sub(p.Z.Mul(q.X)),
		Z: p.W.Mul(q.Z).Sub(p.X.Mul(q.Y)).Add(p.Y.Mul(q.X)).Sub(p.Z.Mul(q.W)),
	}
}

// Dot 回傳四維內積。
func Dot[C num.Number[C]](a, b Quaternion[C]) C {
	return a.W.Mul(b.W).Add(a.X.Mul(b.X)).Add(a.Y.Mul(b.Y)).Add(a.Z.Mul(b.Z))
}

//---------------------------------------
// Norm
//---------------------------------------

// Norm2 回傳平方和 w²+x²+y²+z²（不開根號）。
func Norm2[C num.Number[C]](q Quaternion[C]) C {
	return Dot(q, q)
}

// NormFloat 回傳提升為 float64 的 norm，整數係數也適用。
func NormFloat[C num.Number[C]](q Quaternion[C]) float64 {
	return math.Sqrt(Norm2(q).Float64())
}

// Distance2 回傳 norm2(a-b)。
func Distance2[C num.Number[C]](a, b Quaternion[C]) C {
	return Norm2(Sub(a, b))
}

// Norm 回傳 sqrt(norm2(q))。
func Norm[C num.Analytic[C]](q Quaternion[C]) C {
	return Norm2(q).Sqrt()
}

// Distance 回傳 norm(a-b)。
func Distance[C num.Analytic[C]](a, b Quaternion[C]) C {
	return Norm(Sub(a, b))
}

// IsNormalized 判斷 norm2 是否在容差內等於 1。
func IsNormalized[C num.Number[C]](q Quaternion[C]) bool {
	return num.Approx1(Norm2(q))
}

// Normalize 就地正規化。norm2 已在容差內等於 1 時不做任何事，避免重複開根號累積誤差。
func Normalize[C num.Analytic[C]](q *Quaternion[C]) *Quaternion[C] {
	n2 := Norm2(*q)
	if num.Approx1(n2) {
		return q
	}
	k := num.One[C]().Div(n2.Sqrt())
	*q = Scale(*q, k)
	return q
}

// Normalized 回傳正規化後的副本。
func Normalized[C num.Analytic[C]](q Quaternion[C]) Quaternion[C] {
	Normalize(&q)
	return q
}

// Invert 就地共軛後正規化，得到 q 所代表旋轉的反旋轉。
// 單位 quaternion 時即為乘法反元素；非單位時結果為 conj(q)/|q|，
// 代數上的反元素請用 Reciprocal。
func Invert[C num.Analytic[C]](q *Quaternion[C]) *Quaternion[C] {
	return Normalize(q.Conjugate())
}

// Inverse 回傳 Invert 的副本。
func Inverse[C num.Analytic[C]](q Quaternion[C]) Quaternion[C] {
	Invert(&q)
	return q
}

// Reciprocal 回傳代數反元素 conj(q)/norm2(q)，對任意非零 q 滿足 q·q⁻¹ = 1。
func Reciprocal[C num.Number[C]](q Quaternion[C]) Quaternion[C] {
	return DivScalar(Conj(q), Norm2(q))
}

// TimesInverse 回傳 p·inverse(q)。
func TimesInverse[C num.Analytic[C]](p, q Quaternion[C]) Quaternion[C] {
	return TimesConj(p, Normalized(q))
}

// InverseTimes 回傳 inverse(p)·q。
func InverseTimes[C num.Analytic[C]](p, q Quaternion[C]) Quaternion[C] {
	return ConjTimes(Normalized(p), q)
}

//---------------------------------------
// 分類謂詞
//---------------------------------------

// IsFinite 四個分量皆有限。
func IsFinite[C num.Number[C]](q Quaternion[C]) bool {
	return q.W.IsFinite() && q.X.IsFinite() && q.Y.IsFinite() && q.Z.IsFinite()
}

// IsNaN 任一分量為 NaN。
func IsNaN[C num.Number[C]](q Quaternion[C]) bool {
	return q.W.IsNaN() || q.X.IsNaN() || q.Y.IsNaN() || q.Z.IsNaN()
}

// IsInf 任一分量為 Inf。
func IsInf[C num.Number[C]](q Quaternion[C]) bool {
	return q.W.IsInf() || q.X.IsInf() || q.Y.IsInf() || q.Z.IsInf()
}

// IsNormal 四個分量皆為正規數（0 不算）。
func IsNormal[C num.Number[C]](q Quaternion[C]) bool {
	return q.W.IsNormal() && q.X.IsNormal() && q.Y.IsNormal() && q.Z.IsNormal()
}

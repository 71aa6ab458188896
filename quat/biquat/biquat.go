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

// Package biquat 為係數是複數的 quaternion（biquaternion）。
package biquat

import (
	"github.com/zintix-labs/numlab/num"
	"github.com/zintix-labs/numlab/quat"
)

// Biquaternion 為 quat.Quaternion[num.Complex]。
type Biquaternion = quat.Quaternion[num.Complex]

// New 由實部與虛部 quaternion 組成 r + i·m（i 為複數單位，與 quaternion 的 i 可交換）。
func New(r, m quat.Quaternion[num.Real]) Biquaternion {
	return Biquaternion{
		W: num.NewComplex(float64(r.W), float64(m.W)),
		X: num.NewComplex(float64(r.X), float64(m.X)),
		Y: num.NewComplex(float64(r.Y), float64(m.Y)),
		Z: num.NewComplex(float64(r.Z), float64(m.Z)),
	}
}

// Make 以八個純量建立 biquaternion。
func Make(rw, rx, ry, rz, mw, mx, my, mz float64) Biquaternion {
	return Biquaternion{
		W: num.NewComplex(rw, mw),
		X: num.NewComplex(rx, mx),
		Y: num.NewComplex(ry, my),
		Z: num.NewComplex(rz, mz),
	}
}

// Lift 將實 quaternion 提升為虛部為零的 biquaternion。
func Lift(q quat.Quaternion[num.Real]) Biquaternion {
	var zero quat.Quaternion[num.Real]
	return New(q, zero)
}

// Real 取出四個係數的實部。
func Real(b Biquaternion) quat.Quaternion[num.Real] {
	return quat.New(num.Real(b.W.Re()), num.Real(b.X.Re()), num.Real(b.Y.Re()), num.Real(b.Z.Re()))
}

// Imag 取出四個係數的虛部。
func Imag(b Biquaternion) quat.Quaternion[num.Real] {
	return quat.New(num.Real(b.W.Im()), num.Real(b.X.Im()), num.Real(b.Y.Im()), num.Real(b.Z.Im()))
}

// BiConj 對每個係數取複數共軛，不動 quaternion 結構的符號。
func BiConj(b Biquaternion) Biquaternion {
	return Biquaternion{W: b.W.Conj(), X: b.X.Conj(), Y: b.Y.Conj(), Z: b.Z.Conj()}
}

// FullConj 同時做 quaternion 共軛與複數共軛。
func FullConj(b Biquaternion) Biquaternion {
	return quat.Conj(BiConj(b))
}

// RealProduct 回傳兩者實部的 Hamilton 乘積。
func RealProduct(p, q Biquaternion) quat.Quaternion[num.Real] {
	return quat.Mul(Real(p), Real(q))
}

// ImagProduct 回傳兩者虛部的 Hamilton 乘積。
func ImagProduct(p, q Biquaternion) quat.Quaternion[num.Real] {
	return quat.Mul(Imag(p), Imag(q))
}

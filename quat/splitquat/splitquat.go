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

// Package splitquat 為係數是分裂複數的 quaternion（split biquaternion）。
package splitquat

import (
	"github.com/zintix-labs/numlab/num"
	"github.com/zintix-labs/numlab/quat"
	"github.com/zintix-labs/numlab/scomplex"
)

// SplitQuaternion 為 quat.Quaternion[scomplex.Scomplex[T]]。
type SplitQuaternion[T num.Analytic[T]] = quat.Quaternion[scomplex.Scomplex[T]]

// New 由主部與 j 部 quaternion 組成 r + j·m。
func New[T num.Analytic[T]](r, m quat.Quaternion[T]) SplitQuaternion[T] {
	return SplitQuaternion[T]{
		W: scomplex.New(r.W, m.W),
		X: scomplex.New(r.X, m.X),
		Y: scomplex.New(r.Y, m.Y),
		Z: scomplex.New(r.Z, m.Z),
	}
}

// Make 以八個純量建立 split biquaternion。
func Make[T num.Analytic[T]](rw, rx, ry, rz, mw, mx, my, mz T) SplitQuaternion[T] {
	return New(quat.New(rw, rx, ry, rz), quat.New(mw, mx, my, mz))
}

// Lift 將一般 quaternion 提升為 j 部為零的 split biquaternion。
func Lift[T num.Analytic[T]](q quat.Quaternion[T]) SplitQuaternion[T] {
	var zero quat.Quaternion[T]
	return New(q, zero)
}

// Real 取出四個係數的主部。
func Real[T num.Analytic[T]](s SplitQuaternion[T]) quat.Quaternion[T] {
	return quat.New(s.W.Re, s.X.Re, s.Y.Re, s.Z.Re)
}

// Imag 取出四個係數的 j 部。
func Imag[T num.Analytic[T]](s SplitQuaternion[T]) quat.Quaternion[T] {
	return quat.New(s.W.Im, s.X.Im, s.Y.Im, s.Z.Im)
}

// SplitConj 對每個係數取分裂共軛（j 部取負）。
func SplitConj[T num.Analytic[T]](s SplitQuaternion[T]) SplitQuaternion[T] {
	return SplitQuaternion[T]{W: s.W.Conj(), X: s.X.Conj(), Y: s.Y.Conj(), Z: s.Z.Conj()}
}

// FullConj 同時做 quaternion 共軛與分裂共軛。
func FullConj[T num.Analytic[T]](s SplitQuaternion[T]) SplitQuaternion[T] {
	return quat.Conj(SplitConj(s))
}

// RealProduct 回傳兩者主部的 Hamilton 乘積。
func RealProduct[T num.Analytic[T]](p, q SplitQuaternion[T]) quat.Quaternion[T] {
	return quat.Mul(Real(p), Real(q))
}

// ImagProduct 回傳兩者 j 部的 Hamilton 乘積。
func ImagProduct[T num.Analytic[T]](p, q SplitQuaternion[T]) quat.Quaternion[T] {
	return quat.Mul(Imag(p), Imag(q))
}

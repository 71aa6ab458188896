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

// Package dualquat 為係數是對偶數的 quaternion（dual quaternion），常用於剛體轉換（旋轉 + 平移）。
//
// 乘法、共軛、正規化、插值都直接沿用 quat 的泛型實作；
// 本包只補上對偶共軛、完全共軛、實部/對偶部投影與剛體轉換工具。
package dualquat

import (
	"github.com/zintix-labs/numlab/dual"
	"github.com/zintix-labs/numlab/num"
	"github.com/zintix-labs/numlab/quat"
)

// DualQuaternion 為 quat.Quaternion[dual.Dual[T]]，可直接傳給 quat 的所有函數。
type DualQuaternion[T num.Analytic[T]] = quat.Quaternion[dual.Dual[T]]

// New 由實部 quaternion 與對偶部 quaternion 組成 r + dε。
func New[T num.Analytic[T]](r, d quat.Quaternion[T]) DualQuaternion[T] {
	return DualQuaternion[T]{
		W: dual.New(r.W, d.W),
		X: dual.New(r.X, d.X),
		Y: dual.New(r.Y, d.Y),
		Z: dual.New(r.Z, d.Z),
	}
}

// Make 以八個純量建立 dual quaternion。
func Make[T num.Analytic[T]](rw, rx, ry, rz, dw, dx, dy, dz T) DualQuaternion[T] {
	return New(quat.New(rw, rx, ry, rz), quat.New(dw, dx, dy, dz))
}

// Lift 將一般 quaternion 提升為對偶部為零的 dual quaternion。
func Lift[T num.Analytic[T]](q quat.Quaternion[T]) DualQuaternion[T] {
	var zero quat.Quaternion[T]
	return New(q, zero)
}

// Real 取出四個係數的實部。
func Real[T num.Analytic[T]](dq DualQuaternion[T]) quat.Quaternion[T] {
	return quat.New(dq.W.Re, dq.X.Re, dq.Y.Re, dq.Z.Re)
}

// Imag 取出四個係數的對偶部。
func Imag[T num.Analytic[T]](dq DualQuaternion[T]) quat.Quaternion[T] {
	return quat.New(dq.W.Du, dq.X.Du, dq.Y.Du, dq.Z.Du)
}

// DualConj 對每個係數取對偶共軛（對偶部取負），不動 quaternion 結構的符號。
func DualConj[T num.Analytic[T]](dq DualQuaternion[T]) DualQuaternion[T] {
	return DualQuaternion[T]{W: dq.W.Conj(), X: dq.X.Conj(), Y: dq.Y.Conj(), Z: dq.Z.Conj()}
}

// FullConj 同時做 quaternion 共軛與對偶共軛。
func FullConj[T num.Analytic[T]](dq DualQuaternion[T]) DualQuaternion[T] {
	return quat.Conj(DualConj(dq))
}

// RealProduct 回傳兩者實部的 Hamilton 乘積。
func RealProduct[T num.Analytic[T]](p, q DualQuaternion[T]) quat.Quaternion[T] {
	return quat.Mul(Real(p), Real(q))
}

// DualProduct 回傳兩者對偶部的 Hamilton 乘積。
func DualProduct[T num.Analytic[T]](p, q DualQuaternion[T]) quat.Quaternion[T] {
	return quat.Mul(Imag(p), Imag(q))
}

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

package dualquat

import (
	gdq "gonum.org/v1/gonum/num/dualquat"

	"github.com/zintix-labs/numlab/num"
	"github.com/zintix-labs/numlab/quat"
)

// FromRigid 建立「先旋轉 rot，再平移 t」的單位 dual quaternion：r + ½(0,t)·r ε。
func FromRigid[T num.Analytic[T]](rot quat.Quaternion[T], t [3]T) DualQuaternion[T] {
	half := num.Const[T](0.5)
	d := quat.Scale(quat.Mul(quat.Pure(t[0], t[1], t[2]), rot), half)
	return New(rot, d)
}

// Translation 取出平移向量 2·d·conj(r)。
func Translation[T num.Analytic[T]](dq DualQuaternion[T]) [3]T {
	two := num.Const[T](2)
	v := quat.Scale(quat.TimesConj(Imag(dq), Real(dq)), two)
	return v.Vec()
}

// TransformPoint 對點 p 套用剛體轉換。
func TransformPoint[T num.Analytic[T]](dq DualQuaternion[T], p [3]T) [3]T {
	r := quat.Rotate(Real(dq), p)
	t := Translation(dq)
	return [3]T{r[0].Add(t[0]), r[1].Add(t[1]), r[2].Add(t[2])}
}

// ToGonum 轉為 gonum 的 dualquat.Number。
func ToGonum(dq DualQuaternion[num.Real]) gdq.Number {
	return gdq.Number{Real: quat.ToGonum(Real(dq)), Dual: quat.ToGonum(Imag(dq))}
}

// FromGonum 由 gonum 的 dualquat.Number 轉入。
func FromGonum(n gdq.Number) DualQuaternion[num.Real] {
	return New(quat.FromGonum(n.Real), quat.FromGonum(n.Dual))
}

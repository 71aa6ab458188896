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
	gquat "gonum.org/v1/gonum/num/quat"

	"github.com/zintix-labs/numlab/num"
)

// ToGonum 轉為 gonum 的 quat.Number。
func ToGonum(q Quaternion[num.Real]) gquat.Number {
	return gquat.Number{
		Real: float64(q.W),
		Imag: float64(q.X),
		Jmag: float64(q.Y),
		Kmag: float64(q.Z),
	}
}

// FromGonum 由 gonum 的 quat.Number 轉入。
func FromGonum(n gquat.Number) Quaternion[num.Real] {
	return Quaternion[num.Real]{
		W: num.Real(n.Real),
		X: num.Real(n.Imag),
		Y: num.Real(n.Jmag),
		Z: num.Real(n.Kmag),
	}
}

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
	"github.com/zintix-labs/numlab/sdk/core"
)

// RandomUnit 以 Shoemake 方法產生在旋轉群上均勻分佈的單位 quaternion：
//
//	u0 ∈ [0,1), u1, u2 ∈ [0,2π)
//	q = (√(1-u0)·sin u1, √(1-u0)·cos u1, √u0·sin u2, √u0·cos u2)
//
// 逐分量均勻取樣再正規化並不均勻，所以分解方式必須保持不變。
// src 由呼叫端持有，本函數只借用。
func RandomUnit[C num.Number[C]](src core.RAND) Quaternion[C] {
	u0 := src.Float64()
	u1 := 2 * math.Pi * src.Float64()
	u2 := 2 * math.Pi * src.Float64()

	a := math.Sqrt(1 - u0)
	b := math.Sqrt(u0)
	s1, c1 := math.Sincos(u1)
	s2, c2 := math.Sincos(u2)
	return Quaternion[C]{
		W: num.Const[C](a * s1),
		X: num.Const[C](a * c1),
		Y: num.Const[C](b * s2),
		Z: num.Const[C](b * c2),
	}
}

// RandomUnitNormal 將四個獨立標準常態亂數正規化。4 維常態分佈各向同性，
// 因此結果同樣在旋轉群上均勻；用來交叉檢驗 RandomUnit。
func RandomUnitNormal[C num.Number[C]](src core.Normal) Quaternion[C] {
	for {
		w, x, y, z := src.NormFloat64(), src.NormFloat64(), src.NormFloat64(), src.NormFloat64()
		n := math.Sqrt(w*w + x*x + y*y + z*z)
		if n > 1e-150 {
			return Quaternion[C]{
				W: num.Const[C](w / n),
				X: num.Const[C](x / n),
				Y: num.Const[C](y / n),
				Z: num.Const[C](z / n),
			}
		}
	}
}

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

package dual

import (
	gdual "gonum.org/v1/gonum/num/dual"

	"github.com/zintix-labs/numlab/num"
)

// ToGonum 轉為 gonum 的 dual.Number。
func ToGonum(a Dual[num.Real]) gdual.Number {
	return gdual.Number{Real: float64(a.Re), Emag: float64(a.Du)}
}

// FromGonum 由 gonum 的 dual.Number 轉入。
func FromGonum(n gdual.Number) Dual[num.Real] {
	return Dual[num.Real]{Re: num.Real(n.Real), Du: num.Real(n.Emag)}
}

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

// Package choice 提供模 n 的選項值 [0,n)，n 由型別參數在編譯期決定。
//
// 所有運算結果都會繞回 [0,n)，負數以真正的模運算處理（-1 → n-1）。
package choice

import (
	"cmp"
	"fmt"
)

// Modulus 描述選項數 n。Count 必須大於 0，且應為零大小型別的常數。
type Modulus interface {
	Count() uint64
}

type (
	Binary   struct{}
	Quadrant struct{}
	Octant   struct{}
)

func (Binary) Count() uint64   { return 2 }
func (Quadrant) Count() uint64 { return 4 }
func (Octant) Count() uint64   { return 8 }

// Choice 為 n = M.Count() 個選項中的一個。零值為第 0 個。
type Choice[M Modulus] struct {
	x uint64
}

// Count 回傳 M 的選項數。
func Count[M Modulus]() uint64 {
	var m M
	return m.Count()
}

// New 以 k mod n 建立選項，k 可為負。
func New[M Modulus](k int64) Choice[M] {
	return Choice[M]{x: mod(k, Count[M]())}
}

// FromUint 以 k mod n 建立選項。
func FromUint[M Modulus](k uint64) Choice[M] {
	return Choice[M]{x: k % Count[M]()}
}

func (c Choice[M]) Value() uint64 { return c.x }
func (c Choice[M]) Int() int      { return int(c.x) }

// Add / Sub 在 [0,n) 內循環。
func (c Choice[M]) Add(o Choice[M]) Choice[M] {
	n := Count[M]()
	if c.x >= n-o.x {
		return Choice[M]{x: c.x - (n - o.x)}
	}
	return Choice[M]{x: c.x + o.x}
}

func (c Choice[M]) Sub(o Choice[M]) Choice[M] {
	if c.x >= o.x {
		return Choice[M]{x: c.x - o.x}
	}
	return Choice[M]{x: Count[M]() - o.x + c.x}
}

func (c Choice[M]) AddInt(k int64) Choice[M] { return c.Add(New[M](k)) }
func (c Choice[M]) SubInt(k int64) Choice[M] { return c.Sub(New[M](k)) }

// Neg 回傳加法反元素 (n - x) mod n。
func (c Choice[M]) Neg() Choice[M] {
	return Choice[M]{}.Sub(c)
}

// Next / Prev 前進或後退一個選項，n-1 的下一個為 0。
func (c Choice[M]) Next() Choice[M] { return c.AddInt(1) }
func (c Choice[M]) Prev() Choice[M] { return c.SubInt(1) }

// Inverse 同 c.Neg()。
func Inverse[M Modulus](c Choice[M]) Choice[M] { return c.Neg() }

// Compare 依數值比較兩個選項，兩者的選項數可不同。
func Compare[M, N Modulus](a Choice[M], b Choice[N]) int {
	return cmp.Compare(a.x, b.x)
}

func (c Choice[M]) Equal(o Choice[M]) bool { return c.x == o.x }
func (c Choice[M]) Less(o Choice[M]) bool  { return c.x < o.x }

func (c Choice[M]) String() string {
	return fmt.Sprint(c.x)
}

// Print 回傳 [x/n]。
func (c Choice[M]) Print() string {
	return fmt.Sprintf("[%d/%d]", c.x, Count[M]())
}

func mod(k int64, n uint64) uint64 {
	if k >= 0 {
		return uint64(k) % n
	}
	// -k 可能溢位（MinInt64），以 uint64 補數計算
	r := (^uint64(k) + 1) % n
	if r == 0 {
		return 0
	}
	return n - r
}

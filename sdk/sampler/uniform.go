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

// Package sampler 提供數值型別的均勻分佈，以及把抽樣結果轉成其他型別的 Adapter。
//
// 整數在 [min,max] 內均勻（含兩端），浮點數在 [min,max) 內均勻。
package sampler

import (
	"github.com/zintix-labs/numlab/interval"
	"github.com/zintix-labs/numlab/num"
	"github.com/zintix-labs/numlab/sdk/core"
	"gonum.org/v1/gonum/stat/distuv"
)

// Distribution 從 src 抽出一個 T。
type Distribution[T any] interface {
	Draw(src core.RAND) T
}

// Uniform 為 [min,max] 上的均勻分佈。零值為 [0,0]。
type Uniform[T num.Numbers] struct {
	iv interval.Interval[T]
}

// NewUniform 建立均勻分佈，a > b 時自動交換。
func NewUniform[T num.Numbers](a, b T) Uniform[T] {
	return Uniform[T]{iv: interval.New(a, b)}
}

func (u Uniform[T]) Min() T                      { return u.iv.Min() }
func (u Uniform[T]) Max() T                      { return u.iv.Max() }
func (u Uniform[T]) Param() interval.Interval[T] { return u.iv }

// SetParam 重設區間。
func (u *Uniform[T]) SetParam(iv interval.Interval[T]) { u.iv = iv }

// Draw 抽出一個值。
func (u Uniform[T]) Draw(src core.RAND) T {
	lo, hi := u.iv.Min(), u.iv.Max()
	if num.IsFloat[T]() {
		d := distuv.Uniform{Min: float64(lo), Max: float64(hi), Src: src}
		v := T(d.Rand())
		// float32 捨入可能剛好落在 max
		if v >= hi && hi > lo {
			return lo
		}
		return v
	}
	// 以 uint64 補數計算寬度，涵蓋有號整數的全範圍
	w := uint64(hi) - uint64(lo)
	if w == ^uint64(0) {
		return lo + T(src.Uint64())
	}
	return lo + T(src.UintN(uint(w+1)))
}

// Adapter 把 D 抽出的 T 轉成 R，例如把 float64 轉成角度。
type Adapter[R, T any, D Distribution[T]] struct {
	dist D
	conv func(T) R
}

// Adapt 建立 Adapter。
func Adapt[R, T any, D Distribution[T]](d D, conv func(T) R) Adapter[R, T, D] {
	return Adapter[R, T, D]{dist: d, conv: conv}
}

// Dist 回傳底層分佈。
func (a Adapter[R, T, D]) Dist() D { return a.dist }

func (a Adapter[R, T, D]) Draw(src core.RAND) R {
	return a.conv(a.dist.Draw(src))
}

// Uniformly 為 Adapt(NewUniform(lo, hi), conv) 的簡寫。
func Uniformly[R any, T num.Numbers](lo, hi T, conv func(T) R) Adapter[R, T, Uniform[T]] {
	return Adapt[R, T](NewUniform(lo, hi), conv)
}

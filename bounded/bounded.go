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

// Package bounded 提供受區間約束的純量，越界處理由型別參數 P（Policy）在編譯期決定。
//
// 不變量：每次 Set / Add / Sub / Mul / Div 之後 value ∈ [min,max]。
// Policy 回傳 error 時（ThrowIfOutOfBounds），原值保持不變。
package bounded

import (
	"fmt"

	"github.com/zintix-labs/numlab/interval"
	"github.com/zintix-labs/numlab/num"
)

// Bounded 為受 bounds 約束的值。P 為零大小的 Policy 型別。
type Bounded[T num.Numbers, P Policy[T]] struct {
	value  T
	bounds interval.Interval[T]
	policy P
}

// Clipped 越界時靜默截斷。
type Clipped[T num.Numbers] = Bounded[T, SilentClip[T]]

// Wrapped 越界時週期繞回。
type Wrapped[T num.Numbers] = Bounded[T, SilentWrap[T]]

// Reported 越界時截斷並記錄。
type Reported[T num.Numbers] = Bounded[T, ClipAndReport[T]]

// Checked 越界時回傳錯誤。
type Checked[T num.Numbers] = Bounded[T, ThrowIfOutOfBounds[T]]

// New 以 policy 處理初始值後建立 Bounded。
// 回傳 error 時，回傳值的 value 為 bounds.Min()。
func New[T num.Numbers, P Policy[T]](v T, bounds interval.Interval[T]) (Bounded[T, P], error) {
	b := Bounded[T, P]{value: bounds.Min(), bounds: bounds}
	if err := b.Set(v); err != nil {
		return b, err
	}
	return b, nil
}

// Must 在 err 不為 nil 時 panic，用於不會回傳錯誤的 Policy。
func Must[T num.Numbers, P Policy[T]](b Bounded[T, P], err error) Bounded[T, P] {
	if err != nil {
		panic(err)
	}
	return b
}

// Value 回傳目前值。
func (b Bounded[T, P]) Value() T { return b.value }

// Bounds 回傳約束區間。
func (b Bounded[T, P]) Bounds() interval.Interval[T] { return b.bounds }

// Set 指定新值並套用 policy。
func (b *Bounded[T, P]) Set(v T) error {
	r, err := b.policy.Apply(v, b.bounds)
	if err != nil {
		return err
	}
	b.value = r
	return nil
}

func (b *Bounded[T, P]) Add(d T) error { return b.Set(b.value + d) }
func (b *Bounded[T, P]) Sub(d T) error { return b.Set(b.value - d) }
func (b *Bounded[T, P]) Mul(d T) error { return b.Set(b.value * d) }
func (b *Bounded[T, P]) Div(d T) error { return b.Set(b.value / d) }

func (b Bounded[T, P]) String() string {
	return fmt.Sprint(b.value)
}

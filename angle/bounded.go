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

package angle

import (
	"github.com/zintix-labs/numlab/bounded"
	"github.com/zintix-labs/numlab/interval"
)

// Bounded 為受區間約束的角度，越界處理沿用 bounded 的 Policy。
type Bounded[U Unit, P bounded.Policy[float64]] struct {
	b bounded.Bounded[float64, P]
}

type (
	Clipped[U Unit] = Bounded[U, bounded.SilentClip[float64]]
	Wrapped[U Unit] = Bounded[U, bounded.SilentWrap[float64]]

	ClippedDegrees = Clipped[Degree]
	ClippedRadians = Clipped[Radian]
	WrappedDegrees = Wrapped[Degree]
	WrappedRadians = Wrapped[Radian]
)

// TurnRange 回傳 [0, turn]。
func TurnRange[U Unit]() interval.Interval[float64] {
	return interval.New(0, FullTurn[U]())
}

// HalfTurnRange 回傳 [0, turn/2]，用於視野角。
func HalfTurnRange[U Unit]() interval.Interval[float64] {
	return interval.New(0, FullTurn[U]()/2)
}

// InclinationRange 回傳 [-turn/4, turn/4]，用於仰角。
func InclinationRange[U Unit]() interval.Interval[float64] {
	q := FullTurn[U]() / 4
	return interval.New(-q, q)
}

// NewBounded 以 policy P 將 a 限制在 r 內。
func NewBounded[U Unit, P bounded.Policy[float64]](a Angle[U], r interval.Interval[float64]) (Bounded[U, P], error) {
	b, err := bounded.New[float64, P](a.v, r)
	return Bounded[U, P]{b: b}, err
}

// NewClipped 截斷到 [0, turn]。
func NewClipped[U Unit](a Angle[U]) Clipped[U] {
	return Clipped[U]{b: bounded.Must(bounded.New[float64, bounded.SilentClip[float64]](a.v, TurnRange[U]()))}
}

// NewWrapped 繞回 [0, turn]。
func NewWrapped[U Unit](a Angle[U]) Wrapped[U] {
	return Wrapped[U]{b: bounded.Must(bounded.New[float64, bounded.SilentWrap[float64]](a.v, TurnRange[U]()))}
}

// NewInclination 截斷到 [-turn/4, turn/4]。
func NewInclination[U Unit](a Angle[U]) Clipped[U] {
	return Clipped[U]{b: bounded.Must(bounded.New[float64, bounded.SilentClip[float64]](a.v, InclinationRange[U]()))}
}

// NewFOV 截斷到 [0, turn/2]。
func NewFOV[U Unit](a Angle[U]) Clipped[U] {
	return Clipped[U]{b: bounded.Must(bounded.New[float64, bounded.SilentClip[float64]](a.v, HalfTurnRange[U]()))}
}

func (b Bounded[U, P]) Angle() Angle[U] { return Angle[U]{v: b.b.Value()} }
func (b Bounded[U, P]) Value() float64  { return b.b.Value() }

// Range 回傳約束區間的兩端。
func (b Bounded[U, P]) Range() (lo, hi Angle[U]) {
	r := b.b.Bounds()
	return Angle[U]{v: r.Min()}, Angle[U]{v: r.Max()}
}

// Set 指定新角度；policy 回傳錯誤時原值不變。
func (b *Bounded[U, P]) Set(a Angle[U]) error { return b.b.Set(a.v) }
func (b *Bounded[U, P]) Add(a Angle[U]) error { return b.b.Add(a.v) }
func (b *Bounded[U, P]) Sub(a Angle[U]) error { return b.b.Sub(a.v) }

func (b Bounded[U, P]) String() string { return b.Angle().String() }

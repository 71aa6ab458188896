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

// Package angle 提供帶單位的角度值。
//
// 單位是零大小的型別參數，不同單位的角度不能直接相加，需先 Convert。
package angle

import (
	"math"
	"strconv"
)

// Unit 描述一整圈的數值與列印後綴。
type Unit interface {
	Turn() float64
	Suffix() string
}

type (
	Degree struct{}
	ArcMin struct{}
	ArcSec struct{}
	Radian struct{}
	Gon    struct{}
	Rev    struct{}
)

func (Degree) Turn() float64 { return 360 }
func (ArcMin) Turn() float64 { return 21600 }
func (ArcSec) Turn() float64 { return 1296000 }
func (Radian) Turn() float64 { return 2 * math.Pi }
func (Gon) Turn() float64    { return 400 }
func (Rev) Turn() float64    { return 1 }

func (Degree) Suffix() string { return "°" }
func (ArcMin) Suffix() string { return "'" }
func (ArcSec) Suffix() string { return "''" }
func (Radian) Suffix() string { return "rad" }
func (Gon) Suffix() string    { return "gon" }
func (Rev) Suffix() string    { return "turn" }

// Angle 為單位 U 下的角度。零值為 0。
type Angle[U Unit] struct {
	v float64
}

type (
	Degrees = Angle[Degree]
	Radians = Angle[Radian]
	Gons    = Angle[Gon]
	Turns   = Angle[Rev]
)

func New[U Unit](v float64) Angle[U] { return Angle[U]{v: v} }

func Deg(v float64) Degrees { return Degrees{v: v} }
func Rad(v float64) Radians { return Radians{v: v} }

// FullTurn 回傳單位 U 的一整圈數值。
func FullTurn[U Unit]() float64 {
	var u U
	return u.Turn()
}

// Convert 轉換單位。重複來回轉換會累積誤差。
func Convert[To, From Unit](a Angle[From]) Angle[To] {
	return Angle[To]{v: a.v * (FullTurn[To]() / FullTurn[From]())}
}

func (a Angle[U]) Value() float64   { return a.v }
func (a Angle[U]) Radians() float64 { return Convert[Radian](a).v }
func (a Angle[U]) Degrees() float64 { return Convert[Degree](a).v }

func (a Angle[U]) Add(b Angle[U]) Angle[U]      { return Angle[U]{v: a.v + b.v} }
func (a Angle[U]) Sub(b Angle[U]) Angle[U]      { return Angle[U]{v: a.v - b.v} }
func (a Angle[U]) Scale(f float64) Angle[U]     { return Angle[U]{v: a.v * f} }
func (a Angle[U]) DivScalar(f float64) Angle[U] { return Angle[U]{v: a.v / f} }
func (a Angle[U]) Pow(e float64) Angle[U]       { return Angle[U]{v: math.Pow(a.v, e)} }
func (a Angle[U]) Neg() Angle[U]                { return Angle[U]{v: -a.v} }

func (a Angle[U]) Sin() float64 { return math.Sin(a.Radians()) }
func (a Angle[U]) Cos() float64 { return math.Cos(a.Radians()) }
func (a Angle[U]) Tan() float64 { return math.Tan(a.Radians()) }

// Asin 等反三角函數回傳單位 U 的角度。
func Asin[U Unit](x float64) Angle[U]     { return Convert[U](Rad(math.Asin(x))) }
func Acos[U Unit](x float64) Angle[U]     { return Convert[U](Rad(math.Acos(x))) }
func Atan2[U Unit](y, x float64) Angle[U] { return Convert[U](Rad(math.Atan2(y, x))) }

// Normalize 回傳映射到 [0, turn) 的角度。
func (a Angle[U]) Normalize() Angle[U] {
	t := FullTurn[U]()
	r := math.Mod(a.v, t)
	if r < 0 {
		r += t
	}
	if r == t {
		r = 0
	}
	return Angle[U]{v: r}
}

// Signed 回傳映射到 [-turn/2, turn/2) 的角度。
func (a Angle[U]) Signed() Angle[U] {
	h := FullTurn[U]() / 2
	n := a.Normalize()
	if n.v >= h {
		n.v -= 2 * h
	}
	return n
}

// Wrap 就地映射到 [0, turn)。
func (a *Angle[U]) Wrap() {
	*a = a.Normalize()
}

// Remainder 回傳補滿一圈所需的角度，落在 [0, turn)。
func (a Angle[U]) Remainder() Angle[U] {
	return Angle[U]{v: FullTurn[U]() - a.Normalize().v}.Normalize()
}

// Clamp 將角度限制在 [lo, hi]（端點順序不拘），不做週期處理。
func (a Angle[U]) Clamp(lo, hi Angle[U]) Angle[U] {
	if hi.v < lo.v {
		lo, hi = hi, lo
	}
	return Angle[U]{v: min(max(a.v, lo.v), hi.v)}
}

func (a Angle[U]) Cmp(b Angle[U]) int {
	switch {
	case a.v < b.v:
		return -1
	case a.v > b.v:
		return 1
	}
	return 0
}

// ApproxEqual 以絕對容差比較。
func (a Angle[U]) ApproxEqual(b Angle[U], tol float64) bool {
	return math.Abs(a.v-b.v) <= tol
}

// String 回傳數值加單位後綴，例如 "90°"。
func (a Angle[U]) String() string {
	var u U
	return strconv.FormatFloat(a.v, 'g', -1, 64) + u.Suffix()
}

// Raw 只回傳數值。
func (a Angle[U]) Raw() string {
	return strconv.FormatFloat(a.v, 'g', -1, 64)
}

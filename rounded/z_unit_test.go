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

package rounded

import (
	"math"
	"testing"
)

func TestNearestInt(t *testing.T) {
	cases := map[float64]float64{2.5: 2, 3.5: 4, -2.5: -2, 1.2: 1, -1.7: -2, 0: 0}
	for in, want := range cases {
		if got := ToNearestInt(in).Value(); got != want {
			t.Fatalf("round(%v)=%v want %v", in, got, want)
		}
	}
	if ToNearestInt(7).Value() != 7 {
		t.Fatalf("integers should be unchanged")
	}
	if !ToNearestInt(math.NaN()).IsNaN() || ToNearestInt(math.Inf(1)).IsFinite() {
		t.Fatalf("NaN / Inf should pass through")
	}
}

func TestNearestUnit(t *testing.T) {
	floats := []struct{ v, unit, want float64 }{
		{2.6, 0.5, 2.5},
		{2.8, 0.5, 3},
		{0.75, 0.5, 1}, // 平手取偶數倍 2·0.5
		{0.25, 0.5, 0},
		{-0.8, 0.25, -0.75},
		{123.456, 0.01, 123.46},
	}
	for _, c := range floats {
		got := ToNearest(c.v, c.unit)
		if !got.ApproxEqual(c.want, 1e-12) {
			t.Fatalf("ToNearest(%v,%v)=%v want %v", c.v, c.unit, got, c.want)
		}
	}

	ints := []struct{ v, unit, want int }{
		{17, 5, 15}, {18, 5, 20}, {15, 10, 20}, {25, 10, 20},
		{-17, 5, -15}, {-18, 5, -20}, {-15, 10, -20}, {-25, 10, -20},
	}
	for _, c := range ints {
		if got := ToNearest(c.v, c.unit).Value(); got != c.want {
			t.Fatalf("ToNearest(%d,%d)=%d want %d", c.v, c.unit, got, c.want)
		}
	}
	if ToNearest[uint](15, 10).Value() != 20 || ToNearest[uint](25, 10).Value() != 20 {
		t.Fatalf("unsigned ties mismatch")
	}
}

func TestDefaultUnit(t *testing.T) {
	if Unit(0).Unit() != 1 || Unit(-3).Unit() != 1 {
		t.Fatalf("integer default unit should be 1")
	}
	if Unit(0.0).Unit() != 0x1p-52 || Unit[float32](0).Unit() != 0x1p-23 {
		t.Fatalf("float default unit should be epsilon")
	}
	var g Grid[float64]
	g.Set(1.3)
	if g.Value() != 1.3 {
		t.Fatalf("epsilon grid should keep 1.3, got %v", g.Value())
	}
}

func TestMutators(t *testing.T) {
	g := ToNearest(0.0, 0.25)
	step := func(name string, want float64) {
		t.Helper()
		if !g.ApproxEqual(want, 1e-12) || g.Value() != g.Method().Round(g.Value()) {
			t.Fatalf("%s: got %v want %v", name, g.Value(), want)
		}
	}
	g.Add(0.3)
	step("add", 0.25)
	g.Mul(3)
	step("mul", 0.75)
	g.Div(2)
	step("div", 0.5)
	g.Inc()
	step("inc", 1.5)
	g.Sub(0.1)
	step("sub", 1.5)
	g.Mod(1)
	step("mod", 0.5)
	g.Dec()
	step("dec", -0.5)
	if g.Abs().Value() != 0.5 || g.Neg().Value() != 0.5 {
		t.Fatalf("abs / neg mismatch")
	}
	if g.Compare(0) != -1 || g.Compare(-0.5) != 0 || !g.Equal(-0.5) {
		t.Fatalf("compare mismatch")
	}

	w := ToNearest(17, 5)
	w.Add(4)
	if w.Value() != 20 {
		t.Fatalf("int add got %v", w)
	}
	w.Mod(6)
	if w.Value() != 0 || w.String() != "0" {
		t.Fatalf("int mod got %v", w)
	}
}

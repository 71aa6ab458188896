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

package interval

import (
	"math"
	"testing"
)

func TestConstructorReorders(t *testing.T) {
	iv := New(4, -8)
	if iv.Min() != -8 || iv.Max() != 4 {
		t.Fatalf("expected [-8,4], got %v", iv)
	}
	if iv.Width() != 12 || iv.Center() != -2 || iv.HalfWidth() != 6 {
		t.Fatalf("unexpected width/center: %v %v %v", iv.Width(), iv.Center(), iv.HalfWidth())
	}
	if iv.String() != "[-8,4]" || iv.Raw() != "-8 4" {
		t.Fatalf("unexpected formatting: %s / %s", iv.String(), iv.Raw())
	}
	f := Full[int16]()
	if f.Min() != math.MinInt16 || f.Max() != math.MaxInt16 {
		t.Fatalf("unexpected full interval: %v", f)
	}
}

func TestMutatorsKeepOrder(t *testing.T) {
	iv := New(0.0, 10.0)
	iv.Expand(-6)
	if iv.Min() > iv.Max() {
		t.Fatalf("expand broke ordering: %v", iv)
	}
	if iv.Min() != 4 || iv.Max() != 6 {
		t.Fatalf("expand got %v", iv)
	}

	iv.ExpandInclude(-3)
	iv.ExpandInclude(20)
	if iv.Min() != -3 || iv.Max() != 20 {
		t.Fatalf("expand include got %v", iv)
	}

	iv.Shift(3)
	if iv.Min() != 0 || iv.Max() != 23 {
		t.Fatalf("shift got %v", iv)
	}

	iv.Set(5, 1)
	if iv.Min() != 1 || iv.Max() != 5 {
		t.Fatalf("set got %v", iv)
	}
}

func TestQueries(t *testing.T) {
	iv := New(1.0, 2.0)
	if !iv.Contains(1) || !iv.Contains(2) || iv.Contains(2.1) {
		t.Fatalf("contains mismatch")
	}
	if !iv.ContainsWithin(2.05, 0.1) {
		t.Fatalf("contains within tolerance mismatch")
	}
	if !iv.Intersects(New(2.0, 3.0)) || iv.Intersects(New(2.5, 3.0)) {
		t.Fatalf("intersects mismatch")
	}
	if !iv.ContainsInterval(New(1.2, 1.8)) || iv.ContainsInterval(New(0.5, 1.5)) {
		t.Fatalf("contains interval mismatch")
	}
	if !Point(3.0).Empty(0) || iv.Empty(0.5) {
		t.Fatalf("empty mismatch")
	}
	if iv.Clamp(5) != 2 || iv.Clamp(-1) != 1 || iv.Clamp(1.5) != 1.5 {
		t.Fatalf("clamp mismatch")
	}
}

func TestArithmetic(t *testing.T) {
	a := New(1, 2)
	b := New(-3, 4)
	cases := []struct {
		name     string
		got      Interval[int]
		min, max int
	}{
		{"add", Add(a, b), -2, 6},
		{"sub", Sub(a, b), -3, 5},
		{"mul", Mul(a, b), -6, 8},
		{"scale", Scale(a, -2), -4, -2},
		{"hull", Hull(a, New(5, 7)), 1, 7},
		{"div", Div(New(4, 8), New(2, 4)), 1, 4},
	}
	for _, c := range cases {
		if c.got.Min() != c.min || c.got.Max() != c.max {
			t.Fatalf("%s: got %v want [%d,%d]", c.name, c.got, c.min, c.max)
		}
	}

	if got := Div(a, b); got != Full[int]() {
		t.Fatalf("division by interval containing zero should be full, got %v", got)
	}

	x, ok := Intersection(New(0.0, 5.0), New(3.0, 9.0))
	if !ok || x.Min() != 3 || x.Max() != 5 {
		t.Fatalf("intersection got %v %v", x, ok)
	}
	if _, ok := Intersection(New(0, 1), New(2, 3)); ok {
		t.Fatalf("expected no intersection")
	}
}

func TestUnsignedAndOverflowKeepOrder(t *testing.T) {
	check := func(name string, lo, hi, wantLo, wantHi uint) {
		t.Helper()
		if lo > hi || lo != wantLo || hi != wantHi {
			t.Fatalf("%s: got [%d,%d] want [%d,%d]", name, lo, hi, wantLo, wantHi)
		}
	}
	d := Sub(New[uint](0, 10), New[uint](0, 1))
	check("sub", d.Min(), d.Max(), 0, 10)

	iv := New[uint](2, 5)
	iv.Expand(3)
	check("expand", iv.Min(), iv.Max(), 0, 8)

	iv.Shift(math.MaxUint - 4)
	check("shift", iv.Min(), iv.Max(), math.MaxUint-4, math.MaxUint)

	if !New[uint](1, 2).ContainsWithin(0, 5) {
		t.Fatalf("contains within should saturate at 0")
	}

	s := Add(New[int8](100, 120), New[int8](10, 20))
	if s.Min() != 110 || s.Max() != math.MaxInt8 {
		t.Fatalf("int8 add got %v", s)
	}
	s = Sub(New[int8](-120, 0), New[int8](-5, 20))
	if s.Min() != math.MinInt8 || s.Max() != 5 {
		t.Fatalf("int8 sub got %v", s)
	}
}

func TestClampNaN(t *testing.T) {
	iv := New(-1.0, 1.0)
	if got := iv.Clamp(math.NaN()); got != -1 {
		t.Fatalf("clamp(NaN) got %v", got)
	}
}

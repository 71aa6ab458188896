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

package natural

import (
	"math"
	"testing"
)

func TestInfinityPlusFinite(t *testing.T) {
	got := Infinity[int]().Add(New(5))
	if !got.Equal(Infinity[int]()) {
		t.Fatalf("inf + 5 should be inf, got %v", got)
	}
}

func TestInit(t *testing.T) {
	if New[int8](0).Value() != 0 || New[int16](1).Value() != 1 || New[int64](12345678).Value() != 12345678 {
		t.Fatalf("init mismatch")
	}
	if New(-7).Value() != 0 {
		t.Fatalf("negative input should clamp to 0")
	}
	var z Natural[int32]
	if !z.IsZero() || !z.IsFinite() {
		t.Fatalf("zero value should be finite zero")
	}
}

// 對照表：a=0 b=1 c=5 d=10 e=inf
func TestArithmeticTable(t *testing.T) {
	a, b, c, d, e := New(0), New(1), New(5), New(10), Infinity[int]()
	inf := -1
	check := func(name string, got Natural[int], want int) {
		t.Helper()
		if want == inf {
			if !got.IsInf() {
				t.Fatalf("%s: want inf, got %v", name, got)
			}
			return
		}
		if got.IsInf() || got.Value() != want {
			t.Fatalf("%s: want %d, got %v", name, want, got)
		}
	}

	check("a*a", a.Mul(a), 0)
	check("c*d", c.Mul(d), 50)
	check("a*e", a.Mul(e), 0)
	check("e*a", e.Mul(a), 0)
	check("b*e", b.Mul(e), inf)
	check("e*e", e.Mul(e), inf)

	check("a-b", a.Sub(b), 0)
	check("c-b", c.Sub(b), 4)
	check("d-c", d.Sub(c), 5)
	check("c-e", c.Sub(e), 0)
	check("e-c", e.Sub(c), inf)
	check("e-e", e.Sub(e), 0)

	check("c+d", c.Add(d), 15)
	check("a+e", a.Add(e), inf)
	check("e+e", e.Add(e), inf)
}

func TestSaturation(t *testing.T) {
	hi := Max[int8]()
	if got := hi.Add(New[int8](1)); got.Value() != math.MaxInt8 || got.IsInf() {
		t.Fatalf("add should saturate at max, got %v", got)
	}
	if got := New[int8](100).MulInt(3); got.Value() != math.MaxInt8 {
		t.Fatalf("mul should saturate at max, got %v", got)
	}
	n := hi
	n.Inc()
	if n.Value() != math.MaxInt8 {
		t.Fatalf("inc should stop at max")
	}
	z := Zero[int8]()
	z.Dec()
	if z.Value() != 0 {
		t.Fatalf("dec should stop at 0")
	}
	inf := Infinity[int8]()
	inf.Inc()
	inf.Dec()
	if !inf.IsInf() {
		t.Fatalf("inc/dec must not change infinity")
	}
}

func TestOrderingAndFormat(t *testing.T) {
	if Infinity[int]().Cmp(Max[int]()) != 1 || New(3).Cmp(Infinity[int]()) != -1 {
		t.Fatalf("infinity should be greatest")
	}
	if !New(2).Less(New(3)) || New(3).Less(New(3)) {
		t.Fatalf("less mismatch")
	}
	if Infinity[int]().String() != "inf" || New(7).String() != "7" {
		t.Fatalf("string mismatch")
	}
	if Infinity[int]().Raw() != "oo" || New(7).Raw() != "#7" {
		t.Fatalf("raw mismatch")
	}
	if _, ok := Infinity[int]().Int64(); ok {
		t.Fatalf("infinity should not convert")
	}
}

func TestInterval(t *testing.T) {
	iv := NewInterval(New(8), New(2))
	if iv.Min().Value() != 2 || iv.Max().Value() != 8 {
		t.Fatalf("interval should reorder: %v", iv)
	}
	if !iv.Contains(New(2)) || iv.Contains(New(9)) {
		t.Fatalf("contains mismatch")
	}
	u := Unbounded[int]()
	if !u.Contains(Infinity[int]()) || !u.ContainsInterval(iv) || iv.ContainsInterval(u) {
		t.Fatalf("unbounded mismatch")
	}
	if u.String() != "[0,inf]" || UpTo(New(4)).Raw() != "0 4" {
		t.Fatalf("format mismatch: %s", u.String())
	}
}

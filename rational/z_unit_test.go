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

package rational

import "testing"

func TestArithmeticWithoutNormalization(t *testing.T) {
	a := New(1, 4)
	b := New(1, 8)
	cases := []struct {
		name      string
		got       Rational[int]
		raw, norm Rational[int]
	}{
		{"add", a.Add(b), New(12, 32), New(3, 8)},
		{"sub", a.Sub(b), New(4, 32), New(1, 8)},
		{"mul", a.Mul(b), New(1, 32), New(1, 32)},
		{"div", a.Div(b), New(8, 4), New(2, 1)},
	}
	for _, c := range cases {
		if c.got != c.raw {
			t.Fatalf("%s: got %v want unnormalized %v", c.name, c.got, c.raw)
		}
		if n := c.got.Normalized(); n != c.norm {
			t.Fatalf("%s: normalized %v want %v", c.name, n, c.norm)
		}
	}
}

func TestSignsAndReciprocal(t *testing.T) {
	r := New(3, -6)
	r.Normalize()
	if r != New(-1, 2) {
		t.Fatalf("normalize sign got %v", r)
	}
	if got := New(-2, 5).Reciprocal(); got != New(-5, 2) {
		t.Fatalf("reciprocal got %v", got)
	}
	if got := New(0, 7).Normalized(); got != New(0, 1) {
		t.Fatalf("zero normalize got %v", got)
	}
}

func TestCompareAndScalars(t *testing.T) {
	if !New(1, 2).Equal(New(2, 4)) {
		t.Fatalf("1/2 should equal 2/4")
	}
	if New(1, 3).Cmp(New(1, 2)) != -1 || New(-1, -2).Cmp(New(1, 3)) != 1 {
		t.Fatalf("cmp mismatch")
	}
	if got := New[int64](1, 3).AddInt(2); got != New[int64](7, 3) {
		t.Fatalf("add int got %v", got)
	}
	if got := New(3, 4).DivInt(3).Normalized(); got != New(1, 4) {
		t.Fatalf("div int got %v", got)
	}
	if New(3, 4).Float64() != 0.75 || New(3, 4).String() != "3/4" {
		t.Fatalf("conversion mismatch")
	}
	if FromInt[int8](5) != New[int8](5, 1) {
		t.Fatalf("FromInt mismatch")
	}
}

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

package core

import (
	"math"
	"testing"
)

func TestCoreDeterminism(t *testing.T) {
	for _, name := range []string{"pcg64", "pcg32"} {
		f, err := FactoryByName(name)
		if err != nil {
			t.Fatalf("factory %s: %v", name, err)
		}
		c1 := New(f.New(7))
		c2 := New(f.New(7))
		for i := 0; i < 5; i++ {
			if c1.Uint64() != c2.Uint64() {
				t.Fatalf("%s Uint64 mismatch at %d", name, i)
			}
		}
		if c1.IntN(10) != c2.IntN(10) {
			t.Fatalf("%s IntN mismatch", name)
		}
		if c1.UintN(10) != c2.UintN(10) {
			t.Fatalf("%s UintN mismatch", name)
		}
	}
	if _, err := FactoryByName("mt19937"); err == nil {
		t.Fatalf("expected error for unknown prng")
	}
}

func TestBoundsAndSentinels(t *testing.T) {
	c := New(Default().New(3))
	if c.IntN(0) != -1 || c.UintN(0) != 0 {
		t.Fatalf("unexpected sentinel values")
	}
	for i := 0; i < 1000; i++ {
		f := c.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
		a := c.Angle()
		if a < 0 || a >= 2*math.Pi {
			t.Fatalf("Angle out of range: %v", a)
		}
		v := c.UnitVector()
		n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
		if math.Abs(n-1) > 1e-12 {
			t.Fatalf("UnitVector norm %v", n)
		}
	}
}

func TestSnapshotRestore(t *testing.T) {
	for _, p := range []PRNG{NewPCG64WithSeed(5), NewPCG32WithSeed(5)} {
		p.Uint64()
		snap, err := p.Snapshot()
		if err != nil {
			t.Fatalf("snapshot: %v", err)
		}
		want := []uint64{p.Uint64(), p.Uint64(), p.Uint64()}
		if err := p.Restore(snap); err != nil {
			t.Fatalf("restore: %v", err)
		}
		for i, w := range want {
			if got := p.Uint64(); got != w {
				t.Fatalf("after restore [%d] got %d want %d", i, got, w)
			}
		}
	}
	if err := NewPCG32WithSeed(1).Restore([]byte{1, 2}); err == nil {
		t.Fatalf("expected error for short state")
	}
}

func TestNormFloat64(t *testing.T) {
	for _, p := range []PRNG{NewPCG64WithSeed(11), NewPCG32WithSeed(11)} {
		c := New(p)
		var sum, sq float64
		n := 20000
		for range n {
			x := c.NormFloat64()
			sum += x
			sq += x * x
		}
		mean := sum / float64(n)
		variance := sq/float64(n) - mean*mean
		if math.Abs(mean) > 0.05 || math.Abs(variance-1) > 0.05 {
			t.Fatalf("%T: mean %v variance %v", p, mean, variance)
		}
	}
}

func TestPCG32AdvanceAndStreams(t *testing.T) {
	a, b := NewPCG32WithSeed(42), NewPCG32WithSeed(42)
	for range 1000 {
		a.Uint32()
	}
	b.Advance(1000)
	for i := range 10 {
		if x, y := a.Uint32(), b.Uint32(); x != y {
			t.Fatalf("advance mismatch at %d: %d != %d", i, x, y)
		}
	}

	s1, s2 := NewPCG32WithStream(42, 1), NewPCG32WithStream(42, 2)
	same := 0
	for range 100 {
		if s1.Uint32() == s2.Uint32() {
			same++
		}
	}
	if same > 2 {
		t.Fatalf("streams should differ, %d equal outputs", same)
	}

	bad := make([]byte, 16)
	if err := NewPCG32WithSeed(1).Restore(bad); err == nil {
		t.Fatalf("expected error for even increment")
	}
}

func TestIntNUniform(t *testing.T) {
	for _, p := range []PRNG{NewPCG64WithSeed(3), NewPCG32WithSeed(3)} {
		counts := make([]int, 6)
		for range 60000 {
			v := p.IntN(6)
			if v < 0 || v >= 6 {
				t.Fatalf("%T: IntN out of range: %d", p, v)
			}
			counts[v]++
		}
		for i, c := range counts {
			if c < 9500 || c > 10500 {
				t.Fatalf("%T: face %d count %d", p, i, c)
			}
		}
		if v := p.UintN(1 << 40); v >= 1<<40 {
			t.Fatalf("%T: UintN out of range: %d", p, v)
		}
	}
}

func TestNewSeedPositive(t *testing.T) {
	if NewSeed() < 1 {
		t.Fatalf("expected positive seed")
	}
}

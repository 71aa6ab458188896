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

package quat

import (
	"bytes"
	"math"
	"testing"

	gquat "gonum.org/v1/gonum/num/quat"

	"github.com/zintix-labs/numlab/num"
	"github.com/zintix-labs/numlab/sdk/core"
)

type Q = Quaternion[num.Real]

func near(t *testing.T, name string, got, want Q, tol float64) {
	t.Helper()
	if !got.ApproxEqual(want, tol) {
		t.Fatalf("%s: got %v want %v", name, got, want)
	}
}

// sameRotation 允許 ±q（同一個旋轉）。
func sameRotation(a, b Q, tol float64) bool {
	return a.ApproxEqual(b, tol) || a.ApproxEqual(Neg(b), tol)
}

func randomUnits(seed int64, n int) []Q {
	src := core.NewPCG64WithSeed(seed)
	out := make([]Q, n)
	for i := range out {
		out[i] = RandomUnit[num.Real](src)
	}
	return out
}

func TestConjugateNormScenario(t *testing.T) {
	q := New[num.Real](1, 2, 3, 4)
	q.Conjugate()
	if q != New[num.Real](1, -2, -3, -4) {
		t.Fatalf("conjugate got %v", q)
	}
	if n2 := Norm2(q); n2 != 30 {
		t.Fatalf("norm2 got %v", n2)
	}
	Normalize(&q)
	if n := Norm(q); math.Abs(float64(n)-1) > 1e-12 {
		t.Fatalf("norm after normalize got %v", n)
	}
}

func TestDoubleConjugateIsIdentity(t *testing.T) {
	for _, q := range randomUnits(1, 50) {
		q = Scale(q, 3.5)
		if Conj(Conj(q)) != q {
			t.Fatalf("conj(conj(q)) != q for %v", q)
		}
		c := q
		c.Conjugate().Conjugate()
		if c != q {
			t.Fatalf("in-place double conjugate changed %v", q)
		}
	}
}

func TestHamiltonProductAgainstGonum(t *testing.T) {
	qs := randomUnits(2, 40)
	for i := 0; i+1 < len(qs); i += 2 {
		p := Scale(qs[i], 1.7)
		q := AddScalar(qs[i+1], 0.25)
		near(t, "mul", Mul(p, q), FromGonum(gquat.Mul(ToGonum(p), ToGonum(q))), 1e-12)
		near(t, "times conj", TimesConj(p, q), Mul(p, Conj(q)), 1e-12)
		near(t, "conj times", ConjTimes(p, q), Mul(Conj(p), q), 1e-12)
	}

	i := Pure[num.Real](1, 0, 0)
	j := Pure[num.Real](0, 1, 0)
	k := Pure[num.Real](0, 0, 1)
	if Mul(i, j) != k || Mul(j, i) != Neg(k) {
		t.Fatalf("ij = k, ji = -k violated")
	}
	if Mul(i, i) != Scalar[num.Real](-1) {
		t.Fatalf("i² != -1")
	}
}

func TestInverse(t *testing.T) {
	id := Identity[num.Real]()
	for _, q := range randomUnits(3, 30) {
		near(t, "q·q⁻¹", Mul(q, Inverse(q)), id, 1e-12)
		near(t, "q⁻¹·q", Mul(Inverse(q), q), id, 1e-12)
	}

	q := New[num.Real](1, 2, 3, 4)
	near(t, "reciprocal", Mul(q, Reciprocal(q)), id, 1e-12)
	near(t, "normalized inverse", Mul(Normalized(q), Inverse(q)), id, 1e-12)

	p := New[num.Real](0.5, -1, 2, 0.1)
	near(t, "times inverse", TimesInverse(p, q), Mul(p, Inverse(q)), 1e-12)
	near(t, "inverse times", InverseTimes(q, p), Mul(Inverse(q), p), 1e-12)
}

func TestNormalizeEdgeCases(t *testing.T) {
	q := New[num.Real](0.5, 0.5, 0.5, 0.5)
	before := q
	Normalize(&q)
	if q != before {
		t.Fatalf("unit quaternion should be left untouched")
	}
	if !IsNormalized(q) {
		t.Fatalf("expected normalized")
	}

	var z Q
	Normalize(&z)
	if IsFinite(z) || !IsNaN(z) {
		t.Fatalf("normalizing zero should yield NaN, got %v", z)
	}
	if IsNormal(Identity[num.Real]()) {
		t.Fatalf("identity has zero components and is not normal")
	}
	if !IsNormal(New[num.Real](1, 2, 3, 4)) {
		t.Fatalf("expected normal")
	}
	inf := New[num.Real](num.Real(math.Inf(1)), 0, 0, 0)
	if !IsInf(inf) {
		t.Fatalf("expected inf")
	}
}

func TestSlerp(t *testing.T) {
	qs := randomUnits(4, 40)
	for i := 0; i+1 < len(qs); i += 2 {
		a, b := qs[i], qs[i+1]
		near(t, "slerp t=0", Slerp(a, b, 0), a, 1e-12)
		if got := Slerp(a, b, 1); !sameRotation(got, b, 1e-12) {
			t.Fatalf("slerp t=1 got %v want ±%v", got, b)
		}
		for s := 0.0; s <= 1.0; s += 0.125 {
			r := Slerp(a, b, num.Real(s))
			if n := Norm(r); math.Abs(float64(n)-1) > 1e-12 {
				t.Fatalf("slerp not unit at t=%v: %v", s, n)
			}
		}
	}

	// 繞 z 軸 0 → 90 度的中點為 45 度。
	z := [3]num.Real{0, 0, 1}
	a := Identity[num.Real]()
	b := FromAxisAngle(z, math.Pi/2)
	near(t, "slerp midpoint", Slerp(a, b, 0.5), FromAxisAngle(z, math.Pi/4), 1e-12)

	// 反向的 b 代表同一旋轉，slerp 應走短弧。
	near(t, "slerp shortest arc", Slerp(a, Neg(b), 0.5), FromAxisAngle(z, math.Pi/4), 1e-12)

	// 幾乎相同的輸入走線性權重。
	near(t, "slerp parallel", Slerp(a, a, 0.3), a, 1e-12)
}

func TestLerp(t *testing.T) {
	a := Identity[num.Real]()
	b := FromAxisAngle([3]num.Real{1, 0, 0}, 1.0)
	r := Lerp(a, b, 0.4)
	if !IsNormalized(r) {
		t.Fatalf("lerp result not normalized: %v", r)
	}
	near(t, "lerp t=0", Lerp(a, b, 0), a, 1e-12)
	near(t, "lerp t=1", Lerp(a, b, 1), b, 1e-12)
}

func TestSquad(t *testing.T) {
	qs := randomUnits(5, 4)
	q0, q1, q2, q3 := qs[0], qs[1], qs[2], qs[3]
	near(t, "squad t=0", Squad(q0, q1, q2, q3, 0), q0, 1e-12)
	if got := Squad(q0, q1, q2, q3, 1); !sameRotation(got, q3, 1e-12) {
		t.Fatalf("squad t=1 got %v want ±%v", got, q3)
	}
	// 控制點等於端點時退化為 slerp。
	for _, s := range []num.Real{0.2, 0.5, 0.9} {
		a, b := qs[0], qs[1]
		if Dot(a, b) < 0 {
			b = Neg(b)
		}
		near(t, "squad degenerate", Squad(a, a, b, b, s), Slerp(a, b, s), 1e-9)
	}

	// 同一軸上的等角速度關鍵影格，控制點即為關鍵影格本身。
	z := [3]num.Real{0, 0, 1}
	prev, cur, next := FromAxisAngle(z, 0.2), FromAxisAngle(z, 0.5), FromAxisAngle(z, 0.8)
	near(t, "squad control", SquadControl(prev, cur, next), cur, 1e-12)
}

func TestLogExpPow(t *testing.T) {
	for _, q := range randomUnits(6, 30) {
		near(t, "exp(log q)", Exp(Log(q)), q, 1e-9)
		near(t, "log vs gonum", Log(q), FromGonum(gquat.Log(ToGonum(q))), 1e-9)
		near(t, "pow 2", Pow(q, 2), Mul(q, q), 1e-9)
		h := Pow(q, 0.5)
		if !sameRotation(Mul(h, h), q, 1e-9) {
			t.Fatalf("sqrt² mismatch for %v", q)
		}
	}

	// 非純虛輸入對照 gonum（含 e^w）。
	g := New[num.Real](0.3, -0.2, 0.7, 1.1)
	near(t, "exp vs gonum", Exp(g), FromGonum(gquat.Exp(ToGonum(g))), 1e-12)

	// 實數 quaternion 的 log 定義為 0。
	if Log(Identity[num.Real]()) != (Q{}) {
		t.Fatalf("log(1) should be zero")
	}
	if Log(Scalar[num.Real](-1)) != (Q{}) {
		t.Fatalf("log(-1) should be zero")
	}
	near(t, "exp(0)", Exp(Q{}), Identity[num.Real](), 0)
}

// 另一種寫法把虛部平方和直接當成角度（少了開根號），結果與旋轉不符。
func TestExpWithoutSqrtDiffers(t *testing.T) {
	z := [3]num.Real{0, 0, 1}
	rot := FromAxisAngle(z, 1.2)
	v := Log(rot)

	phi := v.X*v.X + v.Y*v.Y + v.Z*v.Z
	k := num.Real(math.Sin(float64(phi))) / phi
	legacy := New(num.Real(math.Cos(float64(phi))), v.X*k, v.Y*k, v.Z*k)

	near(t, "exp", Exp(v), rot, 1e-12)
	if legacy.ApproxEqual(rot, 1e-3) {
		t.Fatalf("sqrt-less exp unexpectedly matches: %v", legacy)
	}
}

// 實部不為 0 時，Exp 乘上 e^w；只看虛部的版本會回傳單位 quaternion。
func TestExpScalarPart(t *testing.T) {
	w := num.Real(0.7)
	q := New[num.Real](w, 0.3, -0.4, 1.2)
	pure := New[num.Real](0, 0.3, -0.4, 1.2)

	want := Scale(Exp(pure), num.Real(math.Exp(float64(w))))
	near(t, "exp scalar part", Exp(q), want, 1e-12)
	if n := NormFloat(Exp(q)); math.Abs(n-math.Exp(float64(w))) > 1e-12 {
		t.Fatalf("|exp(q)| = %v want e^w = %v", n, math.Exp(float64(w)))
	}
	if Exp(q).ApproxEqual(Exp(pure), 1e-3) {
		t.Fatalf("exp should not drop the scalar part")
	}
	near(t, "exp real", Exp(Scalar[num.Real](w)), Scalar(num.Real(math.Exp(float64(w)))), 1e-12)
}

func TestRandomUnit(t *testing.T) {
	for _, q := range randomUnits(7, 2000) {
		if n := NormFloat(q); math.Abs(n-1) > 1e-12 {
			t.Fatalf("random quaternion not unit: %v (%v)", q, n)
		}
	}
	src := core.NewPCG32WithSeed(7)
	for i := 0; i < 200; i++ {
		q := RandomUnit[num.Real32](src)
		if n := NormFloat(q); math.Abs(n-1) > 1e-5 {
			t.Fatalf("float32 random quaternion not unit: %v", n)
		}
	}
	// PCG32 沒有 NormFloat64，走 Box–Muller
	c := core.New(core.NewPCG32WithSeed(9))
	for i := 0; i < 200; i++ {
		if n := NormFloat(RandomUnitNormal[num.Real](c)); math.Abs(n-1) > 1e-12 {
			t.Fatalf("normal random quaternion not unit: %v", n)
		}
	}
}

func TestAxisAngleRotate(t *testing.T) {
	q := FromAxisAngle([3]num.Real{0, 0, 2}, math.Pi/2)
	v := Rotate(q, [3]num.Real{1, 0, 0})
	want := [3]num.Real{0, 1, 0}
	for i := range v {
		if math.Abs(float64(v[i]-want[i])) > 1e-12 {
			t.Fatalf("rotate got %v want %v", v, want)
		}
	}
	axis, angle := AxisAngle(q)
	if math.Abs(float64(angle)-math.Pi/2) > 1e-12 || math.Abs(float64(axis[2])-1) > 1e-12 {
		t.Fatalf("axis-angle got %v %v", axis, angle)
	}
	axis, angle = AxisAngle(Identity[num.Real]())
	if angle != 0 || axis != [3]num.Real{1, 0, 0} {
		t.Fatalf("identity axis-angle got %v %v", axis, angle)
	}
}

func TestIntegerCoefficients(t *testing.T) {
	q := New[num.Int](1, 2, 3, 4)
	if Norm2(q) != 30 {
		t.Fatalf("norm2 got %v", Norm2(q))
	}
	if n := NormFloat(q); math.Abs(n-math.Sqrt(30)) > 1e-15 {
		t.Fatalf("promoted norm got %v", n)
	}
	if got := Mul(q, Conj(q)); got != Scalar[num.Int](30) {
		t.Fatalf("q·conj(q) got %v", got)
	}
}

func TestMixedPrecision(t *testing.T) {
	p := New[num.Real32](0.5, 0.5, 0.5, 0.5)
	q := New[num.Real](1, 0, 0, 0)
	near(t, "mixed mul", MulMixed(p, q), New[num.Real](0.5, 0.5, 0.5, 0.5), 0)
	if Narrow(Widen(p)) != p {
		t.Fatalf("widen/narrow round trip changed value")
	}
}

func TestFormatting(t *testing.T) {
	q := New[num.Real](1, -2, 3.5, 4)
	if q.String() != "(1,-2,3.5,4)" {
		t.Fatalf("print form got %s", q.String())
	}
	if q.Raw() != "1 -2 3.5 4" {
		t.Fatalf("stream form got %s", q.Raw())
	}
	var buf bytes.Buffer
	if err := Print(&buf, q); err != nil || buf.String() != q.String() {
		t.Fatalf("Print wrote %q, %v", buf.String(), err)
	}
	if q.Real() != 1 || q.ImagI() != -2 || q.ImagJ() != 3.5 || q.ImagK() != 4 {
		t.Fatalf("accessors mismatch")
	}
}

func TestDebugRangeCheck(t *testing.T) {
	Debug = true
	defer func() {
		Debug = false
		if recover() == nil {
			t.Fatalf("expected panic for t outside [0,1]")
		}
	}()
	Slerp(Identity[num.Real](), Identity[num.Real](), 1.5)
}

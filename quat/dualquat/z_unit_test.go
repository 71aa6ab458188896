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

package dualquat

import (
	"math"
	"testing"

	gdq "gonum.org/v1/gonum/num/dualquat"

	"github.com/zintix-labs/numlab/num"
	"github.com/zintix-labs/numlab/quat"
)

type DQ = DualQuaternion[num.Real]

func near(t *testing.T, name string, got, want DQ) {
	t.Helper()
	if !got.ApproxEqual(want, 1e-12) {
		t.Fatalf("%s: got %v want %v", name, got, want)
	}
}

func nearVec(t *testing.T, name string, got, want [3]num.Real) {
	t.Helper()
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > 1e-12 {
			t.Fatalf("%s: got %v want %v", name, got, want)
		}
	}
}

func TestProjectionsAndConjugates(t *testing.T) {
	dq := Make[num.Real](1, 2, 3, 4, 5, 6, 7, 8)
	if Real(dq) != quat.New[num.Real](1, 2, 3, 4) || Imag(dq) != quat.New[num.Real](5, 6, 7, 8) {
		t.Fatalf("projections mismatch: %v", dq)
	}
	if got := DualConj(dq); got != Make[num.Real](1, 2, 3, 4, -5, -6, -7, -8) {
		t.Fatalf("dual conj got %v", got)
	}
	// full conj: {(w,-w'), (-x,x'), (-y,y'), (-z,z')}
	if got := FullConj(dq); got != Make[num.Real](1, -2, -3, -4, -5, 6, 7, 8) {
		t.Fatalf("full conj got %v", got)
	}
	if FullConj(FullConj(dq)) != dq || DualConj(DualConj(dq)) != dq {
		t.Fatalf("conjugates should be involutions")
	}
	if Imag(Lift(quat.New[num.Real](1, 2, 3, 4))) != (quat.Quaternion[num.Real]{}) {
		t.Fatalf("lift should have zero dual part")
	}
}

func TestAgainstGonum(t *testing.T) {
	p := Make[num.Real](0.3, -1, 2, 0.5, 1.5, 0.25, -0.75, 2)
	q := Make[num.Real](1.1, 0.4, -0.2, 0.9, -0.6, 1.3, 0.05, -1)
	gp, gq := ToGonum(p), ToGonum(q)

	near(t, "mul", quat.Mul(p, q), FromGonum(gdq.Mul(gp, gq)))
	near(t, "full conj", FullConj(p), FromGonum(gdq.Conj(gp)))
	near(t, "dual conj", DualConj(p), FromGonum(gdq.ConjDual(gp)))
	near(t, "quat conj", quat.Conj(p), FromGonum(gdq.ConjQuat(gp)))

	if RealProduct(p, q) != quat.Mul(Real(p), Real(q)) {
		t.Fatalf("real product mismatch")
	}
	if DualProduct(p, q) != quat.Mul(Imag(p), Imag(q)) {
		t.Fatalf("dual product mismatch")
	}
}

func TestRigidTransform(t *testing.T) {
	z := [3]num.Real{0, 0, 1}
	rot := quat.FromAxisAngle(z, math.Pi/2)
	dq := FromRigid(rot, [3]num.Real{1, 2, 3})

	if !quat.IsNormalized(dq) {
		t.Fatalf("rigid transform should be unit: %v", quat.Norm2(dq))
	}
	nearVec(t, "translation", Translation(dq), [3]num.Real{1, 2, 3})
	nearVec(t, "transform", TransformPoint(dq, [3]num.Real{1, 0, 0}), [3]num.Real{1, 3, 3})

	// 組合：先 dq，再 second。
	second := FromRigid(quat.FromAxisAngle([3]num.Real{1, 0, 0}, math.Pi), [3]num.Real{0, 0, -1})
	composed := quat.Mul(second, dq)
	p := [3]num.Real{0.5, -2, 4}
	nearVec(t, "compose", TransformPoint(composed, p), TransformPoint(second, TransformPoint(dq, p)))

	// 反轉換
	inv := quat.Inverse(dq)
	nearVec(t, "inverse", TransformPoint(inv, TransformPoint(dq, p)), p)
}

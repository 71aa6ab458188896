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
	"math"
	"testing"

	"github.com/zintix-labs/numlab/bounded"
	"github.com/zintix-labs/numlab/interval"
)

const eps = 1e-9

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > eps {
		t.Fatalf("%s: got %v want %v", name, got, want)
	}
}

func TestConversion(t *testing.T) {
	approx(t, "deg->rad", Deg(180).Radians(), math.Pi)
	approx(t, "rad->deg", Rad(math.Pi/4).Degrees(), 45)
	approx(t, "rad->gon", Convert[Gon](Rad(math.Pi/4)).Value(), 50)
	approx(t, "rad->gon", Convert[Gon](Rad(math.Pi/2)).Value(), 100)
	approx(t, "deg->arcmin", Convert[ArcMin](Deg(1)).Value(), 60)
	approx(t, "arcsec->deg", Convert[Degree](New[ArcSec](3600)).Value(), 1)
	approx(t, "turn->deg", Convert[Degree](New[Rev](0.25)).Value(), 90)
}

func TestArithmetic(t *testing.T) {
	approx(t, "add", Deg(20).Add(Deg(30)).Value(), 50)
	d := Deg(270).Sub(Convert[Degree](Rad(math.Pi / 2)))
	approx(t, "sub", d.Value(), 180)
	e := Deg(90).Add(Convert[Degree](Rad(math.Pi / 2))).Add(Convert[Degree](Rad(math.Pi / 2)))
	approx(t, "chain", e.Value(), 270)
	approx(t, "scale", Deg(15).Scale(3).Value(), 45)
	approx(t, "div", Deg(90).DivScalar(4).Value(), 22.5)
	approx(t, "neg", Deg(10).Neg().Value(), -10)
}

func TestTrig(t *testing.T) {
	approx(t, "cos 0", Rad(0).Cos(), 1)
	approx(t, "cos 90", Deg(90).Cos(), 0)
	approx(t, "cos 30", Deg(30).Cos(), 0.8660254037844386)
	approx(t, "sin 30", Deg(30).Sin(), 0.5)
	approx(t, "sin pi/3", Rad(math.Pi/3).Sin(), 0.8660254037844386)
	approx(t, "tan 45", Deg(45).Tan(), 1)
	approx(t, "asin", Asin[Degree](0.5).Value(), 30)
	approx(t, "atan2", Atan2[Gon](1, 0).Value(), 100)
}

func TestNormalizeAndWrap(t *testing.T) {
	cases := map[float64]float64{370: 10, -10: 350, 720: 0, 359.5: 359.5, -720: 0}
	for in, want := range cases {
		approx(t, "normalize", Deg(in).Normalize().Value(), want)
	}
	approx(t, "signed", Deg(270).Signed().Value(), -90)
	approx(t, "signed", Deg(-190).Signed().Value(), 170)
	r := Rad(-math.Pi / 2)
	r.Wrap()
	approx(t, "wrap", r.Value(), 1.5*math.Pi)
	approx(t, "remainder", Deg(30).Remainder().Value(), 330)
	approx(t, "remainder 0", Deg(360).Remainder().Value(), 0)
}

func TestClampCompareFormat(t *testing.T) {
	approx(t, "clamp hi", Deg(200).Clamp(Deg(90), Deg(0)).Value(), 90)
	approx(t, "clamp lo", Deg(-5).Clamp(Deg(0), Deg(90)).Value(), 0)
	if Deg(1).Cmp(Deg(2)) != -1 || Deg(2).Cmp(Deg(2)) != 0 {
		t.Fatalf("cmp mismatch")
	}
	if Deg(90).String() != "90°" || Rad(1.5).String() != "1.5rad" || New[Gon](50).Raw() != "50" {
		t.Fatalf("format mismatch: %s %s", Deg(90), Rad(1.5))
	}
	if !Deg(1).ApproxEqual(Deg(1+1e-12), eps) {
		t.Fatalf("approx equal mismatch")
	}
}

func TestBoundedAngles(t *testing.T) {
	c := NewClipped(Deg(400))
	approx(t, "clipped", c.Value(), 360)
	if err := c.Sub(Deg(500)); err != nil {
		t.Fatalf("clip returned error: %v", err)
	}
	approx(t, "clipped below", c.Value(), 0)

	var w WrappedDegrees = NewWrapped(Deg(370))
	approx(t, "wrapped", w.Value(), 10)
	_ = w.Add(Deg(-30))
	approx(t, "wrapped add", w.Value(), 340)
	if w.String() != "340°" {
		t.Fatalf("string got %s", w.String())
	}

	r := NewWrapped(Rad(-math.Pi / 2))
	approx(t, "wrapped rad", r.Angle().Radians(), 3*math.Pi/2)

	inc := NewInclination(Deg(120))
	approx(t, "inclination", inc.Value(), 90)
	_ = inc.Set(Deg(-95))
	approx(t, "inclination low", inc.Value(), -90)

	fov := NewFOV(New[Gon](250))
	approx(t, "fov", fov.Value(), 200)
	lo, hi := fov.Range()
	approx(t, "fov lo", lo.Value(), 0)
	approx(t, "fov hi", hi.Value(), 200)

	chk, err := NewBounded[Degree, bounded.ThrowIfOutOfBounds[float64]](Deg(10), interval.New(0.0, 45.0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := chk.Add(Deg(40)); err == nil {
		t.Fatalf("expected out of range error")
	}
	approx(t, "checked unchanged", chk.Value(), 10)
}

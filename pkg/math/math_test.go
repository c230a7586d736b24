// pkg/math/math_test.go
// Copyright(c) 2024-2026 globeview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"testing"

	"github.com/globeview/globeview/pkg/rand"
)

func TestToUnitSphereNorm(t *testing.T) {
	r := rand.Make()
	for i := 0; i < 1000; i++ {
		lat := -90 + 180*r.Float32()
		lng := -180 + 360*r.Float32()
		p := ToUnitSphere(lat, lng)
		if n := Length3f(p); Abs(n-1) > 1e-5 {
			t.Errorf("(%f, %f): |p| = %.8g, expected 1", lat, lng, n)
		}
	}
}

func TestToUnitSphereLandmarks(t *testing.T) {
	type tc struct {
		lat, lng float32
		p        [3]float32
	}
	eps := float32(1e-6)
	for _, c := range []tc{
		{lat: 90, lng: 0, p: [3]float32{0, 1, 0}},
		{lat: -90, lng: 0, p: [3]float32{0, -1, 0}},
		{lat: 0, lng: -180, p: [3]float32{-1, 0, 0}},
		{lat: 0, lng: 0, p: [3]float32{1, 0, 0}},
	} {
		p := ToUnitSphere(c.lat, c.lng)
		for d := 0; d < 3; d++ {
			if Abs(p[d]-c.p[d]) > eps {
				t.Errorf("(%f, %f): got %v, expected %v", c.lat, c.lng, p, c.p)
			}
		}
	}
}

func TestRotateViewOrder(t *testing.T) {
	// The Y rotation must be applied before the X rotation; check against
	// a hand-evaluated reference point where the two orders disagree.
	p := [3]float32{1, 0, 0}
	ry, rx := Radians(90), Radians(90)

	// Y by 90: (1,0,0) -> (0,0,-1); then X by 90: (0,0,-1) -> (0,1,0)
	got := RotateView(p, rx, ry)
	want := [3]float32{0, 1, 0}
	for d := 0; d < 3; d++ {
		if Abs(got[d]-want[d]) > 1e-6 {
			t.Fatalf("got %v, expected %v; rotation order contract violated", got, want)
		}
	}
}

func TestRotateViewPreservesNorm(t *testing.T) {
	r := rand.Make()
	for i := 0; i < 100; i++ {
		p := ToUnitSphere(-90+180*r.Float32(), -180+360*r.Float32())
		q := RotateView(p, -3+6*r.Float32(), -10+20*r.Float32())
		if n := Length3f(q); Abs(n-1) > 1e-5 {
			t.Errorf("|rotated| = %.8g, expected 1", n)
		}
	}
}

func TestProjectNorthPoleAboveCenter(t *testing.T) {
	// Orientation regression: with no rotation, the north pole must render
	// above the window center (screen Y grows downward).
	p := RotateView(ToUnitSphere(90, 0), 0, 0)
	sp := ProjectPoint(p, 800, 600, 200, [2]float32{})
	if sp.Pos[1] >= 300 {
		t.Errorf("north pole projected to y=%f, expected < 300", sp.Pos[1])
	}
	if !sp.Visible {
		t.Errorf("north pole not visible at zero rotation")
	}
}

func TestProjectVisibility(t *testing.T) {
	near := [3]float32{0, 0, -1} // facing the viewer
	far := [3]float32{0, 0, 1}   // far side of the globe
	if sp := ProjectPoint(near, 100, 100, 40, [2]float32{}); !sp.Visible {
		t.Errorf("near point not visible")
	}
	if sp := ProjectPoint(far, 100, 100, 40, [2]float32{}); sp.Visible {
		t.Errorf("far point visible")
	}
}

func TestProjectPerspectiveShrinks(t *testing.T) {
	// A point on the far half projects closer to the center than the same
	// x/y on the near half: the perspective divide scales inversely with
	// depth.
	nearP := ProjectPoint([3]float32{0.5, 0, -0.5}, 200, 200, 80, [2]float32{})
	farP := ProjectPoint([3]float32{0.5, 0, 0.5}, 200, 200, 80, [2]float32{})
	if nearP.Pos[0] <= farP.Pos[0] {
		t.Errorf("near x=%f, far x=%f; expected near to project farther from center",
			nearP.Pos[0], farP.Pos[0])
	}
}

func TestDegreeDistance2LL(t *testing.T) {
	a := Point2LL{0, 0}
	b := Point2LL{3, 4}
	if d := DegreeDistance2LL(a, b); Abs(d-5) > 1e-6 {
		t.Errorf("got %f, expected 5", d)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Errorf("Clamp is broken")
	}
}

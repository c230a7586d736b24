// pkg/globe/globe_test.go
// Copyright(c) 2024-2026 globeview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package globe

import (
	"testing"

	"github.com/globeview/globeview/pkg/math"
	"github.com/globeview/globeview/pkg/model"
	"github.com/globeview/globeview/pkg/renderer"
)

func testCamera() *Camera {
	return &Camera{Width: 800, Height: 600, Scale: 250}
}

func TestArcPathEndpoints(t *testing.T) {
	cam := testCamera()
	// Both on the front hemisphere at the identity rotation.
	from := math.Point2LL{-170, 10}
	to := math.Point2LL{-175, 35}

	p0 := cam.Project(from)
	p2 := cam.Project(to)
	if !p0.Visible || !p2.Visible {
		t.Fatalf("test endpoints not visible: %+v %+v", p0, p2)
	}

	path, ok := ArcPath(from, to, cam)
	if !ok {
		t.Fatal("visible arc culled")
	}
	if len(path) != arcSegments+1 {
		t.Fatalf("path has %d points, want %d", len(path), arcSegments+1)
	}

	if d := math.Distance2f(path[0], p0.Pos); d > 1e-3 {
		t.Errorf("path start %.2f pixels from projected origin", d)
	}
	if d := math.Distance2f(path[len(path)-1], p2.Pos); d > 1e-3 {
		t.Errorf("path end %.2f pixels from projected destination", d)
	}
}

func TestArcPathBows(t *testing.T) {
	cam := testCamera()
	from := math.Point2LL{-170, 0}
	to := math.Point2LL{-130, 0}

	path, ok := ArcPath(from, to, cam)
	if !ok {
		t.Fatal("visible arc culled")
	}

	// The elevated control point must pull the curve midpoint off the
	// straight chord between the endpoints.
	chordMid := math.Mid2f(path[0], path[len(path)-1])
	curveMid := path[len(path)/2]
	if d := math.Distance2f(chordMid, curveMid); d < 1 {
		t.Errorf("curve midpoint only %.2f pixels off the chord, expected a visible bow", d)
	}
}

func TestArcPathCulledBehindGlobe(t *testing.T) {
	cam := testCamera()
	// At the identity rotation lng -90 is the center of the far
	// hemisphere (depth +1), so both endpoints sit well past the
	// near-plane threshold.
	from := math.Point2LL{-90, 0}
	to := math.Point2LL{-85, 10}

	for _, p := range []math.Point2LL{from, to} {
		if sp := cam.Project(p); sp.Visible {
			t.Fatalf("%v: expected far-side point to be invisible: %+v", p, sp)
		}
	}
	if _, ok := ArcPath(from, to, cam); ok {
		t.Error("arc with both endpoints behind the globe was not culled")
	}
}

func TestArcColorResolution(t *testing.T) {
	pal := DefaultPalette()
	explicit := renderer.RGB{R: 0.1, G: 0.2, B: 0.3}

	for _, tc := range []struct {
		name        string
		arc         model.Arc
		dist        float32
		highlighted bool
		want        renderer.RGB
	}{
		{"highlight wins over alert", model.Arc{Policy: model.ColorForcedAlert}, 10, true, pal.Highlight},
		{"alert wins over explicit color", model.Arc{Policy: model.ColorForcedAlert, Color: explicit}, 10, false, pal.Alert},
		{"explicit", model.Arc{Policy: model.ColorExplicit, Color: explicit}, 10, false, explicit},
		{"short bucket", model.Arc{Policy: model.ColorByDistanceBucket}, 10, false, pal.ArcShort},
		{"medium bucket", model.Arc{Policy: model.ColorByDistanceBucket}, 45, false, pal.ArcMedium},
		{"long bucket", model.Arc{Policy: model.ColorByDistanceBucket}, 120, false, pal.ArcLong},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := ArcColor(&tc.arc, tc.dist, tc.highlighted, &pal); !got.Equals(tc.want) {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestGraticuleStaysOnNearSide(t *testing.T) {
	cam := testCamera()
	ld := renderer.GetLinesDrawBuilder()
	defer renderer.ReturnLinesDrawBuilder(ld)

	AddGraticule(cam, ld)

	b := ld.Bounds()
	if b.Width() == 0 || b.Height() == 0 {
		t.Fatal("graticule generated no geometry")
	}
	// Everything the graticule emits stays within the projected globe
	// extent: radius Scale around the screen center, with slack for the
	// perspective divide.
	maxR := cam.Scale * math.FocalLength / (math.FocalLength - 1)
	center := [2]float32{cam.Width / 2, cam.Height / 2}
	for _, corner := range [][2]float32{b.P0, b.P1} {
		if d := math.Distance2f(corner, center); d > 2*maxR {
			t.Errorf("graticule extends %.0f pixels from center, beyond the globe", d)
		}
	}
}

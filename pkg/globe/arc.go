// pkg/globe/arc.go
// Copyright(c) 2024-2026 globeview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package globe

import (
	"github.com/globeview/globeview/pkg/math"
	"github.com/globeview/globeview/pkg/model"
	"github.com/globeview/globeview/pkg/renderer"
)

// ArcElevation scales how far an arc's control point rises off the
// sphere per degree of endpoint separation.
const ArcElevation = 0.005

// arcSegments is the number of line segments each arc is tessellated
// into.
const arcSegments = 24

// Distance bucket thresholds, in planar degrees. Note that arc distances
// are planar, not great-circle, throughout: Δlat/Δlng treated as a 2D
// vector. That visibly misbehaves near the poles and across the 180°
// seam, and it is kept anyway because the bucket boundaries and the
// elevation constant were tuned against it.
const (
	shortArcDegrees = 30
	longArcDegrees  = 90
)

// ArcPath tessellates the curved path for an arc between two positions.
// The control point is the planar midpoint, lifted off the sphere in
// proportion to the endpoint separation; the curve is a quadratic Bézier
// evaluated between the three projected 2D points, not in 3D. It returns
// the polyline and whether any of it should be drawn at all; an arc with
// both endpoints on the far side of the globe is culled whole.
func ArcPath(from, to math.Point2LL, cam *Camera) ([][2]float32, bool) {
	p0 := cam.Project(from)
	p2 := cam.Project(to)
	if !p0.Visible && !p2.Visible {
		return nil, false
	}

	dist := math.DegreeDistance2LL(from, to)
	elevation := 1 + ArcElevation*dist
	p1 := cam.projectElevated(math.Mid2LL(from, to), elevation)

	path := make([][2]float32, arcSegments+1)
	for i := range path {
		t := float32(i) / arcSegments
		u := 1 - t
		a := math.Scale2f(p0.Pos, u*u)
		b := math.Scale2f(p1.Pos, 2*u*t)
		c := math.Scale2f(p2.Pos, t*t)
		path[i] = math.Add2f(math.Add2f(a, b), c)
	}
	return path, true
}

// ArcColor resolves the draw color for an arc: adjacency highlighting
// wins, then a forced alert, then an explicit record color, and finally
// the planar-distance bucket.
func ArcColor(a *model.Arc, dist float32, highlighted bool, pal *Palette) renderer.RGB {
	switch {
	case highlighted:
		return pal.Highlight
	case a.Policy == model.ColorForcedAlert:
		return pal.Alert
	case a.Policy == model.ColorExplicit:
		return a.Color
	case dist < shortArcDegrees:
		return pal.ArcShort
	case dist > longArcDegrees:
		return pal.ArcLong
	default:
		return pal.ArcMedium
	}
}

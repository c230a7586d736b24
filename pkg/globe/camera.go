// pkg/globe/camera.go
// Copyright(c) 2024-2026 globeview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package globe

import "github.com/globeview/globeview/pkg/math"

// Camera bundles the view parameters every projection needs: the two
// rotation angles, the output surface size, the zoom scale in pixels per
// unit-sphere radius, and the pan offset in pixels.
type Camera struct {
	RotationX float32
	RotationY float32
	Width     float32
	Height    float32
	Scale     float32
	Pan       [2]float32
}

// Project maps a geographic position through the full pipeline: onto the
// unit sphere, through the view rotation, and out through the
// perspective projection.
func (c *Camera) Project(pos math.Point2LL) math.ScreenPoint {
	return c.projectElevated(pos, 1)
}

// projectElevated is Project with the sphere point scaled away from the
// surface first; arc control points use this.
func (c *Camera) projectElevated(pos math.Point2LL, elevation float32) math.ScreenPoint {
	p := math.ToUnitSphere(pos.Latitude(), pos.Longitude())
	if elevation != 1 {
		p = math.Scale3f(p, elevation)
	}
	p = math.RotateView(p, c.RotationX, c.RotationY)
	return math.ProjectPoint(p, c.Width, c.Height, c.Scale, c.Pan)
}

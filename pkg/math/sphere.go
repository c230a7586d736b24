// pkg/math/sphere.go
// Copyright(c) 2024-2026 globeview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

// Projection of geographic coordinates onto the screen goes in three pure
// steps: lat-long to a Cartesian point on the unit sphere, rotation of that
// point by the current view angles, and a perspective projection down to 2D
// window coordinates. Each step is a free function of its inputs so all of
// this can be exercised with table-driven tests.

// FocalLength is the distance from the center of projection to the
// projection plane, expressed in sphere radii.
const FocalLength = 3

// NearPlaneZ is the depth threshold past which points are considered to be
// on the far side of the globe and are culled. It is a fixed constant tied
// to the unit sphere radius; it is not re-derived when zoom changes the
// effective on-screen radius. (A known fragility, preserved as-is.)
const NearPlaneZ = 0.2

// ToUnitSphere converts a latitude-longitude position in degrees to a
// Cartesian point on the unit sphere. The result has unit norm for all
// lat in [-90,90] and lng in [-180,180], modulo floating-point epsilon.
func ToUnitSphere(lat, lng float32) [3]float32 {
	phi := Radians(90 - lat)
	theta := Radians(lng + 180)
	return [3]float32{
		-Sin(phi) * Cos(theta),
		Cos(phi),
		Sin(phi) * Sin(theta),
	}
}

// RotateView rotates p about the Y axis by rotY and then about the X axis
// by rotX. The order is a fixed contract: the globe spins about its polar
// axis first and the result is then tilted toward or away from the viewer.
// Reversing it changes the on-screen orientation.
func RotateView(p [3]float32, rotX, rotY float32) [3]float32 {
	sy, cy := Sin(rotY), Cos(rotY)
	x := p[0]*cy + p[2]*sy
	z := -p[0]*sy + p[2]*cy

	sx, cx := Sin(rotX), Cos(rotX)
	y := p[1]*cx - z*sx
	z = p[1]*sx + z*cx

	return [3]float32{x, y, z}
}

// ScreenPoint is the result of projecting a rotated sphere point into
// window coordinates.
type ScreenPoint struct {
	Pos     [2]float32
	Depth   float32
	Visible bool
}

// ProjectPoint perspective-projects a rotated Cartesian point into window
// coordinates for a surface of the given size. scale is the on-screen
// sphere radius in pixels (zoom is folded in by the caller) and pan offsets
// the projection center from the window center. Window Y grows downward,
// so the screen Y axis is flipped relative to the sphere's.
func ProjectPoint(p [3]float32, width, height, scale float32, pan [2]float32) ScreenPoint {
	projScale := FocalLength / (FocalLength + p[2])
	return ScreenPoint{
		Pos: [2]float32{
			width/2 + pan[0] + p[0]*projScale*scale,
			height/2 + pan[1] - p[1]*projScale*scale,
		},
		Depth:   p[2],
		Visible: p[2] < NearPlaneZ,
	}
}

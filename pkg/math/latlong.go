// pkg/math/latlong.go
// Copyright(c) 2024-2026 globeview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import "fmt"

///////////////////////////////////////////////////////////////////////////
// Point2LL

// Point2LL represents a 2D point on the Earth in latitude-longitude.
// Important: 0 (x) is longitude, 1 (y) is latitude
type Point2LL [2]float32

func (p Point2LL) Longitude() float32 {
	return p[0]
}

func (p Point2LL) Latitude() float32 {
	return p[1]
}

// DDString returns the position in decimal degrees, e.g.:
// (39.860901, -75.274864)
func (p Point2LL) DDString() string {
	return fmt.Sprintf("(%f, %f)", p[1], p[0]) // latitude, longitude
}

// Mid2LL returns the arithmetic mean of the two points, component-wise.
// Note that this is not the great-circle midpoint: arcs are drawn through
// the planar midpoint on purpose, matching the display's established look.
// It misbehaves near the poles and across the antimeridian.
func Mid2LL(a Point2LL, b Point2LL) Point2LL {
	return Point2LL(Mid2f(a, b))
}

// DegreeDistance2LL returns the planar Euclidean distance between two
// lat-long points, measured in degrees: sqrt(dlat^2 + dlng^2). Arc
// elevation and the length buckets used for default arc colors are both
// defined in terms of this distance, not a spherical one.
func DegreeDistance2LL(a Point2LL, b Point2LL) float32 {
	return Sqrt(Sqr(a[1]-b[1]) + Sqr(a[0]-b[0]))
}

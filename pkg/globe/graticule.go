// pkg/globe/graticule.go
// Copyright(c) 2024-2026 globeview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package globe

import (
	"github.com/globeview/globeview/pkg/math"
	"github.com/globeview/globeview/pkg/renderer"
)

// Graticule spacing and sampling, in degrees.
const (
	graticuleStep   = 30
	graticuleSample = 5
	parallelMaxLat  = 60
	meridianMaxLat  = 85
)

// AddGraticule adds the latitude/longitude reference grid to ld:
// parallels every 30° between ±60° and meridians every 30° all the way
// around. Each line is sampled in 5° steps and only segments with both
// sample points on the near side of the globe are kept, so the grid
// vanishes over the horizon with geometry rather than depth testing.
func AddGraticule(cam *Camera, ld *renderer.LinesDrawBuilder) {
	for lat := float32(-parallelMaxLat); lat <= parallelMaxLat; lat += graticuleStep {
		prev := math.ScreenPoint{}
		havePrev := false
		for lng := float32(-180); lng <= 180; lng += graticuleSample {
			cur := cam.Project(math.Point2LL{lng, lat})
			if havePrev && prev.Visible && cur.Visible {
				ld.AddLine(prev.Pos, cur.Pos)
			}
			prev, havePrev = cur, true
		}
	}

	for lng := float32(-180); lng < 180; lng += graticuleStep {
		prev := math.ScreenPoint{}
		havePrev := false
		for lat := float32(-meridianMaxLat); lat <= meridianMaxLat; lat += graticuleSample {
			cur := cam.Project(math.Point2LL{lng, lat})
			if havePrev && prev.Visible && cur.Visible {
				ld.AddLine(prev.Pos, cur.Pos)
			}
			prev, havePrev = cur, true
		}
	}
}

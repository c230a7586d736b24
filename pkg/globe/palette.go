// pkg/globe/palette.go
// Copyright(c) 2024-2026 globeview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package globe

import "github.com/globeview/globeview/pkg/renderer"

// Palette holds every color the scene uses. Hosts that theme the display
// swap the whole palette; nothing in the engine reads colors from
// anywhere else.
type Palette struct {
	Background renderer.RGB
	Grid       renderer.RGB
	Point      renderer.RGB
	Label      renderer.RGB
	Highlight  renderer.RGB
	Alert      renderer.RGB
	ArcShort   renderer.RGB
	ArcMedium  renderer.RGB
	ArcLong    renderer.RGB

	// DimOpacity is the alpha for the dimmed pass over non-adjacent
	// arcs while a selection is active.
	DimOpacity float32
}

// DefaultPalette is a dark scheme in the spirit of a radar scope.
func DefaultPalette() Palette {
	return Palette{
		Background: renderer.RGB{R: 0.02, G: 0.02, B: 0.06},
		Grid:       renderer.RGB{R: 0.18, G: 0.22, B: 0.30},
		Point:      renderer.RGB{R: 0.95, G: 0.85, B: 0.30},
		Label:      renderer.RGB{R: 0.85, G: 0.88, B: 0.95},
		Highlight:  renderer.RGB{R: 0.30, G: 0.95, B: 0.95},
		Alert:      renderer.RGB{R: 0.95, G: 0.15, B: 0.15},
		ArcShort:   renderer.RGB{R: 0.35, G: 0.80, B: 0.40},
		ArcMedium:  renderer.RGB{R: 0.95, G: 0.65, B: 0.20},
		ArcLong:    renderer.RGB{R: 0.80, G: 0.35, B: 0.85},
		DimOpacity: 0.25,
	}
}

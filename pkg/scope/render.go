// pkg/scope/render.go
// Copyright(c) 2024-2026 globeview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scope

import (
	"github.com/globeview/globeview/pkg/globe"
	gmath "github.com/globeview/globeview/pkg/math"
	"github.com/globeview/globeview/pkg/renderer"
)

// Point radii in pixels; the drawn radius grows with the log of the
// aggregate weight so that a hub with dozens of observations doesn't
// swallow its neighbors.
const (
	pointBaseRadius = 2
	pointMaxRadius  = 8
	hoverRingRadius = PickRadius
)

func pointRadius(weight int) float32 {
	return gmath.Min(pointBaseRadius+gmath.Log2(1+float32(weight)), pointMaxRadius)
}

// Draw renders the whole scene into cb. The layer order is fixed:
// background, graticule, dimmed arcs, highlighted arcs, points, labels.
// The two arc passes are what keep a highlighted neighborhood readable:
// with a selection active every non-adjacent arc is drawn first in a
// flat dim color, then the adjacent ones on top at full strength, so no
// dimmed arc ever occludes a highlighted one.
//
// Before the surface has a size every draw is a no-op; that happens
// routinely on the tick between host construction and first layout and
// is not an error.
func (gs *GlobeScope) Draw(cb *renderer.CommandBuffer) {
	if gs.width == 0 || gs.height == 0 {
		return
	}

	cam := gs.Camera()
	pal := &gs.Palette
	selected := gs.Interaction.SelectedKey

	cb.ClearRGB(pal.Background)
	cb.Viewport(0, 0, int(gs.width), int(gs.height))

	// Graticule.
	ld := renderer.GetLinesDrawBuilder()
	defer renderer.ReturnLinesDrawBuilder(ld)
	globe.AddGraticule(cam, ld)
	cb.LineWidth(1)
	cb.SetRGB(pal.Grid)
	ld.GenerateCommands(cb)

	// Arcs, dimmed pass then highlighted pass.
	dimmed := renderer.GetLinesDrawBuilder()
	defer renderer.ReturnLinesDrawBuilder(dimmed)
	highlighted := renderer.GetColoredLinesDrawBuilder()
	defer renderer.ReturnColoredLinesDrawBuilder(highlighted)

	for _, id := range gs.Model.ArcIDs() {
		arc := gs.Model.Arcs[id]
		from := gs.Model.Points[arc.FromKey]
		to := gs.Model.Points[arc.ToKey]

		path, ok := globe.ArcPath(from.Pos, to.Pos, cam)
		if !ok {
			continue
		}

		if selected != "" && arc.FromKey != selected && arc.ToKey != selected {
			dimmed.AddLineStrip(path)
		} else {
			touches := selected != ""
			dist := gmath.DegreeDistance2LL(from.Pos, to.Pos)
			highlighted.AddLineStrip(globe.ArcColor(arc, dist, touches, pal), path)
		}
	}

	cb.Blend()
	cb.SetRGBA(pal.Grid.WithAlpha(pal.DimOpacity))
	dimmed.GenerateCommands(cb)
	cb.DisableBlend()

	cb.LineWidth(2)
	highlighted.GenerateCommands(cb)

	// Points. With a selection active the non-adjacent ones go in a
	// separate pass in one flat dim color, drawn first so the
	// emphasized neighborhood sits on top.
	td := renderer.GetColoredTrianglesDrawBuilder()
	defer renderer.ReturnColoredTrianglesDrawBuilder(td)
	dimPoints := renderer.GetTrianglesDrawBuilder()
	defer renderer.ReturnTrianglesDrawBuilder(dimPoints)
	ring := renderer.GetLinesDrawBuilder()
	defer renderer.ReturnLinesDrawBuilder(ring)

	for _, key := range gs.Model.PointKeys() {
		p := gs.Model.Points[key]
		sp := cam.Project(p.Pos)
		if !sp.Visible {
			continue
		}

		if _, adjacent := gs.Interaction.AdjacentKeys[key]; adjacent {
			td.AddCircle(sp.Pos, pointRadius(p.Weight), 12, pal.Highlight)
		} else if selected != "" {
			dimPoints.AddCircle(sp.Pos, pointRadius(p.Weight), 12)
		} else {
			td.AddCircle(sp.Pos, pointRadius(p.Weight), 12, pal.Point)
		}

		if key == gs.Interaction.HoveredKey {
			ring.AddCircle(sp.Pos, hoverRingRadius, 16)
		}
	}
	cb.SetRGB(pal.Point.Scale(pal.DimOpacity))
	dimPoints.GenerateCommands(cb)
	td.GenerateCommands(cb)
	cb.LineWidth(1)
	cb.SetRGB(pal.Highlight)
	ring.GenerateCommands(cb)

	// Labels, for the hovered point and the selected neighborhood.
	text := renderer.GetTextDrawBuilder()
	defer renderer.ReturnTextDrawBuilder(text)

	for _, key := range gs.Model.PointKeys() {
		p := gs.Model.Points[key]
		_, adjacent := gs.Interaction.AdjacentKeys[key]
		if key != gs.Interaction.HoveredKey && !adjacent {
			continue
		}
		sp := cam.Project(p.Pos)
		if !sp.Visible || p.Label == "" {
			continue
		}
		offset := [2]float32{pointRadius(p.Weight) + 3, -3}
		text.AddText(p.Label, gmath.Add2f(sp.Pos, offset), pal.Label.WithAlpha(1))
	}
	text.GenerateCommands(cb)
}

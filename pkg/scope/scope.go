// pkg/scope/scope.go
// Copyright(c) 2024-2026 globeview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scope

import (
	"github.com/globeview/globeview/pkg/globe"
	"github.com/globeview/globeview/pkg/log"
	gmath "github.com/globeview/globeview/pkg/math"
	"github.com/globeview/globeview/pkg/model"
)

const (
	// DragSensitivity converts pointer drag pixels to radians of
	// rotation.
	DragSensitivity = 0.005

	// Wheel zoom tuning. Zoom is a pure multiplier on the base scale.
	ZoomSpeed = 0.0015
	ZoomMin   = 0.5
	ZoomMax   = 4

	// AutoRotateSpeed is radians per second of idle spin.
	AutoRotateSpeed = 0.15

	// PickRadius is the hit-test radius around the pointer, in pixels.
	PickRadius = 12
)

// ViewState is the camera state: where the globe is turned to, how far
// in we are, and how the projection is offset on the surface. It is
// mutated only by the scope's input handlers and Tick.
type ViewState struct {
	RotationX  float32 // clamped to [-pi/2, pi/2]
	RotationY  float32 // unbounded; wraps naturally through the trig
	Zoom       float32
	Pan        [2]float32
	AutoRotate bool
}

// InteractionState tracks the pointer: whether a drag is in progress,
// what is hovered, and what is selected. AdjacentKeys is always derived
// from the model's arcs when SelectedKey changes, never maintained
// separately.
type InteractionState struct {
	Dragging       bool
	LastPointerPos [2]float32
	HoveredKey     string
	SelectedKey    string
	AdjacentKeys   map[string]interface{}
}

// GlobeScope owns the view and interaction state for one globe display
// and turns host input events into state transitions. It is
// single-threaded: the host calls every method from the same goroutine
// that drives Tick and Draw.
type GlobeScope struct {
	View        ViewState
	Interaction InteractionState

	Model   *model.Model
	Palette globe.Palette

	width, height float32

	eventStream *EventStream
	lg          *log.Logger
}

func NewGlobeScope(es *EventStream, lg *log.Logger) *GlobeScope {
	return &GlobeScope{
		View:        ViewState{Zoom: 1, AutoRotate: true},
		Model:       model.NewModel(),
		Palette:     globe.DefaultPalette(),
		eventStream: es,
		lg:          lg,
	}
}

// SetModel swaps in a freshly derived model. View and interaction state
// persist across the swap; the selection is re-checked against the new
// model and its adjacency recomputed, since the arcs incident to the
// selected point may have changed.
func (gs *GlobeScope) SetModel(m *model.Model) {
	gs.Model = m
	if gs.Interaction.SelectedKey != "" {
		if _, ok := m.Points[gs.Interaction.SelectedKey]; ok {
			gs.Interaction.AdjacentKeys = m.AdjacentKeys(gs.Interaction.SelectedKey)
		} else {
			gs.clearSelection()
		}
	}
	if gs.Interaction.HoveredKey != "" {
		if _, ok := m.Points[gs.Interaction.HoveredKey]; !ok {
			gs.setHover("")
		}
	}
}

// Resize records the drawing surface size. A zero size makes Draw a
// no-op until the first real layout arrives.
func (gs *GlobeScope) Resize(width, height float32) {
	gs.width, gs.height = width, height
}

// Size returns the current drawing surface size.
func (gs *GlobeScope) Size() (float32, float32) {
	return gs.width, gs.height
}

// baseScale is the globe radius in pixels at zoom 1.
func (gs *GlobeScope) baseScale() float32 {
	return gmath.Min(gs.width, gs.height) * 0.4
}

// Camera returns the projection parameters for the current view.
func (gs *GlobeScope) Camera() *globe.Camera {
	return &globe.Camera{
		RotationX: gs.View.RotationX,
		RotationY: gs.View.RotationY,
		Width:     gs.width,
		Height:    gs.height,
		Scale:     gs.baseScale() * gs.View.Zoom,
		Pan:       gs.View.Pan,
	}
}

// PointerDown starts a drag and stops the idle spin.
func (gs *GlobeScope) PointerDown(pos [2]float32) {
	gs.Interaction.Dragging = true
	gs.Interaction.LastPointerPos = pos
	gs.View.AutoRotate = false
}

// PointerMove either advances a drag or updates the hover, depending on
// state. Drag deltas rotate about Y for horizontal motion and X for
// vertical, with the X rotation clamped so the view cannot flip over
// the poles.
func (gs *GlobeScope) PointerMove(pos [2]float32) {
	if gs.Interaction.Dragging {
		delta := gmath.Sub2f(pos, gs.Interaction.LastPointerPos)
		gs.View.RotationY += delta[0] * DragSensitivity
		gs.View.RotationX = gmath.Clamp(gs.View.RotationX+delta[1]*DragSensitivity,
			-gmath.Pi()/2, gmath.Pi()/2)
		gs.Interaction.LastPointerPos = pos
	} else {
		gs.setHover(gs.pick(pos))
		gs.Interaction.LastPointerPos = pos
	}
}

// PointerUp ends a drag.
func (gs *GlobeScope) PointerUp(pos [2]float32) {
	gs.Interaction.Dragging = false
	gs.Interaction.LastPointerPos = pos
}

// PointerLeave ends any drag and clears the hover.
func (gs *GlobeScope) PointerLeave() {
	gs.Interaction.Dragging = false
	gs.setHover("")
}

// Wheel zooms, anchored at the cursor: the world point under the cursor
// before the zoom is still under the cursor afterwards, which is what
// makes zooming toward a point of interest feel right.
func (gs *GlobeScope) Wheel(deltaY float32, cursor [2]float32) {
	zoom := gmath.Clamp(gs.View.Zoom-deltaY*ZoomSpeed, ZoomMin, ZoomMax)
	if zoom == gs.View.Zoom {
		return
	}

	// screen = center + pan + world * scale, so holding screen fixed at
	// the cursor across a scale change moves pan toward the cursor by
	// the scale ratio.
	ratio := zoom / gs.View.Zoom
	center := [2]float32{gs.width / 2, gs.height / 2}
	rel := gmath.Sub2f(cursor, gmath.Add2f(center, gs.View.Pan))
	gs.View.Pan = gmath.Sub2f(gmath.Sub2f(cursor, center), gmath.Scale2f(rel, ratio))
	gs.View.Zoom = zoom
}

// Click toggles the selection. Clicking the selected point deselects it;
// clicking another point selects it and derives its one-hop adjacency;
// clicking empty space clears any selection.
func (gs *GlobeScope) Click(pos [2]float32) {
	key := gs.pick(pos)
	switch {
	case key == "":
		gs.clearSelection()
	case key == gs.Interaction.SelectedKey:
		gs.clearSelection()
	default:
		gs.Interaction.SelectedKey = key
		gs.Interaction.AdjacentKeys = gs.Model.AdjacentKeys(key)
		gs.eventStream.Post(Event{Type: SelectionChangedEvent, Key: key, Point: gs.Model.Points[key]})
	}
}

func (gs *GlobeScope) clearSelection() {
	if gs.Interaction.SelectedKey == "" {
		return
	}
	gs.Interaction.SelectedKey = ""
	gs.Interaction.AdjacentKeys = nil
	gs.eventStream.Post(Event{Type: SelectionChangedEvent})
}

func (gs *GlobeScope) setHover(key string) {
	if key == gs.Interaction.HoveredKey {
		return
	}
	gs.Interaction.HoveredKey = key
	gs.eventStream.Post(Event{Type: HoverChangedEvent, Key: key, Point: gs.Model.Points[key]})
}

// pick returns the key of the first point in sorted key order whose
// projection lies within PickRadius of pos, or "" if none does. First
// match, not nearest match; with the deterministic iteration order the
// same pointer position always picks the same point.
func (gs *GlobeScope) pick(pos [2]float32) string {
	cam := gs.Camera()
	for _, key := range gs.Model.PointKeys() {
		sp := cam.Project(gs.Model.Points[key].Pos)
		if sp.Visible && gmath.Distance2f(sp.Pos, pos) < PickRadius {
			return key
		}
	}
	return ""
}

// Tick advances the idle spin; it does nothing else, and nothing else
// happens per frame, so hosts can drive it from any scheduling
// primitive they have.
func (gs *GlobeScope) Tick(dt float32) {
	if gs.View.AutoRotate && !gs.Interaction.Dragging {
		gs.View.RotationY += AutoRotateSpeed * dt
	}
}

// Reset restores the home view and clears the selection and hover.
func (gs *GlobeScope) Reset() {
	gs.View = ViewState{Zoom: 1, AutoRotate: true}
	gs.clearSelection()
	gs.setHover("")
	gs.Interaction.Dragging = false
}

// pkg/scope/scope_test.go
// Copyright(c) 2024-2026 globeview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scope

import (
	"testing"

	gmath "github.com/globeview/globeview/pkg/math"
	"github.com/globeview/globeview/pkg/model"
	"github.com/globeview/globeview/pkg/rand"
	"github.com/globeview/globeview/pkg/renderer"
)

// testScope returns a sized scope whose model has three network nodes on
// the front hemisphere at the identity rotation: a and b connected, c
// isolated far enough away to never fall in the same pick radius.
func testScope() *GlobeScope {
	gs := NewGlobeScope(NewEventStream(nil), nil)
	gs.Resize(800, 600)

	a := model.NetworkEndpoint{Pos: gmath.Point2LL{-170, 0}, Name: "a"}
	b := model.NetworkEndpoint{Pos: gmath.Point2LL{-175, 20}, Name: "b"}
	c := model.NetworkEndpoint{Pos: gmath.Point2LL{-172, -30}, Name: "c"}
	gs.SetModel(model.BuildNetworkModel([]model.NetworkRecord{
		{Source: a, Target: b},
		{Source: c, Target: c},
	}))
	return gs
}

const keyA = "0.00,-170.00"
const keyB = "20.00,-175.00"
const keyC = "-30.00,-172.00"

func (gs *GlobeScope) screenPos(t *testing.T, key string) [2]float32 {
	t.Helper()
	sp := gs.Camera().Project(gs.Model.Points[key].Pos)
	if !sp.Visible {
		t.Fatalf("%s is not visible", key)
	}
	return sp.Pos
}

func TestDragRotationXAlwaysClamped(t *testing.T) {
	gs := testScope()
	r := rand.Make()

	gs.PointerDown([2]float32{400, 300})
	pos := [2]float32{400, 300}
	for i := 0; i < 10000; i++ {
		pos = gmath.Add2f(pos, [2]float32{r.Float32()*200 - 100, r.Float32()*200 - 100})
		gs.PointerMove(pos)
		if gmath.Abs(gs.View.RotationX) > gmath.Pi()/2+1e-5 {
			t.Fatalf("rotationX %v escaped the clamp after %d moves", gs.View.RotationX, i+1)
		}
	}
}

func TestDragStopsAutoRotate(t *testing.T) {
	gs := testScope()
	if !gs.View.AutoRotate {
		t.Fatal("auto-rotate not on initially")
	}

	gs.Tick(0.1)
	if gs.View.RotationY == 0 {
		t.Error("tick did not advance the idle spin")
	}

	gs.PointerDown([2]float32{400, 300})
	if gs.View.AutoRotate {
		t.Error("pointer down did not stop auto-rotate")
	}
	rotY := gs.View.RotationY
	gs.Tick(0.1)
	if gs.View.RotationY != rotY {
		t.Error("tick advanced rotation after auto-rotate stopped")
	}
}

func TestWheelZoomAlwaysClamped(t *testing.T) {
	gs := testScope()
	r := rand.Make()

	cursor := [2]float32{400, 300}
	for i := 0; i < 10000; i++ {
		gs.Wheel(r.Float32()*2000-1000, cursor)
		if gs.View.Zoom < ZoomMin || gs.View.Zoom > ZoomMax {
			t.Fatalf("zoom %v escaped [%v, %v] after %d wheel events", gs.View.Zoom, ZoomMin, ZoomMax, i+1)
		}
	}
}

func TestWheelZoomAnchoredAtCursor(t *testing.T) {
	gs := testScope()

	// Zoom with the cursor sitting right on a point; the point must not
	// move on screen.
	cursor := gs.screenPos(t, keyA)
	gs.Wheel(-300, cursor) // zoom in
	if d := gmath.Distance2f(gs.screenPos(t, keyA), cursor); d > 0.1 {
		t.Errorf("anchored point moved %v pixels during zoom in", d)
	}
	gs.Wheel(200, cursor) // zoom back out
	if d := gmath.Distance2f(gs.screenPos(t, keyA), cursor); d > 0.1 {
		t.Errorf("anchored point moved %v pixels during zoom out", d)
	}
}

func TestHoverAndPick(t *testing.T) {
	gs := testScope()

	gs.PointerMove(gs.screenPos(t, keyB))
	if gs.Interaction.HoveredKey != keyB {
		t.Errorf("hovered %q, want %q", gs.Interaction.HoveredKey, keyB)
	}

	// Far from everything.
	gs.PointerMove([2]float32{10, 10})
	if gs.Interaction.HoveredKey != "" {
		t.Errorf("hovered %q over empty space", gs.Interaction.HoveredKey)
	}
}

func TestPickFirstMatchInKeyOrder(t *testing.T) {
	gs := NewGlobeScope(NewEventStream(nil), nil)
	gs.Resize(800, 600)

	// Two nodes close enough together that both are within the pick
	// radius of a pointer between them.
	a := model.NetworkEndpoint{Pos: gmath.Point2LL{-170, 0}, Name: "a"}
	b := model.NetworkEndpoint{Pos: gmath.Point2LL{-170.5, 0.5}, Name: "b"}
	gs.SetModel(model.BuildNetworkModel([]model.NetworkRecord{{Source: a, Target: b}}))

	pa := gs.screenPos(t, "0.00,-170.00")
	pb := gs.screenPos(t, "0.50,-170.50")
	mid := gmath.Mid2f(pa, pb)
	if gmath.Distance2f(mid, pa) >= PickRadius || gmath.Distance2f(mid, pb) >= PickRadius {
		t.Skipf("test points project %v apart, too far for a shared pick", gmath.Distance2f(pa, pb))
	}

	// Both qualify; the first key in sorted order wins even though the
	// pointer may be nearer the other.
	if got := gs.pick(mid); got != "0.00,-170.00" {
		t.Errorf("picked %q, want first-order key %q", got, "0.00,-170.00")
	}
}

func TestClickSelectionToggle(t *testing.T) {
	gs := testScope()
	sub := gs.eventStream.Subscribe()

	// Select a: adjacency is {a, b}.
	gs.Click(gs.screenPos(t, keyA))
	if gs.Interaction.SelectedKey != keyA {
		t.Fatalf("selected %q, want %q", gs.Interaction.SelectedKey, keyA)
	}
	for _, key := range []string{keyA, keyB} {
		if _, ok := gs.Interaction.AdjacentKeys[key]; !ok {
			t.Errorf("%s missing from adjacency", key)
		}
	}
	if _, ok := gs.Interaction.AdjacentKeys[keyC]; ok {
		t.Error("isolated node in adjacency")
	}

	ev := sub.Get()
	if len(ev) != 1 || ev[0].Type != SelectionChangedEvent || ev[0].Key != keyA {
		t.Errorf("events after select: %v", ev)
	}
	if ev[0].Point == nil || ev[0].Point.Label != "a" {
		t.Errorf("selection event point: %+v", ev[0].Point)
	}

	// Click the same point again: toggle off.
	gs.Click(gs.screenPos(t, keyA))
	if gs.Interaction.SelectedKey != "" {
		t.Errorf("selection %q after toggle, want empty", gs.Interaction.SelectedKey)
	}
	if len(gs.Interaction.AdjacentKeys) != 0 {
		t.Errorf("adjacency %v after toggle, want empty", gs.Interaction.AdjacentKeys)
	}
	ev = sub.Get()
	if len(ev) != 1 || ev[0].Key != "" || ev[0].Point != nil {
		t.Errorf("events after deselect: %v", ev)
	}
}

func TestClickEmptySpaceClearsSelection(t *testing.T) {
	gs := testScope()

	gs.Click(gs.screenPos(t, keyA))
	if gs.Interaction.SelectedKey == "" {
		t.Fatal("initial selection failed")
	}
	gs.Click([2]float32{10, 10})
	if gs.Interaction.SelectedKey != "" {
		t.Errorf("selection %q after empty-space click", gs.Interaction.SelectedKey)
	}
}

func TestSelectionSurvivesModelRebuild(t *testing.T) {
	gs := testScope()
	gs.Click(gs.screenPos(t, keyA))

	// Rebuilding with the same records keeps the selection and its
	// adjacency.
	a := model.NetworkEndpoint{Pos: gmath.Point2LL{-170, 0}, Name: "a"}
	b := model.NetworkEndpoint{Pos: gmath.Point2LL{-175, 20}, Name: "b"}
	gs.SetModel(model.BuildNetworkModel([]model.NetworkRecord{{Source: a, Target: b}}))
	if gs.Interaction.SelectedKey != keyA {
		t.Errorf("selection %q after rebuild, want %q", gs.Interaction.SelectedKey, keyA)
	}
	if _, ok := gs.Interaction.AdjacentKeys[keyB]; !ok {
		t.Error("adjacency not recomputed after rebuild")
	}

	// Rebuilding without the selected point clears the selection.
	gs.SetModel(model.BuildNetworkModel([]model.NetworkRecord{{Source: b, Target: b}}))
	if gs.Interaction.SelectedKey != "" {
		t.Errorf("selection %q after its point disappeared", gs.Interaction.SelectedKey)
	}
}

func TestReset(t *testing.T) {
	gs := testScope()
	gs.PointerDown([2]float32{400, 300})
	gs.PointerMove([2]float32{500, 350})
	gs.PointerUp([2]float32{500, 350})
	gs.Wheel(-500, [2]float32{400, 300})
	gs.Click(gs.screenPos(t, keyA))

	gs.Reset()
	want := ViewState{Zoom: 1, AutoRotate: true}
	if gs.View != want {
		t.Errorf("view after reset: %+v", gs.View)
	}
	if gs.Interaction.SelectedKey != "" || gs.Interaction.HoveredKey != "" {
		t.Errorf("interaction after reset: %+v", gs.Interaction)
	}
}

func TestDrawZeroSizeIsNoOp(t *testing.T) {
	gs := NewGlobeScope(NewEventStream(nil), nil)
	gs.SetModel(testScope().Model)

	cb := renderer.GetCommandBuffer()
	defer renderer.ReturnCommandBuffer(cb)
	gs.Draw(cb)
	if !cb.Empty() {
		t.Error("draw with no surface size emitted commands")
	}
}

// commandSequence walks an encoded command buffer and returns just the
// command words, skipping each command's arguments.
func commandSequence(t *testing.T, cb *renderer.CommandBuffer) []uint32 {
	t.Helper()
	var cmds []uint32
	for i := 0; i < len(cb.Buf); {
		cmd := cb.Buf[i]
		cmds = append(cmds, cmd)
		i++
		switch cmd {
		case renderer.RendererClearRGBA, renderer.RendererViewport, renderer.RendererScissor,
			renderer.RendererSetRGBA:
			i += 4
		case renderer.RendererVertexArray, renderer.RendererRGB32Array:
			i += 3
		case renderer.RendererDrawLines, renderer.RendererDrawTriangles:
			i += 2
		case renderer.RendererLineWidth, renderer.RendererCallBuffer:
			i++
		case renderer.RendererFloatBuffer, renderer.RendererIntBuffer:
			i += 1 + int(cb.Buf[i])
		case renderer.RendererText:
			n := int(cb.Buf[i+6])
			i += 7 + (n+3)/4
		case renderer.RendererBlend, renderer.RendererDisableBlend,
			renderer.RendererDisableVertexArray, renderer.RendererDisableColorArray,
			renderer.RendererResetState:
		default:
			t.Fatalf("%d: unknown command at offset %d", cmd, i-1)
		}
	}
	return cmds
}

func TestDrawTwoPassArcOrdering(t *testing.T) {
	gs := testScope()
	gs.Click(gs.screenPos(t, keyA))

	cb := renderer.GetCommandBuffer()
	defer renderer.ReturnCommandBuffer(cb)
	gs.Draw(cb)

	// With a selection active the dimmed pass draws inside a blend
	// region and the highlight pass follows it, so the buffer must read
	// Blend ... DrawLines ... DisableBlend ... DrawLines.
	cmds := commandSequence(t, cb)
	blend, disable, lastDraw := -1, -1, -1
	dimDraws := 0
	for i, cmd := range cmds {
		switch cmd {
		case renderer.RendererBlend:
			blend = i
		case renderer.RendererDisableBlend:
			disable = i
		case renderer.RendererDrawLines:
			if blend != -1 && disable == -1 {
				dimDraws++
			}
			lastDraw = i
		}
	}
	if blend == -1 || disable == -1 || blend > disable {
		t.Fatalf("no blend region in command stream: blend %d, disable %d", blend, disable)
	}
	if dimDraws == 0 {
		t.Error("no dimmed arc draw between Blend and DisableBlend")
	}
	if lastDraw < disable {
		t.Error("no highlighted draw after the dimmed pass")
	}
}

func TestDrawDimsUnselectedPoints(t *testing.T) {
	gs := testScope()

	countTriangles := func() int {
		cb := renderer.GetCommandBuffer()
		defer renderer.ReturnCommandBuffer(cb)
		gs.Draw(cb)
		n := 0
		for _, cmd := range commandSequence(t, cb) {
			if cmd == renderer.RendererDrawTriangles {
				n++
			}
		}
		return n
	}

	if n := countTriangles(); n != 1 {
		t.Errorf("expected a single point pass with no selection, got %d", n)
	}

	// Selecting a leaves c outside the neighborhood, so it moves to the
	// flat-color dim pass that precedes the emphasized one.
	gs.Click(gs.screenPos(t, keyA))
	if n := countTriangles(); n != 2 {
		t.Errorf("expected a dim pass and an emphasis pass with a selection, got %d", n)
	}
}

func TestDrawHoverRingAfterPoints(t *testing.T) {
	gs := testScope()
	gs.PointerMove(gs.screenPos(t, keyC))
	if gs.Interaction.HoveredKey != keyC {
		t.Fatalf("hover landed on %q, wanted %q", gs.Interaction.HoveredKey, keyC)
	}

	cb := renderer.GetCommandBuffer()
	defer renderer.ReturnCommandBuffer(cb)
	gs.Draw(cb)

	lastLines, lastTriangles := -1, -1
	for i, cmd := range commandSequence(t, cb) {
		switch cmd {
		case renderer.RendererDrawLines:
			lastLines = i
		case renderer.RendererDrawTriangles:
			lastTriangles = i
		}
	}
	if lastTriangles == -1 || lastLines < lastTriangles {
		t.Error("no hover ring drawn after the point pass")
	}
}

func TestDrawEmitsCommands(t *testing.T) {
	gs := testScope()
	cb := renderer.GetCommandBuffer()
	defer renderer.ReturnCommandBuffer(cb)
	gs.Draw(cb)
	if cb.Empty() {
		t.Error("draw with a sized surface emitted nothing")
	}
}

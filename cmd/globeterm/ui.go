// cmd/globeterm/ui.go
// Copyright(c) 2024-2026 globeview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/globeview/globeview/pkg/log"
	gmath "github.com/globeview/globeview/pkg/math"
	"github.com/globeview/globeview/pkg/model"
	"github.com/globeview/globeview/pkg/renderer"
	"github.com/globeview/globeview/pkg/scope"
)

// wheelNotch is the zoom delta for one scroll step; terminals report
// wheel motion a notch at a time rather than in pixels.
const wheelNotch = 120

// clickSlop is how far the pointer may move between press and release
// for the release to still count as a click.
const clickSlop = 2

func runUI(cfg Config, ds *DataSet, lg *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	resolver := model.NewCoordResolver(ds.Lookup, lg)
	resolver.LoadCache()
	defer func() {
		if err := resolver.SaveCache(); err != nil {
			lg.Warnf("saving coordinate cache: %v", err)
		}
	}()

	buildModel := func() *model.Model {
		if cfg.Mode == "network" {
			return model.BuildNetworkModel(ds.NetworkRecords())
		}
		return model.BuildFlightModel(ds.FlightRecords(), resolver)
	}

	events := scope.NewEventStream(lg)
	sub := events.Subscribe()
	defer sub.Unsubscribe()

	gs := scope.NewGlobeScope(events, lg)
	w, h := screen.Size()
	gs.Resize(float32(w), float32(h))
	gs.SetModel(buildModel())

	// Codes the first build couldn't place go to the lookup off the
	// frame loop; when results come back the model is rebuilt wholesale
	// rather than patched.
	resolvedCh := make(chan int, 1)
	if resolver.HavePending() {
		go func() { resolvedCh <- resolver.ResolvePending() }()
	}

	evCh := make(chan tcell.Event, 16)
	quitCh := make(chan struct{})
	go screen.ChannelEvents(evCh, quitCh)
	defer close(quitCh)

	tr := renderer.NewTCellRenderer(screen, lg)
	defer tr.Dispose()

	dt := 1 / float32(cfg.FrameRate)
	ticker := time.NewTicker(time.Duration(float32(time.Second) * dt))
	defer ticker.Stop()

	var status string
	var dragStart [2]float32
	var prevButtons tcell.ButtonMask
	var stats renderer.RendererStats

	for {
		select {
		case <-ticker.C:
			gs.Tick(dt)
			for _, ev := range sub.Get() {
				switch {
				case ev.Point == nil:
					status = ""
				case ev.Type == scope.SelectionChangedEvent:
					status = fmt.Sprintf("%s  %s  weight %d", ev.Point.Label,
						ev.Point.Pos.DDString(), ev.Point.Weight)
				case ev.Type == scope.HoverChangedEvent && gs.Interaction.SelectedKey == "":
					status = ev.Point.Label
				}
			}

			cb := renderer.GetCommandBuffer()
			gs.Draw(cb)
			drawStatusBar(cb, gs, status)
			stats = tr.RenderCommandBuffer(cb)
			renderer.ReturnCommandBuffer(cb)
			screen.Show()

		case n := <-resolvedCh:
			lg.Infof("lookup resolved %d codes", n)
			if n > 0 {
				gs.SetModel(buildModel())
			}

		case ev, ok := <-evCh:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				gs.Resize(float32(w), float32(h))
				screen.Sync()

			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					lg.Info("exiting", "stats", stats)
					return nil
				case ev.Rune() == 'q':
					lg.Info("exiting", "stats", stats)
					return nil
				case ev.Rune() == 'r':
					gs.Reset()
				}

			case *tcell.EventMouse:
				prevButtons = handleMouse(gs, ev, prevButtons, &dragStart)
			}
		}
	}
}

func handleMouse(gs *scope.GlobeScope, ev *tcell.EventMouse, prev tcell.ButtonMask,
	dragStart *[2]float32) tcell.ButtonMask {
	x, y := ev.Position()
	pos := [2]float32{float32(x), float32(y)}
	btn := ev.Buttons()

	if btn&tcell.WheelUp != 0 {
		gs.Wheel(-wheelNotch, pos)
	}
	if btn&tcell.WheelDown != 0 {
		gs.Wheel(wheelNotch, pos)
	}

	pressed := btn&tcell.Button1 != 0
	wasPressed := prev&tcell.Button1 != 0
	switch {
	case pressed && !wasPressed:
		*dragStart = pos
		gs.PointerDown(pos)
	case pressed && wasPressed:
		gs.PointerMove(pos)
	case !pressed && wasPressed:
		gs.PointerUp(pos)
		if gmath.Distance2f(pos, *dragStart) <= clickSlop {
			gs.Click(pos)
		}
	default:
		gs.PointerMove(pos)
	}
	return btn
}

// drawStatusBar writes the hover/selection line plus any diagnostic
// tally along the bottom row.
func drawStatusBar(cb *renderer.CommandBuffer, gs *scope.GlobeScope, status string) {
	_, h := gs.Size()
	if h == 0 {
		return
	}
	if d := gs.Model.Diag; d.Unresolved > 0 || d.Malformed > 0 {
		if status != "" {
			status += "  |  "
		}
		status += fmt.Sprintf("%d unresolved, %d malformed records not shown",
			d.Unresolved, d.Malformed)
	}
	if status != "" {
		cb.Text(status, [2]float32{1, h - 1}, gs.Palette.Label.WithAlpha(1))
	}
}

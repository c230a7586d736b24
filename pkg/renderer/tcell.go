// pkg/renderer/tcell.go
// Copyright(c) 2024-2026 globeview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	gomath "math"

	"github.com/globeview/globeview/pkg/log"
	"github.com/globeview/globeview/pkg/math"

	"github.com/gdamore/tcell/v2"
)

// TCellRenderer executes command buffers against a tcell terminal screen,
// with one character cell per pixel. It is deliberately crude--lines are
// stepped cell by cell and triangles are filled with a bounding-box
// point-in-triangle test--but it needs no GPU or display server, which
// makes it the reference backend for the terminal host and for manual
// smoke testing over ssh.
type TCellRenderer struct {
	lg     *log.Logger
	screen tcell.Screen
}

func NewTCellRenderer(screen tcell.Screen, l *log.Logger) *TCellRenderer {
	lg = l
	return &TCellRenderer{lg: l, screen: screen}
}

func (tr *TCellRenderer) Dispose() {}

// arrayDesc records an active vertex or color array: a byte offset into
// the command buffer plus the component count and stride, exactly as
// encoded by CommandBuffer.VertexArray and friends.
type arrayDesc struct {
	offset, nc, stride int
	enabled            bool
}

func (a arrayDesc) float(cb *CommandBuffer, idx, comp int) float32 {
	w := a.offset/4 + idx*a.stride/4 + comp
	return gomath.Float32frombits(cb.Buf[w])
}

func toTcellColor(r, g, b float32) tcell.Color {
	c := func(v float32) int32 {
		return int32(math.Clamp(v, 0, 1)*255 + 0.5)
	}
	return tcell.NewRGBColor(c(r), c(g), c(b))
}

func (tr *TCellRenderer) RenderCommandBuffer(cb *CommandBuffer) RendererStats {
	var stats RendererStats
	stats.nBuffers++
	stats.bufferBytes += 4 * len(cb.Buf)

	var vtx, col arrayDesc
	cur := RGBA{R: 1, G: 1, B: 1, A: 1}

	i := 0
	ui32 := func() uint32 {
		v := cb.Buf[i]
		i++
		return v
	}
	i32 := func() int32 {
		return int32(ui32())
	}
	float := func() float32 {
		return gomath.Float32frombits(ui32())
	}

	// Color for the idx'th vertex: the per-vertex color array if one is
	// bound, the current RGBA otherwise.
	vtxColor := func(idx int) tcell.Color {
		if col.enabled {
			return toTcellColor(col.float(cb, idx, 0), col.float(cb, idx, 1), col.float(cb, idx, 2))
		}
		return toTcellColor(cur.R, cur.G, cur.B)
	}
	vtxPos := func(idx int) [2]float32 {
		return [2]float32{vtx.float(cb, idx, 0), vtx.float(cb, idx, 1)}
	}

	for i < len(cb.Buf) {
		cmd := cb.Buf[i]
		i++
		switch cmd {
		case RendererClearRGBA:
			r := float()
			g := float()
			b := float()
			float() // alpha; terminal cells are opaque
			st := tcell.StyleDefault.Background(toTcellColor(r, g, b))
			w, h := tr.screen.Size()
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					tr.screen.SetContent(x, y, ' ', nil, st)
				}
			}

		case RendererViewport, RendererScissor:
			// A terminal has a single full-screen viewport.
			i += 4

		case RendererBlend, RendererDisableBlend:
			// No blending in a character cell.

		case RendererSetRGBA:
			cur = RGBA{R: float(), G: float(), B: float(), A: float()}

		case RendererLineWidth:
			float()

		case RendererFloatBuffer, RendererIntBuffer:
			// Nothing to do for the moment but skip ahead
			i += int(ui32())

		case RendererVertexArray:
			vtx = arrayDesc{offset: int(ui32()), nc: int(i32()), stride: int(i32()), enabled: true}

		case RendererDisableVertexArray:
			vtx.enabled = false

		case RendererRGB32Array:
			col = arrayDesc{offset: int(ui32()), nc: int(i32()), stride: int(i32()), enabled: true}

		case RendererDisableColorArray:
			col.enabled = false

		case RendererDrawLines:
			offset := int(ui32())
			count := int(i32())
			idx := offset / 4
			for j := 0; j < count; j += 2 {
				i0, i1 := int(cb.Buf[idx+j]), int(cb.Buf[idx+j+1])
				tr.drawLine(vtxPos(i0), vtxPos(i1), vtxColor(i0))
			}
			stats.nDrawCalls++
			stats.nLines += count / 2

		case RendererDrawTriangles:
			offset := int(ui32())
			count := int(i32())
			idx := offset / 4
			for j := 0; j < count; j += 3 {
				i0, i1, i2 := int(cb.Buf[idx+j]), int(cb.Buf[idx+j+1]), int(cb.Buf[idx+j+2])
				tr.fillTriangle(vtxPos(i0), vtxPos(i1), vtxPos(i2), vtxColor(i0))
			}
			stats.nDrawCalls++
			stats.nTriangles += count / 3

		case RendererText:
			x := float()
			y := float()
			fg := toTcellColor(float(), float(), float())
			float() // alpha
			n := int(ui32())
			nints := (n + 3) / 4
			var b []byte
			for w := 0; w < nints; w++ {
				v := cb.Buf[i+w]
				b = append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
			}
			i += nints
			s := string(b[:n])
			st := tcell.StyleDefault.Foreground(fg)
			for k, ch := range s {
				tr.screen.SetContent(int(x)+k, int(y), ch, nil, st)
			}
			stats.nDrawCalls++
			stats.nChars += len(s)

		case RendererCallBuffer:
			idx := ui32()
			s2 := tr.RenderCommandBuffer(&cb.called[idx])
			stats.Merge(s2)

		case RendererResetState:
			vtx.enabled = false
			col.enabled = false
			cur = RGBA{R: 1, G: 1, B: 1, A: 1}

		default:
			tr.lg.Errorf("%d: unhandled command in TCellRenderer", cmd)
			return stats
		}
	}

	return stats
}

// lineRune picks a glyph that roughly matches the direction of a line
// segment, which reads much better in a terminal than a uniform dot.
func lineRune(d [2]float32) rune {
	if math.Abs(d[0]) > 2*math.Abs(d[1]) {
		return '-'
	}
	if math.Abs(d[1]) > 2*math.Abs(d[0]) {
		return '|'
	}
	if (d[0] > 0) == (d[1] > 0) {
		return '\\'
	}
	return '/'
}

func (tr *TCellRenderer) drawLine(p0, p1 [2]float32, c tcell.Color) {
	st := tcell.StyleDefault.Foreground(c)
	ch := lineRune(math.Sub2f(p1, p0))

	n := int(math.Distance2f(p0, p1)) + 1
	for j := 0; j <= n; j++ {
		p := math.Lerp2f(float32(j)/float32(n), p0, p1)
		tr.screen.SetContent(int(p[0]), int(p[1]), ch, nil, st)
	}
}

func (tr *TCellRenderer) fillTriangle(p0, p1, p2 [2]float32, c tcell.Color) {
	st := tcell.StyleDefault.Foreground(c)
	e := math.Extent2DFromPoints([][2]float32{p0, p1, p2})

	edge := func(a, b, p [2]float32) float32 {
		return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
	}
	for y := int(e.P0[1]); y <= int(e.P1[1]); y++ {
		for x := int(e.P0[0]); x <= int(e.P1[0]); x++ {
			p := [2]float32{float32(x) + 0.5, float32(y) + 0.5}
			w0, w1, w2 := edge(p0, p1, p), edge(p1, p2, p), edge(p2, p0, p)
			if (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0) {
				tr.screen.SetContent(x, y, '█', nil, st)
			}
		}
	}
}

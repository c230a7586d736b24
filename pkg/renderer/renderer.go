// pkg/renderer/renderer.go
// Copyright(c) 2024-2026 globeview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"fmt"
	"log/slog"

	"github.com/globeview/globeview/pkg/log"
)

var lg *log.Logger

// SetLogger specifies the logger used for errors encountered while
// encoding command buffers; a nil logger is fine (errors then go to the
// default slog handler).
func SetLogger(l *log.Logger) {
	lg = l
}

// Renderer defines an interface for executing encoded command buffers.
// The engine core only ever produces CommandBuffers; everything that
// touches an actual drawing surface lives behind this interface, which
// makes it straightforward to provide terminal, OpenGL, or image-file
// backends without the engine knowing the difference.
type Renderer interface {
	// RenderCommandBuffer executes all of the commands encoded in the
	// provided command buffer, returning statistics about what was
	// rendered.
	RenderCommandBuffer(*CommandBuffer) RendererStats

	// Dispose releases resources allocated by the renderer.
	Dispose()
}

// RendererStats encapsulates assorted statistics from rendering.
type RendererStats struct {
	nBuffers, bufferBytes int
	nDrawCalls            int
	nLines, nTriangles    int
	nChars                int
}

func (rs *RendererStats) String() string {
	return fmt.Sprintf("%d buffers (%.2f MB), %d draw calls: %d lines, %d tris, %d chars",
		rs.nBuffers, float32(rs.bufferBytes)/(1024*1024), rs.nDrawCalls, rs.nLines, rs.nTriangles, rs.nChars)
}

func (rs *RendererStats) Merge(s RendererStats) {
	rs.nBuffers += s.nBuffers
	rs.bufferBytes += s.bufferBytes
	rs.nDrawCalls += s.nDrawCalls
	rs.nLines += s.nLines
	rs.nTriangles += s.nTriangles
	rs.nChars += s.nChars
}

func (rs RendererStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("buffers", rs.nBuffers),
		slog.Int("buffer_memory", rs.bufferBytes),
		slog.Int("draw_calls", rs.nDrawCalls),
		slog.Int("lines", rs.nLines),
		slog.Int("tris", rs.nTriangles),
		slog.Int("chars", rs.nChars),
	)
}

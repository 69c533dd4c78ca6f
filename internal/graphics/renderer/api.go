package renderer

import (
	"first-rect/internal/graphics"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Viewport *graphics.Viewport
	Frame    uint64
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}

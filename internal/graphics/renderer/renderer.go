package renderer

import (
	"first-rect/internal/graphics"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features.
// It leaves depth testing and blending at their defaults (disabled).
type Renderer struct {
	renderables []Renderable
	viewport    *graphics.Viewport
	clearColor  mgl32.Vec4
	frame       uint64
}

// NewRenderer initializes every renderable in order.
// If one fails, those already initialized are disposed before returning.
func NewRenderer(clearColor mgl32.Vec4, viewport *graphics.Viewport, rs ...Renderable) (*Renderer, error) {
	for i, r := range rs {
		if err := r.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, err
		}
	}

	return &Renderer{
		renderables: rs,
		viewport:    viewport,
		clearColor:  clearColor,
	}, nil
}

// Clear fills the color buffer with the clear color
func (r *Renderer) Clear() {
	c := r.clearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Draw renders every feature in registration order
func (r *Renderer) Draw() {
	ctx := RenderContext{Viewport: r.viewport, Frame: r.frame}
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
	r.frame++
}

// UpdateViewport resizes the GL viewport and notifies every renderable
func (r *Renderer) UpdateViewport(width, height int) {
	r.viewport.Resize(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}

// Viewport returns the tracked framebuffer region
func (r *Renderer) Viewport() *graphics.Viewport {
	return r.viewport
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

// Package rect draws the static white square.
package rect

import (
	"first-rect/internal/graphics"
	"first-rect/internal/graphics/renderer"
	"first-rect/internal/log"
)

var logger = log.New("rect")

// Rect owns the shader program and geometry for the square
type Rect struct {
	vertexSrc   string
	fragmentSrc string
	abortOnErr  bool

	program  *graphics.Program
	geometry *graphics.Geometry
}

// Option configures a Rect
type Option func(*Rect)

// WithSources replaces the built-in shader sources
func WithSources(vertexSrc, fragmentSrc string) Option {
	return func(r *Rect) {
		r.vertexSrc = vertexSrc
		r.fragmentSrc = fragmentSrc
	}
}

// WithAbortOnShaderError makes compile and link failures fail Init
func WithAbortOnShaderError(abort bool) Option {
	return func(r *Rect) {
		r.abortOnErr = abort
	}
}

func NewRect(opts ...Option) *Rect {
	r := &Rect{
		vertexSrc:   graphics.VertexShaderSource,
		fragmentSrc: graphics.FragmentShaderSource,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ renderer.Renderable = (*Rect)(nil)

// Init builds the program and uploads the square.
// Shader diagnostics are logged; unless abort is set the square is still set up and drawn.
func (r *Rect) Init() error {
	program, err := graphics.BuildProgram(r.vertexSrc, r.fragmentSrc)
	if err != nil {
		logger.Error(err)
		if r.abortOnErr {
			program.Delete()
			return err
		}
	}
	r.program = program
	r.geometry = graphics.NewGeometry(graphics.SquareVertices, graphics.PositionLayout)
	return nil
}

func (r *Rect) Render(ctx renderer.RenderContext) {
	r.program.Use()
	r.geometry.Draw()
}

// SetViewport is a no-op: positions are in NDC and follow the viewport
func (r *Rect) SetViewport(width, height int) {}

func (r *Rect) Dispose() {
	r.geometry.Delete()
	r.program.Delete()
	r.geometry = nil
	r.program = nil
}

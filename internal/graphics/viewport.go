package graphics

import (
	"image"
	"math"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Viewport tracks the framebuffer region the pipeline rasterizes into
type Viewport struct {
	Width  int
	Height int

	apply func(x, y, width, height int32)
}

// NewViewport creates a viewport covering a width x height framebuffer.
// Nothing is sent to the GPU until Resize is called.
func NewViewport(width, height int) *Viewport {
	return NewViewportFunc(width, height, gl.Viewport)
}

// NewViewportFunc is NewViewport with a custom function receiving each new viewport rectangle
func NewViewportFunc(width, height int, apply func(x, y, width, height int32)) *Viewport {
	return &Viewport{Width: width, Height: height, apply: apply}
}

// Resize records the new framebuffer size and updates the GL viewport to cover it
func (v *Viewport) Resize(width, height int) {
	v.Width, v.Height = width, height
	v.apply(0, 0, int32(width), int32(height))
}

// ToWindow maps an NDC position to window coordinates, origin bottom-left
func (v *Viewport) ToWindow(ndc mgl32.Vec3) mgl32.Vec3 {
	ident := mgl32.Ident4()
	return mgl32.Project(ndc, ident, ident, 0, 0, v.Width, v.Height)
}

// ImageRect maps the NDC rectangle spanning from..to to image coordinates, origin top-left.
// The result is the pixel range a correct rasterization fills.
func (v *Viewport) ImageRect(from, to mgl32.Vec2) image.Rectangle {
	lo := v.ToWindow(mgl32.Vec3{from.X(), from.Y(), 0})
	hi := v.ToWindow(mgl32.Vec3{to.X(), to.Y(), 0})

	x0, x1 := round(lo.X()), round(hi.X())
	y0, y1 := v.Height-round(hi.Y()), v.Height-round(lo.Y())
	return image.Rect(x0, y0, x1, y1)
}

// SquareRect is where SquareVertices land on the current framebuffer
func (v *Viewport) SquareRect() image.Rectangle {
	return v.ImageRect(mgl32.Vec2{-0.5, -0.5}, mgl32.Vec2{0.5, 0.5})
}

func round(f float32) int {
	return int(math.Round(float64(f)))
}

// Package frame inspects captured framebuffer images.
package frame

import (
	"image"
	"image/color"
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/bmp"
)

// White is the square's fragment color
var White = color.RGBA{255, 255, 255, 255}

// ToRGBA converts a normalized clear color to 8-bit channels
func ToRGBA(c mgl32.Vec4) color.RGBA {
	ch := func(f float32) uint8 {
		f = mgl32.Clamp(f, 0, 1)
		return uint8(f*255 + 0.5)
	}
	return color.RGBA{ch(c[0]), ch(c[1]), ch(c[2]), ch(c[3])}
}

// Near reports whether every RGB channel of c is within tol of ref
func Near(c, ref color.RGBA, tol uint8) bool {
	return within(c.R, ref.R, tol) && within(c.G, ref.G, tol) && within(c.B, ref.B, tol)
}

func within(a, b, tol uint8) bool {
	if a > b {
		return a-b <= tol
	}
	return b-a <= tol
}

// IsWhite matches the square's color within one step per channel
func IsWhite(c color.RGBA) bool {
	return Near(c, White, 1)
}

// At returns the pixel at (x, y) as RGBA
func At(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

// Bounds returns the smallest rectangle containing every pixel matching pred.
// ok is false when nothing matches.
func Bounds(img image.Image, pred func(color.RGBA) bool) (r image.Rectangle, ok bool) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !pred(At(img, x, y)) {
				continue
			}
			p := image.Rect(x, y, x+1, y+1)
			if !ok {
				r, ok = p, true
				continue
			}
			r = r.Union(p)
		}
	}
	return r, ok
}

// Filled reports whether every pixel inside r matches pred
func Filled(img image.Image, r image.Rectangle, pred func(color.RGBA) bool) bool {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if !pred(At(img, x, y)) {
				return false
			}
		}
	}
	return true
}

// RectNear reports whether each edge of got is within tol pixels of want
func RectNear(got, want image.Rectangle, tol int) bool {
	d := func(a, b int) bool {
		if a > b {
			return a-b <= tol
		}
		return b-a <= tol
	}
	return d(got.Min.X, want.Min.X) && d(got.Min.Y, want.Min.Y) &&
		d(got.Max.X, want.Max.X) && d(got.Max.Y, want.Max.Y)
}

// WriteBMP encodes img as an uncompressed bitmap
func WriteBMP(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}

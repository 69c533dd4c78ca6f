package frame

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func synthetic(w, h int, square image.Rectangle) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{38, 38, 38, 255}}, image.Point{}, draw.Src)
	draw.Draw(img, square, &image.Uniform{White}, image.Point{}, draw.Src)
	return img
}

func TestToRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{38, 38, 38, 255}, ToRGBA(mgl32.Vec4{0.15, 0.15, 0.15, 1}))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, ToRGBA(mgl32.Vec4{-1, 2, 0, 1}))
}

func TestNear(t *testing.T) {
	ref := color.RGBA{38, 38, 38, 255}
	assert.True(t, Near(color.RGBA{40, 36, 38, 255}, ref, 2))
	assert.False(t, Near(color.RGBA{41, 38, 38, 255}, ref, 2))
	assert.True(t, IsWhite(color.RGBA{254, 255, 254, 255}))
	assert.False(t, IsWhite(color.RGBA{253, 255, 255, 255}))
}

func TestBoundsAndFilled(t *testing.T) {
	square := image.Rect(200, 150, 600, 450)
	img := synthetic(800, 600, square)

	r, ok := Bounds(img, IsWhite)
	require.True(t, ok)
	assert.Equal(t, square, r)
	assert.True(t, Filled(img, r, IsWhite))
	assert.True(t, IsWhite(At(img, 400, 300)))
	assert.True(t, Near(At(img, 4, 4), color.RGBA{38, 38, 38, 255}, 2))
	assert.True(t, Near(At(img, 796, 596), color.RGBA{38, 38, 38, 255}, 2))

	_, ok = Bounds(synthetic(10, 10, image.Rectangle{}), IsWhite)
	assert.False(t, ok)

	assert.False(t, Filled(img, image.Rect(190, 150, 600, 450), IsWhite))
}

func TestRectNear(t *testing.T) {
	want := image.Rect(256, 192, 768, 576)
	assert.True(t, RectNear(image.Rect(255, 193, 769, 576), want, 1))
	assert.False(t, RectNear(image.Rect(254, 192, 768, 576), want, 1))
}

func TestWriteBMP(t *testing.T) {
	img := synthetic(16, 8, image.Rect(4, 2, 12, 6))

	var buf bytes.Buffer
	require.NoError(t, WriteBMP(&buf, img))

	decoded, err := bmp.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
	assert.True(t, IsWhite(At(decoded, 8, 4)))
	assert.False(t, IsWhite(At(decoded, 0, 0)))
}

package rect

import (
	"testing"

	"first-rect/internal/graphics"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	r := NewRect()
	assert.Equal(t, graphics.VertexShaderSource, r.vertexSrc)
	assert.Equal(t, graphics.FragmentShaderSource, r.fragmentSrc)
	assert.False(t, r.abortOnErr)
}

func TestOptions(t *testing.T) {
	r := NewRect(WithSources("v", "f"), WithAbortOnShaderError(true))
	assert.Equal(t, "v", r.vertexSrc)
	assert.Equal(t, "f", r.fragmentSrc)
	assert.True(t, r.abortOnErr)
}

func TestDisposeBeforeInit(t *testing.T) {
	r := NewRect()
	assert.NotPanics(t, r.Dispose)
}

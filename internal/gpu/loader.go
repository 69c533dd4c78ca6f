// Package gpu resolves the OpenGL core profile entry points.
package gpu

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

var ErrLoaderFailed = errors.New("gpu: failed to initialize OpenGL bindings")

// Info describes the context the bindings were loaded against
type Info struct {
	Version  string
	Renderer string
	Vendor   string
	GLSL     string
}

// Load resolves every core-profile function pointer against the current context.
// It must run after the context is made current and before any other gl call.
func Load() (Info, error) {
	// go-gl always resolves the full core entry point table, extensions included
	if err := gl.Init(); err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrLoaderFailed, err)
	}
	return Info{
		Version:  str(gl.VERSION),
		Renderer: str(gl.RENDERER),
		Vendor:   str(gl.VENDOR),
		GLSL:     str(gl.SHADING_LANGUAGE_VERSION),
	}, nil
}

func str(name uint32) string {
	p := gl.GetString(name)
	if p == nil {
		return ""
	}
	return gl.GoStr(p)
}

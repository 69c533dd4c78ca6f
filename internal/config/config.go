package config

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
)

// Settings holds window and pipeline configuration
type Settings struct {
	Width  int
	Height int
	Title  string

	// Requested context version and profile
	GLMajor            int
	GLMinor            int
	CoreProfile        bool
	ForwardCompatible  bool
	Resizable          bool
	ClearColor         mgl32.Vec4
	AbortOnShaderError bool
}

var (
	ErrInvalidSize    = errors.New("config: window size must be positive")
	ErrInvalidVersion = errors.New("config: context version must be at least 3.3")
)

// Default returns the settings the application starts with
func Default() Settings {
	return Settings{
		Width:       800,
		Height:      600,
		Title:       "LearnOpenGL - First Triangle",
		GLMajor:     3,
		GLMinor:     3,
		CoreProfile: true,
		// Core contexts on macOS are only handed out with forward compatibility set
		ForwardCompatible: runtime.GOOS == "darwin",
		Resizable:         true,
		ClearColor:        mgl32.Vec4{0.15, 0.15, 0.15, 1.0},
	}
}

// Validate checks that the settings can be handed to the windowing layer
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, s.Width, s.Height)
	}
	if s.GLMajor < 3 || (s.GLMajor == 3 && s.GLMinor < 3) {
		return fmt.Errorf("%w: got %d.%d", ErrInvalidVersion, s.GLMajor, s.GLMinor)
	}
	return nil
}

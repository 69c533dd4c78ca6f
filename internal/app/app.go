// Package app wires the window, GL bindings, renderer and render loop together.
package app

import (
	"first-rect/internal/config"
	"first-rect/internal/gpu"
	"first-rect/internal/graphics"
	"first-rect/internal/graphics/renderables/rect"
	"first-rect/internal/graphics/renderer"
	"first-rect/internal/input"
	"first-rect/internal/log"
	"first-rect/internal/window"
)

// Process exit codes
const (
	ExitSuccess = 0
	ExitFailure = -1
)

var logger = log.New("first-rect")

// Session exposes the live objects to frame hooks
type Session struct {
	Window   *window.Window
	Renderer *renderer.Renderer
	Input    *input.Manager
}

// Options configures a run. The zero value is not usable; start from DefaultOptions.
type Options struct {
	Settings       config.Settings
	VertexSource   string
	FragmentSource string

	// MaxFrames stops after that many frames; zero runs until the window closes
	MaxFrames int
	// AfterDraw runs after each frame is drawn and before it is presented
	AfterDraw func(frame int, s *Session)
}

func DefaultOptions() Options {
	return Options{
		Settings:       config.Default(),
		VertexSource:   graphics.VertexShaderSource,
		FragmentSource: graphics.FragmentShaderSource,
	}
}

// cleanup releases resources in reverse registration order
type cleanup []func()

func (c *cleanup) push(fn func()) {
	*c = append(*c, fn)
}

func (c *cleanup) run() {
	for i := len(*c) - 1; i >= 0; i-- {
		(*c)[i]()
	}
	*c = nil
}

// Run opens the window and renders until it is closed.
// It must be called from the main, OS-locked thread. The return value is the process exit code.
func Run(opts Options) int {
	if err := window.Initialize(); err != nil {
		logger.Error(err)
		return ExitFailure
	}

	var release cleanup
	defer release.run()
	release.push(window.Terminate)

	win, err := window.Create(opts.Settings)
	if err != nil {
		logger.Errorf("Failed to create GLFW window: %v", err)
		return ExitFailure
	}
	release.push(win.Destroy)
	win.MakeCurrent()

	info, err := gpu.Load()
	if err != nil {
		logger.Errorf("Failed to initialize OpenGL bindings: %v", err)
		return ExitFailure
	}
	logger.Infof("OpenGL %s, GLSL %s on %s (%s)", info.Version, info.GLSL, info.Renderer, info.Vendor)

	fbWidth, fbHeight := win.FramebufferSize()
	square := rect.NewRect(
		rect.WithSources(opts.VertexSource, opts.FragmentSource),
		rect.WithAbortOnShaderError(opts.Settings.AbortOnShaderError),
	)
	r, err := renderer.NewRenderer(opts.Settings.ClearColor, graphics.NewViewport(fbWidth, fbHeight), square)
	if err != nil {
		logger.Errorf("Failed to initialize renderer: %v", err)
		return ExitFailure
	}
	release.push(r.Dispose)

	// The framebuffer can differ from the requested window size on HiDPI displays
	r.UpdateViewport(fbWidth, fbHeight)
	win.OnFramebufferResize(r.UpdateViewport)

	keys := input.NewManager()
	win.OnKey(keys.HandleKeyEvent)

	session := &Session{Window: win, Renderer: r, Input: keys}
	loop := &Loop{
		Surface:   win,
		Frame:     r,
		Input:     keys,
		MaxFrames: opts.MaxFrames,
	}
	if opts.AfterDraw != nil {
		loop.AfterDraw = func(frame int) { opts.AfterDraw(frame, session) }
	}

	frames := loop.Run()
	logger.Infof("closing after %d frames", frames)
	return ExitSuccess
}

// Package window adapts GLFW to the operations the application needs:
// context creation, input snapshots, resize notification and presentation.
package window

import (
	"errors"
	"fmt"

	"first-rect/internal/config"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	ErrInitFailed           = errors.New("window: failed to initialize GLFW")
	ErrWindowCreationFailed = errors.New("window: failed to create GLFW window")
)

// ResizeFunc receives the new framebuffer size in pixels
type ResizeFunc func(width, height int)

// Window owns a GLFW window and its GL context
type Window struct {
	win *glfw.Window
}

// Initialize prepares GLFW. Call once, from the main thread, before Create.
func Initialize() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrInitFailed, err)
	}
	return nil
}

// Terminate tears down GLFW, destroying any remaining windows
func Terminate() {
	glfw.Terminate()
}

// Create requests a window with a context matching the settings
func Create(s config.Settings) (*Window, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindowCreationFailed, err)
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, s.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, s.GLMinor)
	if s.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	if s.ForwardCompatible {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	if !s.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	win, err := glfw.CreateWindow(s.Width, s.Height, s.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindowCreationFailed, err)
	}
	return &Window{win: win}, nil
}

// MakeCurrent binds the window's context to the calling thread
func (w *Window) MakeCurrent() {
	w.win.MakeContextCurrent()
}

// OnFramebufferResize registers fn for framebuffer size changes
func (w *Window) OnFramebufferResize(fn ResizeFunc) {
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}

// OnKey forwards key events to fn
func (w *Window) OnKey(fn func(key glfw.Key, action glfw.Action)) {
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		fn(key, action)
	})
}

// FramebufferSize returns the framebuffer size in pixels, which may differ from the window size on HiDPI displays
func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// SetSize asks the window manager for a new client area size.
// The framebuffer callback fires once the change has been applied.
func (w *Window) SetSize(width, height int) {
	w.win.SetSize(width, height)
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.win.SetShouldClose(v)
}

// PollEvents processes pending events, running callbacks on this thread
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// KeyPressed returns the last reported state of key
func (w *Window) KeyPressed(key glfw.Key) bool {
	return w.win.GetKey(key) == glfw.Press
}

// Destroy releases the window and its context
func (w *Window) Destroy() {
	if w.win == nil {
		return
	}
	w.win.Destroy()
	w.win = nil
}

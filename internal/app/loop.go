package app

import (
	"time"

	"first-rect/internal/input"
	"first-rect/internal/log"
	"first-rect/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Surface is the window side of the loop
type Surface interface {
	ShouldClose() bool
	SetShouldClose(bool)
	PollEvents()
	SwapBuffers()
	KeyPressed(key glfw.Key) bool
}

// Frame is the GPU side of the loop
type Frame interface {
	Clear()
	Draw()
}

// Loop runs input, clear, draw and present once per frame until the close flag is set
type Loop struct {
	Surface Surface
	Frame   Frame
	Input   *input.Manager

	// MaxFrames stops the loop after that many frames; zero runs until closed
	MaxFrames int
	// AfterDraw runs between draw and present, with the zero-based frame index
	AfterDraw func(frame int)

	profiler *profiling.Frame
	counter  *profiling.Counter
	now      func() time.Time
}

// Run drives the loop and returns the number of frames presented
func (l *Loop) Run() int {
	if l.Input == nil {
		l.Input = input.NewManager()
	}
	if l.now == nil {
		l.now = time.Now
	}
	l.profiler = profiling.NewFrame()
	l.counter = profiling.NewCounter(l.now())

	frames := 0
	for !l.Surface.ShouldClose() {
		if l.MaxFrames > 0 && frames >= l.MaxFrames {
			break
		}
		l.step(frames)
		frames++

		if fps, ok := l.counter.Tick(l.now()); ok && log.Enabled(log.Debug) {
			logger.Debugf("FPS: %d, last frame %.2fms (%s)", fps,
				float64(l.profiler.SumWithPrefix("loop.").Microseconds())/1000.0, l.profiler.TopN(4))
		}
	}
	return frames
}

func (l *Loop) step(frame int) {
	l.profiler.Reset()

	stop := l.profiler.Track("loop.input")
	l.Surface.PollEvents()
	if l.Surface.KeyPressed(glfw.KeyEscape) || l.Input.IsActive(input.ActionClose) {
		l.Surface.SetShouldClose(true)
	}
	l.Input.PostUpdate()
	stop()

	stop = l.profiler.Track("loop.clear")
	l.Frame.Clear()
	stop()

	stop = l.profiler.Track("loop.draw")
	l.Frame.Draw()
	stop()

	if l.AfterDraw != nil {
		l.AfterDraw(frame)
	}

	stop = l.profiler.Track("loop.present")
	l.Surface.SwapBuffers()
	stop()
}

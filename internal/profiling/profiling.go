package profiling

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Frame accumulates per-phase CPU time for the current frame.
// The render loop is single threaded so there is no locking.
type Frame struct {
	totals map[string]time.Duration
	now    func() time.Time
}

func NewFrame() *Frame {
	return &Frame{totals: make(map[string]time.Duration), now: time.Now}
}

// Track returns a stop function that records the elapsed time under name.
// Usage: defer f.Track("loop.draw")()
func (f *Frame) Track(name string) func() {
	start := f.now()
	return func() {
		f.totals[name] += f.now().Sub(start)
	}
}

// Reset clears the totals. Call at the start of each frame.
func (f *Frame) Reset() {
	clear(f.totals)
}

// SumWithPrefix adds up every phase whose name starts with prefix
func (f *Frame) SumWithPrefix(prefix string) time.Duration {
	var sum time.Duration
	for k, v := range f.totals {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// TopN formats the n slowest phases, e.g. "loop.present:16.2ms, loop.draw:0.1ms"
func (f *Frame) TopN(n int) string {
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(f.totals))
	for k, v := range f.totals {
		list = append(list, pair{k, v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for _, p := range list[:n] {
		parts = append(parts, fmt.Sprintf("%s:%.1fms", p.name, float64(p.dur.Microseconds())/1000.0))
	}
	return strings.Join(parts, ", ")
}

// Counter reports frames per second once per interval
type Counter struct {
	Interval time.Duration

	frames int
	last   time.Time
}

func NewCounter(start time.Time) *Counter {
	return &Counter{Interval: time.Second, last: start}
}

// Tick counts a frame finished at now. ok is true once an interval has elapsed,
// and fps is the rounded rate over it.
func (c *Counter) Tick(now time.Time) (fps int, ok bool) {
	c.frames++
	elapsed := now.Sub(c.last)
	if elapsed < c.Interval {
		return 0, false
	}
	fps = int(float64(c.frames)/elapsed.Seconds() + 0.5)
	c.frames = 0
	c.last = now
	return fps, true
}

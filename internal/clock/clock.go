package clock

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
)

// Clock reports the song position. Successive calls never go backwards.
type Clock interface {
	Now() time.Duration
}

// monotonic clamps a raw reading so it never decreases.
type monotonic struct {
	mu   sync.Mutex
	last time.Duration
}

func (m *monotonic) clamp(d time.Duration) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d > m.last {
		m.last = d
	}
	return m.last
}

// StreamClock wraps the song's streamer and counts the samples the audio
// device has consumed. Stream is called from the speaker goroutine while
// Now is read from the play loop.
type StreamClock struct {
	beep.Streamer
	format   beep.Format
	consumed atomic.Int64
	mono     monotonic
}

func NewStreamClock(s beep.Streamer, format beep.Format) *StreamClock {
	return &StreamClock{Streamer: s, format: format}
}

func (c *StreamClock) Stream(samples [][2]float64) (int, bool) {
	n, ok := c.Streamer.Stream(samples)
	c.consumed.Add(int64(n))
	return n, ok
}

func (c *StreamClock) Now() time.Duration {
	return c.mono.clamp(c.format.SampleRate.D(int(c.consumed.Load())))
}

// Wall measures time since a start instant, which may be in the future
// to give a lead in.
type Wall struct {
	start time.Time
	now   func() time.Time
	mono  monotonic
}

func NewWall(start time.Time) *Wall {
	return &Wall{start: start, now: time.Now}
}

func (w *Wall) Now() time.Duration {
	return w.mono.clamp(w.now().Sub(w.start))
}

// Manual is a clock that only moves when told to.
type Manual struct {
	mono monotonic
}

func (m *Manual) Set(d time.Duration) {
	m.mono.clamp(d)
}

func (m *Manual) Now() time.Duration {
	return m.mono.clamp(0)
}

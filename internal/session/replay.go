package session

import (
	"git.lost.host/meutraa/lanes/internal/clock"
	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/score"
)

// Replay plays inputs against a fresh copy of chart and returns the final
// statistics. Each input is preceded by a tick at its own time, which is
// how the play loop applies input, so a recorded session replays exactly.
// The replay clock never goes backwards: an input stamped earlier than the
// one before it is judged at the later time.
func Replay(chart *game.Chart, cfg Config, inputs []game.Input) score.Tracker {
	s := New(chart.Clone(), cfg)
	c := &clock.Manual{}
	for _, in := range inputs {
		c.Set(in.Time)
		in.Time = c.Now()
		s.Advance(in.Time)
		s.Apply(in)
	}
	_, end := chart.Span()
	c.Set(end + cfg.MissGrace)
	s.Advance(c.Now())
	return s.Stats()
}

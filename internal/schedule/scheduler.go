package schedule

import (
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
)

// Forced is called for every judgment the scheduler forces onto an expiring
// note, once for the press and once for a hold's release.
type Forced func(n *game.Note, kind game.InputKind)

// Scheduler moves notes from the pending queue into the active set as
// they come within Lookahead, and retires them once their end has fallen
// more than Grace behind the clock.
type Scheduler struct {
	Lookahead time.Duration
	Grace     time.Duration

	pending []*game.Note
	next    int
	active  ActiveSet
	retired int
	now     time.Duration
}

// New returns a scheduler over the chart's notes, which must already be in
// start order.
func New(chart *game.Chart, lookahead, grace time.Duration) *Scheduler {
	return &Scheduler{
		Lookahead: lookahead,
		Grace:     grace,
		pending:   append([]*game.Note(nil), chart.Notes...),
	}
}

func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Advance samples the clock, activates every pending note due within the
// lookahead window and expires every active note past the grace window.
// It returns the notes that left the active set, in expiry order.
func (s *Scheduler) Advance(now time.Duration, forced Forced) []*game.Note {
	if now > s.now {
		s.now = now
	}

	for s.next < len(s.pending) && s.pending[s.next].Start <= s.now+s.Lookahead {
		s.active.Push(s.pending[s.next])
		s.pending[s.next] = nil
		s.next++
	}

	var expired []*game.Note
	for {
		n := s.active.Peek()
		if nil == n || n.End > s.now-s.Grace {
			break
		}
		s.active.PopMin()
		s.retired++

		if n.SetHit1(game.Miss) && nil != forced {
			forced(n, game.Press)
		}
		if n.SetHit2(game.Miss) && nil != forced {
			forced(n, game.Release)
		}
		expired = append(expired, n)
	}
	return expired
}

// Active exposes the active set for judgment and rendering.
func (s *Scheduler) Active() *ActiveSet {
	return &s.active
}

func (s *Scheduler) Pending() int {
	return len(s.pending) - s.next
}

func (s *Scheduler) Retired() int {
	return s.retired
}

// Done reports whether every note has been activated and retired.
func (s *Scheduler) Done() bool {
	return s.Pending() == 0 && s.active.Len() == 0
}

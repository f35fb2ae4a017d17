package score

import (
	"sort"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
)

type DefaultScorer struct {
	// Judgements in ascending window order. The last entry is the widest
	// window a press registers in at all.
	Judgements []game.Judgement
}

func abs(x time.Duration) time.Duration {
	if x < 0 {
		return -x
	}
	return x
}

// Distance is positive when now is early for target.
func (s *DefaultScorer) Distance(target, now time.Duration) time.Duration {
	return target - now
}

func (s *DefaultScorer) judge(d time.Duration, fallback game.Quality) game.Quality {
	for _, j := range s.Judgements {
		if d < j.Window {
			return j.Quality
		}
	}
	return fallback
}

// PressAccuracy is None when the press is too far from the note to count.
func (s *DefaultScorer) PressAccuracy(n *game.Note, now time.Duration) game.Quality {
	return s.judge(abs(s.Distance(n.Start, now)), game.None)
}

// ReleaseAccuracy always resolves, beyond the hit windows it is a Miss.
func (s *DefaultScorer) ReleaseAccuracy(n *game.Note, now time.Duration) game.Quality {
	q := s.judge(abs(s.Distance(n.End, now)), game.Miss)
	if q < game.Miss {
		return game.Miss
	}
	return q
}

func (s *DefaultScorer) ApplyPress(active Notes, lane int, now time.Duration) (*game.Note, game.Quality) {
	candidates := []*game.Note{}
	active.Each(func(n *game.Note) {
		if n.Lane == lane && n.Hit1 == game.None {
			candidates = append(candidates, n)
		}
	})
	if len(candidates) == 0 {
		return nil, game.None
	}

	// Walk back from the latest note, moving to an earlier one only while
	// that does not cost accuracy.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Start != candidates[j].Start {
			return candidates[i].Start > candidates[j].Start
		}
		return candidates[i].Seq < candidates[j].Seq
	})
	best := candidates[0]
	bestAccuracy := s.PressAccuracy(best, now)
	for _, c := range candidates[1:] {
		accuracy := s.PressAccuracy(c, now)
		if c.Start < best.Start && accuracy >= bestAccuracy {
			best, bestAccuracy = c, accuracy
		}
	}

	best.SetHit1(bestAccuracy)
	return best, bestAccuracy
}

func (s *DefaultScorer) ApplyRelease(active Notes, lane int, now time.Duration) (*game.Note, game.Quality) {
	var held *game.Note
	active.Each(func(n *game.Note) {
		if n.Lane != lane || !n.IsHeld() || !n.Hit1.Hit() || n.Hit2 != game.None {
			return
		}
		if nil == held || n.End < held.End || (n.End == held.End && n.Seq < held.Seq) {
			held = n
		}
	})
	if nil == held {
		return nil, game.None
	}

	accuracy := s.ReleaseAccuracy(held, now)
	held.SetHit2(accuracy)
	return held, accuracy
}

// DefaultJudgements are the stock hit windows.
func DefaultJudgements() []game.Judgement {
	return []game.Judgement{
		{Quality: game.Perfect, Window: 25 * time.Millisecond, Name: "Perfect"},
		{Quality: game.Good, Window: 50 * time.Millisecond, Name: "Good"},
		{Quality: game.Okay, Window: 100 * time.Millisecond, Name: "Okay"},
		{Quality: game.Miss, Window: 200 * time.Millisecond, Name: "Miss"},
	}
}

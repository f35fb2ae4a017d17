package score

import (
	"math"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
)

// Tracker aggregates judgments into the running combo and hit statistics.
type Tracker struct {
	Combo        int
	BestCombo    int
	TotalHits    int
	LastAccuracy game.Quality
	Counts       [len(game.Qualities)]int // Indexed by Quality
	TotalError   time.Duration            // Sum of absolute offsets of hits

	sumOfDistance   float64
	sumOfDistanceSq float64
}

func NewTracker() Tracker {
	return Tracker{LastAccuracy: game.None}
}

// Record one judgment. offset is the signed timing error of a hit and is
// ignored for anything else.
func (t *Tracker) Record(q game.Quality, offset time.Duration) {
	t.LastAccuracy = q
	switch {
	case q == game.Miss:
		t.Combo = 0
		t.Counts[game.Miss]++
	case q.Hit():
		t.Combo++
		t.TotalHits++
		if t.Combo > t.BestCombo {
			t.BestCombo = t.Combo
		}
		t.Counts[q]++
		t.TotalError += abs(offset)
		t.sumOfDistance += float64(offset)
		t.sumOfDistanceSq += float64(offset) * float64(offset)
	}
}

// Misses counts every Miss judgment, forced or not.
func (t Tracker) Misses() int {
	return t.Counts[game.Miss]
}

// Mean signed offset of hits, positive when early.
func (t Tracker) Mean() time.Duration {
	if t.TotalHits == 0 {
		return 0
	}
	return time.Duration(t.sumOfDistance / float64(t.TotalHits))
}

// Stdev is the sample standard deviation of hit offsets.
func (t Tracker) Stdev() time.Duration {
	if t.TotalHits < 2 {
		return 0
	}
	n := float64(t.TotalHits)
	mean := t.sumOfDistance / n
	variance := (t.sumOfDistanceSq - n*mean*mean) / (n - 1)
	if variance < 0 {
		variance = 0
	}
	return time.Duration(math.Sqrt(variance))
}

package score

import (
	"testing"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
)

var result game.Quality

func BenchmarkPressAccuracy(b *testing.B) {
	s := DefaultScorer{Judgements: DefaultJudgements()}
	n := game.NewNote(1, 12456*time.Millisecond, 12456*time.Millisecond)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		result = s.PressAccuracy(n, time.Duration(i)*time.Microsecond)
	}
}

type accuracyTest struct {
	Offset  time.Duration
	Press   game.Quality
	Release game.Quality
}

var accuracyTests = []accuracyTest{
	{0, game.Perfect, game.Perfect},
	{24 * time.Millisecond, game.Perfect, game.Perfect},
	{25 * time.Millisecond, game.Good, game.Good},
	{49 * time.Millisecond, game.Good, game.Good},
	{50 * time.Millisecond, game.Okay, game.Okay},
	{99 * time.Millisecond, game.Okay, game.Okay},
	{100 * time.Millisecond, game.Miss, game.Miss},
	{199 * time.Millisecond, game.Miss, game.Miss},
	{200 * time.Millisecond, game.None, game.Miss},
	{3 * time.Second, game.None, game.Miss},
}

func TestAccuracy(t *testing.T) {
	s := DefaultScorer{Judgements: DefaultJudgements()}
	target := 10 * time.Second
	n := game.NewNote(1, target, target)
	for _, test := range accuracyTests {
		for _, now := range []time.Duration{target - test.Offset, target + test.Offset} {
			if q := s.PressAccuracy(n, now); q != test.Press {
				t.Log("  Offset:", test.Offset)
				t.Log("   Press:", q)
				t.Log("Expected:", test.Press)
				t.Fail()
			}
			if q := s.ReleaseAccuracy(n, now); q != test.Release {
				t.Log("  Offset:", test.Offset)
				t.Log(" Release:", q)
				t.Log("Expected:", test.Release)
				t.Fail()
			}
		}
	}
}

func TestDistance(t *testing.T) {
	s := DefaultScorer{}
	for i := -500; i < 500; i++ {
		target := time.Second
		now := target + time.Duration(i)*time.Millisecond
		if d := s.Distance(target, now); d != -time.Duration(i)*time.Millisecond {
			t.Log("Distance", d, "for offset", i)
			t.Fail()
		}
	}
}

package score

import (
	"testing"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notes []*game.Note

func (ns notes) Each(fn func(n *game.Note)) {
	for _, n := range ns {
		fn(n)
	}
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func newNotes(ns ...*game.Note) notes {
	for i, n := range ns {
		n.Seq = i
	}
	return ns
}

func scorer() *DefaultScorer {
	return &DefaultScorer{Judgements: DefaultJudgements()}
}

func TestPressPerfectTap(t *testing.T) {
	tap := game.NewNote(1, ms(1000), ms(1000))
	n, q := scorer().ApplyPress(newNotes(tap), 1, ms(1020))
	assert.Same(t, tap, n)
	assert.Equal(t, game.Perfect, q)
	assert.Equal(t, game.Perfect, tap.Hit1)
}

func TestPressPrefersBetterLaterNote(t *testing.T) {
	early := game.NewNote(1, ms(1000), ms(1000))
	late := game.NewNote(1, ms(1200), ms(1200))

	// Either scan order must pick the same note
	for _, active := range []notes{newNotes(early, late), {late, early}} {
		early.Hit1, late.Hit1 = game.None, game.None
		n, q := scorer().ApplyPress(active, 1, ms(1180))
		assert.Same(t, late, n)
		assert.Equal(t, game.Perfect, q)
		assert.Equal(t, game.None, early.Hit1)
	}
}

func TestPressCatchesUpBacklog(t *testing.T) {
	// Both are Okay, so the earlier note is taken
	early := game.NewNote(1, ms(1000), ms(1000))
	late := game.NewNote(1, ms(1140), ms(1140))
	n, q := scorer().ApplyPress(newNotes(late, early), 1, ms(1070))
	assert.Same(t, early, n)
	assert.Equal(t, game.Okay, q)
}

func TestPressIgnoresOtherLanesAndJudged(t *testing.T) {
	other := game.NewNote(2, ms(1000), ms(1000))
	judged := game.NewNote(1, ms(1000), ms(1000))
	judged.SetHit1(game.Good)

	n, q := scorer().ApplyPress(newNotes(other, judged), 1, ms(1000))
	assert.Nil(t, n)
	assert.Equal(t, game.None, q)
	assert.Equal(t, game.None, other.Hit1)
	assert.Equal(t, game.Good, judged.Hit1)
}

func TestPressTooEarlyIsNone(t *testing.T) {
	tap := game.NewNote(1, ms(3000), ms(3000))
	n, q := scorer().ApplyPress(newNotes(tap), 1, ms(1000))
	require.Same(t, tap, n)
	assert.Equal(t, game.None, q)
	assert.Equal(t, game.None, tap.Hit1, "a None press leaves the note judgeable")
}

func TestPressWriteOnce(t *testing.T) {
	tap := game.NewNote(1, ms(1000), ms(1000))
	active := newNotes(tap)
	scorer().ApplyPress(active, 1, ms(1150))
	assert.Equal(t, game.Miss, tap.Hit1)

	n, _ := scorer().ApplyPress(active, 1, ms(1000))
	assert.Nil(t, n)
	assert.Equal(t, game.Miss, tap.Hit1)
}

func TestReleaseHold(t *testing.T) {
	hold := game.NewNote(1, ms(1000), ms(3000))
	active := newNotes(hold)

	_, q := scorer().ApplyPress(active, 1, ms(1010))
	require.Equal(t, game.Perfect, q)

	n, q := scorer().ApplyRelease(active, 1, ms(3030))
	assert.Same(t, hold, n)
	assert.Equal(t, game.Good, q)
	assert.Equal(t, game.Good, hold.Hit2)

	n, _ = scorer().ApplyRelease(active, 1, ms(3030))
	assert.Nil(t, n)
}

func TestReleaseEarlyIsMiss(t *testing.T) {
	hold := game.NewNote(1, ms(1000), ms(3000))
	hold.SetHit1(game.Okay)
	n, q := scorer().ApplyRelease(newNotes(hold), 1, ms(1500))
	assert.Same(t, hold, n)
	assert.Equal(t, game.Miss, q)
	assert.Equal(t, game.Miss, hold.Hit2)
}

func TestReleaseNeedsSuccessfulPress(t *testing.T) {
	missed := game.NewNote(1, ms(1000), ms(3000))
	missed.SetHit1(game.Miss)
	unpressed := game.NewNote(1, ms(1000), ms(3000))
	tap := game.NewNote(1, ms(3000), ms(3000))
	tap.SetHit1(game.Perfect)

	n, q := scorer().ApplyRelease(newNotes(missed, unpressed, tap), 1, ms(3000))
	assert.Nil(t, n)
	assert.Equal(t, game.None, q)
	assert.Equal(t, game.None, missed.Hit2)
}

func TestReleasePicksEarliestEnd(t *testing.T) {
	long := game.NewNote(1, ms(1000), ms(4000))
	short := game.NewNote(1, ms(1100), ms(2000))
	long.SetHit1(game.Good)
	short.SetHit1(game.Good)

	n, _ := scorer().ApplyRelease(newNotes(long, short), 1, ms(2000))
	assert.Same(t, short, n)
	assert.Equal(t, game.None, long.Hit2)
}

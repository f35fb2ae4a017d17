package score

import (
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
)

// Notes is the view of the active set a scorer searches.
type Notes interface {
	Each(fn func(n *game.Note))
}

type Scorer interface {
	// Judge the press of a lane. Returns the selected note, or nil when the
	// lane has nothing left to press.
	ApplyPress(active Notes, lane int, now time.Duration) (*game.Note, game.Quality)

	// Judge the release of a lane. Returns the held note it ended, or nil.
	ApplyRelease(active Notes, lane int, now time.Duration) (*game.Note, game.Quality)

	Distance(target, now time.Duration) time.Duration
}

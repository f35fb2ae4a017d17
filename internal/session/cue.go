package session

import "git.lost.host/meutraa/lanes/internal/game"

// Cue tells feedback collaborators which sound or effect an event calls for.
type Cue uint8

const (
	CueFree        Cue = iota // Press on a lane with nothing to press
	CueIgnored                // Press too far from any note to count
	CueTap                    // Successful tap
	CueHoldPress              // Successful press of a hold
	CueHoldRelease            // Successful release of a hold
	CueMiss                   // Any miss, pressed, released or expired
	CueRelease                // Release with no hold to end
)

func (c Cue) String() string {
	switch c {
	case CueFree:
		return "free"
	case CueIgnored:
		return "ignored"
	case CueTap:
		return "tap"
	case CueHoldPress:
		return "hold-press"
	case CueHoldRelease:
		return "hold-release"
	case CueMiss:
		return "miss"
	case CueRelease:
		return "release"
	}
	return "unknown"
}

// Feedback describes the outcome of one input or forced miss.
type Feedback struct {
	Cue     Cue
	Lane    int
	Quality game.Quality
	Combo   int
	Note    *game.Note // nil for CueFree and CueRelease
}

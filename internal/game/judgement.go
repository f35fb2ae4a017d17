package game

import (
	"time"
)

// Judgement is one accuracy tier: a timing error strictly below Window
// earns Quality.
type Judgement struct {
	Quality Quality
	Window  time.Duration
	Name    string
}

type InputKind uint8

const (
	Press InputKind = iota
	Release
)

func (k InputKind) String() string {
	if k == Release {
		return "release"
	}
	return "press"
}

// Input is a single lane-targeted press or release at a clock time.
type Input struct {
	Lane int
	Kind InputKind
	Time time.Duration
}

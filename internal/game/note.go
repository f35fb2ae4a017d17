package game

import (
	"time"
)

type Note struct {
	Seq   int           // Position in the loaded chart
	Lane  int           // The chart column, 1 based
	Start time.Duration // The time the note should be pressed
	End   time.Duration // The time the note should be released, equal to Start for taps

	// This is state, written once each
	Hit1 Quality // Press judgment
	Hit2 Quality // Release judgment, holds only
}

// NewNote returns an unjudged note.
func NewNote(lane int, start, end time.Duration) *Note {
	return &Note{Lane: lane, Start: start, End: end, Hit1: None, Hit2: None}
}

func (n *Note) IsHeld() bool {
	return n.End > n.Start
}

// SetHit1 records the press judgment. It returns false if the press was
// already judged or q is None.
func (n *Note) SetHit1(q Quality) bool {
	if n.Hit1 != None || q == None {
		return false
	}
	n.Hit1 = q
	return true
}

// SetHit2 records the release judgment of a hold note.
func (n *Note) SetHit2(q Quality) bool {
	if !n.IsHeld() || n.Hit2 != None || q == None {
		return false
	}
	n.Hit2 = q
	return true
}

// Resolved reports whether every judgment this note needs has been made.
func (n *Note) Resolved() bool {
	if n.Hit1 == None {
		return false
	}
	return !n.IsHeld() || n.Hit2 != None
}

// Missed reports whether any judgment of the note was a miss.
func (n *Note) Missed() bool {
	return n.Hit1 == Miss || n.Hit2 == Miss
}

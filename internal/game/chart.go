package game

import "time"

// Chart is a sequence of notes, non-decreasing by Start.
type Chart struct {
	Notes     []*Note
	Lanes     int // The highest lane number used
	TapCount  int
	HoldCount int
}

// NewChart builds a chart from notes that are already in time order,
// numbering them and collecting the counts.
func NewChart(notes []*Note) *Chart {
	c := &Chart{Notes: notes}
	for i, n := range notes {
		n.Seq = i
		if n.Lane > c.Lanes {
			c.Lanes = n.Lane
		}
		if n.IsHeld() {
			c.HoldCount++
		} else {
			c.TapCount++
		}
	}
	return c
}

// Span returns the first start and the last end time in the chart.
func (c *Chart) Span() (time.Duration, time.Duration) {
	if len(c.Notes) == 0 {
		return 0, 0
	}
	var last time.Duration
	for _, n := range c.Notes {
		if n.End > last {
			last = n.End
		}
	}
	return c.Notes[0].Start, last
}

// Clone returns a copy of the chart with fresh, unjudged notes.
func (c *Chart) Clone() *Chart {
	notes := make([]*Note, len(c.Notes))
	for i, n := range c.Notes {
		notes[i] = NewNote(n.Lane, n.Start, n.End)
	}
	return NewChart(notes)
}

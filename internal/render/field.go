package render

import (
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/theme"
)

// Field lays lanes out as terminal columns, scrolling notes down towards a
// hit bar.
type Field struct {
	Lanes   int
	Spacing int           // Columns between lanes
	Scroll  time.Duration // Song time per terminal row
	BarRow  int           // Rows between the hit bar and the bottom
	Theme   theme.Theme
}

// Column returns the terminal column of a lane, centred on middle.
func (f *Field) Column(middle, lane int) int {
	return middle + (2*lane-f.Lanes-1)*f.Spacing/2
}

// HitRow is the terminal row of the hit bar.
func (f *Field) HitRow(rows int) int {
	return rows - f.BarRow
}

// Row returns the terminal row showing song time t when the clock is at now.
func (f *Field) Row(rows int, t, now time.Duration) int {
	return f.HitRow(rows) - int((t-now)/f.Scroll)
}

// Draw renders the hit bar and every visible note.
func (f *Field) Draw(r Renderer, now time.Duration, active func(fn func(n *game.Note))) {
	rows, cols := r.Size()
	middle := cols / 2
	hit := f.HitRow(rows)

	for lane := 1; lane <= f.Lanes; lane++ {
		r.Fill(hit, f.Column(middle, lane), f.Theme.RenderHitField(lane))
	}

	active(func(n *game.Note) {
		if !Visible(n) {
			return
		}
		col := f.Column(middle, n.Lane)
		start := f.Row(rows, n.Start, now)
		if n.IsHeld() {
			// A pressed hold is consumed from the bar upwards
			if n.Hit1.Hit() && start > hit {
				start = hit
			}
			end := f.Row(rows, n.End, now)
			for row := start - 1; row > end; row-- {
				r.Fill(row, col, f.Theme.RenderHold(n))
			}
			r.Fill(end, col, f.Theme.RenderNote(n))
		}
		r.Fill(start, col, f.Theme.RenderNote(n))
	})
}

// Visible reports whether a note still needs drawing. Hit taps and
// finished holds disappear, misses stay until they expire.
func Visible(n *game.Note) bool {
	if n.IsHeld() {
		return !n.Hit2.Hit()
	}
	return !n.Hit1.Hit()
}

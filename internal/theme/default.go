package theme

import (
	"github.com/charmbracelet/lipgloss"

	"git.lost.host/meutraa/lanes/internal/game"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) RenderNote(note *game.Note) string {
	return noteStyle(note).Render(noteSym)
}

func (t *DefaultTheme) RenderHold(note *game.Note) string {
	return noteStyle(note).Render(holdSym)
}

func (t *DefaultTheme) RenderHitField(lane int) string {
	return barSym
}

// RenderQuality renders the name of a judgment, blank for None.
func (t *DefaultTheme) RenderQuality(q game.Quality) string {
	style, ok := qualityStyles[q]
	if !ok {
		return "       "
	}
	return style.Render(qualityNames[q])
}

const (
	noteSym = "⬤"
	holdSym = "┃"
	barSym  = "-"
)

var (
	laneColors = map[int]lipgloss.Color{
		1: lipgloss.Color("#0076EC"), // blue
		2: lipgloss.Color("#EC1E00"), // red
		3: lipgloss.Color("#ECC300"), // yellow
		4: lipgloss.Color("#00EC80"), // green
	}
	otherColor  = lipgloss.Color("#FFFFFF")
	missedColor = lipgloss.Color("#6A6A6A")

	qualityNames = map[game.Quality]string{
		game.Miss:    "   MISS",
		game.Okay:    "   OKAY",
		game.Good:    "   GOOD",
		game.Perfect: "PERFECT",
	}
	qualityStyles = map[game.Quality]lipgloss.Style{
		game.Miss:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#BF616A")),
		game.Okay:    lipgloss.NewStyle().Foreground(lipgloss.Color("#A3BE8C")),
		game.Good:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#88C0D0")),
		game.Perfect: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EBCB8B")),
	}
)

func noteStyle(note *game.Note) lipgloss.Style {
	if note.Missed() {
		return lipgloss.NewStyle().Foreground(missedColor)
	}
	col, ok := laneColors[note.Lane]
	if !ok {
		col = otherColor
	}
	return lipgloss.NewStyle().Foreground(col)
}

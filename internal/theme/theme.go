package theme

import "git.lost.host/meutraa/lanes/internal/game"

type Theme interface {
	RenderNote(note *game.Note) string
	RenderHold(note *game.Note) string
	RenderHitField(lane int) string
	RenderQuality(q game.Quality) string
}

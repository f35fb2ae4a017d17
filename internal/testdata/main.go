package testdata

import (
	"io"
	"strings"
)

// Beatmap is a short four lane chart in authored order: holds are written
// where their heads fall, so taps inside a hold come after its tail.
const Beatmap = `1 @ 0.000
2 @ 0.405
3 + 0.811
3 - 1.622
4 @ 1.014
1 @ 1.216
2 + 2.027
2 - 2.432
4 @ 2.230
1 @ 2.432
3 @ 2.635
4 @ 2.838
1 + 3.243
1 - 4.054
2 @ 3.243
4 @ 3.649
`

const (
	NoteCount = 13
	HoldCount = 3
	Lanes     = 4
)

func Reader() io.Reader {
	return strings.NewReader(Beatmap)
}

package parser

import (
	"bufio"
	"io"
	"strconv"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
)

// Encode writes the chart in the line format read by DefaultParser, with
// offset removed from every timestamp.
func Encode(w io.Writer, chart *game.Chart, offset time.Duration) error {
	bw := bufio.NewWriter(w)
	write := func(lane int, marker string, t time.Duration) {
		bw.WriteString(strconv.Itoa(lane))
		bw.WriteByte(' ')
		bw.WriteString(marker)
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat((t - offset).Seconds(), 'f', 6, 64))
		bw.WriteByte('\n')
	}

	for _, n := range chart.Notes {
		if n.IsHeld() {
			write(n.Lane, HoldMarker, n.Start)
			write(n.Lane, TailMarker, n.End)
		} else {
			write(n.Lane, TapMarker, n.Start)
		}
	}
	return bw.Flush()
}

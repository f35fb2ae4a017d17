package convert

import (
	"fmt"
	"io"
	"sort"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Mapping selects which MIDI keys become notes.
type Mapping struct {
	TapKey  uint8 // Note on is a tap
	HoldKey uint8 // Note on starts a hold, note off ends it
}

var DefaultMapping = Mapping{TapKey: 37, HoldKey: 38}

// Error reports a MIDI file that cannot become a chart.
type Error struct {
	Track  int
	At     time.Duration
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("track %d at %v: %s", e.Track, e.At, e.Reason)
}

// FromMIDI reads a standard MIDI file and returns its notes as a chart. The
// lane of a note is its 1 based track number.
func FromMIDI(r io.Reader, m Mapping) (chart *game.Chart, err error) {
	// smf panics on some malformed input
	defer func() {
		if rec := recover(); rec != nil {
			chart, err = nil, fmt.Errorf("unable to parse midi: %v", rec)
		}
	}()

	s, err := smf.ReadFrom(r)
	if nil != err {
		return nil, fmt.Errorf("unable to parse midi: %w", err)
	}

	notes := []*game.Note{}
	for i, track := range s.Tracks {
		lane := i + 1
		var absTicks int64
		var holdStart time.Duration
		holding := false

		for _, event := range track {
			absTicks += int64(event.Delta)
			at := time.Duration(s.TimeAt(absTicks)) * time.Microsecond

			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0:
				switch key {
				case m.TapKey:
					notes = append(notes, game.NewNote(lane, at, at))
				case m.HoldKey:
					if holding {
						return nil, &Error{Track: lane, At: at, Reason: "hold started inside another hold"}
					}
					holding, holdStart = true, at
				}
			case event.Message.GetNoteOn(&channel, &key, &velocity),
				event.Message.GetNoteOff(&channel, &key, &velocity):
				if key == m.HoldKey && holding {
					notes = append(notes, game.NewNote(lane, holdStart, at))
					holding = false
				}
			}
		}
		if holding {
			return nil, &Error{Track: lane, At: holdStart, Reason: "hold is never released"}
		}
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Start < notes[j].Start
	})
	return game.NewChart(notes), nil
}

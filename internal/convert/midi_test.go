package convert

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// 960 ticks per quarter at the default 120 bpm is half a second
const quarter = 960

func build(t *testing.T, tracks ...smf.Track) *bytes.Buffer {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(quarter)
	for _, tr := range tracks {
		tr.Close(0)
		require.NoError(t, s.Add(tr))
	}
	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	return &buf
}

func TestFromMIDI(t *testing.T) {
	var taps, holds smf.Track
	taps.Add(0, midi.NoteOn(0, 37, 100))
	taps.Add(quarter, midi.NoteOff(0, 37))
	taps.Add(quarter, midi.NoteOn(0, 37, 100))
	taps.Add(10, midi.NoteOff(0, 37))

	holds.Add(quarter, midi.NoteOn(0, 38, 90))
	holds.Add(2*quarter, midi.NoteOn(0, 38, 0))
	holds.Add(0, midi.NoteOn(0, 60, 90))

	chart, err := FromMIDI(build(t, taps, holds), DefaultMapping)
	require.NoError(t, err)
	require.Len(t, chart.Notes, 3)

	expected := []struct {
		lane       int
		start, end time.Duration
	}{
		{1, 0, 0},
		{2, 500 * time.Millisecond, 1500 * time.Millisecond},
		{1, time.Second, time.Second},
	}
	for i, e := range expected {
		n := chart.Notes[i]
		assert.Equal(t, e.lane, n.Lane, "note %d", i)
		assert.Equal(t, e.start, n.Start, "note %d", i)
		assert.Equal(t, e.end, n.End, "note %d", i)
		assert.Equal(t, game.None, n.Hit1)
	}
	assert.Equal(t, 1, chart.HoldCount)
	assert.Equal(t, 2, chart.Lanes)
}

func TestFromMIDIOpenHold(t *testing.T) {
	var tr smf.Track
	tr.Add(0, midi.NoteOn(0, 38, 100))

	_, err := FromMIDI(build(t, tr), DefaultMapping)
	var e *Error
	require.True(t, errors.As(err, &e), "got %v", err)
	assert.Equal(t, 1, e.Track)
}

func TestFromMIDIGarbage(t *testing.T) {
	_, err := FromMIDI(bytes.NewReader([]byte("not a midi file")), DefaultMapping)
	assert.Error(t, err)
}

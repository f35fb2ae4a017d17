package journal

import (
	"testing"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndCount(t *testing.T) {
	j, err := Open()
	require.NoError(t, err)
	defer j.Close()

	entries := []Entry{
		{At: time.Second, Lane: 1, Kind: KindPress, Quality: game.Perfect, Offset: -5 * time.Millisecond, Seq: 0},
		{At: 2 * time.Second, Lane: 2, Kind: KindPress, Quality: game.Good, Offset: 30 * time.Millisecond, Seq: 1},
		{At: 3 * time.Second, Lane: 2, Kind: KindRelease, Quality: game.Perfect, Seq: 1},
		{At: 4 * time.Second, Lane: 3, Kind: KindExpire, Quality: game.Miss, Seq: 2},
	}
	for _, e := range entries {
		require.NoError(t, j.Record(e))
	}

	counts, err := j.Counts()
	require.NoError(t, err)
	assert.Equal(t, map[game.Quality]int{game.Perfect: 2, game.Good: 1, game.Miss: 1}, counts)

	loaded, err := j.Entries()
	require.NoError(t, err)
	assert.Equal(t, entries, loaded)
}

func TestInputsKeepOrder(t *testing.T) {
	j, err := Open()
	require.NoError(t, err)
	defer j.Close()

	inputs := []game.Input{
		{Lane: 3, Kind: game.Press, Time: 1500 * time.Millisecond},
		{Lane: 1, Kind: game.Press, Time: 1400 * time.Millisecond},
		{Lane: 3, Kind: game.Release, Time: 1600 * time.Millisecond},
	}
	for _, in := range inputs {
		require.NoError(t, j.RecordInput(in))
	}

	loaded, err := j.Inputs()
	require.NoError(t, err)
	assert.Equal(t, inputs, loaded)
}

func TestEmptyJournal(t *testing.T) {
	j, err := Open()
	require.NoError(t, err)
	defer j.Close()

	counts, err := j.Counts()
	require.NoError(t, err)
	assert.Empty(t, counts)

	inputs, err := j.Inputs()
	require.NoError(t, err)
	assert.Empty(t, inputs)
}

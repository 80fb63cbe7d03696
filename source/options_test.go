package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOptionsDefaults(t *testing.T) {
	var opts ReadOptions

	_, _, ok := opts.GetSeekTo()
	assert.False(t, ok)
	assert.Zero(t, opts.GetLateBy())
	assert.False(t, opts.GetNonBlocking())
}

func TestReadOptionsSeekRoundTrip(t *testing.T) {
	var opts ReadOptions
	opts.SetSeekTo(123_456, SeekNextSync)

	timeUS, mode, ok := opts.GetSeekTo()
	require.True(t, ok)
	assert.Equal(t, int64(123_456), timeUS)
	assert.Equal(t, SeekNextSync, mode)

	opts.ClearSeekTo()
	_, _, ok = opts.GetSeekTo()
	assert.False(t, ok)
}

func TestReadOptionsClearNonPersistent(t *testing.T) {
	var opts ReadOptions
	opts.SetSeekTo(1000, SeekClosest)
	opts.SetLateBy(500)
	opts.SetNonBlocking()

	// Only the seek is non-persistent.
	opts.ClearNonPersistent()

	_, _, ok := opts.GetSeekTo()
	assert.False(t, ok)
	assert.Equal(t, int64(500), opts.GetLateBy())
	assert.True(t, opts.GetNonBlocking())
}

func TestReadOptionsReset(t *testing.T) {
	var opts ReadOptions
	opts.SetSeekTo(1000, SeekClosest)
	opts.SetLateBy(500)
	opts.SetNonBlocking()

	opts.Reset()
	_, _, ok := opts.GetSeekTo()
	assert.False(t, ok)
	assert.Zero(t, opts.GetLateBy())
	assert.False(t, opts.GetNonBlocking())
}

func TestSeekModeStrings(t *testing.T) {
	assert.Equal(t, "previous-sync", SeekPreviousSync.String())
	assert.Equal(t, "next-sync", SeekNextSync.String())
	assert.Equal(t, "closest-sync", SeekClosestSync.String())
	assert.Equal(t, "closest", SeekClosest.String())
	assert.Equal(t, "unknown", SeekMode(99).String())
}

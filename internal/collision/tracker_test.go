package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brinebound/nbt/errs"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Names())
}

func TestTrackerTrackSuccess(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Track("name", 0x1234567890abcdef)
	require.NoError(t, err)
	require.Equal(t, 1, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Equal(t, []string{"name"}, tracker.Names())

	err = tracker.Track("age", 0xfedcba0987654321)
	require.NoError(t, err)
	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Equal(t, []string{"name", "age"}, tracker.Names())
}

func TestTrackerTrackCollision(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Track("name", 0x1234567890abcdef)
	require.NoError(t, err)
	require.False(t, tracker.HasCollision())

	// Different name, same hash: not an error, but flagged.
	err = tracker.Track("nickname", 0x1234567890abcdef)
	require.NoError(t, err)
	require.True(t, tracker.HasCollision())
	require.Equal(t, 2, tracker.Count())
	require.Equal(t, []string{"name", "nickname"}, tracker.Names())
}

func TestTrackerTrackDuplicate(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Track("name", 0x1234567890abcdef)
	require.NoError(t, err)

	err = tracker.Track("name", 0x1234567890abcdef)
	require.ErrorIs(t, err, errs.ErrDuplicateFieldName)
	require.False(t, tracker.HasCollision())
	require.Equal(t, 1, tracker.Count())
}

func TestTrackerNamesPreservesOrder(t *testing.T) {
	tracker := NewTracker()

	fields := []struct {
		name string
		hash uint64
	}{
		{"a", 0x0001},
		{"b", 0x0002},
		{"c", 0x0003},
		{"d", 0x0004},
	}

	for _, f := range fields {
		require.NoError(t, tracker.Track(f.name, f.hash))
	}

	require.Equal(t, []string{"a", "b", "c", "d"}, tracker.Names())
}

func TestTrackerReset(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("a", 0x1234567890abcdef))
	require.NoError(t, tracker.Track("b", 0xfedcba0987654321))
	require.Equal(t, 2, tracker.Count())

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Names())

	require.NoError(t, tracker.Track("c", 0x1111111111111111))
	require.Equal(t, 1, tracker.Count())
	require.Equal(t, []string{"c"}, tracker.Names())
}

func TestTrackerHasCollisionPersists(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("a", 0x1234567890abcdef))
	require.False(t, tracker.HasCollision())

	require.NoError(t, tracker.Track("b", 0x1234567890abcdef))
	require.True(t, tracker.HasCollision())

	require.NoError(t, tracker.Track("c", 0xfedcba0987654321))
	require.True(t, tracker.HasCollision())
}

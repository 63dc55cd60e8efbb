package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsdelta/tsdelta/errs"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Keys())
}

func TestTracker_Track_Success(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Track(0x1234567890abcdef, []byte("blob-a"))
	require.NoError(t, err)
	require.Equal(t, 1, tracker.Count())
	require.False(t, tracker.HasCollision())

	err = tracker.Track(0xfedcba0987654321, []byte("blob-b"))
	require.NoError(t, err)
	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.HasCollision())
}

func TestTracker_Track_IdempotentSameContent(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track(0x0001, []byte("same")))
	err := tracker.Track(0x0001, []byte("same"))
	require.NoError(t, err)
	require.False(t, tracker.HasCollision())
	require.Equal(t, 1, tracker.Count())
}

func TestTracker_Track_Collision(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track(0x0001, []byte("first")))

	err := tracker.Track(0x0001, []byte("second"))
	require.ErrorIs(t, err, errs.ErrContentCollision)
	require.True(t, tracker.HasCollision())
	// The original entry is kept; a colliding write does not overwrite it.
	require.Equal(t, 1, tracker.Count())
}

func TestTracker_Keys_PreservesInsertionOrder(t *testing.T) {
	tracker := NewTracker()

	hashes := []uint64{0x0001, 0x0002, 0x0003, 0x0004}
	for _, h := range hashes {
		require.NoError(t, tracker.Track(h, []byte{byte(h)}))
	}

	require.Equal(t, hashes, tracker.Keys())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track(0x0001, []byte("a")))
	require.NoError(t, tracker.Track(0x0002, []byte("b")))
	require.Equal(t, 2, tracker.Count())

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Keys())

	require.NoError(t, tracker.Track(0x0003, []byte("c")))
	require.Equal(t, 1, tracker.Count())
}

func TestTracker_Reset_PreservesCapacity(t *testing.T) {
	tracker := NewTracker()

	for i := 0; i < 100; i++ {
		_ = tracker.Track(uint64(i), []byte{byte(i)})
	}

	initialCap := cap(tracker.keysList)

	tracker.Reset()

	require.Equal(t, 0, len(tracker.keysList))
	require.GreaterOrEqual(t, cap(tracker.keysList), initialCap)
}

func TestTracker_HasCollision_PersistsAfterSubsequentWrites(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track(0x0001, []byte("a")))
	require.False(t, tracker.HasCollision())

	_ = tracker.Track(0x0001, []byte("b"))
	require.True(t, tracker.HasCollision())

	require.NoError(t, tracker.Track(0x0002, []byte("c")))
	require.True(t, tracker.HasCollision())
}

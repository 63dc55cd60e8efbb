package objectstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsdelta/tsdelta/errs"
)

func TestStore_PutLoad_RoundTrip(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	key, err := s.Put([]byte("hello blob"))
	require.NoError(t, err)

	got, err := s.Load(key)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello blob"), got)
	assert.Equal(t, 1, s.Count())
}

func TestStore_Put_IdempotentForSameContent(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	key1, err := s.Put([]byte("same content"))
	require.NoError(t, err)
	key2, err := s.Put([]byte("same content"))
	require.NoError(t, err)

	assert.Equal(t, key1, key2)
	assert.Equal(t, 1, s.Count())
}

func TestStore_Load_MissingKeyReturnsNotFound(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	_, err = s.Load(0xdeadbeef)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestStore_Has(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	key, err := s.Put([]byte("present"))
	require.NoError(t, err)

	assert.True(t, s.Has(key))
	assert.False(t, s.Has(key+1))
}

func TestStore_Open_RebuildsIndexFromDisk(t *testing.T) {
	dir := t.TempDir()

	s1, err := Open(dir)
	require.NoError(t, err)
	key, err := s1.Put([]byte("persisted"))
	require.NoError(t, err)

	s2, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, s2.Count())

	got, err := s2.Load(key)
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), got)
}

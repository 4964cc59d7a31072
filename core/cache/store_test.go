package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "merge:confirm:a", []byte("one"), time.Minute))
	require.NoError(t, s.Set(ctx, "forever", []byte("two"), 0))

	got, err := s.Get(ctx, "merge:confirm:a")
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), got)

	// Returned slices are copies.
	got[0] = 'X'
	again, _ := s.Get(ctx, "merge:confirm:a")
	assert.Equal(t, []byte("one"), again)

	now = now.Add(2 * time.Minute)
	_, err = s.Get(ctx, "merge:confirm:a")
	assert.ErrorIs(t, err, ErrMiss)

	got, err = s.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), got)

	require.NoError(t, s.Delete(ctx, "forever"))
	_, err = s.Get(ctx, "forever")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryStore_SweepsExpired(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	now := time.Now()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "old", []byte("x"), time.Second))
	now = now.Add(time.Hour)
	require.NoError(t, s.Set(ctx, "new", []byte("y"), time.Second))

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.NotContains(t, s.entries, "old")
	assert.Contains(t, s.entries, "new")
}

func TestNew(t *testing.T) {
	t.Run("DisabledUsesMemory", func(t *testing.T) {
		s, err := New(context.Background(), Config{Enabled: false})
		require.NoError(t, err)
		assert.IsType(t, &MemoryStore{}, s)
	})

	t.Run("UnreachableRedis", func(t *testing.T) {
		s, err := New(context.Background(), Config{Enabled: true, Addr: "127.0.0.1:1", DialTimeoutMillis: 200})
		assert.Error(t, err)
		assert.Nil(t, s)
	})
}

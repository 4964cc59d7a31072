package reconcile

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// mockAdapter works on plain ints: recorded is the stored counter, derived is
// the expected one.
type mockAdapter struct {
	name        string
	recorded    map[string]Item
	derived     map[string]Item
	recordedErr error
	derivedErr  error
	loads       atomic.Int32
	unfixable   map[string]bool
}

func (m *mockAdapter) Name() string {
	if m.name == "" {
		return "mock"
	}
	return m.name
}

func (m *mockAdapter) LoadRecorded(ctx context.Context, db *gorm.DB) (map[string]Item, error) {
	m.loads.Add(1)
	return m.recorded, m.recordedErr
}

func (m *mockAdapter) LoadDerived(ctx context.Context, db *gorm.DB) (map[string]Item, error) {
	return m.derived, m.derivedErr
}

func (m *mockAdapter) QueryOne(ctx context.Context, db *gorm.DB, key string) (Item, Item, error) {
	var r, d Item
	if v, ok := m.recorded[key]; ok {
		r = v
	}
	if v, ok := m.derived[key]; ok {
		d = v
	}
	return r, d, nil
}

func (m *mockAdapter) ResolveName(recorded, derived Item) string { return "item" }

func (m *mockAdapter) Compare(recorded, derived Item) []Finding {
	want := 0
	if derived != nil {
		want = derived.(int)
	}
	if got := recorded.(int); got != want {
		return []Finding{{Field: "count", Recorded: itoa(got), Expected: itoa(want), Repairable: true}}
	}
	return nil
}

func (m *mockAdapter) Metadata(recorded, derived Item) map[string]string { return nil }

func itoa(i int) string { return string(rune('0' + i)) }

func TestReconcileAll(t *testing.T) {
	adapter := &mockAdapter{
		recorded: map[string]Item{"a": 1, "b": 2, "c": 0},
		derived:  map[string]Item{"a": 1, "b": 3, "z": 4},
	}
	spec := &Spec{Adapter: adapter}

	results, err := ReconcileAll(context.Background(), spec, nil)
	require.NoError(t, err)
	require.Len(t, results, 4)

	ids := []string{results[0].ID, results[1].ID, results[2].ID, results[3].ID}
	assert.Equal(t, []string{"a", "b", "c", "z"}, ids)

	assert.False(t, results[0].Drifted())
	assert.True(t, results[1].Drifted())
	assert.Equal(t, "count: recorded=2 expected=3", results[1].Findings[0].String())
	assert.False(t, results[2].Drifted(), "recorded only with zero matches a missing derived entry")
	assert.True(t, results[3].Orphan())
	assert.Empty(t, results[3].Findings)
}

func TestBuildCache_ErrorHandling(t *testing.T) {
	tests := []struct {
		name        string
		recordedErr error
		derivedErr  error
		expectErr   string
	}{
		{"Recorded load error", errors.New("recorded error"), nil, "recorded error"},
		{"Derived load error", nil, errors.New("derived error"), "derived error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := &mockAdapter{
				recorded:    map[string]Item{},
				derived:     map[string]Item{},
				recordedErr: tt.recordedErr,
				derivedErr:  tt.derivedErr,
			}
			_, err := BuildCache(context.Background(), &Spec{Adapter: adapter}, nil)
			assert.ErrorContains(t, err, tt.expectErr)
		})
	}
}

func TestGetOrBuildCache_ReusesFreshCache(t *testing.T) {
	adapter := &mockAdapter{name: "cached", recorded: map[string]Item{"a": 1}, derived: map[string]Item{}}
	spec := &Spec{Adapter: adapter, CacheTTL: time.Minute}
	t.Cleanup(func() { InvalidateCache(spec) })

	_, err := GetOrBuildCache(context.Background(), spec, nil)
	require.NoError(t, err)
	_, err = GetOrBuildCache(context.Background(), spec, nil)
	require.NoError(t, err)
	assert.Equal(t, int32(1), adapter.loads.Load())

	InvalidateCache(spec)
	_, err = GetOrBuildCache(context.Background(), spec, nil)
	require.NoError(t, err)
	assert.Equal(t, int32(2), adapter.loads.Load())
}

func TestGetOrBuildCache_ZeroTTLAlwaysReloads(t *testing.T) {
	adapter := &mockAdapter{name: "uncached", recorded: map[string]Item{}, derived: map[string]Item{}}
	spec := &Spec{Adapter: adapter}

	for i := 0; i < 3; i++ {
		_, err := GetOrBuildCache(context.Background(), spec, nil)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), adapter.loads.Load())
}

func TestReconcileOne(t *testing.T) {
	adapter := &mockAdapter{
		recorded: map[string]Item{"a": 2},
		derived:  map[string]Item{"a": 1, "orphan": 1},
	}

	t.Run("Targeted", func(t *testing.T) {
		spec := &Spec{Adapter: adapter}
		r, err := ReconcileOne(context.Background(), spec, nil, "a")
		require.NoError(t, err)
		assert.True(t, r.RecordedPresent)
		assert.Len(t, r.Findings, 1)

		r, err = ReconcileOne(context.Background(), spec, nil, "orphan")
		require.NoError(t, err)
		assert.True(t, r.Orphan())

		r, err = ReconcileOne(context.Background(), spec, nil, "missing")
		require.NoError(t, err)
		assert.False(t, r.RecordedPresent)
		assert.False(t, r.DerivedPresent)
		assert.Empty(t, r.Name)
	})

	t.Run("Cached", func(t *testing.T) {
		cached := &mockAdapter{name: "one-cached", recorded: adapter.recorded, derived: adapter.derived}
		spec := &Spec{Adapter: cached, CacheTTL: time.Minute}
		t.Cleanup(func() { InvalidateCache(spec) })

		r, err := ReconcileOne(context.Background(), spec, nil, "a")
		require.NoError(t, err)
		assert.Len(t, r.Findings, 1)
	})
}

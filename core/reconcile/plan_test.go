package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mutatingAdapter records what ApplyPlan asks it to do.
type mutatingAdapter struct {
	mockAdapter
	repaired []string
	purged   []string
	failOn   string
}

func (m *mutatingAdapter) Repair(ctx context.Context, key string, derived Item) error {
	if key == m.failOn {
		return errors.New("locked")
	}
	m.repaired = append(m.repaired, key)
	return nil
}

func (m *mutatingAdapter) PurgeOrphan(ctx context.Context, key string) error {
	m.purged = append(m.purged, key)
	return nil
}

type batchAdapter struct {
	mutatingAdapter
	batches int
}

func (b *batchAdapter) RepairBatch(ctx context.Context, actions []Action) error {
	b.batches++
	for _, a := range actions {
		b.repaired = append(b.repaired, a.Key)
	}
	return nil
}

func newMutating() *mutatingAdapter {
	return &mutatingAdapter{mockAdapter: mockAdapter{
		recorded: map[string]Item{"a": 1, "b": 5},
		derived:  map[string]Item{"a": 2, "b": 5, "gone": 1},
	}}
}

func TestReconcileWithPlan(t *testing.T) {
	spec := &Spec{Adapter: newMutating()}

	t.Run("ReportOnly", func(t *testing.T) {
		plan, err := ReconcileWithPlan(context.Background(), spec, nil, ReconcileOptions{})
		require.NoError(t, err)
		assert.Equal(t, 3, plan.Summary.TotalItems)
		assert.Equal(t, 1, plan.Summary.Drifted)
		assert.Equal(t, 1, plan.Summary.Orphans)
		assert.Empty(t, plan.Actions)
	})

	t.Run("RepairAndPurge", func(t *testing.T) {
		plan, err := ReconcileWithPlan(context.Background(), spec, nil, ReconcileOptions{DoRepair: true, DoPurge: true})
		require.NoError(t, err)
		require.Len(t, plan.Actions, 2)

		assert.Equal(t, ActionRepair, plan.Actions[0].Type)
		assert.Equal(t, "a", plan.Actions[0].Key)
		assert.Equal(t, 2, plan.Actions[0].Derived)
		assert.Equal(t, "count: recorded=1 expected=2", plan.Actions[0].Reason)

		assert.Equal(t, ActionPurgeOrphan, plan.Actions[1].Type)
		assert.Equal(t, "gone", plan.Actions[1].Key)
		assert.Equal(t, 1, plan.Summary.RepairActions)
		assert.Equal(t, 1, plan.Summary.PurgeActions)
	})
}

func TestApplyPlan_Gates(t *testing.T) {
	adapter := newMutating()
	spec := &Spec{Adapter: adapter}
	opts := ReconcileOptions{DoRepair: true, DoPurge: true}

	plan, err := ReconcileWithPlan(context.Background(), spec, nil, opts)
	require.NoError(t, err)

	// Not confirmed.
	n, err := ApplyPlan(context.Background(), spec, plan, opts)
	require.NoError(t, err)
	assert.Zero(t, n)

	// Confirmed but dry-run.
	n, err = ApplyPlan(context.Background(), spec, plan, ReconcileOptions{DoRepair: true, Confirmed: true, DryRun: true})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, adapter.repaired)

	n, err = ApplyPlan(context.Background(), spec, plan, ReconcileOptions{DoRepair: true, DoPurge: true, Confirmed: true})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"a"}, adapter.repaired)
	assert.Equal(t, []string{"gone"}, adapter.purged)
}

func TestApplyPlan_UsesBatcher(t *testing.T) {
	adapter := &batchAdapter{}
	adapter.recorded = map[string]Item{"a": 1}
	adapter.derived = map[string]Item{"a": 2}
	spec := &Spec{Adapter: adapter}

	plan, n, err := ReconcileAndApply(context.Background(), spec, nil, ReconcileOptions{DoRepair: true, Confirmed: true})
	require.NoError(t, err)
	assert.Len(t, plan.Actions, 1)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, adapter.batches)
}

func TestApplyPlan_StopsOnError(t *testing.T) {
	adapter := newMutating()
	adapter.failOn = "a"
	spec := &Spec{Adapter: adapter}

	_, n, err := ReconcileAndApply(context.Background(), spec, nil, ReconcileOptions{DoRepair: true, DoPurge: true, Confirmed: true})
	assert.ErrorContains(t, err, "failed to repair a: locked")
	assert.Zero(t, n)
	assert.Empty(t, adapter.purged)
}

func TestApplyPlan_RequiresMutator(t *testing.T) {
	spec := &Spec{Adapter: &mockAdapter{
		recorded: map[string]Item{"a": 1},
		derived:  map[string]Item{"a": 2},
	}}

	_, _, err := ReconcileAndApply(context.Background(), spec, nil, ReconcileOptions{DoRepair: true, Confirmed: true})
	assert.EqualError(t, err, "adapter mock does not implement Mutator interface")
}

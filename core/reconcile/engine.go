package reconcile

import (
	"context"
	"sort"

	"gorm.io/gorm"
)

// ReconcileAll reconciles every entity known to either source.
// Results are sorted by key.
func ReconcileAll(ctx context.Context, spec *Spec, db *gorm.DB) ([]ReconcileResult, error) {
	cache, err := GetOrBuildCache(ctx, spec, db)
	if err != nil {
		return nil, err
	}
	return reconcileFromCache(cache, spec.Adapter), nil
}

// ReconcileOne reconciles a single entity. A fresh cache is used when caching is
// enabled, otherwise the adapter is queried for just that key.
func ReconcileOne(ctx context.Context, spec *Spec, db *gorm.DB, key string) (*ReconcileResult, error) {
	if spec.CacheTTL > 0 {
		cache, err := GetOrBuildCache(ctx, spec, db)
		if err != nil {
			return nil, err
		}
		recorded, rok := cache.Recorded[key]
		derived, dok := cache.Derived[key]
		result := buildResult(key, recorded, rok, derived, dok, spec.Adapter)
		return &result, nil
	}

	recorded, derived, err := spec.Adapter.QueryOne(ctx, db, key)
	if err != nil {
		return nil, err
	}
	result := buildResult(key, recorded, recorded != nil, derived, derived != nil, spec.Adapter)
	return &result, nil
}

func reconcileFromCache(cache *ReconcileCache, adapter Adapter) []ReconcileResult {
	union := make(map[string]struct{}, len(cache.Recorded)+len(cache.Derived))
	for key := range cache.Recorded {
		union[key] = struct{}{}
	}
	for key := range cache.Derived {
		union[key] = struct{}{}
	}

	results := make([]ReconcileResult, 0, len(union))
	for key := range union {
		recorded, rok := cache.Recorded[key]
		derived, dok := cache.Derived[key]
		results = append(results, buildResult(key, recorded, rok, derived, dok, adapter))
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].ID < results[j].ID
	})
	return results
}

func buildResult(key string, recorded Item, rok bool, derived Item, dok bool, adapter Adapter) ReconcileResult {
	if !rok {
		recorded = nil
	}
	if !dok {
		derived = nil
	}

	result := ReconcileResult{
		ID:              key,
		RecordedPresent: rok,
		DerivedPresent:  dok,
		Findings:        []Finding{},
	}
	if rok || dok {
		result.Name = adapter.ResolveName(recorded, derived)
		result.Metadata = adapter.Metadata(recorded, derived)
	}
	if rok {
		if f := adapter.Compare(recorded, derived); len(f) > 0 {
			result.Findings = f
		}
	}
	return result
}

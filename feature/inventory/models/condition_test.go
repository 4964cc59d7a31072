package models

import (
	"math"
	"testing"

	"equipment-tracker/core/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionCounts_Validate(t *testing.T) {
	tests := []struct {
		name    string
		counts  ConditionCounts
		wantErr string
	}{
		{"Valid", ConditionCounts{ConditionGood: 2, ConditionFair: 0}, ""},
		{"Empty", ConditionCounts{}, ""},
		{"UnknownBucket", ConditionCounts{"mint": 1}, "Invalid condition: mint"},
		{"Negative", ConditionCounts{ConditionBad: -1}, "Condition count for bad must be a non-negative integer"},
		{"AtLimit", ConditionCounts{ConditionGood: MaxUnits}, ""},
		{"OverLimit", ConditionCounts{ConditionDamaged: MaxUnits + 1}, "Condition count for damaged cannot exceed 1000000"},
		{"MaxInt", ConditionCounts{ConditionExcellent: math.MaxInt, ConditionFair: 3}, "Condition count for excellent cannot exceed 1000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.counts.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
			assert.True(t, apperr.Is(err, apperr.KindValidation))
		})
	}
}

func TestConditionCounts_Dominant(t *testing.T) {
	tests := []struct {
		name   string
		counts ConditionCounts
		want   Condition
	}{
		{"Single", ConditionCounts{ConditionFair: 3}, ConditionFair},
		{"Largest", ConditionCounts{ConditionGood: 1, ConditionDamaged: 4}, ConditionDamaged},
		{"TieGoesToPriority", ConditionCounts{ConditionDamaged: 2, ConditionExcellent: 2}, ConditionExcellent},
		{"TieGoodFair", ConditionCounts{ConditionFair: 1, ConditionGood: 1}, ConditionGood},
		{"TieBadDamaged", ConditionCounts{ConditionDamaged: 1, ConditionBad: 1}, ConditionBad},
		{"AllZero", ConditionCounts{ConditionFair: 0}, ConditionGood},
		{"Nil", nil, ConditionGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.counts.Dominant())
		})
	}
}

func TestConditionCounts_Arithmetic(t *testing.T) {
	base := ConditionCounts{ConditionGood: 3, ConditionFair: 1}

	sub := base.Subtract(ConditionCounts{ConditionGood: 2, ConditionFair: 5})
	assert.Equal(t, ConditionCounts{ConditionGood: 1}, sub, "floored at zero and compacted")
	assert.Equal(t, ConditionCounts{ConditionGood: 3, ConditionFair: 1}, base, "receiver is not mutated")

	add := sub.Add(ConditionCounts{ConditionFair: 1, ConditionGood: 1, ConditionBad: 0})
	assert.Equal(t, ConditionCounts{ConditionGood: 2, ConditionFair: 1}, add)
	assert.Equal(t, 3, add.Sum())

	assert.True(t, add.Equal(ConditionCounts{ConditionGood: 2, ConditionFair: 1, ConditionBad: 0}))
	assert.False(t, add.Equal(ConditionCounts{ConditionGood: 2}))
	assert.Equal(t, "{good:2 fair:1}", add.String())
}

func TestConditionCounts_Shortfall(t *testing.T) {
	have := ConditionCounts{ConditionExcellent: 1, ConditionGood: 5}

	c, n, short := have.Shortfall(ConditionCounts{ConditionExcellent: 2})
	assert.True(t, short)
	assert.Equal(t, ConditionExcellent, c)
	assert.Equal(t, 1, n)

	_, _, short = have.Shortfall(ConditionCounts{ConditionExcellent: 1, ConditionGood: 5})
	assert.False(t, short)
}

func TestConditionCounts_ValueScan(t *testing.T) {
	v, err := ConditionCounts{ConditionGood: 2, ConditionBad: 1}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"bad":1,"good":2}`, v)

	var out ConditionCounts
	require.NoError(t, out.Scan([]byte(`{"good":2,"bad":1}`)))
	assert.Equal(t, ConditionCounts{ConditionGood: 2, ConditionBad: 1}, out)

	require.NoError(t, out.Scan(nil))
	assert.Empty(t, out)

	assert.Error(t, out.Scan(42))
	assert.Error(t, out.Scan("not json"))

	nilV, err := ConditionCounts(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", nilV)
}

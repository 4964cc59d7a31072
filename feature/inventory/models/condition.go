package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"

	"equipment-tracker/core/apperr"
)

// Condition is a coarse physical-condition bucket.
type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionBad       Condition = "bad"
	ConditionDamaged   Condition = "damaged"
)

// Conditions lists every bucket in priority order. Dominant breaks ties with it.
var Conditions = []Condition{
	ConditionExcellent,
	ConditionGood,
	ConditionFair,
	ConditionBad,
	ConditionDamaged,
}

// Valid reports whether c is a known bucket.
func (c Condition) Valid() bool {
	for _, known := range Conditions {
		if c == known {
			return true
		}
	}
	return false
}

// MaxUnits bounds every quantity so sums of buckets cannot overflow.
const MaxUnits = 1_000_000

// ConditionCounts maps condition buckets to unit counts.
type ConditionCounts map[Condition]int

// Validate checks that every key is a known bucket and every count is within
// 0..MaxUnits.
func (cc ConditionCounts) Validate() error {
	keys := make([]string, 0, len(cc))
	for k := range cc {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !Condition(k).Valid() {
			return apperr.Validation("Invalid condition: %s", k)
		}
		if cc[Condition(k)] < 0 {
			return apperr.Validation("Condition count for %s must be a non-negative integer", k)
		}
		if cc[Condition(k)] > MaxUnits {
			return apperr.Validation("Condition count for %s cannot exceed %d", k, MaxUnits)
		}
	}
	return nil
}

// Sum returns the total number of units across buckets.
func (cc ConditionCounts) Sum() int {
	total := 0
	for _, n := range cc {
		total += n
	}
	return total
}

// Dominant returns the bucket with the largest count. Ties go to the bucket
// listed first in Conditions, and an empty mix reports good.
func (cc ConditionCounts) Dominant() Condition {
	best, bestN := ConditionGood, 0
	for _, c := range Conditions {
		if n := cc[c]; n > bestN {
			best, bestN = c, n
		}
	}
	return best
}

// Add returns the per-bucket sum of cc and other.
func (cc ConditionCounts) Add(other ConditionCounts) ConditionCounts {
	out := cc.Clone()
	for c, n := range other {
		if n > 0 {
			out[c] += n
		}
	}
	return out.Compact()
}

// Subtract returns cc minus other, flooring each bucket at zero.
func (cc ConditionCounts) Subtract(other ConditionCounts) ConditionCounts {
	out := cc.Clone()
	for c, n := range other {
		if n <= 0 {
			continue
		}
		out[c] -= n
		if out[c] < 0 {
			out[c] = 0
		}
	}
	return out.Compact()
}

// Shortfall returns the first bucket, in priority order, where want asks for
// more units than cc holds.
func (cc ConditionCounts) Shortfall(want ConditionCounts) (c Condition, have int, ok bool) {
	for _, c := range Conditions {
		if want[c] > cc[c] {
			return c, cc[c], true
		}
	}
	return "", 0, false
}

// Clone returns a copy that is safe to mutate.
func (cc ConditionCounts) Clone() ConditionCounts {
	out := make(ConditionCounts, len(cc))
	for c, n := range cc {
		out[c] = n
	}
	return out
}

// Compact drops zero buckets.
func (cc ConditionCounts) Compact() ConditionCounts {
	for c, n := range cc {
		if n == 0 {
			delete(cc, c)
		}
	}
	return cc
}

// Equal compares two mixes ignoring zero buckets.
func (cc ConditionCounts) Equal(other ConditionCounts) bool {
	for _, c := range Conditions {
		if cc[c] != other[c] {
			return false
		}
	}
	for c := range cc {
		if !c.Valid() && cc[c] != other[c] {
			return false
		}
	}
	return true
}

func (cc ConditionCounts) String() string {
	out := "{"
	first := true
	for _, c := range Conditions {
		if cc[c] == 0 {
			continue
		}
		if !first {
			out += " "
		}
		out += fmt.Sprintf("%s:%d", c, cc[c])
		first = false
	}
	return out + "}"
}

// Value stores the mix as a JSON object.
func (cc ConditionCounts) Value() (driver.Value, error) {
	if cc == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[Condition]int(cc))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan reads a JSON object column.
func (cc *ConditionCounts) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*cc = ConditionCounts{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported condition_counts type %T", src)
	}
	if len(raw) == 0 {
		*cc = ConditionCounts{}
		return nil
	}
	out := ConditionCounts{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("invalid condition_counts: %w", err)
	}
	*cc = out
	return nil
}

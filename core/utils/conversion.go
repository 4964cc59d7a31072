package utils

import (
	"strconv"
	"strings"
)

// ToInt parses a query value, falling back to def on anything unparsable.
func ToInt(val string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return def
	}
	return i
}

// ToBool accepts "1" and "true" (any case).
func ToBool(val string) bool {
	v := strings.ToLower(strings.TrimSpace(val))
	return v == "1" || v == "true"
}

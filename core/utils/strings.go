package utils

import (
	"strings"
	"unicode/utf8"
)

// Clean trims s and cuts it to at most max runes.
func Clean(s string, max int) string {
	s = strings.TrimSpace(s)
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:max]))
}

// JoinNotes appends next to existing with a "; " separator, skipping empty parts.
func JoinNotes(existing, next string) string {
	existing = strings.TrimSpace(existing)
	next = strings.TrimSpace(next)
	switch {
	case existing == "":
		return next
	case next == "":
		return existing
	default:
		return existing + "; " + next
	}
}

// FirstNonEmpty returns the first argument that is not blank.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// LikeEscape is the escape character LikePattern uses. It avoids backslash,
// which MySQL treats specially inside string literals.
const LikeEscape = "!"

// LikePattern lower-cases and escapes s for use inside LIKE '%...%' ESCAPE '!'.
func LikePattern(s string) string {
	r := strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`)
	return "%" + strings.ToLower(r.Replace(strings.TrimSpace(s))) + "%"
}

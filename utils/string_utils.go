package utils

import "strings"

// SnakeToTitle converts a snake_case identifier such as "monthly_visitors"
// to a display string such as "Monthly Visitors".
func SnakeToTitle(s string) string {
	parts := strings.Split(s, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// ContainsAny reports whether s contains at least one of the substrings,
// case-insensitively.
func ContainsAny(s string, substrings ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range substrings {
		if strings.Contains(lower, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}

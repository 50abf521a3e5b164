package domain

import "strings"

// NormalizeKeyword trims surrounding whitespace from a search keyword. Inner
// whitespace and case are preserved; matching is a case-insensitive substring
// match in SQL.
func NormalizeKeyword(keyword string) string {
	return strings.TrimSpace(keyword)
}

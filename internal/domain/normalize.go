package domain

import "strings"

// NormalizeQuery prepares a user-supplied search or party filter: surrounding
// whitespace is dropped, inner whitespace runs become one space and letters
// are lower-cased. Equal queries therefore share one cache entry.
func NormalizeQuery(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

package ingest

import "strings"

// CleanText collapses whitespace (including non-breaking spaces that
// show up in hh.ru exports) and trims the result.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// Package util provides shared utility functions used across the application.
package util

import "strings"

// Slugify converts display text into a filename-safe slug: lowercased,
// apostrophes stripped, runs of whitespace collapsed to single hyphens.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "’", "")

	fields := strings.Fields(s)
	return strings.Join(fields, "-")
}

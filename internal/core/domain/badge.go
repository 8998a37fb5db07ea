package domain

import (
	"regexp"
	"strconv"
)

var defaultTitleRegexp = regexp.MustCompile(DefaultTitlePattern)

// CountFromTitle extracts the unread count from a window title using the first
// capture group of pattern. A nil pattern uses DefaultTitlePattern.
// Titles without a match, or with a count that does not fit an int, yield 0.
func CountFromTitle(title string, pattern *regexp.Regexp) int {
	if pattern == nil {
		pattern = defaultTitleRegexp
	}
	m := pattern.FindStringSubmatch(title)
	if len(m) < 2 {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

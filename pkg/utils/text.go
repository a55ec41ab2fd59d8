package utils

import "unicode/utf8"

// TruncateRunes returns s cut to at most maxChars runes. A non-positive
// maxChars returns s unchanged.
func TruncateRunes(s string, maxChars int) string {
	if maxChars <= 0 || utf8.RuneCountInString(s) <= maxChars {
		return s
	}
	return string([]rune(s)[:maxChars])
}

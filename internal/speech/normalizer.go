package speech

import "strings"

// substitution is one literal find-and-replace rule.
type substitution struct {
	pattern     string
	replacement string
}

// Rules are applied in order. Matches are literal substrings with no
// word-boundary awareness, so a transcript like "meet me at noon" is also
// rewritten; that is a known, accepted limitation of spoken-symbol recovery.
var substitutions = []substitution{
	{" at ", "@"},
	{" dot ", "."},
}

// Normalize rewrites spoken symbol words in a transcript into their literal
// symbols, e.g. "email at example dot com" becomes "email@example.com".
// Deterministic and total; idempotent once no trigger patterns remain.
func Normalize(text string) string {
	for _, sub := range substitutions {
		text = strings.ReplaceAll(text, sub.pattern, sub.replacement)
	}
	return text
}

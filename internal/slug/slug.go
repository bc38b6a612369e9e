// Package slug derives URL-safe identifiers from article titles.
package slug

import (
	"strings"
	"unicode"
)

// Make converts a title into a lower-case, hyphen-delimited slug.
//
// The transform is deterministic and locale-insensitive: the input is
// lower-cased and trimmed, characters outside letters, digits, underscore,
// whitespace and hyphen are removed, whitespace runs become single hyphens,
// hyphen runs are collapsed, and leading/trailing hyphens are stripped.
//
// The result may be empty when the title contains no letters or digits;
// callers must treat an empty slug as a validation failure rather than
// storing it.
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('-')
		}
	}

	out := make([]rune, 0, b.Len())
	prevHyphen := false
	for _, r := range b.String() {
		if r == '-' {
			if prevHyphen {
				continue
			}
			prevHyphen = true
		} else {
			prevHyphen = false
		}
		out = append(out, r)
	}

	return strings.Trim(string(out), "-")
}

package textutil

import (
	"fmt"
	"strings"
	"unicode"
)

// Replacement is drawn in place of a control rune.
const Replacement = '?'

// SanitizeName prepares a file name or message for a single screen line.
// Tabs and line breaks become spaces and control runes become Replacement.
// Invisible format runes such as bidi overrides or a BOM are spelled out as
// <U+XXXX>, so a name like "txt.exe<RLO>" cannot pose as another file.
func SanitizeName(name string) string {
	if !needsSanitizing(name) {
		return name
	}

	var b strings.Builder
	b.Grow(len(name) + 8)
	for _, r := range name {
		if isInvisibleFormat(r) {
			fmt.Fprintf(&b, "<U+%04X>", r)
			continue
		}
		b.WriteRune(displayRune(r))
	}
	return b.String()
}

// SanitizeRunes is the variant for editable fields: each rune of value maps
// to exactly one output rune, so a cursor index into value stays valid.
func SanitizeRunes(value string) []rune {
	runes := []rune(value)
	for i, r := range runes {
		if isInvisibleFormat(r) {
			runes[i] = Replacement
			continue
		}
		runes[i] = displayRune(r)
	}
	return runes
}

func needsSanitizing(s string) bool {
	for _, r := range s {
		if isInvisibleFormat(r) || displayRune(r) != r {
			return true
		}
	}
	return false
}

func displayRune(r rune) rune {
	switch {
	case r == '\t', r == '\n', r == '\r', r == '\u2028', r == '\u2029':
		return ' '
	case unicode.IsControl(r):
		return Replacement
	default:
		return r
	}
}

func isInvisibleFormat(r rune) bool {
	return unicode.Is(unicode.Cf, r)
}

package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const Ellipsis = "…"

// DisplayWidth reports the number of terminal cells text occupies.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// TruncateLeft keeps the end of text, which is the informative part of a
// path, prefixing an ellipsis when something was cut.
func TruncateLeft(text string, width int) string {
	if width <= 0 || text == "" {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	ellipsisWidth := runewidth.StringWidth(Ellipsis)
	if width <= ellipsisWidth {
		return Ellipsis
	}

	runes := []rune(text)
	available := width - ellipsisWidth
	used := 0
	start := len(runes)
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if used+w > available {
			break
		}
		used += w
		start--
	}
	return Ellipsis + string(runes[start:])
}

// PadLeft right-aligns text in a field of width cells.
func PadLeft(text string, width int) string {
	gap := width - runewidth.StringWidth(text)
	if gap <= 0 {
		return text
	}
	return strings.Repeat(" ", gap) + text
}

// PadRight left-aligns text in a field of width cells.
func PadRight(text string, width int) string {
	gap := width - runewidth.StringWidth(text)
	if gap <= 0 {
		return text
	}
	return text + strings.Repeat(" ", gap)
}

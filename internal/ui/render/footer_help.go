package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/findfiles/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles context-aware help hints for the footer.
func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}

	switch {
	case state.Search.Active:
		return []string{"Esc: cancel search"}
	case state.Browser.Active:
		return []string{
			"↑↓: select",
			"↵/→: open",
			"←: parent",
			"Esc: close",
		}
	case state.Focus == statepkg.FocusResults:
		return []string{
			"↑↓/Pg: select",
			"↵/o: open file",
			"Tab: next",
			"^F: find",
			"?: help",
			"Esc: quit",
		}
	default:
		segments := []string{
			"↵/^F: find",
			"Tab: next",
			"^P/^N: history",
		}
		if state.Focus == statepkg.FocusDir {
			segments = append(segments, "^B: browse")
		}
		return append(segments, "F1: help", "Esc: quit")
	}
}

package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/findfiles/internal/state"
	textutil "github.com/kk-code-lab/findfiles/internal/textutil"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

func buildHelpOverlayLines(state *statepkg.AppState) []string {
	caseDesc := "Names match case-insensitively"
	if state != nil && state.CaseSensitive {
		caseDesc = "Names match case-sensitively"
	}

	sections := []helpOverlaySection{
		{
			title: "Form",
			entries: []helpOverlayEntry{
				{keys: "Tab / Shift+Tab", desc: "Next / previous control"},
				{keys: "↵ or Ctrl+F", desc: "Find"},
				{keys: "Ctrl+P / Ctrl+N", desc: "Previous / next history entry"},
				{keys: "Ctrl+U / Ctrl+W", desc: "Clear field / delete word"},
				{keys: "Ctrl+B", desc: "Browse for a directory"},
			},
		},
		{
			title: "Results",
			entries: []helpOverlayEntry{
				{keys: "↑/↓ PgUp/PgDn", desc: "Move selection"},
				{keys: "↵ or o", desc: "Open file with the default application"},
				{keys: "double-click", desc: "Open file"},
			},
		},
		{
			title: "Search",
			entries: []helpOverlayEntry{
				{keys: "*.txt", desc: "Glob: * any run, ? one character"},
				{keys: "", desc: caseDesc},
				{keys: "Esc", desc: "Cancel a running search"},
			},
		},
		{
			title: "Exit",
			entries: []helpOverlayEntry{
				{keys: "Esc", desc: "Quit"},
				{keys: "Ctrl+C", desc: "Quit immediately"},
				{keys: "Ctrl+Z", desc: "Suspend"},
				{keys: "F1 or ?", desc: "Close this help"},
			},
		},
	}

	lines := make([]string, 0, 32)
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, formatHelpOverlayEntry(entry))
		}
	}

	return lines
}

func formatHelpOverlayEntry(entry helpOverlayEntry) string {
	return fmt.Sprintf("  %s %s", textutil.PadRight(entry.keys, 18), entry.desc)
}

func (r *Renderer) drawHelpOverlay(state *statepkg.AppState, w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	for y := 0; y < h; y++ {
		r.fillLine(0, w, y, baseStyle)
	}

	title := " Help "
	headerStyle := baseStyle.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg).Bold(true)
	titleStart := 0
	titleWidth := r.measureTextWidth(title)
	if w > titleWidth {
		titleStart = (w - titleWidth) / 2
	}
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	lines := buildHelpOverlayLines(state)
	row := 2
	maxRow := h - 1
	for _, line := range lines {
		if row >= maxRow {
			break
		}
		text := strings.TrimRight(line, " ")
		text = r.truncateTextToWidth(text, w-4)
		r.drawTextLine(2, row, w-4, text, baseStyle)
		row++
	}

	footer := "F1/? toggle · Esc close"
	if h > 0 {
		footerText := r.truncateTextToWidth(footer, w)
		r.drawTextLine(0, h-1, w, footerText, headerStyle)
	}
}

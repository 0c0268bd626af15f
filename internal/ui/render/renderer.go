package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/findfiles/internal/finder"
	statepkg "github.com/kk-code-lab/findfiles/internal/state"
	textutil "github.com/kk-code-lab/findfiles/internal/textutil"
)

const (
	dialogTitle     = "Find Files"
	labelName       = "Named:"
	labelText       = "Containing text:"
	labelDir        = "In directory:"
	browseHint      = "[Browse…]"
	columnName      = "File Name"
	columnSize      = "Size"
	openHint        = "(↵ or double-click opens a file)"
	sizeColumnWidth = 12
	formMarginX     = 1
)

// Renderer handles all UI rendering
type Renderer struct {
	screen           tcell.Screen
	theme            ColorTheme
	runeWidthCache   [128]int // ASCII cache (0-127)
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map // For non-ASCII runes
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// FieldStartX is the column where the form's input fields begin.
func FieldStartX() int {
	return formMarginX + textutil.DisplayWidth(labelText) + 1
}

// BrowseHintBounds returns the half-open column range of the browse hint on
// the directory row for a screen of the given width.
func BrowseHintBounds(width int) (int, int) {
	end := width - formMarginX
	start := end - textutil.DisplayWidth(browseHint)
	if start < FieldStartX() {
		return 0, 0
	}
	return start, end
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()
	r.screen.HideCursor()

	w, h := r.screen.Size()

	switch {
	case state.HelpVisible:
		r.drawHelpOverlay(state, w, h)
	case state.Browser.Active:
		r.drawBrowser(state, w, h)
	default:
		r.drawHeader(w)
		r.drawForm(state, w)
		r.drawTable(state, w, h)
		r.drawStatusLine(state, w, h)
		r.drawFooter(state, w, h)
		if state.Search.Active && state.Search.Total > 0 {
			r.drawProgress(state, w, h)
		}
	}

	r.screen.Show()
}

// drawHeader renders the title bar
func (r *Renderer) drawHeader(w int) {
	style := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)
	endX := r.drawTextLine(formMarginX, statepkg.HeaderRow, w-formMarginX, dialogTitle, style)
	r.fillLine(0, formMarginX, statepkg.HeaderRow, style)
	r.fillLine(endX, w, statepkg.HeaderRow, style)
}

func (r *Renderer) drawForm(state *statepkg.AppState, w int) {
	fieldX := FieldStartX()
	hintStart, _ := BrowseHintBounds(w)

	dirEnd := w - formMarginX
	if hintStart > 0 {
		dirEnd = hintStart - 1
	}

	r.drawField(state, &state.Name, statepkg.FocusName, labelName, statepkg.NameFieldRow, fieldX, w-formMarginX)
	r.drawField(state, &state.Text, statepkg.FocusText, labelText, statepkg.TextFieldRow, fieldX, w-formMarginX)
	r.drawField(state, &state.Dir, statepkg.FocusDir, labelDir, statepkg.DirFieldRow, fieldX, dirEnd)

	if hintStart > 0 {
		hintStyle := tcell.StyleDefault.Foreground(r.theme.HintFg)
		r.drawTextLine(hintStart, statepkg.DirFieldRow, w-hintStart, browseHint, hintStyle)
	}
}

func (r *Renderer) drawField(state *statepkg.AppState, field *statepkg.InputField, focus statepkg.Focus, label string, y, fieldX, endX int) {
	focused := state.Focus == focus
	labelStyle := tcell.StyleDefault.Foreground(r.theme.LabelFg)
	if focused {
		labelStyle = labelStyle.Bold(true)
	}
	r.drawTextLine(formMarginX, y, fieldX-formMarginX, label, labelStyle)

	width := endX - fieldX
	if width <= 0 {
		return
	}

	fieldStyle := tcell.StyleDefault.Background(r.theme.FieldBg).Foreground(r.theme.FieldFg)
	r.fillLine(fieldX, endX, y, fieldStyle)

	visible, cursorCol := r.fieldWindow(textutil.SanitizeRunes(field.Value), field.Cursor, width)
	r.drawTextLine(fieldX, y, width, visible, fieldStyle)

	if focused && !state.Search.Active {
		r.screen.ShowCursor(fieldX+cursorCol, y)
	}
}

func (r *Renderer) tableColumns(w int) (nameX, nameWidth, sizeX int) {
	nameX = formMarginX
	sizeX = w - formMarginX - sizeColumnWidth
	nameWidth = sizeX - nameX - 1
	if nameWidth < 0 {
		nameWidth = 0
	}
	return nameX, nameWidth, sizeX
}

func (r *Renderer) drawTable(state *statepkg.AppState, w, h int) {
	nameX, nameWidth, sizeX := r.tableColumns(w)

	headerStyle := tcell.StyleDefault.Underline(true).Bold(true)
	r.drawTextLine(nameX, statepkg.TableHeaderRow, nameWidth, columnName, headerStyle)
	if sizeX > nameX {
		r.drawTextLine(sizeX, statepkg.TableHeaderRow, sizeColumnWidth, textutil.PadLeft(columnSize, sizeColumnWidth), headerStyle)
	}

	bottomLimit := h - statepkg.FooterRows
	visible := state.VisibleRowCount()
	end := state.ScrollOffset + visible
	if end > len(state.Rows) {
		end = len(state.Rows)
	}

	y := statepkg.TableFirstRow
	for idx := state.ScrollOffset; idx < end && y < bottomLimit; idx++ {
		row := state.Rows[idx]

		rowStyle := tcell.StyleDefault
		if idx == state.SelectedIndex {
			if state.Focus == statepkg.FocusResults {
				rowStyle = rowStyle.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
			} else {
				rowStyle = rowStyle.Background(r.theme.InactiveBg)
			}
			r.fillLine(0, w, y, rowStyle)
		}

		name := r.truncateTextToWidth(textutil.SanitizeName(row.Name), nameWidth)
		r.drawTextLine(nameX, y, nameWidth, name, rowStyle)
		if sizeX > nameX {
			size := textutil.PadLeft(finder.FormatSize(row.SizeKB), sizeColumnWidth)
			r.drawTextLine(sizeX, y, sizeColumnWidth, size, rowStyle)
		}
		y++
	}
}

// statusText is the line between the table and the footer.
func statusText(state *statepkg.AppState) string {
	switch {
	case state.LastError != nil:
		return state.LastError.Error()
	case state.Search.Active:
		return "Searching…"
	case !state.HasSearched:
		return ""
	}

	text := finder.StatusText(state.LastCount) + " " + openHint
	if state.LastCancelled {
		text += " · cancelled"
	}
	return text
}

func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, h int) {
	y := h - 2
	if y <= statepkg.TableHeaderRow {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	if state.LastError != nil {
		style = style.Foreground(r.theme.ErrorFg)
	}
	text := r.truncateTextToWidth(textutil.SanitizeName(statusText(state)), w-formMarginX)
	r.fillLine(0, w, y, style)
	r.drawTextLine(formMarginX, y, w-formMarginX, text, style)
}

func (r *Renderer) drawFooter(state *statepkg.AppState, w, h int) {
	y := h - 1
	if y <= statepkg.TableHeaderRow {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.HintFg)
	text := r.truncateTextToWidth(buildFooterHelpText(state), w)
	r.fillLine(0, w, y, style)
	r.drawTextLine(0, y, w, text, style)
}

// progressLabel mirrors the classic progress dialog text.
func progressLabel(index, total int) string {
	current := index + 1
	if current > total {
		current = total
	}
	return fmt.Sprintf("Searching file number %d of %d...", current, total)
}

func (r *Renderer) drawProgress(state *statepkg.AppState, w, h int) {
	label := progressLabel(state.Search.Index, state.Search.Total)
	boxWidth := r.measureTextWidth(label) + 4
	if boxWidth < 40 {
		boxWidth = 40
	}
	if boxWidth > w-2 {
		boxWidth = w - 2
	}
	const boxHeight = 6
	if boxWidth < 10 || h < boxHeight+2 {
		return
	}

	left := (w - boxWidth) / 2
	top := (h - boxHeight) / 2
	style := tcell.StyleDefault.Background(r.theme.FieldBg).Foreground(r.theme.FieldFg)
	r.drawBox(left, top, boxWidth, boxHeight, style)

	inner := boxWidth - 4
	r.drawTextLine(left+2, top+1, inner, r.truncateTextToWidth(label, inner), style)

	filled := 0
	if state.Search.Total > 0 {
		filled = inner * state.Search.Index / state.Search.Total
	}
	barStyle := style.Foreground(r.theme.ProgressFg)
	for i := 0; i < inner; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		r.screen.SetContent(left+2+i, top+3, ch, nil, barStyle)
	}

	r.drawTextLine(left+2, top+4, inner, "Esc: cancel", style.Foreground(r.theme.HintFg))
}

func (r *Renderer) drawBox(left, top, width, height int, style tcell.Style) {
	right := left + width - 1
	bottom := top + height - 1
	for y := top; y <= bottom; y++ {
		r.fillLine(left, right+1, y, style)
	}
	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(left, top, '┌', nil, style)
	r.screen.SetContent(right, top, '┐', nil, style)
	r.screen.SetContent(left, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}

func (r *Renderer) drawBrowser(state *statepkg.AppState, w, h int) {
	headerStyle := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)
	endX := r.drawTextLine(formMarginX, 0, w-formMarginX, "Choose directory", headerStyle)
	r.fillLine(endX, w, 0, headerStyle)

	pathText := textutil.TruncateLeft(textutil.SanitizeName(state.Browser.Path), w-formMarginX)
	r.drawTextLine(formMarginX, statepkg.BrowserPathRow, w-formMarginX, pathText, tcell.StyleDefault.Foreground(r.theme.HintFg))

	rows := state.BrowserRows()
	visible := state.BrowserVisibleCount()
	end := state.Browser.ScrollOffset + visible
	if end > len(rows) {
		end = len(rows)
	}

	y := statepkg.BrowserFirstRow
	for idx := state.Browser.ScrollOffset; idx < end; idx++ {
		row := rows[idx]
		style := tcell.StyleDefault
		switch {
		case idx == state.Browser.SelectedIndex:
			style = style.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
			r.fillLine(0, w, y, style)
		case row.IsSymlink:
			style = style.Foreground(r.theme.SymlinkFg)
		case row.Kind == statepkg.BrowserRowDir:
			style = style.Foreground(r.theme.DirectoryFg)
		}
		label := r.truncateTextToWidth(textutil.SanitizeName(row.Label), w-formMarginX-2)
		r.drawTextLine(formMarginX+2, y, w-formMarginX-2, label, style)
		y++
	}

	footerStyle := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.HintFg)
	footer := r.truncateTextToWidth(buildFooterHelpText(state), w)
	r.fillLine(0, w, h-1, footerStyle)
	r.drawTextLine(0, h-1, w, footer, footerStyle)
}

package state

import "unicode"

const maxFieldHistory = 16

// InputField is an editable line with a recall history, standing in for an
// editable combo box.
type InputField struct {
	Value   string
	Cursor  int // rune offset into Value
	History []string

	historyPos int // 0 while editing, n when showing History[n-1]
	draft      string
}

// Set replaces the value and moves the cursor to the end.
func (f *InputField) Set(value string) {
	f.Value = value
	f.Cursor = len([]rune(value))
	f.historyPos = 0
}

func (f *InputField) runes() []rune {
	return []rune(f.Value)
}

func (f *InputField) clampCursor(n int) {
	if f.Cursor < 0 {
		f.Cursor = 0
	}
	if f.Cursor > n {
		f.Cursor = n
	}
}

// Insert adds r at the cursor.
func (f *InputField) Insert(r rune) {
	runes := f.runes()
	f.clampCursor(len(runes))
	runes = append(runes[:f.Cursor], append([]rune{r}, runes[f.Cursor:]...)...)
	f.Value = string(runes)
	f.Cursor++
	f.historyPos = 0
}

// Backspace removes the rune before the cursor.
func (f *InputField) Backspace() {
	runes := f.runes()
	f.clampCursor(len(runes))
	if f.Cursor == 0 {
		return
	}
	runes = append(runes[:f.Cursor-1], runes[f.Cursor:]...)
	f.Value = string(runes)
	f.Cursor--
	f.historyPos = 0
}

// Delete removes the rune under the cursor.
func (f *InputField) Delete() {
	runes := f.runes()
	f.clampCursor(len(runes))
	if f.Cursor >= len(runes) {
		return
	}
	runes = append(runes[:f.Cursor], runes[f.Cursor+1:]...)
	f.Value = string(runes)
	f.historyPos = 0
}

// DeleteWord removes the word before the cursor, plus any spaces after it.
func (f *InputField) DeleteWord() {
	runes := f.runes()
	f.clampCursor(len(runes))
	start := f.Cursor
	for start > 0 && unicode.IsSpace(runes[start-1]) {
		start--
	}
	for start > 0 && !unicode.IsSpace(runes[start-1]) {
		start--
	}
	if start == f.Cursor {
		return
	}
	runes = append(runes[:start], runes[f.Cursor:]...)
	f.Value = string(runes)
	f.Cursor = start
	f.historyPos = 0
}

// Clear empties the field.
func (f *InputField) Clear() {
	f.Set("")
}

// MoveCursor handles "left", "right", "home" and "end".
func (f *InputField) MoveCursor(direction string) {
	n := len(f.runes())
	switch direction {
	case "left":
		f.Cursor--
	case "right":
		f.Cursor++
	case "home":
		f.Cursor = 0
	case "end":
		f.Cursor = n
	}
	f.clampCursor(n)
}

// Remember moves value to the front of the history.
func (f *InputField) Remember(value string) {
	if value == "" {
		return
	}
	history := make([]string, 0, len(f.History)+1)
	history = append(history, value)
	for _, old := range f.History {
		if old != value {
			history = append(history, old)
		}
	}
	if len(history) > maxFieldHistory {
		history = history[:maxFieldHistory]
	}
	f.History = history
	f.historyPos = 0
}

// Recall steps through the history: "older" walks back, "newer" walks
// forward and finally restores the text typed before recalling.
func (f *InputField) Recall(direction string) {
	switch direction {
	case "older":
		if f.historyPos >= len(f.History) {
			return
		}
		if f.historyPos == 0 {
			f.draft = f.Value
		}
		f.historyPos++
		f.showHistory()
	case "newer":
		if f.historyPos == 0 {
			return
		}
		f.historyPos--
		f.showHistory()
	}
}

func (f *InputField) showHistory() {
	pos := f.historyPos
	value := f.draft
	if pos > 0 {
		value = f.History[pos-1]
	}
	f.Value = value
	f.Cursor = len([]rune(value))
}

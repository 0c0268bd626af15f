package state

import (
	fsutil "github.com/kk-code-lab/findfiles/internal/fs"
	"github.com/kk-code-lab/findfiles/internal/finder"
)

type Row = finder.Row
type DirEntry = fsutil.Entry

// Focus identifies the control receiving keyboard input.
type Focus int

const (
	FocusName Focus = iota
	FocusText
	FocusDir
	FocusResults
	focusCount
)

// Screen rows of the dialog. The table fills the space between
// TableFirstRow and the two footer lines.
const (
	HeaderRow      = 0
	NameFieldRow   = 2
	TextFieldRow   = 3
	DirFieldRow    = 4
	TableHeaderRow = 6
	TableFirstRow  = 7
	FooterRows     = 2

	// Directory picker overlay
	BrowserPathRow  = 1
	BrowserFirstRow = 3
)

// SearchProgress tracks the running search.
type SearchProgress struct {
	Active bool
	Token  int
	Index  int
	Total  int
}

// BrowserState is the directory picker opened from the directory field.
type BrowserState struct {
	Active        bool
	Path          string
	Entries       []DirEntry
	SelectedIndex int
	ScrollOffset  int
}

// AppState is the single source of truth
type AppState struct {
	// Form
	Name  InputField
	Text  InputField
	Dir   InputField
	Focus Focus

	// Search options
	CaseSensitive bool
	IncludeHidden bool
	SkipBinary    bool

	// Results
	Rows          []Row
	ResultDir     string
	SelectedIndex int
	ScrollOffset  int
	HasSearched   bool
	LastCount     int
	LastCancelled bool
	Search        SearchProgress

	// Overlays
	Browser     BrowserState
	HelpVisible bool

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Error state
	LastError error
}

// NewAppState returns the dialog state with the given initial field values.
// An empty pattern shows the match-all glob like the classic dialog.
func NewAppState(pattern, text, dir string) *AppState {
	if pattern == "" {
		pattern = finder.DefaultPattern
	}
	s := &AppState{}
	s.Name.Set(pattern)
	s.Text.Set(text)
	s.Dir.Set(dir)
	return s
}

// FocusedField returns the field with keyboard focus, or nil when the
// results table has focus.
func (s *AppState) FocusedField() *InputField {
	switch s.Focus {
	case FocusName:
		return &s.Name
	case FocusText:
		return &s.Text
	case FocusDir:
		return &s.Dir
	default:
		return nil
	}
}

// Request builds the search described by the form.
func (s *AppState) Request() finder.Request {
	return finder.Request{
		Dir:           s.Dir.Value,
		Pattern:       s.Name.Value,
		Text:          s.Text.Value,
		CaseSensitive: s.CaseSensitive,
		IncludeHidden: s.IncludeHidden,
		SkipBinary:    s.SkipBinary,
	}
}

// SelectedRow returns the highlighted result, if any.
func (s *AppState) SelectedRow() *Row {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Rows) {
		return nil
	}
	return &s.Rows[s.SelectedIndex]
}

// VisibleRowCount is the number of table rows that fit on screen.
func (s *AppState) VisibleRowCount() int {
	n := s.ScreenHeight - TableFirstRow - FooterRows
	if n < 1 {
		return 1
	}
	return n
}

func (s *AppState) clampSelection() {
	if len(s.Rows) == 0 {
		s.SelectedIndex = 0
		s.ScrollOffset = 0
		return
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	if s.SelectedIndex >= len(s.Rows) {
		s.SelectedIndex = len(s.Rows) - 1
	}
	s.updateScrollVisibility()
}

func (s *AppState) updateScrollVisibility() {
	visible := s.VisibleRowCount()
	if s.SelectedIndex < s.ScrollOffset {
		s.ScrollOffset = s.SelectedIndex
	}
	if s.SelectedIndex >= s.ScrollOffset+visible {
		s.ScrollOffset = s.SelectedIndex - visible + 1
	}
	maxOffset := len(s.Rows) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ScrollOffset > maxOffset {
		s.ScrollOffset = maxOffset
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}

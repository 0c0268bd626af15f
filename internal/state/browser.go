package state

import (
	"path/filepath"

	fsutil "github.com/kk-code-lab/findfiles/internal/fs"
)

// BrowserRowKind tells what choosing a browser row does.
type BrowserRowKind int

const (
	BrowserRowUseCurrent BrowserRowKind = iota
	BrowserRowParent
	BrowserRowDir
)

// BrowserRow is one selectable line of the directory picker.
type BrowserRow struct {
	Kind      BrowserRowKind
	Label     string
	Path      string
	IsSymlink bool
}

var listSubdirectoriesFn = fsutil.ListSubdirectories

// BrowserRows lists the picker rows: choose the current directory, go to the
// parent (unless at the root), then each subdirectory.
func (s *AppState) BrowserRows() []BrowserRow {
	b := &s.Browser
	if !b.Active {
		return nil
	}
	rows := make([]BrowserRow, 0, len(b.Entries)+2)
	rows = append(rows, BrowserRow{Kind: BrowserRowUseCurrent, Label: "[use this directory]", Path: b.Path})
	if parent := filepath.Dir(b.Path); parent != b.Path {
		rows = append(rows, BrowserRow{Kind: BrowserRowParent, Label: "..", Path: parent})
	}
	for _, e := range b.Entries {
		rows = append(rows, BrowserRow{
			Kind:      BrowserRowDir,
			Label:     e.Name + string(filepath.Separator),
			Path:      e.FullPath,
			IsSymlink: e.IsSymlink,
		})
	}
	return rows
}

// BrowserVisibleCount is the number of picker rows that fit in the overlay.
func (s *AppState) BrowserVisibleCount() int {
	n := s.ScreenHeight - BrowserFirstRow - 3
	if n < 1 {
		return 1
	}
	return n
}

func (s *AppState) loadBrowser(path string) error {
	entries, err := listSubdirectoriesFn(path, s.IncludeHidden)
	if err != nil {
		return err
	}
	s.Browser = BrowserState{
		Active:  true,
		Path:    path,
		Entries: entries,
	}
	return nil
}

// loadBrowserParent opens the parent directory with the directory we came
// from selected.
func (s *AppState) loadBrowserParent() error {
	current := s.Browser.Path
	parent := filepath.Dir(current)
	if parent == current {
		return nil
	}
	if err := s.loadBrowser(parent); err != nil {
		return err
	}
	for idx, row := range s.BrowserRows() {
		if row.Kind == BrowserRowDir && row.Path == current {
			s.Browser.SelectedIndex = idx
			break
		}
	}
	s.updateBrowserScroll()
	return nil
}

func (s *AppState) moveBrowserSelection(direction string) {
	rows := s.BrowserRows()
	if len(rows) == 0 {
		return
	}
	page := s.BrowserVisibleCount()
	idx := s.Browser.SelectedIndex
	switch direction {
	case "up":
		idx--
	case "down":
		idx++
	case "pageup":
		idx -= page
	case "pagedown":
		idx += page
	case "home":
		idx = 0
	case "end":
		idx = len(rows) - 1
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(rows) {
		idx = len(rows) - 1
	}
	s.Browser.SelectedIndex = idx
	s.updateBrowserScroll()
}

func (s *AppState) updateBrowserScroll() {
	visible := s.BrowserVisibleCount()
	b := &s.Browser
	if b.SelectedIndex < b.ScrollOffset {
		b.ScrollOffset = b.SelectedIndex
	}
	if b.SelectedIndex >= b.ScrollOffset+visible {
		b.ScrollOffset = b.SelectedIndex - visible + 1
	}
	if b.ScrollOffset < 0 {
		b.ScrollOffset = 0
	}
}

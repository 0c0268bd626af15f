package state

import (
	"github.com/kk-code-lab/findfiles/internal/finder"
)

// StateReducer applies actions to AppState.
type StateReducer struct {
	search SearchRunner
}

// NewStateReducer creates a reducer that runs searches through search.
func NewStateReducer(search SearchRunner) *StateReducer {
	return &StateReducer{search: search}
}

// Reduce applies action to state. State is mutated in place; the returned
// pointer is the same state for convenience.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== FOCUS =====

	case FocusNextAction:
		state.Focus = (state.Focus + 1) % focusCount
		return state, nil

	case FocusPrevAction:
		state.Focus = (state.Focus + focusCount - 1) % focusCount
		return state, nil

	case FocusSetAction:
		if a.Focus >= 0 && a.Focus < focusCount {
			state.Focus = a.Focus
		}
		return state, nil

	// ===== FIELD EDITING =====

	case FieldCharAction:
		if f := state.FocusedField(); f != nil {
			f.Insert(a.Char)
		}
		return state, nil

	case FieldBackspaceAction:
		if f := state.FocusedField(); f != nil {
			f.Backspace()
		}
		return state, nil

	case FieldDeleteAction:
		if f := state.FocusedField(); f != nil {
			f.Delete()
		}
		return state, nil

	case FieldDeleteWordAction:
		if f := state.FocusedField(); f != nil {
			f.DeleteWord()
		}
		return state, nil

	case FieldClearAction:
		if f := state.FocusedField(); f != nil {
			f.Clear()
		}
		return state, nil

	case FieldMoveCursorAction:
		if f := state.FocusedField(); f != nil {
			f.MoveCursor(a.Direction)
		}
		return state, nil

	case FieldHistoryAction:
		if f := state.FocusedField(); f != nil {
			f.Recall(a.Direction)
		}
		return state, nil

	// ===== RESULTS TABLE =====

	case NavigateDownAction:
		if len(state.Rows) == 0 || state.SelectedIndex >= len(state.Rows)-1 {
			return state, nil
		}
		state.SelectedIndex++
		state.updateScrollVisibility()
		return state, nil

	case NavigateUpAction:
		if len(state.Rows) == 0 || state.SelectedIndex == 0 {
			return state, nil
		}
		state.SelectedIndex--
		state.updateScrollVisibility()
		return state, nil

	case ScrollPageDownAction:
		state.SelectedIndex += state.VisibleRowCount()
		state.clampSelection()
		return state, nil

	case ScrollPageUpAction:
		state.SelectedIndex -= state.VisibleRowCount()
		state.clampSelection()
		return state, nil

	case ScrollToStartAction:
		state.SelectedIndex = 0
		state.clampSelection()
		return state, nil

	case ScrollToEndAction:
		state.SelectedIndex = len(state.Rows) - 1
		state.clampSelection()
		return state, nil

	case SelectRowAction:
		if a.Index < 0 || a.Index >= len(state.Rows) {
			return state, nil
		}
		state.SelectedIndex = a.Index
		state.Focus = FocusResults
		state.updateScrollVisibility()
		return state, nil

	// ===== SEARCH =====

	case FindAction:
		r.startSearch(state)
		return state, nil

	case CancelSearchAction:
		if state.Search.Active && r.search != nil {
			r.search.Cancel()
		}
		return state, nil

	case SearchProgressAction:
		if !state.Search.Active || a.Token != state.Search.Token {
			return state, nil
		}
		state.Search.Index = a.Index
		state.Search.Total = a.Total
		return state, nil

	case SearchCompleteAction:
		if a.Token != state.Search.Token {
			return state, nil
		}
		state.Search = SearchProgress{Token: a.Token}
		state.Rows = a.Rows
		state.ResultDir = a.Result.Dir
		state.HasSearched = true
		state.LastCount = len(a.Rows)
		state.LastCancelled = a.Result.Cancelled
		state.SelectedIndex = 0
		state.ScrollOffset = 0
		return state, nil

	// ===== DIRECTORY BROWSER =====

	case BrowseStartAction:
		state.HelpVisible = false
		if err := state.loadBrowser(finder.ResolveDir(state.Dir.Value)); err != nil {
			return state, err
		}
		return state, nil

	case BrowseNavigateAction:
		if state.Browser.Active {
			state.moveBrowserSelection(a.Direction)
		}
		return state, nil

	case BrowseSelectRowAction:
		if !state.Browser.Active {
			return state, nil
		}
		if a.Index >= 0 && a.Index < len(state.BrowserRows()) {
			state.Browser.SelectedIndex = a.Index
			state.updateBrowserScroll()
		}
		return state, nil

	case BrowseEnterAction:
		return state, r.enterBrowserRow(state)

	case BrowseParentAction:
		if !state.Browser.Active {
			return state, nil
		}
		return state, state.loadBrowserParent()

	case BrowseCancelAction:
		state.Browser = BrowserState{}
		return state, nil

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.clampSelection()
		if state.Browser.Active {
			state.updateBrowserScroll()
		}
		return state, nil

	case HelpToggleAction:
		state.HelpVisible = !state.HelpVisible
		return state, nil

	case HelpHideAction:
		state.HelpVisible = false
		return state, nil
	}

	return state, nil
}

// startSearch records the form values in their histories, clears the table
// and hands the request to the runner.
func (r *StateReducer) startSearch(state *AppState) {
	if r.search == nil {
		return
	}
	state.LastError = nil
	state.Name.Remember(state.Name.Value)
	state.Text.Remember(state.Text.Value)
	state.Dir.Remember(state.Dir.Value)

	state.Rows = nil
	state.SelectedIndex = 0
	state.ScrollOffset = 0
	state.LastCancelled = false

	token := r.search.Start(state.Request())
	state.Search = SearchProgress{Active: true, Token: token}
}

func (r *StateReducer) enterBrowserRow(state *AppState) error {
	if !state.Browser.Active {
		return nil
	}
	rows := state.BrowserRows()
	idx := state.Browser.SelectedIndex
	if idx < 0 || idx >= len(rows) {
		return nil
	}

	row := rows[idx]
	switch row.Kind {
	case BrowserRowUseCurrent:
		state.Dir.Set(row.Path)
		state.Dir.Remember(row.Path)
		state.Browser = BrowserState{}
		state.Focus = FocusDir
		return nil
	case BrowserRowParent:
		return state.loadBrowserParent()
	default:
		return state.loadBrowser(row.Path)
	}
}

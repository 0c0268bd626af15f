package state

import "github.com/kk-code-lab/findfiles/internal/finder"

// Action is the base interface for all state mutations
type Action interface{}

// ===== FOCUS ACTIONS =====

type FocusNextAction struct{}
type FocusPrevAction struct{}
type FocusSetAction struct {
	Focus Focus
}

// ===== FIELD EDITING ACTIONS =====

type FieldCharAction struct {
	Char rune
}
type FieldBackspaceAction struct{}
type FieldDeleteAction struct{}
type FieldDeleteWordAction struct{}
type FieldClearAction struct{}
type FieldMoveCursorAction struct {
	Direction string // "left", "right", "home", "end"
}
type FieldHistoryAction struct {
	Direction string // "older" or "newer"
}

// ===== RESULTS TABLE ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type ScrollPageUpAction struct{}
type ScrollPageDownAction struct{}
type ScrollToStartAction struct{}
type ScrollToEndAction struct{}
type SelectRowAction struct {
	Index int
}
type OpenSelectedAction struct{}

// ===== SEARCH ACTIONS =====

type FindAction struct{}
type CancelSearchAction struct{}
type SearchProgressAction struct {
	Token int
	Index int
	Total int
}
type SearchCompleteAction struct {
	Token  int
	Result finder.Result
	Rows   []Row
}

// ===== DIRECTORY BROWSER ACTIONS =====

type BrowseStartAction struct{}
type BrowseNavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}
type BrowseSelectRowAction struct {
	Index int
}
type BrowseEnterAction struct{}
type BrowseParentAction struct{}
type BrowseCancelAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}
type HelpToggleAction struct{}
type HelpHideAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
type SuspendAction struct{}

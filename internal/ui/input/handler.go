package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/findfiles/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false when
// the application should quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) emit(action statepkg.Action) bool {
	ih.actionChan <- action
	return true
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		ih.actionChan <- statepkg.QuitAction{}
		return false
	}

	state := ih.state
	if state == nil {
		return true
	}

	// A running scan owns the keyboard: only Esc (cancel) gets through.
	if state.Search.Active {
		if ev.Key() == tcell.KeyEscape {
			return ih.emit(statepkg.CancelSearchAction{})
		}
		return true
	}

	if state.HelpVisible {
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyF1:
			return ih.emit(statepkg.HelpHideAction{})
		case tcell.KeyRune:
			if r := ev.Rune(); r == '?' || r == 'q' {
				return ih.emit(statepkg.HelpHideAction{})
			}
		}
		return true
	}

	if state.Browser.Active {
		return ih.processBrowserKey(ev)
	}

	// Keys that work regardless of focus
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case tcell.KeyTab:
		return ih.emit(statepkg.FocusNextAction{})
	case tcell.KeyBacktab:
		return ih.emit(statepkg.FocusPrevAction{})
	case tcell.KeyCtrlF:
		return ih.emit(statepkg.FindAction{})
	case tcell.KeyCtrlB:
		return ih.emit(statepkg.BrowseStartAction{})
	case tcell.KeyCtrlO:
		return ih.emit(statepkg.OpenSelectedAction{})
	case tcell.KeyCtrlZ:
		return ih.emit(statepkg.SuspendAction{})
	case tcell.KeyF1:
		return ih.emit(statepkg.HelpToggleAction{})
	}

	if state.Focus == statepkg.FocusResults {
		return ih.processResultsKey(ev)
	}
	return ih.processFieldKey(ev)
}

func (ih *InputHandler) processFieldKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEnter:
		return ih.emit(statepkg.FindAction{})
	case tcell.KeyUp:
		return ih.emit(statepkg.FocusPrevAction{})
	case tcell.KeyDown:
		return ih.emit(statepkg.FocusNextAction{})
	case tcell.KeyLeft:
		return ih.emit(statepkg.FieldMoveCursorAction{Direction: "left"})
	case tcell.KeyRight:
		return ih.emit(statepkg.FieldMoveCursorAction{Direction: "right"})
	case tcell.KeyHome, tcell.KeyCtrlA:
		return ih.emit(statepkg.FieldMoveCursorAction{Direction: "home"})
	case tcell.KeyEnd, tcell.KeyCtrlE:
		return ih.emit(statepkg.FieldMoveCursorAction{Direction: "end"})
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return ih.emit(statepkg.FieldBackspaceAction{})
	case tcell.KeyDelete:
		return ih.emit(statepkg.FieldDeleteAction{})
	case tcell.KeyCtrlW:
		return ih.emit(statepkg.FieldDeleteWordAction{})
	case tcell.KeyCtrlU:
		return ih.emit(statepkg.FieldClearAction{})
	case tcell.KeyCtrlP:
		return ih.emit(statepkg.FieldHistoryAction{Direction: "older"})
	case tcell.KeyCtrlN:
		return ih.emit(statepkg.FieldHistoryAction{Direction: "newer"})
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) != 0 {
			return true
		}
		return ih.emit(statepkg.FieldCharAction{Char: ev.Rune()})
	}
	return true
}

func (ih *InputHandler) processResultsKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEnter:
		return ih.emit(statepkg.OpenSelectedAction{})
	case tcell.KeyUp:
		return ih.emit(statepkg.NavigateUpAction{})
	case tcell.KeyDown:
		return ih.emit(statepkg.NavigateDownAction{})
	case tcell.KeyPgUp:
		return ih.emit(statepkg.ScrollPageUpAction{})
	case tcell.KeyPgDn:
		return ih.emit(statepkg.ScrollPageDownAction{})
	case tcell.KeyHome:
		return ih.emit(statepkg.ScrollToStartAction{})
	case tcell.KeyEnd:
		return ih.emit(statepkg.ScrollToEndAction{})
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			return ih.emit(statepkg.NavigateUpAction{})
		case 'j':
			return ih.emit(statepkg.NavigateDownAction{})
		case 'o':
			return ih.emit(statepkg.OpenSelectedAction{})
		case '?':
			return ih.emit(statepkg.HelpToggleAction{})
		case 'q':
			ih.actionChan <- statepkg.QuitAction{}
			return false
		}
	}
	return true
}

func (ih *InputHandler) processBrowserKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		return ih.emit(statepkg.BrowseCancelAction{})
	case tcell.KeyUp:
		return ih.emit(statepkg.BrowseNavigateAction{Direction: "up"})
	case tcell.KeyDown:
		return ih.emit(statepkg.BrowseNavigateAction{Direction: "down"})
	case tcell.KeyPgUp:
		return ih.emit(statepkg.BrowseNavigateAction{Direction: "pageup"})
	case tcell.KeyPgDn:
		return ih.emit(statepkg.BrowseNavigateAction{Direction: "pagedown"})
	case tcell.KeyHome:
		return ih.emit(statepkg.BrowseNavigateAction{Direction: "home"})
	case tcell.KeyEnd:
		return ih.emit(statepkg.BrowseNavigateAction{Direction: "end"})
	case tcell.KeyEnter, tcell.KeyRight:
		return ih.emit(statepkg.BrowseEnterAction{})
	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		return ih.emit(statepkg.BrowseParentAction{})
	}
	return true
}

package app

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/findfiles/internal/state"
	renderui "github.com/kk-code-lab/findfiles/internal/ui/render"
)

func click(app *Application, x, y int) {
	app.handleMouse(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	app.handleMouse(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func drainActions(app *Application) []statepkg.Action {
	var actions []statepkg.Action
	for {
		select {
		case act := <-app.actionCh:
			actions = append(actions, act)
		default:
			return actions
		}
	}
}

func TestHandleMouseFocusesFields(t *testing.T) {
	app := newTestApplication(t)

	tests := []struct {
		y    int
		want statepkg.Focus
	}{
		{statepkg.NameFieldRow, statepkg.FocusName},
		{statepkg.TextFieldRow, statepkg.FocusText},
		{statepkg.DirFieldRow, statepkg.FocusDir},
	}
	for _, tt := range tests {
		click(app, renderui.FieldStartX()+1, tt.y)
		actions := drainActions(app)
		if len(actions) != 1 || actions[0] != (statepkg.FocusSetAction{Focus: tt.want}) {
			t.Fatalf("click on row %d produced %#v", tt.y, actions)
		}
	}
}

func TestHandleMouseBrowseHint(t *testing.T) {
	app := newTestApplication(t)
	start, _ := renderui.BrowseHintBounds(app.state.ScreenWidth)

	click(app, start+1, statepkg.DirFieldRow)

	actions := drainActions(app)
	if len(actions) != 1 {
		t.Fatalf("expected one action, got %#v", actions)
	}
	if _, ok := actions[0].(statepkg.BrowseStartAction); !ok {
		t.Fatalf("expected BrowseStartAction, got %T", actions[0])
	}
}

func TestHandleMouseSelectsAndDoubleClickOpens(t *testing.T) {
	app := newTestApplication(t)
	withRows(app, "a.txt", "b.txt", "c.txt")

	click(app, 3, statepkg.TableFirstRow+1)
	actions := drainActions(app)
	if len(actions) != 1 || actions[0] != (statepkg.SelectRowAction{Index: 1}) {
		t.Fatalf("single click produced %#v", actions)
	}

	click(app, 3, statepkg.TableFirstRow+1)
	actions = drainActions(app)
	if len(actions) != 2 {
		t.Fatalf("double click produced %#v", actions)
	}
	if _, ok := actions[1].(statepkg.OpenSelectedAction); !ok {
		t.Fatalf("expected OpenSelectedAction, got %T", actions[1])
	}
}

func TestHandleMouseDragIsNotDoubleClick(t *testing.T) {
	app := newTestApplication(t)
	withRows(app, "a.txt", "b.txt")

	app.handleMouse(tcell.NewEventMouse(3, statepkg.TableFirstRow, tcell.Button1, tcell.ModNone))
	app.handleMouse(tcell.NewEventMouse(4, statepkg.TableFirstRow, tcell.Button1, tcell.ModNone))
	app.handleMouse(tcell.NewEventMouse(5, statepkg.TableFirstRow+1, tcell.Button1, tcell.ModNone))
	app.handleMouse(tcell.NewEventMouse(5, statepkg.TableFirstRow+1, tcell.ButtonNone, tcell.ModNone))

	actions := drainActions(app)
	if len(actions) != 1 || actions[0] != (statepkg.SelectRowAction{Index: 0}) {
		t.Fatalf("press and drag produced %#v", actions)
	}

	click(app, 3, statepkg.TableFirstRow)
	actions = drainActions(app)
	if len(actions) != 2 {
		t.Fatalf("click after drag produced %#v", actions)
	}
	if _, ok := actions[1].(statepkg.OpenSelectedAction); !ok {
		t.Fatalf("expected OpenSelectedAction, got %T", actions[1])
	}
}

func TestHandleMouseDifferentRowsIsNotDoubleClick(t *testing.T) {
	app := newTestApplication(t)
	withRows(app, "a.txt", "b.txt")

	click(app, 3, statepkg.TableFirstRow)
	click(app, 3, statepkg.TableFirstRow+1)

	for _, act := range drainActions(app) {
		if _, ok := act.(statepkg.OpenSelectedAction); ok {
			t.Fatalf("clicks on different rows must not open")
		}
	}
}

func TestHandleMouseIgnoresClicksBelowRows(t *testing.T) {
	app := newTestApplication(t)
	withRows(app, "a.txt")

	click(app, 3, statepkg.TableFirstRow+5)
	click(app, 3, app.state.ScreenHeight-1)

	if actions := drainActions(app); len(actions) != 0 {
		t.Fatalf("expected no actions, got %#v", actions)
	}
}

func TestHandleMouseIgnoredWhileSearching(t *testing.T) {
	app := newTestApplication(t)
	withRows(app, "a.txt")
	app.state.Search.Active = true

	click(app, 3, statepkg.TableFirstRow)

	if actions := drainActions(app); len(actions) != 0 {
		t.Fatalf("expected no actions during a search, got %#v", actions)
	}
}

func TestHandleMouseInBrowser(t *testing.T) {
	app := newTestApplication(t)
	app.state.Browser = statepkg.BrowserState{Active: true, Path: "/tmp"}

	click(app, 3, statepkg.BrowserFirstRow+1)
	actions := drainActions(app)
	if len(actions) != 1 || actions[0] != (statepkg.BrowseSelectRowAction{Index: 1}) {
		t.Fatalf("browser click produced %#v", actions)
	}

	click(app, 3, statepkg.BrowserFirstRow+1)
	actions = drainActions(app)
	if len(actions) != 2 {
		t.Fatalf("browser double click produced %#v", actions)
	}
	if _, ok := actions[1].(statepkg.BrowseEnterAction); !ok {
		t.Fatalf("expected BrowseEnterAction, got %T", actions[1])
	}
}

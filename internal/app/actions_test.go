package app

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/findfiles/internal/state"
)

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)

	app := newApplicationWithScreen(screen, Options{Dir: t.TempDir()})
	t.Cleanup(func() {
		_ = app.Close()
	})
	app.openerCmd = []string{"fake-open"}
	app.openerErr = nil
	return app
}

func withRows(app *Application, names ...string) {
	rows := make([]statepkg.Row, 0, len(names))
	for _, name := range names {
		rows = append(rows, statepkg.Row{Name: name, Path: filepath.Join(string(filepath.Separator), "data", name)})
	}
	app.state.Rows = rows
	app.state.HasSearched = true
	app.state.LastCount = len(rows)
}

func TestHandleOpenSelectedRunsOpener(t *testing.T) {
	app := newTestApplication(t)
	withRows(app, "a.txt", "b.txt")
	app.state.SelectedIndex = 1

	var recorded []string
	app.startCommand = func(args []string) error {
		recorded = append([]string{}, args...)
		return nil
	}

	if !app.handleOpenSelected() {
		t.Fatalf("expected redraw after opening")
	}
	want := []string{"fake-open", filepath.Join(string(filepath.Separator), "data", "b.txt")}
	if !reflect.DeepEqual(recorded, want) {
		t.Fatalf("opener called with %v, want %v", recorded, want)
	}
	if app.state.LastError != nil {
		t.Fatalf("unexpected error: %v", app.state.LastError)
	}
}

func TestHandleOpenSelectedWithoutRows(t *testing.T) {
	app := newTestApplication(t)
	called := false
	app.startCommand = func([]string) error {
		called = true
		return nil
	}

	if app.handleOpenSelected() {
		t.Fatalf("expected no redraw without a selection")
	}
	if called {
		t.Fatalf("opener must not run without a selection")
	}
}

func TestHandleOpenSelectedSetsLastErrorOnFailure(t *testing.T) {
	app := newTestApplication(t)
	withRows(app, "report.pdf")
	app.startCommand = func([]string) error {
		return errors.New("exec: permission denied")
	}

	app.handleOpenSelected()

	if app.state.LastError == nil {
		t.Fatalf("expected launch failure to set LastError")
	}
	if got := app.state.LastError.Error(); !strings.Contains(got, "report.pdf") || !strings.Contains(got, "permission denied") {
		t.Fatalf("unexpected error text %q", got)
	}
}

func TestHandleOpenSelectedReportsMissingOpener(t *testing.T) {
	app := newTestApplication(t)
	withRows(app, "a.txt")
	app.openerCmd = nil
	app.openerErr = errNoOpener
	app.startCommand = func([]string) error {
		t.Fatalf("opener must not run when none was found")
		return nil
	}

	app.handleOpenSelected()

	if !errors.Is(app.state.LastError, errNoOpener) {
		t.Fatalf("expected errNoOpener, got %v", app.state.LastError)
	}
}

func TestHandleActionRoutesOpenAndQuit(t *testing.T) {
	app := newTestApplication(t)
	withRows(app, "a.txt")
	opened := 0
	app.startCommand = func([]string) error {
		opened++
		return nil
	}

	app.handleAction(statepkg.OpenSelectedAction{})
	if opened != 1 {
		t.Fatalf("expected one open, got %d", opened)
	}

	app.handleAction(statepkg.QuitAction{})
	if !app.shouldQuit {
		t.Fatalf("expected quit flag")
	}
}

func TestHandleActionStoresReducerErrors(t *testing.T) {
	app := newTestApplication(t)
	app.state.Dir.Set(filepath.Join(t.TempDir(), "missing"))

	app.handleAction(statepkg.BrowseStartAction{})

	if app.state.LastError == nil {
		t.Fatalf("expected browse failure in LastError")
	}
	if app.state.Browser.Active {
		t.Fatalf("browser must stay closed on failure")
	}
}

package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/findfiles/internal/finder"
	statepkg "github.com/kk-code-lab/findfiles/internal/state"
)

func TestNewApplicationAppliesOptions(t *testing.T) {
	app := newTestApplication(t)
	if app.state.Name.Value != "*" {
		t.Fatalf("expected match-all default pattern, got %q", app.state.Name.Value)
	}
	if app.state.ScreenWidth != 80 || app.state.ScreenHeight != 24 {
		t.Fatalf("unexpected screen size %dx%d", app.state.ScreenWidth, app.state.ScreenHeight)
	}
}

func TestNewApplicationPrefillsWorkingDirectory(t *testing.T) {
	newScreen := func() tcell.Screen {
		screen := tcell.NewSimulationScreen("UTF-8")
		if err := screen.Init(); err != nil {
			t.Fatalf("init simulation screen: %v", err)
		}
		return screen
	}

	app := newApplicationWithScreen(newScreen(), Options{})
	defer app.Close()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if app.state.Dir.Value != finder.ResolveDir("") || app.state.Dir.Value == "" {
		t.Fatalf("dir field = %q, want working directory %q", app.state.Dir.Value, wd)
	}
	if !filepath.IsAbs(app.state.Dir.Value) {
		t.Fatalf("expected absolute directory, got %q", app.state.Dir.Value)
	}

	explicit := newApplicationWithScreen(newScreen(), Options{Dir: "~/src"})
	defer explicit.Close()
	if explicit.state.Dir.Value != "~/src" {
		t.Fatalf("explicit dir rewritten to %q", explicit.state.Dir.Value)
	}
}

func TestFindThroughActionLoop(t *testing.T) {
	app := newTestApplication(t)
	dir := t.TempDir()
	for name, content := range map[string]string{"a.txt": "hello", "b.txt": "world", "c.md": "hello"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	app.state.Name.Set("*.txt")
	app.state.Text.Set("hello")
	app.state.Dir.Set(dir)

	app.handleAction(statepkg.FindAction{})
	if !app.state.Search.Active {
		t.Fatalf("expected search to be running")
	}

	deadline := time.After(5 * time.Second)
	for app.state.Search.Active {
		select {
		case action := <-app.actionCh:
			app.handleAction(action)
		case <-deadline:
			t.Fatalf("search did not complete")
		}
	}

	if len(app.state.Rows) != 1 || app.state.Rows[0].Name != "a.txt" {
		t.Fatalf("unexpected rows %#v", app.state.Rows)
	}
	if app.state.LastCount != 1 {
		t.Fatalf("expected count 1, got %d", app.state.LastCount)
	}
}

func TestProcessActionsDrainsQueue(t *testing.T) {
	app := newTestApplication(t)
	app.actionCh <- statepkg.FocusNextAction{}
	app.actionCh <- statepkg.FocusNextAction{}

	if !app.processActions() {
		t.Fatalf("expected state change")
	}
	if app.state.Focus != statepkg.FocusDir {
		t.Fatalf("expected focus on directory field, got %v", app.state.Focus)
	}
	if len(app.actionCh) != 0 {
		t.Fatalf("queue not drained")
	}
}

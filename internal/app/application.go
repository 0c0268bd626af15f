package app

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/findfiles/internal/finder"
	statepkg "github.com/kk-code-lab/findfiles/internal/state"
	inputui "github.com/kk-code-lab/findfiles/internal/ui/input"
	renderui "github.com/kk-code-lab/findfiles/internal/ui/render"
)

// Options pre-fills the dialog and selects how files are opened.
type Options struct {
	Dir           string
	Pattern       string
	Text          string
	CaseSensitive bool
	IncludeHidden bool
	SkipBinary    bool
	// Opener overrides the platform command used to open files.
	Opener string
}

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	searcher   *finder.Searcher
	actionCh   chan statepkg.Action
	shouldQuit bool

	openerCmd    []string
	openerErr    error
	startCommand func(args []string) error

	lastClickKey  string
	lastClickTime time.Time
	button1Down   bool
}

// Close cleans up resources.
func (app *Application) Close() error {
	// Searcher callbacks may still be in flight, so actionCh stays open.
	if app.searcher != nil {
		app.searcher.Close()
	}
	app.screen.Fini()
	return nil
}


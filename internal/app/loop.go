package app

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/findfiles/internal/finder"
	statepkg "github.com/kk-code-lab/findfiles/internal/state"
	"github.com/kk-code-lab/findfiles/internal/ui/input"
	renderui "github.com/kk-code-lab/findfiles/internal/ui/render"
)

const doubleClickThreshold = 300 * time.Millisecond

// NewApplication opens the terminal and builds the dialog.
func NewApplication(opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("cannot open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("cannot initialize terminal: %w", err)
	}
	// Parse mouse sequences so modified clicks don't leak as key events.
	screen.EnableMouse()

	return newApplicationWithScreen(screen, opts), nil
}

func newApplicationWithScreen(screen tcell.Screen, opts Options) *Application {
	dir := opts.Dir
	if strings.TrimSpace(dir) == "" {
		dir = finder.ResolveDir("")
	}
	state := statepkg.NewAppState(opts.Pattern, opts.Text, dir)
	state.CaseSensitive = opts.CaseSensitive
	state.IncludeHidden = opts.IncludeHidden
	state.SkipBinary = opts.SkipBinary
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	actionCh := make(chan statepkg.Action, 10)
	dispatch := func(action statepkg.Action) {
		select {
		case actionCh <- action:
		default:
			go func() { actionCh <- action }()
		}
	}

	searcher := finder.NewSearcher()
	reducer := statepkg.NewStateReducer(statepkg.NewSearchRunner(searcher, dispatch))
	inputHandler := input.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	openerCmd, openerErr := detectOpener(runtime.GOOS, opts.Opener, lookPath)

	return &Application{
		screen:       screen,
		state:        state,
		reducer:      reducer,
		renderer:     renderui.NewRenderer(screen),
		input:        inputHandler,
		searcher:     searcher,
		actionCh:     actionCh,
		openerCmd:    openerCmd,
		openerErr:    openerErr,
		startCommand: startDetached,
	}
}

// Run drives the dialog until the user quits.
func (app *Application) Run() {
	defer app.screen.Fini()

	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			eventChan <- app.screen.PollEvent()
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if ev == nil {
				// Screen finalized underneath us.
				return
			}
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventMouse:
		if !app.handleMouse(ev) {
			app.shouldQuit = true
		}
		return true
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

// handleMouse maps primary-clicks to focus, selection and opening. Only the
// press itself counts; tcell keeps Button1 set on drag and motion events.
func (app *Application) handleMouse(ev *tcell.EventMouse) bool {
	if app.state == nil {
		return true
	}
	pressed := ev.Buttons()&tcell.Button1 != 0
	wasDown := app.button1Down
	app.button1Down = pressed
	if !pressed || wasDown {
		return true
	}
	if app.state.Search.Active || app.state.HelpVisible {
		return true
	}

	x, y := ev.Position()

	if app.state.Browser.Active {
		app.handleBrowserClick(y)
		return true
	}

	switch y {
	case statepkg.NameFieldRow:
		app.actionCh <- statepkg.FocusSetAction{Focus: statepkg.FocusName}
		return true
	case statepkg.TextFieldRow:
		app.actionCh <- statepkg.FocusSetAction{Focus: statepkg.FocusText}
		return true
	case statepkg.DirFieldRow:
		if start, end := renderui.BrowseHintBounds(app.state.ScreenWidth); end > start && x >= start && x < end {
			app.actionCh <- statepkg.BrowseStartAction{}
			return true
		}
		app.actionCh <- statepkg.FocusSetAction{Focus: statepkg.FocusDir}
		return true
	}

	bottomLimit := app.state.ScreenHeight - statepkg.FooterRows
	if y < statepkg.TableFirstRow || y >= bottomLimit {
		return true
	}
	row := y - statepkg.TableFirstRow
	idx := app.state.ScrollOffset + row
	if idx < 0 || idx >= len(app.state.Rows) {
		return true
	}

	doubleClick := app.registerClick(fmt.Sprintf("row-%d", idx))
	app.actionCh <- statepkg.SelectRowAction{Index: idx}
	if doubleClick {
		app.actionCh <- statepkg.OpenSelectedAction{}
	}
	return true
}

func (app *Application) handleBrowserClick(y int) {
	row := y - statepkg.BrowserFirstRow
	if row < 0 || row >= app.state.BrowserVisibleCount() {
		return
	}
	idx := app.state.Browser.ScrollOffset + row
	if idx >= len(app.state.BrowserRows()) {
		return
	}

	doubleClick := app.registerClick(fmt.Sprintf("browser-%s-%d", app.state.Browser.Path, idx))
	app.actionCh <- statepkg.BrowseSelectRowAction{Index: idx}
	if doubleClick {
		app.actionCh <- statepkg.BrowseEnterAction{}
	}
}

// registerClick records a click on key and reports whether it completes a
// double-click.
func (app *Application) registerClick(key string) bool {
	now := time.Now()
	doubleClick := app.lastClickKey == key && now.Sub(app.lastClickTime) <= doubleClickThreshold
	if doubleClick {
		// A third click starts a new pair.
		app.lastClickKey = ""
	} else {
		app.lastClickKey = key
	}
	app.lastClickTime = now
	return doubleClick
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	case statepkg.OpenSelectedAction:
		return app.handleOpenSelected()
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.state.LastError = err
	}
	return true
}

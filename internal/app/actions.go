package app

import (
	"fmt"
	"path/filepath"
)

func (app *Application) handleOpenSelected() bool {
	row := app.state.SelectedRow()
	if row == nil {
		return false
	}

	path := row.Path
	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	if err := app.openFile(path); err != nil {
		app.state.LastError = err
	} else {
		app.state.LastError = nil
	}
	return true
}

func (app *Application) openFile(path string) error {
	if app.openerErr != nil {
		return app.openerErr
	}
	args := append(append([]string{}, app.openerCmd...), path)
	if err := app.startCommand(args); err != nil {
		return fmt.Errorf("cannot open %s: %w", filepath.Base(path), err)
	}
	return nil
}

package main

import (
	"errors"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/cubeplanet/internal/config"
)

// The native dialogs block, so they run on a goroutine and hand the chosen
// path back to the main thread through app.pending.

type pathChoice struct {
	path string
	save bool
}

func (app *App) openFileDialog() {
	go func() {
		path, err := dialog.File().
			Filter("YAML", "yaml", "yml").
			Filter("All Files", "*").
			Title("Open Planet Config").
			Load()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				app.log.Warn("open dialog failed", zap.Error(err))
			}
			return
		}
		app.pending <- pathChoice{path: path}
	}()
}

func (app *App) saveFileDialog() {
	go func() {
		path, err := dialog.File().
			Filter("YAML", "yaml", "yml").
			Title("Save Planet Config").
			SetStartFile(config.FileName).
			Save()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				app.log.Warn("save dialog failed", zap.Error(err))
			}
			return
		}
		app.pending <- pathChoice{path: path, save: true}
	}()
}

func (app *App) handlePending() {
	select {
	case c := <-app.pending:
		if c.save {
			app.saveAs(c.path)
		} else {
			app.open(c.path)
		}
	default:
	}
}

// open replaces the edited planet with the one in path. Settings outside the
// planet section stay as they are for this session.
func (app *App) open(path string) {
	loaded, err := config.LoadFile(path)
	if err != nil {
		app.log.Warn("open failed", zap.String("path", path), zap.Error(err))
		app.setStatus("Open failed: %v", err)
		return
	}
	app.path = path
	app.edit = loaded.Planet.Clone()
	app.saved = loaded.Planet.Clone()
	app.regen.Force(app.edit)
	app.setStatus("Opened %s", path)
}

// saveAs writes the edited planet with the session's other settings.
func (app *App) saveAs(path string) {
	out := *app.cfg
	out.Planet = app.edit.Clone()
	if err := out.SaveTo(path); err != nil {
		app.log.Error("save failed", zap.String("path", path), zap.Error(err))
		app.setStatus("Save failed: %v", err)
		return
	}
	app.path = path
	app.saved = app.edit.Clone()
	app.log.Info("config saved", zap.String("path", path))
	app.setStatus("Saved %s", path)
}

func (app *App) save() {
	if app.path == "" {
		app.saveFileDialog()
		return
	}
	app.saveAs(app.path)
}

func (app *App) dirty() bool {
	return !app.edit.Equal(app.saved)
}

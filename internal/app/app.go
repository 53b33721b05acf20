// Package app defines the wallet application object: its identity and
// the GUI shell it drives.
package app

import (
	"runtime"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/romanz/electron/internal/gui"
	"github.com/romanz/electron/internal/logger"
)

const (
	Name    = "Electron Cash"
	ID      = "org.electroncash.electron"
	Version = "0.0.1"
)

// App encapsulates the wallet client. Wallet state, keys, and network
// synchronization live elsewhere; the shell only carries identity and
// the presentation layer.
type App struct {
	system string
	log    logger.Logger
	gui    *gui.GUI
}

// New constructs the application and its main window.
func New(log logger.Logger, width, height float32) *App {
	return newWith(fyneapp.NewWithID(ID), log, width, height)
}

func newWith(fyneApp fyne.App, log logger.Logger, width, height float32) *App {
	return &App{
		system: runtime.GOOS,
		log:    log,
		gui:    gui.New(fyneApp, log, width, height),
	}
}

// System reports the host operating system, e.g. "linux" or "darwin".
func (a *App) System() string {
	return a.system
}

// GUI returns the presentation layer.
func (a *App) GUI() *gui.GUI {
	return a.gui
}

// Run enters the GUI event loop and returns its exit status.
func (a *App) Run() (int, error) {
	a.log.Info("App", "entering event loop", map[string]interface{}{
		"system": a.system,
	})
	return a.gui.Run(), nil
}

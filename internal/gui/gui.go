// Package gui declares the client's main window: title, menu bar, and
// the static placeholder layout.
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/romanz/electron/internal/logger"
)

const (
	WindowTitle  = "Electron Cash"
	WindowWidth  = 640
	WindowHeight = 480
)

// GUI owns the main window and its declarative layout.
type GUI struct {
	app    fyne.App
	window fyne.Window
	log    logger.Logger
}

// New builds the main window on the given Fyne application. The window
// is not shown until Run.
func New(a fyne.App, log logger.Logger, width, height float32) *GUI {
	window := a.NewWindow(WindowTitle)
	window.Resize(fyne.NewSize(width, height))
	window.SetMaster()

	g := &GUI{
		app:    a,
		window: window,
		log:    log,
	}

	window.SetMainMenu(g.buildMainMenu())
	// The button is declarative-only; no action is wired yet.
	window.SetContent(container.NewCenter(widget.NewButton("New Wallet", nil)))

	return g
}

// Window returns the main window.
func (g *GUI) Window() fyne.Window {
	return g.window
}

// Run shows the main window and blocks in the event loop. The status
// code is 0 once the loop exits normally.
func (g *GUI) Run() int {
	g.window.ShowAndRun()
	return 0
}

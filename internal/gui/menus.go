package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

func (g *GUI) buildMainMenu() *fyne.MainMenu {
	newItem := fyne.NewMenuItem("New", g.handleNewWallet)
	newItem.Shortcut = &desktop.CustomShortcut{
		KeyName:  fyne.KeyN,
		Modifier: fyne.KeyModifierControl,
	}

	walletMenu := fyne.NewMenu("Wallet", newItem)

	return fyne.NewMainMenu(walletMenu)
}

// handleNewWallet is a placeholder until wallet creation lands; it only
// emits a diagnostic.
func (g *GUI) handleNewWallet() {
	g.log.Debug("GUI", "New action triggered", nil)
}

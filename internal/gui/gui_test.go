package gui

import (
	"bytes"
	"io"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romanz/electron/internal/logger"
)

func newTestGUI(logWriter io.Writer) *GUI {
	log := logger.NewZerolog(logWriter, zerolog.DebugLevel)
	return New(test.NewApp(), log, WindowWidth, WindowHeight)
}

func TestWindowDeclaration(t *testing.T) {
	g := newTestGUI(io.Discard)

	assert.Equal(t, "Electron Cash", g.Window().Title())
	require.NotNil(t, g.Window().Content())
}

func TestMainMenuStructure(t *testing.T) {
	g := newTestGUI(io.Discard)

	menu := g.Window().MainMenu()
	require.NotNil(t, menu)
	require.Len(t, menu.Items, 1)

	wallet := menu.Items[0]
	assert.Equal(t, "Wallet", wallet.Label)
	require.Len(t, wallet.Items, 1)

	item := wallet.Items[0]
	assert.Equal(t, "New", item.Label)

	shortcut, ok := item.Shortcut.(*desktop.CustomShortcut)
	require.True(t, ok)
	assert.Equal(t, fyne.KeyN, shortcut.KeyName)
	assert.Equal(t, fyne.KeyModifierControl, shortcut.Modifier)
}

func TestNewActionEmitsDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	g := newTestGUI(&buf)

	item := g.Window().MainMenu().Items[0].Items[0]
	item.Action()

	assert.Contains(t, buf.String(), "New action triggered")
}

package gui

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retro-clock/internal/gui/components"
	"retro-clock/internal/logger"
	"retro-clock/internal/settings"
)

type silentNotifier struct{}

func (silentNotifier) ShowInfo(string, string) {}
func (silentNotifier) ShowError(error)         {}

func newTestManager(t *testing.T, settingsJSON string) (*Manager, fyne.Window, error) {
	t.Helper()
	a := test.NewTempApp(t)
	window := a.NewWindow("")
	t.Cleanup(window.Close)

	path := filepath.Join(t.TempDir(), settings.DefaultFile)
	if settingsJSON != "" {
		require.NoError(t, os.WriteFile(path, []byte(settingsJSON), 0o644))
	}
	store := settings.NewStore(path, logger.Nop())
	ctx := components.NewContext(store, logger.Nop(), silentNotifier{})

	manager, err := NewManager(window, ctx)
	return manager, window, err
}

func TestManagerStartsOnClock(t *testing.T) {
	manager, _, err := newTestManager(t, "")
	require.NoError(t, err)

	assert.Equal(t, components.PanelClock, manager.Current())
	assert.Equal(t, []components.PanelID{components.PanelClock}, manager.Visible())
	assert.Equal(t, []components.PanelID{components.PanelClock, components.PanelSettings, components.PanelAlarm}, manager.Panels())
}

func TestManagerShowKeepsExactlyOneVisible(t *testing.T) {
	manager, _, err := newTestManager(t, "")
	require.NoError(t, err)

	for _, target := range manager.Panels() {
		manager.Show(target)
		assert.Equal(t, []components.PanelID{target}, manager.Visible(), "showing %s", target)
		assert.Equal(t, target, manager.Current())
	}
}

func TestManagerNavButtons(t *testing.T) {
	manager, _, err := newTestManager(t, "")
	require.NoError(t, err)

	assert.Equal(t, "Settings", manager.NavButton(components.PanelSettings).Text)
	test.Tap(manager.NavButton(components.PanelSettings))
	assert.Equal(t, []components.PanelID{components.PanelSettings}, manager.Visible())

	test.Tap(manager.NavButton(components.PanelAlarm))
	assert.Equal(t, []components.PanelID{components.PanelAlarm}, manager.Visible())

	test.Tap(manager.NavButton(components.PanelClock))
	assert.Equal(t, []components.PanelID{components.PanelClock}, manager.Visible())
}

func TestManagerIgnoresUnknownPanel(t *testing.T) {
	manager, _, err := newTestManager(t, "")
	require.NoError(t, err)

	manager.Show(components.PanelAlarm)
	manager.Show("bogus")
	assert.Equal(t, []components.PanelID{components.PanelAlarm}, manager.Visible())
}

func TestManagerAppliesWindowSettings(t *testing.T) {
	manager, window, err := newTestManager(t, `{
		"appearance": {},
		"clock": {"time_format": "24h", "show_date": true, "date_format": "%Y"},
		"window": {"title": "Test Clock", "width": 640, "height": 320, "resizable": false}
	}`)
	require.NoError(t, err)
	require.NotNil(t, manager)

	assert.Equal(t, "Test Clock", window.Title())
	assert.True(t, window.FixedSize())
}

func TestManagerFailsWithoutWindowSection(t *testing.T) {
	_, _, err := newTestManager(t, `{"clock": {"time_format": "24h", "show_date": true, "date_format": "%Y"}}`)

	var keyErr *settings.KeyError
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, settings.SectionWindow, keyErr.Section)
}

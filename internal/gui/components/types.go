package components

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"retro-clock/internal/logger"
	"retro-clock/internal/settings"
)

// PanelID names one of the swappable content panels.
type PanelID string

const (
	PanelClock    PanelID = "clock"
	PanelSettings PanelID = "settings"
	PanelAlarm    PanelID = "alarm"
)

// Panel is a content region that can be swapped into the main window.
type Panel interface {
	ID() PanelID
	Title() string
	GetContainer() fyne.CanvasObject
}

// Notifier shows modal messages to the user.
type Notifier interface {
	ShowInfo(title, message string)
	ShowError(err error)
}

type dialogNotifier struct {
	window fyne.Window
}

// NewDialogNotifier shows messages as dialogs over window.
func NewDialogNotifier(window fyne.Window) Notifier {
	return &dialogNotifier{window: window}
}

func (d *dialogNotifier) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, d.window)
}

func (d *dialogNotifier) ShowError(err error) {
	dialog.ShowError(err, d.window)
}

// Context is handed to every panel at construction. Snapshot is the
// configuration loaded once at startup; Refresh reads the store again.
type Context struct {
	Store    *settings.Store
	Snapshot settings.Config
	Logger   logger.Logger
	Notifier Notifier
	Now      func() time.Time
}

// NewContext loads the startup snapshot from store.
func NewContext(store *settings.Store, log logger.Logger, notifier Notifier) *Context {
	return &Context{
		Store:    store,
		Snapshot: store.Load(),
		Logger:   log,
		Notifier: notifier,
		Now:      time.Now,
	}
}

// Refresh returns the configuration currently on disk.
func (c *Context) Refresh() settings.Config {
	return c.Store.Load()
}

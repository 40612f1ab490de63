package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"retro-clock/internal/clock"
	"retro-clock/internal/gui"
	"retro-clock/internal/gui/components"
	"retro-clock/internal/logger"
	"retro-clock/internal/settings"
	"retro-clock/internal/shutdown"
)

const (
	AppName    = "Retro Clock"
	AppID      = "com.retroclock.desktop"
	AppVersion = "1.0.0"
)

// Options configures NewApplication.
type Options struct {
	SettingsPath string
	Logger       logger.Logger

	// Scheduler and Dispatch drive the clock ticks; nil means real timers
	// delivered through fyne.Do.
	Scheduler clock.Scheduler
	Dispatch  clock.Dispatcher
}

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	ticker     *clock.Repeater
	store      *settings.Store
	logger     logger.Logger
	lifecycle  *Lifecycle
}

// NewApplication builds the main window, its panels and the clock ticker.
// The ticker is created but not started; Run starts it.
func NewApplication(fyneApp fyne.App, opts Options) (*Application, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	dispatch := opts.Dispatch
	if dispatch == nil {
		dispatch = fyne.Do
	}

	window := fyneApp.NewWindow(AppName)
	window.SetMaster()

	store := settings.NewStore(opts.SettingsPath, log)
	ctx := components.NewContext(store, log, components.NewDialogNotifier(window))

	fyneApp.Settings().SetTheme(components.NewRetroTheme(components.AppearanceFrom(ctx.Snapshot)))

	log.Info("Application", "starting application", map[string]interface{}{
		"version":  AppVersion,
		"settings": store.Path(),
	})

	guiManager, err := gui.NewManager(window, ctx)
	if err != nil {
		window.Close()
		return nil, err
	}

	ticker := clock.NewRepeater(clock.Interval, guiManager.ClockPanel().Tick, opts.Scheduler, dispatch, log)

	shutdownManager := shutdown.NewManager(log)
	shutdownManager.Register(guiManager)
	shutdownManager.Register(ticker)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		ticker:     ticker,
		store:      store,
		logger:     log,
		lifecycle:  NewLifecycle(fyneApp, shutdownManager, log),
	}

	window.SetContent(guiManager.GetMainContainer())
	window.CenterOnScreen()

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

// Start shows the window and runs the first clock tick without entering the
// event loop.
func (a *Application) Start() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.Show()
	a.ticker.Start()
	a.logger.Info("Application", "GUI displayed", nil)
}

// Run starts the application and blocks in the fyne event loop.
func (a *Application) Run() error {
	a.lifecycle.ListenForSignals()
	a.Start()
	a.fyneApp.Run()
	a.lifecycle.Shutdown()
	return nil
}

func (a *Application) Manager() *gui.Manager {
	return a.guiManager
}

func (a *Application) Ticker() *clock.Repeater {
	return a.ticker
}

func (a *Application) Store() *settings.Store {
	return a.store
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) Shutdown() {
	a.lifecycle.Shutdown()
}

// ShowFatal displays err in its own window and quits the app once the dialog
// is dismissed. It blocks in the event loop.
func ShowFatal(fyneApp fyne.App, err error) {
	window := fyneApp.NewWindow(AppName + " - Error")
	window.Resize(fyne.NewSize(420, 160))

	d := dialog.NewError(err, window)
	d.SetOnClosed(fyneApp.Quit)
	window.SetOnClosed(fyneApp.Quit)

	window.Show()
	d.Show()
	fyneApp.Run()
}

package app

import (
	"sync"

	"fyne.io/fyne/v2"

	"retro-clock/internal/logger"
	"retro-clock/internal/shutdown"
)

type Lifecycle struct {
	fyneApp  fyne.App
	shutdown *shutdown.Manager
	logger   logger.Logger
	once     sync.Once
}

func NewLifecycle(fyneApp fyne.App, sm *shutdown.Manager, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		fyneApp:  fyneApp,
		shutdown: sm,
		logger:   log,
	}
}

// ListenForSignals quits the event loop on SIGINT/SIGTERM after stopping
// the registered components.
func (l *Lifecycle) ListenForSignals() {
	l.shutdown.Listen(func() {
		fyne.Do(l.fyneApp.Quit)
	})
}

func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)
		l.shutdown.Shutdown()
		l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
	})
}

func (l *Lifecycle) Done() <-chan struct{} {
	return l.shutdown.Done()
}

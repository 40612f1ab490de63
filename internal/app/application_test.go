package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retro-clock/internal/clock"
	"retro-clock/internal/gui/components"
	"retro-clock/internal/settings"
)

type manualTimer struct {
	f       func()
	stopped bool
}

func (m *manualTimer) Stop() bool {
	was := !m.stopped
	m.stopped = true
	return was
}

type manualScheduler struct {
	timers []*manualTimer
}

func (s *manualScheduler) AfterFunc(_ time.Duration, f func()) clock.Timer {
	timer := &manualTimer{f: f}
	s.timers = append(s.timers, timer)
	return timer
}

func (s *manualScheduler) pending() int {
	n := 0
	for _, timer := range s.timers {
		if !timer.stopped {
			n++
		}
	}
	return n
}

func (s *manualScheduler) fire() {
	for _, timer := range s.timers {
		if !timer.stopped {
			timer.stopped = true
			timer.f()
			return
		}
	}
}

func direct(f func()) { f() }

func newTestApplication(t *testing.T, settingsJSON string) (*Application, *manualScheduler, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), settings.DefaultFile)
	if settingsJSON != "" {
		require.NoError(t, os.WriteFile(path, []byte(settingsJSON), 0o644))
	}

	sched := &manualScheduler{}
	application, err := NewApplication(test.NewTempApp(t), Options{
		SettingsPath: path,
		Scheduler:    sched,
		Dispatch:     direct,
	})
	return application, sched, err
}

func TestApplicationStartTicksClock(t *testing.T) {
	application, sched, err := newTestApplication(t, "")
	require.NoError(t, err)

	application.Start()
	assert.NotEmpty(t, application.Manager().ClockPanel().TimeText())
	assert.Equal(t, 1, sched.pending())
	assert.Equal(t, "Reloj Retro 1980's", application.Window().Title())

	sched.fire()
	assert.Equal(t, 2, application.Ticker().Ticks())

	application.Shutdown()
	assert.Equal(t, 0, sched.pending())
}

func TestApplicationClockHaltsOnTickFailure(t *testing.T) {
	application, sched, err := newTestApplication(t, `{
		"appearance": {},
		"clock": {"time_format": "24h", "show_date": true},
		"window": {"title": "t", "width": 300, "height": 200, "resizable": true}
	}`)
	require.NoError(t, err)

	application.Start()
	assert.True(t, application.Ticker().Halted())
	assert.Equal(t, 0, sched.pending())
}

func TestApplicationClockHaltsOnBadDateFormat(t *testing.T) {
	application, sched, err := newTestApplication(t, "")
	require.NoError(t, err)
	application.Start()
	require.Equal(t, 1, sched.pending())
	assert.Nil(t, application.Window().Canvas().Overlays().Top())

	require.True(t, application.Store().Update(settings.SectionClock, "date_format", "%Q"))
	sched.fire()

	assert.True(t, application.Ticker().Halted())
	assert.Equal(t, 0, sched.pending())
	assert.NotNil(t, application.Window().Canvas().Overlays().Top(), "error dialog shown")

	sched.fire()
	assert.Equal(t, 1, application.Ticker().Ticks())
}

func TestApplicationSettingsReachClockOnNextTick(t *testing.T) {
	application, sched, err := newTestApplication(t, "")
	require.NoError(t, err)
	application.Start()

	manager := application.Manager()
	manager.Show(components.PanelSettings)
	manager.SettingsPanel().ToggleDate()
	assert.NotEmpty(t, manager.ClockPanel().DateText())

	sched.fire()
	assert.Empty(t, manager.ClockPanel().DateText())
	application.Shutdown()
}

func TestNewApplicationReportsWindowFailure(t *testing.T) {
	_, _, err := newTestApplication(t, `{"clock": {"time_format": "24h", "show_date": false, "date_format": ""}}`)
	require.Error(t, err)
}

package clock

import (
	"sync"
	"time"

	"retro-clock/internal/logger"
)

// Interval is the nominal time between ticks.
const Interval = 1000 * time.Millisecond

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler schedules with the runtime timer.
type RealScheduler struct{}

func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Dispatcher moves work onto the UI thread, e.g. fyne.Do.
type Dispatcher func(func())

// TickFunc performs one refresh. A non-nil error ends the schedule.
type TickFunc func() error

// Repeater runs a tick immediately and then again after every interval for as
// long as ticks succeed. A failed tick is never rescheduled.
type Repeater struct {
	interval  time.Duration
	tick      TickFunc
	scheduler Scheduler
	dispatch  Dispatcher
	logger    logger.Logger

	mu      sync.Mutex
	pending Timer
	stopped bool
	halted  bool
	ticks   int
}

// NewRepeater builds a stopped repeater. Nil scheduler and dispatch mean
// RealScheduler and a direct call.
func NewRepeater(interval time.Duration, tick TickFunc, scheduler Scheduler, dispatch Dispatcher, log logger.Logger) *Repeater {
	if scheduler == nil {
		scheduler = RealScheduler{}
	}
	if dispatch == nil {
		dispatch = func(f func()) { f() }
	}
	return &Repeater{
		interval:  interval,
		tick:      tick,
		scheduler: scheduler,
		dispatch:  dispatch,
		logger:    log,
	}
}

// Start runs the first tick on the calling goroutine.
func (r *Repeater) Start() {
	r.run()
}

func (r *Repeater) run() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.pending = nil
	r.mu.Unlock()

	if err := r.tick(); err != nil {
		r.mu.Lock()
		r.halted = true
		r.mu.Unlock()
		r.logger.Error("Repeater", err, map[string]interface{}{
			"ticks": r.Ticks(),
		})
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks++
	if r.stopped {
		return
	}
	r.pending = r.scheduler.AfterFunc(r.interval, func() {
		r.dispatch(r.run)
	})
}

// Stop cancels the pending tick. It is safe to call more than once.
func (r *Repeater) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopped = true
	if r.pending != nil {
		r.pending.Stop()
		r.pending = nil
	}
}

// Shutdown satisfies shutdown.Shutdownable.
func (r *Repeater) Shutdown() {
	r.Stop()
}

// Halted reports whether a tick failed and ended the schedule.
func (r *Repeater) Halted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.halted
}

// Ticks returns the number of successful ticks.
func (r *Repeater) Ticks() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ticks
}

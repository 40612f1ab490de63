package components

import (
	"path/filepath"
	"testing"
	"time"

	"retro-clock/internal/logger"
	"retro-clock/internal/settings"
)

type message struct {
	title string
	text  string
}

type recordingNotifier struct {
	infos  []message
	errors []error
}

func (r *recordingNotifier) ShowInfo(title, text string) {
	r.infos = append(r.infos, message{title: title, text: text})
}

func (r *recordingNotifier) ShowError(err error) {
	r.errors = append(r.errors, err)
}

var fixedNow = time.Date(2024, time.March, 15, 13, 5, 9, 0, time.Local)

func newTestContext(t *testing.T) (*Context, *recordingNotifier) {
	t.Helper()
	notifier := &recordingNotifier{}
	store := settings.NewStore(filepath.Join(t.TempDir(), settings.DefaultFile), logger.Nop())
	ctx := NewContext(store, logger.Nop(), notifier)
	ctx.Now = func() time.Time { return fixedNow }
	return ctx, notifier
}

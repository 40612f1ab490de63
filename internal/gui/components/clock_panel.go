package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"retro-clock/internal/clock"
)

// ClockPanel shows the current time and, optionally, the date.
type ClockPanel struct {
	ctx       *Context
	container *fyne.Container
	timeText  *canvas.Text
	dateText  *canvas.Text
}

func NewClockPanel(ctx *Context) *ClockPanel {
	p := &ClockPanel{ctx: ctx}
	p.createComponents()
	p.buildLayout()
	return p
}

func (p *ClockPanel) createComponents() {
	look := AppearanceFrom(p.ctx.Snapshot)

	p.timeText = canvas.NewText("", look.Text)
	p.timeText.TextSize = look.FontSize
	p.timeText.TextStyle = fyne.TextStyle{Monospace: look.Monospace, Bold: true}
	p.timeText.Alignment = fyne.TextAlignCenter

	p.dateText = canvas.NewText("", look.Text)
	p.dateText.TextSize = look.FontSize / 2
	p.dateText.TextStyle = fyne.TextStyle{Monospace: look.Monospace}
	p.dateText.Alignment = fyne.TextAlignCenter
}

func (p *ClockPanel) buildLayout() {
	p.container = container.NewCenter(container.NewVBox(p.timeText, p.dateText))
}

func (p *ClockPanel) ID() PanelID { return PanelClock }

func (p *ClockPanel) Title() string { return "Clock" }

func (p *ClockPanel) GetContainer() fyne.CanvasObject {
	return p.container
}

// Tick reloads the settings and redraws the face. A failure is shown to the
// user and returned so the caller stops scheduling further ticks.
func (p *ClockPanel) Tick() error {
	face, err := clock.Render(p.ctx.Now(), p.ctx.Refresh())
	if err != nil {
		err = fmt.Errorf("failed to update time: %w", err)
		p.ctx.Notifier.ShowError(err)
		return err
	}

	p.timeText.Text = face.Time
	p.timeText.Refresh()
	p.dateText.Text = face.Date
	p.dateText.Refresh()
	return nil
}

// TimeText returns the displayed time.
func (p *ClockPanel) TimeText() string {
	return p.timeText.Text
}

// DateText returns the displayed date, empty while the date is hidden.
func (p *ClockPanel) DateText() string {
	return p.dateText.Text
}

package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// AlarmPanel takes an alarm time and confirms it. Nothing is stored or
// scheduled.
type AlarmPanel struct {
	ctx       *Context
	container *fyne.Container

	Entry     *widget.Entry
	SetButton *widget.Button
}

func NewAlarmPanel(ctx *Context) *AlarmPanel {
	p := &AlarmPanel{ctx: ctx}
	p.createComponents()
	p.buildLayout()
	return p
}

func (p *AlarmPanel) createComponents() {
	p.Entry = widget.NewEntry()
	p.Entry.SetPlaceHolder("HH:MM")
	p.Entry.OnSubmitted = func(string) { p.Submit() }
	p.SetButton = widget.NewButton("Set Alarm", p.Submit)
}

func (p *AlarmPanel) buildLayout() {
	title := widget.NewLabelWithStyle("Alarm", fyne.TextAlignCenter, fyne.TextStyle{Bold: true, Monospace: true})
	row := container.NewBorder(nil, nil, widget.NewLabel("Set Alarm (HH:MM):"), p.SetButton, p.Entry)

	p.container = container.NewVBox(title, widget.NewSeparator(), row)
}

func (p *AlarmPanel) ID() PanelID { return PanelAlarm }

func (p *AlarmPanel) Title() string { return "Alarm" }

func (p *AlarmPanel) GetContainer() fyne.CanvasObject {
	return p.container
}

// Submit echoes the entered text back verbatim.
func (p *AlarmPanel) Submit() {
	alarm := p.Entry.Text
	p.ctx.Logger.Debug("AlarmPanel", "alarm submitted", map[string]interface{}{
		"alarm": alarm,
	})
	p.ctx.Notifier.ShowInfo("Alarm", "Alarm set for "+alarm)
}

package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"retro-clock/internal/settings"
)

// SettingsPanel edits the clock section of the settings file. Its displayed
// values start from the startup snapshot and then only track its own edits.
type SettingsPanel struct {
	ctx       *Context
	container *fyne.Container

	timeFormat string
	showDate   bool

	Button24h    *widget.Button
	Button12h    *widget.Button
	ToggleButton *widget.Button
	statusLabel  *widget.Label
}

// NewSettingsPanel fails when the snapshot lacks the clock keys it displays.
func NewSettingsPanel(ctx *Context) (*SettingsPanel, error) {
	timeFormat, err := ctx.Snapshot.String(settings.SectionClock, "time_format")
	if err != nil {
		return nil, fmt.Errorf("settings panel: %w", err)
	}
	showDate, err := ctx.Snapshot.Bool(settings.SectionClock, "show_date")
	if err != nil {
		return nil, fmt.Errorf("settings panel: %w", err)
	}

	p := &SettingsPanel{
		ctx:        ctx,
		timeFormat: timeFormat,
		showDate:   showDate,
	}
	p.createComponents()
	p.buildLayout()
	p.updateStatus()
	return p, nil
}

func (p *SettingsPanel) createComponents() {
	p.Button24h = widget.NewButton(settings.TimeFormat24h, func() { p.SetTimeFormat(settings.TimeFormat24h) })
	p.Button12h = widget.NewButton(settings.TimeFormat12h, func() { p.SetTimeFormat(settings.TimeFormat12h) })
	p.ToggleButton = widget.NewButton("Toggle Date", p.ToggleDate)
	p.statusLabel = widget.NewLabel("")
}

func (p *SettingsPanel) buildLayout() {
	title := widget.NewLabelWithStyle("Settings", fyne.TextAlignCenter, fyne.TextStyle{Bold: true, Monospace: true})

	formatRow := container.NewHBox(widget.NewLabel("Time Format:"), p.Button24h, p.Button12h)
	dateRow := container.NewHBox(widget.NewLabel("Show Date:"), p.ToggleButton)

	p.container = container.NewVBox(
		title,
		widget.NewSeparator(),
		formatRow,
		dateRow,
		p.statusLabel,
	)
}

func (p *SettingsPanel) ID() PanelID { return PanelSettings }

func (p *SettingsPanel) Title() string { return "Settings" }

func (p *SettingsPanel) GetContainer() fyne.CanvasObject {
	return p.container
}

// SetTimeFormat persists an absolute time format.
func (p *SettingsPanel) SetTimeFormat(format string) {
	p.ctx.Store.Update(settings.SectionClock, "time_format", format)
	p.timeFormat = format
	p.updateStatus()

	p.ctx.Logger.Info("SettingsPanel", "time format changed", map[string]interface{}{
		"time_format": format,
	})
}

// ToggleDate flips the locally tracked show_date value and persists it.
func (p *SettingsPanel) ToggleDate() {
	next := !p.showDate
	p.ctx.Store.Update(settings.SectionClock, "show_date", next)
	p.showDate = next
	p.updateStatus()

	p.ctx.Logger.Info("SettingsPanel", "date display toggled", map[string]interface{}{
		"show_date": next,
	})
}

func (p *SettingsPanel) TimeFormat() string { return p.timeFormat }

func (p *SettingsPanel) ShowDate() bool { return p.showDate }

func (p *SettingsPanel) Status() string { return p.statusLabel.Text }

func (p *SettingsPanel) updateStatus() {
	date := "off"
	if p.showDate {
		date = "on"
	}
	p.statusLabel.SetText(fmt.Sprintf("Format: %s  Date: %s", p.timeFormat, date))
}

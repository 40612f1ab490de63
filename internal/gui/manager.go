package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"retro-clock/internal/gui/components"
	"retro-clock/internal/logger"
	"retro-clock/internal/settings"
)

// Manager owns the main window layout: every panel stacked in one container,
// exactly one visible, and a navigation bar to switch between them.
type Manager struct {
	window     fyne.Window
	ctx        *components.Context
	logger     logger.Logger
	isShutdown bool

	clockPanel    *components.ClockPanel
	settingsPanel *components.SettingsPanel
	alarmPanel    *components.AlarmPanel

	order      []components.PanelID
	panels     map[components.PanelID]components.Panel
	navButtons map[components.PanelID]*widget.Button
	current    components.PanelID

	stack  *fyne.Container
	navBar *fyne.Container
}

// NewManager configures window from the settings file and builds all panels.
func NewManager(window fyne.Window, ctx *components.Context) (*Manager, error) {
	manager := &Manager{
		window:     window,
		ctx:        ctx,
		logger:     ctx.Logger,
		panels:     make(map[components.PanelID]components.Panel),
		navButtons: make(map[components.PanelID]*widget.Button),
	}

	if err := manager.setupWindow(); err != nil {
		return nil, err
	}
	if err := manager.setupPanels(); err != nil {
		return nil, err
	}
	manager.setupNavigation()
	manager.Show(components.PanelClock)

	manager.logger.Info("GUIManager", "initialized", map[string]interface{}{
		"panels": len(manager.order),
	})
	return manager, nil
}

func (m *Manager) setupWindow() error {
	cfg := m.ctx.Store.Load()

	title, err := cfg.String(settings.SectionWindow, "title")
	if err != nil {
		return fmt.Errorf("window setup: %w", err)
	}
	width, err := cfg.Int(settings.SectionWindow, "width")
	if err != nil {
		return fmt.Errorf("window setup: %w", err)
	}
	height, err := cfg.Int(settings.SectionWindow, "height")
	if err != nil {
		return fmt.Errorf("window setup: %w", err)
	}
	resizable, err := cfg.Bool(settings.SectionWindow, "resizable")
	if err != nil {
		return fmt.Errorf("window setup: %w", err)
	}

	m.window.SetTitle(title)
	m.window.Resize(fyne.NewSize(float32(width), float32(height)))
	m.window.SetFixedSize(!resizable)
	return nil
}

func (m *Manager) setupPanels() error {
	m.clockPanel = components.NewClockPanel(m.ctx)

	settingsPanel, err := components.NewSettingsPanel(m.ctx)
	if err != nil {
		return err
	}
	m.settingsPanel = settingsPanel
	m.alarmPanel = components.NewAlarmPanel(m.ctx)

	m.stack = container.NewStack()
	for _, panel := range []components.Panel{m.clockPanel, m.settingsPanel, m.alarmPanel} {
		m.order = append(m.order, panel.ID())
		m.panels[panel.ID()] = panel

		content := panel.GetContainer()
		content.Hide()
		m.stack.Add(content)
	}
	return nil
}

func (m *Manager) setupNavigation() {
	m.navBar = container.NewHBox()
	for _, id := range m.order {
		target := id
		button := widget.NewButton(m.panels[id].Title(), func() { m.Show(target) })
		m.navButtons[id] = button
		m.navBar.Add(button)
	}
}

// Show hides every panel and then shows target. Unknown ids are ignored.
func (m *Manager) Show(target components.PanelID) {
	panel, ok := m.panels[target]
	if !ok {
		m.logger.Warning("GUIManager", "unknown panel", map[string]interface{}{
			"panel": string(target),
		})
		return
	}

	for _, id := range m.order {
		m.panels[id].GetContainer().Hide()
		m.navButtons[id].Importance = widget.MediumImportance
	}
	panel.GetContainer().Show()
	if button, ok := m.navButtons[target]; ok {
		button.Importance = widget.HighImportance
	}
	m.current = target

	for _, button := range m.navButtons {
		button.Refresh()
	}
	m.logger.Debug("GUIManager", "panel shown", map[string]interface{}{
		"panel": string(target),
	})
}

// Current returns the visible panel.
func (m *Manager) Current() components.PanelID {
	return m.current
}

// Visible lists the panels currently shown, in navigation order.
func (m *Manager) Visible() []components.PanelID {
	var visible []components.PanelID
	for _, id := range m.order {
		if m.panels[id].GetContainer().Visible() {
			visible = append(visible, id)
		}
	}
	return visible
}

// Panels returns the panel ids in navigation order.
func (m *Manager) Panels() []components.PanelID {
	return append([]components.PanelID(nil), m.order...)
}

func (m *Manager) NavButton(id components.PanelID) *widget.Button {
	return m.navButtons[id]
}

func (m *Manager) ClockPanel() *components.ClockPanel {
	return m.clockPanel
}

func (m *Manager) SettingsPanel() *components.SettingsPanel {
	return m.settingsPanel
}

func (m *Manager) AlarmPanel() *components.AlarmPanel {
	return m.alarmPanel
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return container.NewBorder(nil, container.NewCenter(m.navBar), nil, nil, m.stack)
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}

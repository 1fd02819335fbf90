// Package tui provides a live terminal preview of the resolved
// schedule. The config file is watched and the view reloads on change.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rselvaraju/ganttgen/pkg/config"
	"github.com/rselvaraju/ganttgen/pkg/schedule"
)

// ConfigChangedMsg is sent when the file watcher sees the config change.
type ConfigChangedMsg struct{}

// scheduleLoadedMsg carries a freshly resolved schedule.
type scheduleLoadedMsg struct {
	title    string
	window   schedule.Window
	rows     []schedule.Resolved
	warnings []string
}

// loadFailedMsg reports a config or resolution error. The previous good
// schedule stays on screen.
type loadFailedMsg struct {
	err error
}

// Model is the Bubble Tea model for the schedule preview.
type Model struct {
	path   string
	keys   KeyMap
	width  int
	height int

	title    string
	window   schedule.Window
	rows     []schedule.Resolved
	warnings []string
	err      error

	cursor   int
	loaded   bool
	showHelp bool
}

// NewModel creates a preview model for the given config path.
func NewModel(path string) Model {
	return Model{
		path: path,
		keys: DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), loadSchedule(m.path))
}

// loadSchedule reads and resolves the config off the event loop.
func loadSchedule(path string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.Load(path)
		if err != nil {
			return loadFailedMsg{err: err}
		}

		var warnings []string
		rows, err := schedule.Resolve(cfg.Window(), cfg.ScheduleTasks(), func(msg string) {
			warnings = append(warnings, msg)
		})
		if err != nil {
			return loadFailedMsg{err: err}
		}

		return scheduleLoadedMsg{
			title:    cfg.Project.Title,
			window:   cfg.Window(),
			rows:     rows,
			warnings: warnings,
		}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case scheduleLoadedMsg:
		m.title = msg.title
		m.window = msg.window
		m.rows = msg.rows
		m.warnings = msg.warnings
		m.err = nil
		m.loaded = true
		if m.cursor >= len(m.rows) {
			m.cursor = len(m.rows) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case loadFailedMsg:
		m.err = msg.err
		return m, nil

	case ConfigChangedMsg:
		return m, loadSchedule(m.path)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reload):
			return m, loadSchedule(m.path)
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	return m, nil
}

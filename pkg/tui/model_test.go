package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rselvaraju/ganttgen/pkg/schedule"
)

func loadedModel(t *testing.T) Model {
	t.Helper()
	w := schedule.Window{
		Start: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	rows, err := schedule.Resolve(w, []schedule.Task{
		{Name: "Lit Review", Duration: "3"},
		{Name: "Pilot", Duration: schedule.SpanToEndLiteral},
	}, nil)
	require.NoError(t, err)

	m := NewModel("gantt_config.yaml")
	updated, _ := m.Update(scheduleLoadedMsg{
		title:  "Thesis",
		window: w,
		rows:   rows,
	})
	model := updated.(Model)
	updated, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func TestModelViewShowsTasks(t *testing.T) {
	m := loadedModel(t)
	view := m.View()

	assert.Contains(t, view, "Thesis")
	assert.Contains(t, view, "Lit Review")
	assert.Contains(t, view, "Pilot")
	assert.Contains(t, view, "01 Feb")
}

func TestModelCursorMovement(t *testing.T) {
	m := loadedModel(t)
	assert.Equal(t, 0, m.cursor)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	assert.Equal(t, 1, m.cursor)

	// Clamped at the last row.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	assert.Equal(t, 1, m.cursor)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestModelQuit(t *testing.T) {
	m := loadedModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModelLoadFailureKeepsSchedule(t *testing.T) {
	m := loadedModel(t)
	updated, _ := m.Update(loadFailedMsg{err: assert.AnError})
	m = updated.(Model)

	view := m.View()
	assert.Contains(t, view, "Lit Review") // previous schedule still shown
	assert.Contains(t, view, assert.AnError.Error())
}

func TestBarLine(t *testing.T) {
	domainStart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r := schedule.Resolved{
		Start: time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 21, 0, 0, 0, 0, time.UTC),
	}

	line := barLine(r, domainStart, 40, 40)
	assert.Len(t, []rune(line), 40)
	assert.Equal(t, strings.Repeat(" ", 10)+strings.Repeat("█", 10)+strings.Repeat(" ", 20), line)
}

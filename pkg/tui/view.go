package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/rselvaraju/ganttgen/pkg/schedule"
)

const dateFormat = "02 Jan 2006"

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.helpView()
	}

	var b strings.Builder

	if m.loaded {
		b.WriteString(TitleStyle.Render(m.title))
		b.WriteString("  ")
		b.WriteString(WindowStyle.Render(fmt.Sprintf("%s → %s",
			m.window.Start.Format(dateFormat), m.window.End.Format(dateFormat))))
		b.WriteString("\n\n")
		b.WriteString(m.ganttView())
	} else if m.err == nil {
		b.WriteString(WindowStyle.Render("Loading " + m.path + "..."))
		b.WriteString("\n")
	}

	for _, w := range m.warnings {
		b.WriteString(WarningStyle.Render("warning: " + w))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(ErrorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(FooterStyle.Render(m.keys.ShortHelp()))
	return b.String()
}

// ganttView renders one line per task: name, scaled bar, date range.
func (m Model) ganttView() string {
	nameWidth := 0
	for _, r := range m.rows {
		if len(r.Name) > nameWidth {
			nameWidth = len(r.Name)
		}
	}

	// Bars are scaled into whatever width remains after the name column
	// and the trailing date label.
	barWidth := m.width - nameWidth - 40
	if barWidth < 10 {
		barWidth = 10
	}

	domainStart := m.window.Start
	domainDays := m.window.Days()
	if domainDays < 1 {
		domainDays = 1
	}

	var b strings.Builder
	for i, r := range m.rows {
		nameStyle, barStyle := TaskNameStyle, BarStyle
		prefix := "  "
		if i == m.cursor {
			nameStyle, barStyle = SelectedNameStyle, SelectedBarStyle
			prefix = "> "
		}

		b.WriteString(prefix)
		b.WriteString(nameStyle.Render(padRight(r.Name, nameWidth)))
		b.WriteString(" ")
		b.WriteString(barStyle.Render(barLine(r, domainStart, domainDays, barWidth)))
		b.WriteString(" ")
		b.WriteString(DateStyle.Render(fmt.Sprintf("%s - %s (%dd)",
			r.Start.Format("02 Jan"), r.End.Format("02 Jan"), r.Days)))
		b.WriteString("\n")
	}
	return b.String()
}

// barLine projects a resolved task onto a fixed-width row of cells.
// Out-of-window intervals are clamped to the edges.
func barLine(r schedule.Resolved, domainStart time.Time, domainDays, width int) string {
	cell := func(t time.Time) int {
		days := int(t.Sub(domainStart) / (24 * time.Hour))
		c := days * width / domainDays
		if c < 0 {
			c = 0
		}
		if c > width {
			c = width
		}
		return c
	}

	start, end := cell(r.Start), cell(r.End)
	if end <= start {
		// Zero-length tasks still get one visible cell.
		end = start + 1
		if end > width {
			start, end = width-1, width
		}
	}

	return strings.Repeat(" ", start) +
		strings.Repeat("█", end-start) +
		strings.Repeat(" ", width-end)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func (m Model) helpView() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Help"))
	b.WriteString("\n\n")
	for _, row := range m.keys.FullHelp() {
		b.WriteString(fmt.Sprintf("  %-8s %s\n", row[0], row[1]))
	}
	b.WriteString("\n")
	b.WriteString(FooterStyle.Render("? close help"))
	return b.String()
}

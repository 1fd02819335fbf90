// Package chart renders the resolved schedule as a raster Gantt image.
package chart

import (
	"time"

	"github.com/rselvaraju/ganttgen/pkg/schedule"
)

// Figure proportions, in inches. Pixel dimensions scale with DPI.
const (
	figWidthIn  = 15.0
	figHeightIn = 6.0
)

// Margins as fractions of the canvas.
const (
	marginLeft   = 0.16 // room for task labels
	marginRight  = 0.02
	marginTop    = 0.10 // room for the title
	marginBottom = 0.10 // room for month and date labels
)

const barHeightFrac = 0.8

// insideLabelDays is the bar length beyond which the date-range label is
// drawn inside the bar instead of to its right.
const insideLabelDays = 40

// Layout maps dates and task rows onto canvas coordinates. The plotted
// domain runs from the first day of the project start month to three
// weeks past the project end, matching the breathing room the chart
// needs for trailing labels.
type Layout struct {
	DomainStart time.Time
	DomainEnd   time.Time

	Width  int
	Height int

	PlotLeft   float64
	PlotRight  float64
	PlotTop    float64
	PlotBottom float64

	rows int
}

// NewLayout computes the canvas geometry for a window, DPI, and task count.
func NewLayout(w schedule.Window, dpi, rows int) Layout {
	width := int(figWidthIn * float64(dpi))
	height := int(figHeightIn * float64(dpi))

	l := Layout{
		DomainStart: firstOfMonth(w.Start),
		DomainEnd:   w.End.AddDate(0, 0, 21),
		Width:       width,
		Height:      height,
		PlotLeft:    float64(width) * marginLeft,
		PlotRight:   float64(width) * (1 - marginRight),
		PlotTop:     float64(height) * marginTop,
		PlotBottom:  float64(height) * (1 - marginBottom),
		rows:        rows,
	}
	return l
}

// X maps a date to a horizontal pixel position.
func (l Layout) X(t time.Time) float64 {
	domain := l.DomainEnd.Sub(l.DomainStart)
	if domain <= 0 {
		return l.PlotLeft
	}
	frac := float64(t.Sub(l.DomainStart)) / float64(domain)
	return l.PlotLeft + frac*(l.PlotRight-l.PlotLeft)
}

// RowY returns the vertical center of row i. Rows run top to bottom in
// task order.
func (l Layout) RowY(i int) float64 {
	return l.PlotTop + (float64(i)+0.5)*l.RowHeight()
}

// RowHeight returns the vertical space allotted to each task row.
func (l Layout) RowHeight() float64 {
	if l.rows == 0 {
		return l.PlotBottom - l.PlotTop
	}
	return (l.PlotBottom - l.PlotTop) / float64(l.rows)
}

// BarHeight returns the drawn thickness of a task bar.
func (l Layout) BarHeight() float64 {
	return l.RowHeight() * barHeightFrac
}

// monthSpan is one calendar-month background band.
type monthSpan struct {
	Start time.Time
	End   time.Time
}

// MonthSpans returns the calendar-month bands inside the plotted domain.
// Bands lie between consecutive month starts; the stretch after the last
// month start is left unbanded, like the stretch before the first.
func (l Layout) MonthSpans() []monthSpan {
	var spans []monthSpan
	m := firstOfMonth(l.DomainStart)
	if m.Before(l.DomainStart) {
		m = m.AddDate(0, 1, 0)
	}
	for {
		next := m.AddDate(0, 1, 0)
		if next.After(l.DomainEnd) {
			break
		}
		spans = append(spans, monthSpan{Start: m, End: next})
		m = next
	}
	return spans
}

// MonthLabel formats a band's label. Short form avoids overlap on long
// projects.
func MonthLabel(t time.Time, short bool) string {
	if short {
		return t.Format("Jan '06")
	}
	return t.Format("January '06")
}

// UseShortMonthLabels reports whether the domain has too many months for
// the long label form.
func (l Layout) UseShortMonthLabels() bool {
	return len(l.MonthSpans()) > 10
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

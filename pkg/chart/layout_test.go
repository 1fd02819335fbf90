package chart

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rselvaraju/ganttgen/pkg/schedule"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testWindow() schedule.Window {
	return schedule.Window{Start: date(2026, time.February, 15), End: date(2026, time.May, 1)}
}

func TestNewLayoutDomain(t *testing.T) {
	l := NewLayout(testWindow(), 100, 3)

	// Domain snaps back to the first of the start month and extends
	// three weeks past the project end.
	assert.Equal(t, date(2026, time.February, 1), l.DomainStart)
	assert.Equal(t, date(2026, time.May, 22), l.DomainEnd)

	assert.Equal(t, 1500, l.Width)
	assert.Equal(t, 600, l.Height)
}

func TestLayoutXMapping(t *testing.T) {
	l := NewLayout(testWindow(), 100, 3)

	assert.InDelta(t, l.PlotLeft, l.X(l.DomainStart), 0.001)
	assert.InDelta(t, l.PlotRight, l.X(l.DomainEnd), 0.001)

	// Monotonic in between.
	a := l.X(date(2026, time.March, 1))
	b := l.X(date(2026, time.April, 1))
	assert.Less(t, a, b)
	assert.Greater(t, a, l.PlotLeft)
	assert.Less(t, b, l.PlotRight)
}

func TestLayoutRows(t *testing.T) {
	l := NewLayout(testWindow(), 100, 4)

	assert.Greater(t, l.RowY(0), l.PlotTop)
	assert.Less(t, l.RowY(3), l.PlotBottom)
	assert.Less(t, l.RowY(0), l.RowY(1))
	assert.InDelta(t, l.RowHeight(), l.RowY(1)-l.RowY(0), 0.001)
	assert.InDelta(t, l.RowHeight()*barHeightFrac, l.BarHeight(), 0.001)
}

func TestMonthSpans(t *testing.T) {
	l := NewLayout(testWindow(), 100, 3)
	spans := l.MonthSpans()

	// Feb, Mar, Apr are whole months inside the domain; the partial May
	// stretch gets no band.
	require.Len(t, spans, 3)
	assert.Equal(t, date(2026, time.February, 1), spans[0].Start)
	assert.Equal(t, date(2026, time.March, 1), spans[0].End)
	assert.Equal(t, date(2026, time.April, 1), spans[2].Start)
	assert.Equal(t, date(2026, time.May, 1), spans[2].End)
}

func TestMonthLabels(t *testing.T) {
	assert.Equal(t, "February '26", MonthLabel(date(2026, time.February, 1), false))
	assert.Equal(t, "Feb '26", MonthLabel(date(2026, time.February, 1), true))

	short := NewLayout(testWindow(), 100, 3)
	assert.False(t, short.UseShortMonthLabels())

	long := NewLayout(schedule.Window{
		Start: date(2026, time.January, 1),
		End:   date(2027, time.June, 1),
	}, 100, 3)
	assert.True(t, long.UseShortMonthLabels())
}

func TestRenderWritesPNG(t *testing.T) {
	w := testWindow()
	tasks, err := schedule.Resolve(w, []schedule.Task{
		{Name: "Literature Review", Duration: "3"},
		{Name: "Writing", Duration: schedule.SpanToEndLiteral},
		{Name: "Experiments", Duration: "4"},
	}, nil)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "gantt.png")
	err = Render(Options{
		Title:  "Test Project",
		Window: w,
		Today:  date(2026, time.March, 10),
		DPI:    72,
	}, tasks, out)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

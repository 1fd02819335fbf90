package chart

import (
	"fmt"
	"time"

	"github.com/fogleman/gg"

	"github.com/rselvaraju/ganttgen/pkg/schedule"
)

// Color palette, carried over from the chart's house style.
const (
	colorBar       = "#4A90E2"
	colorBarEdge   = "#357ABD"
	colorText      = "#2C3E50"
	colorHighlight = "#E74C3C" // project end
	colorSuccess   = "#27AE60" // project start
	colorToday     = "#9B59B6"
	colorGrid      = "#BDC3C7"
	colorBandAlt   = "#F7F9F9"
	colorWhite     = "#FFFFFF"
)

// Options configures a render. Today may be zero to omit its marker.
type Options struct {
	Title  string
	Window schedule.Window
	Today  time.Time
	DPI    int
}

// Render draws the Gantt chart for the resolved tasks and writes a PNG
// to outPath. Tasks are drawn top to bottom in slice order.
func Render(opts Options, tasks []schedule.Resolved, outPath string) error {
	fonts, err := loadFonts()
	if err != nil {
		return err
	}

	l := NewLayout(opts.Window, opts.DPI, len(tasks))
	dc := gg.NewContext(l.Width, l.Height)
	dc.SetHexColor(colorWhite)
	dc.Clear()

	drawMonthBands(dc, l)
	drawMonthGrid(dc, l)
	if err := drawMonthLabels(dc, l, fonts, opts.DPI); err != nil {
		return err
	}
	if err := drawTasks(dc, l, fonts, opts.DPI, tasks); err != nil {
		return err
	}
	if err := drawMarkers(dc, l, fonts, opts); err != nil {
		return err
	}
	if err := drawTitle(dc, l, fonts, opts); err != nil {
		return err
	}

	if err := dc.SavePNG(outPath); err != nil {
		return fmt.Errorf("writing chart to %s: %w", outPath, err)
	}
	return nil
}

func drawMonthBands(dc *gg.Context, l Layout) {
	for i, span := range l.MonthSpans() {
		if i%2 == 0 {
			dc.SetHexColor(colorBandAlt)
		} else {
			dc.SetHexColor(colorWhite)
		}
		x0, x1 := l.X(span.Start), l.X(span.End)
		dc.DrawRectangle(x0, l.PlotTop, x1-x0, l.PlotBottom-l.PlotTop)
		dc.Fill()
	}
}

func drawMonthGrid(dc *gg.Context, l Layout) {
	dc.SetHexColor(colorGrid)
	dc.SetLineWidth(float64(l.Width) / 3000)
	for _, span := range l.MonthSpans() {
		x := l.X(span.Start)
		dc.DrawLine(x, l.PlotTop, x, l.PlotBottom)
		dc.Stroke()
	}
}

func drawMonthLabels(dc *gg.Context, l Layout, fonts *fontSet, dpi int) error {
	face, err := fonts.face(11, true, dpi)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetHexColor(colorText)

	short := l.UseShortMonthLabels()
	y := l.PlotBottom + (float64(l.Height)-l.PlotBottom)*0.3
	for _, span := range l.MonthSpans() {
		mid := l.X(span.Start) + (l.X(span.End)-l.X(span.Start))/2
		dc.DrawStringAnchored(MonthLabel(span.Start, short), mid, y, 0.5, 0.5)
	}
	return nil
}

func drawTasks(dc *gg.Context, l Layout, fonts *fontSet, dpi int, tasks []schedule.Resolved) error {
	labelFace, err := fonts.face(9, false, dpi)
	if err != nil {
		return err
	}
	boldLabelFace, err := fonts.face(9, true, dpi)
	if err != nil {
		return err
	}
	nameFace, err := fonts.face(11, false, dpi)
	if err != nil {
		return err
	}

	barH := l.BarHeight()
	for i, task := range tasks {
		y := l.RowY(i)
		x0, x1 := l.X(task.Start), l.X(task.End)

		// Dotted guide from the label edge to the bar.
		dc.SetHexColor(colorGrid)
		dc.SetLineWidth(float64(l.Width) / 4500)
		dc.SetDash(float64(dpi)/50, float64(dpi)/25)
		dc.DrawLine(l.PlotLeft, y, x0, y)
		dc.Stroke()
		dc.SetDash()

		// The bar itself.
		dc.SetHexColor(colorBar)
		dc.DrawRectangle(x0, y-barH/2, x1-x0, barH)
		dc.FillPreserve()
		dc.SetHexColor(colorBarEdge)
		dc.SetLineWidth(float64(l.Width) / 4500)
		dc.Stroke()

		// Task name along the left margin.
		dc.SetFontFace(nameFace)
		dc.SetHexColor(colorText)
		dc.DrawStringAnchored(task.Name, l.PlotLeft-float64(l.Width)*0.01, y, 1, 0.5)

		// Date-range label: inside long bars, beside short ones.
		label := fmt.Sprintf("%s - %s", task.Start.Format("02 Jan"), task.End.Format("02 Jan"))
		if task.Days > insideLabelDays {
			dc.SetFontFace(boldLabelFace)
			dc.SetHexColor(colorWhite)
			dc.DrawStringAnchored(label, x0+(x1-x0)/2, y, 0.5, 0.5)
		} else {
			dc.SetFontFace(labelFace)
			dc.SetHexColor(colorText)
			pad := l.X(task.End.AddDate(0, 0, 3)) - x1
			dc.DrawStringAnchored(label, x1+pad, y, 0, 0.5)
		}
	}
	return nil
}

func drawMarkers(dc *gg.Context, l Layout, fonts *fontSet, opts Options) error {
	face, err := fonts.face(10, true, opts.DPI)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)

	labelY := l.PlotBottom + (float64(l.Height)-l.PlotBottom)*0.65
	dash := float64(opts.DPI) / 25

	drawVertical := func(t time.Time, hex string, dashed bool, label string) {
		x := l.X(t)
		dc.SetHexColor(hex)
		dc.SetLineWidth(float64(l.Width) / 2500)
		if dashed {
			dc.SetDash(dash, dash)
		}
		dc.DrawLine(x, l.PlotTop, x, l.PlotBottom)
		dc.Stroke()
		dc.SetDash()
		dc.DrawStringAnchored(label, x, labelY, 0.5, 0.5)
	}

	w := opts.Window
	drawVertical(w.Start, colorSuccess, true, w.Start.Format("02-Jan'06"))
	drawVertical(w.End, colorHighlight, true, w.End.Format("02-Jan'06"))

	if !opts.Today.IsZero() && !opts.Today.Before(l.DomainStart) && !opts.Today.After(l.DomainEnd) {
		drawVertical(opts.Today, colorToday, false, "Today: "+opts.Today.Format("02-Jan'06"))
	}
	return nil
}

func drawTitle(dc *gg.Context, l Layout, fonts *fontSet, opts Options) error {
	face, err := fonts.face(18, true, opts.DPI)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetHexColor(colorText)
	dc.DrawStringAnchored(opts.Title, float64(l.Width)/2, l.PlotTop*0.5, 0.5, 0.5)
	return nil
}

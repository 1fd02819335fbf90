// Package planner emits the printable A4 worksheet PDF. The sheets are
// fixed layouts of labeled blank grids meant to be filled in by hand.
package planner

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// DefaultOutput is the planner path when none is given.
const DefaultOutput = "./thesis_print_sheets_A4.pdf"

// Core PDF fonts are cp1252; keep this ASCII.
const footerText = "Master's Thesis planner - Ravisankar Selvaraju"

// Page margins in points.
const (
	marginSide = 40.0
	marginTop  = 20.0
)

const gridLineWidth = 0.7

// SheetNames lists the available sheets in their canonical order.
var SheetNames = []string{"weekly", "daily", "experiment", "reading", "chapters"}

var sheetBuilders = map[string]func(*doc){
	"weekly":     (*doc).weeklySheet,
	"daily":      (*doc).dailySheet,
	"experiment": (*doc).experimentSheet,
	"reading":    (*doc).readingSheet,
	"chapters":   (*doc).chaptersSheet,
}

// Build writes the selected sheets to path, one page per sheet. Sheet
// names must come from SheetNames.
func Build(path string, sheets []string) error {
	if len(sheets) == 0 {
		sheets = []string{"reading"}
	}
	for _, name := range sheets {
		if _, ok := sheetBuilders[name]; !ok {
			return fmt.Errorf("unknown sheet %q (available: %s)", name, strings.Join(SheetNames, ", "))
		}
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(marginSide, marginTop, marginSide)
	pdf.SetAutoPageBreak(false, marginTop)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-30)
		pdf.SetFont("Times", "I", 10)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 12, footerText, "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	d := &doc{pdf: pdf, usable: 595.28 - 2*marginSide}
	for _, name := range sheets {
		pdf.AddPage()
		sheetBuilders[name](d)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing planner to %s: %w", path, err)
	}
	return nil
}

// doc wraps the pdf with the layout helpers the sheets share.
type doc struct {
	pdf    *fpdf.Fpdf
	usable float64
}

func (d *doc) header(text string) {
	d.pdf.SetFont("Helvetica", "B", 14)
	d.pdf.CellFormat(0, 18, text, "", 1, "L", false, 0, "")
	d.vspace(6)
}

func (d *doc) vspace(h float64) {
	d.pdf.Ln(h)
}

func (d *doc) label(text string) {
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.CellFormat(0, 13, text, "", 1, "L", false, 0, "")
}

// boldLabel renders a bold lead-in followed by a regular tail, e.g.
// "Problem (what exactly are they solving?):".
func (d *doc) boldLabel(lead, tail string) {
	d.pdf.SetFont("Helvetica", "B", 10)
	d.pdf.Write(13, lead)
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.Write(13, tail)
	d.pdf.Ln(15)
}

// grid draws rows×cols empty bordered cells. colWidths, when given, must
// have cols entries; otherwise the usable width is split evenly.
func (d *doc) grid(rows, cols int, rowHeight float64, colWidths ...float64) {
	if len(colWidths) == 0 {
		colWidths = make([]float64, cols)
		for i := range colWidths {
			colWidths[i] = d.usable / float64(cols)
		}
	}
	d.pdf.SetLineWidth(gridLineWidth)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			ln := 0
			if c == cols-1 {
				ln = 1
			}
			d.pdf.CellFormat(colWidths[c], rowHeight, "", "1", ln, "L", false, 0, "")
		}
	}
}

// pctCols converts width fractions of the usable page into point widths.
func (d *doc) pctCols(pcts ...float64) []float64 {
	widths := make([]float64, len(pcts))
	for i, p := range pcts {
		widths[i] = d.usable * p
	}
	return widths
}

package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"Stairwell/internal/calc/stairs"
)

type Meta struct {
	Project string    `json:"project"`
	Author  string    `json:"author"`
	Title   string    `json:"title"`
	Notes   string    `json:"notes"`
	Date    time.Time `json:"-"`
}

var (
	runColumns     = []string{"#", "Steps", "Riser, mm", "Tread, mm", "Slope", "Status"}
	runWidths      = []float64{12, 24, 30, 30, 30, 54}
	landingColumns = []string{"#", "Runs", "Case", "Turn, deg", "Area, mm2", "Status"}
	landingWidths  = []float64{12, 24, 34, 30, 40, 40}
)

// Build lays out the flight report: header, run table, landing table and
// diagnostics.
func Build(meta Meta, res stairs.Result) *gofpdf.Fpdf {
	if meta.Title == "" {
		meta.Title = "Stair Flight Report"
	}
	if meta.Date.IsZero() {
		meta.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, meta.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", meta.Date.Format("2006-01-02")))
	pdf.Ln(10)

	section(pdf, "Runs")
	header(pdf, runColumns, runWidths)
	for i, r := range res.Runs {
		status := "OK"
		if !r.Valid {
			status = "Slope out of range"
		}
		row(pdf, runWidths,
			fmt.Sprint(i+1),
			fmt.Sprint(r.NumSteps),
			fmt.Sprintf("%.1f", r.RiserMM),
			fmt.Sprintf("%.1f", r.TreadMM),
			fmt.Sprintf("%.3f", r.Slope),
			status,
		)
	}
	pdf.Ln(6)

	if len(res.Landings) > 0 {
		section(pdf, "Landings")
		header(pdf, landingColumns, landingWidths)
		for i, l := range res.Landings {
			kind, status := "-", "Skipped"
			switch {
			case l.Surface != nil:
				kind, status = l.Surface.Case.String(), "OK"
			case l.Valid:
				status = "Failed"
			}
			row(pdf, landingWidths,
				fmt.Sprint(i+1),
				fmt.Sprintf("%d-%d", l.BottomRun+1, l.TopRun+1),
				kind,
				fmt.Sprintf("%.1f", l.TurnAngleDeg),
				fmt.Sprintf("%.0f", l.AreaMM2),
				status,
			)
		}
		pdf.Ln(6)
	}

	if len(res.Diagnostics) > 0 {
		section(pdf, "Diagnostics")
		pdf.SetFont("Helvetica", "", 10)
		for _, d := range res.Diagnostics {
			pdf.MultiCell(0, 5, "- "+d, "", "L", false)
		}
		pdf.Ln(4)
	}

	if meta.Notes != "" {
		section(pdf, "Notes")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, meta.Notes, "", "L", false)
	}
	return pdf
}

// Write renders the report to w.
func Write(w io.Writer, meta Meta, res stairs.Result) error {
	return Build(meta, res).Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
}

func header(pdf *gofpdf.Fpdf, cols []string, widths []float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, c := range cols {
		pdf.CellFormat(widths[i], 7, c, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

func row(pdf *gofpdf.Fpdf, widths []float64, cells ...string) {
	pdf.SetFont("Helvetica", "", 10)
	for i, c := range cells {
		pdf.CellFormat(widths[i], 6, c, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
}

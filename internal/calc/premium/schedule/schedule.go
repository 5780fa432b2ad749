package schedule

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"Stairwell/internal/calc/stairs"
)

const (
	RunsSheet     = "Runs"
	LandingsSheet = "Landings"
)

var (
	runHeader = []any{"run", "start_x", "start_y", "start_z", "end_x", "end_y", "end_z",
		"steps", "riser_mm", "tread_mm", "slope", "valid", "corrected_end_z"}
	landingHeader = []any{"landing", "bottom_run", "top_run", "case", "turn_deg",
		"nearest_side", "area_mm2", "railings", "status"}
)

// Build writes the run and landing schedule of a computed flight into a new
// workbook.
func Build(res stairs.Result) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", RunsSheet); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(LandingsSheet); err != nil {
		f.Close()
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	rows := make([][]any, 0, len(res.Runs))
	for i, r := range res.Runs {
		var corrected any
		if r.CorrectedEnd != nil {
			corrected = r.CorrectedEnd.Z
		}
		rows = append(rows, []any{i + 1,
			r.Start.X, r.Start.Y, r.Start.Z, r.End.X, r.End.Y, r.End.Z,
			r.NumSteps, r.RiserMM, r.TreadMM, r.Slope, r.Valid, corrected})
	}
	if err := writeSheet(f, RunsSheet, runHeader, rows, bold); err != nil {
		f.Close()
		return nil, err
	}

	rows = rows[:0]
	for i, l := range res.Landings {
		kind, status := "", "skipped"
		switch {
		case l.Surface != nil:
			kind, status = l.Surface.Case.String(), "ok"
		case l.Valid:
			status = "failed"
		}
		rows = append(rows, []any{i + 1, l.BottomRun + 1, l.TopRun + 1, kind,
			l.TurnAngleDeg, l.NearestSide.String(), l.AreaMM2, len(l.Railings), status})
	}
	if err := writeSheet(f, LandingsSheet, landingHeader, rows, bold); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any, style int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("%s header: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// Write renders the schedule workbook to w.
func Write(w io.Writer, res stairs.Result) error {
	f, err := Build(res)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

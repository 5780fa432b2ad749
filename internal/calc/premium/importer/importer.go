package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"Stairwell/internal/calc/stairs"
	"Stairwell/internal/geom"
)

var ErrEmptySheet = errors.New("empty sheet")

// Columns of the run sheet, after a header row.
var Columns = []string{"start_x", "start_y", "start_z", "end_x", "end_y", "height_z"}

// Parse reads runs from the first sheet of an xlsx workbook. Rows that do not
// parse are counted in skipped and otherwise ignored.
func Parse(r io.Reader) (picks []stairs.Pick, skipped int, err error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, 0, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, 0, ErrEmptySheet
	}

	for _, row := range rows[1:] {
		p, err := parseRow(row)
		if err != nil {
			skipped++
			continue
		}
		picks = append(picks, p)
	}
	if len(picks) == 0 {
		return nil, skipped, ErrEmptySheet
	}
	return picks, skipped, nil
}

func parseRow(row []string) (stairs.Pick, error) {
	if len(row) < len(Columns) {
		return stairs.Pick{}, fmt.Errorf("bad row")
	}
	v := make([]float64, len(Columns))
	for i := range Columns {
		f, err := toFloat(row[i])
		if err != nil {
			return stairs.Pick{}, fmt.Errorf("%s: %w", Columns[i], err)
		}
		v[i] = f
	}
	return stairs.Pick{
		Start:  geom.Pt(v[0], v[1], v[2]),
		End:    geom.Pt(v[3], v[4], v[2]),
		Height: geom.Pt(v[3], v[4], v[5]),
	}, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}

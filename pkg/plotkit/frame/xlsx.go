package frame

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads a sheet into a frame. The first row supplies the column
// names; every following row must hold numeric cells. An empty sheet name
// selects the workbook's first sheet. Blank trailing cells are treated as
// missing and skipped.
func LoadXLSX(path, sheet string) (*Frame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	header := rows[0]
	columns := make([][]float64, len(header))

	for rowIdx, row := range rows[1:] {
		for colIdx, cell := range row {
			if colIdx >= len(header) {
				break
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			value, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("sheet %q row %d column %q: non-numeric cell %q",
					sheet, rowIdx+2, header[colIdx], cell)
			}
			columns[colIdx] = append(columns[colIdx], value)
		}
	}

	out := New()
	for i, name := range header {
		out.AddColumn(name, columns[i])
	}
	return out, nil
}

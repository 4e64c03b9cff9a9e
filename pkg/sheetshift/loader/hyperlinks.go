package loader

import (
	"log/slog"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/sheet"
	"github.com/xuri/excelize/v2"
)

// LoadHyperlinks copies the hyperlinks of every non-empty cell. URLs become
// targets; links into the workbook such as "Sheet2!A1" become locations.
func LoadHyperlinks(f *excelize.File, ws *sheet.Worksheet, logger *slog.Logger) error {
	rows, err := f.GetRows(ws.Name())
	if err != nil {
		return err
	}

	for rowIdx, row := range rows {
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				continue
			}
			hasLink, target, err := f.GetCellHyperLink(ws.Name(), cellName)
			if err != nil || !hasLink || target == "" {
				continue
			}

			p := coord.Point{Row: rowIdx + 1, Column: colIdx + 1}
			if err := ws.Hyperlinks.Add(coord.SinglePoint(p), classifyLink(target)); err != nil {
				logger.Warn("hyperlink skipped", "cell", cellName, "error", err)
			}
		}
	}
	return nil
}

// classifyLink treats anything that parses as a cell reference as an
// internal location.
func classifyLink(target string) *sheet.Hyperlink {
	if _, err := parseArea(target, ""); err == nil {
		return &sheet.Hyperlink{Location: target}
	}
	return &sheet.Hyperlink{Target: target}
}

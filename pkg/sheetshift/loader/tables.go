package loader

import (
	"log/slog"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/sheet"
	"github.com/xuri/excelize/v2"
)

// LoadTables copies the structured tables of the sheet.
func LoadTables(f *excelize.File, ws *sheet.Worksheet, logger *slog.Logger) error {
	tables, err := f.GetTables(ws.Name())
	if err != nil {
		return err
	}

	for _, t := range tables {
		r, err := parseRange(t.Range)
		if err != nil {
			logger.Warn("table skipped", "table", t.Name, "ref", t.Range, "error", err)
			continue
		}
		// A missing header flag means the header row is shown
		showHeader := t.ShowHeaderRow == nil || *t.ShowHeaderRow
		err = ws.Tables.Add(&sheet.Table{
			Name:       t.Name,
			Range:      r,
			Style:      t.StyleName,
			ShowHeader: showHeader,
		})
		if err != nil {
			logger.Warn("table skipped", "table", t.Name, "error", err)
		}
	}
	return nil
}

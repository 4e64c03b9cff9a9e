package loader

import (
	"log/slog"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/sheet"
	"github.com/xuri/excelize/v2"
)

// LoadMergedCells copies the merged cell ranges of the sheet.
func LoadMergedCells(f *excelize.File, ws *sheet.Worksheet, logger *slog.Logger) error {
	merges, err := f.GetMergeCells(ws.Name())
	if err != nil {
		return err
	}

	for _, m := range merges {
		text := m.GetStartAxis() + ":" + m.GetEndAxis()
		r, err := parseRange(text)
		if err != nil {
			// Log warning and continue with the remaining merges
			logger.Warn("merged range skipped", "ref", text, "error", err)
			continue
		}
		if err := ws.Merged.Add(r); err != nil {
			logger.Warn("merged range skipped", "ref", text, "error", err)
		}
	}
	return nil
}

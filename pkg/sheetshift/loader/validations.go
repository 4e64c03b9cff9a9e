package loader

import (
	"log/slog"
	"strings"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/sheet"
	"github.com/xuri/excelize/v2"
)

// LoadDataValidations copies the data validations of the sheet. Unparsable
// parts of a validation's range list are skipped; a validation with no
// usable range is dropped.
func LoadDataValidations(f *excelize.File, ws *sheet.Worksheet, logger *slog.Logger) error {
	dvs, err := f.GetDataValidations(ws.Name())
	if err != nil {
		return err
	}

	for _, dv := range dvs {
		var ranges []coord.Range
		for _, part := range strings.Fields(dv.Sqref) {
			r, err := parseRange(part)
			if err != nil {
				logger.Warn("data validation range skipped", "ref", part, "error", err)
				continue
			}
			ranges = append(ranges, r)
		}
		if len(ranges) == 0 {
			continue
		}
		ws.DataValidations.Add(&sheet.DataValidation{
			Ranges:     ranges,
			Type:       dv.Type,
			Operator:   dv.Operator,
			Formula1:   dv.Formula1,
			Formula2:   dv.Formula2,
			AllowBlank: dv.AllowBlank,
		})
	}
	return nil
}

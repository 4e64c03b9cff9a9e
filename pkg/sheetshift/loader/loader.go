// Package loader reads the coordinate-bearing objects of one worksheet of an
// xlsx workbook into a sheet.Worksheet.
package loader

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/ref"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/sheet"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the workbook has no sheet of the requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// Component loads one kind of object into a worksheet.
type Component struct {
	// Name identifies the component in errors and log records, e.g. "tables".
	Name string
	// Load copies the objects of the component from f into ws.
	Load func(f *excelize.File, ws *sheet.Worksheet, logger *slog.Logger) error
}

// Components returns the loaders in the order their collections are
// notified by the worksheet.
func Components() []Component {
	return []Component{
		{Name: "merged", Load: LoadMergedCells},
		{Name: "hyperlinks", Load: LoadHyperlinks},
		{Name: "conditional_formats", Load: LoadConditionalFormats},
		{Name: "data_validations", Load: LoadDataValidations},
		{Name: "tables", Load: LoadTables},
		{Name: "named_ranges", Load: LoadNamedRanges},
	}
}

// Load builds a worksheet for sheetName from every component. The first
// component that fails aborts the load.
func Load(f *excelize.File, sheetName string, logger *slog.Logger) (*sheet.Worksheet, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := CheckSheet(f, sheetName); err != nil {
		return nil, err
	}
	ws := sheet.New(sheetName, sheet.WithLogger(logger))
	for _, c := range Components() {
		if err := c.Load(f, ws, logger.With("component", c.Name)); err != nil {
			return nil, fmt.Errorf("load %s of %q: %w", c.Name, sheetName, err)
		}
	}
	return ws, nil
}

// CheckSheet reports ErrSheetNotFound when f has no sheet named sheetName.
func CheckSheet(f *excelize.File, sheetName string) error {
	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return err
	}
	if idx < 0 {
		return fmt.Errorf("%q: %w", sheetName, ErrSheetNotFound)
	}
	return nil
}

var origin = coord.Point{Row: 1, Column: 1}

// parseArea parses an A1 reference such as "$A$1:$D$10" or "'My
// Sheet'!B2". Whole rows and columns resolve to full spans. References
// without a sheet name are placed on defaultSheet.
func parseArea(text, defaultSheet string) (coord.Area, error) {
	ra, err := ref.ParseA1(text)
	if err != nil {
		return coord.Area{}, err
	}
	return ra.ResolveArea(origin, defaultSheet), nil
}

// parseRange is parseArea for references that must not name a sheet.
func parseRange(text string) (coord.Range, error) {
	area, err := parseArea(text, "")
	if err != nil {
		return coord.Range{}, err
	}
	if area.Sheet != "" {
		return coord.Range{}, coord.NewParseError(text, "range", coord.ErrFormat)
	}
	return area.Range, nil
}

package loader

import (
	"fmt"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/shift"
	"github.com/xuri/excelize/v2"
)

// Apply performs the structural edit on the workbook itself so the shifted
// file can be saved. Cells move with excelize's own row and column
// operations.
func Apply(f *excelize.File, sheetName string, op shift.Op, first, count int) error {
	if _, err := shift.Band(op, first, count); err != nil {
		return err
	}
	switch op {
	case shift.InsertRows:
		return f.InsertRows(sheetName, first, count)
	case shift.DeleteRows:
		// Each removal pulls the next row up into first
		for range count {
			if err := f.RemoveRow(sheetName, first); err != nil {
				return err
			}
		}
		return nil
	case shift.InsertColumns:
		return f.InsertCols(sheetName, coord.ColumnLetters(first), count)
	case shift.DeleteColumns:
		col := coord.ColumnLetters(first)
		for range count {
			if err := f.RemoveCol(sheetName, col); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown operation %v: %w", op, coord.ErrFormat)
	}
}

// Package sheetshift applies row and column insertions and deletions to a
// sheet of an xlsx workbook and reports how every dependent object moves.
package sheetshift

import (
	"fmt"
	"log/slog"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/shift"
)

// Options configures a structural edit.
type Options struct {
	// Sheet is the sheet to edit. Empty selects the first sheet.
	Sheet string
	// Op is the structural edit to perform.
	Op shift.Op
	// At is the first row or column inserted or deleted (1-based).
	At int
	// Count is the number of rows or columns.
	Count int
	// Notation selects the reference style of the report.
	Notation coord.Notation
	// SavePath, if set, receives a copy of the workbook with the edit applied.
	SavePath string
	// Logger receives warnings and debug records. If nil, slog.Default is used.
	Logger *slog.Logger
}

// DefaultOptions returns options that insert one row above row 1 of the
// first sheet.
func DefaultOptions() Options {
	return Options{
		Op:       shift.InsertRows,
		At:       1,
		Count:    1,
		Notation: coord.NotationA1,
	}
}

// Validate reports ErrInvalidOperation when the edit cannot be performed.
func (o Options) Validate() error {
	if _, err := shift.ParseOp(o.Op.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOperation, err)
	}
	if _, err := shift.Band(o.Op, o.At, o.Count); err != nil {
		return fmt.Errorf("%w: %s at %d count %d: %w", ErrInvalidOperation, o.Op, o.At, o.Count, err)
	}
	if o.Notation != coord.NotationA1 && o.Notation != coord.NotationR1C1 {
		return fmt.Errorf("%w: unknown notation %v", ErrInvalidOperation, o.Notation)
	}
	return nil
}

// Band returns the rows or columns the edit covers.
func (o Options) Band() (coord.Range, error) {
	return shift.Band(o.Op, o.At, o.Count)
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

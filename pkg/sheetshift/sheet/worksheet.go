// Package sheet hosts the coordinate-bearing objects of one worksheet and
// keeps them in place while rows and columns are inserted or deleted.
//
// A structural edit computes the band of affected cells and notifies every
// listener in registration order. The built-in collections are registered
// first, in the order merged ranges, hyperlinks, conditional formats, data
// validations, tables, named ranges, range handles; listeners added with
// Subscribe follow. A failing listener stops the notification and its error
// is returned; listeners that already ran are not rolled back.
//
// A Worksheet is not safe for concurrent use.
package sheet

import (
	"fmt"
	"log/slog"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/address"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/shift"
)

// Option configures a Worksheet.
type Option func(*Worksheet)

// WithLogger sets the logger for debug records about repositioned entries.
func WithLogger(logger *slog.Logger) Option {
	return func(ws *Worksheet) {
		if logger != nil {
			ws.logger = logger
		}
	}
}

// Worksheet is a named sheet with its dependent collections.
type Worksheet struct {
	name      string
	deleted   bool
	logger    *slog.Logger
	listeners []Listener

	Merged             *MergedRanges
	Hyperlinks         *Hyperlinks
	ConditionalFormats *ConditionalFormats
	DataValidations    *DataValidations
	Tables             *Tables
	NamedRanges        *NamedRanges
	ranges             *trackedRanges
}

// New creates an empty worksheet.
func New(name string, opts ...Option) *Worksheet {
	ws := &Worksheet{name: name, logger: slog.Default()}
	for _, opt := range opts {
		opt(ws)
	}
	ws.logger = ws.logger.With("sheet", name)

	ws.Merged = newMergedRanges(ws.logger)
	ws.Hyperlinks = newHyperlinks(ws.logger)
	ws.ConditionalFormats = newConditionalFormats(name, ws.logger)
	ws.DataValidations = newDataValidations(ws.logger)
	ws.Tables = newTables(ws.logger)
	ws.NamedRanges = newNamedRanges(name, ws.logger)
	ws.ranges = &trackedRanges{}
	for _, r := range []repositioner{ws.Merged, ws.Hyperlinks, ws.ConditionalFormats,
		ws.DataValidations, ws.Tables, ws.NamedRanges, ws.ranges} {
		ws.listeners = append(ws.listeners, opListener{r})
	}
	return ws
}

// Name returns the sheet name.
func (ws *Worksheet) Name() string { return ws.name }

// Liveness reports whether the worksheet has been deleted.
func (ws *Worksheet) Liveness() address.Liveness {
	if ws.deleted {
		return address.Deleted
	}
	return address.Alive
}

// Delete marks the worksheet deleted. Addresses that belong to it render the
// sheet qualifier as #REF! from now on.
func (ws *Worksheet) Delete() {
	ws.deleted = true
	ws.logger.Debug("worksheet deleted")
}

// Subscribe appends l to the notification order.
func (ws *Worksheet) Subscribe(l Listener) {
	ws.listeners = append(ws.listeners, l)
}

// Address returns the relative address of a cell. Out-of-range coordinates
// yield a permanently invalid address.
func (ws *Worksheet) Address(row, column int) address.Address {
	return address.New(ws, row, column, false, false)
}

// Cell parses an A1 address such as "$B$3" on this sheet.
func (ws *Worksheet) Cell(s string) (address.Address, error) {
	return address.Parse(ws, s)
}

// Range returns a handle on the A1 range s that follows structural edits
// until it is released.
func (ws *Worksheet) Range(s string) (*RangeHandle, error) {
	r, err := coord.ParseRange(s)
	if err != nil {
		return nil, err
	}
	h := &RangeHandle{First: address.FromPoint(ws, r.First), Last: address.FromPoint(ws, r.Last)}
	ws.ranges.add(h)
	return h, nil
}

// Release stops tracking h.
func (ws *Worksheet) Release(h *RangeHandle) bool {
	return ws.ranges.release(h)
}

// InsertRowsBefore inserts n rows so that the first new row is row.
func (ws *Worksheet) InsertRowsBefore(row, n int) error {
	return ws.Apply(shift.InsertRows, row, n)
}

// InsertRowsAfter inserts n rows below row.
func (ws *Worksheet) InsertRowsAfter(row, n int) error {
	return ws.Apply(shift.InsertRows, row+1, n)
}

// InsertColumnsBefore inserts n columns so that the first new column is column.
func (ws *Worksheet) InsertColumnsBefore(column, n int) error {
	return ws.Apply(shift.InsertColumns, column, n)
}

// InsertColumnsAfter inserts n columns right of column.
func (ws *Worksheet) InsertColumnsAfter(column, n int) error {
	return ws.Apply(shift.InsertColumns, column+1, n)
}

// DeleteRows deletes n rows starting at first.
func (ws *Worksheet) DeleteRows(first, n int) error {
	return ws.Apply(shift.DeleteRows, first, n)
}

// DeleteColumns deletes n columns starting at first.
func (ws *Worksheet) DeleteColumns(first, n int) error {
	return ws.Apply(shift.DeleteColumns, first, n)
}

// Apply performs a structural edit of count whole rows or columns starting
// at first.
func (ws *Worksheet) Apply(op shift.Op, first, count int) error {
	if ws.deleted {
		return fmt.Errorf("%s on %q: %w", op, ws.name, ErrWorksheetDeleted)
	}
	band, err := shift.Band(op, first, count)
	if err != nil {
		return fmt.Errorf("%s at %d count %d: %w", op, first, count, err)
	}
	return ws.notify(op, band)
}

func (ws *Worksheet) notify(op shift.Op, band coord.Range) error {
	ws.logger.Debug("structural edit", "op", op.String(), "band", band.String(), "listeners", len(ws.listeners))
	for _, l := range ws.listeners {
		if err := dispatch(l, op, band); err != nil {
			return fmt.Errorf("%s on %q: %w", op, ws.name, err)
		}
	}
	return nil
}

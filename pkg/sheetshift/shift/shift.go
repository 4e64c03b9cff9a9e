// Package shift computes how a stored range moves when whole rows or columns
// are inserted into or deleted from a sheet.
//
// A band is the range of the inserted or deleted cells: for insertions it is
// the position the new cells occupy after the edit, for deletions the cells
// that disappear. Bands normally span an entire row-range or column-range;
// narrower bands are accepted and produce Ambiguous outcomes for ranges they
// only partly cover.
package shift

import (
	"fmt"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
)

// Op is a structural edit kind.
type Op int

const (
	// InsertRows inserts band.Height() rows at band.First.Row.
	InsertRows Op = iota
	// InsertColumns inserts band.Width() columns at band.First.Column.
	InsertColumns
	// DeleteRows removes the band's rows.
	DeleteRows
	// DeleteColumns removes the band's columns.
	DeleteColumns
)

var opNames = map[Op]string{
	InsertRows:    "insert-rows",
	InsertColumns: "insert-columns",
	DeleteRows:    "delete-rows",
	DeleteColumns: "delete-columns",
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// ParseOp parses the names produced by Op.String.
func ParseOp(s string) (Op, error) {
	for op, name := range opNames {
		if name == s {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown structural operation %q", s)
}

// IsInsert reports whether the edit adds cells.
func (o Op) IsInsert() bool {
	return o == InsertRows || o == InsertColumns
}

// OnRows reports whether the edit shifts along the row axis.
func (o Op) OnRows() bool {
	return o == InsertRows || o == DeleteRows
}

// Kind classifies an Outcome.
type Kind int

const (
	// Unchanged: the range lies before the band or off its cross axis.
	Unchanged Kind = iota
	// Translated: the range lies at or after the band and moved as a whole.
	Translated
	// Stretched: lines were inserted inside the range, or right after it for
	// RepositionExtending; its far edge grew.
	Stretched
	// Shrunk: a deletion removed part of the range; its far edge moved back.
	Shrunk
	// Removed: a deletion covered the whole range. Outcome.Range holds the
	// degenerate range left at the deletion edge.
	Removed
	// Ambiguous: the band covers only part of the range's cross axis; the
	// range stays where it is.
	Ambiguous
)

var kindNames = [...]string{"unchanged", "translated", "stretched", "shrunk", "removed", "ambiguous"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Outcome is the result of repositioning one stored range.
type Outcome struct {
	Kind  Kind
	Range coord.Range
}

// Moved reports whether the stored range has a new position.
func (o Outcome) Moved() bool {
	return o.Kind == Translated || o.Kind == Stretched || o.Kind == Shrunk || o.Kind == Removed
}

// RowBand returns the band of count whole rows starting at first.
func RowBand(first, count int) (coord.Range, error) {
	if count < 1 {
		return coord.Range{}, fmt.Errorf("row count %d: %w", count, coord.ErrOutOfBounds)
	}
	return coord.RowSpan(first, first+count-1)
}

// ColumnBand returns the band of count whole columns starting at first.
func ColumnBand(first, count int) (coord.Range, error) {
	if count < 1 {
		return coord.Range{}, fmt.Errorf("column count %d: %w", count, coord.ErrOutOfBounds)
	}
	return coord.ColumnSpan(first, first+count-1)
}

// Band returns the whole-row or whole-column band matching op.
func Band(op Op, first, count int) (coord.Range, error) {
	if op.OnRows() {
		return RowBand(first, count)
	}
	return ColumnBand(first, count)
}

// Reposition applies op to stored.
func Reposition(stored, band coord.Range, op Op) Outcome {
	switch op {
	case InsertRows:
		return InsertRowsAt(stored, band)
	case InsertColumns:
		return InsertColumnsAt(stored, band)
	case DeleteRows:
		return DeleteRowsAt(stored, band)
	case DeleteColumns:
		return DeleteColumnsAt(stored, band)
	}
	return Outcome{Kind: Unchanged, Range: stored}
}

// RepositionExtending is Reposition for collections whose ranges also grow
// when lines are inserted directly below or right of them, as conditional
// formats and data validations do. Deletions behave as in Reposition.
func RepositionExtending(stored, band coord.Range, op Op) Outcome {
	switch op {
	case InsertRows:
		return extend(rowAxis(stored), rowAxis(band)).build(stored, setRows)
	case InsertColumns:
		return extend(columnAxis(stored), columnAxis(band)).build(stored, setColumns)
	}
	return Reposition(stored, band, op)
}

// InsertRowsAt repositions stored for rows inserted at band.
func InsertRowsAt(stored, band coord.Range) Outcome {
	return insert(rowAxis(stored), rowAxis(band)).build(stored, setRows)
}

// InsertColumnsAt repositions stored for columns inserted at band.
func InsertColumnsAt(stored, band coord.Range) Outcome {
	return insert(columnAxis(stored), columnAxis(band)).build(stored, setColumns)
}

// DeleteRowsAt repositions stored for the rows of band being deleted.
func DeleteRowsAt(stored, band coord.Range) Outcome {
	return remove(rowAxis(stored), rowAxis(band)).build(stored, setRows)
}

// DeleteColumnsAt repositions stored for the columns of band being deleted.
func DeleteColumnsAt(stored, band coord.Range) Outcome {
	return remove(columnAxis(stored), columnAxis(band)).build(stored, setColumns)
}

// Package ref models the cell references that appear in formulas, in both A1
// ("$B3:C$7") and R1C1 ("R[-1]C2") notation, and resolves them to ranges.
package ref

import (
	"fmt"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
)

// AxisKind tags one axis of a reference.
type AxisKind int

const (
	// None: the axis is absent, the reference spans the whole dimension.
	None AxisKind = iota
	// Relative: plain A1 coordinate, or an R1C1 offset from the anchor.
	Relative
	// Absolute: "$"-marked A1 coordinate, or an R1C1 literal index.
	Absolute
)

func (k AxisKind) String() string {
	switch k {
	case None:
		return "none"
	case Relative:
		return "relative"
	case Absolute:
		return "absolute"
	}
	return fmt.Sprintf("AxisKind(%d)", int(k))
}

// Axis is a tagged row or column value. For A1 references the value is
// always the literal coordinate; for R1C1 references a Relative value is a
// signed offset from the anchor.
type Axis struct {
	Kind  AxisKind
	Value int
}

// Rel returns a relative axis.
func Rel(v int) Axis { return Axis{Kind: Relative, Value: v} }

// Abs returns an absolute axis.
func Abs(v int) Axis { return Axis{Kind: Absolute, Value: v} }

// Whole is the absent axis.
var Whole = Axis{}

func (a Axis) check(n coord.Notation, what string, limit int) error {
	switch {
	case a.Kind == None:
		return nil
	case a.Kind == Relative && n == coord.NotationR1C1:
		if a.Value <= -limit || a.Value >= limit {
			return fmt.Errorf("relative %s offset %d: %w", what, a.Value, coord.ErrOutOfBounds)
		}
	case a.Kind == Relative || a.Kind == Absolute:
		if a.Value < 1 || a.Value > limit {
			return fmt.Errorf("%s %d: %w", what, a.Value, coord.ErrOutOfBounds)
		}
	default:
		return fmt.Errorf("%s kind %v: %w", what, a.Kind, coord.ErrOutOfBounds)
	}
	return nil
}

// resolve maps the axis onto [1, limit]. Relative R1C1 offsets wrap around
// the sheet edge.
func (a Axis) resolve(n coord.Notation, anchor, limit int) int {
	if n == coord.NotationA1 || a.Kind == Absolute {
		return a.Value
	}
	return ((anchor-1+a.Value)%limit+limit)%limit + 1
}

// RowCol is one corner of a reference. Either axis may be None, not both.
type RowCol struct {
	Row    Axis
	Column Axis
}

// Cell returns a corner with both axes present.
func Cell(row, column Axis) RowCol { return RowCol{Row: row, Column: column} }

// Row returns a row-only corner.
func Row(row Axis) RowCol { return RowCol{Row: row} }

// Column returns a column-only corner.
func Column(column Axis) RowCol { return RowCol{Column: column} }

// shape classifies a corner by which axes it carries.
type shape int

const (
	shapeInvalid shape = iota
	shapeCell
	shapeRow
	shapeColumn
)

func (rc RowCol) shape() shape {
	switch {
	case rc.Row.Kind != None && rc.Column.Kind != None:
		return shapeCell
	case rc.Row.Kind != None:
		return shapeRow
	case rc.Column.Kind != None:
		return shapeColumn
	}
	return shapeInvalid
}

// IsCell reports whether both axes are present.
func (rc RowCol) IsCell() bool { return rc.shape() == shapeCell }

func (rc RowCol) check(n coord.Notation) error {
	if rc.shape() == shapeInvalid {
		return fmt.Errorf("reference without row or column: %w", coord.ErrOutOfBounds)
	}
	if err := rc.Row.check(n, "row", coord.MaxRow); err != nil {
		return err
	}
	return rc.Column.check(n, "column", coord.MaxColumn)
}

// bounds resolves the corner into row and column spans.
func (rc RowCol) bounds(n coord.Notation, anchor coord.Point) (rowLo, rowHi, colLo, colHi int) {
	rowLo, rowHi = 1, coord.MaxRow
	if rc.Row.Kind != None {
		rowLo = rc.Row.resolve(n, anchor.Row, coord.MaxRow)
		rowHi = rowLo
	}
	colLo, colHi = 1, coord.MaxColumn
	if rc.Column.Kind != None {
		colLo = rc.Column.resolve(n, anchor.Column, coord.MaxColumn)
		colHi = colLo
	}
	return rowLo, rowHi, colLo, colHi
}

// rebase replaces the corner's coordinates with p, keeping each axis kind.
func (rc RowCol) rebase(n coord.Notation, anchor, p coord.Point) RowCol {
	rc.Row = rc.Row.rebase(n, anchor.Row, p.Row)
	rc.Column = rc.Column.rebase(n, anchor.Column, p.Column)
	return rc
}

func (a Axis) rebase(n coord.Notation, anchor, v int) Axis {
	switch {
	case a.Kind == None:
		return a
	case a.Kind == Relative && n == coord.NotationR1C1:
		return Rel(v - anchor)
	}
	a.Value = v
	return a
}

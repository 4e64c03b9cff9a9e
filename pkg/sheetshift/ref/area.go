package ref

import (
	"fmt"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
)

// ReferenceArea is a parsed reference token: one corner, or two corners
// joined by ":", optionally qualified with a sheet name.
type ReferenceArea struct {
	Sheet    string
	First    RowCol
	Second   RowCol // set only when IsRange
	IsRange  bool
	Notation coord.Notation
}

// NewReference builds a single-corner reference. In A1 notation only cell
// corners are accepted; a lone row or column needs a range ("3:3", "C:C").
func NewReference(n coord.Notation, rc RowCol) (ReferenceArea, error) {
	if err := rc.check(n); err != nil {
		return ReferenceArea{}, err
	}
	if n == coord.NotationA1 && !rc.IsCell() {
		return ReferenceArea{}, fmt.Errorf("A1 row or column reference needs a range: %w", coord.ErrOutOfBounds)
	}
	return ReferenceArea{First: rc, Notation: n}, nil
}

// NewRangeReference builds a two-corner reference. Both corners must have the
// same shape.
func NewRangeReference(n coord.Notation, first, second RowCol) (ReferenceArea, error) {
	if err := first.check(n); err != nil {
		return ReferenceArea{}, err
	}
	if err := second.check(n); err != nil {
		return ReferenceArea{}, err
	}
	if first.shape() != second.shape() {
		return ReferenceArea{}, fmt.Errorf("range corners of different shape: %w", coord.ErrOutOfBounds)
	}
	return ReferenceArea{First: first, Second: second, IsRange: true, Notation: n}, nil
}

// OnSheet returns a copy qualified with sheet.
func (ra ReferenceArea) OnSheet(sheet string) ReferenceArea {
	ra.Sheet = sheet
	return ra
}

// Resolve maps the reference onto the sheet relative to anchor. The anchor is
// ignored for A1 references. The corners are normalized, so "E3:B10" and
// "B3:E10" resolve to the same range.
func (ra ReferenceArea) Resolve(anchor coord.Point) coord.Range {
	rowLo, rowHi, colLo, colHi := ra.First.bounds(ra.Notation, anchor)
	if ra.IsRange {
		r2Lo, r2Hi, c2Lo, c2Hi := ra.Second.bounds(ra.Notation, anchor)
		rowLo, rowHi = min(rowLo, r2Lo), max(rowHi, r2Hi)
		colLo, colHi = min(colLo, c2Lo), max(colHi, c2Hi)
	}
	return coord.Range{
		First: coord.Point{Row: rowLo, Column: colLo},
		Last:  coord.Point{Row: rowHi, Column: colHi},
	}
}

// ResolveArea is Resolve qualified with the reference's sheet, or with
// defaultSheet when the reference is unqualified.
func (ra ReferenceArea) ResolveArea(anchor coord.Point, defaultSheet string) coord.Area {
	sheet := ra.Sheet
	if sheet == "" {
		sheet = defaultSheet
	}
	return coord.Area{Sheet: sheet, Range: ra.Resolve(anchor)}
}

// WithRange returns a reference of the same notation, shape, sheet and axis
// kinds that resolves to r from anchor. A single-corner reference becomes a
// range when r spans more than one line.
func (ra ReferenceArea) WithRange(anchor coord.Point, r coord.Range) ReferenceArea {
	out := ra
	out.First = ra.First.rebase(ra.Notation, anchor, r.First)

	second := ra.First
	if ra.IsRange {
		second = ra.Second
	}
	out.Second = second.rebase(ra.Notation, anchor, r.Last)
	out.IsRange = ra.IsRange || out.Second != out.First
	if !out.IsRange {
		out.Second = RowCol{}
	}
	return out
}

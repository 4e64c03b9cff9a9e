package coord

import "fmt"

// Range is a rectangle of cells with First at the top-left and Last at the
// bottom-right corner. Both corners are inclusive.
type Range struct {
	First Point
	Last  Point
}

// NewRange returns a range or ErrOutOfBounds when the corners are not in
// top-left, bottom-right order.
func NewRange(first, last Point) (Range, error) {
	if first.Row > last.Row || first.Column > last.Column {
		return Range{}, fmt.Errorf("range %s:%s: corners out of order: %w", first, last, ErrOutOfBounds)
	}
	return Range{First: first, Last: last}, nil
}

// RangeOf builds a range from row/column bounds.
func RangeOf(firstRow, firstColumn, lastRow, lastColumn int) (Range, error) {
	first, err := NewPoint(firstRow, firstColumn)
	if err != nil {
		return Range{}, err
	}
	last, err := NewPoint(lastRow, lastColumn)
	if err != nil {
		return Range{}, err
	}
	return NewRange(first, last)
}

// MustRange is like ParseRange but panics on invalid input.
func MustRange(s string) Range {
	r, err := ParseRange(s)
	if err != nil {
		panic(err)
	}
	return r
}

// SinglePoint returns the degenerate range covering only p.
func SinglePoint(p Point) Range {
	return Range{First: p, Last: p}
}

// Normalize builds a range from two arbitrary corners by taking the
// componentwise minimum and maximum.
func Normalize(a, b Point) Range {
	return Range{
		First: Point{Row: min(a.Row, b.Row), Column: min(a.Column, b.Column)},
		Last:  Point{Row: max(a.Row, b.Row), Column: max(a.Column, b.Column)},
	}
}

// EntireSheet is the range covering every cell.
func EntireSheet() Range {
	return Range{First: Point{Row: 1, Column: 1}, Last: Point{Row: MaxRow, Column: MaxColumn}}
}

// RowSpan returns the full-width range covering rows first..last.
func RowSpan(first, last int) (Range, error) {
	return RangeOf(first, 1, last, MaxColumn)
}

// ColumnSpan returns the full-height range covering columns first..last.
func ColumnSpan(first, last int) (Range, error) {
	return RangeOf(1, first, MaxRow, last)
}

// ParseRange parses "A1" or "A1:B2". The corners are not reordered: a range
// whose first corner lies below or right of the second is a format error.
func ParseRange(s string) (Range, error) {
	first, i, ok := scanPoint(s, 0)
	if !ok {
		return Range{}, NewParseError(s, "range", ErrFormat)
	}
	if i == len(s) {
		return SinglePoint(first), nil
	}
	if s[i] != ':' {
		return Range{}, NewParseError(s, "range", ErrFormat)
	}
	last, j, ok := scanPoint(s, i+1)
	if !ok || j != len(s) {
		return Range{}, NewParseError(s, "range", ErrFormat)
	}
	r, err := NewRange(first, last)
	if err != nil {
		return Range{}, NewParseError(s, "range", ErrFormat)
	}
	return r, nil
}

// String formats the range, collapsing a single cell to "A1".
func (r Range) String() string {
	if r.IsSinglePoint() {
		return r.First.String()
	}
	return r.First.String() + ":" + r.Last.String()
}

// IsSinglePoint reports whether the range covers exactly one cell.
func (r Range) IsSinglePoint() bool {
	return r.First == r.Last
}

// Width is the number of columns.
func (r Range) Width() int {
	return r.Last.Column - r.First.Column + 1
}

// Height is the number of rows.
func (r Range) Height() int {
	return r.Last.Row - r.First.Row + 1
}

// Size is the number of cells.
func (r Range) Size() int {
	return r.Width() * r.Height()
}

// IsEntireRow reports whether the range spans every column.
func (r Range) IsEntireRow() bool {
	return r.First.Column == 1 && r.Last.Column == MaxColumn
}

// IsEntireColumn reports whether the range spans every row.
func (r Range) IsEntireColumn() bool {
	return r.First.Row == 1 && r.Last.Row == MaxRow
}

// IsEntireSheet reports whether the range covers the whole sheet.
func (r Range) IsEntireSheet() bool {
	return r.IsEntireRow() && r.IsEntireColumn()
}

// Contains reports whether p lies inside the range.
func (r Range) Contains(p Point) bool {
	return p.Row >= r.First.Row && p.Row <= r.Last.Row &&
		p.Column >= r.First.Column && p.Column <= r.Last.Column
}

// Overlaps reports whether other lies fully inside r.
func (r Range) Overlaps(other Range) bool {
	return r.Contains(other.First) && r.Contains(other.Last)
}

// Intersects reports whether the two ranges share at least one cell.
func (r Range) Intersects(other Range) bool {
	return !(other.First.Column > r.Last.Column ||
		other.Last.Column < r.First.Column ||
		other.First.Row > r.Last.Row ||
		other.Last.Row < r.First.Row)
}

// Intersect returns the shared cells of both ranges, if any.
func (r Range) Intersect(other Range) (Range, bool) {
	if !r.Intersects(other) {
		return Range{}, false
	}
	return Range{
		First: Point{Row: max(r.First.Row, other.First.Row), Column: max(r.First.Column, other.First.Column)},
		Last:  Point{Row: min(r.Last.Row, other.Last.Row), Column: min(r.Last.Column, other.Last.Column)},
	}, true
}

// Union returns the smallest range containing both ranges.
func (r Range) Union(other Range) Range {
	return Range{
		First: Point{Row: min(r.First.Row, other.First.Row), Column: min(r.First.Column, other.First.Column)},
		Last:  Point{Row: max(r.Last.Row, other.Last.Row), Column: max(r.Last.Column, other.Last.Column)},
	}
}

// Less orders ranges by first row, first column, last row, last column.
func (r Range) Less(other Range) bool {
	switch {
	case r.First.Row != other.First.Row:
		return r.First.Row < other.First.Row
	case r.First.Column != other.First.Column:
		return r.First.Column < other.First.Column
	case r.Last.Row != other.Last.Row:
		return r.Last.Row < other.Last.Row
	default:
		return r.Last.Column < other.Last.Column
	}
}

// Package coord defines sheet coordinates: points, ranges and sheet-qualified areas.
package coord

import (
	"strconv"
	"strings"
)

const (
	// MaxRow is the last row of a sheet (1-based).
	MaxRow = 1_048_576
	// MaxColumn is the last column of a sheet (1-based), "XFD".
	MaxColumn = 16_384

	maxColumnLetters = 3
	maxRowDigits     = 7
)

// Point is a validated cell coordinate.
type Point struct {
	Row    int
	Column int
}

// NewPoint returns a point or ErrOutOfBounds when row or column is outside the sheet.
func NewPoint(row, column int) (Point, error) {
	if !RowInBounds(row) || !ColumnInBounds(column) {
		return Point{}, outOfBounds("point", row, column)
	}
	return Point{Row: row, Column: column}, nil
}

// MustPoint is like NewPoint but panics on invalid input. Intended for literals.
func MustPoint(row, column int) Point {
	p, err := NewPoint(row, column)
	if err != nil {
		panic(err)
	}
	return p
}

// RowInBounds reports whether row is a valid sheet row.
func RowInBounds(row int) bool {
	return row >= 1 && row <= MaxRow
}

// ColumnInBounds reports whether column is a valid sheet column.
func ColumnInBounds(column int) bool {
	return column >= 1 && column <= MaxColumn
}

// ParsePoint parses a coordinate token such as "B12". The token must consist of
// uppercase column letters immediately followed by a row number without a
// leading zero. Nothing else is accepted, not even surrounding whitespace.
func ParsePoint(s string) (Point, error) {
	p, n, ok := scanPoint(s, 0)
	if !ok || n != len(s) {
		return Point{}, NewParseError(s, "point", ErrFormat)
	}
	return p, nil
}

// scanPoint reads a point starting at s[i] and returns the index after it.
func scanPoint(s string, i int) (Point, int, bool) {
	start := i
	for i < len(s) && isUpper(s[i]) {
		i++
	}
	letters := i - start
	if letters == 0 || letters > maxColumnLetters {
		return Point{}, i, false
	}
	column, ok := decodeColumn(s[start:i])
	if !ok {
		return Point{}, i, false
	}

	digitsStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	digits := i - digitsStart
	if digits == 0 || digits > maxRowDigits || s[digitsStart] == '0' {
		return Point{}, i, false
	}
	row, err := strconv.Atoi(s[digitsStart:i])
	if err != nil || !RowInBounds(row) {
		return Point{}, i, false
	}
	return Point{Row: row, Column: column}, i, true
}

// String formats the point in A1 notation.
func (p Point) String() string {
	var b strings.Builder
	b.WriteString(ColumnLetters(p.Column))
	b.WriteString(strconv.Itoa(p.Row))
	return b.String()
}

// StringR1C1 formats the point as an absolute R1C1 coordinate.
func (p Point) StringR1C1() string {
	return "R" + strconv.Itoa(p.Row) + "C" + strconv.Itoa(p.Column)
}

// Offset returns the point moved by the given deltas.
func (p Point) Offset(rows, columns int) (Point, error) {
	return NewPoint(p.Row+rows, p.Column+columns)
}

// ColumnLetters converts a 1-based column number to its letter form ("A".."XFD").
// It returns an empty string for columns outside the sheet.
func ColumnLetters(column int) string {
	if !ColumnInBounds(column) {
		return ""
	}
	var buf [maxColumnLetters]byte
	i := len(buf)
	for column > 0 {
		column--
		i--
		buf[i] = byte('A' + column%26)
		column /= 26
	}
	return string(buf[i:])
}

// ColumnNumber converts column letters to a 1-based number. Letters are
// case-insensitive here; ParsePoint is the strict entry point.
func ColumnNumber(letters string) (int, error) {
	if letters == "" || len(letters) > maxColumnLetters {
		return 0, NewParseError(letters, "column", ErrFormat)
	}
	column, ok := decodeColumn(strings.ToUpper(letters))
	if !ok {
		return 0, NewParseError(letters, "column", ErrFormat)
	}
	return column, nil
}

func decodeColumn(letters string) (int, bool) {
	column := 0
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if !isUpper(c) {
			return 0, false
		}
		column = column*26 + int(c-'A') + 1
	}
	return column, ColumnInBounds(column)
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

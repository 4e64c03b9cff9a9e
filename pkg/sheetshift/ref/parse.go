package ref

import (
	"strconv"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
)

const (
	maxColumnLetters = 3
	maxRowDigits     = 7
)

// Parse reads a reference in notation n, with an optional sheet prefix
// ("Data!A1", "'My Sheet'!R1C1:R2C2"). Letters are case-insensitive.
func Parse(s string, n coord.Notation) (ReferenceArea, error) {
	ra, end, ok := scanQualified(s, 0, n)
	if !ok || end != len(s) {
		return ReferenceArea{}, coord.NewParseError(s, grammarName(n), coord.ErrFormat)
	}
	return ra, nil
}

// ParseA1 reads an A1 reference such as "B3", "$A$1:C7", "C:E" or "3:5".
func ParseA1(s string) (ReferenceArea, error) {
	return Parse(s, coord.NotationA1)
}

// ParseR1C1 reads an R1C1 reference such as "RC", "R2C[-1]", "R[1]:R3" or "C4".
func ParseR1C1(s string) (ReferenceArea, error) {
	return Parse(s, coord.NotationR1C1)
}

func grammarName(n coord.Notation) string {
	if n == coord.NotationR1C1 {
		return "r1c1"
	}
	return "a1"
}

func scanQualified(s string, i int, n coord.Notation) (ReferenceArea, int, bool) {
	sheet := ""
	if name, j, ok := scanSheet(s, i); ok {
		sheet, i = name, j
	}
	ra, j, ok := scanArea(s, i, n)
	if !ok {
		return ReferenceArea{}, i, false
	}
	ra.Sheet = sheet
	return ra, j, true
}

// scanSheet reads "Name!" or "'Quoted ''Name'''!" and returns the index
// after the '!'.
func scanSheet(s string, i int) (string, int, bool) {
	if i >= len(s) {
		return "", i, false
	}
	if s[i] == '\'' {
		j := i + 1
		for j < len(s) {
			if s[j] == '\'' {
				if j+1 < len(s) && s[j+1] == '\'' {
					j += 2
					continue
				}
				break
			}
			j++
		}
		if j >= len(s) || j+1 >= len(s) || s[j+1] != '!' {
			return "", i, false
		}
		name, err := coord.UnquoteSheetName(s[i : j+1])
		if err != nil {
			return "", i, false
		}
		return name, j + 2, true
	}
	j := i
	for j < len(s) && coord.IsNameChar(s[j]) {
		j++
	}
	if j == i || j >= len(s) || s[j] != '!' {
		return "", i, false
	}
	return s[i:j], j + 1, true
}

// scanArea reads "corner" or "corner:corner". A trailing ":" that does not
// start a valid second corner is left unconsumed.
func scanArea(s string, i int, n coord.Notation) (ReferenceArea, int, bool) {
	scan := scanA1
	if n == coord.NotationR1C1 {
		scan = scanR1C1
	}
	first, j, ok := scan(s, i)
	if !ok {
		return ReferenceArea{}, i, false
	}
	if j < len(s) && s[j] == ':' {
		if second, k, ok := scan(s, j+1); ok {
			if ra, err := NewRangeReference(n, first, second); err == nil {
				return ra, k, true
			}
		}
	}
	ra, err := NewReference(n, first)
	if err != nil {
		return ReferenceArea{}, i, false
	}
	return ra, j, true
}

// scanA1 reads "[$]COL[$]ROW", "[$]COL" or "[$]ROW".
func scanA1(s string, i int) (RowCol, int, bool) {
	var rc RowCol
	j := i

	fixed := j < len(s) && s[j] == '$'
	if fixed {
		j++
	}
	start := j
	for j < len(s) && isLetter(s[j]) {
		j++
	}
	if j > start {
		if j-start > maxColumnLetters {
			return RowCol{}, i, false
		}
		column, err := coord.ColumnNumber(s[start:j])
		if err != nil {
			return RowCol{}, i, false
		}
		rc.Column = axisOf(fixed, column)
		fixed = j < len(s) && s[j] == '$'
		if fixed {
			j++
		}
	}

	row, k, ok := scanNumber(s, j)
	switch {
	case ok && coord.RowInBounds(row):
		rc.Row = axisOf(fixed, row)
		j = k
	case ok || fixed:
		// an out-of-range row, or a '$' not followed by a row
		return RowCol{}, i, false
	}
	if rc.shape() == shapeInvalid {
		return RowCol{}, i, false
	}
	return rc, j, true
}

func axisOf(fixed bool, v int) Axis {
	if fixed {
		return Abs(v)
	}
	return Rel(v)
}

// scanR1C1 reads "R<part>C<part>", "R<part>" or "C<part>" where a part is
// empty (relative 0), "n" (absolute) or "[±n]" (relative).
func scanR1C1(s string, i int) (RowCol, int, bool) {
	var rc RowCol
	j := i
	if j < len(s) && (s[j] == 'R' || s[j] == 'r') {
		axis, k, ok := scanR1C1Part(s, j+1, coord.MaxRow)
		if !ok {
			return RowCol{}, i, false
		}
		rc.Row, j = axis, k
	}
	if j < len(s) && (s[j] == 'C' || s[j] == 'c') {
		axis, k, ok := scanR1C1Part(s, j+1, coord.MaxColumn)
		if !ok {
			return RowCol{}, i, false
		}
		rc.Column, j = axis, k
	}
	if j == i {
		return RowCol{}, i, false
	}
	return rc, j, true
}

func scanR1C1Part(s string, i, limit int) (Axis, int, bool) {
	if i < len(s) && s[i] == '[' {
		j := i + 1
		negative := false
		if j < len(s) && (s[j] == '-' || s[j] == '+') {
			negative = s[j] == '-'
			j++
		}
		v, k, ok := scanOffset(s, j)
		if !ok || k >= len(s) || s[k] != ']' {
			return Axis{}, i, false
		}
		if negative {
			v = -v
		}
		if v <= -limit || v >= limit {
			return Axis{}, i, false
		}
		return Rel(v), k + 1, true
	}
	if v, k, ok := scanNumber(s, i); ok {
		if v > limit {
			return Axis{}, i, false
		}
		return Abs(v), k, true
	}
	if i < len(s) && s[i] == '0' {
		return Axis{}, i, false
	}
	return Rel(0), i, true
}

// scanNumber reads a positive decimal without a leading zero.
func scanNumber(s string, i int) (int, int, bool) {
	j := i
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	if j == i || j-i > maxRowDigits || s[i] == '0' {
		return 0, i, false
	}
	v, err := strconv.Atoi(s[i:j])
	if err != nil {
		return 0, i, false
	}
	return v, j, true
}

// scanOffset reads a bracketed offset magnitude; "0" is allowed.
func scanOffset(s string, i int) (int, int, bool) {
	if i < len(s) && s[i] == '0' {
		return 0, i + 1, true
	}
	return scanNumber(s, i)
}

func isLetter(c byte) bool { return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

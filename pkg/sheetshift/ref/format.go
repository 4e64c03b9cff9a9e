package ref

import (
	"strconv"
	"strings"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
)

const refError = "#REF!"

// String renders the reference in its own notation, qualified when it
// carries a sheet name.
func (ra ReferenceArea) String() string {
	if ra.Notation == coord.NotationR1C1 {
		return ra.FormatR1C1(coord.Point{Row: 1, Column: 1}, true)
	}
	return ra.FormatA1(coord.Point{Row: 1, Column: 1}, true)
}

// FormatA1 renders the reference in A1 notation. R1C1 relative axes are
// added to anchor without wraparound; a reference that leaves the sheet
// renders as #REF!.
func (ra ReferenceArea) FormatA1(anchor coord.Point, qualified bool) string {
	first, ok := ra.a1Corner(ra.First, anchor)
	if !ok {
		return ra.qualify(refError, qualified)
	}
	second := first
	if ra.IsRange {
		if second, ok = ra.a1Corner(ra.Second, anchor); !ok {
			return ra.qualify(refError, qualified)
		}
	} else if ra.First.IsCell() {
		return ra.qualify(first, qualified)
	}
	return ra.qualify(first+":"+second, qualified)
}

// FormatR1C1 renders the reference in R1C1 notation. A1 relative axes become
// offsets from anchor.
func (ra ReferenceArea) FormatR1C1(anchor coord.Point, qualified bool) string {
	text := ra.r1c1Corner(ra.First, anchor)
	if ra.IsRange {
		text += ":" + ra.r1c1Corner(ra.Second, anchor)
	}
	return ra.qualify(text, qualified)
}

func (ra ReferenceArea) qualify(body string, qualified bool) string {
	if !qualified || ra.Sheet == "" {
		return body
	}
	return coord.QuoteSheetName(ra.Sheet) + "!" + body
}

func (ra ReferenceArea) a1Corner(rc RowCol, anchor coord.Point) (string, bool) {
	var b strings.Builder
	if rc.Column.Kind != None {
		v, fixed, ok := ra.a1Axis(rc.Column, anchor.Column, coord.MaxColumn)
		if !ok {
			return "", false
		}
		if fixed {
			b.WriteByte('$')
		}
		b.WriteString(coord.ColumnLetters(v))
	}
	if rc.Row.Kind != None {
		v, fixed, ok := ra.a1Axis(rc.Row, anchor.Row, coord.MaxRow)
		if !ok {
			return "", false
		}
		if fixed {
			b.WriteByte('$')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String(), true
}

func (ra ReferenceArea) a1Axis(a Axis, anchor, limit int) (value int, fixed, ok bool) {
	if ra.Notation == coord.NotationA1 || a.Kind == Absolute {
		return a.Value, a.Kind == Absolute, true
	}
	v := anchor + a.Value
	return v, false, v >= 1 && v <= limit
}

func (ra ReferenceArea) r1c1Corner(rc RowCol, anchor coord.Point) string {
	return ra.r1c1Axis('R', rc.Row, anchor.Row) + ra.r1c1Axis('C', rc.Column, anchor.Column)
}

func (ra ReferenceArea) r1c1Axis(letter byte, a Axis, anchor int) string {
	switch a.Kind {
	case None:
		return ""
	case Absolute:
		return string(letter) + strconv.Itoa(a.Value)
	}
	offset := a.Value
	if ra.Notation == coord.NotationA1 {
		offset -= anchor
	}
	if offset == 0 {
		return string(letter)
	}
	return string(letter) + "[" + strconv.Itoa(offset) + "]"
}

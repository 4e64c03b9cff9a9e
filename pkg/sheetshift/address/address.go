// Package address implements cell addresses that remember which worksheet
// they belong to and render broken references as #REF!.
package address

import (
	"strconv"
	"strings"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/shift"
)

// RefError is the broken-reference token.
const RefError = "#REF!"

// Liveness is the state of an owning worksheet.
type Liveness int

const (
	Alive Liveness = iota
	Deleted
)

// Owner is the worksheet an address belongs to.
type Owner interface {
	Name() string
	Liveness() Liveness
}

// State is the rendering state of an address.
type State int

const (
	// Valid: the coordinate is in bounds and the worksheet is alive.
	Valid State = iota
	// PermanentlyInvalid: the coordinate was out of bounds at construction or
	// was deleted by a structural edit. The state never reverts.
	PermanentlyInvalid
	// OnDeletedWorksheet: the coordinate is valid but the worksheet is gone.
	OnDeletedWorksheet
	// InvalidOnDeletedWorksheet combines both failures.
	InvalidOnDeletedWorksheet
)

func (s State) String() string {
	switch s {
	case Valid:
		return "valid"
	case PermanentlyInvalid:
		return "invalid"
	case OnDeletedWorksheet:
		return "deleted-worksheet"
	case InvalidOnDeletedWorksheet:
		return "invalid-deleted-worksheet"
	}
	return "unknown"
}

// Address is a cell coordinate with per-axis fixed flags and an owner.
// The zero value is an invalid address without an owner.
type Address struct {
	point       coord.Point
	fixedRow    bool
	fixedColumn bool
	valid       bool
	owner       Owner
}

// New builds an address. Out-of-bounds coordinates do not fail: they yield a
// PermanentlyInvalid address.
func New(owner Owner, row, column int, fixedRow, fixedColumn bool) Address {
	a := Address{owner: owner, fixedRow: fixedRow, fixedColumn: fixedColumn}
	if p, err := coord.NewPoint(row, column); err == nil {
		a.point, a.valid = p, true
	}
	return a
}

// FromPoint builds a relative address of p.
func FromPoint(owner Owner, p coord.Point) Address {
	return Address{owner: owner, point: p, valid: true}
}

// Parse reads "B3", "$B3", "B$3" or "$B$3".
func Parse(owner Owner, s string) (Address, error) {
	fixedColumn := strings.HasPrefix(s, "$")
	body := strings.TrimPrefix(s, "$")

	letters := 0
	for letters < len(body) && body[letters] >= 'A' && body[letters] <= 'Z' {
		letters++
	}
	fixedRow := letters > 0 && letters < len(body) && body[letters] == '$'
	plain := body
	if fixedRow {
		plain = body[:letters] + body[letters+1:]
	}

	p, err := coord.ParsePoint(plain)
	if err != nil {
		return Address{}, coord.NewParseError(s, "address", coord.ErrFormat)
	}
	return Address{owner: owner, point: p, fixedRow: fixedRow, fixedColumn: fixedColumn, valid: true}, nil
}

// Point returns the coordinate and whether the address is still valid.
func (a Address) Point() (coord.Point, bool) {
	return a.point, a.valid
}

// IsValid reports whether the coordinate part is valid.
func (a Address) IsValid() bool { return a.valid }

func (a Address) FixedRow() bool    { return a.fixedRow }
func (a Address) FixedColumn() bool { return a.fixedColumn }
func (a Address) Owner() Owner      { return a.owner }

func (a Address) ownerDeleted() bool {
	return a.owner != nil && a.owner.Liveness() == Deleted
}

// State derives the rendering state from the coordinate and owner liveness.
func (a Address) State() State {
	switch {
	case !a.valid && a.ownerDeleted():
		return InvalidOnDeletedWorksheet
	case !a.valid:
		return PermanentlyInvalid
	case a.ownerDeleted():
		return OnDeletedWorksheet
	}
	return Valid
}

// Invalidate returns a PermanentlyInvalid copy of a.
func (a Address) Invalidate() Address {
	a.valid = false
	return a
}

// Reposition moves the address for a structural edit. An address whose cell
// is deleted becomes PermanentlyInvalid.
func (a Address) Reposition(op shift.Op, band coord.Range) Address {
	if !a.valid {
		return a
	}
	out := shift.Reposition(coord.SinglePoint(a.point), band, op)
	switch {
	case out.Kind == shift.Removed:
		return a.Invalidate()
	case out.Moved():
		a.point = out.Range.First
	}
	return a
}

// String renders the address in A1 notation honoring its fixed flags.
func (a Address) String() string {
	return a.StringNotation(coord.NotationA1, false)
}

// StringNotation renders the address honoring its fixed flags. R1C1 output
// is always the absolute form.
func (a Address) StringNotation(n coord.Notation, qualified bool) string {
	return a.qualify(a.render(n, a.fixedRow, a.fixedColumn), qualified)
}

// StringRelative renders the A1 coordinate without $ markers.
func (a Address) StringRelative(qualified bool) string {
	return a.qualify(a.render(coord.NotationA1, false, false), qualified)
}

// StringFixed renders "$A$1" or "R1C1".
func (a Address) StringFixed(n coord.Notation, qualified bool) string {
	return a.qualify(a.render(n, true, true), qualified)
}

func (a Address) render(n coord.Notation, fixedRow, fixedColumn bool) string {
	if !a.valid {
		return RefError
	}
	if n == coord.NotationR1C1 {
		return a.point.StringR1C1()
	}
	var b strings.Builder
	if fixedColumn {
		b.WriteByte('$')
	}
	b.WriteString(coord.ColumnLetters(a.point.Column))
	if fixedRow {
		b.WriteByte('$')
	}
	b.WriteString(strconv.Itoa(a.point.Row))
	return b.String()
}

func (a Address) qualify(body string, qualified bool) string {
	if !qualified || a.owner == nil {
		return body
	}
	if a.ownerDeleted() {
		return RefError + body
	}
	return coord.QuoteSheetName(a.owner.Name()) + "!" + body
}

package coord

import (
	"strings"

	"golang.org/x/text/cases"
)

// Area is a range on a named sheet. Sheet names compare case-insensitively.
type Area struct {
	Sheet string
	Range Range
}

// Equal reports whether both areas name the same sheet and the same range.
func (a Area) Equal(other Area) bool {
	return a.Range == other.Range && SameSheet(a.Sheet, other.Sheet)
}

// Key returns a comparable value usable as a map key; two areas have the same
// key exactly when Equal reports true.
func (a Area) Key() AreaKey {
	return AreaKey{sheet: FoldSheetName(a.Sheet), rng: a.Range}
}

// Intersect returns the overlap of two areas on the same sheet.
func (a Area) Intersect(other Area) (Area, bool) {
	if !SameSheet(a.Sheet, other.Sheet) {
		return Area{}, false
	}
	r, ok := a.Range.Intersect(other.Range)
	if !ok {
		return Area{}, false
	}
	return Area{Sheet: a.Sheet, Range: r}, true
}

// String formats the area as a sheet-qualified A1 range.
func (a Area) String() string {
	if a.Sheet == "" {
		return a.Range.String()
	}
	return QuoteSheetName(a.Sheet) + "!" + a.Range.String()
}

// AreaKey is the hashable identity of an Area.
type AreaKey struct {
	sheet string
	rng   Range
}

// FoldSheetName returns the case-folded form of a sheet name.
func FoldSheetName(name string) string {
	// A Caser keeps state between calls and must not be shared.
	return cases.Fold().String(name)
}

// SameSheet compares sheet names case-insensitively.
func SameSheet(a, b string) bool {
	return a == b || FoldSheetName(a) == FoldSheetName(b)
}

// QuoteSheetName wraps a sheet name in apostrophes when a reference needs it,
// doubling any apostrophe inside the name.
func QuoteSheetName(name string) string {
	if !needsQuotes(name) {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// UnquoteSheetName reverses QuoteSheetName.
func UnquoteSheetName(s string) (string, error) {
	if len(s) < 2 || s[0] != '\'' || s[len(s)-1] != '\'' {
		if s == "" || needsQuotes(s) {
			return "", NewParseError(s, "sheet", ErrFormat)
		}
		return s, nil
	}
	inner := s[1 : len(s)-1]
	if inner == "" {
		return "", NewParseError(s, "sheet", ErrFormat)
	}
	var b strings.Builder
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\'' {
			if i+1 >= len(inner) || inner[i+1] != '\'' {
				return "", NewParseError(s, "sheet", ErrFormat)
			}
			i++
		}
		b.WriteByte(inner[i])
	}
	return b.String(), nil
}

func needsQuotes(name string) bool {
	if name == "" {
		return false
	}
	if isDigit(name[0]) {
		return true
	}
	// A bare name that reads as a cell would be taken for one.
	if _, err := ParsePoint(strings.ToUpper(name)); err == nil {
		return true
	}
	for i := 0; i < len(name); i++ {
		if !IsNameChar(name[i]) {
			return true
		}
	}
	return false
}

// IsNameChar reports whether c may appear in an unquoted sheet name.
func IsNameChar(c byte) bool {
	return isUpper(c) || (c >= 'a' && c <= 'z') || isDigit(c) || c == '_' || c == '.' || c >= 0x80
}

package sheet

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/ref"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/shift"
)

// NamedRange is a defined name referring to one or more A1 references, e.g.
// "Data!$A$1:$B$9". Scope is the sheet the name is local to, or empty for a
// workbook-wide name.
type NamedRange struct {
	Name    string
	Scope   string
	Comment string
	Refs    []string
}

// NamedRanges is the ordered list of defined names that may point at a sheet.
type NamedRanges struct {
	sheet  string
	names  []*NamedRange
	logger *slog.Logger
}

func newNamedRanges(sheet string, logger *slog.Logger) *NamedRanges {
	return &NamedRanges{sheet: sheet, logger: logger}
}

func sameName(a, b *NamedRange) bool {
	return coord.SameSheet(a.Name, b.Name) && coord.SameSheet(a.Scope, b.Scope)
}

// Add appends nr. A name may be defined once per scope.
func (n *NamedRanges) Add(nr *NamedRange) error {
	for _, existing := range n.names {
		if sameName(existing, nr) {
			return fmt.Errorf("named range %q: %w", nr.Name, ErrDuplicate)
		}
	}
	n.names = append(n.names, nr)
	return nil
}

// Get finds a name in the given scope.
func (n *NamedRanges) Get(name, scope string) (*NamedRange, bool) {
	want := &NamedRange{Name: name, Scope: scope}
	for _, nr := range n.names {
		if sameName(nr, want) {
			return nr, true
		}
	}
	return nil, false
}

// Remove deletes nr and reports whether it was present.
func (n *NamedRanges) Remove(nr *NamedRange) bool {
	i := slices.Index(n.names, nr)
	if i < 0 {
		return false
	}
	n.names = slices.Delete(n.names, i, i+1)
	return true
}

// All returns the names in insertion order.
func (n *NamedRanges) All() []*NamedRange {
	return slices.Clone(n.names)
}

func (n *NamedRanges) Len() int { return len(n.names) }

var origin = coord.Point{Row: 1, Column: 1}

// reposition rewrites every reference pointing at this sheet. References
// whose cells were deleted are dropped from the name; text that is not an A1
// reference is kept verbatim.
func (n *NamedRanges) reposition(op shift.Op, band coord.Range) error {
	for _, nr := range n.names {
		refs := nr.Refs[:0]
		for _, text := range nr.Refs {
			next, keep := n.move(nr, text, op, band)
			if keep {
				refs = append(refs, next)
			}
		}
		clear(nr.Refs[len(refs):])
		nr.Refs = refs
	}
	return nil
}

func (n *NamedRanges) move(nr *NamedRange, text string, op shift.Op, band coord.Range) (string, bool) {
	ra, err := ref.ParseA1(text)
	if err != nil {
		n.logger.Debug("named range reference not parsed", "name", nr.Name, "ref", text, "error", err)
		return text, true
	}
	target := ra.Sheet
	if target == "" {
		target = nr.Scope
	}
	if !coord.SameSheet(target, n.sheet) {
		return text, true
	}

	out := shift.Reposition(ra.Resolve(origin), band, op)
	switch {
	case out.Kind == shift.Removed:
		n.logger.Debug("named range reference dropped", "name", nr.Name, "ref", text, "op", op.String())
		return "", false
	case out.Kind == shift.Ambiguous:
		n.logger.Debug("named range reference left in place", "name", nr.Name, "ref", text, "op", op.String())
	case out.Moved():
		return ra.WithRange(origin, out.Range).String(), true
	}
	return text, true
}

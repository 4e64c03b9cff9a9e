package sheet

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/shift"
)

// Table is a named, structured range.
type Table struct {
	Name       string
	Range      coord.Range
	Style      string
	ShowHeader bool
}

// Tables holds the tables of a sheet by case-insensitive name. A table whose
// cells are all deleted keeps a degenerate range until Remove is called.
type Tables struct {
	byName map[string]*Table
	logger *slog.Logger
}

func newTables(logger *slog.Logger) *Tables {
	return &Tables{byName: make(map[string]*Table), logger: logger}
}

func tableKey(name string) string { return coord.FoldSheetName(name) }

// Add registers t. Names must be unique and tables must not overlap.
func (ts *Tables) Add(t *Table) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("table without a name: %w", coord.ErrFormat)
	}
	key := tableKey(t.Name)
	if _, ok := ts.byName[key]; ok {
		return fmt.Errorf("table %q: %w", t.Name, ErrDuplicate)
	}
	for _, other := range ts.byName {
		if other.Range.Intersects(t.Range) {
			return fmt.Errorf("table %q overlaps %q: %w", t.Name, other.Name, ErrDuplicate)
		}
	}
	ts.byName[key] = t
	return nil
}

// Get looks a table up by name.
func (ts *Tables) Get(name string) (*Table, bool) {
	t, ok := ts.byName[tableKey(name)]
	return t, ok
}

// Remove deletes the named table.
func (ts *Tables) Remove(name string) bool {
	key := tableKey(name)
	if _, ok := ts.byName[key]; !ok {
		return false
	}
	delete(ts.byName, key)
	return true
}

// All returns the tables sorted by position.
func (ts *Tables) All() []*Table {
	all := make([]*Table, 0, len(ts.byName))
	for _, t := range ts.byName {
		all = append(all, t)
	}
	slices.SortFunc(all, func(a, b *Table) int {
		if c := compareRanges(a.Range, b.Range); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return all
}

func (ts *Tables) Len() int { return len(ts.byName) }

func (ts *Tables) reposition(op shift.Op, band coord.Range) error {
	for _, t := range ts.All() {
		out := shift.Reposition(t.Range, band, op)
		switch out.Kind {
		case shift.Ambiguous:
			ts.logger.Debug("table left in place", "table", t.Name, "range", t.Range.String(), "op", op.String())
		case shift.Removed:
			ts.logger.Debug("table reduced to its deletion edge", "table", t.Name, "range", out.Range.String())
		}
		t.Range = out.Range
	}
	return nil
}

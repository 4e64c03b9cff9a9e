package sheet

import (
	"fmt"
	"log/slog"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/shift"
)

// MergedRanges is the set of merged cell blocks of a sheet. Blocks never
// overlap.
type MergedRanges struct {
	m rangeMap[struct{}]
}

func newMergedRanges(logger *slog.Logger) *MergedRanges {
	return &MergedRanges{m: newRangeMap[struct{}]("merged range", logger)}
}

// Add merges r. A single cell or a block intersecting an existing one is
// rejected.
func (mr *MergedRanges) Add(r coord.Range) error {
	if r.IsSinglePoint() {
		return fmt.Errorf("merged range %s: single cell: %w", r, coord.ErrOutOfBounds)
	}
	for existing := range mr.m.entries {
		if existing.Intersects(r) {
			return fmt.Errorf("merged range %s overlaps %s: %w", r, existing, ErrDuplicate)
		}
	}
	return mr.m.add(r, struct{}{})
}

// Remove unmerges r.
func (mr *MergedRanges) Remove(r coord.Range) bool {
	return mr.m.remove(r)
}

// Covering returns the merged block containing p.
func (mr *MergedRanges) Covering(p coord.Point) (coord.Range, bool) {
	for r := range mr.m.entries {
		if r.Contains(p) {
			return r, true
		}
	}
	return coord.Range{}, false
}

// Ranges lists the merged blocks in row-major order.
func (mr *MergedRanges) Ranges() []coord.Range {
	return mr.m.keys()
}

func (mr *MergedRanges) Len() int { return len(mr.m.entries) }

func (mr *MergedRanges) reposition(op shift.Op, band coord.Range) error {
	return mr.m.reposition(op, band)
}

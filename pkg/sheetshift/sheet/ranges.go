package sheet

import (
	"slices"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/address"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/shift"
)

// RangeHandle is a live range that follows structural edits. Once all of
// its cells are deleted both corners are permanently invalid.
type RangeHandle struct {
	First address.Address
	Last  address.Address
}

// Range returns the current range, or false once the handle is invalid.
func (h *RangeHandle) Range() (coord.Range, bool) {
	first, ok1 := h.First.Point()
	last, ok2 := h.Last.Point()
	if !ok1 || !ok2 {
		return coord.Range{}, false
	}
	return coord.Range{First: first, Last: last}, true
}

// String renders the range, with #REF! for invalid corners.
func (h *RangeHandle) String() string {
	return h.StringNotation(coord.NotationA1, false)
}

// StringNotation renders both corners in notation n.
func (h *RangeHandle) StringNotation(n coord.Notation, qualified bool) string {
	if r, ok := h.Range(); ok && r.IsSinglePoint() {
		return h.First.StringNotation(n, qualified)
	}
	return h.First.StringNotation(n, qualified) + ":" + h.Last.StringNotation(n, false)
}

// trackedRanges keeps the handles handed out by Worksheet.Range.
type trackedRanges struct {
	handles []*RangeHandle
}

func (t *trackedRanges) add(h *RangeHandle) {
	t.handles = append(t.handles, h)
}

func (t *trackedRanges) release(h *RangeHandle) bool {
	i := slices.Index(t.handles, h)
	if i < 0 {
		return false
	}
	t.handles = slices.Delete(t.handles, i, i+1)
	return true
}

func (t *trackedRanges) reposition(op shift.Op, band coord.Range) error {
	for _, h := range t.handles {
		r, ok := h.Range()
		if !ok {
			continue
		}
		out := shift.Reposition(r, band, op)
		switch {
		case out.Kind == shift.Removed:
			h.First, h.Last = h.First.Invalidate(), h.Last.Invalidate()
		case out.Moved():
			h.First = address.New(h.First.Owner(), out.Range.First.Row, out.Range.First.Column, h.First.FixedRow(), h.First.FixedColumn())
			h.Last = address.New(h.Last.Owner(), out.Range.Last.Row, out.Range.Last.Column, h.Last.FixedRow(), h.Last.FixedColumn())
		}
	}
	return nil
}

package sheet

import (
	"log/slog"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/shift"
)

// Hyperlink is the payload of a linked range. Target is an external URL,
// Location an internal reference such as "Sheet2!A1".
type Hyperlink struct {
	Target   string
	Location string
	Tooltip  string
}

// Hyperlinks maps ranges to hyperlinks.
type Hyperlinks struct {
	m rangeMap[*Hyperlink]
}

func newHyperlinks(logger *slog.Logger) *Hyperlinks {
	return &Hyperlinks{m: newRangeMap[*Hyperlink]("hyperlink", logger)}
}

// Add links r. It fails with ErrDuplicate if r already has a hyperlink.
func (h *Hyperlinks) Add(r coord.Range, link *Hyperlink) error {
	return h.m.add(r, link)
}

// Get returns the hyperlink stored at exactly r.
func (h *Hyperlinks) Get(r coord.Range) (*Hyperlink, bool) {
	return h.m.get(r)
}

// Remove deletes the hyperlink at r and reports whether there was one.
func (h *Hyperlinks) Remove(r coord.Range) bool {
	return h.m.remove(r)
}

// Ranges lists the linked ranges in row-major order.
func (h *Hyperlinks) Ranges() []coord.Range {
	return h.m.keys()
}

func (h *Hyperlinks) Len() int { return len(h.m.entries) }

func (h *Hyperlinks) reposition(op shift.Op, band coord.Range) error {
	return h.m.reposition(op, band)
}

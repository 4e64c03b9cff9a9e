package sheet

import (
	"log/slog"
	"slices"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/shift"
)

// Rule is one conditional formatting rule.
type Rule struct {
	Type     string
	Criteria string
	Value    string
	Format   int
}

// ConditionalFormat applies rules to an area.
type ConditionalFormat struct {
	Area  coord.Area
	Rules []Rule
}

// ConditionalFormats is the ordered list of conditional formats of a sheet.
type ConditionalFormats struct {
	sheet   string
	formats []*ConditionalFormat
	logger  *slog.Logger
}

func newConditionalFormats(sheet string, logger *slog.Logger) *ConditionalFormats {
	return &ConditionalFormats{sheet: sheet, logger: logger}
}

// Add appends cf. An area without a sheet name is placed on this sheet.
func (c *ConditionalFormats) Add(cf *ConditionalFormat) {
	if cf.Area.Sheet == "" {
		cf.Area.Sheet = c.sheet
	}
	c.formats = append(c.formats, cf)
}

// Remove deletes cf and reports whether it was present.
func (c *ConditionalFormats) Remove(cf *ConditionalFormat) bool {
	i := slices.Index(c.formats, cf)
	if i < 0 {
		return false
	}
	c.formats = slices.Delete(c.formats, i, i+1)
	return true
}

// All returns the formats in insertion order.
func (c *ConditionalFormats) All() []*ConditionalFormat {
	return slices.Clone(c.formats)
}

func (c *ConditionalFormats) Len() int { return len(c.formats) }

// reposition moves the formats on this sheet. A format also grows when
// lines are inserted directly below or right of it.
func (c *ConditionalFormats) reposition(op shift.Op, band coord.Range) error {
	kept := c.formats[:0]
	for _, cf := range c.formats {
		if !coord.SameSheet(cf.Area.Sheet, c.sheet) {
			kept = append(kept, cf)
			continue
		}
		out := shift.RepositionExtending(cf.Area.Range, band, op)
		switch {
		case out.Kind == shift.Removed:
			c.logger.Debug("conditional format dropped", "area", cf.Area.String(), "op", op.String())
			continue
		case out.Kind == shift.Ambiguous:
			c.logger.Debug("conditional format left in place", "area", cf.Area.String(), "op", op.String())
		case out.Moved():
			cf.Area.Range = out.Range
		}
		kept = append(kept, cf)
	}
	clear(c.formats[len(kept):])
	c.formats = kept
	return nil
}

package sheet

import (
	"log/slog"
	"slices"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/shift"
)

// DataValidation constrains the input of one or more ranges.
type DataValidation struct {
	Ranges     []coord.Range
	Type       string
	Operator   string
	Formula1   string
	Formula2   string
	AllowBlank bool
}

// DataValidations is the ordered list of validations of a sheet.
type DataValidations struct {
	items  []*DataValidation
	logger *slog.Logger
}

func newDataValidations(logger *slog.Logger) *DataValidations {
	return &DataValidations{logger: logger}
}

func (d *DataValidations) Add(dv *DataValidation) {
	d.items = append(d.items, dv)
}

// Remove deletes dv and reports whether it was present.
func (d *DataValidations) Remove(dv *DataValidation) bool {
	i := slices.Index(d.items, dv)
	if i < 0 {
		return false
	}
	d.items = slices.Delete(d.items, i, i+1)
	return true
}

// All returns the validations in insertion order.
func (d *DataValidations) All() []*DataValidation {
	return slices.Clone(d.items)
}

func (d *DataValidations) Len() int { return len(d.items) }

// reposition moves every range of every validation, growing ranges that end
// just before inserted lines. Deleted ranges are
// dropped, as is a validation left without ranges.
func (d *DataValidations) reposition(op shift.Op, band coord.Range) error {
	kept := d.items[:0]
	for _, dv := range d.items {
		ranges := make([]coord.Range, 0, len(dv.Ranges))
		for _, r := range dv.Ranges {
			out := shift.RepositionExtending(r, band, op)
			switch out.Kind {
			case shift.Removed:
				d.logger.Debug("validation range dropped", "range", r.String(), "op", op.String())
				continue
			case shift.Ambiguous:
				d.logger.Debug("validation range left in place", "range", r.String(), "op", op.String())
			}
			if !slices.Contains(ranges, out.Range) {
				ranges = append(ranges, out.Range)
			}
		}
		dv.Ranges = ranges
		if len(ranges) > 0 {
			kept = append(kept, dv)
		}
	}
	clear(d.items[len(kept):])
	d.items = kept
	return nil
}

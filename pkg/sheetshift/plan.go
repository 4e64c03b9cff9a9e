package sheetshift

import (
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/models"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/ref"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/shift"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/sheet"
)

// Plan lists the entries of ws that op on band would affect, without
// changing ws. Unchanged entries are omitted.
func Plan(ws *sheet.Worksheet, op shift.Op, band coord.Range, n coord.Notation) []models.Change {
	p := planner{op: op, band: band, notation: n}

	for _, r := range ws.Merged.Ranges() {
		p.add("merged", "", r, shift.Reposition(r, p.band, p.op), false)
	}
	for _, r := range ws.Hyperlinks.Ranges() {
		p.add("hyperlinks", "", r, shift.Reposition(r, p.band, p.op), false)
	}
	for _, cf := range ws.ConditionalFormats.All() {
		if coord.SameSheet(cf.Area.Sheet, ws.Name()) {
			r := cf.Area.Range
			p.add("conditional_formats", "", r, shift.RepositionExtending(r, p.band, p.op), false)
		}
	}
	for _, dv := range ws.DataValidations.All() {
		for _, r := range dv.Ranges {
			p.add("data_validations", "", r, shift.RepositionExtending(r, p.band, p.op), false)
		}
	}
	for _, t := range ws.Tables.All() {
		// A table whose cells are all deleted keeps its collapsed range.
		p.add("tables", t.Name, t.Range, shift.Reposition(t.Range, p.band, p.op), true)
	}
	for _, nr := range ws.NamedRanges.All() {
		for _, text := range nr.Refs {
			ra, err := ref.ParseA1(text)
			if err != nil {
				continue
			}
			target := ra.Sheet
			if target == "" {
				target = nr.Scope
			}
			if coord.SameSheet(target, ws.Name()) {
				r := ra.Resolve(origin)
				p.add("named_ranges", nr.Name, r, shift.Reposition(r, p.band, p.op), false)
			}
		}
	}
	return p.changes
}

type planner struct {
	op       shift.Op
	band     coord.Range
	notation coord.Notation
	changes  []models.Change
}

// add records out for the entry at r. keepRemoved reports the collapsed
// range of a removed entry instead of leaving To empty.
func (p *planner) add(component, name string, r coord.Range, out shift.Outcome, keepRemoved bool) {
	if out.Kind == shift.Unchanged {
		return
	}
	change := models.Change{
		Component: component,
		Name:      name,
		From:      formatRange(r, p.notation),
		Outcome:   out.Kind.String(),
	}
	switch out.Kind {
	case shift.Removed:
		if keepRemoved {
			change.To = formatRange(out.Range, p.notation)
		}
	case shift.Ambiguous:
		change.To = change.From
	default:
		change.To = formatRange(out.Range, p.notation)
	}
	p.changes = append(p.changes, change)
}

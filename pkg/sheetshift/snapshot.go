package sheetshift

import (
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/models"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/ref"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/sheet"
)

var origin = coord.Point{Row: 1, Column: 1}

// Snapshot lists the current state of every collection of ws with ranges
// written in notation n.
func Snapshot(ws *sheet.Worksheet, n coord.Notation) models.SheetSnapshot {
	var snap models.SheetSnapshot

	for _, r := range ws.Merged.Ranges() {
		snap.Merged = append(snap.Merged, formatRange(r, n))
	}

	for _, r := range ws.Hyperlinks.Ranges() {
		link, _ := ws.Hyperlinks.Get(r)
		snap.Hyperlinks = append(snap.Hyperlinks, models.HyperlinkEntry{
			Ref:      formatRange(r, n),
			Target:   link.Target,
			Location: link.Location,
			Tooltip:  link.Tooltip,
		})
	}

	for _, cf := range ws.ConditionalFormats.All() {
		entry := models.ConditionalFormatEntry{Ref: formatArea(cf.Area, n)}
		for _, rule := range cf.Rules {
			entry.Rules = append(entry.Rules, models.RuleEntry{
				Type:     rule.Type,
				Criteria: rule.Criteria,
				Value:    rule.Value,
			})
		}
		snap.ConditionalFormats = append(snap.ConditionalFormats, entry)
	}

	for _, dv := range ws.DataValidations.All() {
		entry := models.ValidationEntry{Type: dv.Type, Operator: dv.Operator}
		for _, r := range dv.Ranges {
			entry.Refs = append(entry.Refs, formatRange(r, n))
		}
		snap.DataValidations = append(snap.DataValidations, entry)
	}

	for _, t := range ws.Tables.All() {
		snap.Tables = append(snap.Tables, models.TableEntry{Name: t.Name, Ref: formatRange(t.Range, n)})
	}

	for _, nr := range ws.NamedRanges.All() {
		entry := models.NameEntry{Name: nr.Name, Scope: nr.Scope, Refs: []string{}}
		for _, text := range nr.Refs {
			entry.Refs = append(entry.Refs, formatReference(text, n))
		}
		snap.NamedRanges = append(snap.NamedRanges, entry)
	}

	return snap
}

func formatRange(r coord.Range, n coord.Notation) string {
	if n != coord.NotationR1C1 {
		return r.String()
	}
	if r.IsSinglePoint() {
		return r.First.StringR1C1()
	}
	return r.First.StringR1C1() + ":" + r.Last.StringR1C1()
}

func formatArea(a coord.Area, n coord.Notation) string {
	if a.Sheet == "" {
		return formatRange(a.Range, n)
	}
	return coord.QuoteSheetName(a.Sheet) + "!" + formatRange(a.Range, n)
}

// formatReference converts an A1 reference of a defined name. Text that is
// not a reference is returned unchanged.
func formatReference(text string, n coord.Notation) string {
	if n != coord.NotationR1C1 {
		return text
	}
	ra, err := ref.ParseA1(text)
	if err != nil {
		return text
	}
	return ra.FormatR1C1(origin, true)
}

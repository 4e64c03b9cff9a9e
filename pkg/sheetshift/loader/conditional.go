package loader

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/sheet"
	"github.com/xuri/excelize/v2"
)

// LoadConditionalFormats copies the conditional formats of the sheet. A
// format applied to several ranges ("A1:A9 C1:C9") yields one entry per
// range, each with its own copy of the rules.
func LoadConditionalFormats(f *excelize.File, ws *sheet.Worksheet, logger *slog.Logger) error {
	formats, err := f.GetConditionalFormats(ws.Name())
	if err != nil {
		return err
	}

	// Map iteration order is random; keep the workbook order stable
	sqrefs := make([]string, 0, len(formats))
	for sqref := range formats {
		sqrefs = append(sqrefs, sqref)
	}
	slices.Sort(sqrefs)

	for _, sqref := range sqrefs {
		rules := convertRules(formats[sqref])
		for _, part := range strings.Fields(sqref) {
			area, err := parseArea(part, ws.Name())
			if err != nil {
				logger.Warn("conditional format skipped", "ref", part, "error", err)
				continue
			}
			ws.ConditionalFormats.Add(&sheet.ConditionalFormat{
				Area:  area,
				Rules: slices.Clone(rules),
			})
		}
	}
	return nil
}

func convertRules(opts []excelize.ConditionalFormatOptions) []sheet.Rule {
	rules := make([]sheet.Rule, 0, len(opts))
	for _, o := range opts {
		rule := sheet.Rule{
			Type:     o.Type,
			Criteria: o.Criteria,
			Value:    o.Value,
		}
		if o.Format != nil {
			rule.Format = *o.Format
		}
		rules = append(rules, rule)
	}
	return rules
}

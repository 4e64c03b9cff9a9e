package loader

import (
	"log/slog"
	"strings"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/ref"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/sheet"
	"github.com/xuri/excelize/v2"
)

// workbookScope is the scope excelize reports for workbook-wide names.
const workbookScope = "Workbook"

// LoadNamedRanges copies every defined name of the workbook, including the
// built-in _xlnm.Print_Area names. Names of every scope are loaded because
// a name local to one sheet may refer to another.
func LoadNamedRanges(f *excelize.File, ws *sheet.Worksheet, logger *slog.Logger) error {
	for _, dn := range f.GetDefinedName() {
		scope := dn.Scope
		if strings.EqualFold(scope, workbookScope) {
			scope = ""
		}
		nr := &sheet.NamedRange{
			Name:    dn.Name,
			Scope:   scope,
			Comment: dn.Comment,
			Refs:    SplitRefersTo(dn.RefersTo),
		}
		if err := ws.NamedRanges.Add(nr); err != nil {
			logger.Warn("named range skipped", "name", dn.Name, "scope", scope, "error", err)
		}
	}
	return nil
}

// SplitRefersTo splits a union such as "Sheet1!$A$1:$B$2,Sheet1!$D$4" into
// its references. Anything other than a plain comma-separated list of A1
// references, e.g. "OFFSET(Sheet1!$A$1,0,0)", is returned as one entry.
func SplitRefersTo(refersTo string) []string {
	text := strings.TrimPrefix(strings.TrimSpace(refersTo), "=")
	if text == "" {
		return nil
	}
	formula := ref.Split(text, coord.NotationA1)
	if len(formula.Tokens) == 0 || !isUnion(formula) {
		return []string{text}
	}
	refs := make([]string, 0, len(formula.Tokens))
	for _, t := range formula.Tokens {
		refs = append(refs, t.Text)
	}
	return refs
}

func isUnion(formula ref.Formula) bool {
	last := len(formula.Segments) - 1
	for i, seg := range formula.Segments {
		seg = strings.TrimSpace(seg)
		if i == 0 || i == last {
			if seg != "" {
				return false
			}
			continue
		}
		if seg != "," {
			return false
		}
	}
	return true
}

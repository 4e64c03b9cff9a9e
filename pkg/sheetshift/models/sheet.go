package models

// SheetSnapshot lists the coordinate-bearing objects of a single sheet.
type SheetSnapshot struct {
	// Merged contains merged cell ranges.
	Merged []string `json:"merged,omitempty" yaml:"merged,omitempty"`
	// Hyperlinks contains linked ranges.
	Hyperlinks []HyperlinkEntry `json:"hyperlinks,omitempty" yaml:"hyperlinks,omitempty"`
	// ConditionalFormats contains conditional formats on the sheet.
	ConditionalFormats []ConditionalFormatEntry `json:"conditional_formats,omitempty" yaml:"conditional_formats,omitempty"`
	// DataValidations contains data validations.
	DataValidations []ValidationEntry `json:"data_validations,omitempty" yaml:"data_validations,omitempty"`
	// Tables contains structured tables.
	Tables []TableEntry `json:"tables,omitempty" yaml:"tables,omitempty"`
	// NamedRanges contains the defined names of the workbook.
	NamedRanges []NameEntry `json:"named_ranges,omitempty" yaml:"named_ranges,omitempty"`
}

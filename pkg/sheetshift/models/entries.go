// Package models defines the report structures produced by sheetshift.
package models

// HyperlinkEntry is a linked range.
type HyperlinkEntry struct {
	// Ref is the linked range, e.g. "A5".
	Ref string `json:"ref" yaml:"ref"`
	// Target is an external URL.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
	// Location is a reference into the workbook.
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
	// Tooltip is the text shown on hover.
	Tooltip string `json:"tooltip,omitempty" yaml:"tooltip,omitempty"`
}

// RuleEntry is one conditional formatting rule.
type RuleEntry struct {
	Type     string `json:"type" yaml:"type"`
	Criteria string `json:"criteria,omitempty" yaml:"criteria,omitempty"`
	Value    string `json:"value,omitempty" yaml:"value,omitempty"`
}

// ConditionalFormatEntry is a conditional format and the area it applies to.
type ConditionalFormatEntry struct {
	// Ref is the qualified area, e.g. "Sheet1!F1:F9".
	Ref   string      `json:"ref" yaml:"ref"`
	Rules []RuleEntry `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// ValidationEntry is a data validation and its ranges.
type ValidationEntry struct {
	Refs     []string `json:"refs" yaml:"refs"`
	Type     string   `json:"type,omitempty" yaml:"type,omitempty"`
	Operator string   `json:"operator,omitempty" yaml:"operator,omitempty"`
}

// TableEntry is a structured table.
type TableEntry struct {
	Name string `json:"name" yaml:"name"`
	Ref  string `json:"ref" yaml:"ref"`
}

// NameEntry is a defined name.
type NameEntry struct {
	Name string `json:"name" yaml:"name"`
	// Scope is the sheet the name is local to; empty for workbook names.
	Scope string   `json:"scope,omitempty" yaml:"scope,omitempty"`
	Refs  []string `json:"refs" yaml:"refs"`
}

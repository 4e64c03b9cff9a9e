package models

// Band represents the cell bounds of the rows or columns an edit covers.
type Band struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1" yaml:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1" yaml:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2" yaml:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2" yaml:"c2"`
}

// Operation describes a structural edit.
type Operation struct {
	// Op is "insert-rows", "insert-columns", "delete-rows" or "delete-columns".
	Op string `json:"op" yaml:"op"`
	// At is the first inserted or deleted row or column.
	At    int  `json:"at" yaml:"at"`
	Count int  `json:"count" yaml:"count"`
	Band  Band `json:"band" yaml:"band"`
}

// Change records how one entry is affected by an edit.
type Change struct {
	// Component is the collection the entry belongs to, e.g. "tables".
	Component string `json:"component" yaml:"component"`
	// Name identifies named entries such as tables and defined names.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	From string `json:"from" yaml:"from"`
	// To is empty when the entry's cells are all deleted. Tables report
	// their collapsed range instead.
	To string `json:"to,omitempty" yaml:"to,omitempty"`
	// Outcome is "translated", "stretched", "shrunk", "removed" or "ambiguous".
	Outcome string `json:"outcome" yaml:"outcome"`
}

// ShiftReport is the result of one structural edit on one sheet.
type ShiftReport struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name" yaml:"book_name"`
	// SheetName is the edited sheet.
	SheetName string `json:"sheet_name" yaml:"sheet_name"`
	// Notation is the reference style of every range in the report.
	Notation  string    `json:"notation" yaml:"notation"`
	Operation Operation `json:"operation" yaml:"operation"`
	// Changes lists the entries that move, shrink, stretch, vanish or are
	// left in place because the edit splits them.
	Changes []Change `json:"changes,omitempty" yaml:"changes,omitempty"`
	// Before is the sheet prior to the edit.
	Before SheetSnapshot `json:"before" yaml:"before"`
	// After is the sheet once the edit has been applied.
	After SheetSnapshot `json:"after" yaml:"after"`
	// SavedTo is the path of the shifted workbook, if it was saved.
	SavedTo string `json:"saved_to,omitempty" yaml:"saved_to,omitempty"`
}

package models

// Workbook represents workbook-level container with per-sheet snapshots.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name" yaml:"book_name"`
	// Sheets maps sheet name to SheetSnapshot.
	Sheets map[string]SheetSnapshot `json:"sheets" yaml:"sheets"`
}

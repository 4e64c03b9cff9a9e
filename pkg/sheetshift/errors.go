package sheetshift

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrInvalidOperation indicates a structural edit that cannot be performed,
// such as a zero count or a band past the sheet edge.
var ErrInvalidOperation = errors.New("invalid operation")

// ShiftError represents an error while loading or shifting one sheet.
type ShiftError struct {
	SheetName string
	Component string // "sheet", a loader component such as "tables", "shift" or "save"
	Err       error
}

func (e *ShiftError) Error() string {
	return fmt.Sprintf("shift error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ShiftError) Unwrap() error {
	return e.Err
}

// NewShiftError creates a new ShiftError.
func NewShiftError(sheetName, component string, err error) *ShiftError {
	return &ShiftError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}

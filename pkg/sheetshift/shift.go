package sheetshift

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/loader"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/models"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/sheet"
	"github.com/xuri/excelize/v2"
)

// Shift applies a structural edit to one sheet of an Excel file and reports
// where every dependent object ends up. The input file is never modified;
// set Options.SavePath to write the shifted workbook elsewhere.
func Shift(path string, opts Options) (*models.ShiftReport, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	band, _ := opts.Band()
	logger := opts.logger()

	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName, err := resolveSheet(f, opts.Sheet)
	if err != nil {
		return nil, err
	}
	ws, err := loadSheet(f, sheetName, logger)
	if err != nil {
		return nil, err
	}

	report := &models.ShiftReport{
		BookName:  filepath.Base(path),
		SheetName: sheetName,
		Notation:  opts.Notation.String(),
		Operation: models.Operation{
			Op:    opts.Op.String(),
			At:    opts.At,
			Count: opts.Count,
			Band: models.Band{
				R1: band.First.Row,
				C1: band.First.Column,
				R2: band.Last.Row,
				C2: band.Last.Column,
			},
		},
		Before:  Snapshot(ws, opts.Notation),
		Changes: Plan(ws, opts.Op, band, opts.Notation),
	}

	if err := ws.Apply(opts.Op, opts.At, opts.Count); err != nil {
		return nil, NewShiftError(sheetName, "shift", err)
	}
	report.After = Snapshot(ws, opts.Notation)

	// Save the shifted workbook
	if opts.SavePath != "" {
		if err := loader.Apply(f, sheetName, opts.Op, opts.At, opts.Count); err != nil {
			return nil, NewShiftError(sheetName, "save", err)
		}
		if err := f.SaveAs(opts.SavePath); err != nil {
			return nil, NewShiftError(sheetName, "save", err)
		}
		report.SavedTo = opts.SavePath
	}

	return report, nil
}

// Inspect lists the coordinate-bearing objects of an Excel file. An empty
// sheetName inspects every sheet.
func Inspect(path, sheetName string, opts Options) (*models.Workbook, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if sheetName != "" {
		name, err := resolveSheet(f, sheetName)
		if err != nil {
			return nil, err
		}
		sheetList = []string{name}
	}

	sheets := make(map[string]models.SheetSnapshot, len(sheetList))
	for _, name := range sheetList {
		ws, err := loadSheet(f, name, opts.logger())
		if err != nil {
			return nil, err
		}
		sheets[name] = Snapshot(ws, opts.Notation)
	}

	return &models.Workbook{
		BookName: filepath.Base(path),
		Sheets:   sheets,
	}, nil
}

func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFormat, path, err)
	}
	return f, nil
}

// resolveSheet maps an empty name to the first sheet.
func resolveSheet(f *excelize.File, name string) (string, error) {
	if name == "" {
		sheetList := f.GetSheetList()
		if len(sheetList) == 0 {
			return "", fmt.Errorf("%w: workbook has no sheets", ErrInvalidFormat)
		}
		return sheetList[0], nil
	}
	if err := loader.CheckSheet(f, name); err != nil {
		return "", NewShiftError(name, "sheet", err)
	}
	return name, nil
}

func loadSheet(f *excelize.File, sheetName string, logger *slog.Logger) (*sheet.Worksheet, error) {
	ws := sheet.New(sheetName, sheet.WithLogger(logger))
	for _, c := range loader.Components() {
		if err := c.Load(f, ws, logger.With("sheet", sheetName, "component", c.Name)); err != nil {
			return nil, NewShiftError(sheetName, c.Name, err)
		}
	}
	return ws, nil
}

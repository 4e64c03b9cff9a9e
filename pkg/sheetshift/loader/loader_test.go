package loader

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/shift"
)

var rng = coord.MustRange

// buildWorkbook saves a workbook with one object of every kind on Sheet1
// and reopens it, the way a real file reaches the loader.
func buildWorkbook(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	_, err := f.NewSheet("Data")
	require.NoError(t, err)

	require.NoError(t, f.MergeCell(sheetName, "D1", "E2"))

	require.NoError(t, f.SetCellValue(sheetName, "A5", "site"))
	require.NoError(t, f.SetCellHyperLink(sheetName, "A5", "https://example.com", "External"))
	require.NoError(t, f.SetCellValue(sheetName, "B5", "jump"))
	require.NoError(t, f.SetCellHyperLink(sheetName, "B5", "Data!A1", "Location"))

	for _, cell := range []string{"A10", "B10", "C10"} {
		require.NoError(t, f.SetCellValue(sheetName, cell, "Header "+cell))
	}
	require.NoError(t, f.AddTable(sheetName, &excelize.Table{
		Range:     "A10:C12",
		Name:      "Sales",
		StyleName: "TableStyleMedium2",
	}))

	dv := excelize.NewDataValidation(true)
	dv.Sqref = "B2:B4 C6"
	require.NoError(t, dv.SetRange(1, 10, excelize.DataValidationTypeWhole, excelize.DataValidationOperatorBetween))
	require.NoError(t, f.AddDataValidation(sheetName, dv))

	format, err := f.NewConditionalStyle(&excelize.Style{Font: &excelize.Font{Color: "9A0511"}})
	require.NoError(t, err)
	require.NoError(t, f.SetConditionalFormat(sheetName, "F1:F9", []excelize.ConditionalFormatOptions{
		{Type: "cell", Criteria: ">", Value: "5", Format: &format},
	}))

	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "Totals",
		RefersTo: "Sheet1!$F$1:$F$9",
	}))
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "Pair",
		RefersTo: "Sheet1!$A$1,Sheet1!$C$3",
		Scope:    sheetName,
	}))

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile), "save test file")

	f2, err := excelize.OpenFile(tmpFile)
	require.NoError(t, err, "open test file")
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestLoad(t *testing.T) {
	f := buildWorkbook(t)

	ws, err := Load(f, "Sheet1", nil)
	require.NoError(t, err)

	assert.Equal(t, []coord.Range{rng("D1:E2")}, ws.Merged.Ranges())

	site, ok := ws.Hyperlinks.Get(rng("A5"))
	require.True(t, ok)
	assert.Equal(t, "https://example.com", site.Target)
	jump, ok := ws.Hyperlinks.Get(rng("B5"))
	require.True(t, ok)
	assert.Equal(t, "Data!A1", jump.Location)

	table, ok := ws.Tables.Get("sales")
	require.True(t, ok)
	assert.Equal(t, rng("A10:C12"), table.Range)
	assert.Equal(t, "TableStyleMedium2", table.Style)
	assert.True(t, table.ShowHeader)

	dvs := ws.DataValidations.All()
	require.Len(t, dvs, 1)
	assert.Equal(t, []coord.Range{rng("B2:B4"), rng("C6")}, dvs[0].Ranges)
	assert.Equal(t, "whole", dvs[0].Type)
	assert.True(t, dvs[0].AllowBlank)

	cfs := ws.ConditionalFormats.All()
	require.Len(t, cfs, 1)
	assert.Equal(t, coord.Area{Sheet: "Sheet1", Range: rng("F1:F9")}, cfs[0].Area)
	require.Len(t, cfs[0].Rules, 1)
	assert.Equal(t, "cell", cfs[0].Rules[0].Type)

	totals, ok := ws.NamedRanges.Get("Totals", "")
	require.True(t, ok)
	assert.Equal(t, []string{"Sheet1!$F$1:$F$9"}, totals.Refs)
	pair, ok := ws.NamedRanges.Get("Pair", "Sheet1")
	require.True(t, ok)
	assert.Equal(t, []string{"Sheet1!$A$1", "Sheet1!$C$3"}, pair.Refs)
}

func TestLoadedSheetFollowsEdits(t *testing.T) {
	f := buildWorkbook(t)
	ws, err := Load(f, "Sheet1", nil)
	require.NoError(t, err)

	require.NoError(t, ws.InsertColumnsBefore(1, 2))

	assert.Equal(t, []coord.Range{rng("F1:G2")}, ws.Merged.Ranges())
	_, ok := ws.Hyperlinks.Get(rng("C5"))
	assert.True(t, ok)
	table, _ := ws.Tables.Get("Sales")
	assert.Equal(t, rng("C10:E12"), table.Range)
	assert.Equal(t, rng("H1:H9"), ws.ConditionalFormats.All()[0].Area.Range)
	totals, _ := ws.NamedRanges.Get("Totals", "")
	assert.Equal(t, []string{"Sheet1!$H$1:$H$9"}, totals.Refs)
}

func TestLoadMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := Load(f, "Nope", nil)
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestLoadCleanSheetLogsNothing(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.MergeCell("Sheet1", "A1", "B2"))
	require.NoError(t, f.MergeCell("Sheet1", "D4", "E5"))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ws, err := Load(f, "Sheet1", logger)
	require.NoError(t, err)
	assert.Equal(t, 2, ws.Merged.Len())
	assert.Empty(t, buf.String())
}

func TestSplitRefersTo(t *testing.T) {
	tests := []struct {
		name     string
		refersTo string
		want     []string
	}{
		{"single", "Sheet1!$A$1:$B$2", []string{"Sheet1!$A$1:$B$2"}},
		{"leading equals", "=Sheet1!$A$1", []string{"Sheet1!$A$1"}},
		{"union", "Sheet1!$A$1:$A$3,'My Sheet'!$C$1", []string{"Sheet1!$A$1:$A$3", "'My Sheet'!$C$1"}},
		{"whole rows", "Sheet1!$1:$2", []string{"Sheet1!$1:$2"}},
		{"formula", "OFFSET(Sheet1!$A$1,0,0,3)", []string{"OFFSET(Sheet1!$A$1,0,0,3)"}},
		{"constant", "42", []string{"42"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitRefersTo(tt.refersTo))
		})
	}
}

func TestApplyMovesCells(t *testing.T) {
	tests := []struct {
		op       shift.Op
		first    int
		count    int
		cell     string
		expected string
	}{
		{shift.InsertRows, 1, 2, "A3", "moved"},
		{shift.DeleteRows, 1, 1, "A1", "below"},
		{shift.InsertColumns, 1, 1, "B1", "moved"},
		{shift.DeleteColumns, 1, 1, "A2", "right"},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			f := excelize.NewFile()
			defer f.Close()
			require.NoError(t, f.SetCellValue("Sheet1", "A1", "moved"))
			require.NoError(t, f.SetCellValue("Sheet1", "A2", "below"))
			require.NoError(t, f.SetCellValue("Sheet1", "B2", "right"))

			require.NoError(t, Apply(f, "Sheet1", tt.op, tt.first, tt.count))

			got, err := f.GetCellValue("Sheet1", tt.cell)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestApplyRejectsBadCount(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	assert.ErrorIs(t, Apply(f, "Sheet1", shift.DeleteRows, 1, 0), coord.ErrOutOfBounds)
}

package sheet

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/shift"
)

var rng = coord.MustRange

func conditionalFormatSheet(t *testing.T) *Worksheet {
	t.Helper()
	ws := New("Sheet1")
	for _, r := range []string{"A1:A1", "A2:B2", "A3:C3", "B4:B6", "C7:D7"} {
		ws.ConditionalFormats.Add(&ConditionalFormat{
			Area:  coord.Area{Range: rng(r)},
			Rules: []Rule{{Type: "cell", Criteria: ">", Value: "0"}},
		})
	}
	return ws
}

func formatRanges(ws *Worksheet) []string {
	var got []string
	for _, cf := range ws.ConditionalFormats.All() {
		got = append(got, cf.Area.Range.First.String()+":"+cf.Area.Range.Last.String())
	}
	return got
}

func TestConditionalFormatsFollowInsertedColumns(t *testing.T) {
	ws := conditionalFormatSheet(t)
	before := ws.ConditionalFormats.All()

	require.NoError(t, ws.InsertColumnsAfter(2, 2))

	assert.Equal(t, []string{"A1:A1", "A2:D2", "A3:E3", "B4:D6", "E7:F7"}, formatRanges(ws))
	// Payload identity survives the move.
	assert.Equal(t, before, ws.ConditionalFormats.All())
	assert.Equal(t, "Sheet1", before[0].Area.Sheet)
}

func TestConditionalFormatsFollowDeletedColumn(t *testing.T) {
	ws := conditionalFormatSheet(t)

	require.NoError(t, ws.DeleteColumns(2, 1))

	assert.Equal(t, []string{"A1:A1", "A2:A2", "A3:B3", "B7:C7"}, formatRanges(ws))
}

func TestConditionalFormatsOnOtherSheetStay(t *testing.T) {
	ws := New("Sheet1")
	other := &ConditionalFormat{Area: coord.Area{Sheet: "Sheet2", Range: rng("C1:C3")}}
	ws.ConditionalFormats.Add(other)

	require.NoError(t, ws.InsertColumnsBefore(1, 3))
	assert.Equal(t, rng("C1:C3"), other.Area.Range)
}

func TestDataValidationsFollowRows(t *testing.T) {
	newSheet := func() (*Worksheet, []*DataValidation) {
		ws := New("Sheet1")
		var dvs []*DataValidation
		for _, r := range []string{"B1:B2", "C1:C3", "D2:F2", "G4:G5"} {
			dv := &DataValidation{Ranges: []coord.Range{rng(r)}, Type: "whole"}
			ws.DataValidations.Add(dv)
			dvs = append(dvs, dv)
		}
		return ws, dvs
	}

	ws, dvs := newSheet()
	require.NoError(t, ws.InsertRowsAfter(2, 2))
	var got []coord.Range
	for _, dv := range dvs {
		got = append(got, dv.Ranges...)
	}
	assert.Equal(t, []coord.Range{rng("B1:B4"), rng("C1:C5"), rng("D2:F4"), rng("G6:G7")}, got)

	ws, dvs = newSheet()
	require.NoError(t, ws.DeleteRows(2, 1))
	assert.Equal(t, 3, ws.DataValidations.Len())
	assert.Equal(t, []coord.Range{rng("B1:B1")}, dvs[0].Ranges)
	assert.Equal(t, []coord.Range{rng("C1:C2")}, dvs[1].Ranges)
	assert.Empty(t, dvs[2].Ranges)
	assert.Equal(t, []coord.Range{rng("G3:G4")}, dvs[3].Ranges)
}

func TestDataValidationKeepsRemainingRanges(t *testing.T) {
	ws := New("Sheet1")
	dv := &DataValidation{Ranges: []coord.Range{rng("B2:B4"), rng("D2:D4")}}
	ws.DataValidations.Add(dv)

	require.NoError(t, ws.DeleteColumns(2, 1))
	assert.Equal(t, []coord.Range{rng("C2:C4")}, dv.Ranges)
	assert.Equal(t, 1, ws.DataValidations.Len())
}

func TestHyperlinksMoveWithSamePayload(t *testing.T) {
	ws := New("Sheet1")
	link := &Hyperlink{Target: "https://example.com"}
	require.NoError(t, ws.Hyperlinks.Add(rng("C3"), link))
	require.NoError(t, ws.Hyperlinks.Add(rng("A1"), &Hyperlink{Location: "Sheet2!A1"}))
	assert.ErrorIs(t, ws.Hyperlinks.Add(rng("A1"), &Hyperlink{}), ErrDuplicate)

	require.NoError(t, ws.InsertRowsBefore(3, 4))

	_, ok := ws.Hyperlinks.Get(rng("C3"))
	assert.False(t, ok)
	moved, ok := ws.Hyperlinks.Get(rng("C7"))
	require.True(t, ok)
	assert.Same(t, link, moved)
	assert.Equal(t, []coord.Range{rng("A1"), rng("C7")}, ws.Hyperlinks.Ranges())

	require.NoError(t, ws.DeleteRows(7, 1))
	assert.Equal(t, []coord.Range{rng("A1")}, ws.Hyperlinks.Ranges())
}

func TestHyperlinkKeyCollision(t *testing.T) {
	ws := New("Sheet1")
	short := &Hyperlink{Target: "x"}
	long := &Hyperlink{Target: "y"}
	require.NoError(t, ws.Hyperlinks.Add(rng("A1:B1"), short))
	require.NoError(t, ws.Hyperlinks.Add(rng("A1:C1"), long))

	err := ws.DeleteColumns(3, 1)
	assert.ErrorIs(t, err, ErrKeyCollision)

	// Nothing moved, nothing lost.
	assert.Equal(t, []coord.Range{rng("A1:B1"), rng("A1:C1")}, ws.Hyperlinks.Ranges())
	got, ok := ws.Hyperlinks.Get(rng("A1:C1"))
	require.True(t, ok)
	assert.Same(t, long, got)
	got, ok = ws.Hyperlinks.Get(rng("A1:B1"))
	require.True(t, ok)
	assert.Same(t, short, got)
}

func TestMovesMayLandOnVacatedKeys(t *testing.T) {
	ws := New("Sheet1")
	first := &Hyperlink{Target: "first"}
	second := &Hyperlink{Target: "second"}
	require.NoError(t, ws.Hyperlinks.Add(rng("A2"), first))
	require.NoError(t, ws.Hyperlinks.Add(rng("A3"), second))

	require.NoError(t, ws.InsertRowsBefore(2, 1))

	assert.Equal(t, []coord.Range{rng("A3"), rng("A4")}, ws.Hyperlinks.Ranges())
	got, _ := ws.Hyperlinks.Get(rng("A3"))
	assert.Same(t, first, got)
	got, _ = ws.Hyperlinks.Get(rng("A4"))
	assert.Same(t, second, got)
}

func TestInsertNextToEntries(t *testing.T) {
	ws := New("Sheet1")
	require.NoError(t, ws.Merged.Add(rng("A1:B1")))
	require.NoError(t, ws.Hyperlinks.Add(rng("A1"), &Hyperlink{Target: "https://example.com"}))
	require.NoError(t, ws.Tables.Add(&Table{Name: "Sales", Range: rng("D2:F5")}))
	name := &NamedRange{Name: "Corner", Refs: []string{"Sheet1!$A$1"}}
	require.NoError(t, ws.NamedRanges.Add(name))
	h, err := ws.Range("H1:H5")
	require.NoError(t, err)
	cf := &ConditionalFormat{Area: coord.Area{Range: rng("J1:J5")}}
	ws.ConditionalFormats.Add(cf)
	dv := &DataValidation{Ranges: []coord.Range{rng("K1:K5")}}
	ws.DataValidations.Add(dv)

	require.NoError(t, ws.InsertRowsBefore(6, 1))
	table, _ := ws.Tables.Get("Sales")
	assert.Equal(t, rng("D2:F5"), table.Range)
	assert.Equal(t, "H1:H5", h.String())
	assert.Equal(t, rng("J1:J6"), cf.Area.Range)
	assert.Equal(t, []coord.Range{rng("K1:K6")}, dv.Ranges)

	require.NoError(t, ws.InsertRowsBefore(2, 2))
	assert.Equal(t, []coord.Range{rng("A1:B1")}, ws.Merged.Ranges())
	assert.Equal(t, []coord.Range{rng("A1")}, ws.Hyperlinks.Ranges())
	assert.Equal(t, []string{"Sheet1!$A$1"}, name.Refs)
	assert.Equal(t, rng("D4:F7"), table.Range)
	assert.Equal(t, "H1:H7", h.String())
	assert.Equal(t, rng("J1:J8"), cf.Area.Range)

	// Inserting above row 1 only moves things down.
	require.NoError(t, ws.InsertRowsBefore(1, 1))
	assert.Equal(t, []coord.Range{rng("A2:B2")}, ws.Merged.Ranges())
	assert.Equal(t, rng("J2:J9"), cf.Area.Range)
	assert.Equal(t, []coord.Range{rng("K2:K9")}, dv.Ranges)
}

func TestAmbiguousEntriesStayInPlace(t *testing.T) {
	ws := New("Sheet1")
	link := &Hyperlink{}
	require.NoError(t, ws.Hyperlinks.Add(rng("D4:E8"), link))

	// A band covering only part of the rows of the stored range.
	require.NoError(t, ws.Hyperlinks.reposition(shift.DeleteColumns, rng("A1:B5")))
	got, ok := ws.Hyperlinks.Get(rng("D4:E8"))
	require.True(t, ok)
	assert.Same(t, link, got)
}

func TestMergedRanges(t *testing.T) {
	ws := New("Sheet1")
	require.NoError(t, ws.Merged.Add(rng("B2:C3")))
	assert.ErrorIs(t, ws.Merged.Add(rng("C3:D4")), ErrDuplicate)
	assert.ErrorIs(t, ws.Merged.Add(rng("E5")), coord.ErrOutOfBounds)

	require.NoError(t, ws.InsertColumnsBefore(1, 1))
	assert.Equal(t, []coord.Range{rng("C2:D3")}, ws.Merged.Ranges())

	covering, ok := ws.Merged.Covering(coord.MustPoint(3, 4))
	require.True(t, ok)
	assert.Equal(t, rng("C2:D3"), covering)

	require.NoError(t, ws.DeleteRows(2, 2))
	assert.Zero(t, ws.Merged.Len())
}

func TestTablesKeepDegenerateRange(t *testing.T) {
	ws := New("Sheet1")
	require.NoError(t, ws.Tables.Add(&Table{Name: "Sales", Range: rng("B2:D5"), ShowHeader: true}))
	assert.ErrorIs(t, ws.Tables.Add(&Table{Name: "sales", Range: rng("F1:G2")}), ErrDuplicate)
	assert.ErrorIs(t, ws.Tables.Add(&Table{Name: "Other", Range: rng("D5:E6")}), ErrDuplicate)

	require.NoError(t, ws.DeleteColumns(2, 3))
	table, ok := ws.Tables.Get("SALES")
	require.True(t, ok)
	assert.Equal(t, rng("B2:B5"), table.Range)
	assert.Equal(t, 1, ws.Tables.Len())

	assert.True(t, ws.Tables.Remove("Sales"))
	assert.False(t, ws.Tables.Remove("Sales"))
}

func TestNamedRangesRewriteReferences(t *testing.T) {
	ws := New("Sheet1")
	block := &NamedRange{Name: "Block", Refs: []string{"Sheet1!$A$1:$B$3", "Other!$A$1:$B$3"}}
	cell := &NamedRange{Name: "Cell", Refs: []string{"Sheet1!$D$2", "Sheet1!$F$9"}}
	column := &NamedRange{Name: "Col", Scope: "Sheet1", Refs: []string{"$C:$C"}}
	constant := &NamedRange{Name: "Rate", Refs: []string{"0.25"}}
	for _, nr := range []*NamedRange{block, cell, column, constant} {
		require.NoError(t, ws.NamedRanges.Add(nr))
	}
	assert.ErrorIs(t, ws.NamedRanges.Add(&NamedRange{Name: "block"}), ErrDuplicate)
	require.NoError(t, ws.NamedRanges.Add(&NamedRange{Name: "block", Scope: "Sheet1"}))

	require.NoError(t, ws.InsertRowsBefore(2, 1))
	assert.Equal(t, []string{"Sheet1!$A$1:$B$4", "Other!$A$1:$B$3"}, block.Refs)
	assert.Equal(t, []string{"Sheet1!$D$3", "Sheet1!$F$10"}, cell.Refs)

	require.NoError(t, ws.DeleteRows(3, 1))
	assert.Equal(t, []string{"Sheet1!$F$9"}, cell.Refs)

	require.NoError(t, ws.InsertColumnsBefore(1, 1))
	assert.Equal(t, []string{"$D:$D"}, column.Refs)
	assert.Equal(t, []string{"0.25"}, constant.Refs)

	got, ok := ws.NamedRanges.Get("COL", "sheet1")
	require.True(t, ok)
	assert.Same(t, column, got)
}

func TestRangeHandleBecomesInvalid(t *testing.T) {
	ws := New("Sheet 1")
	h, err := ws.Range("A1:B2")
	require.NoError(t, err)

	require.NoError(t, ws.DeleteRows(1, 5))
	_, ok := h.Range()
	assert.False(t, ok)
	assert.Equal(t, "#REF!", h.First.String())
	assert.Equal(t, "'Sheet 1'!#REF!", h.First.StringRelative(true))

	ws.Delete()
	assert.Equal(t, "#REF!#REF!", h.First.StringRelative(true))
}

func TestRangeHandleFollowsEdits(t *testing.T) {
	ws := New("Data")
	h, err := ws.Range("B2:C3")
	require.NoError(t, err)

	require.NoError(t, ws.InsertColumnsBefore(1, 2))
	require.NoError(t, ws.InsertRowsAfter(2, 1))
	assert.Equal(t, "D2:E4", h.String())
	assert.Equal(t, "Data!R2C4:R4C5", h.StringNotation(coord.NotationR1C1, true))

	assert.True(t, ws.Release(h))
	require.NoError(t, ws.DeleteColumns(1, 1))
	assert.Equal(t, "D2:E4", h.String())
}

func TestAddressOnDeletedWorksheet(t *testing.T) {
	ws := New("Sheet 1")
	a := ws.Address(1, 1)
	ws.Delete()

	assert.Equal(t, "A1", a.String())
	assert.Equal(t, "#REF!A1", a.StringRelative(true))
	assert.ErrorIs(t, ws.InsertRowsBefore(1, 1), ErrWorksheetDeleted)

	invalid := New("S").Address(0, 1)
	assert.Equal(t, "#REF!", invalid.String())
}

type recorder struct {
	name  string
	calls *[]string
	fail  error
}

func (r recorder) record(event string, band coord.Range) error {
	*r.calls = append(*r.calls, r.name+" "+event+" "+band.String())
	return r.fail
}

func (r recorder) RowsInserted(band coord.Range) error    { return r.record("rows+", band) }
func (r recorder) RowsDeleted(band coord.Range) error     { return r.record("rows-", band) }
func (r recorder) ColumnsInserted(band coord.Range) error { return r.record("cols+", band) }
func (r recorder) ColumnsDeleted(band coord.Range) error  { return r.record("cols-", band) }

func TestListenersRunInSubscriptionOrder(t *testing.T) {
	ws := New("Sheet1")
	var calls []string
	ws.Subscribe(recorder{name: "first", calls: &calls})
	ws.Subscribe(recorder{name: "second", calls: &calls})

	require.NoError(t, ws.InsertRowsBefore(3, 2))
	require.NoError(t, ws.DeleteColumns(2, 1))
	assert.Equal(t, []string{
		"first rows+ A3:XFD4",
		"second rows+ A3:XFD4",
		"first cols- B1:B1048576",
		"second cols- B1:B1048576",
	}, calls)
}

func TestFailingListenerStopsNotification(t *testing.T) {
	ws := New("Sheet1")
	boom := errors.New("boom")
	var calls []string
	ws.Subscribe(recorder{name: "failing", calls: &calls, fail: boom})
	ws.Subscribe(recorder{name: "never", calls: &calls})

	err := ws.InsertColumnsAfter(1, 1)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"failing cols+ B1:B1048576"}, calls)
}

func TestApplyRejectsBadBands(t *testing.T) {
	ws := New("Sheet1")
	assert.ErrorIs(t, ws.DeleteRows(0, 1), coord.ErrOutOfBounds)
	assert.ErrorIs(t, ws.InsertColumnsBefore(3, 0), coord.ErrOutOfBounds)
	assert.ErrorIs(t, ws.InsertRowsAfter(coord.MaxRow, 1), coord.ErrOutOfBounds)
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ws := New("Sheet1", WithLogger(logger))
	require.NoError(t, ws.Hyperlinks.Add(rng("B2"), &Hyperlink{}))

	require.NoError(t, ws.DeleteColumns(2, 1))
	out := buf.String()
	assert.Contains(t, out, "structural edit")
	assert.Contains(t, out, "entry dropped")
	assert.Contains(t, out, "sheet=Sheet1")
}

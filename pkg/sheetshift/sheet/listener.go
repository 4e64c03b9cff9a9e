package sheet

import (
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/shift"
)

// Listener receives structural edits of a worksheet. Each callback gets the
// band of inserted or deleted cells and runs synchronously before the edit
// returns.
type Listener interface {
	RowsInserted(band coord.Range) error
	RowsDeleted(band coord.Range) error
	ColumnsInserted(band coord.Range) error
	ColumnsDeleted(band coord.Range) error
}

// repositioner is implemented by the built-in collections, which handle all
// four edits the same way.
type repositioner interface {
	reposition(op shift.Op, band coord.Range) error
}

// opListener adapts a repositioner to Listener.
type opListener struct{ r repositioner }

func (l opListener) RowsInserted(band coord.Range) error {
	return l.r.reposition(shift.InsertRows, band)
}

func (l opListener) RowsDeleted(band coord.Range) error {
	return l.r.reposition(shift.DeleteRows, band)
}

func (l opListener) ColumnsInserted(band coord.Range) error {
	return l.r.reposition(shift.InsertColumns, band)
}

func (l opListener) ColumnsDeleted(band coord.Range) error {
	return l.r.reposition(shift.DeleteColumns, band)
}

func dispatch(l Listener, op shift.Op, band coord.Range) error {
	switch op {
	case shift.InsertRows:
		return l.RowsInserted(band)
	case shift.DeleteRows:
		return l.RowsDeleted(band)
	case shift.InsertColumns:
		return l.ColumnsInserted(band)
	case shift.DeleteColumns:
		return l.ColumnsDeleted(band)
	}
	return nil
}

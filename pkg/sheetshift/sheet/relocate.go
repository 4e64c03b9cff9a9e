package sheet

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"
	"github.com/ukaji3/sheetshift-go/pkg/sheetshift/shift"
)

// rangeMap is a collection keyed by range. Keys are never changed in place:
// a moved entry is deleted under its old key and inserted under the new one.
type rangeMap[V any] struct {
	kind    string
	entries map[coord.Range]V
	logger  *slog.Logger
}

func newRangeMap[V any](kind string, logger *slog.Logger) rangeMap[V] {
	return rangeMap[V]{kind: kind, entries: make(map[coord.Range]V), logger: logger}
}

func (m *rangeMap[V]) add(r coord.Range, v V) error {
	if _, ok := m.entries[r]; ok {
		return fmt.Errorf("%s %s: %w", m.kind, r, ErrDuplicate)
	}
	m.entries[r] = v
	return nil
}

func (m *rangeMap[V]) get(r coord.Range) (V, bool) {
	v, ok := m.entries[r]
	return v, ok
}

func (m *rangeMap[V]) remove(r coord.Range) bool {
	if _, ok := m.entries[r]; !ok {
		return false
	}
	delete(m.entries, r)
	return true
}

// keys returns the ranges in row-major order.
func (m *rangeMap[V]) keys() []coord.Range {
	keys := make([]coord.Range, 0, len(m.entries))
	for r := range m.entries {
		keys = append(keys, r)
	}
	slices.SortFunc(keys, compareRanges)
	return keys
}

func compareRanges(a, b coord.Range) int {
	switch {
	case a == b:
		return 0
	case a.Less(b):
		return -1
	}
	return 1
}

// reposition applies op to every key. Entries whose range was deleted are
// dropped. When a moved entry would land on a key that stays occupied the
// map is left untouched and ErrKeyCollision is returned.
func (m *rangeMap[V]) reposition(op shift.Op, band coord.Range) error {
	type move struct {
		from, to coord.Range
		value    V
	}
	var moves []move
	var removed []coord.Range
	vacated := make(map[coord.Range]bool)
	for _, key := range m.keys() {
		out := shift.Reposition(key, band, op)
		switch {
		case out.Kind == shift.Ambiguous:
			m.logger.Debug("entry left in place", "kind", m.kind, "range", key.String(), "op", op.String())
		case out.Kind == shift.Removed:
			removed = append(removed, key)
			vacated[key] = true
		case out.Moved():
			moves = append(moves, move{from: key, to: out.Range, value: m.entries[key]})
			vacated[key] = true
		}
	}

	landed := make(map[coord.Range]bool, len(moves))
	for _, mv := range moves {
		_, occupied := m.entries[mv.to]
		if (occupied && !vacated[mv.to]) || landed[mv.to] {
			return fmt.Errorf("%s %s moved to %s: %w", m.kind, mv.from, mv.to, ErrKeyCollision)
		}
		landed[mv.to] = true
	}

	for _, key := range removed {
		delete(m.entries, key)
		m.logger.Debug("entry dropped", "kind", m.kind, "range", key.String(), "op", op.String())
	}
	for _, mv := range moves {
		delete(m.entries, mv.from)
	}
	for _, mv := range moves {
		m.entries[mv.to] = mv.value
	}
	return nil
}

package shift

import "github.com/ukaji3/sheetshift-go/pkg/sheetshift/coord"

// axis is a range projected onto the shift axis (lo..hi) and the cross axis.
type axis struct {
	lo, hi           int
	crossLo, crossHi int
	limit            int
}

func rowAxis(r coord.Range) axis {
	return axis{
		lo: r.First.Row, hi: r.Last.Row,
		crossLo: r.First.Column, crossHi: r.Last.Column,
		limit: coord.MaxRow,
	}
}

func columnAxis(r coord.Range) axis {
	return axis{
		lo: r.First.Column, hi: r.Last.Column,
		crossLo: r.First.Row, crossHi: r.Last.Row,
		limit: coord.MaxColumn,
	}
}

type coverage int

const (
	disjoint coverage = iota
	partial
	covered
)

func crossCoverage(stored, band axis) coverage {
	if stored.crossHi < band.crossLo || stored.crossLo > band.crossHi {
		return disjoint
	}
	if stored.crossLo >= band.crossLo && stored.crossHi <= band.crossHi {
		return covered
	}
	return partial
}

type result struct {
	kind   Kind
	lo, hi int
}

var (
	keep      = result{kind: Unchanged}
	ambiguous = result{kind: Ambiguous}
)

// insert handles band.hi-band.lo+1 lines inserted at band.lo. A range the
// insertion point falls strictly inside grows; ranges starting at or after
// the insertion point move.
func insert(stored, band axis) result {
	at, n := band.lo, band.hi-band.lo+1
	if stored.hi < at {
		return keep
	}
	switch crossCoverage(stored, band) {
	case disjoint:
		return keep
	case partial:
		return ambiguous
	}
	if stored.lo < at {
		return result{kind: Stretched, lo: stored.lo, hi: min(stored.hi+n, stored.limit)}
	}
	return result{kind: Translated, lo: min(stored.lo+n, stored.limit), hi: min(stored.hi+n, stored.limit)}
}

// extend is insert, except that a range ending on the line just before the
// insertion point also grows. Nothing precedes line 1.
func extend(stored, band axis) result {
	at, n := band.lo, band.hi-band.lo+1
	if at == 1 || stored.hi != at-1 {
		return insert(stored, band)
	}
	switch crossCoverage(stored, band) {
	case disjoint:
		return keep
	case partial:
		return ambiguous
	}
	return result{kind: Stretched, lo: stored.lo, hi: min(stored.hi+n, stored.limit)}
}

// remove handles the lines band.lo..band.hi being deleted.
func remove(stored, band axis) result {
	first, last := band.lo, band.hi
	n := last - first + 1
	if stored.hi < first {
		return keep
	}
	switch crossCoverage(stored, band) {
	case disjoint:
		return keep
	case partial:
		return ambiguous
	}

	lo := stored.lo
	switch {
	case stored.lo > last:
		lo = stored.lo - n
	case stored.lo >= first:
		lo = first
	}
	hi := first - 1
	if stored.hi > last {
		hi = stored.hi - n
	}

	switch {
	case hi < lo:
		return result{kind: Removed, lo: first, hi: first}
	case stored.lo > last:
		return result{kind: Translated, lo: lo, hi: hi}
	default:
		return result{kind: Shrunk, lo: lo, hi: hi}
	}
}

func (res result) build(stored coord.Range, set func(coord.Range, int, int) coord.Range) Outcome {
	if res.kind == Unchanged || res.kind == Ambiguous {
		return Outcome{Kind: res.kind, Range: stored}
	}
	r := set(stored, res.lo, res.hi)
	if r == stored && res.kind != Removed {
		return Outcome{Kind: Unchanged, Range: stored}
	}
	return Outcome{Kind: res.kind, Range: r}
}

func setRows(r coord.Range, lo, hi int) coord.Range {
	r.First.Row, r.Last.Row = lo, hi
	return r
}

func setColumns(r coord.Range, lo, hi int) coord.Range {
	r.First.Column, r.Last.Column = lo, hi
	return r
}

package event

import "sort"

// SortByDate orders records by parsed event date ascending. Records
// whose date cannot be parsed sort after every dated record. The sort is
// stable, so records with equal or missing dates keep their relative
// order.
func SortByDate(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		di := ParseDate(records[i].Date)
		dj := ParseDate(records[j].Date)

		// An unparsable date is treated as the maximum representable
		// date: it never sorts before a parseable one.
		if di.IsZero() || dj.IsZero() {
			return !di.IsZero() && dj.IsZero()
		}
		return di.Before(dj)
	})
}

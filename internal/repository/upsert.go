package repository

// UpsertByID applies a candidate record to an ordered sequence and
// returns the next sequence:
//
//   - a record with the same id is replaced in place, keeping its
//     position, so edits never reorder the list;
//   - otherwise the candidate is prepended, so new records display
//     most-recent-first.
//
// The input slice is not mutated.  A zero id never matches anything:
// collections mint a fresh id before calling in, and treating an
// unset id as a key would risk colliding with a stored record.
func UpsertByID[T any](items []T, rec T, id func(T) int64) []T {
	rid := id(rec)
	if rid != 0 {
		for i := range items {
			if id(items[i]) == rid {
				next := make([]T, len(items))
				copy(next, items)
				next[i] = rec
				return next
			}
		}
	}
	next := make([]T, 0, len(items)+1)
	next = append(next, rec)
	next = append(next, items...)
	return next
}

// RemoveByID returns the sequence without the record carrying id,
// preserving the order of everything else.  The boolean reports
// whether anything was removed; removing an absent id is not an error.
func RemoveByID[T any](items []T, rid int64, id func(T) int64) ([]T, bool) {
	for i := range items {
		if id(items[i]) == rid {
			next := make([]T, 0, len(items)-1)
			next = append(next, items[:i]...)
			next = append(next, items[i+1:]...)
			return next, true
		}
	}
	return items, false
}

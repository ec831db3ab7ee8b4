// Package ordering maintains the dense, zero-based sort_order sequence
// used by releases, gallery items and videos. The functions here are
// pure; the db layer runs the resulting assignments inside a single
// transaction.
package ordering

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a reorder batch references an ID outside
// the live collection (or omits one). The whole batch is rejected;
// nothing is persisted.
var ErrNotFound = errors.New("not found")

// Next returns the sort_order for a record appended to a collection:
// 1 + max(existing), or 0 for an empty collection. Values are not
// guaranteed contiguous at creation time; Assignments re-densifies on
// every reorder.
func Next(existing []int) int {
	next := 0
	for _, v := range existing {
		if v >= next {
			next = v + 1
		}
	}
	return next
}

// Assignments maps each ID in orderedIDs to its zero-based index.
// orderedIDs must be an exact permutation of currentIDs: an unknown ID,
// a duplicate, or a missing one rejects the whole batch with ErrNotFound
// so no partial reorder can be persisted.
func Assignments(currentIDs, orderedIDs []int) (map[int]int, error) {
	if len(orderedIDs) != len(currentIDs) {
		return nil, fmt.Errorf("%w: got %d ids, collection has %d", ErrNotFound, len(orderedIDs), len(currentIDs))
	}

	live := make(map[int]bool, len(currentIDs))
	for _, id := range currentIDs {
		live[id] = true
	}

	out := make(map[int]int, len(orderedIDs))
	for idx, id := range orderedIDs {
		if !live[id] {
			return nil, fmt.Errorf("%w: id %d not in collection", ErrNotFound, id)
		}
		if _, dup := out[id]; dup {
			return nil, fmt.Errorf("%w: id %d listed twice", ErrNotFound, id)
		}
		out[id] = idx
	}
	return out, nil
}

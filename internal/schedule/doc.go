// Package schedule implements the bounded in-memory event store.
//
// A Schedule owns an ordered sequence of events and the id sequence that
// names them. Callers only ever receive copies; the internal order changes
// only through Add, Delete and the two in-place sorts.
//
// # Identity
//
// Ids come from IDSequence, a monotonic counter starting at 1. An id is
// allocated only after the draft has been validated and capacity checked, so
// ids within one process are gapless and never reused after deletion.
//
// # Ordering
//
// SortByDateTime and SortByPriority are stable: events with equal keys keep
// their prior relative order. Statistics sorts a temporary copy and leaves the
// internal order untouched.
//
// Schedule is not safe for concurrent use.
package schedule

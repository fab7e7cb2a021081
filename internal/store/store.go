// Package store keeps the per-screen entity list. Mutations happen only
// after a confirmed round trip, always from the owning screen's callback, so
// no locking is needed.
package store

// List holds entities of one screen keyed by their server-assigned id, plus
// a pending flag the screen raises while a submission is in flight.
type List[T any] struct {
	idOf    func(T) int64
	items   []T
	pending bool
}

func NewList[T any](idOf func(T) int64) *List[T] {
	return &List[T]{idOf: idOf}
}

// Set replaces the whole list, as after a fresh fetch.
func (l *List[T]) Set(items []T) {
	l.items = make([]T, len(items))
	copy(l.items, items)
}

// AppendOne adds the canonical record returned by a create call.
func (l *List[T]) AppendOne(item T) {
	l.items = append(l.items, item)
}

// ReplaceOne swaps the entry with the same id for the canonical record
// returned by an update call; unknown ids are a no-op.
func (l *List[T]) ReplaceOne(item T) {
	id := l.idOf(item)

	for i := range l.items {
		if l.idOf(l.items[i]) == id {
			l.items[i] = item
			return
		}
	}
}

// RemoveOne drops the entry by id after a confirmed deletion.
func (l *List[T]) RemoveOne(id int64) {
	kept := l.items[:0]

	for _, item := range l.items {
		if l.idOf(item) != id {
			kept = append(kept, item)
		}
	}

	l.items = kept
}

func (l *List[T]) Get(id int64) (T, bool) {
	for _, item := range l.items {
		if l.idOf(item) == id {
			return item, true
		}
	}

	var zero T

	return zero, false
}

// All returns a copy of the current entries in display order.
func (l *List[T]) All() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)

	return out
}

func (l *List[T]) Len() int {
	return len(l.items)
}

func (l *List[T]) SetPending(pending bool) {
	l.pending = pending
}

func (l *List[T]) Pending() bool {
	return l.pending
}

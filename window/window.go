// Package window provides a fixed-capacity circular buffer with two
// read views: the "all" view covers every retained entry, and the
// "live" view covers only the newest liveLimit entries. The rollup
// code keeps one window per level; the live view is the set of
// entries eligible for the next merge, while the all view serves
// queries over retained history.
package window

import "fmt"

// Window keeps at most sizeLimit entries of type T. Once the window is
// full, a push overwrites the physically oldest slot. Both views
// always yield entries in chronological order.
type Window[T any] struct {
	sizeLimit int
	liveLimit int

	// current points at the oldest slot once the window is full, and
	// at the next empty slot before that.
	current int
	data    []T
}

// New creates a window retaining sizeLimit entries, of which the
// newest liveLimit form the live view.
func New[T any](sizeLimit int, liveLimit int) (*Window[T], error) {
	if sizeLimit <= 0 {
		return nil, fmt.Errorf("window: the size limit must be positive; got %d", sizeLimit)
	}
	if liveLimit > sizeLimit {
		return nil, fmt.Errorf("window: the live limit %d may not exceed the size limit %d", liveLimit, sizeLimit)
	}

	return &Window[T]{
		sizeLimit: sizeLimit,
		liveLimit: liveLimit,
		data:      make([]T, 0, sizeLimit),
	}, nil
}

// Push adds a new entry, overwriting the oldest one if the window is
// full. It runs in constant time.
func (w *Window[T]) Push(value T) {
	if len(w.data) < w.sizeLimit {
		w.data = append(w.data, value)
		w.current++
	} else {
		w.data[w.current] = value
		w.current++
	}

	// current wraps back to zero at the size limit.
	if w.current >= w.sizeLimit {
		w.current = 0
	}
}

// Empty reports whether no entries have been pushed.
func (w *Window[T]) Empty() bool {
	return len(w.data) == 0
}

// AllLen returns the number of retained entries.
func (w *Window[T]) AllLen() int {
	return len(w.data)
}

// LiveLen returns the number of live entries.
func (w *Window[T]) LiveLen() int {
	if len(w.data) > w.liveLimit {
		return w.liveLimit
	}
	return len(w.data)
}

// SizeLimit returns the configured retention capacity.
func (w *Window[T]) SizeLimit() int {
	return w.sizeLimit
}

// LiveLimit returns the configured live capacity.
func (w *Window[T]) LiveLimit() int {
	return w.liveLimit
}

// indexNewest returns the physical slot of the newest entry.
func (w *Window[T]) indexNewest() (int, bool) {
	if len(w.data) == 0 {
		return 0, false
	}

	switch {
	case len(w.data) < w.sizeLimit:
		return len(w.data) - 1, true
	case w.current > 0:
		return w.current - 1, true
	default:
		return len(w.data) - 1, true
	}
}

// Newest returns a pointer to the most recently pushed entry, or false
// if the window is empty. The pointer stays valid until the slot is
// overwritten by a later push.
func (w *Window[T]) Newest() (*T, bool) {
	index, ok := w.indexNewest()
	if !ok {
		return nil, false
	}
	return &w.data[index], true
}

// IndexAll returns the index-th entry of the all view, oldest first.
// It returns false if the view currently has fewer entries, and panics
// if the index can never be valid for this window.
func (w *Window[T]) IndexAll(index int) (*T, bool) {
	if index < 0 || index >= w.sizeLimit {
		panic(fmt.Sprintf("window: IndexAll(%d) exceeds the size limit %d", index, w.sizeLimit))
	}

	if index >= len(w.data) {
		return nil, false
	}

	internal := index
	if len(w.data) >= w.sizeLimit {
		internal = w.current + index
	}
	if internal >= w.sizeLimit {
		internal -= w.sizeLimit
	}

	return &w.data[internal], true
}

// IndexLive returns the index-th entry of the live view, oldest first.
// It returns false if the view currently has fewer entries, and panics
// if the index can never be valid for this window.
func (w *Window[T]) IndexLive(index int) (*T, bool) {
	if index < 0 || index >= w.liveLimit {
		panic(fmt.Sprintf("window: IndexLive(%d) exceeds the live limit %d", index, w.liveLimit))
	}

	if index >= len(w.data) {
		return nil, false
	}

	// Entries older than the live view are retained for queries only.
	retained := w.sizeLimit - w.liveLimit

	// The unwrapped shortcuts apply only while the window is filling;
	// a full window may hold its oldest entry at any physical slot.
	var internal int
	switch {
	case len(w.data) >= w.sizeLimit:
		internal = w.current + index + retained
	case len(w.data) <= w.liveLimit:
		internal = index
	default:
		// Not yet full, so current equals len(data).
		internal = index + w.current - w.liveLimit
	}

	if internal >= w.sizeLimit {
		internal -= w.sizeLimit
	}

	return &w.data[internal], true
}

// Clear removes all entries but keeps the configured capacities.
func (w *Window[T]) Clear() {
	w.current = 0
	w.data = w.data[:0]
}

// scan selects the view an iterator walks.
type scan int

const (
	scanAll scan = iota
	scanLive
)

// Iterator walks one view of a window, oldest entry first. It is
// valid only for the buffer state at creation; a push invalidates it.
type Iterator[T any] struct {
	window    *Window[T]
	index     int
	remaining int
}

// IterAll returns an iterator over the all view.
func (w *Window[T]) IterAll() *Iterator[T] {
	return newIterator(w, scanAll)
}

// IterLive returns an iterator over the live view.
func (w *Window[T]) IterLive() *Iterator[T] {
	return newIterator(w, scanLive)
}

func newIterator[T any](w *Window[T], view scan) *Iterator[T] {
	if len(w.data) == 0 {
		return &Iterator[T]{window: w}
	}

	retained := w.sizeLimit - w.liveLimit

	limit := w.sizeLimit
	if view == scanLive {
		limit = w.liveLimit
	}

	notFull := len(w.data) < w.sizeLimit
	// The whole buffer is the view only while it is still filling; a
	// full buffer may hold its oldest entry at any physical slot.
	partial := notFull && limit >= len(w.data)

	remaining := limit
	if limit > len(w.data) {
		remaining = len(w.data)
	}

	var index int
	switch {
	case view == scanAll && notFull:
		index = 0
	case view == scanAll:
		index = w.current
	case partial:
		index = 0
	case notFull:
		index = len(w.data) - limit
	default:
		index = w.current + retained
		if index >= len(w.data) {
			index -= len(w.data)
		}
	}

	return &Iterator[T]{window: w, index: index, remaining: remaining}
}

// Next returns the next entry, or false once the view is exhausted.
func (it *Iterator[T]) Next() (*T, bool) {
	if it.remaining == 0 {
		return nil, false
	}

	result := &it.window.data[it.index]

	it.index++
	if it.index >= len(it.window.data) {
		it.index = 0
	}
	it.remaining--

	return result, true
}

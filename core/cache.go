package core

// EntryState is where a cache entry stands relative to the document version.
type EntryState int

const (
	EntryEmpty EntryState = iota
	EntryValid
	EntryStale
)

func (s EntryState) String() string {
	switch s {
	case EntryValid:
		return "valid"
	case EntryStale:
		return "stale"
	default:
		return "empty"
	}
}

// Entry caches one value derived from a document, stamped with the document
// version it was computed at. The zero value is empty.
type Entry[T any] struct {
	value        T
	version      uint64
	filled       bool
	computations int
}

// State reports the entry's state against the current document version.
func (e *Entry[T]) State(current uint64) EntryState {
	switch {
	case !e.filled:
		return EntryEmpty
	case e.version == current:
		return EntryValid
	default:
		return EntryStale
	}
}

// GetOrCompute returns the cached value when it is valid for current,
// otherwise it calls compute, stores the result and stamps it with current.
func (e *Entry[T]) GetOrCompute(current uint64, compute func() T) T {
	if e.State(current) == EntryValid {
		return e.value
	}

	e.value = compute()
	e.version = current
	e.filled = true
	e.computations++

	return e.value
}

// Invalidate empties the entry so the next read recomputes it.
func (e *Entry[T]) Invalidate() {
	var zero T
	e.value = zero
	e.filled = false
}

// Computations counts how many times the value has been computed.
func (e *Entry[T]) Computations() int {
	return e.computations
}

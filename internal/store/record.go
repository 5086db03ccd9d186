package store

import (
	"sync/atomic"
	"unsafe"
)

// Record is a heap-allocated, type-erased entity record shared through
// atomic reference counting. Its counter starts at 1, representing the
// owning Pool's holding; every cloned Handle adds 1, every release (Handle
// drop, or the Pool giving up its own holding on removal) subtracts 1. When
// the count reaches zero the Extractor's dropper runs exactly once.
//
// Go's sync/atomic operations are already sequentially consistent on every
// platform this module targets, stronger than a relaxed increment paired
// with a release-ordered decrement would require — there is no looser
// ordering to ask the runtime for, so plain atomic.Int64.Add is used for
// both directions.
type Record struct {
	data      unsafe.Pointer
	counter   *atomic.Int64
	extractor *Extractor
}

// NewRecord boxes value on the heap, type-erases it, and returns a Record
// with its refcount initialized to 1 (the caller's — typically a Pool's —
// holding).
func NewRecord[R Extractable](value R, extractor *Extractor) *Record {
	boxed := new(R)
	*boxed = value

	counter := new(atomic.Int64)
	counter.Store(1)

	return &Record{
		data:      unsafe.Pointer(boxed),
		counter:   counter,
		extractor: extractor,
	}
}

// Extractor returns the record's offset table, shared across every clone.
func (r *Record) Extractor() *Extractor { return r.extractor }

// clone increments the refcount and returns a new holder pointing at the
// same underlying data and counter.
func (r *Record) clone() *Record {
	r.counter.Add(1)
	return &Record{data: r.data, counter: r.counter, extractor: r.extractor}
}

// Release decrements the refcount; when it transitions to zero, the
// Extractor's drop procedure runs on the type-erased data pointer. Must be
// called exactly once per holding (one NewRecord, or one clone).
func (r *Record) Release() {
	if r.counter.Add(-1) == 0 {
		r.extractor.dropRecord(r.data)
	}
}

// RefCount reports the current holder count. Diagnostic only; the value is
// stale the instant it's read under concurrent access.
func (r *Record) RefCount() int64 { return r.counter.Load() }

func (r *Record) fieldAt(offset uintptr) unsafe.Pointer {
	return unsafe.Add(r.data, offset)
}

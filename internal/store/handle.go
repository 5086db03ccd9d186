package store

import "reflect"

// Handle[T] is a shared, typed view of a sub-region of a live Record. As
// long as a Handle is held, the Record it points into cannot be
// deallocated, even across a Pool removal racing with the Handle's creation.
type Handle[T any] struct {
	target *T
	record *Record
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// TypeOf exposes typeOf to other internal packages that need a record or
// query type's reflect.Type without constructing a value of it.
func TypeOf[T any]() reflect.Type {
	return typeOf[T]()
}

// MakeHandle looks up T in rec's Extractor; if admitted, it clones rec
// (bumping the refcount) and returns a Handle whose target points at
// rec.data + offset_for(T). Returns (zero, false) if T is not extractable
// from rec's record type.
func MakeHandle[T any](rec *Record) (Handle[T], bool) {
	off, ok := rec.extractor.OffsetOf(typeOf[T]())
	if !ok {
		return Handle[T]{}, false
	}
	cloned := rec.clone()
	return Handle[T]{target: (*T)(cloned.fieldAt(off)), record: cloned}, true
}

// Valid reports whether h points at a live record. The zero Handle is never valid.
func (h Handle[T]) Valid() bool { return h.target != nil }

// Get returns the shared pointer to T. Its lifetime is bounded by h.
func (h Handle[T]) Get() *T { return h.target }

// Clone shares the underlying record (refcount +1) and copies the target pointer.
func (h Handle[T]) Clone() Handle[T] {
	if h.record == nil {
		return h
	}
	return Handle[T]{target: h.target, record: h.record.clone()}
}

// Release drops this Handle's holding on the underlying record. Go has no
// destructors, so callers must call Release explicitly once they are done
// with a Handle — there is no finalizer-based auto-release; the dropper
// must run deterministically at the moment the last holding goes away, not
// whenever the garbage collector next happens to run.
func (h Handle[T]) Release() {
	if h.record != nil {
		h.record.Release()
	}
}

// ReExtract extracts sub-type U from the same record h points into,
// sharing its refcount. Go does not allow a method to introduce type
// parameters beyond its receiver's, so this is a free function rather than
// a method on Handle[T]; entitycore.ReExtract re-exports it unchanged.
func ReExtract[U, T any](h Handle[T]) (Handle[U], bool) {
	if h.record == nil {
		return Handle[U]{}, false
	}
	return MakeHandle[U](h.record)
}

package store

import (
	"reflect"
	"unsafe"
)

// Extractor is the per-record-type runtime table built once from a record
// type's static Metadata: {sub-type -> offset}, plus the thunk that runs the
// record's drop procedure. It is shared (by pointer) across every Record and
// Pool of its record type.
type Extractor struct {
	recordType reflect.Type
	offsets    map[reflect.Type]uintptr
	dropper    func(unsafe.Pointer)
	size       uintptr
	align      uintptr
}

// BuildExtractor flattens R's static metadata into a single offset table.
// Every record is implicitly extractable as itself at offset 0; that entry
// is seeded before the declared metadata is flattened so an explicit Leaf
// for the record's own type can never silently shadow it.
func BuildExtractor[R Extractable]() *Extractor {
	var zero R
	rt := reflect.TypeOf(zero)

	offsets := make(map[reflect.Type]uintptr)
	offsets[rt] = 0
	flatten(zero.EntityMetadata(), 0, offsets)

	e := &Extractor{
		recordType: rt,
		offsets:    offsets,
		dropper:    dropperFor[R](),
		size:       unsafe.Sizeof(zero),
		align:      unsafe.Alignof(zero),
	}

	if debugAssertsEnabled {
		debugAssertMetadata(e)
	}

	return e
}

// dropperFor captures R's concrete type at construction time, while it is
// still statically known, so the dropper thunk can recover *R from the
// type-erased pointer it is later called with.
func dropperFor[R Extractable]() func(unsafe.Pointer) {
	return func(ptr unsafe.Pointer) {
		rec := (*R)(ptr)
		if d, ok := any(rec).(Dropper); ok {
			d.Drop()
		}
	}
}

// flatten performs a depth-first walk of the metadata tree: for each Leaf,
// insert (type, base+offset); for each Branch, insert it too AND recurse
// with base shifted to the branch's own offset. The first insertion of a
// given type wins; later collisions for the same record type are a
// metadata-generator bug and are intentionally not re-checked here (a
// constant-time map write would not even surface the conflict).
func flatten(nodes Metadata, base uintptr, into map[reflect.Type]uintptr) {
	for _, n := range nodes {
		off := base + n.Offset
		if _, exists := into[n.Type]; !exists {
			into[n.Type] = off
		}
		if n.Kind == Branch && len(n.Children) > 0 {
			flatten(n.Children, off, into)
		}
	}
}

// Admits reports whether t is reachable from this record type's root.
func (e *Extractor) Admits(t reflect.Type) bool {
	_, ok := e.offsets[t]
	return ok
}

// OffsetOf returns t's byte offset from the record root, if extractable.
func (e *Extractor) OffsetOf(t reflect.Type) (uintptr, bool) {
	off, ok := e.offsets[t]
	return off, ok
}

// RecordType returns the archetype identity this Extractor was built for.
func (e *Extractor) RecordType() reflect.Type { return e.recordType }

// Size and Align expose the record's layout for debug assertions elsewhere.
func (e *Extractor) Size() uintptr  { return e.size }
func (e *Extractor) Align() uintptr { return e.align }

// dropRecord runs the registered dropper on ptr. Callers must ensure this
// runs exactly once, when the last holder of the owning Record releases it.
func (e *Extractor) dropRecord(ptr unsafe.Pointer) {
	e.dropper(ptr)
}

//go:build entitycore_debug

package store

import "fmt"

const debugAssertsEnabled = true

// debugAssertMetadata checks the invariants a metadata generator must
// uphold: every (offset, type) pair fits within the record, with the
// offset aligned for that type. It only runs when this file is compiled
// in — release builds skip it entirely.
func debugAssertMetadata(e *Extractor) {
	for t, off := range e.offsets {
		if t == e.recordType {
			continue // the implicit self-leaf is always offset 0
		}
		sz := t.Size()
		if off+sz > e.size {
			panic(fmt.Sprintf("entitycore: metadata offset %d + size %d exceeds record %s size %d for field type %s",
				off, sz, e.recordType, e.size, t))
		}
		if align := uintptr(t.Align()); align > 0 && off%align != 0 {
			panic(fmt.Sprintf("entitycore: metadata offset %d for field type %s is not aligned to %d within record %s",
				off, t, align, e.recordType))
		}
	}
}

package store

import "sync"

// EntityID is the 32-bit, monotonically assigned identifier returned by
// World.Add. Wraparound is a fatal error, not handled by this package.
type EntityID uint32

type entry struct {
	id     EntityID
	record *Record
}

// Pool is the ordered collection of (EntityID, Record) pairs for one record
// type, the "archetype", protected by a single reader-writer lock. Insert
// and Remove require the write lock; SnapshotHandles only ever takes the
// read lock.
type Pool struct {
	extractor *Extractor
	mu        sync.RWMutex
	entries   []entry
}

// NewPool creates an empty Pool bound to extractor; every record later
// inserted must share this exact extractor (pointer-equal).
func NewPool(extractor *Extractor) *Pool {
	return &Pool{extractor: extractor}
}

// Extractor returns the archetype's shared offset table.
func (p *Pool) Extractor() *Extractor { return p.extractor }

// Insert appends (id, rec) to the pool. Caller must have already obtained a
// holding on rec (its refcount already accounts for this insertion).
func (p *Pool) Insert(id EntityID, rec *Record) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = append(p.entries, entry{id: id, record: rec})
}

// Remove locates id by linear scan and swap-removes it, returning the
// removed Record so the caller can release the pool's holding on it. Order
// within the pool is not a public contract.
func (p *Pool) Remove(id EntityID) (*Record, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.entries {
		if p.entries[i].id != id {
			continue
		}
		rec := p.entries[i].record
		last := len(p.entries) - 1
		p.entries[i] = p.entries[last]
		p.entries = p.entries[:last]
		return rec, true
	}
	return nil, false
}

// LocateAndMakeHandle finds id's Record and clones a Handle[T] into it
// without removing it from the pool, for World.Extract. Go does not allow a
// method to introduce a type parameter beyond its receiver's, so — like
// MakeHandle itself — this is a free function rather than a method on Pool.
// The locate and the clone happen under the same read-lock critical
// section, exactly like SnapshotHandles, so a concurrent Remove cannot
// swap-remove and fully release the entry in the window between finding it
// and cloning it. Reports (zero, false) if id is unknown or its record does
// not admit T.
func LocateAndMakeHandle[T any](p *Pool, id EntityID) (Handle[T], bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for i := range p.entries {
		if p.entries[i].id != id {
			continue
		}
		return MakeHandle[T](p.entries[i].record)
	}
	return Handle[T]{}, false
}

// Len reports the number of live entries. Diagnostic only.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.entries)
}

// QueryPair is one snapshotted (EntityID, Handle[T]) result.
type QueryPair[T any] struct {
	ID     EntityID
	Handle Handle[T]
}

// SnapshotHandles clones a Handle[T] plus EntityID for every live entry, all
// under the pool's read lock, and returns them in a buffer borrowed from the
// per-type buffer pool (release it with ReleaseBuffer once copied out).
// Reports admits=false without taking the lock if this pool's extractor does
// not admit T — callers skip such pools entirely.
func SnapshotHandles[T any](p *Pool) (pairs []QueryPair[T], admits bool) {
	if !p.extractor.Admits(typeOf[T]()) {
		return nil, false
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	buf := acquireBuffer[T]()
	for _, e := range p.entries {
		h, ok := MakeHandle[T](e.record)
		if !ok {
			continue
		}
		buf = append(buf, QueryPair[T]{ID: e.id, Handle: h})
	}
	return buf, true
}

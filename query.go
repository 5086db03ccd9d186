package entitycore

import (
	"reflect"

	"github.com/kestrelgame/entitycore/internal/store"
	"github.com/kestrelgame/entitycore/pkg/parallelquery"
	"github.com/kestrelgame/entitycore/pkg/sequence"
)

// QueryEntry is one (EntityID, Handle[T]) result yielded by Query or
// ParallelQuery. The caller owns the Handle and must Release it.
type QueryEntry[T any] struct {
	ID     EntityID
	Handle Handle[T]
}

// Query returns every live entity whose record admits T, as a lazily-pulled
// sequence. Each matching Pool is briefly read-locked to clone its Handles
// into a buffer; the lock is released before the buffer is ever iterated,
// so query results cannot observe a Pool mutation mid-scan but also never
// hold a Pool lock across caller code.
func Query[T any](w *World) *sequence.Iterator[QueryEntry[T]] {
	var results []QueryEntry[T]

	w.archetypes.ForEach(func(_ reflect.Type, p *store.Pool) {
		pairs, admits := store.SnapshotHandles[T](p)
		if !admits {
			return
		}
		for _, pair := range pairs {
			results = append(results, QueryEntry[T]{ID: pair.ID, Handle: pair.Handle})
		}
		store.ReleaseBuffer(pairs)
	})

	return sequence.From(results)
}

// ParallelQuery behaves like Query, but snapshots every admitting Pool
// concurrently, bounded by the World's configured WorkerCount, before
// flattening the results into a single sequence. Prefer this over Query
// when many archetypes admit T and the per-pool snapshot work (cloning many
// Handles) is large enough to be worth parallelizing.
func ParallelQuery[T any](w *World) *sequence.Iterator[QueryEntry[T]] {
	type poolRef struct {
		pool *store.Pool
	}

	var pools []poolRef
	w.archetypes.ForEach(func(_ reflect.Type, p *store.Pool) {
		if p.Extractor().Admits(store.TypeOf[T]()) {
			pools = append(pools, poolRef{pool: p})
		}
	})

	perPool := parallelquery.Collect(pools, w.cfg.WorkerCount, func(ref poolRef) []QueryEntry[T] {
		pairs, admits := store.SnapshotHandles[T](ref.pool)
		if !admits {
			return nil
		}
		entries := make([]QueryEntry[T], len(pairs))
		for i, pair := range pairs {
			entries[i] = QueryEntry[T]{ID: pair.ID, Handle: pair.Handle}
		}
		store.ReleaseBuffer(pairs)
		return entries
	})

	var results []QueryEntry[T]
	for _, entries := range perPool {
		results = append(results, entries...)
	}

	return sequence.From(results)
}


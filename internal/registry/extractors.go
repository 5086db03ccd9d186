// Package registry holds World-scoped caches shared across every operation:
// the Extractor cache (one per record type, built once) and the Archetypes
// map (one Pool per record type, sharded for concurrent access).
package registry

import (
	"sync"

	"github.com/kestrelgame/entitycore/internal/store"
)

// Extractors caches one *store.Extractor per record type. Building an
// Extractor walks the type's whole metadata tree, so it is built once per
// record type for the lifetime of a World, never per-entity (only racing
// first requests may each build one; a single one is kept, see GetOrBuild).
type Extractors struct {
	cache sync.Map // map[reflect.Type]*store.Extractor
}

// NewExtractors returns an empty extractor cache.
func NewExtractors() *Extractors {
	return &Extractors{}
}

// GetOrBuild returns the cached Extractor for R, building it if this is the
// first request for R. If two goroutines race to build the same type's
// Extractor, both builds proceed independently and the loser's result is
// discarded in favor of whichever finished the LoadOrStore first — both are
// equivalent tables, so which one wins is immaterial.
func GetOrBuild[R store.Extractable](e *Extractors) *store.Extractor {
	key := store.TypeOf[R]()

	if v, ok := e.cache.Load(key); ok {
		return v.(*store.Extractor)
	}

	built := store.BuildExtractor[R]()
	actual, _ := e.cache.LoadOrStore(key, built)
	return actual.(*store.Extractor)
}

package entitycore

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/kestrelgame/entitycore/internal/config"
	"github.com/kestrelgame/entitycore/internal/obslog"
	"github.com/kestrelgame/entitycore/internal/registry"
	"github.com/kestrelgame/entitycore/internal/store"
	"github.com/kestrelgame/entitycore/internal/wiring"
)

// World owns every entity's storage: one Pool per record type, reached
// through a shared Extractor cache, plus the id allocator and the index
// that remembers which record type each live EntityID belongs to.
type World struct {
	id uuid.UUID

	archetypes  *registry.Archetypes
	extractors  *registry.Extractors
	entityIndex sync.Map // map[EntityID]reflect.Type

	nextID atomic.Uint32

	log obslog.Log
	cfg config.WorldConfig
}

// NewWorld creates an empty World. A zero-value cfg is replaced with
// config.DefaultWorldConfig(); pass one explicitly (via config.LoadJSON or
// config.LoadYAML) to opt into non-default shard counts, worker pools, or
// log levels — a World never reads configuration implicitly.
func NewWorld(cfg config.WorldConfig) *World {
	cfg = wiring.ResolveConfig(cfg)

	level := obslog.LevelInfo
	if lvl, ok := obslog.ParseLevel(cfg.LogLevel); ok {
		level = lvl
	}

	id := uuid.New()
	return &World{
		id:         id,
		archetypes: registry.NewArchetypes(cfg.ArchetypeShards),
		extractors: registry.NewExtractors(),
		log:        obslog.New(level).With(obslog.String("world", id.String())),
		cfg:        cfg,
	}
}

// ID reports this World's identity, useful for disambiguating log lines
// when several Worlds are alive in the same process.
func (w *World) ID() uuid.UUID { return w.id }

// allocateID hands out the next EntityID, returning ErrEntityIDExhausted
// instead of wrapping once every value of EntityID has been issued.
func (w *World) allocateID() (EntityID, error) {
	for {
		cur := w.nextID.Load()
		if cur == ^uint32(0) {
			return 0, ErrEntityIDExhausted
		}
		if w.nextID.CompareAndSwap(cur, cur+1) {
			return EntityID(cur), nil
		}
	}
}

// Add inserts value as a new entity and returns its EntityID. The record
// type R's Extractor is built on first use and cached for the life of w, so
// later Adds of the same R do not walk its metadata again.
//
// Go forbids a method from introducing type parameters beyond its
// receiver's, so Add is a free function rather than a *World method.
func Add[R Extractable](w *World, value R) (EntityID, error) {
	id, err := w.allocateID()
	if err != nil {
		return 0, err
	}

	extractor := registry.GetOrBuild[R](w.extractors)
	rt := extractor.RecordType()
	pool := w.archetypes.GetOrCreate(rt, extractor)

	rec := store.NewRecord(value, extractor)
	pool.Insert(id, rec)
	w.entityIndex.Store(id, rt)

	w.log.Debug("entity added", obslog.Uint32("id", uint32(id)), obslog.String("type", rt.String()))
	return id, nil
}

// Remove releases the World's holding on id's record and forgets id. If
// every Handle derived from the entity has already been released, this is
// also the moment its Dropper (if any) runs; otherwise the drop is deferred
// until the last outstanding Handle is released.
func Remove(w *World, id EntityID) error {
	rtAny, ok := w.entityIndex.Load(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownEntity, id)
	}
	rt := rtAny.(reflect.Type)

	pool, ok := w.archetypes.Get(rt)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownEntity, id)
	}

	rec, ok := pool.Remove(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownEntity, id)
	}

	w.entityIndex.Delete(id)
	rec.Release()

	w.log.Debug("entity removed", obslog.Uint32("id", uint32(id)))
	return nil
}

// Extract returns a Handle[T] into id's record, if id is live and its
// record type admits T. The returned Handle shares the record's refcount
// and must be released by the caller once no longer needed.
//
// Like Add, this must be a free function: Go does not allow *World.Extract
// to introduce its own type parameter T independent of any receiver type
// parameter.
func Extract[T any](w *World, id EntityID) (Handle[T], bool) {
	rtAny, ok := w.entityIndex.Load(id)
	if !ok {
		return Handle[T]{}, false
	}
	rt := rtAny.(reflect.Type)

	pool, ok := w.archetypes.Get(rt)
	if !ok {
		return Handle[T]{}, false
	}

	return store.LocateAndMakeHandle[T](pool, id)
}

// Len reports the total number of live entities across every archetype.
func Len(w *World) int {
	total := 0
	w.archetypes.ForEach(func(_ reflect.Type, p *store.Pool) {
		total += p.Len()
	})
	return total
}

// Close releases World-held resources that are not tied to any individual
// entity, currently just its logger. It does not remove any entities —
// callers that need every Dropper to run should Remove each entity first.
//
// The logger flush is bounded by cfg.ShutdownTimeout: if it has not returned
// by then, Close gives up waiting and returns ErrShutdownTimeout rather than
// blocking the caller indefinitely on a stalled log sink.
func (w *World) Close() error {
	done := make(chan error, 1)
	go func() { done <- w.log.Close() }()

	timeout := w.cfg.ShutdownTimeout
	if timeout <= 0 {
		return <-done
	}

	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		return ErrShutdownTimeout
	}
}

package registry

import (
	"reflect"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/kestrelgame/entitycore/internal/store"
)

const defaultShardCount = 16

// shard is one bucket of the Archetypes map: its own mutex guarding its own
// map, so lookups and creations for record types landing in different
// shards never serialize against each other.
type shard struct {
	mu    sync.RWMutex
	pools map[reflect.Type]*store.Pool
}

// Archetypes is the World-wide map from record type to its Pool, sharded by
// a hash of the type's name so unrelated archetypes never contend on the
// same lock. The lock hierarchy is: a shard's lock (brief, to look up or
// install a Pool) is always released before the returned Pool's own lock is
// ever taken — no caller holds both at once.
type Archetypes struct {
	shards []shard
}

// NewArchetypes creates an Archetypes map with the given shard count,
// falling back to a sane default for count <= 0.
func NewArchetypes(shardCount int) *Archetypes {
	if shardCount <= 0 {
		shardCount = defaultShardCount
	}
	a := &Archetypes{shards: make([]shard, shardCount)}
	for i := range a.shards {
		a.shards[i].pools = make(map[reflect.Type]*store.Pool)
	}
	return a
}

func (a *Archetypes) shardFor(rt reflect.Type) *shard {
	h := xxhash.Sum64String(rt.String())
	return &a.shards[h%uint64(len(a.shards))]
}

// Get returns the existing Pool for rt, if one has been created.
func (a *Archetypes) Get(rt reflect.Type) (*store.Pool, bool) {
	sh := a.shardFor(rt)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	p, ok := sh.pools[rt]
	return p, ok
}

// GetOrCreate returns rt's Pool, creating it bound to extractor on first
// use. Creation re-checks the shard under its write lock, so goroutines
// racing to create the same archetype's Pool build only one and all of them
// receive that same Pool.
func (a *Archetypes) GetOrCreate(rt reflect.Type, extractor *store.Extractor) *store.Pool {
	sh := a.shardFor(rt)

	sh.mu.RLock()
	if p, ok := sh.pools[rt]; ok {
		sh.mu.RUnlock()
		return p
	}
	sh.mu.RUnlock()

	sh.mu.Lock()
	defer sh.mu.Unlock()
	if p, ok := sh.pools[rt]; ok {
		return p
	}
	p := store.NewPool(extractor)
	sh.pools[rt] = p
	return p
}

// ForEach invokes fn once per known archetype. Each shard's lock is
// released before fn runs, so fn may safely call back into a Pool's own
// methods (which take the Pool's lock, never a shard lock) without risking
// lock-order inversion.
func (a *Archetypes) ForEach(fn func(reflect.Type, *store.Pool)) {
	for i := range a.shards {
		sh := &a.shards[i]
		sh.mu.RLock()
		snapshot := make([]struct {
			rt reflect.Type
			p  *store.Pool
		}, 0, len(sh.pools))
		for rt, p := range sh.pools {
			snapshot = append(snapshot, struct {
				rt reflect.Type
				p  *store.Pool
			}{rt, p})
		}
		sh.mu.RUnlock()

		for _, entry := range snapshot {
			fn(entry.rt, entry.p)
		}
	}
}

// Len reports the number of distinct archetypes created so far.
func (a *Archetypes) Len() int {
	total := 0
	for i := range a.shards {
		sh := &a.shards[i]
		sh.mu.RLock()
		total += len(sh.pools)
		sh.mu.RUnlock()
	}
	return total
}

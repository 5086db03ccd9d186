package entitycore

import "github.com/kestrelgame/entitycore/internal/store"

// EntityID identifies one entity within a World. Values are assigned by Add
// and never reused while the World that issued them is alive.
type EntityID = store.EntityID

// Handle is a shared, typed view into a sub-region of a live record. As
// long as any Handle[T] derived from an entity is held, the memory it
// points into cannot be freed, regardless of whether the entity itself has
// since been removed from its World.
type Handle[T any] = store.Handle[T]

// Extractable is implemented by every record type that can be stored in a
// World. EntityMetadata describes, once per type, how to reach every
// sub-type embedded within it.
type Extractable = store.Extractable

// Dropper is implemented by a record type that needs to run cleanup when
// its last Handle is released. Go has no destructors, so this interface is
// this module's stand-in: Drop runs exactly once, the instant the record's
// refcount reaches zero.
type Dropper = store.Dropper

// Metadata describes a record type's layout: which sub-types are
// extractable from it and at what byte offsets. Built once per record type
// via a type's EntityMetadata method, never per-entity.
type Metadata = store.Metadata

// MetadataNode is one entry of a Metadata tree — either a Leaf (a
// sub-type reachable at a fixed offset with no further children) or a
// Branch (a sub-type that is itself extractable AND has its own nested
// sub-types).
type MetadataNode = store.MetadataNode

// NodeKind distinguishes a Leaf from a Branch in a Metadata tree.
type NodeKind = store.NodeKind

const (
	Leaf   = store.Leaf
	Branch = store.Branch
)

// ReExtract extracts sub-type U from the same record h was derived from,
// sharing its refcount. This is a free function rather than a method on
// Handle[T] because Go does not allow a method to introduce type
// parameters beyond its receiver's.
func ReExtract[U, T any](h Handle[T]) (Handle[U], bool) {
	return store.ReExtract[U, T](h)
}

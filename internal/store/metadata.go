// Package store implements the type-erased, reference-counted entity
// storage core: Extractor, Record, Handle, and Pool. Everything in this
// package works in terms of reflect.Type as the platform's per-type identity
// token and unsafe.Pointer arithmetic over boxed values; entitycore is the
// public facade that wraps it with a nicer generic API.
package store

import "reflect"

// NodeKind distinguishes a Metadata tree's two node variants.
type NodeKind uint8

const (
	// Leaf marks a sub-region as extractable as exactly one type, with no
	// further recursion.
	Leaf NodeKind = iota
	// Branch marks a sub-region as extractable as one type AND recurses
	// into that sub-region's own metadata, rebased at the branch's offset.
	Branch
)

// MetadataNode is one node of a record type's static, tree-shaped descriptor
// of extractable sub-types and their byte offsets from the record root.
type MetadataNode struct {
	Kind     NodeKind
	Type     reflect.Type
	Offset   uintptr
	Children []MetadataNode // only meaningful when Kind == Branch
}

// Metadata is the top-level node list of a record type's descriptor tree;
// Branch nodes carry their own children, and BuildExtractor flattens it.
type Metadata []MetadataNode

// Extractable is what a record type implements to publish its METADATA_LIST.
// The offset table generator is external to this core; Extractable is simply
// the contract it must satisfy.
type Extractable interface {
	EntityMetadata() Metadata
}

// Dropper is the Go stand-in for "the record's destructor": a record type
// that needs to observe or react to its own teardown implements Drop(). The
// Extractor's drop thunk calls it exactly once, when the record's refcount
// reaches zero, then leaves the boxed value for the garbage collector.
type Dropper interface {
	Drop()
}

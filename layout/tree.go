package layout

import (
	"github.com/DasLixou/taffy/internal/core/geom"
	"github.com/DasLixou/taffy/internal/core/opt"
	"github.com/DasLixou/taffy/style"
)

// NodeID is an opaque handle into a host-owned arena (spec §3: "the
// solver never allocates nodes; it only reads structure and writes into
// per-node layout/cache slots through the tree accessor").
type NodeID uint64

// RunMode controls how much work compute_node_layout must do: merely
// return a size (ComputeSize) or also materialize every descendant's
// Layout (PerformLayout).
type RunMode int

const (
	PerformLayout RunMode = iota
	ComputeSize
)

// SizingMode distinguishes "use the node's own size styles"
// (InherentSize) from "defer entirely to child content"
// (ContentSize) — used when a parent probes a child for an intrinsic
// measurement rather than its final layout.
type SizingMode int

const (
	InherentSize SizingMode = iota
	ContentSize
)

// Order is the child's position in its parent's children list at the
// time layout ran, written into every Layout so a renderer can recover
// paint order without re-reading the tree.
type Order = uint32

// Layout is the per-node result spec §3 requires: size, parent-relative
// location, and source order.
type Layout struct {
	Order    Order
	Size     geom.Size2[float64]
	Location geom.Point2[float64]
}

// ZeroLayout is the Layout every node in a display:none subtree resolves
// to (spec invariant 3 in §3/§8).
func ZeroLayout(order Order) Layout {
	return Layout{Order: order}
}

// CacheSlots is the fixed number of memoization slots held per node
// (spec §3, §4.3).
const CacheSlots = 5

// CacheEntry is one memoized sizing query result (spec §3).
type CacheEntry struct {
	KnownDimensions geom.Size2[opt.Option[float64]]
	AvailableSpace  geom.Size2[AvailableSpace]
	RunMode         RunMode
	CachedSize      geom.Size2[float64]
}

// LayoutTree is the read-only-plus-cache-write interface the solver
// requires of any hosting tree (spec §6). A host implements this over
// whatever arena/graph representation it already has; the solver never
// allocates or frees nodes itself.
//
// Optional capabilities (a measure function, node validation) are
// expressed as separate interfaces a host's concrete tree type may or may
// not satisfy, checked with a type assertion at the call site instead of
// being baked into LayoutTree itself.
type LayoutTree interface {
	// Style returns node's style. Must not return nil.
	Style(node NodeID) *style.Style

	// ChildCount returns the number of in-flow-or-not children node has.
	// Absolute children are still counted here; the flexbox algorithm
	// is responsible for excluding them from line construction.
	ChildCount(node NodeID) int

	// Child returns node's child at the given index, in declared order.
	Child(node NodeID, index int) NodeID

	// IsChildless reports whether node has zero children; the dispatch
	// in compute.go uses this to route straight to the leaf algorithm.
	IsChildless(node NodeID) bool

	// LayoutMut returns a pointer to node's mutable Layout slot.
	LayoutMut(node NodeID) *Layout

	// CacheMut returns a pointer to one of node's CacheSlots cache
	// slots (0 <= slot < CacheSlots).
	CacheMut(node NodeID, slot int) *opt.Option[CacheEntry]
}

// NodeValidator is the optional capability a tree implements when it can
// reject stale or detached handles up front. ComputeLayout consults it,
// when present, before doing any work; a tree that cannot go stale
// (e.g. a flat arena that never frees slots) need not implement it, and
// every node id is then assumed valid.
type NodeValidator interface {
	IsValidNode(node NodeID) bool
}

// Measurer is the optional capability a LayoutTree may implement so its
// leaves can have host-supplied intrinsic sizing — e.g. a text run
// whose size depends on shaped glyph metrics the solver cannot compute
// itself (spec §4.5, §9: "the measure function is a polymorphic
// boundary"). The tree, not the node id, is asked for the measurer so a
// single tree implementation can back every node; a node with no
// intrinsic content returns ok=false.
type Measurer interface {
	MeasureNode(
		node NodeID,
		knownDimensions geom.Size2[opt.Option[float64]],
		availableSpace geom.Size2[AvailableSpace],
	) (geom.Size2[float64], bool)
}

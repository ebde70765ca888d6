// Package layout is the core recursive layout solver: the sizing and
// positioning algorithm for flex containers, the leaf measurement
// policy, and the multi-slot result cache that makes repeated
// sub-queries tractable. It is invoked many times per node during one
// top-level layout pass under different constraint modes (spec §1).
//
// Grounded on original_source/src/compute/mod.rs (Taffy, the Rust system
// this spec was distilled from) for the dispatch/cache control flow, and
// on instructions/auto_layout*.go for the Go idiom the rest of the
// algorithm is written in.
package layout

import (
	"github.com/DasLixou/taffy/internal/core/geom"
	"github.com/DasLixou/taffy/internal/core/opt"
	"github.com/DasLixou/taffy/style"
)

// GridCompute is the signature a sibling grid algorithm registers under
// GridAlgorithm. Grid layout itself is an external collaborator per
// spec §1 ("grid-display layout, treated as an optional sibling
// algorithm invoked from the same dispatch"); the core only needs a
// place to call into one.
type GridCompute func(
	tree LayoutTree,
	node NodeID,
	knownDimensions geom.Size2[opt.Option[float64]],
	parentSize geom.Size2[opt.Option[float64]],
	availableSpace geom.Size2[AvailableSpace],
	runMode RunMode,
) geom.Size2[float64]

// GridAlgorithm is invoked by the dispatch for any node whose
// style.Display is DisplayGrid. When it is nil (the zero value) the
// dispatch uses computeGridLayout, the built-in minimal algorithm in
// grid.go; a host may overwrite this to
// plug in a more complete implementation without touching the solver.
var GridAlgorithm GridCompute

// ComputeLayout is the solver's only public entry point (spec §4.1). It
// recursively sizes root, writes its Layout, and rounds the whole
// visited subtree to integer pixels.
func ComputeLayout(tree LayoutTree, root NodeID, availableSpace geom.Size2[AvailableSpace]) error {
	if v, ok := tree.(NodeValidator); ok && !v.IsValidNode(root) {
		return &InvalidNodeError{Node: root}
	}

	size := computeNodeLayout(
		tree,
		root,
		geom.Size2[opt.Option[float64]]{Width: opt.None[float64](), Height: opt.None[float64]()},
		geom.MapSize(availableSpace, AvailableSpace.IntoOption),
		availableSpace,
		PerformLayout,
		InherentSize,
	)

	*tree.LayoutMut(root) = Layout{Order: 0, Size: size, Location: geom.Point2[float64]{}}

	roundLayout(tree, root, 0, 0)

	return nil
}

// computeNodeLayout is compute_node_layout from spec §4.2: it checks the
// cache, dispatches to the right algorithm for node, and writes the
// result back into the cache slot the inputs map to.
func computeNodeLayout(
	tree LayoutTree,
	node NodeID,
	knownDimensions geom.Size2[opt.Option[float64]],
	parentSize geom.Size2[opt.Option[float64]],
	availableSpace geom.Size2[AvailableSpace],
	runMode RunMode,
	sizingMode SizingMode,
) geom.Size2[float64] {
	isChildless := tree.IsChildless(node)

	// Leaves have no distinction between sizing and layout, so their
	// cache entries are always written (and must always be read) as
	// PerformLayout.
	cacheRunMode := runMode
	if isChildless {
		cacheRunMode = PerformLayout
	}

	if cached, ok := computeFromCache(tree, node, knownDimensions, availableSpace, cacheRunMode, sizingMode); ok {
		return cached
	}

	var computed geom.Size2[float64]
	if isChildless {
		computed = computeLeafLayout(tree, node, knownDimensions, parentSize, availableSpace)
	} else {
		switch tree.Style(node).Display {
		case style.DisplayFlex:
			computed = computeFlexboxLayout(tree, node, knownDimensions, parentSize, availableSpace, runMode)
		case style.DisplayGrid:
			alg := GridAlgorithm
			if alg == nil {
				alg = computeGridLayout
			}
			computed = alg(tree, node, knownDimensions, parentSize, availableSpace, runMode)
		default: // DisplayNone
			computed = performHiddenLayout(tree, node)
		}
	}

	slot := computeCacheSlot(knownDimensions, availableSpace)
	*tree.CacheMut(node, slot) = opt.Some(CacheEntry{
		KnownDimensions: knownDimensions,
		AvailableSpace:  availableSpace,
		RunMode:         cacheRunMode,
		CachedSize:      computed,
	})

	return computed
}

package layout

import (
	"github.com/DasLixou/taffy/internal/core/geom"
	"github.com/DasLixou/taffy/internal/core/opt"
)

// computeCacheSlot picks which of a node's CacheSlots entries a result
// for the given (known_dimensions, available_space) pair belongs in
// (spec §4.3). Five slots are exactly enough because a parent's worst
// case query interleaving during one pass produces exactly five
// equivalence classes: a final "both known" layout must not be clobbered
// by an intrinsic "neither known" probe, and a min-content probe must
// not clobber a max-content one, so each of those gets its own slot.
func computeCacheSlot(knownDimensions geom.Size2[opt.Option[float64]], availableSpace geom.Size2[AvailableSpace]) int {
	hasWidth := knownDimensions.Width.IsSome()
	hasHeight := knownDimensions.Height.IsSome()

	// Slot 0: both known.
	if hasWidth && hasHeight {
		return 0
	}

	// Slot 1/2: exactly one known, keyed on the other axis's constraint.
	if hasWidth || hasHeight {
		otherAxisSpace := availableSpace.Height
		if !hasWidth {
			otherAxisSpace = availableSpace.Width
		}
		if otherAxisSpace.IsMinContent() {
			return 2
		}
		return 1
	}

	// Slot 3/4: neither known, keyed on the width axis's constraint
	// (by construction both axes carry the same kind of constraint in
	// the "neither known" probes the solver issues).
	if availableSpace.Width.IsMinContent() {
		return 4
	}
	return 3
}

// computeFromCache scans a node's cache slots for a usable entry and
// returns its cached size, implementing the hit predicate of spec §4.3.
func computeFromCache(
	tree LayoutTree,
	node NodeID,
	knownDimensions geom.Size2[opt.Option[float64]],
	availableSpace geom.Size2[AvailableSpace],
	runMode RunMode,
	sizingMode SizingMode,
) (geom.Size2[float64], bool) {
	for slot := 0; slot < CacheSlots; slot++ {
		entrySlot := tree.CacheMut(node, slot)
		entry, ok := entrySlot.Get()
		if !ok {
			continue
		}

		// A cached ComputeSize result cannot satisfy a PerformLayout
		// caller: ComputeSize never wrote child layouts, so reusing it
		// would silently skip materializing descendants.
		if entry.RunMode == ComputeSize && runMode == PerformLayout {
			continue
		}

		if !dimensionMatches(knownDimensions.Width, entry.KnownDimensions.Width, entry.CachedSize.Width) {
			continue
		}
		if !dimensionMatches(knownDimensions.Height, entry.KnownDimensions.Height, entry.CachedSize.Height) {
			continue
		}

		if knownDimensions.Width.IsNone() &&
			!availableSpaceMatches(entry.AvailableSpace.Width, availableSpace.Width, sizingMode, entry.CachedSize.Width) {
			continue
		}
		if knownDimensions.Height.IsNone() &&
			!availableSpaceMatches(entry.AvailableSpace.Height, availableSpace.Height, sizingMode, entry.CachedSize.Height) {
			continue
		}

		return entry.CachedSize, true
	}
	return geom.Size2[float64]{}, false
}

// dimensionMatches implements the per-axis "known dimension" clause of
// the hit predicate: the caller's known dimension must equal either the
// entry's known dimension or the entry's cached size on that axis.
func dimensionMatches(caller opt.Option[float64], entryKnown opt.Option[float64], entryCached float64) bool {
	if opt.Equal(caller, entryKnown) {
		return true
	}
	if v, ok := caller.Get(); ok {
		return v == entryCached
	}
	return false
}

// availableSpaceMatches implements the per-axis "unknown dimension"
// clause: either the available space is roughly equal, or we're doing a
// content-size probe under a definite space that's at least as generous
// as what was cached (a content measurement valid at one definite width
// remains valid at any wider one).
func availableSpaceMatches(entrySpace, callerSpace AvailableSpace, sizingMode SizingMode, entryCachedSize float64) bool {
	if entrySpace.IsRoughlyEqual(callerSpace) {
		return true
	}
	if sizingMode == ContentSize && callerSpace.IsDefinite() {
		return callerSpace.Unwrap() >= entryCachedSize
	}
	return false
}

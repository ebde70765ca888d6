package layout

import (
	"github.com/DasLixou/taffy/internal/core/geom"
	"github.com/DasLixou/taffy/internal/core/opt"
	"github.com/DasLixou/taffy/style"
)

// computeLeafLayout sizes a childless node (spec §4.5). Unlike a flex
// container, a leaf makes no distinction between ComputeSize and
// PerformLayout (there is nothing further to lay out), which is why
// compute.go forces cache_run_mode = PerformLayout for childless nodes
// before ever reaching here.
func computeLeafLayout(
	tree LayoutTree,
	node NodeID,
	knownDimensions geom.Size2[opt.Option[float64]],
	parentSize geom.Size2[opt.Option[float64]],
	availableSpace geom.Size2[AvailableSpace],
) geom.Size2[float64] {
	st := tree.Style(node)

	styleSize := resolveSizeAgainst(st.Size, parentSize)
	minSize := resolveSizeAgainst(st.MinSize, parentSize)
	maxSize := resolveSizeAgainst(st.MaxSize, parentSize)

	styleSize = applyAspectRatio(st, styleSize)
	minSize = applyAspectRatio(st, minSize)
	maxSize = applyAspectRatio(st, maxSize)

	// The measure function, if any, is asked for an intrinsic size using
	// the style size (where known) layered under the caller's known
	// dimensions — an ancestor-provided known dimension always takes
	// priority over the leaf's own style size per spec §4.5 step 3 ordering
	// ("known_dimensions ∨ style_size ∨ measured_size").
	measureInput := geom.Size2[opt.Option[float64]]{
		Width:  knownDimensions.Width.OrElse(func() opt.Option[float64] { return styleSize.Width }),
		Height: knownDimensions.Height.OrElse(func() opt.Option[float64] { return styleSize.Height }),
	}

	var measured geom.Size2[float64]
	var hasMeasured bool
	if m, ok := tree.(Measurer); ok {
		measured, hasMeasured = m.MeasureNode(node, measureInput, availableSpace)
	}

	pick := func(known, sz, measuredAxis opt.Option[float64]) float64 {
		if v, ok := known.Get(); ok {
			return v
		}
		if v, ok := sz.Get(); ok {
			return v
		}
		if v, ok := measuredAxis.Get(); ok {
			return v
		}
		return 0
	}

	var measuredW, measuredH opt.Option[float64]
	if hasMeasured {
		measuredW = opt.Some(measured.Width)
		measuredH = opt.Some(measured.Height)
	}

	width := pick(knownDimensions.Width, styleSize.Width, measuredW)
	height := pick(knownDimensions.Height, styleSize.Height, measuredH)

	width = clampOptional(width, minSize.Width, maxSize.Width)
	height = clampOptional(height, minSize.Height, maxSize.Height)

	return geom.Size2[float64]{Width: width, Height: height}
}

// resolveSizeAgainst resolves a Size2[Dimension] style field against the
// containing block, axis by axis.
func resolveSizeAgainst(sz geom.Size2[style.Dimension], containingBlock geom.Size2[opt.Option[float64]]) geom.Size2[opt.Option[float64]] {
	return geom.Size2[opt.Option[float64]]{
		Width:  sz.Width.Resolve(containingBlock.Width),
		Height: sz.Height.Resolve(containingBlock.Height),
	}
}

// clampOptional clamps v between an optional min and an optional max,
// per spec invariant "min_size ≤ resolved size ≤ max_size componentwise
// when both bounds are finite (min wins ties)".
func clampOptional(v float64, min, max opt.Option[float64]) float64 {
	if maxV, ok := max.Get(); ok && v > maxV {
		v = maxV
	}
	if minV, ok := min.Get(); ok && v < minV {
		v = minV
	}
	if v < 0 {
		v = 0
	}
	return v
}

// applyAspectRatio fills in a missing axis from the other one when
// exactly one of the two is determined and the style declares an aspect
// ratio (width / height), per spec §4.5 step 4.
func applyAspectRatio(st *style.Style, sz geom.Size2[opt.Option[float64]]) geom.Size2[opt.Option[float64]] {
	if !st.HasAspectRatio() {
		return sz
	}
	w, hasW := sz.Width.Get()
	h, hasH := sz.Height.Get()
	switch {
	case hasW && !hasH:
		sz.Height = opt.Some(w / st.AspectRatio)
	case hasH && !hasW:
		sz.Width = opt.Some(h * st.AspectRatio)
	}
	return sz
}

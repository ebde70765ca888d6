package layout

import (
	"github.com/DasLixou/taffy/internal/core/geom"
	"github.com/DasLixou/taffy/internal/core/opt"
)

// computeGridLayout is the built-in fallback the dispatch uses when
// GridAlgorithm is nil (a host has not supplied its own). Full CSS Grid
// (named lines, areas, fr-track distribution) is out of scope for this
// solver (spec §1: grid is "an optional sibling algorithm"); this
// fallback only has to make a grid-display node behave sanely rather
// than implement the whole specification. It arranges children
// row-major into a fixed column count derived from the square root of
// the child count, each cell an equal share of the container's size (its
// known dimension, else its definite available space, else zero; border
// and padding are not subtracted), with no distinct track sizing.
func computeGridLayout(
	tree LayoutTree,
	node NodeID,
	knownDimensions geom.Size2[opt.Option[float64]],
	parentSize geom.Size2[opt.Option[float64]],
	availableSpace geom.Size2[AvailableSpace],
	runMode RunMode,
) geom.Size2[float64] {
	count := tree.ChildCount(node)

	width := knownDimensions.Width.UnwrapOr(availableSpace.Width.OrElse(func() float64 { return 0 }))
	height := knownDimensions.Height.UnwrapOr(availableSpace.Height.OrElse(func() float64 { return 0 }))

	if count == 0 {
		return geom.Size2[float64]{Width: width, Height: height}
	}

	cols := gridColumnCount(count)
	rows := (count + cols - 1) / cols

	cellWidth := width / float64(cols)
	cellHeight := height / float64(rows)

	if runMode == PerformLayout {
		for i := 0; i < count; i++ {
			child := tree.Child(node, i)
			row := i / cols
			col := i % cols

			known := geom.Size2[opt.Option[float64]]{
				Width:  opt.Some(cellWidth),
				Height: opt.Some(cellHeight),
			}
			avail := geom.Size2[AvailableSpace]{Width: Definite(cellWidth), Height: Definite(cellHeight)}

			size := computeNodeLayout(tree, child, known, geom.Size2[opt.Option[float64]]{}, avail, PerformLayout, InherentSize)

			*tree.LayoutMut(child) = Layout{
				Order: uint32(i),
				Size:  size,
				Location: geom.Point2[float64]{
					X: float64(col) * cellWidth,
					Y: float64(row) * cellHeight,
				},
			}
		}
	}

	return geom.Size2[float64]{Width: width, Height: height}
}

// gridColumnCount picks a column count close to the square root of the
// child count, matching the visually balanced grid a host gets without
// supplying explicit track definitions.
func gridColumnCount(count int) int {
	c := 1
	for c*c < count {
		c++
	}
	if c < 1 {
		c = 1
	}
	return c
}

package layout

import "math"

// roundLayout walks the already-computed Layout tree top-down, snapping
// every node's location and size to integer pixels while preserving
// tiling (spec §4.4 and invariant 5 in §8): the far edge is rounded in
// absolute coordinates first, and a node's rounded relative location is
// derived as the difference between its own rounded absolute position
// and its parent's (already rounded, hence integral) absolute position.
// Because the parent's absolute origin passed down is always an
// integer, round(parentAbs + x) == parentAbs + round(x), which is
// exactly what keeps two siblings that were flush before rounding flush
// after: sibling b's relative start equals sibling a's relative end
// before rounding, and that identity survives the shared integral
// offset.
func roundLayout(tree LayoutTree, node NodeID, parentAbsX, parentAbsY float64) {
	l := tree.LayoutMut(node)

	absX := parentAbsX + l.Location.X
	absY := parentAbsY + l.Location.Y
	roundedAbsX := math.Round(absX)
	roundedAbsY := math.Round(absY)

	farX := math.Round(absX + l.Size.Width)
	farY := math.Round(absY + l.Size.Height)

	l.Location.X = roundedAbsX - parentAbsX
	l.Location.Y = roundedAbsY - parentAbsY
	l.Size.Width = farX - roundedAbsX
	l.Size.Height = farY - roundedAbsY

	for i := 0; i < tree.ChildCount(node); i++ {
		roundLayout(tree, tree.Child(node, i), roundedAbsX, roundedAbsY)
	}
}

package layout

import "github.com/DasLixou/taffy/internal/core/geom"

// performHiddenLayout zeroes out an entire subtree for a display:none
// node (spec §4.2 step 3, invariant 3 in §3/§8). It writes order but
// nothing else, matching perform_hidden_layout in the Taffy source this
// spec was distilled from.
func performHiddenLayout(tree LayoutTree, node NodeID) geom.Size2[float64] {
	for i := 0; i < tree.ChildCount(node); i++ {
		performHiddenLayoutInner(tree, tree.Child(node, i), uint32(i))
	}
	return geom.Size2[float64]{}
}

func performHiddenLayoutInner(tree LayoutTree, node NodeID, order Order) {
	*tree.LayoutMut(node) = ZeroLayout(order)
	for i := 0; i < tree.ChildCount(node); i++ {
		performHiddenLayoutInner(tree, tree.Child(node, i), uint32(i))
	}
}

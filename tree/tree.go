// Package tree is a thin in-memory arena that implements
// layout.LayoutTree: a flat slice of nodes addressed by index, each
// holding a style, a child list, a layout result and the solver's cache
// slots. It owns no layout logic of its own.
//
// Adapted from instructions/auto_layout.go's AutoLayout builder: the
// same add-a-child, invalidate-on-change, anchor-at-origin shape, but
// generalized from "one container plus shapes" to an arbitrary-depth
// tree of nodes the solver can recurse into.
package tree

import (
	"github.com/DasLixou/taffy/internal/core/geom"
	"github.com/DasLixou/taffy/internal/core/opt"
	"github.com/DasLixou/taffy/layout"
	"github.com/DasLixou/taffy/style"
)

type entry struct {
	style    style.Style
	children []layout.NodeID
	lay      layout.Layout
	cache    [layout.CacheSlots]opt.Option[layout.CacheEntry]
	measure  layout.Measurer
}

// Tree is a flat, never-shrinking arena of nodes. A node id is stable
// for the lifetime of the Tree: nothing is ever removed, only added or
// mutated, so NodeID never needs a validity check (Tree does not
// implement layout.NodeValidator).
type Tree struct {
	nodes []entry
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// NewLeaf adds a childless node with the given style and returns its id.
func (t *Tree) NewLeaf(st style.Style) layout.NodeID {
	t.nodes = append(t.nodes, entry{style: st})
	return layout.NodeID(len(t.nodes) - 1)
}

// NewWithChildren adds a node with the given style and pre-existing
// children, mirroring AutoLayout.Add's "register and return" shape but
// for a whole subtree at once.
func (t *Tree) NewWithChildren(st style.Style, children ...layout.NodeID) layout.NodeID {
	cs := append([]layout.NodeID(nil), children...)
	t.nodes = append(t.nodes, entry{style: st, children: cs})
	return layout.NodeID(len(t.nodes) - 1)
}

// AddChild appends a child to an existing node, invalidating its cache
// the way AutoLayout.Add marks the container dirty on every addition.
func (t *Tree) AddChild(parent, child layout.NodeID) {
	e := &t.nodes[parent]
	e.children = append(e.children, child)
	t.invalidate(parent)
}

// SetStyle replaces a node's style and invalidates its cache, mirroring
// AutoLayout.SetStyle.
func (t *Tree) SetStyle(node layout.NodeID, st style.Style) {
	t.nodes[node].style = st
	t.invalidate(node)
}

// SetMeasure installs a Measurer callback for a leaf node — the "shape
// implements BoundedShape" capability check in AutoLayout.Add, made
// explicit since a Tree has no shape objects of its own to query.
func (t *Tree) SetMeasure(node layout.NodeID, m layout.Measurer) {
	t.nodes[node].measure = m
	t.invalidate(node)
}

func (t *Tree) invalidate(node layout.NodeID) {
	t.nodes[node].cache = [layout.CacheSlots]opt.Option[layout.CacheEntry]{}
}

// Style implements layout.LayoutTree.
func (t *Tree) Style(node layout.NodeID) *style.Style {
	return &t.nodes[node].style
}

// ChildCount implements layout.LayoutTree.
func (t *Tree) ChildCount(node layout.NodeID) int {
	return len(t.nodes[node].children)
}

// Child implements layout.LayoutTree.
func (t *Tree) Child(node layout.NodeID, index int) layout.NodeID {
	return t.nodes[node].children[index]
}

// IsChildless implements layout.LayoutTree.
func (t *Tree) IsChildless(node layout.NodeID) bool {
	return len(t.nodes[node].children) == 0
}

// LayoutMut implements layout.LayoutTree.
func (t *Tree) LayoutMut(node layout.NodeID) *layout.Layout {
	return &t.nodes[node].lay
}

// CacheMut implements layout.LayoutTree.
func (t *Tree) CacheMut(node layout.NodeID, slot int) *opt.Option[layout.CacheEntry] {
	return &t.nodes[node].cache[slot]
}

// MeasureNode implements layout.Measurer for nodes that have one
// installed via SetMeasure; other nodes report ok=false so the solver
// falls back to their style size.
func (t *Tree) MeasureNode(
	node layout.NodeID,
	knownDimensions geom.Size2[opt.Option[float64]],
	availableSpace geom.Size2[layout.AvailableSpace],
) (geom.Size2[float64], bool) {
	m := t.nodes[node].measure
	if m == nil {
		return geom.Size2[float64]{}, false
	}
	return m.MeasureNode(node, knownDimensions, availableSpace)
}

// Layout returns node's computed result after layout.ComputeLayout has
// run. Calling it before that returns the zero Layout.
func (t *Tree) Layout(node layout.NodeID) layout.Layout {
	return t.nodes[node].lay
}

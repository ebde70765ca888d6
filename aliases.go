// Package taffy is the root façade: it re-exports the handful of names
// a host needs for the common case (build a tree, compute its layout,
// read back results) so day-to-day callers don't need to import
// layout/style/tree directly. Anything more specialized — a custom
// GridAlgorithm, a measure.Provider, direct NodeID arithmetic — still
// comes from its own package.
//
// Adapted from aliases.go's type-alias-and-re-exported-constructor
// pattern, narrowed from "drawing primitives" to "layout entry points".
package taffy

import (
	"github.com/DasLixou/taffy/internal/core/geom"
	"github.com/DasLixou/taffy/layout"
	"github.com/DasLixou/taffy/style"
	"github.com/DasLixou/taffy/tree"
)

// Type aliases for the public API.
type (
	NodeID = layout.NodeID
	Layout = layout.Layout
	Style  = style.Style
	Tree   = tree.Tree
	Size   = geom.Size2[float64]
	Point  = geom.Point2[float64]
)

// Re-exported constructors and the solver's entry point.
var (
	// NewTree returns an empty layout tree.
	NewTree = tree.New

	// DefaultStyle returns the style every field resolves to when left
	// unset (Display Flex, Row, NoWrap, flex-start justification,
	// stretch for align-items and align-content).
	DefaultStyle = style.Default

	// ComputeLayout sizes and positions root and its whole subtree.
	ComputeLayout = layout.ComputeLayout
)

// Available-space constructors, re-exported since every ComputeLayout
// call needs at least one.
var (
	Definite   = layout.Definite
	MinContent = layout.MinContent
	MaxContent = layout.MaxContent
)

// AvailableSpace is the constraint a node (most often the root) is laid
// out against on one axis.
type AvailableSpace = layout.AvailableSpace

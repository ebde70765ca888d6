package layout_test

import (
	"testing"

	"github.com/DasLixou/taffy/internal/core/geom"
	"github.com/DasLixou/taffy/layout"
	"github.com/DasLixou/taffy/style"
	"github.com/DasLixou/taffy/tree"
	"github.com/stretchr/testify/require"
)

// justify_content_row_max_width_and_margin, pinned by the generated
// stretch-crate benchmark fixture this scenario was distilled from: a
// container capped by max-width centers a single child whose margin
// alone exceeds the remaining space. The child keeps its declared size
// and the margin is allowed to push it past the container edge rather
// than triggering a shrink.
func TestFlexboxMarginPushesPastContainer(t *testing.T) {
	tr := tree.New()

	childStyle := style.Default()
	childStyle.Size = geom.Size2[style.Dimension]{Width: style.Points(20), Height: style.Points(20)}
	childStyle.Margin.Left = style.LPAPoints(100)
	child := tr.NewLeaf(childStyle)

	containerStyle := style.Default()
	containerStyle.JustifyContent = style.JustifyCenter
	containerStyle.Size = geom.Size2[style.Dimension]{Width: style.Points(100), Height: style.Auto}
	containerStyle.MaxSize = geom.Size2[style.Dimension]{Width: style.Points(80), Height: style.Auto}
	root := tr.NewWithChildren(containerStyle, child)

	err := layout.ComputeLayout(tr, root, geom.Size2[layout.AvailableSpace]{Width: layout.MaxContent, Height: layout.MaxContent})
	require.NoError(t, err)

	rootLayout := tr.Layout(root)
	require.InDelta(t, 80, rootLayout.Size.Width, 1e-6)
	require.InDelta(t, 20, rootLayout.Size.Height, 1e-6)

	childLayout := tr.Layout(child)
	require.InDelta(t, 20, childLayout.Size.Width, 1e-6)
	require.InDelta(t, 20, childLayout.Size.Height, 1e-6)
	require.InDelta(t, 100, childLayout.Location.X, 1e-6)
}

// min_width_overrides_max_width, pinned by the generated taffy-crate
// benchmark fixture: when a leaf's min and max width conflict, min
// wins, and an auto-sized ancestor grows to fit that resolved size.
func TestFlexboxMinSizeOverridesMaxSize(t *testing.T) {
	tr := tree.New()

	leafStyle := style.Default()
	leafStyle.MinSize.Width = style.Points(100)
	leafStyle.MaxSize.Width = style.Points(50)
	leaf := tr.NewLeaf(leafStyle)

	root := tr.NewWithChildren(style.Default(), leaf)

	err := layout.ComputeLayout(tr, root, geom.Size2[layout.AvailableSpace]{Width: layout.MaxContent, Height: layout.MaxContent})
	require.NoError(t, err)

	require.InDelta(t, 100, tr.Layout(leaf).Size.Width, 1e-6)
	require.InDelta(t, 100, tr.Layout(root).Size.Width, 1e-6)
}

// A display:none child, and everything beneath it, resolves to a fully
// zeroed Layout and contributes nothing to its siblings' flow.
func TestDisplayNoneZeroesSubtreeAndIsExcludedFromFlow(t *testing.T) {
	tr := tree.New()

	grandchildStyle := style.Default()
	grandchildStyle.Size = geom.Size2[style.Dimension]{Width: style.Points(10), Height: style.Points(10)}
	grandchild := tr.NewLeaf(grandchildStyle)

	hiddenStyle := style.Default()
	hiddenStyle.Display = style.DisplayNone
	hiddenStyle.Size = geom.Size2[style.Dimension]{Width: style.Points(50), Height: style.Points(50)}
	hidden := tr.NewWithChildren(hiddenStyle, grandchild)

	visibleStyle := style.Default()
	visibleStyle.Size = geom.Size2[style.Dimension]{Width: style.Points(30), Height: style.Points(30)}
	visible := tr.NewLeaf(visibleStyle)

	root := tr.NewWithChildren(style.Default(), hidden, visible)

	err := layout.ComputeLayout(tr, root, geom.Size2[layout.AvailableSpace]{Width: layout.MaxContent, Height: layout.MaxContent})
	require.NoError(t, err)

	require.Equal(t, layout.Layout{}, tr.Layout(hidden))
	require.Equal(t, layout.Layout{}, tr.Layout(grandchild))

	// The visible sibling is not pushed aside by the hidden node's
	// declared 50x50 size: it starts at the container's origin.
	require.InDelta(t, 0, tr.Layout(visible).Location.X, 1e-6)
}

// Rounding snaps every node to integer pixels while keeping flush
// siblings flush (spec invariant: round(a.location + a.size) ==
// round(b.location) for adjacent items).
func TestRoundingPreservesSiblingTiling(t *testing.T) {
	tr := tree.New()

	mkLeaf := func(w float64) layout.NodeID {
		st := style.Default()
		st.Size = geom.Size2[style.Dimension]{Width: style.Points(w), Height: style.Points(10)}
		return tr.NewLeaf(st)
	}

	a := mkLeaf(33.33)
	b := mkLeaf(33.33)
	c := mkLeaf(33.34)
	root := tr.NewWithChildren(style.Default(), a, b, c)

	err := layout.ComputeLayout(tr, root, geom.Size2[layout.AvailableSpace]{Width: layout.Definite(100), Height: layout.MaxContent})
	require.NoError(t, err)

	la, lb, lc := tr.Layout(a), tr.Layout(b), tr.Layout(c)

	require.InDelta(t, la.Location.X+la.Size.Width, lb.Location.X, 1e-9)
	require.InDelta(t, lb.Location.X+lb.Size.Width, lc.Location.X, 1e-9)

	require.Equal(t, la.Location.X, float64(int64(la.Location.X)))
	require.Equal(t, la.Size.Width, float64(int64(la.Size.Width)))
}

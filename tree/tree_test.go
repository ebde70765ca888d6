package tree_test

import (
	"testing"

	"github.com/DasLixou/taffy/internal/core/geom"
	"github.com/DasLixou/taffy/internal/core/opt"
	"github.com/DasLixou/taffy/layout"
	"github.com/DasLixou/taffy/style"
	"github.com/DasLixou/taffy/tree"
	"github.com/stretchr/testify/require"
)

func TestNewWithChildrenRegistersFamily(t *testing.T) {
	tr := tree.New()
	a := tr.NewLeaf(style.Default())
	b := tr.NewLeaf(style.Default())
	parent := tr.NewWithChildren(style.Default(), a, b)

	require.Equal(t, 2, tr.ChildCount(parent))
	require.Equal(t, a, tr.Child(parent, 0))
	require.Equal(t, b, tr.Child(parent, 1))
	require.False(t, tr.IsChildless(parent))
	require.True(t, tr.IsChildless(a))
}

func TestAddChildAppendsAndInvalidatesCache(t *testing.T) {
	tr := tree.New()
	parent := tr.NewLeaf(style.Default())

	*tr.CacheMut(parent, 0) = opt.Some(layout.CacheEntry{})
	tr.AddChild(parent, tr.NewLeaf(style.Default()))

	require.Equal(t, 1, tr.ChildCount(parent))
	_, ok := tr.CacheMut(parent, 0).Get()
	require.False(t, ok)
}

func TestSetStyleInvalidatesCache(t *testing.T) {
	tr := tree.New()
	node := tr.NewLeaf(style.Default())

	*tr.CacheMut(node, 2) = opt.Some(layout.CacheEntry{})
	tr.SetStyle(node, style.Default())

	_, ok := tr.CacheMut(node, 2).Get()
	require.False(t, ok)
}

func TestMeasureNodeFallsBackWhenUnset(t *testing.T) {
	tr := tree.New()
	node := tr.NewLeaf(style.Default())

	_, ok := tr.MeasureNode(node, geom.Size2[opt.Option[float64]]{}, geom.Size2[layout.AvailableSpace]{})
	require.False(t, ok)
}

type fixedMeasurer struct {
	w, h float64
}

func (f fixedMeasurer) MeasureNode(layout.NodeID, geom.Size2[opt.Option[float64]], geom.Size2[layout.AvailableSpace]) (geom.Size2[float64], bool) {
	return geom.Size2[float64]{Width: f.w, Height: f.h}, true
}

func TestSetMeasureIsReachedByComputeLayout(t *testing.T) {
	tr := tree.New()
	node := tr.NewLeaf(style.Default())
	tr.SetMeasure(node, fixedMeasurer{w: 12, h: 34})

	err := layout.ComputeLayout(tr, node, geom.Size2[layout.AvailableSpace]{Width: layout.MaxContent, Height: layout.MaxContent})
	require.NoError(t, err)

	got := tr.Layout(node)
	require.InDelta(t, 12, got.Size.Width, 1e-9)
	require.InDelta(t, 34, got.Size.Height, 1e-9)
}

func TestLayoutReadBackDefaultsToZeroBeforeCompute(t *testing.T) {
	tr := tree.New()
	node := tr.NewLeaf(style.Default())
	require.Equal(t, layout.Layout{}, tr.Layout(node))
}

package layout

import (
	"testing"

	"github.com/DasLixou/taffy/internal/core/geom"
	"github.com/DasLixou/taffy/internal/core/opt"
	"github.com/DasLixou/taffy/style"
	"github.com/stretchr/testify/require"
)

func TestComputeCacheSlotPartitioning(t *testing.T) {
	both := geom.Size2[opt.Option[float64]]{Width: opt.Some(10.0), Height: opt.Some(10.0)}
	require.Equal(t, 0, computeCacheSlot(both, geom.Size2[AvailableSpace]{}))

	widthOnly := geom.Size2[opt.Option[float64]]{Width: opt.Some(10.0), Height: opt.None[float64]()}
	require.Equal(t, 1, computeCacheSlot(widthOnly, geom.Size2[AvailableSpace]{Height: MaxContent}))
	require.Equal(t, 2, computeCacheSlot(widthOnly, geom.Size2[AvailableSpace]{Height: MinContent}))

	neither := geom.Size2[opt.Option[float64]]{}
	require.Equal(t, 3, computeCacheSlot(neither, geom.Size2[AvailableSpace]{Width: MaxContent}))
	require.Equal(t, 4, computeCacheSlot(neither, geom.Size2[AvailableSpace]{Width: MinContent}))
}

func TestComputeFromCacheHitsOnRoughlyEqualAvailableSpace(t *testing.T) {
	tr := newFakeTree()
	node := tr.addLeaf()

	known := geom.Size2[opt.Option[float64]]{}
	avail := geom.Size2[AvailableSpace]{Width: Definite(100), Height: MaxContent}
	entry := CacheEntry{
		KnownDimensions: known,
		AvailableSpace:  avail,
		RunMode:         PerformLayout,
		CachedSize:      geom.Size2[float64]{Width: 42, Height: 7},
	}
	*tr.CacheMut(node, computeCacheSlot(known, avail)) = opt.Some(entry)

	nearby := geom.Size2[AvailableSpace]{Width: Definite(100 + epsilon/2), Height: MaxContent}
	size, ok := computeFromCache(tr, node, known, nearby, PerformLayout, InherentSize)
	require.True(t, ok)
	require.Equal(t, 42.0, size.Width)

	farOff := geom.Size2[AvailableSpace]{Width: Definite(100 + 10), Height: MaxContent}
	_, ok = computeFromCache(tr, node, known, farOff, PerformLayout, InherentSize)
	require.False(t, ok)
}

func TestComputeFromCacheRejectsComputeSizeEntryForPerformLayoutQuery(t *testing.T) {
	tr := newFakeTree()
	node := tr.addLeaf()

	known := geom.Size2[opt.Option[float64]]{}
	avail := geom.Size2[AvailableSpace]{Width: MaxContent, Height: MaxContent}
	*tr.CacheMut(node, computeCacheSlot(known, avail)) = opt.Some(CacheEntry{
		KnownDimensions: known,
		AvailableSpace:  avail,
		RunMode:         ComputeSize,
		CachedSize:      geom.Size2[float64]{Width: 5, Height: 5},
	})

	_, ok := computeFromCache(tr, node, known, avail, PerformLayout, InherentSize)
	require.False(t, ok)
}

// fakeTreeImpl is a minimal LayoutTree used only to exercise cache.go
// in isolation, without pulling in the tree package (which itself
// depends on this package).
type fakeTreeImpl struct {
	st    []style.Style
	lay   []Layout
	cache [][CacheSlots]opt.Option[CacheEntry]
}

func newFakeTree() *fakeTreeImpl { return &fakeTreeImpl{} }

func (f *fakeTreeImpl) addLeaf() NodeID {
	f.st = append(f.st, style.Default())
	f.lay = append(f.lay, Layout{})
	f.cache = append(f.cache, [CacheSlots]opt.Option[CacheEntry]{})
	return NodeID(len(f.st) - 1)
}

func (f *fakeTreeImpl) Style(n NodeID) *style.Style           { return &f.st[n] }
func (f *fakeTreeImpl) ChildCount(NodeID) int                 { return 0 }
func (f *fakeTreeImpl) Child(NodeID, int) NodeID              { panic("no children") }
func (f *fakeTreeImpl) IsChildless(NodeID) bool               { return true }
func (f *fakeTreeImpl) LayoutMut(n NodeID) *Layout            { return &f.lay[n] }
func (f *fakeTreeImpl) CacheMut(n NodeID, slot int) *opt.Option[CacheEntry] {
	return &f.cache[n][slot]
}

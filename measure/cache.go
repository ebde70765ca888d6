package measure

import (
	"container/list"
	"fmt"
	"sync"

	"github.com/DasLixou/taffy/internal/render"
)

// extentCache memoizes render.Font.MeasureString results keyed by
// (font, string), evicting least-recently-used entries past capacity.
// Adapted from internal/render/font_lru.go's fontLRU, which caches
// font.Face objects under the same eviction policy; here the cached
// value is a measured width/height pair instead of a rendering face.
type extentCache struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List
}

type extentEntry struct {
	key  string
	w, h float64
}

func newExtentCache(capacity int) *extentCache {
	if capacity < 1 {
		capacity = 1
	}
	return &extentCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (c *extentCache) measure(f *render.Font, s string) (float64, float64) {
	key := fmt.Sprintf("%p_%s", f, s)

	c.mu.Lock()
	if el, ok := c.items[key]; ok {
		c.order.MoveToBack(el)
		ent := el.Value.(*extentEntry)
		c.mu.Unlock()
		return ent.w, ent.h
	}
	c.mu.Unlock()

	w, h := f.MeasureString(s)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.order.Len() >= c.capacity {
		oldest := c.order.Front()
		if oldest != nil {
			delete(c.items, oldest.Value.(*extentEntry).key)
			c.order.Remove(oldest)
		}
	}
	el := c.order.PushBack(&extentEntry{key: key, w: w, h: h})
	c.items[key] = el

	return w, h
}

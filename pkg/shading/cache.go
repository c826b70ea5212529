// Package shading holds the per-worker state used while shading: the render
// context with its random source and pass, and the memo caches owned by
// shading operations.
package shading

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// Key identifies a cached shading result
type Key struct {
	Object core.ObjectID
	Pixel  core.Pixel
}

// Cache memoizes the last color an operation computed for an object at a
// pixel. Entries live for one pass; newer results overwrite older ones.
// A Cache belongs to a single Context and is not safe for concurrent use.
type Cache struct {
	entries map[Key]core.Vec3
	hits    int
	misses  int
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{entries: make(map[Key]core.Vec3)}
}

// Lookup returns the cached color for object at pixel
func (c *Cache) Lookup(object core.ObjectID, pixel core.Pixel) (core.Vec3, bool) {
	color, ok := c.entries[Key{Object: object, Pixel: pixel}]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return color, ok
}

// Store records color for object at pixel, replacing any previous entry
func (c *Cache) Store(object core.ObjectID, pixel core.Pixel, color core.Vec3) {
	c.entries[Key{Object: object, Pixel: pixel}] = color
}

// GetOrCompute returns the cached color, calling compute and storing its
// result on a miss
func (c *Cache) GetOrCompute(object core.ObjectID, pixel core.Pixel, compute func() core.Vec3) core.Vec3 {
	if color, ok := c.Lookup(object, pixel); ok {
		return color
	}
	color := compute()
	c.Store(object, pixel, color)
	return color
}

// Len returns the number of cached entries
func (c *Cache) Len() int {
	return len(c.entries)
}

// Stats returns lookup hit and miss counts since the last Reset
func (c *Cache) Stats() (hits, misses int) {
	return c.hits, c.misses
}

// Reset drops all entries and counters
func (c *Cache) Reset() {
	clear(c.entries)
	c.hits, c.misses = 0, 0
}

package shading

import (
	"math/rand/v2"
	"sync/atomic"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/log"
)

var logger = log.New("shading")

// Pass identifies the kind of rasterization pass being run
type Pass int

const (
	PassNormal Pass = iota
	PassIrradianceCachePrefill
)

func (p Pass) String() string {
	switch p {
	case PassNormal:
		return "normal"
	case PassIrradianceCachePrefill:
		return "irradiance-cache-prefill"
	default:
		return "unknown"
	}
}

// OperationID identifies a shading operation that owns a cache
type OperationID uint32

var lastOperation atomic.Uint32

// NewOperationID allocates a process-unique operation identity
func NewOperationID() OperationID {
	return OperationID(lastOperation.Add(1))
}

// Context is the execution state of one worker: its random source, the
// current pass and the caches owned by shading operations. A Context is
// never shared between goroutines.
type Context struct {
	pcg     *rand.PCG
	random  *rand.Rand
	sampler *core.RandomSampler

	pass     Pass
	threaded bool
	caches   map[OperationID]*Cache
}

// NewContext creates a context seeded with seed
func NewContext(seed uint64, threaded bool) *Context {
	pcg := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	random := rand.New(pcg)
	return &Context{
		pcg:      pcg,
		random:   random,
		sampler:  core.NewRandomSampler(random),
		threaded: threaded,
		caches:   make(map[OperationID]*Cache),
	}
}

// Random returns the context's random source
func (c *Context) Random() *rand.Rand {
	return c.random
}

// Sampler returns a sampler drawing from the context's random source
func (c *Context) Sampler() core.Sampler {
	return c.sampler
}

// Pass returns the current pass
func (c *Context) Pass() Pass {
	return c.pass
}

// Threaded reports whether the context runs on one of several workers
func (c *Context) Threaded() bool {
	return c.threaded
}

// BeginPass switches to pass p. Cached results never outlive a pass.
func (c *Context) BeginPass(p Pass) {
	if p != c.pass {
		logger.Debugf("pass %s -> %s", c.pass, p)
	}
	c.pass = p
	for _, cache := range c.caches {
		cache.Reset()
	}
}

// Cache returns the cache owned by op, creating it on first use
func (c *Context) Cache(op OperationID) *Cache {
	cache, ok := c.caches[op]
	if !ok {
		cache = NewCache()
		c.caches[op] = cache
	}
	return cache
}

// ReseedPixel resets the random source to a state derived only from seed and
// pixel, so a pixel's samples do not depend on which worker renders it or
// in which order
func (c *Context) ReseedPixel(seed uint64, pixel core.Pixel) {
	h := mix64(seed ^ uint64(uint32(pixel.X))*0x9e3779b97f4a7c15 ^ uint64(uint32(pixel.Y))*0xc2b2ae3d27d4eb4f)
	c.pcg.Seed(h, mix64(h+1))
}

// Close drops every cache owned by the context
func (c *Context) Close() {
	clear(c.caches)
}

// mix64 is the splitmix64 finalizer
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

package sampler

import (
	"math/rand/v2"
	"sync"
)

// Chooser is the source of randomness for a Sampler.
type Chooser interface {
	// Weighted returns an index with probability proportional to its weight.
	Weighted(weights []float64) int

	// Uniform returns an index in [0, n).
	Uniform(n int) int
}

// RandChooser is a Chooser backed by a PCG generator.
// It is safe for concurrent use.
type RandChooser struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandChooser returns a reproducible chooser for seed.
func NewRandChooser(seed uint64) *RandChooser {
	return &RandChooser{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewChooser returns a chooser seeded from the runtime's entropy source.
func NewChooser() *RandChooser {
	return NewRandChooser(rand.Uint64())
}

// Weighted rolls once against the cumulative weights. Non-positive weights
// are never chosen; if every weight is non-positive the draw is uniform.
func (c *RandChooser) Weighted(weights []float64) int {
	if len(weights) == 0 {
		panic("sampler: Weighted called with no weights")
	}

	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return c.Uniform(len(weights))
	}

	c.mu.Lock()
	roll := c.rng.Float64() * total
	c.mu.Unlock()

	last := 0
	cumulative := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		if roll < cumulative {
			return i
		}
		last = i
	}
	// Floating point drift can leave roll at the very top of the range.
	return last
}

// Uniform panics if n <= 0.
func (c *RandChooser) Uniform(n int) int {
	if n <= 0 {
		panic("sampler: Uniform called with n <= 0")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.IntN(n)
}

package sampler

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandChooser_Reproducible(t *testing.T) {
	a, b := NewRandChooser(11), NewRandChooser(11)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Uniform(1000), b.Uniform(1000))
		assert.Equal(t, a.Weighted([]float64{1, 2, 3}), b.Weighted([]float64{1, 2, 3}))
	}
}

func TestRandChooser_Weighted(t *testing.T) {
	c := NewRandChooser(8)

	tests := []struct {
		name    string
		weights []float64
		allowed []int
	}{
		{"single", []float64{0.4}, []int{0}},
		{"zero weights skipped", []float64{0, 1, 0}, []int{1}},
		{"negative weights skipped", []float64{-1, 0, 2}, []int{2}},
		{"all zero falls back to uniform", []float64{0, 0, 0}, []int{0, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				assert.Contains(t, tt.allowed, c.Weighted(tt.weights))
			}
		})
	}
}

func TestRandChooser_WeightedProportions(t *testing.T) {
	c := NewRandChooser(12)
	counts := make([]int, 2)
	for i := 0; i < 10000; i++ {
		counts[c.Weighted([]float64{0.9, 0.1})]++
	}
	assert.InDelta(t, 0.9, float64(counts[0])/10000, 0.03)
}

func TestRandChooser_Panics(t *testing.T) {
	c := NewRandChooser(1)
	assert.Panics(t, func() { c.Uniform(0) })
	assert.Panics(t, func() { c.Weighted(nil) })
}

func TestRandChooser_Concurrent(t *testing.T) {
	c := NewChooser()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				n := c.Uniform(5)
				assert.GreaterOrEqual(t, n, 0)
				assert.Less(t, n, 5)
			}
		}()
	}
	wg.Wait()
}

package runner

import (
	"math"
	"math/rand"
)

// RNG is the seeded random source used for spawning. Two games built with
// the same seed and fed the same inputs make identical choices.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a random source from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// IntRange returns a value in [lo, hi]. If hi <= lo it returns lo.
func (g *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.r.Intn(hi-lo+1)
}

// Jitter returns a value in [-n, n].
func (g *RNG) Jitter(n int) int {
	return g.IntRange(-n, n)
}

// Float64 returns a value in [0, 1).
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}

// Phase returns a random angle in [0, 2π).
func (g *RNG) Phase() float64 {
	return g.r.Float64() * 2 * math.Pi
}

// Choice returns one element of values, or 0 if empty.
func (g *RNG) Choice(values []int) int {
	if len(values) == 0 {
		return 0
	}
	return values[g.r.Intn(len(values))]
}

// Weighted is a discrete distribution over a fixed set of options.
type Weighted[T any] struct {
	options []T
	weights []float64
	total   float64
}

// NewWeighted creates an empty distribution.
func NewWeighted[T any]() *Weighted[T] {
	return &Weighted[T]{}
}

// Add registers an option. Non-positive weights are never picked.
func (w *Weighted[T]) Add(option T, weight float64) *Weighted[T] {
	if weight < 0 {
		weight = 0
	}
	w.options = append(w.options, option)
	w.weights = append(w.weights, weight)
	w.total += weight
	return w
}

// Len returns the number of options.
func (w *Weighted[T]) Len() int {
	return len(w.options)
}

// Pick draws one option. With no positive weights it returns the first
// option; with no options it returns the zero value.
func (w *Weighted[T]) Pick(g *RNG) T {
	var zero T
	if len(w.options) == 0 {
		return zero
	}
	if w.total <= 0 {
		return w.options[0]
	}

	roll := g.Float64() * w.total
	last := 0
	for i, weight := range w.weights {
		if weight <= 0 {
			continue
		}
		last = i
		if roll < weight {
			return w.options[i]
		}
		roll -= weight
	}
	// Float rounding can leave a sliver past the final bucket
	return w.options[last]
}

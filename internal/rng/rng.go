// Package rng isolates the game's randomness behind a seedable source so
// pest rolls and offer generation are deterministic under test.
package rng

import (
	"math/rand"
	"sync"
	"time"
)

// Source yields uniform random draws in [0, 1).
type Source interface {
	Float64() float64
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New returns a Source seeded with the given value.
func New(seed int64) Source {
	return &lockedSource{r: rand.New(rand.NewSource(seed))} //nolint:gosec // Game logic randomness, not security critical
}

// NewTimeSeeded returns a Source seeded from the wall clock.
func NewTimeSeeded() Source {
	return New(time.Now().UnixNano())
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

package testutil

import (
	"math/rand"
	"sync"
)

// ExactBound is the first integer a float64 can no longer distinguish from
// its neighbor (2^53).
const ExactBound = uint64(1) << 53

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Uint64 returns a pseudo-random uint64. Useful as an arbitrary IEEE-754
// bit pattern.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// ExactAddr returns a pseudo-random nonzero address strictly below
// ExactBound, i.e. one that survives the address-to-double round trip
// without loss.
func (r *RNG) ExactAddr() uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()
	return uintptr(uint64(r.rand.Int63n(int64(ExactBound)-1)) + 1)
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

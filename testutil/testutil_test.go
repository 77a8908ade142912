package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExactAddr(t *testing.T) {
	rng := NewRNG(4711)

	for i := 0; i < 1000; i++ {
		addr := rng.ExactAddr()
		assert.NotZero(t, addr)
		assert.Less(t, uint64(addr), ExactBound)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(42)

	first := rng.Uint64()
	rng.Reset()

	assert.Equal(t, first, rng.Uint64())
	assert.Equal(t, int64(42), rng.Seed())
}

func TestIntn(t *testing.T) {
	rng := NewRNG(1)

	for i := 0; i < 100; i++ {
		n := rng.Intn(10)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 10)
	}
}

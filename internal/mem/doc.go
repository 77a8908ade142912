// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides cache-line (64-byte) aligned element arrays. Aligned backing
// storage gives pointer-arithmetic tests predictable addresses: the base is
// divisible by every element size, so element offsets land exactly where
// integer address math says they should.
package mem

// Package testutil provides testing utilities for floatptr.
//
// This package is intended for use in tests and benchmarks only. It provides
// a seeded random source for generating address-shaped integers, in
// particular addresses below the 2^53 exact-integer boundary of a double,
// which is the range where the address-as-double representation is lossless.
//
//	rng := testutil.NewRNG(seed)
//	addr := rng.ExactAddr()      // uniform in [1, 2^53)
//	bits := rng.Uint64()         // arbitrary 64-bit pattern
package testutil

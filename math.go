package floatptr

import "math"

// The functions below apply ordinary floating-point math directly to the
// pointer's raw payload and rewrap the result. They exist to demonstrate
// that IEEE-754 arithmetic composes with the pointer representation; they
// are deliberately unsafe escape hatches and must not be used for address
// computation.

// Abs returns p with the sign bit cleared. Abs of the negative-null state
// yields a bit-identical positive null.
func Abs[T any](p Pointer[T]) Pointer[T] {
	return Pointer[T]{raw: math.Abs(p.raw)}
}

// Sqrt returns the square root of the raw payload. Sqrt of a negative-state
// pointer (including negative infinity) yields the NaN state.
func Sqrt[T any](p Pointer[T]) Pointer[T] {
	return Pointer[T]{raw: math.Sqrt(p.raw)}
}

// FMA computes p*y then advances by z elements: an unscaled multiply
// composed with an element-scaled add, i.e. raw*y + z*sizeof(T).
func FMA[T any](p Pointer[T], y, z float64) Pointer[T] {
	return p.Mul(y).Add(z)
}

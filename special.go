package floatptr

import (
	"fmt"
	"math"
)

// Special enumerates the closed set of non-address pointer states. Each
// value is a typed spelling of one IEEE-754 special double, usable with any
// element type via FromSpecial, the same way nil spells the zero address for
// any native pointer type.
type Special uint8

const (
	// Infinity is the positive-infinity pointer state.
	Infinity Special = iota
	// NaN is the quiet-NaN pointer state. Two NaN-state pointers compare
	// unequal to each other and to themselves.
	NaN
	// NegativeNull is the negative-zero pointer state. It equals null under
	// IEEE-754 equality while carrying a different bit pattern.
	NegativeNull
	// NegativeInfinity is the negative-infinity pointer state.
	NegativeInfinity
)

func (s Special) String() string {
	switch s {
	case Infinity:
		return "Infinity"
	case NaN:
		return "NaN"
	case NegativeNull:
		return "NegativeNull"
	case NegativeInfinity:
		return "NegativeInfinity"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(s))
	}
}

// float returns the IEEE-754 double associated with the state. Unknown
// discriminants collapse to NaN; Special is a closed set and callers are
// expected to use the named constants.
func (s Special) float() float64 {
	switch s {
	case Infinity:
		return math.Inf(1)
	case NaN:
		return math.NaN()
	case NegativeNull:
		return math.Copysign(0, -1)
	case NegativeInfinity:
		return math.Inf(-1)
	default:
		return math.NaN()
	}
}

// FromSpecial builds a Pointer carrying the IEEE-754 special value named by
// s, for any element type T.
func FromSpecial[T any](s Special) Pointer[T] {
	return Pointer[T]{raw: s.float()}
}

// InfinityPointer returns the positive-infinity pointer for T.
func InfinityPointer[T any]() Pointer[T] {
	return FromSpecial[T](Infinity)
}

// NaNPointer returns the quiet-NaN pointer for T.
func NaNPointer[T any]() Pointer[T] {
	return FromSpecial[T](NaN)
}

// NegativeNullPointer returns the negative-zero pointer for T.
func NegativeNullPointer[T any]() Pointer[T] {
	return FromSpecial[T](NegativeNull)
}

// NegativeInfinityPointer returns the negative-infinity pointer for T.
func NegativeInfinityPointer[T any]() Pointer[T] {
	return FromSpecial[T](NegativeInfinity)
}

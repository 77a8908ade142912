package floatptr

import (
	"fmt"
	"math"
	"unsafe"
)

// Pointer is the address of a T, or a special non-address state, stored as
// exactly one float64.
//
// The zero value is the null pointer. Pointer is a plain value type: every
// operation is a pure transformation of the stored double, no operation owns
// or frees the pointee, and no operation validates that the carried value is
// a dereferenceable address.
//
// Native == on Pointer compares the underlying float64 and therefore follows
// IEEE-754 equality, agreeing with Equal: a NaN-state pointer is unequal to
// itself and negative null equals null.
type Pointer[T any] struct {
	raw float64
}

// unit returns sizeof(T) in bytes. Element arithmetic scales by this.
func unit[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// From captures the address of p.
//
// The address is widened to float64, which is exact for magnitudes below
// 2^53 (all realistic user-space addresses).
func From[T any](p *T) Pointer[T] {
	return Pointer[T]{raw: float64(uintptr(unsafe.Pointer(p)))}
}

// Null returns the null pointer, identical to the zero value.
func Null[T any]() Pointer[T] {
	return Pointer[T]{}
}

// FromUintptr reinterprets an integer address as a Pointer.
// No alignment or range checking is performed.
func FromUintptr[T any](addr uintptr) Pointer[T] {
	return Pointer[T]{raw: float64(addr)}
}

// FromBits builds a Pointer carrying the exact IEEE-754 bit pattern bits.
// This is the interchange constructor: it preserves the sign of zero and
// NaN payloads byte for byte.
func FromBits[T any](bits uint64) Pointer[T] {
	return Pointer[T]{raw: math.Float64frombits(bits)}
}

// Bool reports whether the stored double is nonzero.
//
// Note the quirk this inherits: a NaN-state pointer is truthy despite not
// being a valid address, and negative null is falsy because -0.0 == 0.0.
func (p Pointer[T]) Bool() bool {
	return p.raw != 0
}

// Ptr reinterprets the stored double's integer value as a *T.
//
// If the double holds a special state (infinity, NaN) the result is garbage;
// no error is signaled. Dereferencing an invalid result is undefined
// behavior, same as a native pointer built from an invalid integer.
func (p Pointer[T]) Ptr() *T {
	return (*T)(unsafe.Pointer(uintptr(p.raw))) //nolint:govet // address-as-double is the point of this package
}

// Uintptr returns the unsigned integer view of the carried address.
func (p Pointer[T]) Uintptr() uintptr {
	return uintptr(p.raw)
}

// Int returns the signed integer view of the carried address.
func (p Pointer[T]) Int() int64 {
	return int64(p.raw)
}

// Bits returns the raw IEEE-754 bit pattern of the stored double.
func (p Pointer[T]) Bits() uint64 {
	return math.Float64bits(p.raw)
}

// Float returns the stored double itself.
func (p Pointer[T]) Float() float64 {
	return p.raw
}

// Deref loads the pointee. Undefined behavior if p does not carry the
// address of a live T.
func (p Pointer[T]) Deref() T {
	return *p.Ptr()
}

// Set stores v through the pointer. Same contract as Deref.
func (p Pointer[T]) Set(v T) {
	*p.Ptr() = v
}

// At returns the address of the i-th element, counting from the carried
// address: integer address plus i*sizeof(T). The offset is applied in the
// integer domain, exactly like native pointer indexing. Negative i is
// permitted.
func (p Pointer[T]) At(i int) *T {
	addr := uintptr(p.raw) + uintptr(i)*unit[T]()
	return (*T)(unsafe.Pointer(addr)) //nolint:govet // address-as-double is the point of this package
}

// Equal reports p == q under IEEE-754 equality: NaN-state pointers are
// unequal to everything including themselves, and negative null equals null.
func (p Pointer[T]) Equal(q Pointer[T]) bool {
	return p.raw == q.raw
}

// NotEqual reports p != q under IEEE-754 equality.
func (p Pointer[T]) NotEqual(q Pointer[T]) bool {
	return p.raw != q.raw
}

// Less reports p < q. All orderings involving a NaN-state pointer are false.
func (p Pointer[T]) Less(q Pointer[T]) bool {
	return p.raw < q.raw
}

// LessEqual reports p <= q under IEEE-754 ordering.
func (p Pointer[T]) LessEqual(q Pointer[T]) bool {
	return p.raw <= q.raw
}

// Greater reports p > q under IEEE-754 ordering.
func (p Pointer[T]) Greater(q Pointer[T]) bool {
	return p.raw > q.raw
}

// GreaterEqual reports p >= q under IEEE-754 ordering.
func (p Pointer[T]) GreaterEqual(q Pointer[T]) bool {
	return p.raw >= q.raw
}

// Next advances the pointer by one element (sizeof(T) bytes), added as a
// float64. Exact below the 2^53 boundary; rounds beyond it.
func (p Pointer[T]) Next() Pointer[T] {
	return Pointer[T]{raw: p.raw + float64(unit[T]())}
}

// Prev moves the pointer back by one element.
func (p Pointer[T]) Prev() Pointer[T] {
	return Pointer[T]{raw: p.raw - float64(unit[T]())}
}

// Add advances the pointer by n elements: raw + n*sizeof(T), computed in
// float64. Adding to an infinity state stays at infinity; adding to a NaN
// state stays NaN. Both are accepted consequences of the representation.
func (p Pointer[T]) Add(n float64) Pointer[T] {
	return Pointer[T]{raw: p.raw + n*float64(unit[T]())}
}

// Sub moves the pointer back by n elements.
func (p Pointer[T]) Sub(n float64) Pointer[T] {
	return Pointer[T]{raw: p.raw - n*float64(unit[T]())}
}

// Mul scales the raw double by v. Unlike Add this is NOT element-scaled; it
// is a floating-point escape hatch, not a pointer operation. Do not use it
// for address computation.
func (p Pointer[T]) Mul(v float64) Pointer[T] {
	return Pointer[T]{raw: p.raw * v}
}

// Div divides the raw double by v. Escape hatch; see Mul.
func (p Pointer[T]) Div(v float64) Pointer[T] {
	return Pointer[T]{raw: p.raw / v}
}

// Mod reduces the raw double modulo v via math.Mod. Escape hatch; see Mul.
func (p Pointer[T]) Mod(v float64) Pointer[T] {
	return Pointer[T]{raw: math.Mod(p.raw, v)}
}

// String formats the pointer as its bit pattern and float value, e.g.
// "floatptr(0x3ff0000000000000 = 1)".
func (p Pointer[T]) String() string {
	return fmt.Sprintf("floatptr(0x%016x = %v)", p.Bits(), p.raw)
}

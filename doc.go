// Package floatptr provides a typed pointer abstraction backed by a 64-bit
// IEEE-754 double instead of a native machine word.
//
// A double's 52-bit mantissa plus implicit bit represents every integer up to
// 2^53 exactly, which makes it a lossless carrier for realistic address
// ranges. In exchange, a pointer value participates in floating-point special
// states: infinity, NaN, and negative zero become alternate "non-address"
// pointer states distinct from null.
//
// # Quick Start
//
//	x := 42
//	p := floatptr.From(&x)
//
//	fmt.Println(p.Deref()) // 42
//	p.Set(7)
//	fmt.Println(x) // 7
//
// Element arithmetic follows native pointer semantics: adding n advances by
// n elements, not n bytes.
//
//	arr := [4]int32{10, 20, 30, 40}
//	p := floatptr.From(&arr[0])
//	fmt.Println(*p.Add(3).Ptr()) // 40
//
// # Special Pointer States
//
//	inf := floatptr.InfinityPointer[int]()
//	nan := floatptr.NaNPointer[int]()
//
//	inf.Bool()     // true, but not a valid address
//	nan.Equal(nan) // false: NaN is unequal to everything, itself included
//
// # Safety Contract
//
// This package performs no validation whatsoever. Converting a special value
// to a native pointer yields garbage silently, dereferencing an invalid
// address is undefined behavior, and arithmetic past the 2^53 exact-integer
// boundary of a double rounds. All of that is the documented contract, not a
// bug: the type adds and removes nothing relative to native pointers and raw
// IEEE-754 arithmetic.
//
// # Concurrency
//
// Pointer is a plain value with no shared state. Copies held by multiple
// goroutines are exactly as safe, or unsafe, as copies of a native pointer
// to the same object.
package floatptr

package floatptr_test

import (
	"fmt"

	"github.com/hupe1980/floatptr"
)

// Example demonstrates basic load/store through a double-backed pointer.
func Example() {
	x := 42
	p := floatptr.From(&x)

	fmt.Println(p.Deref())

	p.Set(7)
	fmt.Println(x)
	// Output:
	// 42
	// 7
}

// Example_arithmetic demonstrates element-scaled pointer arithmetic over an
// array, matching native pointer-offset semantics.
func Example_arithmetic() {
	arr := [4]int32{10, 20, 30, 40}
	p := floatptr.From(&arr[0])

	fmt.Println(*p.Add(3).Ptr())
	fmt.Println(*p.Next().Next().Ptr())
	fmt.Println(*p.At(1))
	// Output:
	// 40
	// 30
	// 20
}

// Example_special demonstrates the non-address pointer states and the IEEE
// comparison rules they inherit.
func Example_special() {
	null := floatptr.Null[int]()
	negNull := floatptr.NegativeNullPointer[int]()
	nan := floatptr.NaNPointer[int]()

	fmt.Println(null.Bool())
	fmt.Println(nan.Bool())
	fmt.Println(negNull.Equal(null))
	fmt.Println(negNull.Bits() == null.Bits())
	fmt.Println(nan.Equal(nan))
	// Output:
	// false
	// true
	// true
	// false
	// false
}

// Example_ref demonstrates the address-of wrapper.
func Example_ref() {
	x := 1
	r := floatptr.RefOf(&x)

	x = 2
	fmt.Println(*r.Get())
	// Output:
	// 2
}

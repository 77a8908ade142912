package mem

import "unsafe"

// Alignment is the byte alignment of every allocation (one cache line).
const Alignment = 64

// AllocAlignedBytes allocates a byte slice of the given size whose first
// element sits at an address divisible by Alignment.
//
// Note: slightly more memory than requested is allocated to find an aligned
// offset. The underlying array is kept alive by the returned slice.
func AllocAlignedBytes(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Over-allocate so an aligned start always exists within the buffer.
	buf := make([]byte, size+Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// AllocAligned allocates a []T of n elements starting at an Alignment-aligned
// address. T must not contain pointers: the element storage is reinterpreted
// from a byte buffer and the GC scans it as bytes.
func AllocAligned[T any](n int) []T {
	if n <= 0 {
		return nil
	}

	var zero T
	byteSlice := AllocAlignedBytes(n * int(unsafe.Sizeof(zero)))

	// Safe: AllocAlignedBytes guarantees 64-byte alignment, which satisfies
	// the alignment of every scalar element type.
	ptr := unsafe.Pointer(&byteSlice[0]) //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*T)(ptr), n)    //nolint:gosec // unsafe is required for memory alignment
}

package mem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestAllocAlignedBytes(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}

	for _, size := range sizes {
		buf := AllocAlignedBytes(size)
		assert.Len(t, buf, size)

		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Equal(t, uintptr(0), addr%Alignment, "address %d should be aligned to %d for size %d", addr, Alignment, size)
	}

	assert.Nil(t, AllocAlignedBytes(0))
	assert.Nil(t, AllocAlignedBytes(-1))
}

func TestAllocAligned(t *testing.T) {
	t.Run("Int64", func(t *testing.T) {
		s := AllocAligned[int64](17)
		assert.Len(t, s, 17)

		addr := uintptr(unsafe.Pointer(&s[0]))
		assert.Equal(t, uintptr(0), addr%Alignment)

		// Elements must be writable across the whole slice.
		for i := range s {
			s[i] = int64(i)
		}
		assert.Equal(t, int64(16), s[16])
	})

	t.Run("Struct", func(t *testing.T) {
		type pair struct{ a, b uint32 }

		s := AllocAligned[pair](9)
		assert.Len(t, s, 9)

		addr := uintptr(unsafe.Pointer(&s[0]))
		assert.Equal(t, uintptr(0), addr%Alignment)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Nil(t, AllocAligned[byte](0))
		assert.Nil(t, AllocAligned[byte](-1))
	})
}

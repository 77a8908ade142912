package floatptr

import (
	"encoding/binary"
	"fmt"
)

// EncodedSize is the fixed length of a binary-encoded Pointer.
const EncodedSize = 8

// The binary form is the little-endian bytes of the IEEE-754 bit pattern.
// It round-trips every state byte for byte, including the sign of zero and
// the exact NaN payload; anything less would silently corrupt interchange.

// MarshalBinary implements encoding.BinaryMarshaler.
func (p Pointer[T]) MarshalBinary() ([]byte, error) {
	return p.AppendBinary(nil)
}

// AppendBinary implements encoding.BinaryAppender.
func (p Pointer[T]) AppendBinary(b []byte) ([]byte, error) {
	return binary.LittleEndian.AppendUint64(b, p.Bits()), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It fails with
// ErrInvalidLength unless data is exactly EncodedSize bytes.
func (p *Pointer[T]) UnmarshalBinary(data []byte) error {
	if len(data) != EncodedSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(data), EncodedSize)
	}
	*p = FromBits[T](binary.LittleEndian.Uint64(data))
	return nil
}

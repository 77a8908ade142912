package floatptr

import "errors"

// ErrInvalidLength is returned when decoding a binary-encoded pointer from a
// buffer whose length is not EncodedSize. It is the package's only error:
// the pointer type itself has a zero-error surface, and invalid address use
// stays undefined behavior rather than becoming a recoverable error.
var ErrInvalidLength = errors.New("floatptr: invalid encoded length")

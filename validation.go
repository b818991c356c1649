package ashf

import (
	"fmt"
)

// Input validation helpers for defensive programming

// ValidateBuffer checks if a buffer is valid (non-nil and has expected size)
func ValidateBuffer(buf []byte, name string, minSize int) error {
	if buf == nil {
		return &ValidationError{
			Field:   name,
			Message: "buffer cannot be nil",
		}
	}
	if minSize > 0 && len(buf) < minSize {
		return &ValidationError{
			Field:   name,
			Value:   len(buf),
			Message: fmt.Sprintf("buffer too small: got %d bytes, need at least %d bytes", len(buf), minSize),
		}
	}
	return nil
}

// ValidateExactSize checks that a buffer has exactly the expected size
func ValidateExactSize(buf []byte, name string, size int) error {
	if len(buf) != size {
		return &ValidationError{
			Field:   name,
			Value:   len(buf),
			Message: fmt.Sprintf("size mismatch: got %d bytes, want %d bytes", len(buf), size),
		}
	}
	return nil
}

// ValidateSecret checks that a secret is usable for key derivation
func ValidateSecret(secret []byte) error {
	if len(secret) == 0 {
		return &DerivationError{
			Field:   "secret",
			Message: "secret cannot be empty",
			Err:     ErrEmptySecret,
		}
	}
	return nil
}

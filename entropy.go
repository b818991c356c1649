package ashf

import (
	"crypto/rand"
	"fmt"
)

// EntropySource supplies cryptographically secure random bytes for salts
// and IVs. It is an explicit handle rather than ambient package state so
// tests can inject a deterministic seeded source.
type EntropySource interface {
	// Bytes returns n random bytes or an error if the source is
	// unavailable. Implementations must never return short reads.
	Bytes(n int) ([]byte, error)
}

// SystemEntropy reads from the operating system CSPRNG (crypto/rand).
// A read failure means OS entropy is unavailable and is fatal for the
// operation; there is no fallback to a weaker source.
type SystemEntropy struct{}

// Bytes returns n bytes from crypto/rand
func (SystemEntropy) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, &ValidationError{
			Field:   "n",
			Value:   n,
			Message: "byte count cannot be negative",
		}
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, NewEntropyError(fmt.Errorf("os entropy unavailable: %w", err))
	}
	return buf, nil
}

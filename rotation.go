package ashf

import "fmt"

// Secret rotation helpers: re-protect existing artifacts under a new
// secret, and unprotect with a list of candidate secrets during a
// migration window.

// Rotate verifies and decrypts payload under oldSecret, then protects the
// recovered plaintext under newSecret. The intermediate plaintext is
// wiped before returning.
func (p *Protector) Rotate(oldSecret, newSecret, payload []byte) ([]byte, error) {
	plaintext, err := p.Unprotect(oldSecret, payload)
	if err != nil {
		return nil, err
	}
	defer SecureWipe(plaintext)

	return p.Protect(newSecret, plaintext)
}

// MultiSecret tries several secrets in order when unprotecting. The first
// secret is used for new protections, the rest are decryption fallbacks
// kept around during rotation/migration.
type MultiSecret struct {
	secrets [][]byte
	primary []byte
}

// NewMultiSecret creates a multi-secret set. At least one secret is
// required; the first is the primary.
func NewMultiSecret(secrets ...[]byte) (*MultiSecret, error) {
	if len(secrets) == 0 {
		return nil, fmt.Errorf("at least one secret required")
	}
	return &MultiSecret{
		secrets: secrets,
		primary: secrets[0],
	}, nil
}

// Primary returns the secret used for new protections
func (m *MultiSecret) Primary() []byte {
	return m.primary
}

// UnprotectAny attempts to unprotect the payload with each secret in
// order, returning the first success. Format errors are terminal
// immediately: a malformed payload fails identically for every secret.
func (p *Protector) UnprotectAny(ms *MultiSecret, payload []byte) ([]byte, error) {
	if ms == nil {
		return nil, fmt.Errorf("multi-secret cannot be nil")
	}

	var lastErr error
	for _, secret := range ms.secrets {
		plaintext, err := p.Unprotect(secret, payload)
		if err == nil {
			return plaintext, nil
		}
		if IsFormatError(err) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("all secrets failed: %w", lastErr)
}

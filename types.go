package ashf

// CipherSuite represents the AEAD algorithm used for the encryption stage
type CipherSuite uint8

const (
	// CipherAuto automatically selects the best cipher based on hardware capabilities
	CipherAuto CipherSuite = iota
	// CipherAES256GCM uses AES-256 with Galois/Counter Mode
	CipherAES256GCM
	// CipherChaCha20Poly1305 uses ChaCha20 stream cipher with Poly1305 MAC
	CipherChaCha20Poly1305
)

// String returns the string representation of the cipher suite
func (c CipherSuite) String() string {
	switch c {
	case CipherAuto:
		return "auto"
	case CipherAES256GCM:
		return "aes-256-gcm"
	case CipherChaCha20Poly1305:
		return "chacha20-poly1305"
	default:
		return "unknown"
	}
}

// Config contains configuration for a Protector.
//
// The payload layout carries no algorithm markers, so the same Config
// (cipher suite and key derivation parameters) must be used to protect
// and to unprotect a given payload.
type Config struct {
	// Cipher suite to use for the authenticated encryption stage
	Cipher CipherSuite

	// Deriver turns (secret, salt) into the cipher/integrity key pair.
	// Defaults to PBKDF2 with DefaultPBKDF2Params if nil.
	Deriver KeyDeriver

	// Entropy supplies random salts and IVs. Defaults to the operating
	// system CSPRNG if nil. Injectable so tests can use a seeded source.
	Entropy EntropySource

	// Parallel controls worker-pool settings for batch operations
	Parallel ParallelConfig
}

// DefaultConfig returns a configuration with AES-256-GCM, default PBKDF2
// parameters, and the system entropy source
func DefaultConfig() *Config {
	return &Config{
		Cipher:   CipherAES256GCM,
		Deriver:  NewPBKDF2Deriver(DefaultPBKDF2Params()),
		Entropy:  SystemEntropy{},
		Parallel: DefaultParallelConfig(),
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}
	if c.Cipher != CipherAuto && c.Cipher != CipherAES256GCM && c.Cipher != CipherChaCha20Poly1305 {
		return ErrUnsupportedCipher
	}
	if err := c.Parallel.Validate(); err != nil {
		return err
	}
	return nil
}

// KeyDeriver derives the per-operation key pair from a secret and salt.
// Implementations must be deterministic for a given (secret, salt) and
// must keep the two keys domain-separated.
type KeyDeriver interface {
	// DeriveKeys derives the cipher and integrity keys. The salt must be
	// exactly SaltSize bytes and the secret non-empty.
	DeriveKeys(secret, salt []byte) (*DerivedKeys, error)
}

package ashf

import (
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// Derived key sizes. The cipher key feeds a 256-bit AEAD; the integrity
// key feeds HMAC-SHA-512 and uses the full block-matched 64-byte length.
const (
	CipherKeySize    = 32
	IntegrityKeySize = 64
)

// Domain separation labels appended to the salt, one per derivation call,
// so the two keys are not trivially related even if one is recovered.
var (
	cipherKeyLabel    = []byte("ashf.v1.cipher-key")
	integrityKeyLabel = []byte("ashf.v1.integrity-key")
)

// DerivedKeys holds the per-operation key pair. It lives only for the
// duration of one protect/unprotect call; callers must Wipe it on every
// exit path.
type DerivedKeys struct {
	CipherKey    []byte // 32 bytes, AEAD key (also seeds the substitution table)
	IntegrityKey []byte // 64 bytes, HMAC-SHA-512 key
}

// Wipe overwrites both keys in place
func (k *DerivedKeys) Wipe() {
	if k == nil {
		return
	}
	SecureWipe(k.CipherKey)
	SecureWipe(k.IntegrityKey)
}

func validateDerivationInput(secret, salt []byte) error {
	if len(secret) == 0 {
		return &DerivationError{
			Field:   "secret",
			Message: "secret cannot be empty",
			Err:     ErrEmptySecret,
		}
	}
	if len(salt) != SaltSize {
		return &DerivationError{
			Field:   "salt",
			Message: "salt must be exactly 16 bytes",
		}
	}
	return nil
}

// labeledSalt returns salt∥label for one derivation call
func labeledSalt(salt, label []byte) []byte {
	out := make([]byte, 0, len(salt)+len(label))
	out = append(out, salt...)
	return append(out, label...)
}

// PBKDF2Params contains parameters for PBKDF2 key derivation. The two
// iteration counts are deliberately distinct: together with the per-call
// labels they keep the derivations domain-separated. Counts should be
// tuned so one derivation costs at least ~100ms on target hardware.
type PBKDF2Params struct {
	CipherIterations    int // Iterations for the cipher key (SHA-256 PRF)
	IntegrityIterations int // Iterations for the integrity key (SHA-512 PRF)
}

// DefaultPBKDF2Params returns production iteration counts
func DefaultPBKDF2Params() PBKDF2Params {
	return PBKDF2Params{
		CipherIterations:    600_000,
		IntegrityIterations: 240_000,
	}
}

// PBKDF2Deriver derives the key pair with two PBKDF2 calls over the same
// secret and salt, using distinct labels, iteration counts, and PRFs
type PBKDF2Deriver struct {
	params PBKDF2Params
}

// NewPBKDF2Deriver creates a PBKDF2-based key deriver. Zero-valued
// parameters are replaced with the defaults.
func NewPBKDF2Deriver(params PBKDF2Params) *PBKDF2Deriver {
	defaults := DefaultPBKDF2Params()
	if params.CipherIterations == 0 {
		params.CipherIterations = defaults.CipherIterations
	}
	if params.IntegrityIterations == 0 {
		params.IntegrityIterations = defaults.IntegrityIterations
	}
	return &PBKDF2Deriver{params: params}
}

// DeriveKeys derives the cipher and integrity keys
func (d *PBKDF2Deriver) DeriveKeys(secret, salt []byte) (*DerivedKeys, error) {
	if err := validateDerivationInput(secret, salt); err != nil {
		return nil, err
	}

	cipherKey := pbkdf2.Key(secret, labeledSalt(salt, cipherKeyLabel),
		d.params.CipherIterations, CipherKeySize, sha256.New)
	integrityKey := pbkdf2.Key(secret, labeledSalt(salt, integrityKeyLabel),
		d.params.IntegrityIterations, IntegrityKeySize, sha512.New)

	return &DerivedKeys{
		CipherKey:    cipherKey,
		IntegrityKey: integrityKey,
	}, nil
}

// Argon2idParams contains parameters for Argon2id key derivation
type Argon2idParams struct {
	Memory      uint32 // Memory in KiB (e.g., 64*1024 for 64MB)
	Iterations  uint32 // Number of iterations (time parameter)
	Parallelism uint8  // Degree of parallelism
}

// DefaultArgon2idParams returns production Argon2id parameters
func DefaultArgon2idParams() Argon2idParams {
	return Argon2idParams{
		Memory:      64 * 1024, // 64 MB
		Iterations:  3,
		Parallelism: 4,
	}
}

// Argon2idDeriver derives the key pair with Argon2id. The integrity
// derivation uses one extra pass on top of the distinct label.
type Argon2idDeriver struct {
	params Argon2idParams
}

// NewArgon2idDeriver creates an Argon2id-based key deriver. Zero-valued
// parameters are replaced with the defaults.
func NewArgon2idDeriver(params Argon2idParams) *Argon2idDeriver {
	defaults := DefaultArgon2idParams()
	if params.Memory == 0 {
		params.Memory = defaults.Memory
	}
	if params.Iterations == 0 {
		params.Iterations = defaults.Iterations
	}
	if params.Parallelism == 0 {
		params.Parallelism = defaults.Parallelism
	}
	return &Argon2idDeriver{params: params}
}

// DeriveKeys derives the cipher and integrity keys
func (d *Argon2idDeriver) DeriveKeys(secret, salt []byte) (*DerivedKeys, error) {
	if err := validateDerivationInput(secret, salt); err != nil {
		return nil, err
	}

	cipherKey := argon2.IDKey(secret, labeledSalt(salt, cipherKeyLabel),
		d.params.Iterations, d.params.Memory, d.params.Parallelism, CipherKeySize)
	integrityKey := argon2.IDKey(secret, labeledSalt(salt, integrityKeyLabel),
		d.params.Iterations+1, d.params.Memory, d.params.Parallelism, IntegrityKeySize)

	return &DerivedKeys{
		CipherKey:    cipherKey,
		IntegrityKey: integrityKey,
	}, nil
}

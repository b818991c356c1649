package ashf

import (
	"crypto/hmac"
	"crypto/sha512"
	"crypto/subtle"
	"errors"

	"github.com/sirupsen/logrus"
)

// Protector runs the protect/unprotect pipeline for a fixed Config.
// It is safe for concurrent use: every call derives its own salt, IV and
// key pair, which also guarantees that no (cipher key, IV) pair is ever
// reused. Key derivation is intentionally slow and CPU-bound; callers
// running many operations should spread them over a worker pool (see
// ProtectBatch/UnprotectBatch).
type Protector struct {
	cipher   CipherSuite
	deriver  KeyDeriver
	entropy  EntropySource
	parallel ParallelConfig
}

// New creates a Protector from the given configuration. Nil Deriver and
// Entropy fields fall back to PBKDF2 defaults and the system CSPRNG.
func New(config *Config) (*Protector, error) {
	if config == nil {
		return nil, ErrNilConfig
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	cipher := config.Cipher
	if cipher == CipherAuto {
		cipher = CipherAES256GCM
	}

	deriver := config.Deriver
	if deriver == nil {
		deriver = NewPBKDF2Deriver(DefaultPBKDF2Params())
	}

	entropy := config.Entropy
	if entropy == nil {
		entropy = SystemEntropy{}
	}

	parallel := config.Parallel
	if parallel.MaxWorkers == 0 && parallel.MinJobsForParallel == 0 {
		parallel = DefaultParallelConfig()
	}

	return &Protector{
		cipher:   cipher,
		deriver:  deriver,
		entropy:  entropy,
		parallel: parallel,
	}, nil
}

// Protect transforms plaintext into an opaque fixed-layout artifact bound
// to the secret. Two calls with identical inputs produce different
// payloads (fresh salt and IV per call); both unprotect correctly.
func (p *Protector) Protect(secret, plaintext []byte) ([]byte, error) {
	salt, err := p.entropy.Bytes(SaltSize)
	if err != nil {
		return nil, err
	}
	iv, err := p.entropy.Bytes(IVSize)
	if err != nil {
		return nil, err
	}

	keys, err := p.deriver.DeriveKeys(secret, salt)
	if err != nil {
		return nil, err
	}
	defer keys.Wipe()

	engine, err := newCipherEngine(p.cipher, keys.CipherKey)
	if err != nil {
		return nil, NewEncryptionError("protect", err)
	}

	diffused := diffuse(plaintext)
	defer SecureWipe(diffused)

	ciphertext, err := engine.Encrypt(iv, diffused)
	if err != nil {
		return nil, NewEncryptionError("protect", err)
	}

	// The tag binds the raw ciphertext, chosen before substitution so the
	// substitution layer cannot be leveraged to forge a valid tag over
	// mutated bytes.
	tag := computeIntegrityTag(keys.IntegrityKey, ciphertext)

	table := newSubstitutionTable(keys.CipherKey)
	substituted := table.apply(ciphertext)

	digest := computeFinalDigest(substituted)

	payload := &SecurityPayload{
		Salt:       salt,
		IV:         iv,
		Tag:        tag,
		Digest:     digest,
		Ciphertext: substituted,
	}
	return payload.Encode(), nil
}

// Unprotect verifies and decrypts an artifact produced by Protect with
// the same secret and configuration. The payload is rejected with a
// FormatError before any cryptographic work if it is below the
// fixed-field minimum; all verification failures share one outward error
// message, with the failing stage logged internally only.
func (p *Protector) Unprotect(secret, payload []byte) ([]byte, error) {
	decoded, err := DecodePayload(payload)
	if err != nil {
		return nil, err
	}

	keys, err := p.deriver.DeriveKeys(secret, decoded.Salt)
	if err != nil {
		return nil, err
	}
	defer keys.Wipe()

	table := newSubstitutionTable(keys.CipherKey)
	ciphertext := table.invert(decoded.Ciphertext)

	tag := computeIntegrityTag(keys.IntegrityKey, ciphertext)
	if !hmac.Equal(tag, decoded.Tag) {
		logVerificationFailure("integrity-tag")
		return nil, newVerificationError(ErrIntegrityFailure)
	}

	digest := computeFinalDigest(decoded.Ciphertext)
	if subtle.ConstantTimeCompare(digest, decoded.Digest) != 1 {
		logVerificationFailure("final-digest")
		return nil, newVerificationError(ErrTamperDetected)
	}

	engine, err := newCipherEngine(p.cipher, keys.CipherKey)
	if err != nil {
		return nil, NewEncryptionError("unprotect", err)
	}

	// The AEAD is the authoritative boundary: its failure is terminal
	// even though the outer checks passed.
	diffused, err := engine.Decrypt(decoded.IV, ciphertext)
	if err != nil {
		if errors.Is(err, ErrAuthenticationFailure) {
			logVerificationFailure("aead")
			return nil, newVerificationError(ErrAuthenticationFailure)
		}
		return nil, NewEncryptionError("unprotect", err)
	}
	defer SecureWipe(diffused)

	return undiffuse(diffused), nil
}

// computeIntegrityTag returns HMAC-SHA-512 over the raw ciphertext
func computeIntegrityTag(key, ciphertext []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(ciphertext)
	return mac.Sum(nil)
}

// computeFinalDigest returns SHA-512 over one diffusion pass of the
// substituted ciphertext, a tamper-evident checksum independent of the
// keyed tag
func computeFinalDigest(substituted []byte) []byte {
	sum := sha512.Sum512(diffuse(substituted))
	return sum[:]
}

// logVerificationFailure records the failing stage internally. The stage
// is never surfaced in the returned error text.
func logVerificationFailure(stage string) {
	logrus.WithFields(logrus.Fields{
		"package": "ashf",
		"op":      "unprotect",
		"stage":   stage,
	}).Debug("payload verification failed")
}

// Package-level convenience operations using DefaultConfig.

// Protect protects plaintext under secret with the default configuration
func Protect(secret, plaintext []byte) ([]byte, error) {
	p, err := New(DefaultConfig())
	if err != nil {
		return nil, err
	}
	return p.Protect(secret, plaintext)
}

// Unprotect verifies and decrypts payload under secret with the default
// configuration
func Unprotect(secret, payload []byte) ([]byte, error) {
	p, err := New(DefaultConfig())
	if err != nil {
		return nil, err
	}
	return p.Unprotect(secret, payload)
}

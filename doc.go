// Package ashf protects caller-supplied secrets by transforming plaintext
// into an opaque, fixed-layout binary artifact that can be safely stored
// or transmitted, and later verified and decrypted by a holder of the
// same secret.
//
// # Pipeline
//
// Each protect operation chains standard primitives in a strict order:
//
//   - PBKDF2 (or Argon2id) derives a 256-bit cipher key and a 512-bit
//     integrity key from the secret and a fresh 16-byte random salt,
//     with domain-separated labels and work factors
//   - a keyless diffusion pass mixes the plaintext before it reaches
//     the cipher, as defense-in-depth only
//   - AES-256-GCM (or ChaCha20-Poly1305) encrypts under a fresh 12-byte
//     IV with a 128-bit tag
//   - HMAC-SHA-512 binds the raw ciphertext as an independent integrity
//     tag
//   - a key-seeded byte substitution obfuscates the stored ciphertext
//   - SHA-512 over a diffusion pass of the substituted bytes yields a
//     final tamper-evident checksum
//
// The artifact layout is salt(16) ∥ iv(12) ∥ tag(64) ∥ digest(64) ∥
// ciphertext. Fresh random salts make every cipher key single-use, so no
// (key, IV) pair ever repeats.
//
// # Basic Usage
//
//	payload, err := ashf.Protect([]byte("my-secret"), []byte("hello"))
//	if err != nil {
//	    panic(err)
//	}
//
//	plaintext, err := ashf.Unprotect([]byte("my-secret"), payload)
//	if err != nil {
//	    // wrong secret, tampered or malformed payload
//	}
//
// A Protector created with New and a Config selects the cipher suite,
// key derivation parameters, and entropy source. The layout carries no
// algorithm markers: the same configuration must be used to protect and
// to unprotect a payload.
//
//	p, err := ashf.New(&ashf.Config{
//	    Cipher:  ashf.CipherChaCha20Poly1305,
//	    Deriver: ashf.NewArgon2idDeriver(ashf.DefaultArgon2idParams()),
//	})
//
// # Security Considerations
//
// Protected against: offline brute force of the secret (slow, salted key
// derivation), payload tampering (three independent checks: HMAC, final
// digest, AEAD tag), and verification oracles (all rejections share one
// outward error message).
//
// Not protected against: a compromised secret, side channels in the host
// environment, or loss of the payload bytes themselves. The diffusion
// and substitution passes are obfuscation layers, never the protection
// boundary; the AEAD remains authoritative.
//
// All verification failures are terminal for the call. Operations share
// no mutable state and are safe to run concurrently; ProtectBatch and
// UnprotectBatch spread CPU-bound derivation work over a worker pool.
package ashf

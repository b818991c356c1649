package ashf

// Fixed payload layout. All fields are raw bytes at fixed offsets, with
// the variable-length ciphertext as the tail:
//
//	┌────────┬────────┬───────────────┬───────────────┬──────────────────┐
//	│ 0..15  │ 16..27 │ 28..91        │ 92..155       │ 156..            │
//	│ salt   │ iv     │ integrity tag │ final digest  │ ciphertext+tag   │
//	└────────┴────────┴───────────────┴───────────────┴──────────────────┘
//
// The ciphertext field stores the post-substitution bytes, so the final
// digest covers exactly what is stored; the substitution is inverted
// before the integrity and AEAD checks on the unprotect path.

const (
	// SaltSize is the key-derivation salt size in bytes
	SaltSize = 16
	// TagSize is the integrity tag size: the full, untruncated
	// HMAC-SHA-512 output
	TagSize = 64
	// DigestSize is the final SHA-512 digest size in bytes
	DigestSize = 64

	saltOffset       = 0
	ivOffset         = saltOffset + SaltSize
	tagOffset        = ivOffset + IVSize
	digestOffset     = tagOffset + TagSize
	ciphertextOffset = digestOffset + DigestSize

	// MinPayloadSize is the fixed-field minimum; anything shorter is
	// malformed and rejected before any cryptographic work
	MinPayloadSize = ciphertextOffset
)

// SecurityPayload holds the decoded fields of a protected artifact. The
// slices alias the decoded buffer; they are not copies.
type SecurityPayload struct {
	Salt       []byte // 16 bytes, key-derivation salt
	IV         []byte // 12 bytes, AEAD nonce
	Tag        []byte // 64 bytes, HMAC-SHA-512 over the pre-substitution ciphertext
	Digest     []byte // 64 bytes, SHA-512 over the diffused post-substitution ciphertext
	Ciphertext []byte // variable, substituted ciphertext including the 16-byte AEAD tag
}

// Encode assembles the fixed-layout artifact
func (p *SecurityPayload) Encode() []byte {
	out := make([]byte, 0, MinPayloadSize+len(p.Ciphertext))
	out = append(out, p.Salt...)
	out = append(out, p.IV...)
	out = append(out, p.Tag...)
	out = append(out, p.Digest...)
	return append(out, p.Ciphertext...)
}

// DecodePayload parses a fixed-layout artifact. It returns a FormatError
// if the buffer is below the fixed-field minimum or the ciphertext field
// cannot hold the AEAD tag.
func DecodePayload(buf []byte) (*SecurityPayload, error) {
	if len(buf) < MinPayloadSize {
		return nil, &FormatError{
			Length:  len(buf),
			Message: ErrPayloadTooShort.Error(),
		}
	}
	if len(buf)-ciphertextOffset < AEADTagSize {
		return nil, &FormatError{
			Length:  len(buf),
			Message: "ciphertext field shorter than the AEAD tag",
		}
	}

	return &SecurityPayload{
		Salt:       buf[saltOffset:ivOffset],
		IV:         buf[ivOffset:tagOffset],
		Tag:        buf[tagOffset:digestOffset],
		Digest:     buf[digestOffset:ciphertextOffset],
		Ciphertext: buf[ciphertextOffset:],
	}, nil
}

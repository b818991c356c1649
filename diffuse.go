package ashf

import "math/bits"

// Diffusion pass: a keyless, non-cryptographic bit-mixing stage that
// obscures structural patterns in a buffer before it reaches the AEAD,
// and again before the final digest. It is defense-in-depth around the
// cipher, never a protection layer on its own. The verify path never
// undoes it: the digest check recomputes the pass over the stored bytes.
// Only plaintext recovery, after every check has passed, runs the mix
// backwards.

const (
	diffusionRounds = 3

	// Chain seeds for the first byte of each directional pass
	forwardSeed  = 0xA5
	backwardSeed = 0xC3

	// Odd multiplier and its inverse mod 256 (167 * 23 ≡ 1)
	mixMul   = 167
	mixUnmul = 23
)

// mixByte combines a byte with its already-mixed neighbor, then applies a
// multiply-and-rotate step. Invertible for a known neighbor value.
func mixByte(b, neighbor byte) byte {
	return bits.RotateLeft8((b^neighbor)*mixMul, 3) + (neighbor & 0x7f)
}

func unmixByte(b, neighbor byte) byte {
	return (bits.RotateLeft8(b-(neighbor&0x7f), -3) * mixUnmul) ^ neighbor
}

// diffuse returns a mixed copy of buf: three rounds, each chaining every
// byte with its left neighbor and then its right neighbor. Deterministic
// for a given input.
func diffuse(buf []byte) []byte {
	out := make([]byte, len(buf))
	copy(out, buf)
	n := len(out)
	if n == 0 {
		return out
	}

	for round := 0; round < diffusionRounds; round++ {
		prev := byte(forwardSeed)
		for i := 0; i < n; i++ {
			out[i] = mixByte(out[i], prev)
			prev = out[i]
		}
		next := byte(backwardSeed)
		for i := n - 1; i >= 0; i-- {
			out[i] = mixByte(out[i], next)
			next = out[i]
		}
	}
	return out
}

// undiffuse reverses diffuse. Used only to recover the plaintext after
// the AEAD has authenticated it.
func undiffuse(buf []byte) []byte {
	out := make([]byte, len(buf))
	copy(out, buf)
	n := len(out)
	if n == 0 {
		return out
	}

	for round := 0; round < diffusionRounds; round++ {
		// Undo the backward chain: byte i was mixed with the final value
		// of byte i+1, which is still intact when walking left to right.
		for i := 0; i < n; i++ {
			neighbor := byte(backwardSeed)
			if i < n-1 {
				neighbor = out[i+1]
			}
			out[i] = unmixByte(out[i], neighbor)
		}
		// Undo the forward chain, walking right to left.
		for i := n - 1; i >= 0; i-- {
			neighbor := byte(forwardSeed)
			if i > 0 {
				neighbor = out[i-1]
			}
			out[i] = unmixByte(out[i], neighbor)
		}
	}
	return out
}

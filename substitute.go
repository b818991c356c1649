package ashf

// Substitution pass: a key-dependent byte permutation applied to the
// ciphertext after the integrity tag is computed. The table is seeded
// with exported cipher-key material; since the key is only consumed as a
// permutation seed there is no raw key reuse across primitives.

// sboxPrime drives the swap schedule when building the permutation table
const sboxPrime = 179426549

// substitutionTable is a 256-entry byte permutation and its inverse
type substitutionTable struct {
	forward [256]byte
	inverse [256]byte
}

// newSubstitutionTable builds the permutation from seed material using
// swaps over the identity table, Fisher-Yates style, driven by the seed
// bytes and the prime multiplier. Deterministic for a given seed.
func newSubstitutionTable(seed []byte) *substitutionTable {
	t := &substitutionTable{}
	for i := 0; i < 256; i++ {
		t.forward[i] = byte(i)
	}
	if len(seed) > 0 {
		for i := 0; i < 256; i++ {
			j := (int(seed[i%len(seed)]) + i*sboxPrime) & 0xff
			t.forward[i], t.forward[j] = t.forward[j], t.forward[i]
		}
	}
	for i := 0; i < 256; i++ {
		t.inverse[t.forward[i]] = byte(i)
	}
	return t
}

// apply maps every byte of buf through the forward table, returning a new
// slice. Length is preserved.
func (t *substitutionTable) apply(buf []byte) []byte {
	out := make([]byte, len(buf))
	for i, b := range buf {
		out[i] = t.forward[b]
	}
	return out
}

// invert maps every byte of buf through the inverse table
func (t *substitutionTable) invert(buf []byte) []byte {
	out := make([]byte, len(buf))
	for i, b := range buf {
		out[i] = t.inverse[b]
	}
	return out
}

package ashf

import (
	"bytes"
	"testing"
)

func benchProtector(b *testing.B) *Protector {
	b.Helper()
	p, err := New(testConfig())
	if err != nil {
		b.Fatalf("Failed to create protector: %v", err)
	}
	return p
}

func BenchmarkProtect(b *testing.B) {
	p := benchProtector(b)
	secret := []byte("bench-secret")
	plaintext := bytes.Repeat([]byte("A"), 1024)

	b.SetBytes(int64(len(plaintext)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Protect(secret, plaintext); err != nil {
			b.Fatalf("Protect failed: %v", err)
		}
	}
}

func BenchmarkUnprotect(b *testing.B) {
	p := benchProtector(b)
	secret := []byte("bench-secret")
	plaintext := bytes.Repeat([]byte("A"), 1024)

	payload, err := p.Protect(secret, plaintext)
	if err != nil {
		b.Fatalf("Protect failed: %v", err)
	}

	b.SetBytes(int64(len(plaintext)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Unprotect(secret, payload); err != nil {
			b.Fatalf("Unprotect failed: %v", err)
		}
	}
}

func BenchmarkDiffuse(b *testing.B) {
	buf := bytes.Repeat([]byte("A"), 64*1024)

	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		diffuse(buf)
	}
}

func BenchmarkSubstitution(b *testing.B) {
	table := newSubstitutionTable(bytes.Repeat([]byte{0x5a}, CipherKeySize))
	buf := bytes.Repeat([]byte("A"), 64*1024)

	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		table.apply(buf)
	}
}

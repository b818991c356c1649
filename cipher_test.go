package ashf

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
)

func randomKey(t *testing.T, size int) []byte {
	t.Helper()
	key := make([]byte, size)
	if _, err := rand.Read(key); err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}
	return key
}

func TestCipherEngines_EncryptDecrypt(t *testing.T) {
	engines := []struct {
		name  string
		build func([]byte) (CipherEngine, error)
	}{
		{"aes-256-gcm", func(k []byte) (CipherEngine, error) { return NewAESGCMEngine(k) }},
		{"chacha20-poly1305", func(k []byte) (CipherEngine, error) { return NewChaCha20Poly1305Engine(k) }},
	}

	plaintexts := []struct {
		name string
		data []byte
	}{
		{"simple text", []byte("Hello, World!")},
		{"empty plaintext", []byte{}},
		{"long plaintext", bytes.Repeat([]byte("A"), 1000)},
	}

	for _, eng := range engines {
		t.Run(eng.name, func(t *testing.T) {
			engine, err := eng.build(randomKey(t, CipherKeySize))
			if err != nil {
				t.Fatalf("Failed to create engine: %v", err)
			}

			for _, tt := range plaintexts {
				t.Run(tt.name, func(t *testing.T) {
					nonce := randomKey(t, IVSize)

					ciphertext, err := engine.Encrypt(nonce, tt.data)
					if err != nil {
						t.Fatalf("Encrypt failed: %v", err)
					}
					if len(ciphertext) != len(tt.data)+AEADTagSize {
						t.Errorf("ciphertext length = %d, want %d",
							len(ciphertext), len(tt.data)+AEADTagSize)
					}

					got, err := engine.Decrypt(nonce, ciphertext)
					if err != nil {
						t.Fatalf("Decrypt failed: %v", err)
					}
					if !bytes.Equal(got, tt.data) {
						t.Error("round trip mismatch")
					}
				})
			}
		})
	}
}

func TestCipherEngines_TamperedCiphertext(t *testing.T) {
	engine, err := NewAESGCMEngine(randomKey(t, CipherKeySize))
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	nonce := randomKey(t, IVSize)
	ciphertext, err := engine.Encrypt(nonce, []byte("authentic"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	ciphertext[0] ^= 0x01
	_, err = engine.Decrypt(nonce, ciphertext)
	if !errors.Is(err, ErrAuthenticationFailure) {
		t.Errorf("error = %v, want ErrAuthenticationFailure", err)
	}
}

func TestCipherEngines_InvalidKeySize(t *testing.T) {
	if _, err := NewAESGCMEngine(make([]byte, 16)); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("AES engine error = %v, want ErrInvalidKey", err)
	}
	if _, err := NewChaCha20Poly1305Engine(make([]byte, 16)); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("ChaCha engine error = %v, want ErrInvalidKey", err)
	}
}

func TestCipherEngines_InvalidNonceSize(t *testing.T) {
	engine, err := NewAESGCMEngine(randomKey(t, CipherKeySize))
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	if _, err := engine.Encrypt(make([]byte, IVSize-1), []byte("x")); err == nil {
		t.Error("Encrypt accepted a short nonce")
	}
	if _, err := engine.Decrypt(make([]byte, IVSize+1), make([]byte, AEADTagSize)); err == nil {
		t.Error("Decrypt accepted a long nonce")
	}
}

func TestNewCipherEngine_AutoSelectsAESGCM(t *testing.T) {
	engine, err := newCipherEngine(CipherAuto, randomKey(t, CipherKeySize))
	if err != nil {
		t.Fatalf("newCipherEngine failed: %v", err)
	}
	if _, ok := engine.(*AESGCMEngine); !ok {
		t.Errorf("auto-selected engine is %T, want *AESGCMEngine", engine)
	}
}

func TestNewCipherEngine_UnsupportedSuite(t *testing.T) {
	_, err := newCipherEngine(CipherSuite(42), randomKey(t, CipherKeySize))
	if !errors.Is(err, ErrUnsupportedCipher) {
		t.Errorf("error = %v, want ErrUnsupportedCipher", err)
	}
}

func TestCipherSuite_String(t *testing.T) {
	tests := []struct {
		suite CipherSuite
		want  string
	}{
		{CipherAuto, "auto"},
		{CipherAES256GCM, "aes-256-gcm"},
		{CipherChaCha20Poly1305, "chacha20-poly1305"},
		{CipherSuite(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.suite.String(); got != tt.want {
			t.Errorf("CipherSuite(%d).String() = %q, want %q", tt.suite, got, tt.want)
		}
	}
}

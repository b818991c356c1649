package ashf

import (
	"crypto/subtle"
	"runtime"
)

// SecureWipe overwrites the contents of a byte slice holding sensitive
// material. Derived keys and intermediate plaintext buffers are wiped on
// every exit path, including error paths.
func SecureWipe(data []byte) {
	if data == nil {
		return
	}

	zeros := make([]byte, len(data))
	// The constant-time compare touches every byte, which keeps the
	// compiler from proving the subsequent copy dead and eliding it.
	subtle.ConstantTimeCompare(data, zeros)
	copy(data, zeros)

	runtime.KeepAlive(data)
	runtime.KeepAlive(zeros)
}

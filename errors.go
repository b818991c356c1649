package ashf

import (
	"errors"
	"fmt"
)

// Error types represent different categories of errors

// ValidationError represents a configuration or parameter validation error
type ValidationError struct {
	Field   string // The field or parameter that failed validation
	Value   any    // The invalid value
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// DerivationError represents an invalid secret or salt handed to key
// derivation. It signals a caller bug, not a transient condition.
type DerivationError struct {
	Field   string // "secret" or "salt"
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *DerivationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("derivation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("derivation error: %s", e.Message)
}

func (e *DerivationError) Unwrap() error {
	return e.Err
}

// FormatError represents a malformed payload on decode. No partial
// recovery is attempted.
type FormatError struct {
	Length  int    // Observed payload length, if relevant
	Message string // Human-readable error message
}

func (e *FormatError) Error() string {
	if e.Length > 0 {
		return fmt.Sprintf("format error: %s (payload length %d)", e.Message, e.Length)
	}
	return fmt.Sprintf("format error: %s", e.Message)
}

// EncryptionError represents an adapter-level encryption or decryption
// fault, as opposed to an authentication failure
type EncryptionError struct {
	Operation string // "protect" or "unprotect"
	Message   string // Human-readable error message
	Err       error  // Underlying error
}

func (e *EncryptionError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("%s error: %s", e.Operation, e.Message)
	}
	return fmt.Sprintf("encryption error: %s", e.Message)
}

func (e *EncryptionError) Unwrap() error {
	return e.Err
}

// EntropyError represents a CSPRNG failure. It is fatal for the operation;
// the library never falls back to a weaker randomness source.
type EntropyError struct {
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *EntropyError) Error() string {
	return fmt.Sprintf("entropy error: %s", e.Message)
}

func (e *EntropyError) Unwrap() error {
	return e.Err
}

// Verification stage sentinels. Unprotect wraps these in a
// VerificationError so the outward-facing message is identical for all
// three stages; in-process callers can still distinguish them with
// errors.Is when they need to.
var (
	ErrIntegrityFailure      = errors.New("integrity tag mismatch")
	ErrTamperDetected        = errors.New("final digest mismatch")
	ErrAuthenticationFailure = errors.New("aead authentication failed")
)

// VerificationError represents a rejected payload. Its message never
// reveals which verification stage failed, so relaying the error text to
// an untrusted party does not create a verification oracle; the failing
// stage is logged internally and remains reachable via errors.Is.
type VerificationError struct {
	stage error
}

func (e *VerificationError) Error() string {
	return "payload rejected: verification failed"
}

func (e *VerificationError) Unwrap() error {
	return e.stage
}

// Common sentinel errors
var (
	ErrInvalidKey        = errors.New("invalid encryption key")
	ErrNilConfig         = errors.New("config cannot be nil")
	ErrNilEntropy        = errors.New("entropy source cannot be nil")
	ErrEmptySecret       = errors.New("secret cannot be empty")
	ErrPayloadTooShort   = errors.New("payload shorter than fixed-field minimum")
	ErrUnsupportedCipher = errors.New("unsupported cipher suite")
)

// Helper functions for creating structured errors

// NewDerivationError creates a new derivation error
func NewDerivationError(field, message string) error {
	return &DerivationError{
		Field:   field,
		Message: message,
	}
}

// NewFormatError creates a new format error
func NewFormatError(length int, message string) error {
	return &FormatError{
		Length:  length,
		Message: message,
	}
}

// NewEncryptionError creates a new encryption error
func NewEncryptionError(operation string, err error) error {
	return &EncryptionError{
		Operation: operation,
		Message:   err.Error(),
		Err:       err,
	}
}

// NewEntropyError creates a new entropy error
func NewEntropyError(err error) error {
	return &EntropyError{
		Message: err.Error(),
		Err:     err,
	}
}

func newVerificationError(stage error) error {
	return &VerificationError{stage: stage}
}

// Error checking helpers

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsDerivationError checks if an error is a derivation error
func IsDerivationError(err error) bool {
	var de *DerivationError
	return errors.As(err, &de)
}

// IsFormatError checks if an error is a format error
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsVerificationError checks if an error is a verification failure of any
// stage (integrity tag, final digest, or AEAD authentication)
func IsVerificationError(err error) bool {
	var ve *VerificationError
	return errors.As(err, &ve)
}

// IsEntropyError checks if an error is an entropy error
func IsEntropyError(err error) bool {
	var ee *EntropyError
	return errors.As(err, &ee)
}

// IsEncryptionError checks if an error is an encryption error
func IsEncryptionError(err error) bool {
	var ee *EncryptionError
	return errors.As(err, &ee)
}

package errors

import "errors"

// Validation errors indicate the input text cannot be sealed as provided.
var (
	// ErrInvalidInput is the umbrella for any validation failure. The first
	// collected reason is attached as context when it is returned.
	ErrInvalidInput = errors.New("input failed validation")

	// ErrNoInput indicates no text was supplied by argument, pipe, or prompt.
	ErrNoInput = errors.New("no input text provided")
)

// Cryptographic errors indicate failures inside the sealing engine.
var (
	// ErrKeyGenFailed indicates the provider could not produce a fresh key.
	ErrKeyGenFailed = errors.New("key generation failed")

	// ErrEncryptFailed indicates authenticated encryption failed.
	ErrEncryptFailed = errors.New("encryption failed")

	// ErrKeyReleased indicates a key handle was used after release.
	ErrKeyReleased = errors.New("key handle already released")

	// ErrKeyAlreadyUsed indicates a single-use key handle was used twice.
	ErrKeyAlreadyUsed = errors.New("key handle already used")

	// ErrUnknownCipher indicates an unrecognized cipher suite name.
	ErrUnknownCipher = errors.New("unknown cipher suite")
)

// Pipeline errors indicate issues with request orchestration.
var (
	// ErrPipelineBusy indicates a seal request arrived while another was in
	// flight. Callers treat this as a no-op, never as a user-facing failure.
	ErrPipelineBusy = errors.New("a seal request is already in flight")
)

// Blob errors indicate issues with encoded seal output.
var (
	// ErrMalformedBlob indicates an encoded blob that cannot hold a valid
	// envelope (bad base64 or fewer than 28 decoded bytes).
	ErrMalformedBlob = errors.New("malformed sealed blob")
)

// Config errors indicate issues with user configuration.
var (
	// ErrInvalidConfig indicates the user configuration is malformed.
	ErrInvalidConfig = errors.New("user configuration is invalid")
)

// Package errors provides typed error values for the Pounamu application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Validation errors: input cannot be sealed (ErrInvalidInput, ErrNoInput)
//   - Crypto errors: key generation or encryption failed (ErrKeyGenFailed)
//   - Pipeline errors: orchestration conditions (ErrPipelineBusy)
//   - Blob errors: encoded output issues (ErrMalformedBlob)
//
// # Usage
//
// Return errors from internal packages:
//
//	if reason != "" {
//	    return fmt.Errorf("%w: %s", errors.ErrInvalidInput, reason)
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Seal(ctx, opts)
//	if errors.Is(err, kerrors.ErrInvalidInput) {
//	    // Show the validation reason
//	}
//
// Crypto errors never carry provider detail across the CLI boundary. The
// fixed user-facing message for ErrKeyGenFailed and ErrEncryptFailed is
// defined in the pipeline package.
package errors

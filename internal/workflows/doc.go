// Package workflows provides high-level orchestration for Pounamu commands.
//
// Workflows coordinate multiple operations across packages (configs,
// pipeline, audit) to implement complete user-facing features. Each
// workflow handles a single command's business logic, independent of CLI
// concerns like flag parsing, spinners, and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Loading user configuration
//   - Running the seal pipeline
//   - Recording audit trail entries
//
// # Available Workflows
//
// Each command has a corresponding workflow:
//
//   - Seal: validates, encrypts, and encodes one piece of text
//   - Inspect: decodes a sealed blob and reports its layout
//   - Log: reads recent audit entries
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching. Use errors.Is() to check for specific error conditions:
//
//	result, err := workflows.Seal(ctx, opts)
//	if errors.Is(err, kerrors.ErrInvalidInput) {
//	    // Show the validation reason
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// This enables cancellation, timeouts, and passing request-scoped values.
package workflows

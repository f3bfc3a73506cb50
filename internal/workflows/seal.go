package workflows

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"

	"github.com/PolarWolf314/pounamu/internal/audit"
	"github.com/PolarWolf314/pounamu/internal/configs"
	logger "github.com/PolarWolf314/pounamu/internal/logging"
	"github.com/PolarWolf314/pounamu/internal/pipeline"
)

// SealOptions configures the seal workflow.
type SealOptions struct {
	// Text is the raw input to seal.
	Text string

	// Cipher selects the suite. If empty, the configured default is used.
	Cipher string

	// Copy sends the sealed blob to the system clipboard.
	Copy bool

	Logger logger.Logger
}

// SealResult contains the outcome of a seal operation.
type SealResult struct {
	// Encoded is the transportable base64 blob.
	Encoded string

	// Cipher is the suite that sealed the text.
	Cipher string

	// Elapsed is the pipeline processing time.
	Elapsed time.Duration

	// Copied indicates the blob reached the clipboard.
	Copied bool

	// Slow indicates the advisory processing budget was exceeded.
	Slow bool
}

// Seal runs one seal request end to end.
//
// It validates the text, seals it under a fresh single-use key with a fresh
// nonce, and encodes the result. Sensitive state is erased on every exit
// path. The operation is recorded in the audit log on success.
//
// Returns ErrInvalidInput (with the reason) if validation fails.
// Returns ErrKeyGenFailed or ErrEncryptFailed on provider failures.
// Returns ErrUnknownCipher if the requested suite does not exist.
func Seal(ctx context.Context, opts SealOptions) (*SealResult, error) {
	config, err := configs.EnsureUserConfig()
	if err != nil {
		return nil, fmt.Errorf("loading user config: %w", err)
	}

	cipherName := opts.Cipher
	if cipherName == "" {
		cipherName = config.Seal.Cipher
	}
	provider, err := pipeline.ProviderFor(cipherName)
	if err != nil {
		return nil, err
	}

	slow := false
	p := pipeline.New(pipeline.NewEngine(provider), pipeline.Options{
		Source: func() string { return opts.Text },
		OnSlow: func(elapsed time.Duration) {
			slow = true
			opts.Logger.WarnfAlways("Sealing took %s, above the %s advisory budget", elapsed.Round(time.Millisecond), pipeline.SlowRequestThreshold)
		},
		Logger: opts.Logger,
	})

	result, err := p.Run(ctx)
	if err != nil {
		return nil, err
	}

	sealResult := &SealResult{
		Encoded: result.Encoded,
		Cipher:  result.Cipher,
		Elapsed: result.Elapsed,
		Slow:    slow,
	}

	if opts.Copy || config.Seal.Copy {
		if err := clipboard.WriteAll(result.Encoded); err != nil {
			// Clipboard access is outside the failure model: the seal
			// succeeded, so only warn.
			opts.Logger.WarnfAlways("Failed to copy blob to clipboard: %v", err)
		} else {
			sealResult.Copied = true
		}
	}

	audit.Log(audit.Entry{
		Operation: "seal",
		Cipher:    result.Cipher,
		InputLen:  len(opts.Text),
		BlobLen:   len(result.Encoded),
		Slow:      slow,
	})

	return sealResult, nil
}

package workflows

import (
	"context"

	"github.com/PolarWolf314/pounamu/internal/audit"
	"github.com/PolarWolf314/pounamu/internal/pipeline"
)

// InspectResult describes the layout of a sealed blob.
type InspectResult struct {
	// BlobChars is the length of the encoded blob.
	BlobChars int

	// DecodedBytes is the total decoded length: 12 + ciphertext + 16.
	DecodedBytes int

	// CiphertextBytes equals the sealed plaintext's byte length.
	CiphertextBytes int
}

// Inspect decodes a sealed blob and reports its wire layout without
// decrypting anything.
//
// Returns ErrMalformedBlob for bad base64 or a decoded length below the
// 28-byte minimum (12-byte nonce plus 16-byte tag).
func Inspect(ctx context.Context, blob string) (*InspectResult, error) {
	env, err := pipeline.Decode(blob)
	if err != nil {
		return nil, err
	}

	audit.Log(audit.Entry{
		Operation: "inspect",
		BlobLen:   len(blob),
	})

	return &InspectResult{
		BlobChars:       len(blob),
		DecodedBytes:    pipeline.NonceSize + len(env.Ciphertext) + pipeline.TagSize,
		CiphertextBytes: len(env.Ciphertext),
	}, nil
}

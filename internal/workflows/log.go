package workflows

import (
	"context"

	"github.com/PolarWolf314/pounamu/internal/audit"
)

// Log returns the most recent audit entries, oldest first. A limit of zero
// or less returns everything.
func Log(ctx context.Context, limit int) ([]audit.Entry, error) {
	entries, err := audit.ReadEntries()
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

package document

import (
	"context"
	"fmt"

	"github.com/noteme-app/noteme/sys"
)

// Write replaces the stored document in full. There is no revision token:
// two read-modify-write cycles that interleave are last-writer-wins, and the
// earlier write is silently lost. A hardened store would compare a revision
// on write and retry on mismatch.
func Write(ctx context.Context, doc Document) error {
	store := sys.R.Store

	stCtx, stCancel := context.WithTimeout(ctx, sys.Configs.Store.OperationTimeout)
	defer stCancel()

	if err := store.Update(stCtx, doc); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

package document

import (
	"context"
	"fmt"

	"github.com/noteme-app/noteme/sys"
)

// Read fetches the full document from the store. An empty or null stored
// record yields an empty document; a failed read is an error, never an
// empty document.
func Read(ctx context.Context) (Document, error) {
	store := sys.R.Store

	stCtx, stCancel := context.WithTimeout(ctx, sys.Configs.Store.OperationTimeout)
	defer stCancel()

	doc := Document{Users: []User{}}
	if err := store.ReadLatest(stCtx, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to read document: %w", err)
	}
	if doc.Users == nil {
		doc.Users = []User{}
	}
	return doc, nil
}

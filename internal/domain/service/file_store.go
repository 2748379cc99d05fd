package service

import (
	"context"
	"io"
)

// FileStore defines the capability the document lifecycle needs from file
// storage: persist uploaded bytes under a locator, and relocate a stored
// file into the deleted area when its document record is soft-deleted.
// Deleting a document is all-or-nothing with respect to storage and record
// state, so Discard failures must surface.
type FileStore interface {
	// Store writes the content under the given name and returns the
	// locator to persist on the document record.
	Store(ctx context.Context, name string, content io.Reader) (string, error)

	// Discard relocates a stored file into the deleted storage area.
	Discard(ctx context.Context, locator string) error

	// Delete removes a stored file outright.
	Delete(ctx context.Context, locator string) error
}

// Package storage implements the document file store on top of a blob
// bucket. Uploaded files live under the media root; deleting a document
// relocates its file under the deleted prefix instead of removing it.
package storage

import (
	"context"
	"io"
	"path"
	"strings"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultDeletedPrefix = "deleted/"

// blobStore is a concrete implementation of the FileStore interface backed
// by a gocloud blob bucket.
type blobStore struct {
	bucket        *blob.Bucket
	deletedPrefix string
}

// NewBlobStore opens the configured media directory as a file-backed bucket.
func NewBlobStore(cfg *config.Config) (service.FileStore, error) {
	if cfg.Storage == nil || cfg.Storage.MediaRoot == "" {
		return nil, errors.New("storage media root must be configured")
	}

	bucket, err := fileblob.OpenBucket(cfg.Storage.MediaRoot, &fileblob.Options{
		CreateDir: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	deletedPrefix := cfg.Storage.DeletedPrefix
	if deletedPrefix == "" {
		deletedPrefix = defaultDeletedPrefix
	}
	if !strings.HasSuffix(deletedPrefix, "/") {
		deletedPrefix += "/"
	}

	return &blobStore{
		bucket:        bucket,
		deletedPrefix: deletedPrefix,
	}, nil
}

// Store writes the content under a fresh key derived from the upload name.
// The key doubles as the locator persisted on the document record.
func (s *blobStore) Store(ctx context.Context, name string, content io.Reader) (string, error) {
	// A random prefix keeps colliding upload names apart.
	key := uuid.New().String() + "/" + path.Base(name)

	writer, err := s.bucket.NewWriter(ctx, key, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if content != nil {
		if _, err := io.Copy(writer, content); err != nil {
			_ = writer.Close()

			return "", errors.Wrap(err, "failed to write blob content")
		}
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finish blob write")
	}

	return key, nil
}

// Discard relocates a stored file under the deleted prefix. The original key
// is removed only after the copy succeeds, so a failure leaves the file
// where it was.
func (s *blobStore) Discard(ctx context.Context, locator string) error {
	if err := s.bucket.Copy(ctx, s.deletedPrefix+locator, locator, nil); err != nil {
		return errors.Wrap(err, "failed to relocate blob")
	}

	if err := s.bucket.Delete(ctx, locator); err != nil {
		return errors.Wrap(err, "failed to remove original blob")
	}

	return nil
}

// Delete removes a stored file outright.
func (s *blobStore) Delete(ctx context.Context, locator string) error {
	return errors.Wrap(s.bucket.Delete(ctx, locator), "failed to delete blob")
}

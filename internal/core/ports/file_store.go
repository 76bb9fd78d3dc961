package ports

import (
	"context"
	"io"
	"time"

	"printshop/internal/core/domain/model/order"
)

// Upload is one incoming file as received at the ingestion boundary.
// Open is called at most once, when the store writes the file.
type Upload struct {
	OriginalName string
	MIMEType     string
	Size         int64
	Open         func() (io.ReadCloser, error)
}

// FileStore is the durable storage for uploaded documents. Implementations
// assign each file a unique storage name so client-supplied names can never
// collide or overwrite each other.
type FileStore interface {
	// Save validates the upload against the MIME allow-list and size
	// ceiling, then writes it under a freshly generated storage name.
	Save(ctx context.Context, upload Upload) (order.StoredFile, error)

	// Delete removes a stored file. Idempotent: deleting a name that is
	// no longer present is not an error.
	Delete(name string) error

	// Exists reports whether the named file is present in storage.
	Exists(name string) bool

	// Open returns the file contents for streaming. Returns an
	// errs.ObjectNotFoundError when the file is gone.
	Open(name string) (io.ReadCloser, error)

	// ListOlderThan returns the storage names of files whose last
	// modification is older than age. Used by the orphan-file sweep.
	ListOlderThan(age time.Duration) ([]string, error)
}

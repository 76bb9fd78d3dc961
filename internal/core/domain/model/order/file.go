package order

import (
	"time"

	"printshop/internal/pkg/errs"
)

// StoredFile describes one uploaded document owned by an order.
// Files have no lifecycle of their own: they are written before the order
// record exists and removed when the order is deleted.
//
// Path is the storage locator. It never leaves the admin download path;
// read models expose only the remaining fields.
type StoredFile struct {
	// Name is the storage-assigned unique identifier.
	Name string

	// OriginalName is the client-supplied filename, used only
	// for display and download headers.
	OriginalName string

	// Size is the file size in bytes.
	Size int64

	// MIMEType is the declared content type.
	MIMEType string

	// Path is the storage locator.
	Path string

	// UploadDate is when the file entered storage.
	UploadDate time.Time
}

// Validate checks that every field a persisted file record needs is present.
func (f StoredFile) Validate() error {
	switch {
	case f.Name == "":
		return errs.NewValueIsRequiredError("file name")
	case f.OriginalName == "":
		return errs.NewValueIsRequiredError("file original name")
	case f.MIMEType == "":
		return errs.NewValueIsRequiredError("file type")
	case f.Path == "":
		return errs.NewValueIsRequiredError("file path")
	case f.Size < 0:
		return errs.NewValueIsInvalidError("file size")
	}
	return nil
}

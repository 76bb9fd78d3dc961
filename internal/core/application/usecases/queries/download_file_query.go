package queries

import (
	"errors"

	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrDownloadFileQueryIsNotConstructed = errors.New(
	"DownloadFileQuery must be created via NewDownloadFileQuery constructor",
)

// DownloadFileQuery requests the content of one document belonging to an
// order. The file is addressed by its storage name, scoped to the order.
type DownloadFileQuery struct {
	orderID  string
	fileName string

	guard guard.ConstructorGuard
}

// NewDownloadFileQuery creates a download query for the given order and file.
func NewDownloadFileQuery(orderID, fileName string) (DownloadFileQuery, error) {
	if orderID == "" {
		return DownloadFileQuery{}, errs.NewValueIsRequiredError("orderId")
	}
	if fileName == "" {
		return DownloadFileQuery{}, errs.NewValueIsRequiredError("fileName")
	}

	return DownloadFileQuery{
		orderID:  orderID,
		fileName: fileName,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q DownloadFileQuery) Validate() error {
	return q.guard.Validate(ErrDownloadFileQueryIsNotConstructed)
}

// OrderID returns the public identifier of the owning order.
func (q DownloadFileQuery) OrderID() string {
	return q.orderID
}

// FileName returns the storage name of the requested file.
func (q DownloadFileQuery) FileName() string {
	return q.fileName
}

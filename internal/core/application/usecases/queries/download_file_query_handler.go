package queries

import (
	"context"
	"errors"
	"io"

	"printshop/internal/core/ports"
	"printshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// DownloadFileResponse carries one document's content and the metadata
// needed to serve it. The caller owns Content and must close it.
type DownloadFileResponse struct {
	OriginalName string
	MIMEType     string
	Size         int64
	Content      io.ReadCloser
}

// DownloadFileQueryHandler resolves a file reference through the database
// and streams its content from the file store. The order scoping makes a
// file name only downloadable together with the order ID it belongs to.
type DownloadFileQueryHandler struct {
	db    *gorm.DB
	store ports.FileStore
}

// NewDownloadFileQueryHandler creates a handler for file downloads.
func NewDownloadFileQueryHandler(db *gorm.DB, store ports.FileStore) DownloadFileQueryHandler {
	return DownloadFileQueryHandler{db: db, store: store}
}

// Handle looks up the file record scoped to the order and opens the stored
// content. A missing order, a file record outside the order, and a record
// whose content has vanished from disk all surface as distinct not-found
// errors.
func (h DownloadFileQueryHandler) Handle(
	ctx context.Context, query DownloadFileQuery,
) (DownloadFileResponse, error) {
	if err := query.Validate(); err != nil {
		return DownloadFileResponse{}, err
	}

	var ord orderRow
	err := h.db.WithContext(ctx).
		Select("id").
		Where("order_id = ?", query.OrderID()).
		First(&ord).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DownloadFileResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
		}
		return DownloadFileResponse{}, err
	}

	var file fileRow
	err = h.db.WithContext(ctx).
		Where("order_ref = ? AND name = ?", ord.ID, query.FileName()).
		First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DownloadFileResponse{}, errs.NewObjectNotFoundError("fileName", query.FileName())
		}
		return DownloadFileResponse{}, err
	}

	content, err := h.store.Open(file.Name)
	if err != nil {
		return DownloadFileResponse{}, err
	}

	return DownloadFileResponse{
		OriginalName: file.OriginalName,
		MIMEType:     file.Type,
		Size:         file.Size,
		Content:      content,
	}, nil
}

package queries

import (
	"context"
	"errors"

	"printshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler serves single-order lookups straight from the
// database, bypassing the domain layer.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order read model including its file metadata.
// Returns an errs.ObjectNotFoundError for unknown order IDs.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context, query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).
		Preload("Files").
		Where("order_id = ?", query.OrderID()).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
		}
		return OrderResponse{}, err
	}

	return toOrderResponse(row), nil
}
